package recipe_test

import (
	"strings"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssel/recipe"
)

const sampleRecipe = `
version: 1
selectors:
  - name: download-link
    element: a
    classes: [button]
    attributes: ['href$=".png"']
    pseudo_classes: [hover]
    pseudo_element: after
  - name: siblings
    combine:
      left:
        element: div
      op: "+"
      right:
        element: span
`

func TestLoad(t *testing.T) {
	r, err := recipe.Load([]byte(sampleRecipe))
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if len(r.Selectors) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(r.Selectors))
	}
}

func TestLoad_UnknownField(t *testing.T) {
	input := `
version: 1
selectors:
  - name: x
    elment: a
`
	if _, err := recipe.Load([]byte(input)); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoad_BadVersion(t *testing.T) {
	if _, err := recipe.Load([]byte(`version: 2`)); err == nil {
		t.Fatal("expected error for unsupported version")
	}
}

func TestRecipe_Build(t *testing.T) {
	r, err := recipe.Load([]byte(sampleRecipe))
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	rendered, err := r.Build(zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if len(rendered) != 2 {
		t.Fatalf("expected 2 rendered selectors, got %d", len(rendered))
	}

	if want := `a.button[href$=".png"]:hover::after`; rendered[0].Selector != want {
		t.Errorf("expected %q, got %q", want, rendered[0].Selector)
	}
	if want := "div + span"; rendered[1].Selector != want {
		t.Errorf("expected %q, got %q", want, rendered[1].Selector)
	}
	if dump := rendered[1].Dump(); !strings.Contains(dump, `combined: "+"`) {
		t.Errorf("unexpected structural dump:\n%s", dump)
	}
}

func TestRecipe_BuildNestedCombine(t *testing.T) {
	input := `
version: 1
selectors:
  - name: chain
    combine:
      left:
        combine:
          left: {element: div}
          op: "+"
          right: {element: span}
      op: ">"
      right: {element: p}
`
	r, err := recipe.Load([]byte(input))
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	rendered, err := r.Build(zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if want := "div + span > p"; rendered[0].Selector != want {
		t.Errorf("expected %q, got %q", want, rendered[0].Selector)
	}
}

func TestRecipe_BuildSlugify(t *testing.T) {
	input := `
version: 1
selectors:
  - name: heading
    element: h1
    slugify: true
    classes: ["Main Title"]
`
	r, err := recipe.Load([]byte(input))
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	rendered, err := r.Build(zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if want := "h1.main-title"; rendered[0].Selector != want {
		t.Errorf("expected %q, got %q", want, rendered[0].Selector)
	}
}

func TestRecipe_BuildCollectsErrors(t *testing.T) {
	input := `
version: 1
selectors:
  - element: a
  - name: mixed
    element: div
    combine:
      left: {element: p}
      op: ">"
      right: {element: em}
  - name: good
    element: li
`
	r, err := recipe.Load([]byte(input))
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	rendered, err := r.Build(zap.NewNop())
	if err == nil {
		t.Fatal("expected aggregated build error")
	}
	if errs := multierr.Errors(err); len(errs) != 2 {
		t.Errorf("expected 2 aggregated errors, got %d: %v", len(errs), err)
	}

	// Failing entries do not prevent the rest from building.
	if len(rendered) != 1 || rendered[0].Name != "good" {
		t.Errorf("expected surviving entry 'good', got %+v", rendered)
	}
}

func TestSort(t *testing.T) {
	rendered := []recipe.Rendered{
		{Name: "item10"},
		{Name: "item2"},
		{Name: "alpha"},
	}
	recipe.Sort(rendered)

	got := []string{rendered[0].Name, rendered[1].Name, rendered[2].Name}
	want := []string{"alpha", "item2", "item10"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestMarshal_Text(t *testing.T) {
	rendered := []recipe.Rendered{
		{Name: "a", Selector: "div > p"},
		{Name: "b", Selector: ".x"},
	}
	data, err := recipe.Marshal(rendered, recipe.OutputFmtText)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "a: div > p\nb: .x\n"; string(data) != want {
		t.Errorf("expected %q, got %q", want, string(data))
	}
}

func TestMarshal_Json(t *testing.T) {
	rendered := []recipe.Rendered{{Name: "a", Selector: "p"}}
	data, err := recipe.Marshal(rendered, recipe.OutputFmtJson)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), `"selector": "p"`) {
		t.Errorf("unexpected json output: %s", data)
	}
}

func TestMarshal_Yaml(t *testing.T) {
	rendered := []recipe.Rendered{{Name: "a", Selector: "p"}}
	data, err := recipe.Marshal(rendered, recipe.OutputFmtYaml)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), "selector: p") {
		t.Errorf("unexpected yaml output: %s", data)
	}
}

func TestParseOutputFmt(t *testing.T) {
	for _, name := range recipe.OutputFmtNames() {
		f, err := recipe.ParseOutputFmt(name)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", name, err)
		}
		if f.String() != name {
			t.Errorf("round trip mismatch: %q vs %q", f.String(), name)
		}
	}
	if _, err := recipe.ParseOutputFmt("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
