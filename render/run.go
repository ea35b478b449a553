// Package render implements the render subcommand.
package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssel/recipe"
	"cssel/state"
)

// Run loads a selector recipe, builds every selector in it and writes the
// result to the destination file or STDOUT.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no recipe file has been specified")
	}

	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	// command line overrides configuration
	name := cmd.String("format")
	if !cmd.IsSet("format") && env.Cfg != nil {
		name = env.Cfg.Render.Format
	}
	format, err := recipe.ParseOutputFmt(name)
	if err != nil {
		log.Warn("Unknown output format requested, switching to text", zap.Error(err))
		format = recipe.OutputFmtText
	}
	sorted := cmd.Bool("sort")
	if !sorted && env.Cfg != nil {
		sorted = env.Cfg.Render.Sorted
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read recipe file '%s': %w", src, err)
	}
	rcp, err := recipe.Load(data)
	if err != nil {
		return fmt.Errorf("unable to load recipe '%s': %w", src, err)
	}

	log.Info("Rendering selectors", zap.String("recipe", src), zap.Int("count", len(rcp.Selectors)))

	rendered, err := rcp.Build(log)
	if err != nil {
		return fmt.Errorf("unable to build selectors from '%s': %w", src, err)
	}

	if sorted {
		recipe.Sort(rendered)
	}

	var out []byte
	if cmd.Bool("tree") {
		out = []byte(dumpAll(rendered))
	} else {
		if out, err = recipe.Marshal(rendered, format); err != nil {
			return fmt.Errorf("unable to marshal selectors: %w", err)
		}
	}

	w := os.Stdout
	if len(dst) > 0 {
		f, err := os.Create(dst)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", dst, err)
		}
		defer f.Close()
		w = f
	} else {
		dst = "STDOUT"
	}

	log.Info("Writing rendered selectors", zap.String("file", dst), zap.Int("count", len(rendered)), zap.Stringer("format", format))

	if _, err = w.Write(out); err != nil {
		return fmt.Errorf("unable to write rendered selectors: %w", err)
	}
	return nil
}

// dumpAll produces structural dumps for all rendered selectors, one block
// per selector.
func dumpAll(rendered []recipe.Rendered) string {
	var sb strings.Builder
	for _, r := range rendered {
		sb.WriteString(r.Name)
		sb.WriteString(":\n")
		for line := range strings.Lines(r.Dump()) {
			sb.WriteString("  ")
			sb.WriteString(line)
		}
	}
	return sb.String()
}
