package recipe

import (
	"encoding/json"
	"fmt"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Marshal renders built selectors in the requested output format. Text
// output is one "name: selector" line per entry, json and yaml marshal the
// whole list.
func Marshal(rendered []Rendered, format OutputFmt) ([]byte, error) {
	switch format {
	case OutputFmtText:
		var sb strings.Builder
		for _, r := range rendered {
			sb.WriteString(r.Name)
			sb.WriteString(": ")
			sb.WriteString(r.Selector)
			sb.WriteByte('\n')
		}
		return []byte(sb.String()), nil
	case OutputFmtJson:
		data, err := json.MarshalIndent(rendered, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal selectors to json: %w", err)
		}
		return append(data, '\n'), nil
	case OutputFmtYaml:
		data, err := yaml.Marshal(rendered)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal selectors to yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported output format %s", format)
	}
}
