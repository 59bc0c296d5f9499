package surface

import (
	"encoding/json"
	"io"
)

// JSONRenderer marshals a Report, with its display strings, to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, report *Report) error {
	view := struct {
		*Report
		Display Display `json:"display"`
	}{
		Report:  report,
		Display: DisplayFor(report.Outcome),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}

// ForFormat returns the renderer for an output format name, defaulting to
// the terminal renderer.
func ForFormat(format string) Renderer {
	switch format {
	case "json":
		return &JSONRenderer{}
	default:
		return &TerminalRenderer{}
	}
}
