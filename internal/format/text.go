package format

import (
	"bytes"
	"fmt"

	"github.com/procfile-cnb/parser/internal/registry"
	"github.com/procfile-cnb/parser/internal/result"
)

type textFormatter struct{}

func init() {
	registry.Default.Register(textFormatter{})
}

func (textFormatter) Name() string { return "text" }

// Format writes the processes back in Procfile form, or the rendered
// diagnostics when parsing failed.
func (textFormatter) Format(res *result.ParseResult) ([]byte, error) {
	var buf bytes.Buffer
	for _, e := range res.Errors {
		if e.Diagnostic != "" {
			buf.WriteString(e.Diagnostic)
		} else {
			fmt.Fprintf(&buf, "error: %s\n", e.Message)
		}
		if e.Suggestion != "" {
			fmt.Fprintf(&buf, "  suggestion: %s\n", e.Suggestion)
		}
	}
	if !res.Success {
		return buf.Bytes(), nil
	}
	for _, p := range res.Processes {
		fmt.Fprintf(&buf, "%s: %s\n", p.Name, p.Command)
	}
	return buf.Bytes(), nil
}
