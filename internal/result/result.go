package result

import "github.com/hashicorp/hcl/v2"

// Warning types.
const (
	WarningKeyCorrected = "key_corrected"
	WarningDuplicateKey = "duplicate_key"
	WarningEmptyFile    = "empty_file"
)

// Error types.
const (
	ErrorParse       = "parse_error"
	ErrorProcessType = "process_type_error"
	ErrorInput       = "invalid_input"
)

// Error represents a fatal parse or conversion error.
type Error struct {
	Type       string     `json:"type"`
	Severity   string     `json:"severity"`
	Message    string     `json:"message"`
	Suggestion string     `json:"suggestion,omitempty"`
	Range      *hcl.Range `json:"range,omitempty"`
	Diagnostic string     `json:"diagnostic,omitempty"` // rendered source excerpt
}

// Warning represents a correction applied while parsing.
type Warning struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Process is a declared process in Procfile order.
type Process struct {
	Name    string `json:"name"`
	Command string `json:"command"`
	Default bool   `json:"default"`
}

// ParseResult is the result of parsing a Procfile.
type ParseResult struct {
	Success   bool              `json:"success"`
	Processes []Process         `json:"processes"`
	Default   string            `json:"default,omitempty"`
	Files     map[string][]byte `json:"-"` // filename -> content
	Errors    []Error           `json:"errors,omitempty"`
	Warnings  []Warning         `json:"warnings,omitempty"`
}

// Names returns process names in order.
func (r *ParseResult) Names() []string {
	out := make([]string, 0, len(r.Processes))
	for _, p := range r.Processes {
		out = append(out, p.Name)
	}
	return out
}

// Fail records a fatal error and marks the result unsuccessful.
func (r *ParseResult) Fail(e Error) {
	if e.Severity == "" {
		e.Severity = "error"
	}
	r.Success = false
	r.Errors = append(r.Errors, e)
}

// Warn records a warning.
func (r *ParseResult) Warn(typ, message string) {
	r.Warnings = append(r.Warnings, Warning{Type: typ, Severity: "warning", Message: message})
}
