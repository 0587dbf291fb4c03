package format

import (
	"bytes"

	"github.com/BurntSushi/toml"

	"github.com/procfile-cnb/parser/internal/registry"
	"github.com/procfile-cnb/parser/internal/result"
)

type tomlFormatter struct{}

func init() {
	registry.Default.Register(tomlFormatter{})
}

type tomlDocument struct {
	Success   bool          `toml:"success"`
	Default   string        `toml:"default,omitempty"`
	Warnings  []string      `toml:"warnings,omitempty"`
	Errors    []string      `toml:"errors,omitempty"`
	Processes []tomlProcess `toml:"processes"`
}

type tomlProcess struct {
	Name    string `toml:"name"`
	Command string `toml:"command"`
	Default bool   `toml:"default"`
}

func (tomlFormatter) Name() string { return "toml" }

func (tomlFormatter) Format(res *result.ParseResult) ([]byte, error) {
	doc := tomlDocument{
		Success:   res.Success,
		Default:   res.Default,
		Processes: make([]tomlProcess, 0, len(res.Processes)),
	}
	for _, w := range res.Warnings {
		doc.Warnings = append(doc.Warnings, w.Message)
	}
	for _, e := range res.Errors {
		doc.Errors = append(doc.Errors, e.Message)
	}
	for _, p := range res.Processes {
		doc.Processes = append(doc.Processes, tomlProcess(p))
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
