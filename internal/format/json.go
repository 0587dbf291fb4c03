package format

import (
	"encoding/json"

	"github.com/procfile-cnb/parser/internal/registry"
	"github.com/procfile-cnb/parser/internal/result"
)

type jsonFormatter struct{}

func init() {
	registry.Default.Register(jsonFormatter{})
}

func (jsonFormatter) Name() string { return "json" }

func (jsonFormatter) Format(res *result.ParseResult) ([]byte, error) {
	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
