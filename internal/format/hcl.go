package format

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/procfile-cnb/parser/internal/registry"
	"github.com/procfile-cnb/parser/internal/result"
)

type hclFormatter struct{}

func init() {
	registry.Default.Register(hclFormatter{})
}

func (hclFormatter) Name() string { return "hcl" }

func (hclFormatter) Format(res *result.ParseResult) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	body.SetAttributeValue("success", cty.BoolVal(res.Success))
	if res.Default != "" {
		body.SetAttributeValue("default", cty.StringVal(res.Default))
	}
	body.SetAttributeValue("warnings", stringList(warningMessages(res)))
	if len(res.Errors) > 0 {
		msgs := make([]string, 0, len(res.Errors))
		for _, e := range res.Errors {
			msgs = append(msgs, e.Message)
		}
		body.SetAttributeValue("errors", stringList(msgs))
	}

	for _, p := range res.Processes {
		body.AppendNewline()
		block := body.AppendNewBlock("process", []string{p.Name})
		block.Body().SetAttributeValue("command", cty.StringVal(p.Command))
		block.Body().SetAttributeValue("default", cty.BoolVal(p.Default))
	}
	return f.Bytes(), nil
}

func stringList(values []string) cty.Value {
	if len(values) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, 0, len(values))
	for _, v := range values {
		vals = append(vals, cty.StringVal(v))
	}
	return cty.ListVal(vals)
}

func warningMessages(res *result.ParseResult) []string {
	out := make([]string, 0, len(res.Warnings))
	for _, w := range res.Warnings {
		out = append(out, w.Message)
	}
	return out
}
