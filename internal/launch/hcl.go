package launch

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// ProcessBlock creates a process "type" { } block; body can be filled by the caller.
func ProcessBlock(processType string) *hclwrite.Block {
	return hclwrite.NewBlock("process", []string{processType})
}

// SetAttributeStr sets a string attribute on a block body.
func SetAttributeStr(body *hclwrite.Body, name, value string) {
	if value != "" {
		body.SetAttributeValue(name, cty.StringVal(value))
	}
}

// SetAttributeBool sets a bool attribute.
func SetAttributeBool(body *hclwrite.Body, name string, value bool) {
	body.SetAttributeValue(name, cty.BoolVal(value))
}

// SetAttributeList sets a list(string) attribute; an empty list is written as [].
func SetAttributeList(body *hclwrite.Body, name string, values []string) {
	if len(values) == 0 {
		body.SetAttributeValue(name, cty.ListValEmpty(cty.String))
		return
	}
	vals := make([]cty.Value, 0, len(values))
	for _, v := range values {
		vals = append(vals, cty.StringVal(v))
	}
	body.SetAttributeValue(name, cty.ListVal(vals))
}

// HCL renders the launch descriptor as one process block per process.
func HCL(l *Launch) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for i, p := range l.Processes {
		if i > 0 {
			body.AppendNewline()
		}
		block := ProcessBlock(p.Type)
		pb := block.Body()
		SetAttributeStr(pb, "command", p.Command)
		SetAttributeList(pb, "args", p.Args)
		SetAttributeBool(pb, "direct", p.Direct)
		SetAttributeBool(pb, "default", p.Default)
		body.AppendBlock(block)
	}
	return f.Bytes()
}
