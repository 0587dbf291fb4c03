package format

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/procfile-cnb/parser/internal/registry"
	"github.com/procfile-cnb/parser/internal/result"
)

type yamlFormatter struct{}

func init() {
	registry.Default.Register(yamlFormatter{})
}

func (yamlFormatter) Name() string { return "yaml" }

// Format builds the document from yaml.Node so processes keep Procfile order.
func (yamlFormatter) Format(res *result.ParseResult) ([]byte, error) {
	doc := mappingNode()
	appendPair(doc, "success", boolNode(res.Success))
	if res.Default != "" {
		appendPair(doc, "default", stringNode(res.Default))
	}

	processes := mappingNode()
	for _, p := range res.Processes {
		appendPair(processes, p.Name, stringNode(p.Command))
	}
	appendPair(doc, "processes", processes)

	if len(res.Warnings) > 0 {
		warnings := &yaml.Node{Kind: yaml.SequenceNode}
		for _, w := range res.Warnings {
			warnings.Content = append(warnings.Content, stringNode(w.Message))
		}
		appendPair(doc, "warnings", warnings)
	}
	if len(res.Errors) > 0 {
		errs := &yaml.Node{Kind: yaml.SequenceNode}
		for _, e := range res.Errors {
			item := mappingNode()
			appendPair(item, "type", stringNode(e.Type))
			appendPair(item, "message", stringNode(e.Message))
			if e.Range != nil {
				appendPair(item, "line", intNode(e.Range.Start.Line))
				appendPair(item, "column", intNode(e.Range.Start.Column))
			}
			errs.Content = append(errs.Content, item)
		}
		appendPair(doc, "errors", errs)
	}

	return yaml.Marshal(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{doc}})
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode}
}

func appendPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, stringNode(key), value)
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func boolNode(b bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}
}

func intNode(i int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(i)}
}
