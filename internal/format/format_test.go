package format

import (
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"gopkg.in/yaml.v3"

	"github.com/procfile-cnb/parser/internal/logger"
	"github.com/procfile-cnb/parser/internal/parser"
	"github.com/procfile-cnb/parser/internal/registry"
	"github.com/procfile-cnb/parser/internal/result"
)

func parse(t *testing.T, input string) *result.ParseResult {
	t.Helper()
	opts := parser.DefaultOptions()
	opts.Logger = logger.NewWithWriter(io.Discard, slog.LevelError)
	res, err := parser.New(opts).Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return res
}

func format(t *testing.T, name string, res *result.ParseResult) []byte {
	t.Helper()
	f, ok := registry.Default.Get(name)
	if !ok {
		t.Fatalf("formatter %q not registered", name)
	}
	out, err := f.Format(res)
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	return out
}

func TestAllFormatsRegistered(t *testing.T) {
	want := []string{"hcl", "json", "text", "toml", "yaml"}
	if diff := cmp.Diff(want, registry.Default.ListSupportedFormats()); diff != "" {
		t.Errorf("formats mismatch (-want +got):\n%s", diff)
	}
}

func TestJSON(t *testing.T) {
	out := format(t, "json", parse(t, "web: rails s\nWorker: rake\n"))
	var decoded result.ParseResult
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if !decoded.Success || len(decoded.Processes) != 2 || len(decoded.Warnings) != 1 {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestYAMLKeepsOrder(t *testing.T) {
	out := format(t, "yaml", parse(t, "zeta: z\nalpha: a\nweb: w\n"))

	var doc yaml.Node
	if err := yaml.Unmarshal(out, &doc); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, out)
	}
	root := doc.Content[0]
	var processes *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "processes" {
			processes = root.Content[i+1]
		}
	}
	if processes == nil {
		t.Fatalf("no processes key:\n%s", out)
	}
	var names []string
	for i := 0; i < len(processes.Content); i += 2 {
		names = append(names, processes.Content[i].Value)
	}
	if diff := cmp.Diff([]string{"zeta", "alpha", "web"}, names); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestYAMLErrors(t *testing.T) {
	out := string(format(t, "yaml", parse(t, "web:")))
	for _, want := range []string{"success: false", "type: parse_error", "line: 1", "column: 5"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestTOML(t *testing.T) {
	out := format(t, "toml", parse(t, "web: rails s\nworker: rake"))
	var doc tomlDocument
	if _, err := toml.Decode(string(out), &doc); err != nil {
		t.Fatalf("invalid TOML: %v\n%s", err, out)
	}
	want := []tomlProcess{{Name: "web", Command: "rails s", Default: true}, {Name: "worker", Command: "rake"}}
	if diff := cmp.Diff(want, doc.Processes); diff != "" {
		t.Errorf("processes mismatch (-want +got):\n%s", diff)
	}
	if doc.Default != "web" {
		t.Errorf("default = %q", doc.Default)
	}
}

func TestHCL(t *testing.T) {
	out := format(t, "hcl", parse(t, "web: rails s\n"))
	file, diags := hclsyntax.ParseConfig(out, "result.hcl", hcl.InitialPos)
	if diags.HasErrors() {
		t.Fatalf("invalid HCL: %s\n%s", diags.Error(), out)
	}
	body := file.Body.(*hclsyntax.Body)
	if len(body.Blocks) != 1 || body.Blocks[0].Labels[0] != "web" {
		t.Errorf("unexpected blocks in:\n%s", out)
	}
	success, _ := body.Attributes["success"].Expr.Value(nil)
	if !success.True() {
		t.Errorf("success attribute false in:\n%s", out)
	}
}

func TestText(t *testing.T) {
	out := string(format(t, "text", parse(t, "# c\nweb:   rails s\n\nworker: rake\n")))
	if out != "web: rails s\nworker: rake\n" {
		t.Errorf("text = %q", out)
	}

	out = string(format(t, "text", parse(t, "-bad: x")))
	if !strings.Contains(out, "1 | -bad: x\n  | ^") {
		t.Errorf("text failure output:\n%s", out)
	}
	if !strings.Contains(out, "suggestion:") {
		t.Errorf("missing suggestion:\n%s", out)
	}
}
