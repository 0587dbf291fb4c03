package parser

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/google/go-cmp/cmp"

	"github.com/procfile-cnb/parser/internal/launch"
	"github.com/procfile-cnb/parser/internal/logger"
	"github.com/procfile-cnb/parser/internal/result"
)

func quietOptions() Options {
	opts := DefaultOptions()
	opts.Logger = logger.NewWithWriter(io.Discard, slog.LevelError)
	return opts
}

func TestParseSuccess(t *testing.T) {
	res, err := New(quietOptions()).Parse("web: rails s\nworker: rake sidekiq\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected success, errors: %+v", res.Errors)
	}
	want := []result.Process{
		{Name: "web", Command: "rails s", Default: true},
		{Name: "worker", Command: "rake sidekiq"},
	}
	if diff := cmp.Diff(want, res.Processes); diff != "" {
		t.Errorf("processes mismatch (-want +got):\n%s", diff)
	}
	if res.Default != "web" {
		t.Errorf("default = %q", res.Default)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %+v", res.Warnings)
	}

	var l launch.Launch
	if _, err := toml.Decode(string(res.Files[launch.LaunchFile]), &l); err != nil {
		t.Fatalf("decode launch.toml: %v", err)
	}
	if diff := cmp.Diff([]string{"web", "worker"}, l.Types()); diff != "" {
		t.Errorf("launch.toml types mismatch (-want +got):\n%s", diff)
	}
	if _, ok := res.Files[launch.HCLFile]; ok {
		t.Error("launch.hcl written without EmitHCL")
	}
}

func TestParseEmitHCL(t *testing.T) {
	opts := quietOptions()
	opts.EmitHCL = true
	res, err := New(opts).Parse("worker: sidekiq")
	if err != nil {
		t.Fatal(err)
	}
	hclFile := string(res.Files[launch.HCLFile])
	if !strings.Contains(hclFile, `process "worker"`) {
		t.Errorf("launch.hcl missing process block:\n%s", hclFile)
	}
	if res.Default != "worker" {
		t.Errorf("sole process should be default, got %q", res.Default)
	}
}

func TestParseWarningsAreTyped(t *testing.T) {
	res, err := New(quietOptions()).Parse("Web: a\nweb: b\n")
	if err != nil {
		t.Fatal(err)
	}
	var types []string
	for _, w := range res.Warnings {
		types = append(types, w.Type)
	}
	want := []string{result.WarningKeyCorrected, result.WarningDuplicateKey}
	if diff := cmp.Diff(want, types); diff != "" {
		t.Errorf("warning types mismatch (-want +got):\n%s", diff)
	}

	res, _ = New(quietOptions()).Parse("# nothing\n")
	if len(res.Warnings) != 1 || res.Warnings[0].Type != result.WarningEmptyFile {
		t.Errorf("warnings = %+v", res.Warnings)
	}
	if !res.Success {
		t.Error("empty Procfile should succeed")
	}
}

func TestParseFailureCarriesRange(t *testing.T) {
	var logs bytes.Buffer
	opts := DefaultOptions()
	opts.Filename = "app/Procfile"
	opts.Logger = logger.NewWithWriter(&logs, slog.LevelWarn)

	res, err := New(opts).Parse("web: ok\nis_w.e.b: echo hello\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Success {
		t.Fatal("expected failure")
	}
	if len(res.Processes) != 0 || len(res.Files) != 0 {
		t.Errorf("no partial output expected, got %+v / %d files", res.Processes, len(res.Files))
	}
	e := res.Errors[0]
	if e.Type != result.ErrorParse || e.Severity != "error" {
		t.Errorf("error = %+v", e)
	}
	if e.Range == nil {
		t.Fatal("missing range")
	}
	if e.Range.Filename != "app/Procfile" || e.Range.Start.Line != 2 || e.Range.Start.Column != 5 || e.Range.Start.Byte != 12 {
		t.Errorf("range = %+v", e.Range)
	}
	if !strings.Contains(e.Diagnostic, "2 | is_w.e.b: echo hello\n  |     ^") {
		t.Errorf("diagnostic:\n%s", e.Diagnostic)
	}
	if !strings.Contains(logs.String(), "procfile parse failed") {
		t.Errorf("failure not logged: %s", logs.String())
	}

	err = AsError(res)
	if !errors.Is(err, ErrParseFailed) {
		t.Errorf("AsError = %v", err)
	}
}

func TestParseStrict(t *testing.T) {
	opts := quietOptions()
	opts.Strict = true
	res, err := New(opts).Parse("Web_Worker: run")
	if err != nil {
		t.Fatal(err)
	}
	if res.Success {
		t.Error("strict mode accepted a key needing correction")
	}
}

func TestSummary(t *testing.T) {
	if got := Summary(&result.ParseResult{}); got != "(none)" {
		t.Errorf("Summary = %q", got)
	}
	res := &result.ParseResult{Processes: []result.Process{{Name: "web"}, {Name: "worker"}}}
	if got := Summary(res); got != "web, worker" {
		t.Errorf("Summary = %q", got)
	}
	if AsError(res) != nil {
		t.Error("AsError on a result without errors should be nil")
	}
}
