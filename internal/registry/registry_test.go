package registry

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/procfile-cnb/parser/internal/result"
)

type stubFormatter string

func (s stubFormatter) Name() string { return string(s) }

func (s stubFormatter) Format(*result.ParseResult) ([]byte, error) {
	return []byte(s), nil
}

func TestRegistry(t *testing.T) {
	r := New()
	r.Register(stubFormatter("yaml"))
	r.Register(stubFormatter("json"))

	f, ok := r.Get("json")
	if !ok {
		t.Fatal("json formatter not found")
	}
	out, _ := f.Format(nil)
	if string(out) != "json" {
		t.Errorf("Format = %q", out)
	}
	if _, ok := r.Get("xml"); ok {
		t.Error("unexpected xml formatter")
	}
	if diff := cmp.Diff([]string{"json", "yaml"}, r.ListSupportedFormats()); diff != "" {
		t.Errorf("formats mismatch (-want +got):\n%s", diff)
	}
}
