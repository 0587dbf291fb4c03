// Package buildpack implements the detect and build phases around the
// Procfile parser.
package buildpack

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/procfile-cnb/parser/internal/display"
	"github.com/procfile-cnb/parser/internal/parser"
	"github.com/procfile-cnb/parser/internal/result"
	"github.com/procfile-cnb/parser/internal/source"
)

// ProcfileName is the file detected in the application root.
const ProcfileName = "Procfile"

const procfileDocs = "https://devcenter.heroku.com/articles/procfile"

// ErrNoProcfile is returned by Build when the application has no Procfile.
var ErrNoProcfile = errors.New("no Procfile found")

// Detect reports whether appDir contains a Procfile.
func Detect(appDir string) (bool, error) {
	info, err := os.Stat(filepath.Join(appDir, ProcfileName))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// Config configures a build.
type Config struct {
	AppDir    string
	LayersDir string
	// MaxSize limits the Procfile size in bytes; 0 means unlimited.
	MaxSize int64
	Parser  parser.Options
}

// Build parses the application's Procfile and writes the launch files into
// the layers directory.
func Build(cfg Config, out *display.Writer) (*result.ParseResult, error) {
	out.Header("Discovering process types")

	path := filepath.Join(cfg.AppDir, ProcfileName)
	text, err := source.Read(path, cfg.MaxSize)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w in %s", ErrNoProcfile, cfg.AppDir)
	}
	if err != nil {
		out.Error("Cannot read Procfile", err.Error())
		return nil, err
	}

	opts := cfg.Parser
	if opts.Filename == "" {
		opts.Filename = path
	}
	res, err := parser.New(opts).Parse(text)
	if err != nil {
		return nil, err
	}

	for _, w := range res.Warnings {
		out.Warning("Procfile", w.Message)
	}
	if !res.Success {
		for _, e := range res.Errors {
			body := e.Message
			if e.Diagnostic != "" {
				body = e.Diagnostic
			}
			out.Error("Invalid Procfile", display.WithLink(body, procfileDocs))
		}
		return res, parser.AsError(res)
	}

	out.Info("Procfile declares types -> %s", parser.Summary(res))
	if res.Default != "" {
		out.Info("Setting default process type '%s'", out.Value(res.Default))
	}

	if err := writeFiles(cfg.LayersDir, res.Files); err != nil {
		out.Error("Cannot write launch metadata", err.Error())
		return res, err
	}
	return res, nil
}

func writeFiles(dir string, files map[string][]byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
