package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"

	"github.com/procfile-cnb/parser/internal/launch"
	"github.com/procfile-cnb/parser/internal/logger"
	"github.com/procfile-cnb/parser/internal/procfile"
	"github.com/procfile-cnb/parser/internal/result"
)

const keySuggestion = "Process names must be 1-63 lowercase letters, digits or inner dashes, e.g. `web: bundle exec puma`"

// ProcfileParser parses Procfile text into launch files.
type ProcfileParser struct {
	opts Options
}

// New returns a new parser with the given options.
func New(opts Options) *ProcfileParser {
	if opts.Filename == "" {
		opts.Filename = DefaultOptions().Filename
	}
	if opts.Logger == nil {
		opts.Logger = logger.Default
	}
	return &ProcfileParser{opts: opts}
}

// Parse parses the Procfile, converts it to a launch descriptor, and renders
// the launch files. Syntax and conversion failures are reported in the
// result; the returned error is reserved for failures to render output.
func (p *ProcfileParser) Parse(input string) (*result.ParseResult, error) {
	out := &result.ParseResult{Success: true, Processes: []result.Process{}}
	log := p.opts.Logger.With("file", p.opts.Filename)

	// 1. Procfile syntax
	pf, err := procfile.ParseWithOptions(input, procfile.Options{Strict: p.opts.Strict})
	if err != nil {
		var perr *procfile.ParseError
		if !errors.As(err, &perr) {
			return nil, err
		}
		rng := SourceRange(p.opts.Filename, perr)
		log.Warn("procfile parse failed", "line", rng.Start.Line, "column", rng.Start.Column, "error", perr.Message)
		out.Fail(result.Error{
			Type:       result.ErrorParse,
			Message:    perr.Message,
			Suggestion: keySuggestion,
			Range:      &rng,
			Diagnostic: perr.Error(),
		})
		return out, nil
	}
	for _, w := range pf.Warnings {
		out.Warn(WarningType(w), w)
	}

	// 2. Convert to launch processes
	l, err := launch.FromProcfile(pf)
	if err != nil {
		var cerr *launch.ConversionError
		if !errors.As(err, &cerr) {
			return nil, err
		}
		log.Warn("process type rejected", "process", cerr.ProcessType)
		out.Fail(result.Error{
			Type:    result.ErrorProcessType,
			Message: cerr.Error(),
		})
		return out, nil
	}
	for _, proc := range l.Processes {
		out.Processes = append(out.Processes, result.Process{
			Name: proc.Type, Command: proc.Command, Default: proc.Default,
		})
	}
	out.Default, _ = l.DefaultProcess()

	// 3. Render launch files
	b := launch.NewBuilder(p.opts.EmitHCL)
	launchTOML, err := launch.TOML(l)
	if err != nil {
		return nil, err
	}
	b.SetLaunchTOML(launchTOML)
	if p.opts.EmitHCL {
		b.SetLaunchHCL(launch.HCL(l))
	}
	out.Files = b.Build()

	log.Debug("procfile parsed", "processes", len(out.Processes), "warnings", len(out.Warnings))
	return out, nil
}

// WarningType classifies a Procfile warning message.
func WarningType(message string) string {
	switch {
	case message == procfile.EmptyFileWarning:
		return result.WarningEmptyFile
	case strings.HasPrefix(message, "Duplicate key "):
		return result.WarningDuplicateKey
	case strings.HasPrefix(message, "Procfile key "):
		return result.WarningKeyCorrected
	}
	return "warning"
}

// SourceRange converts the byte span of a parse error into an hcl.Range.
func SourceRange(filename string, perr *procfile.ParseError) hcl.Range {
	line, column := perr.Line()
	return hcl.Range{
		Filename: filename,
		Start:    hcl.Pos{Line: line, Column: column, Byte: perr.Span.Start},
		End:      position(perr.Input, perr.Span.End),
	}
}

func position(input string, offset int) hcl.Pos {
	line, column := procfile.LineColumn(input, offset)
	return hcl.Pos{Line: line, Column: column, Byte: offset}
}

// Summary describes the declared process types, or "(none)".
func Summary(res *result.ParseResult) string {
	if len(res.Processes) == 0 {
		return "(none)"
	}
	return strings.Join(res.Names(), ", ")
}

// ErrParseFailed is returned by callers that turn an unsuccessful result into an error.
var ErrParseFailed = errors.New("procfile could not be parsed")

// AsError returns nil for a successful result, or an error wrapping
// ErrParseFailed with the first recorded failure.
func AsError(res *result.ParseResult) error {
	if res.Success || len(res.Errors) == 0 {
		return nil
	}
	e := res.Errors[0]
	if e.Diagnostic != "" {
		return fmt.Errorf("%w:\n%s", ErrParseFailed, e.Diagnostic)
	}
	return fmt.Errorf("%w: %s", ErrParseFailed, e.Message)
}
