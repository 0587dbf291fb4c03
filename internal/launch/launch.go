// Package launch converts a parsed Procfile into a buildpack launch descriptor.
package launch

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/procfile-cnb/parser/internal/procfile"
)

// DefaultProcessType is made the default process when declared.
const DefaultProcessType = "web"

// ErrInvalidProcessType is wrapped by ConversionError.
var ErrInvalidProcessType = errors.New("invalid process type")

var processTypePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Process is a single runnable process in launch.toml.
type Process struct {
	Type    string   `toml:"type" json:"type" yaml:"type"`
	Command string   `toml:"command" json:"command" yaml:"command"`
	Args    []string `toml:"args" json:"args" yaml:"args"`
	Direct  bool     `toml:"direct" json:"direct" yaml:"direct"`
	Default bool     `toml:"default" json:"default" yaml:"default"`
}

// Launch is the launch descriptor written for the platform.
type Launch struct {
	Processes []Process `toml:"processes" json:"processes" yaml:"processes"`
}

// ConversionError reports a Procfile key the platform cannot use as a
// process type.
type ConversionError struct {
	ProcessType string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("Incompatible process type %q: must match %s", e.ProcessType, processTypePattern)
}

func (e *ConversionError) Unwrap() error {
	return ErrInvalidProcessType
}

// ValidateProcessType checks name against the platform process type grammar.
func ValidateProcessType(name string) error {
	if !processTypePattern.MatchString(name) {
		return &ConversionError{ProcessType: name}
	}
	return nil
}

// FromProcfile builds one process per Procfile entry, in declaration order.
// The `web` process is the default; a sole process is the default whatever
// its name.
func FromProcfile(p *procfile.Procfile) (*Launch, error) {
	l := &Launch{Processes: make([]Process, 0, p.Len())}

	var err error
	p.Each(func(name, command string) {
		if err != nil {
			return
		}
		if verr := ValidateProcessType(name); verr != nil {
			err = verr
			return
		}
		l.Processes = append(l.Processes, Process{
			Type:    name,
			Command: command,
			Args:    []string{},
			Default: name == DefaultProcessType,
		})
	})
	if err != nil {
		return nil, err
	}

	if len(l.Processes) == 1 {
		l.Processes[0].Default = true
	}
	return l, nil
}

// DefaultProcess returns the type of the default process, if any.
func (l *Launch) DefaultProcess() (string, bool) {
	for _, p := range l.Processes {
		if p.Default {
			return p.Type, true
		}
	}
	return "", false
}

// Types returns process types in order.
func (l *Launch) Types() []string {
	out := make([]string, 0, len(l.Processes))
	for _, p := range l.Processes {
		out = append(out, p.Type)
	}
	return out
}
