// Package procfile parses the Procfile process declaration format.
//
// A Procfile declares one process per line as `name: command`. Names must be
// lowercase alphanumeric with inner dashes; names that only differ by case or
// by `_` instead of `-` are corrected with a warning. Comments start with `#`.
package procfile

import "slices"

// Procfile is the successful result of parsing: the declared processes in
// source order and any warnings raised while correcting the input.
type Procfile struct {
	processes map[string]string
	names     []string
	Warnings  []string
}

// New returns an empty Procfile.
func New() *Procfile {
	return &Procfile{processes: make(map[string]string)}
}

// Insert sets the command for name and moves name to the end of the order.
// Reports whether name was already present.
func (p *Procfile) Insert(name, command string) bool {
	if p.processes == nil {
		p.processes = make(map[string]string)
	}
	_, exists := p.processes[name]
	if exists {
		p.names = slices.DeleteFunc(p.names, func(n string) bool { return n == name })
	}
	p.names = append(p.names, name)
	p.processes[name] = command
	return exists
}

// Get returns the command declared for name.
func (p *Procfile) Get(name string) (string, bool) {
	cmd, ok := p.processes[name]
	return cmd, ok
}

// Names returns process names in declaration order.
func (p *Procfile) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Len returns the number of declared processes.
func (p *Procfile) Len() int {
	return len(p.names)
}

// Each calls fn for every process in declaration order.
func (p *Procfile) Each(fn func(name, command string)) {
	for _, name := range p.names {
		fn(name, p.processes[name])
	}
}

// String serializes the processes back into Procfile form.
func (p *Procfile) String() string {
	var out []byte
	p.Each(func(name, command string) {
		out = append(out, name...)
		out = append(out, ": "...)
		out = append(out, command...)
		out = append(out, '\n')
	})
	return string(out)
}
