package registry

import (
	"sort"
	"sync"

	"github.com/procfile-cnb/parser/internal/result"
)

// Formatter is the interface each output format must implement.
type Formatter interface {
	Name() string
	Format(res *result.ParseResult) ([]byte, error)
}

// Default is the global formatter registry.
var Default = New()

// Registry holds output formatters.
type Registry struct {
	mu         sync.RWMutex
	formatters map[string]Formatter
}

// New returns a new empty registry.
func New() *Registry {
	return &Registry{formatters: make(map[string]Formatter)}
}

// Register adds a formatter under its name.
func (r *Registry) Register(f Formatter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.formatters[f.Name()] = f
}

// Get returns the formatter for name, or nil and false.
func (r *Registry) Get(name string) (Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formatters[name]
	return f, ok
}

// ListSupportedFormats returns all registered format names, sorted.
func (r *Registry) ListSupportedFormats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
