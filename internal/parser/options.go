package parser

import "log/slog"

// Options configures the parser behavior.
type Options struct {
	// Filename is reported in error ranges.
	Filename string
	// Strict rejects keys that would otherwise be corrected with a warning.
	Strict bool
	// EmitHCL generates launch.hcl next to launch.toml when true.
	EmitHCL bool
	// Logger receives debug and failure records; nil uses logger.Default.
	Logger *slog.Logger
}

// DefaultOptions returns default parser options.
func DefaultOptions() Options {
	return Options{
		Filename: "Procfile",
	}
}
