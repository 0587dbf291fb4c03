package display

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorHeader  = lipgloss.Color("#D946EF") // Magenta
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorValue   = lipgloss.Color("#06B6D4") // Cyan
)

type styles struct {
	header        lipgloss.Style
	warningHeader lipgloss.Style
	warningBody   lipgloss.Style
	errorHeader   lipgloss.Style
	errorBody     lipgloss.Style
	value         lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header:        r.NewStyle().Foreground(ColorHeader).Bold(true),
		warningHeader: r.NewStyle().Foreground(ColorWarning).Bold(true),
		warningBody:   r.NewStyle().Foreground(ColorWarning),
		errorHeader:   r.NewStyle().Foreground(ColorError).Bold(true),
		errorBody:     r.NewStyle().Foreground(ColorError),
		value:         r.NewStyle().Foreground(ColorValue),
	}
}
