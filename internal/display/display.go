// Package display writes buildpack output in the Heroku style:
//
//	[Discovering process types]
//	Procfile declares types -> web, worker
package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Writer prints headers, info lines, warnings and errors to an output stream.
type Writer struct {
	out    io.Writer
	styles styles
	plain  bool
}

// New returns a Writer that colors output when out is a terminal.
func New(out io.Writer) *Writer {
	return &Writer{out: out, styles: newStyles(lipgloss.NewRenderer(out))}
}

// NewPlain returns a Writer that never emits escape sequences.
func NewPlain(out io.Writer) *Writer {
	return &Writer{out: out, plain: true}
}

func (w *Writer) render(style lipgloss.Style, s string) string {
	if w.plain {
		return s
	}
	return style.Render(s)
}

// Header prints `[header]` after a blank line.
func (w *Writer) Header(header string) {
	fmt.Fprintf(w.out, "\n%s\n", w.render(w.styles.header, "["+header+"]"))
}

// Info prints a plain line.
func (w *Writer) Info(format string, args ...any) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Warning prints a `[Warning: header]` block.
func (w *Writer) Warning(header, body string) {
	fmt.Fprintf(w.out, "\n%s\n%s\n",
		w.render(w.styles.warningHeader, "[Warning: "+header+"]"),
		w.render(w.styles.warningBody, body))
}

// Error prints an `[Error: header]` block.
func (w *Writer) Error(header, body string) {
	fmt.Fprintf(w.out, "\n%s\n%s\n",
		w.render(w.styles.errorHeader, "[Error: "+header+"]"),
		w.render(w.styles.errorBody, body))
}

// Value highlights an inline value such as a process name.
func (w *Writer) Value(s string) string {
	return w.render(w.styles.value, s)
}

// WithLink appends a reference link to a message.
func WithLink(message, link string) string {
	return fmt.Sprintf("%s\n\nLink: %s", message, link)
}
