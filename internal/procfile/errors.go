package procfile

import (
	"strings"
	"unicode/utf8"
)

// syntaxError is a low level failure at a byte offset. It records what was
// being parsed and which characters would have been accepted there.
type syntaxError struct {
	offset   int
	label    string
	expected []string
	cause    string
}

func (e *syntaxError) Error() string {
	var lines []string
	if e.label != "" {
		lines = append(lines, "invalid "+e.label)
	}
	if len(e.expected) > 0 {
		lines = append(lines, "expected "+strings.Join(e.expected, ", "))
	}
	if e.cause != "" {
		lines = append(lines, e.cause)
	}
	return strings.Join(lines, "\n")
}

// Span is a half-open byte range into the parsed input.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ParseError is the single fatal error of a failed parse. It keeps its own
// copy of the input so the diagnostic can be rendered after Parse returns.
type ParseError struct {
	Message string
	Span    Span
	Input   string
}

func newParseError(err *syntaxError, input string) *ParseError {
	start := err.offset
	if start > len(input) {
		start = len(input)
	}
	return &ParseError{
		Message: err.Error(),
		Span:    Span{Start: start, End: nextCharBoundary(input, start)},
		Input:   strings.Clone(input),
	}
}

// nextCharBoundary returns the offset of the character boundary following
// start, or start itself at end of input.
func nextCharBoundary(input string, start int) int {
	if start >= len(input) {
		return start
	}
	_, size := utf8.DecodeRuneInString(input[start:])
	return start + size
}

// Error returns the rendered diagnostic.
func (e *ParseError) Error() string {
	return Render(e.Message, e.Span, e.Input)
}

// Line returns the 1-based line and column of the span start.
func (e *ParseError) Line() (line, column int) {
	return LineColumn(e.Input, e.Span.Start)
}
