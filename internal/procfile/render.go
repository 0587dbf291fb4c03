package procfile

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const tabWidth = 4

// Render formats message and a one character span of input as a source
// excerpt with a line number gutter and a caret under the span start:
//
//	error: invalid inner key character
//	expected lowercase alphanum (a-z0-9) or `-`
//	  |
//	1 | is_w.e.b: echo hello
//	  |     ^
func Render(message string, span Span, input string) string {
	start := span.Start
	if start < 0 {
		start = 0
	}
	if start > len(input) {
		start = len(input)
	}

	lineStart := strings.LastIndexByte(input[:start], '\n') + 1
	lineEnd := len(input)
	if i := strings.IndexByte(input[lineStart:], '\n'); i >= 0 {
		lineEnd = lineStart + i
	}
	source := strings.TrimSuffix(input[lineStart:lineEnd], "\r")
	if start-lineStart > len(source) {
		start = lineStart + len(source)
	}

	lineNo := strconv.Itoa(strings.Count(input[:lineStart], "\n") + 1)
	gutter := strings.Repeat(" ", len(lineNo))

	var b strings.Builder
	b.WriteString("error: ")
	b.WriteString(message)
	b.WriteString("\n")
	b.WriteString(gutter + " |\n")
	b.WriteString(lineNo + " | " + expandTabs(source) + "\n")
	b.WriteString(gutter + " | " + strings.Repeat(" ", displayWidth(input[lineStart:start])) + "^\n")
	return b.String()
}

// LineColumn converts a byte offset into a 1-based line and a 1-based column
// counted in characters.
func LineColumn(input string, offset int) (line, column int) {
	if offset > len(input) {
		offset = len(input)
	}
	lineStart := strings.LastIndexByte(input[:offset], '\n') + 1
	line = strings.Count(input[:lineStart], "\n") + 1
	column = utf8.RuneCountInString(input[lineStart:offset]) + 1
	return line, column
}

// crSymbol stands in for a carriage return that does not end a line.
const crSymbol = "\u240d"

func expandTabs(s string) string {
	s = strings.ReplaceAll(s, "\r", crSymbol)
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

func displayWidth(s string) int {
	width := 0
	for _, r := range s {
		switch r {
		case '\t':
			width += tabWidth
			continue
		case '\r':
			width++
			continue
		}
		width += runewidth.RuneWidth(r)
	}
	return width
}
