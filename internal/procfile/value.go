package procfile

import "errors"

// parseValue consumes the command after a key delimiter along with the line
// ending that terminates it.
func parseValue(c cursor) (string, cursor, error) {
	start := c.pos
	value, next, err := tillNewlineOrEOF(space0(c))
	if err != nil {
		var se *syntaxError
		if errors.As(err, &se) {
			se.label = "value"
		}
		return "", c, err
	}
	if value == "" {
		return "", c, &syntaxError{
			offset: start,
			label:  "value",
			cause:  "value cannot be empty",
		}
	}
	return value, next, nil
}

// parseComment consumes a `#` comment line, optionally preceded by spaces.
func parseComment(c cursor) (string, cursor, bool) {
	next := space0(c)
	if next.peek() != '#' {
		return "", c, false
	}
	next = next.advance(1)
	start := next.pos
	for !next.eof() && next.peek() != '\n' {
		next = next.advance(1)
	}
	text := next.input[start:next.pos]
	if n := len(text); n > 0 && text[n-1] == '\r' {
		text = text[:n-1]
	}
	next, _ = lineEndingOrEOF(next)
	return text, next, true
}

// parseBlankLine consumes a line of optional spaces. A blank line must
// consume at least one byte.
func parseBlankLine(c cursor) (cursor, bool) {
	next, ok := lineEndingOrEOF(space0(c))
	if !ok || next.pos == c.pos {
		return c, false
	}
	return next, true
}

// parseIgnoredLines consumes one or more comment or blank lines.
func parseIgnoredLines(c cursor) (cursor, bool) {
	start := c.pos
	for !c.eof() {
		if _, next, ok := parseComment(c); ok {
			c = next
			continue
		}
		if next, ok := parseBlankLine(c); ok {
			c = next
			continue
		}
		break
	}
	return c, c.pos > start
}
