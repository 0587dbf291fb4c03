package procfile

// cursor is an immutable position over the input. Parse functions take a
// cursor by value and return the advanced one, so a failed attempt leaves the
// caller's position untouched.
type cursor struct {
	input string
	pos   int
}

func newCursor(input string) cursor {
	return cursor{input: input}
}

func (c cursor) eof() bool {
	return c.pos >= len(c.input)
}

// peek returns the byte at the current position, or 0 at end of input.
func (c cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.input[c.pos]
}

func (c cursor) rest() string {
	return c.input[c.pos:]
}

func (c cursor) advance(n int) cursor {
	c.pos += n
	if c.pos > len(c.input) {
		c.pos = len(c.input)
	}
	return c
}

func isLowerAlphanum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

func isDash(b byte) bool {
	return b == '-'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// space0 skips zero or more spaces and tabs.
func space0(c cursor) cursor {
	for !c.eof() && isSpace(c.peek()) {
		c.pos++
	}
	return c
}

// lineEnding consumes "\n" or "\r\n".
func lineEnding(c cursor) (cursor, bool) {
	rest := c.rest()
	switch {
	case len(rest) > 0 && rest[0] == '\n':
		return c.advance(1), true
	case len(rest) > 1 && rest[0] == '\r' && rest[1] == '\n':
		return c.advance(2), true
	}
	return c, false
}

// lineEndingOrEOF consumes a line ending, or succeeds without consuming at end of input.
func lineEndingOrEOF(c cursor) (cursor, bool) {
	if c.eof() {
		return c, true
	}
	return lineEnding(c)
}

// tillLineEnding returns the text up to (excluding) the next line ending or
// end of input. A carriage return that is not part of "\r\n" stops the scan
// and is reported as not terminated.
func tillLineEnding(c cursor) (string, cursor, bool) {
	start := c.pos
	for !c.eof() {
		switch c.peek() {
		case '\n':
			return c.input[start:c.pos], c, true
		case '\r':
			if c.pos+1 < len(c.input) && c.input[c.pos+1] == '\n' {
				return c.input[start:c.pos], c, true
			}
			return c.input[start:c.pos], c, false
		}
		c.pos++
	}
	return c.input[start:c.pos], c, true
}

// tillNewlineOrEOF returns the text up to the line ending and consumes the
// line ending itself.
func tillNewlineOrEOF(c cursor) (string, cursor, error) {
	text, next, ok := tillLineEnding(c)
	if !ok {
		return "", c, &syntaxError{
			offset:   next.pos,
			label:    "line ending",
			expected: []string{"`\\n` or `\\r\\n`"},
		}
	}
	next, _ = lineEndingOrEOF(next)
	return text, next, nil
}
