package procfile

// MaxKeyLength is the longest process name a Procfile may declare.
const MaxKeyLength = 63

const (
	expectLowerAlphanum      = "lowercase alphanumeric value (a-z0-9)"
	expectInnerKeyCharacter  = "lowercase alphanum (a-z0-9) or `-`"
	expectKeyDelimiter       = "`:`"
	expectKeyLengthWithinMax = "keys contain 63 characters or fewer"
)

// parseKey recognizes a strict Procfile key and consumes the `:` that
// follows it.
//
//   - Must start and end with a lowercase alphanumeric value (a-z0-9)
//   - Inner characters may also be a dash `-`
//   - At most MaxKeyLength characters
func parseKey(c cursor) (string, cursor, error) {
	start := c.pos
	if c.eof() || !isLowerAlphanum(c.peek()) {
		return "", c, &syntaxError{
			offset:   c.pos,
			label:    "first key character",
			expected: []string{expectLowerAlphanum},
		}
	}
	c = c.advance(1)

	for !c.eof() && (isLowerAlphanum(c.peek()) || isDash(c.peek())) {
		c = c.advance(1)
	}
	end := c.pos

	switch {
	case c.eof():
		return "", c, &syntaxError{
			offset:   c.pos,
			label:    "key delimiter",
			expected: []string{expectKeyDelimiter},
		}
	case c.peek() != ':':
		return "", c, &syntaxError{
			offset:   c.pos,
			label:    "inner key character",
			expected: []string{expectInnerKeyCharacter},
		}
	case isDash(c.input[end-1]):
		return "", c, &syntaxError{
			offset:   end - 1,
			label:    "last key character",
			expected: []string{expectLowerAlphanum},
		}
	}

	key := c.input[start:end]
	if len(key) > MaxKeyLength {
		return "", cursor{input: c.input, pos: start}, &syntaxError{
			offset:   start,
			label:    "key",
			expected: []string{expectKeyLengthWithinMax},
		}
	}
	return key, c.advance(1), nil
}
