package procfile

import (
	"errors"
	"fmt"
	"strings"
)

// parsePermissiveKey takes every character up to the next `:` on the current
// line and consumes the delimiter.
func parsePermissiveKey(c cursor) (string, cursor, bool) {
	rest := c.rest()
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case ':':
			return rest[:i], c.advance(i + 1), true
		case '\n':
			return "", c, false
		}
	}
	return "", c, false
}

// normalizeKey replaces `_` with `-` and lowercases ASCII letters. The result
// has the same byte length as key, so offsets into it map onto the original.
func normalizeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		ch := key[i]
		switch {
		case ch == '_':
			ch = '-'
		case ch >= 'A' && ch <= 'Z':
			ch += 'a' - 'A'
		}
		b.WriteByte(ch)
	}
	return b.String()
}

// parsePermissiveKeyFixed extracts a semi-valid key and corrects it.
//
// Semi-valid key transformations:
//   - Remove spaces at the start
//   - Transform `_` to `-`
//   - Transform uppercase to lowercase characters
//
// Returns the original and fixed keys. When the corrected key is still
// invalid, the returned error points into the original line at the character
// the corrected key failed on.
func parsePermissiveKeyFixed(c cursor, strictErr error) (original, fixed string, next cursor, err error) {
	original, next, ok := parsePermissiveKey(c)
	if !ok {
		return "", "", c, strictErr
	}

	fixedInput := newCursor(normalizeKey(original) + ":")
	fixed, _, err = parseKey(space0(fixedInput))
	if err != nil {
		var se *syntaxError
		if errors.As(err, &se) {
			// caret follows the corrected key, mapped back onto the line
			se.offset += c.pos
		}
		return "", "", c, err
	}
	return original, fixed, next, nil
}

func correctedKeyWarning(original, fixed string) string {
	return fmt.Sprintf("Procfile key `%s` has been corrected to `%s`. Please update your Procfile.", original, fixed)
}
