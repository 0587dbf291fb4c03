// Package source reads Procfile bytes into text for the parser.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrTooLarge is returned when the input exceeds the configured size limit.
	ErrTooLarge = errors.New("procfile exceeds size limit")
	// ErrInvalidEncoding is returned when the decoded input is not valid UTF-8.
	ErrInvalidEncoding = errors.New("procfile is not valid UTF-8")
)

// Read reads and decodes the file at path. maxSize limits the raw byte size;
// 0 means unlimited.
func Read(path string, maxSize int64) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	text, err := Decode(f, maxSize)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return text, nil
}

// Decode reads r and returns its text. A UTF-8 byte order mark is dropped and
// UTF-16 input marked with a byte order mark is converted to UTF-8.
func Decode(r io.Reader, maxSize int64) (string, error) {
	if maxSize > 0 {
		r = io.LimitReader(r, maxSize+1)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if maxSize > 0 && int64(len(raw)) > maxSize {
		return "", fmt.Errorf("%w: more than %d bytes", ErrTooLarge, maxSize)
	}

	decoder := unicode.BOMOverride(transform.Nop)
	text, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	if !utf8.Valid(text) {
		return "", ErrInvalidEncoding
	}
	return string(text), nil
}
