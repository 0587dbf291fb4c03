package procfile

import (
	"errors"
	"fmt"
)

// EmptyFileWarning is reported when a Procfile declares no processes.
const EmptyFileWarning = "Empty file, no processes defined"

// Options configures parsing.
type Options struct {
	// Strict disables permissive key correction; keys must match the strict
	// grammar exactly.
	Strict bool
}

type keyValue struct {
	key   string
	value string
}

// Parse parses input with default options.
func Parse(input string) (*Procfile, error) {
	return ParseWithOptions(input, Options{})
}

// ParseWithOptions parses a whole Procfile. On failure the returned error is a
// *ParseError and no Procfile is returned.
func ParseWithOptions(input string, opts Options) (*Procfile, error) {
	keyValues, warnings, err := parseLines(input, opts)
	if err != nil {
		var se *syntaxError
		if errors.As(err, &se) {
			return nil, newParseError(se, input)
		}
		return nil, err
	}

	out := New()
	out.Warnings = warnings
	for _, kv := range keyValues {
		if out.Insert(kv.key, kv.value) {
			out.Warnings = append(out.Warnings, duplicateKeyWarning(kv.key, kv.value))
		}
	}
	if out.Len() == 0 {
		out.Warnings = append(out.Warnings, EmptyFileWarning)
	}
	return out, nil
}

// parseLines reads every entry in order, before duplicates are resolved.
func parseLines(input string, opts Options) ([]keyValue, []string, error) {
	var keyValues []keyValue
	var warnings []string

	c := newCursor(input)
	for !c.eof() {
		c, _ = parseIgnoredLines(c)
		if c.eof() {
			break
		}

		kv, next, err := parseKeyValue(c)
		if err != nil {
			if opts.Strict {
				return nil, nil, err
			}
			original, fixed, afterKey, perr := parsePermissiveKeyFixed(c, err)
			if perr != nil {
				return nil, nil, perr
			}
			value, afterValue, verr := parseValue(afterKey)
			if verr != nil {
				return nil, nil, verr
			}
			warnings = append(warnings, correctedKeyWarning(original, fixed))
			kv, next = keyValue{key: fixed, value: value}, afterValue
		}
		keyValues = append(keyValues, kv)

		c, _ = parseIgnoredLines(next)
	}
	return keyValues, warnings, nil
}

// parseKeyValue parses a strictly valid `key: value` line.
func parseKeyValue(c cursor) (keyValue, cursor, error) {
	key, next, err := parseKey(c)
	if err != nil {
		return keyValue{}, c, err
	}
	value, next, err := parseValue(next)
	if err != nil {
		return keyValue{}, c, err
	}
	return keyValue{key: key, value: value}, next, nil
}

func duplicateKeyWarning(key, value string) string {
	return fmt.Sprintf("Duplicate key `%s` found. The value `%s` will be used.", key, value)
}
