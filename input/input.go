package input

import (
	"os"
	"strconv"
	"strings"
)

// Common separators.
const (
	Lines  = "\n"   // one record per line
	Blocks = "\n\n" // records separated by a blank line
)

// Read returns the whole content of path with CRLF line endings folded
// to LF. Read failures are reported as *IOError.
func Read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Path: path, Err: err}
	}

	return strings.ReplaceAll(string(b), "\r\n", "\n"), nil
}

// Parse reads path and splits it into records with Split.
//
// Example:
//
//	nums, err := input.Parse("inputs/day1.txt", input.Lines, input.Int)
func Parse[T any](path, sep string, parse func(string) (T, error)) ([]T, error) {
	text, err := Read(path)
	if err != nil {
		return nil, err
	}

	return Split(text, sep, parse)
}

// Split trims text, cuts it on sep and parses every chunk in order.
// Blank text yields an empty result. The first chunk parse rejects is
// returned as a *ParseError.
// Complexity: O(len(text)) plus the cost of parse.
func Split[T any](text, sep string, parse func(string) (T, error)) ([]T, error) {
	if sep == "" {
		return nil, ErrEmptySeparator
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return []T{}, nil
	}

	chunks := strings.Split(text, sep)
	out := make([]T, 0, len(chunks))
	for _, c := range chunks {
		v, err := parse(c)
		if err != nil {
			return nil, &ParseError{Chunk: c, Err: err}
		}
		out = append(out, v)
	}

	return out, nil
}

// Int parses a base-10 integer, ignoring surrounding blanks.
func Int(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// Text returns s unchanged.
func Text(s string) (string, error) {
	return s, nil
}
