package input

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptySeparator is returned by Split and Parse when sep is empty.
var ErrEmptySeparator = errors.New("input: separator must not be empty")

// IOError reports a failure to read the input file at Path.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports a chunk of input that did not parse into a record.
type ParseError struct {
	Chunk string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("input: cannot parse %q", e.Chunk)
	}

	return fmt.Sprintf("input: cannot parse %q: %v", e.Chunk, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
