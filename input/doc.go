// Package input loads puzzle input files and parses them into records.
//
// A file is read whole, trimmed of surrounding whitespace, split on a
// caller-chosen separator (Lines or Blocks for the usual layouts), and each
// chunk is handed to a parse function. The first failure stops the load.
//
// Errors:
//
//   - *IOError     the file could not be read; carries the path and cause
//   - *ParseError  a chunk was rejected; carries the chunk text and cause
//   - ErrEmptySeparator  Split was called with sep == ""
//
// Both typed errors implement Unwrap, so errors.Is(err, fs.ErrNotExist)
// and errors.As(err, &perr) behave as expected.
package input
