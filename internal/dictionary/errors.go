package dictionary

import (
	"errors"
	"fmt"
)

// ErrDictionaryNotFound is returned when the dictionary file does not exist
// and no remote source is configured to fetch it from.
var ErrDictionaryNotFound = errors.New("dictionary file not found")

// IOError reports a local dictionary file that exists but cannot be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// FetchError reports a failed download of the dictionary file.
// StatusCode is zero when no HTTP response was received.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status code %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// DecodeError reports dictionary data that is not a valid array of entries.
//
// Index is the position of the offending record in the array, or -1 when the
// data could not be parsed as an array at all. In that case Offset, Line and
// Column locate the syntax error.
type DecodeError struct {
	Index    int
	Offset   int64
	Line     int
	Column   int
	Fragment string
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Index < 0 {
		if e.Line > 0 {
			return fmt.Sprintf("invalid dictionary data at line %d, column %d: %v", e.Line, e.Column, e.Err)
		}
		return fmt.Sprintf("invalid dictionary data: %v", e.Err)
	}
	return fmt.Sprintf("invalid entry #%d %s: %v", e.Index, e.Fragment, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
