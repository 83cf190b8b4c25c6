package dictionary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

const maxFragmentLength = 80

var errNotArray = errors.New("dictionary data must be a JSON array of entries")

// Decode parses data as a JSON array of entries.
//
// Decoding is all-or-nothing: the first malformed record aborts the whole
// decode with a *DecodeError and no entries are returned.
func Decode(data []byte) ([]Entry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &DecodeError{Index: -1, Offset: -1, Err: errNotArray}
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, newSyntaxDecodeError(data, err)
	}

	validator, err := newEntryValidator()
	if err != nil {
		return nil, fmt.Errorf("newEntryValidator > %w", err)
	}

	entries := make([]Entry, 0, len(records))
	for i, record := range records {
		var entry Entry
		if err := json.Unmarshal(record, &entry); err != nil {
			return nil, &DecodeError{Index: i, Offset: -1, Fragment: fragment(record), Err: err}
		}
		if err := validator.check(entry); err != nil {
			return nil, &DecodeError{Index: i, Offset: -1, Fragment: fragment(record), Err: err}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func newSyntaxDecodeError(data []byte, err error) *DecodeError {
	decodeErr := &DecodeError{Index: -1, Offset: -1, Err: err}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		decodeErr.Offset = syntaxErr.Offset
	}
	if decodeErr.Offset > 0 {
		decodeErr.Line, decodeErr.Column = position(data, decodeErr.Offset)
	}
	return decodeErr
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	head := data[:offset]
	line := bytes.Count(head, []byte{'\n'}) + 1
	column := len(head) - bytes.LastIndexByte(head, '\n') - 1
	return line, column
}

func fragment(record json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, record); err != nil {
		buf.Reset()
		buf.Write(record)
	}
	runes := []rune(buf.String())
	if len(runes) > maxFragmentLength {
		return string(runes[:maxFragmentLength]) + "..."
	}
	return string(runes)
}
