package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

var (
	ErrEmpty       = errors.New("no JSON value found")
	ErrInvalidUTF8 = errors.New("input is not valid UTF-8")
)

// TrailingDataError is returned by Decode when the input holds more than one
// top-level value.
type TrailingDataError struct {
	Offset int64
}

func (e *TrailingDataError) Error() string {
	return fmt.Sprintf("unexpected data after top-level value at offset %d", e.Offset)
}

// Read returns the full contents of filename, which must be UTF-8. The file is
// closed before Read returns, whether or not reading succeeded.
func Read(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}

	return data, nil
}

// Decode parses data as exactly one JSON value. Numbers are kept as
// json.Number.
//
// A top-level object is decoded key by key, with keys taken from their raw
// text (see objectKey), so that distinct keys never share a map entry. Nested
// values decode as encoding/json does.
func Decode(data []byte) (any, error) {
	// objectKey relies on the input being valid UTF-8.
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	var err error
	if firstByte(data) == '{' {
		value, err = decodeObject(dec, data)
	} else {
		err = dec.Decode(&value)
	}

	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}

		return nil, err
	}

	end := dec.InputOffset()
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &TrailingDataError{Offset: end}
	}

	return value, nil
}

func decodeObject(dec *json.Decoder, data []byte) (map[string]any, error) {
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	obj := map[string]any{}
	for dec.More() {
		start := dec.InputOffset()
		if _, err := dec.Token(); err != nil {
			return nil, unexpectedEOF(err)
		}

		key := objectKey(data[start:dec.InputOffset()])

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, unexpectedEOF(err)
		}

		obj[key] = value
	}

	if _, err := dec.Token(); err != nil {
		return nil, unexpectedEOF(err)
	}

	return obj, nil
}

// The opening brace has been read, so running out of input is always a
// truncated document.
func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}

	return err
}

func firstByte(data []byte) byte {
	for _, c := range data {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		}

		return c
	}

	return 0
}
