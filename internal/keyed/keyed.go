package keyed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Entry is one member of a decoded object.
type Entry[T any] struct {
	Key   string
	Value T
}

// Decode reads a single JSON object from r and returns its members in the
// order they appear in the document. An array is accepted too, keyed by
// element index. A JSON null decodes to an empty slice. Anything after the
// top-level value is an error.
func Decode[T any](r io.Reader) ([]Entry[T], error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty body")
		}
		return nil, err
	}

	var entries []Entry[T]
	switch tok {
	case nil:
	case json.Delim('{'):
		if entries, err = decodeMembers[T](dec); err != nil {
			return nil, err
		}
	case json.Delim('['):
		if entries, err = decodeElements[T](dec); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	if err := expectEOF(dec); err != nil {
		return nil, err
	}
	return entries, nil
}

func decodeMembers[T any](dec *json.Decoder) ([]Entry[T], error) {
	var entries []Entry[T]
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		var value T
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("decode value for %q: %w", key, err)
		}
		entries = append(entries, Entry[T]{Key: key, Value: value})
	}
	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return entries, nil
}

func decodeElements[T any](dec *json.Decoder) ([]Entry[T], error) {
	var entries []Entry[T]
	for i := 0; dec.More(); i++ {
		var value T
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("decode element %d: %w", i, err)
		}
		entries = append(entries, Entry[T]{Key: strconv.Itoa(i), Value: value})
	}
	// closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return entries, nil
}

func expectEOF(dec *json.Decoder) error {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("unexpected data after value: %w", err)
	}
	return fmt.Errorf("unexpected data after value: %v", tok)
}
