// Package codec serializes dictionaries to JSON and YAML. Object encodings
// render keys as member names via a caller-supplied key codec; decoding walks
// the document in order and aborts on the first bad entry, so a failed decode
// never yields a partial dictionary.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/turboMaCk/any-dict/dict"
	"github.com/turboMaCk/any-dict/logger"
	"github.com/turboMaCk/any-dict/sortable"
)

var (
	// ErrNotObject is returned when the input is not a JSON object.
	ErrNotObject = errors.New("expected a JSON object")

	// ErrNotList is returned when the input is not a JSON array.
	ErrNotList = errors.New("expected a JSON array")

	// ErrBadListEntry is returned when a list element is not a two-element
	// [key, value] array.
	ErrBadListEntry = errors.New("list entry must be a [key, value] pair")
)

// EncodeObject renders d as a JSON object. Members appear in ascending
// sort-key order, so the output is deterministic for a given dictionary.
// keyText turns a key into the member name; value encodes each value.
func EncodeObject[K any, C sortable.Sortable[C], V any](
	d *dict.Dict[K, C, V],
	keyText func(K) string,
	value func(V) (json.RawMessage, error),
) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	first := true

	for k, v := range d.Seq() {
		raw, err := value(v)
		if err != nil {
			return nil, logger.Annotate(fmt.Errorf("encoding value: %w", err),
				"key", keyText(k))
		}

		if !first {
			buf.WriteByte(',')
		}

		first = false

		name, err := json.Marshal(keyText(k))
		if err != nil {
			return nil, logger.Annotate(fmt.Errorf("encoding member name: %w", err),
				"key", keyText(k))
		}

		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(raw)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// DecodeObject parses a JSON object into a dictionary built over project.
// Members are processed in document order; the first failure aborts the
// decode with an error annotated with the member name and index.
//
// keyFromText receives the already-decoded value alongside the member name,
// so key encodings that fold information into the value can be recovered.
// Later members silently overwrite earlier ones that share a sort key.
func DecodeObject[K any, C sortable.Sortable[C], V any](
	data []byte,
	project func(K) C,
	keyFromText func(string, V) (K, error),
	value func(json.RawMessage) (V, error),
) (*dict.Dict[K, C, V], error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("reading object: %w", err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotObject
	}

	out := dict.New[K, C, V](project)

	for index := 0; dec.More(); index++ {
		nameTok, err := dec.Token()
		if err != nil {
			return nil, logger.Annotate(fmt.Errorf("reading member name: %w", err),
				"index", index)
		}

		name, ok := nameTok.(string)
		if !ok {
			return nil, logger.Annotate(ErrNotObject, "index", index)
		}

		var raw json.RawMessage

		if err := dec.Decode(&raw); err != nil {
			return nil, logger.Annotate(fmt.Errorf("reading value: %w", err),
				"key", name, "index", index)
		}

		v, err := value(raw)
		if err != nil {
			return nil, logger.Annotate(fmt.Errorf("decoding value: %w", err),
				"key", name, "index", index)
		}

		k, err := keyFromText(name, v)
		if err != nil {
			return nil, logger.Annotate(fmt.Errorf("decoding key: %w", err),
				"key", name, "index", index)
		}

		out.Add(k, v)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("reading object end: %w", err)
	}

	return out, nil
}

// DecodeObjectSimple is DecodeObject for key parsers that cannot fail and
// do not need the decoded value.
func DecodeObjectSimple[K any, C sortable.Sortable[C], V any](
	data []byte,
	project func(K) C,
	keyFromText func(string) K,
	value func(json.RawMessage) (V, error),
) (*dict.Dict[K, C, V], error) {
	return DecodeObject(data, project,
		func(name string, _ V) (K, error) {
			return keyFromText(name), nil
		},
		value)
}

// EncodeList renders d as a JSON array of [key, value] pairs in ascending
// sort-key order. Use it when keys have no sensible string form and cannot
// become object member names.
func EncodeList[K any, C sortable.Sortable[C], V any](
	d *dict.Dict[K, C, V],
	key func(K) (json.RawMessage, error),
	value func(V) (json.RawMessage, error),
) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('[')

	first := true

	for k, v := range d.Seq() {
		rawKey, err := key(k)
		if err != nil {
			return nil, fmt.Errorf("encoding key: %w", err)
		}

		rawValue, err := value(v)
		if err != nil {
			return nil, fmt.Errorf("encoding value: %w", err)
		}

		if !first {
			buf.WriteByte(',')
		}

		first = false

		buf.WriteByte('[')
		buf.Write(rawKey)
		buf.WriteByte(',')
		buf.Write(rawValue)
		buf.WriteByte(']')
	}

	buf.WriteByte(']')

	return buf.Bytes(), nil
}

// DecodeList parses a JSON array of [key, value] pairs into a dictionary
// built over project. Entries are processed in document order with the same
// fail-fast and overwrite behavior as DecodeObject; the key decoder receives
// the decoded value.
func DecodeList[K any, C sortable.Sortable[C], V any](
	data []byte,
	project func(K) C,
	key func(json.RawMessage, V) (K, error),
	value func(json.RawMessage) (V, error),
) (*dict.Dict[K, C, V], error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("reading list: %w", err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, ErrNotList
	}

	out := dict.New[K, C, V](project)

	for index := 0; dec.More(); index++ {
		var pair []json.RawMessage

		if err := dec.Decode(&pair); err != nil {
			return nil, logger.Annotate(fmt.Errorf("reading entry: %w", err),
				"index", index)
		}

		if len(pair) != 2 {
			return nil, logger.Annotate(ErrBadListEntry, "index", index)
		}

		v, err := value(pair[1])
		if err != nil {
			return nil, logger.Annotate(fmt.Errorf("decoding value: %w", err),
				"index", index)
		}

		k, err := key(pair[0], v)
		if err != nil {
			return nil, logger.Annotate(fmt.Errorf("decoding key: %w", err),
				"index", index)
		}

		out.Add(k, v)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("reading list end: %w", err)
	}

	return out, nil
}
