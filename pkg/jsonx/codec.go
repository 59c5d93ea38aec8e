package jsonx

import (
	"bytes"
	"encoding/json"

	"github.com/bytedance/sonic"
)

// RawMessage is a raw encoded JSON value.
type RawMessage = json.RawMessage

var (
	// wire encodes with sorted map keys so equal values always produce equal bytes.
	wire = sonic.Config{
		EscapeHTML:       true,
		SortMapKeys:      true,
		CompactMarshaler: true,
		CopyString:       true,
		ValidateString:   true,
	}.Froze()

	// strict rejects object keys that have no matching field.
	strict = sonic.Config{
		EscapeHTML:            true,
		SortMapKeys:           true,
		CompactMarshaler:      true,
		CopyString:            true,
		ValidateString:        true,
		DisallowUnknownFields: true,
	}.Froze()

	// literal decodes numbers as json.Number so re-encoding keeps their digits.
	literal = sonic.Config{
		EscapeHTML:       true,
		SortMapKeys:      true,
		CompactMarshaler: true,
		CopyString:       true,
		ValidateString:   true,
		UseNumber:        true,
	}.Froze()
)

// Marshal returns the canonical wire encoding of v.
func Marshal(v any) ([]byte, error) { return wire.Marshal(v) }

// MarshalIndent is Marshal with indentation, for humans.
func MarshalIndent(v any) ([]byte, error) { return wire.MarshalIndent(v, "", "  ") }

// Unmarshal decodes data into v, ignoring unknown object keys.
// Server responses go through here so fields added by the service do not break decoding.
func Unmarshal(data []byte, v any) error { return wire.Unmarshal(data, v) }

// UnmarshalStrict decodes data into v and fails on unknown object keys.
func UnmarshalStrict(data []byte, v any) error { return strict.Unmarshal(data, v) }

// Canonical re-encodes an arbitrary JSON value with sorted object keys and
// no insignificant whitespace. Numbers keep their original digits.
func Canonical(raw []byte) (RawMessage, error) {
	var v any
	if err := literal.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return wire.Marshal(v)
}

// Valid reports whether data is a single well-formed JSON value.
func Valid(data []byte) bool { return wire.Valid(data) }

// IsNull reports whether raw is the JSON literal null (surrounding whitespace allowed).
func IsNull(raw []byte) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
