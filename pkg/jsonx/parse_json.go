// parse_json.go
package jsonx

import (
	"bytes"
	"io"
)

// ParseJSONObject decodes one JSON value from src into dst.
//
// - Malformed JSON (bad tokens, empty/unterminated/truncated, trailing data) => decoder syntax error
// - Incorrect data type (field/value mismatch) => decoder type error
// - Unknown object fields => error naming the field
// - Other decode failures bubble up from the decoder.
func ParseJSONObject[T any](src io.Reader, dst *T) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyBody
	}
	return UnmarshalStrict(data, dst)
}
