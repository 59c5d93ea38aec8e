// parse_strict_json_body.go
package jsonx

import (
	"errors"
	"io"
	"net/http"
)

var ErrEmptyBody = errors.New("empty body")

// MaxBodyBytes caps how much of a request body ParseStrictJSONBody reads.
const MaxBodyBytes = 1 << 20

// ParseStrictJSONBody reads and **strictly** decodes a JSON HTTP request body into dst.
//
// Intended HTTP mapping: return **400 Bad Request** when decoding fails due to
// **syntax/structural issues in the HTTP request or JSON payload** or JSON schema **shape**
// violations, including:
//
//   - Malformed JSON syntax (e.g., bad tokens, truncated body)
//   - Empty body (returns ErrEmptyBody)
//   - Oversized body (reader capped at MaxBodyBytes)
//   - Trailing data after the first value
//   - Disallowed additional properties (unknown/unexpected keys)
//   - Field-type mismatches (e.g., string into int)
//   - More than one populated variant in a variant holder
//
// Notes & scope alignment with 400:
//
//   - This function performs **only structural/shape validation** of the JSON payload.
//   - It **does not** check documented ranges, lengths or enum membership; that is
//     schema.Validate's job and maps to 422.
//
// Returns:
//   - nil on success
//   - ErrEmptyBody or the decoder error otherwise.
func ParseStrictJSONBody[T any](r *http.Request, dst *T) error {
	return ParseJSONObject(io.LimitReader(r.Body, MaxBodyBytes), dst)
}
