// Package medialive holds the request, response and settings records of the
// live video control-plane API.
//
// Records mirror the service's JSON schema: wire keys are the json tags,
// optional scalars are pointers, and documented ranges and lengths live in
// `validate` struct tags (see package schema). Settings that select exactly
// one of several alternatives are tagged unions: a holder struct with one
// field of a sealed interface type, encoded on the wire as an object with a
// single key.
//
// Enumerations are open: every enum is a named string type with constants for
// the values known to this package, but any string is accepted and forwarded.
//
// Nothing here talks to the network.
package medialive
