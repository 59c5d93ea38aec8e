// Package schema inspects and checks the records of package medialive
// without knowing their concrete types.
//
// It works on any struct whose fields carry json and validate tags, and on
// any variant holder exposing Selected and VariantTypes. Describe reports
// the shape of a type, Validate evaluates the documented constraints, and
// Equal, Hash, Clone and Dump operate on the canonical wire encoding.
package schema
