package medialive

import (
	"fmt"
	"strings"
)

// DuplicateKeyError is returned when an entry is added under a key that
// already exists in a map-valued field.
type DuplicateKeyError struct {
	Field string
	Key   string
}

func (e *DuplicateKeyError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("duplicated key (%s) is provided", e.Key)
	}
	return fmt.Sprintf("%s: duplicated key (%s) is provided", e.Field, e.Key)
}

// VariantConflictError is returned when a variant holder is decoded from an
// object that populates more than one variant.
type VariantConflictError struct {
	Union string
	Keys  []string
}

func (e *VariantConflictError) Error() string {
	return fmt.Sprintf("%s: at most one variant may be set, got [%s]", e.Union, strings.Join(e.Keys, ", "))
}
