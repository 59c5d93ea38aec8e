package medialive

import "maps"

// Tags is a resource's key-value tag set.
type Tags map[string]string

// Add inserts key=value. It fails with *DuplicateKeyError when key is
// already present; existing entries are never overwritten.
func (t *Tags) Add(key, value string) error {
	if *t == nil {
		*t = make(Tags)
	}
	if _, ok := (*t)[key]; ok {
		return &DuplicateKeyError{Field: "Tags", Key: key}
	}
	(*t)[key] = value
	return nil
}

// Clear removes every entry.
func (t *Tags) Clear() { *t = nil }

// Clone returns a copy that shares no storage with t.
func (t Tags) Clone() Tags { return maps.Clone(t) }
