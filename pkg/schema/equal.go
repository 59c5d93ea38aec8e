package schema

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/davecgh/go-spew/spew"

	"github.com/edirooss/livectl/pkg/jsonx"
)

// Equal reports whether a and b are the same record.
//
// Values of different concrete types are never equal. Otherwise two values
// are equal when their canonical encodings match: unset fields are omitted,
// map keys are sorted, and a nil collection equals an empty one.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if samePointer(a, b) {
		return true
	}

	ea, errA := jsonx.Marshal(a)
	eb, errB := jsonx.Marshal(b)
	if errA != nil || errB != nil {
		return reflect.DeepEqual(a, b)
	}
	return bytes.Equal(ea, eb)
}

// Hash returns a 64-bit hash of v consistent with Equal: equal values hash
// equal, and the result is stable across calls and processes.
func Hash(v any) uint64 {
	if v == nil {
		return 0
	}
	d := xxhash.New()
	_, _ = d.WriteString(reflect.TypeOf(v).String())
	_, _ = d.Write([]byte{0})

	b, err := jsonx.Marshal(v)
	if err != nil {
		_, _ = d.WriteString(Dump(v))
		return d.Sum64()
	}
	_, _ = d.Write(b)
	return d.Sum64()
}

// Clone returns a deep copy of v that shares no storage with it.
func Clone[T any](v T) (T, error) {
	var out T
	b, err := jsonx.Marshal(v)
	if err != nil {
		return out, fmt.Errorf("clone %T: encode: %w", v, err)
	}
	if err := jsonx.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("clone %T: decode: %w", v, err)
	}
	return out, nil
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

// Dump renders v for debugging. The output is deterministic for equal inputs
// of the same shape and omits pointer addresses.
func Dump(v any) string { return dumper.Sdump(v) }

func samePointer(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != reflect.Pointer {
		return false
	}
	return va.Pointer() == vb.Pointer() && !va.IsNil()
}
