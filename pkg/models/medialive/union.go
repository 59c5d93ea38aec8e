package medialive

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/edirooss/livectl/pkg/jsonx"
)

// Variant is a payload that can populate a variant holder.
// WireKey is the JSON key the payload is sent under.
type Variant interface {
	WireKey() string
}

// UnknownVariant carries a variant this package has no type for, so
// responses from a newer service survive a decode/encode round trip.
// Raw holds the payload in canonical form (sorted keys, compact).
type UnknownVariant struct {
	Key string
	Raw jsonx.RawMessage
}

func (u *UnknownVariant) WireKey() string { return u.Key }

// As returns the payload of a holder as T when that is the selected variant.
//
//	if aac, ok := medialive.As[*medialive.AacSettings](codec.Codec); ok { ... }
func As[T Variant](v Variant) (T, bool) {
	t, ok := v.(T)
	return t, ok
}

// unionSpec describes one variant holder: its name and a constructor per wire key.
type unionSpec[U Variant] struct {
	name  string
	kinds map[string]func() U
}

func newUnion[U Variant](name string, kinds map[string]func() U) unionSpec[U] {
	return unionSpec[U]{name: name, kinds: kinds}
}

// variantTypes maps every known wire key to the payload's Go type.
func (s unionSpec[U]) variantTypes() map[string]reflect.Type {
	out := make(map[string]reflect.Type, len(s.kinds))
	for key, mk := range s.kinds {
		out[key] = reflect.TypeOf(mk())
	}
	return out
}

func (s unionSpec[U]) encode(v U) ([]byte, error) {
	if isNilVariant(v) {
		return []byte("{}"), nil
	}
	var payload []byte
	if u, ok := any(v).(*UnknownVariant); ok {
		payload = u.Raw
		if len(payload) == 0 {
			payload = []byte("{}")
		}
	} else {
		b, err := jsonx.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", s.name, v.WireKey(), err)
		}
		payload = b
	}
	return jsonx.Marshal(map[string]jsonx.RawMessage{v.WireKey(): payload})
}

func (s unionSpec[U]) decode(b []byte) (U, error) {
	var zero U
	if jsonx.IsNull(b) {
		return zero, nil
	}

	var fields map[string]jsonx.RawMessage
	if err := jsonx.Unmarshal(b, &fields); err != nil {
		return zero, fmt.Errorf("%s: %w", s.name, err)
	}

	keys := make([]string, 0, 1)
	for k, raw := range fields {
		if jsonx.IsNull(raw) {
			continue // explicit null is the same as absent
		}
		keys = append(keys, k)
	}
	switch len(keys) {
	case 0:
		return zero, nil
	case 1:
	default:
		sort.Strings(keys)
		return zero, &VariantConflictError{Union: s.name, Keys: keys}
	}

	key := keys[0]
	raw := fields[key]
	mk, ok := s.kinds[key]
	if !ok {
		canon, err := jsonx.Canonical(raw)
		if err != nil {
			return zero, fmt.Errorf("%s.%s: %w", s.name, key, err)
		}
		u, _ := any(&UnknownVariant{Key: key, Raw: canon}).(U)
		return u, nil
	}
	v := mk()
	if err := jsonx.Unmarshal(raw, v); err != nil {
		return zero, fmt.Errorf("%s.%s: %w", s.name, key, err)
	}
	return v, nil
}

// selected reports the wire key and payload of v, or ("", nil) when unset.
func selected[U Variant](v U) (string, any) {
	if isNilVariant(v) {
		return "", nil
	}
	return v.WireKey(), v
}

func isNilVariant(v Variant) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
