package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/edirooss/livectl/pkg/jsonx"
)

// UnknownFieldError reports an object key that matches no field of the record
// it appears in. Path is the wire path of the key.
type UnknownFieldError struct {
	Path string
}

func (e *UnknownFieldError) Error() string { return fmt.Sprintf("unknown field %q", e.Path) }

var unmarshalerType = reflect.TypeFor[json.Unmarshaler]()

// DecodeStrict decodes data into v and fails on object keys that match no
// field. Unlike jsonx.UnmarshalStrict it also checks the payload of the
// selected variant of every holder, at any depth.
//
// Variant keys the holder does not know are accepted and kept as
// UnknownVariant; Validate with StrictEnums reports them.
func DecodeStrict(data []byte, v any) error {
	if err := jsonx.UnmarshalStrict(data, v); err != nil {
		return err
	}
	var tree any
	if err := jsonx.Unmarshal(data, &tree); err != nil {
		return err
	}
	return checkKeys(reflect.TypeOf(v), tree, "")
}

// checkKeys walks node, a generic JSON value, alongside the Go type t.
func checkKeys(t reflect.Type, node any, path string) error {
	if t == nil || node == nil {
		return nil
	}
	t = indirect(t)

	if isUnion(t) {
		obj, ok := node.(map[string]any)
		if !ok {
			return nil
		}
		variants := holderOf(t).VariantTypes()
		for _, k := range sortedKeys(obj) {
			vt, known := variants[k]
			if !known {
				continue
			}
			if err := checkKeys(vt, obj[k], joinPath(path, k)); err != nil {
				return err
			}
		}
		return nil
	}
	if reflect.PointerTo(t).Implements(unmarshalerType) {
		return nil // decodes itself
	}

	switch t.Kind() {
	case reflect.Struct:
		obj, ok := node.(map[string]any)
		if !ok {
			return nil
		}
		fields := wireFields(t)
		for _, k := range sortedKeys(obj) {
			ft, ok := lookupField(fields, k)
			if !ok {
				return &UnknownFieldError{Path: joinPath(path, k)}
			}
			if err := checkKeys(ft, obj[k], joinPath(path, k)); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return nil
		}
		arr, ok := node.([]any)
		if !ok {
			return nil
		}
		for i, e := range arr {
			if err := checkKeys(t.Elem(), e, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case reflect.Map:
		obj, ok := node.(map[string]any)
		if !ok {
			return nil
		}
		for _, k := range sortedKeys(obj) {
			if err := checkKeys(t.Elem(), obj[k], fmt.Sprintf("%s[%s]", path, k)); err != nil {
				return err
			}
		}
	}
	return nil
}

func wireFields(t reflect.Type) map[string]reflect.Type {
	out := make(map[string]reflect.Type, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if key := wireKey(sf); key != "" {
			out[key] = sf.Type
		}
	}
	return out
}

// lookupField matches key the way the decoder does: exact first, then
// case-insensitively.
func lookupField(fields map[string]reflect.Type, key string) (reflect.Type, bool) {
	if ft, ok := fields[key]; ok {
		return ft, true
	}
	for name, ft := range fields {
		if strings.EqualFold(name, key) {
			return ft, true
		}
	}
	return nil, false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
