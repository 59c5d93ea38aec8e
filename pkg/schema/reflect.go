package schema

import (
	"reflect"
	"strings"
)

// union is implemented by every variant holder.
type union interface {
	Selected() (string, any)
	VariantTypes() map[string]reflect.Type
}

var unionType = reflect.TypeFor[union]()

func isUnion(t reflect.Type) bool {
	return t.Implements(unionType) || reflect.PointerTo(t).Implements(unionType)
}

// holderOf returns a zero holder of type t as a union.
func holderOf(t reflect.Type) union {
	if u, ok := reflect.Zero(t).Interface().(union); ok {
		return u
	}
	return reflect.New(t).Interface().(union)
}

// enumValues returns the known values of an enum type, or nil when t is not
// one. An enum is a string type with a Values method returning []T.
func enumValues(t reflect.Type) []string {
	if t.Kind() != reflect.String {
		return nil
	}
	m, ok := t.MethodByName("Values")
	if !ok || m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
		return nil
	}
	out := m.Type.Out(0)
	if out.Kind() != reflect.Slice || out.Elem() != t {
		return nil
	}
	vals := m.Func.Call([]reflect.Value{reflect.Zero(t)})[0]
	names := make([]string, vals.Len())
	for i := range names {
		names[i] = vals.Index(i).String()
	}
	return names
}

// wireKey returns the JSON key of a struct field, or "" when the field is
// not encoded.
func wireKey(f reflect.StructField) string {
	if !f.IsExported() {
		return ""
	}
	tag := f.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}
