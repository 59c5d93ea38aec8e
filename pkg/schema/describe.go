package schema

import (
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Kind classifies a field or a described type.
type Kind string

const (
	KindScalar Kind = "scalar"
	KindEnum   Kind = "enum"
	KindList   Kind = "list"
	KindMap    Kind = "map"
	KindRecord Kind = "record"
	KindUnion  Kind = "union"
)

// Constraint is one rule of a validate tag, e.g. {Name: "max", Param: "256"}.
type Constraint struct {
	Name  string `json:"name"`
	Param string `json:"param,omitempty"`
}

// Field describes one encoded field of a record.
type Field struct {
	Name        string       `json:"name"`
	WireKey     string       `json:"wireKey"`
	GoType      string       `json:"goType"`
	Kind        Kind         `json:"kind"`
	Optional    bool         `json:"optional"`
	Required    bool         `json:"required"`
	Constraints []Constraint `json:"constraints,omitempty"`
	// Known values when the field (or its list element) is an enum.
	EnumValues []string `json:"enumValues,omitempty"`
	// Name of the nested record or holder type, if any.
	Ref string `json:"ref,omitempty"`
}

// Descriptor describes a record or a variant holder.
type Descriptor struct {
	Name   string  `json:"name"`
	Kind   Kind    `json:"kind"`
	Fields []Field `json:"fields,omitempty"`
	// Wire key to payload type name, for holders.
	Variants map[string]string `json:"variants,omitempty"`
}

var descriptors sync.Map // reflect.Type -> *Descriptor

// Describe returns the descriptor of t. Pointer types are described by their
// element. Results are cached and must not be modified.
func Describe(t reflect.Type) *Descriptor {
	t = indirect(t)
	if d, ok := descriptors.Load(t); ok {
		return d.(*Descriptor)
	}
	d, _ := descriptors.LoadOrStore(t, describe(t))
	return d.(*Descriptor)
}

func describe(t reflect.Type) *Descriptor {
	d := &Descriptor{Name: t.Name()}

	if isUnion(t) {
		d.Kind = KindUnion
		variants := holderOf(t).VariantTypes()
		d.Variants = make(map[string]string, len(variants))
		for key, vt := range variants {
			d.Variants[key] = indirect(vt).Name()
		}
		return d
	}
	if t.Kind() != reflect.Struct {
		d.Kind, _, _ = classify(t)
		return d
	}

	d.Kind = KindRecord
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		key := wireKey(sf)
		if key == "" {
			continue
		}
		kind, elem, optional := classify(sf.Type)
		f := Field{
			Name:     sf.Name,
			WireKey:  key,
			GoType:   sf.Type.String(),
			Kind:     kind,
			Optional: optional,
		}
		f.Required, f.Constraints = parseRules(sf.Tag.Get("validate"))
		if f.Required {
			f.Optional = false
		}
		f.EnumValues = enumValues(elem)
		if elem.Kind() == reflect.Struct {
			f.Ref = elem.Name()
		}
		d.Fields = append(d.Fields, f)
	}
	sort.Slice(d.Fields, func(i, j int) bool { return d.Fields[i].WireKey < d.Fields[j].WireKey })
	return d
}

// classify reports the kind of t, the innermost element type for lists and
// pointers, and whether the field may be left unset.
func classify(t reflect.Type) (Kind, reflect.Type, bool) {
	optional := false
	if t.Kind() == reflect.Pointer {
		optional = true
		t = indirect(t)
	}
	switch {
	case isUnion(t):
		return KindUnion, t, optional
	case enumValues(t) != nil:
		// Enums are value typed; the empty string means unset.
		return KindEnum, t, true
	}
	switch t.Kind() {
	case reflect.Slice:
		return KindList, indirect(t.Elem()), true
	case reflect.Map:
		return KindMap, indirect(t.Elem()), true
	case reflect.Struct:
		return KindRecord, t, optional
	}
	return KindScalar, t, optional
}

// parseRules splits a validate tag into its rules. omitempty is dropped and
// required is reported separately.
func parseRules(tag string) (bool, []Constraint) {
	if tag == "" {
		return false, nil
	}
	var (
		required bool
		out      []Constraint
	)
	for _, rule := range strings.Split(tag, ",") {
		name, param, _ := strings.Cut(rule, "=")
		switch name {
		case "", "omitempty":
		case "required":
			required = true
		default:
			out = append(out, Constraint{Name: name, Param: param})
		}
	}
	return required, out
}
