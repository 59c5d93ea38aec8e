package schema

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/edirooss/livectl/pkg/avurl"
	"github.com/go-playground/validator/v10"
)

// ValidationError aggregates field errors for precise responses.
// Keys are wire paths such as AudioDescriptions[0].CodecSettings.Ac3Settings.Dialnorm.
type ValidationError struct {
	Problems map[string]string
}

func (v *ValidationError) Error() string {
	if len(v.Problems) == 0 {
		return "no validation errors"
	}

	keys := make([]string, 0, len(v.Problems))
	for k := range v.Problems {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s; ", k, v.Problems[k])
	}
	out := strings.TrimSuffix(b.String(), "; ")
	return fmt.Sprintf("validation failed (%d problem(s)); %s", len(v.Problems), out)
}

func (v *ValidationError) add(field, msg string) {
	if v.Problems == nil {
		v.Problems = make(map[string]string)
	}
	// First problem per path wins.
	if _, ok := v.Problems[field]; !ok {
		v.Problems[field] = msg
	}
}

func (v *ValidationError) empty() bool { return len(v.Problems) == 0 }

// Option tunes Validate.
type Option func(*options)

type options struct {
	strictEnums bool
}

// StrictEnums makes Validate report enum values and variant keys that are
// not known to this build.
func StrictEnums() Option { return WithStrictEnums(true) }

// WithStrictEnums is StrictEnums with an explicit switch.
func WithStrictEnums(on bool) Option {
	return func(o *options) { o.strictEnums = on }
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// avurl: output destination URL, scheme://host[:port][/path] without credentials.
	v.RegisterValidation("avurl", func(fl validator.FieldLevel) bool {
		return avurl.Validate(fl.Field().String()) == nil
	})
	return v
}

// Validate checks v against the constraints in its validate tags, walking
// nested records, lists and the selected variant of every holder.
//
// Returns:
//   - nil when v satisfies every constraint
//   - *ValidationError listing each offending wire path otherwise.
//
// The model accepts any value; Validate is an optional check to run before
// sending a request.
func Validate(v any, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	w := walker{opts: o, ve: &ValidationError{}}
	w.value(reflect.ValueOf(v), "")
	if w.ve.empty() {
		return nil
	}
	return w.ve
}

type walker struct {
	opts options
	ve   *ValidationError
}

func (w *walker) value(rv reflect.Value, path string) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return
	}

	t := rv.Type()
	if isUnion(t) {
		w.union(rv, path)
		return
	}

	switch rv.Kind() {
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			key := wireKey(sf)
			if key == "" {
				continue
			}
			fp := joinPath(path, key)
			fv := rv.Field(i)
			w.field(fv, sf.Tag.Get("validate"), fp)
			w.value(fv, fp)
		}
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return // raw bytes
		}
		for i := 0; i < rv.Len(); i++ {
			w.value(rv.Index(i), fmt.Sprintf("%s[%d]", path, i))
		}
	case reflect.String:
		if !w.opts.strictEnums || rv.Len() == 0 {
			return
		}
		if known := enumValues(t); known != nil && !slices.Contains(known, rv.String()) {
			w.ve.add(path, fmt.Sprintf("unknown %s value %q (known: %s)", t.Name(), rv.String(), strings.Join(known, ", ")))
		}
	}
}

func (w *walker) union(rv reflect.Value, path string) {
	var h union
	if u, ok := rv.Interface().(union); ok {
		h = u
	} else if rv.CanAddr() {
		h = rv.Addr().Interface().(union)
	} else {
		return
	}

	key, payload := h.Selected()
	if payload == nil {
		return
	}
	if _, known := h.VariantTypes()[key]; !known {
		if w.opts.strictEnums {
			w.ve.add(joinPath(path, key), fmt.Sprintf("unknown variant of %s", rv.Type().Name()))
		}
		return
	}
	w.value(reflect.ValueOf(payload), joinPath(path, key))
}

// field evaluates the validate tag of one struct field.
func (w *walker) field(fv reflect.Value, tag, path string) {
	if tag == "" {
		return
	}

	// Records and holders are only checked for presence here; their own
	// fields are visited by the walk.
	if t := indirect(fv.Type()); t.Kind() == reflect.Struct {
		if required, _ := parseRules(tag); required && fv.Kind() == reflect.Pointer && fv.IsNil() {
			w.ve.add(path, "is required")
		}
		return
	}

	err := validate.Var(fv.Interface(), tag)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		w.ve.add(path, err.Error())
		return
	}
	for _, fe := range fieldErrs {
		w.ve.add(path, message(fe))
	}
}

func message(fe validator.FieldError) string {
	sized := false
	switch fe.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		sized = true
	}
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		if sized {
			return fmt.Sprintf("length must be at least %s", fe.Param())
		}
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "max", "lte":
		if sized {
			return fmt.Sprintf("length must be at most %s", fe.Param())
		}
		return fmt.Sprintf("must be <= %s", fe.Param())
	case "avurl":
		if v := reflect.Indirect(reflect.ValueOf(fe.Value())); v.Kind() == reflect.String {
			if err := avurl.Validate(v.String()); err != nil {
				return "invalid URL: " + err.Error()
			}
		}
		return "invalid URL"
	case "len":
		if sized {
			return fmt.Sprintf("length must be exactly %s", fe.Param())
		}
		return fmt.Sprintf("must be %s", fe.Param())
	}
	return fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
}
