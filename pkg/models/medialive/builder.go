package medialive

import "github.com/edirooss/livectl/pkg/schema"

// builder accumulates a record and the first error raised while doing so.
// Concrete builders embed it and expose typed setters that return themselves.
type builder[T any] struct {
	v   T
	err error
}

func (b *builder[T]) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// build returns a deep copy of the accumulated record, so neither the builder
// nor any container handed to it is aliased by the result.
func (b *builder[T]) build() (T, error) {
	var zero T
	if b.err != nil {
		return zero, b.err
	}
	return schema.Clone(b.v)
}

// cloneList deep-copies the records of s at the time the setter is called.
// A nil s stays nil so setters keep clearing the field.
func cloneList[E, T any](b *builder[T], s []E) []E {
	if s == nil {
		return nil
	}
	c, err := schema.Clone(s)
	if err != nil {
		b.fail(err)
		return nil
	}
	return c
}

// cloneRef deep-copies v and returns a pointer to the copy.
func cloneRef[E, T any](b *builder[T], v E) *E {
	c, err := schema.Clone(v)
	if err != nil {
		b.fail(err)
		return nil
	}
	return &c
}
