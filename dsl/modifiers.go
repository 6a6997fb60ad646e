package dsl

import (
	shape "github.com/reoring/shape"
)

// Optional wraps inner so a missing key passes. Explicit null does not; use
// Nullable for that. Optional is the only builder that sets Optional()=true,
// and the flag does not propagate through other combinators: an array of
// optional elements is not itself optional.
func Optional(inner shape.Shape) shape.Shape {
	return optionalShape{inner: inner, name: inner.Name() + " | undefined"}
}

// Nullable wraps inner so an explicit null passes. A missing key does not;
// nullable is orthogonal to presence.
func Nullable(inner shape.Shape) shape.Shape {
	return nullableShape{inner: inner, name: inner.Name() + " | null"}
}

type optionalShape struct {
	inner shape.Shape
	name  string
}

var _ shape.Shape = optionalShape{}

func (o optionalShape) Check(v any) bool {
	return shape.IsUndefined(v) || o.inner.Check(v)
}
func (o optionalShape) Name() string   { return o.name }
func (o optionalShape) Optional() bool { return true }

type nullableShape struct {
	inner shape.Shape
	name  string
}

var _ shape.Shape = nullableShape{}

func (n nullableShape) Check(v any) bool {
	return shape.IsNull(v) || n.inner.Check(v)
}
func (n nullableShape) Name() string   { return n.name }
func (n nullableShape) Optional() bool { return false }
