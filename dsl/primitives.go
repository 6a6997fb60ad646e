package dsl

import (
	shape "github.com/reoring/shape"
)

// String returns the leaf shape matching textual values.
func String() shape.Shape { return leaf{name: "string", pred: shape.IsString} }

// Number returns the leaf shape matching finite numeric values. NaN and the
// infinities fail; so do numeric strings (no coercion).
func Number() shape.Shape { return leaf{name: "number", pred: shape.IsNumber} }

// Bool returns the leaf shape matching exactly the two boolean literals.
func Bool() shape.Shape { return leaf{name: "boolean", pred: shape.IsBool} }

// leaf wraps a kind predicate. It carries no state beyond its name, so every
// call site shares the same check logic without per-instance closures.
type leaf struct {
	name string
	pred func(any) bool
}

var _ shape.Shape = leaf{}

func (l leaf) Check(v any) bool { return l.pred(v) }
func (l leaf) Name() string     { return l.name }
func (l leaf) Optional() bool   { return false }
