package shape

// Shape describes an expected structural type and derives a membership check.
// Implementations are immutable once built; Check never mutates its input and
// has no side effects beyond advisory diagnostics.
type Shape interface {
	// Check reports whether v conforms to the shape. Diagnostics emitted
	// during a failing check are advisory only; the returned bool is the
	// sole authoritative signal.
	Check(v any) bool

	// Name returns the display label used in diagnostics, for example
	// "string", "Array<number>", or a caller-supplied object name.
	Name() string

	// Optional reports whether the shape tolerates a missing key. It is
	// true only for shapes built via dsl.Optional and is consulted solely
	// by the object rule; it does not propagate through other combinators.
	Optional() bool
}

// ObjectShape is implemented by object shapes in addition to Shape and
// exposes the declared property map for introspection. The returned map is
// owned by the shape and must not be mutated.
type ObjectShape interface {
	Shape
	Properties() map[string]Shape
}
