package dsl

import (
	"sort"

	shape "github.com/reoring/shape"
)

// Props maps property names to their shapes. Entries are owned by the object
// shape once passed to Object/ObjectNamed and must not be mutated afterwards.
type Props map[string]shape.Shape

// Object returns an anonymous object shape over props. The display name
// defaults to "Object".
func Object(props Props) shape.Shape { return newObject("Object", props) }

// ObjectNamed returns an object shape labelled name for diagnostics.
// It panics when props is nil: the named form without a property map is a
// programming error, not a data-validation outcome.
func ObjectNamed(name string, props Props) shape.Shape {
	if props == nil {
		panic("dsl: ObjectNamed requires a property map")
	}
	return newObject(name, props)
}

type objectShape struct {
	name  string
	props Props
	keys  []string
}

var _ shape.ObjectShape = objectShape{}

// newObject snapshots the sorted key order at construction so the shape stays
// immutable and property iteration is deterministic.
func newObject(name string, props Props) objectShape {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return objectShape{name: name, props: props, keys: keys}
}

// Check applies, in order: the not-an-object gate, the closed-shape rule
// (any undeclared key rejects the value), then each declared property in
// sorted key order. A missing non-optional property fails; otherwise the
// property shape checks the field value, or Absent when the key was missing.
// Property checks short-circuit on the first violation.
func (o objectShape) Check(v any) bool {
	m, isObj := v.(map[string]any)
	if !isObj {
		shape.Diagf(o.name, "value %v (%s) is not an object", v, shape.KindOf(v))
		return false
	}
	// unknown keys in sorted order for deterministic diagnostics
	uks := make([]string, 0)
	for k := range m {
		if _, known := o.props[k]; !known {
			uks = append(uks, k)
		}
	}
	if len(uks) > 0 {
		sort.Strings(uks)
		shape.Diagf(o.name, "unexpected key %q", uks[0])
		return false
	}
	for _, k := range o.keys {
		p := o.props[k]
		val, present := m[k]
		if !present {
			if !p.Optional() {
				shape.Diagf(o.name, "missing property %q (%s)", k, p.Name())
				return false
			}
			val = shape.Absent
		}
		if !p.Check(val) {
			shape.Diagf(o.name, "property %q: value %v (%s) does not satisfy %s", k, val, shape.KindOf(val), p.Name())
			return false
		}
	}
	return true
}

func (o objectShape) Name() string   { return o.name }
func (o objectShape) Optional() bool { return false }

// Properties exposes the declared property map for introspection. The map is
// shared with the shape; callers must treat it as read-only.
func (o objectShape) Properties() map[string]shape.Shape { return o.props }
