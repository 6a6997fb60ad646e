package dsl

import (
	shape "github.com/reoring/shape"
)

// Array returns a container shape whose check requires an array input and
// validates every element against member. The empty array vacuously passes.
// Elements are not short-circuited: each failing element emits one diagnostic
// so a single pass surfaces every offending index.
func Array(member shape.Shape) shape.Shape {
	return arrayShape{member: member, name: "Array<" + member.Name() + ">"}
}

type arrayShape struct {
	member shape.Shape
	name   string
}

var _ shape.Shape = arrayShape{}

func (a arrayShape) Check(v any) bool {
	arr, isArr := v.([]any)
	if !isArr {
		shape.Diagf(a.name, "value %v (%s) is not an array", v, shape.KindOf(v))
		return false
	}
	ok := true
	for i, el := range arr {
		if !a.member.Check(el) {
			shape.Diagf(a.name, "element %d: value %v (%s) does not satisfy %s", i, el, shape.KindOf(el), a.member.Name())
			ok = false
		}
	}
	return ok
}

func (a arrayShape) Name() string   { return a.name }
func (a arrayShape) Optional() bool { return false }
