// Package dsl provides the builder API for shape descriptors.
//
// Overview
//   - Primitives: String()/Number()/Bool() wrap the root package's kind predicates.
//   - Modifiers: Optional(inner) tolerates a missing key, Nullable(inner) tolerates
//     explicit null. The two are orthogonal; combine them when both are wanted.
//   - Containers: Array(member) checks every element against one member shape,
//     Object(props)/ObjectNamed(name, props) check a closed property map.
//
// The five shape kinds (leaf, optional, nullable, array, object) form a closed
// set; each builder returns an immutable shape.Shape ready for repeated,
// concurrent Check calls.
//
// Entry points
//   - String()/Number()/Bool(): leaf shapes named after their kind.
//   - Optional(s)/Nullable(s): wrap an existing shape.
//   - Array(s): container with a single member shape.
//   - Object(props): anonymous object (display name "Object").
//   - ObjectNamed(name, props): named object; panics when props is nil.
//
// Objects follow the closed-shape rule: any key not declared in the property
// map rejects the whole value. The engine validates exact wire contracts, so
// silently accepting unexpected fields would hide schema drift.
//
// Example (quickstart)
//
//	user := dsl.ObjectNamed("User", dsl.Props{
//	    "name":        dsl.String(),
//	    "age":         dsl.Number(),
//	    "hasSignedIn": dsl.Bool(),
//	    "permissions": dsl.Optional(dsl.Array(dsl.String())),
//	})
//	v, _ := shape.DecodeJSON(data)
//	if user.Check(v) {
//	    // v conforms
//	}
package dsl
