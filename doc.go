package shape

// Package shape provides:
//
// - Runtime structural validation of decoded JSON/YAML values via composable Shape descriptors
// - A closed set of shape kinds (leaf, optional, nullable, array, object) built by the dsl package
// - Advisory diagnostics through a pluggable zerolog logger; the boolean verdict is the only contract
// - Decode helpers for JSON (goccy/go-json) and YAML (yaml.v3) plus a typed Conform projection
//
// Design policy:
// - Keep only public APIs in the root package; shape construction lives under dsl/.
// - Place the schema-document importer under shapedef/ and the CLI under cmd/shape.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	user := dsl.ObjectNamed("User", dsl.Props{
//		"name": dsl.String(),
//		"age":  dsl.Number(),
//	})
//	v, err := shape.DecodeJSON(data)
//	ok := user.Check(v)
//
// Shapes are immutable after construction and safe to share across
// concurrent Check calls without locking.
