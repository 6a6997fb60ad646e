// Package shapedef compiles compact shape definition documents into runtime
// shapes. A definition is itself JSON (or YAML) of the form:
//
//	{"type": "string" | "number" | "boolean"}
//	{"type": "array", "items": <definition>}
//	{"type": "object", "name": "User", "properties": {<key>: <definition>, ...}}
//
// Property definitions additionally accept the booleans "optional" and
// "nullable", which wrap the property shape in the matching modifier. This is
// the surface the cmd/shape CLI validates against.
package shapedef

import (
	"errors"
	"fmt"

	shape "github.com/reoring/shape"
	"github.com/reoring/shape/dsl"
)

// Import compiles a decoded definition document into a shape. The input is
// the untyped value representation produced by shape.DecodeJSON/DecodeYAML.
func Import(doc any) (shape.Shape, error) {
	if doc == nil {
		return nil, errors.New("shapedef: nil definition")
	}
	return importDef(doc, "/")
}

// FromJSON decodes data as JSON and compiles it.
func FromJSON(data []byte) (shape.Shape, error) {
	v, err := shape.DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	return Import(v)
}

// FromYAML decodes data as YAML and compiles it.
func FromYAML(data []byte) (shape.Shape, error) {
	v, err := shape.DecodeYAML(data)
	if err != nil {
		return nil, err
	}
	return Import(v)
}

func importDef(doc any, path string) (shape.Shape, error) {
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("shapedef: definition at %s is not an object", path)
	}
	typ, _ := m["type"].(string)
	switch typ {
	case "string":
		return dsl.String(), nil
	case "number":
		return dsl.Number(), nil
	case "boolean":
		return dsl.Bool(), nil
	case "array":
		items, ok := m["items"]
		if !ok {
			return nil, fmt.Errorf("shapedef: array at %s lacks items", path)
		}
		member, err := importDef(items, joinPath(path, "items"))
		if err != nil {
			return nil, err
		}
		return dsl.Array(member), nil
	case "object":
		return importObject(m, path)
	case "":
		return nil, fmt.Errorf("shapedef: definition at %s lacks type", path)
	default:
		return nil, fmt.Errorf("shapedef: unsupported type %q at %s", typ, path)
	}
}

func importObject(m map[string]any, path string) (shape.Shape, error) {
	rawProps, ok := m["properties"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("shapedef: object at %s lacks properties", path)
	}
	props := make(dsl.Props, len(rawProps))
	for k, raw := range rawProps {
		pd, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("shapedef: property %q at %s is not an object", k, path)
		}
		ps, err := importDef(pd, joinPath(path, k))
		if err != nil {
			return nil, err
		}
		// nullable wraps first so the optional flag stays outermost, where
		// the object rule reads it.
		if b, _ := pd["nullable"].(bool); b {
			ps = dsl.Nullable(ps)
		}
		if b, _ := pd["optional"].(bool); b {
			ps = dsl.Optional(ps)
		}
		props[k] = ps
	}
	if name, _ := m["name"].(string); name != "" {
		return dsl.ObjectNamed(name, props), nil
	}
	return dsl.Object(props), nil
}

func joinPath(base, seg string) string {
	if base == "/" {
		return "/" + seg
	}
	return base + "/" + seg
}
