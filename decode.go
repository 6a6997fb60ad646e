package shape

import (
	"bytes"
	"fmt"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DecodeJSON decodes data into the untyped value representation Check
// operates on: map[string]any, []any, string, json.Number, bool, nil.
// Numbers stay json.Number so large integers survive undamaged.
func DecodeJSON(data []byte) (any, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("shape: decode json: %w", err)
	}
	return v, nil
}

// DecodeYAML decodes a single YAML document into the same untyped value
// representation DecodeJSON produces. yaml.v3 may emit map[any]any for
// nested mappings; those are normalized to map[string]any, dropping
// non-string keys (out of scope for JSON-shaped validation).
func DecodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("shape: decode yaml: %w", err)
	}
	return normalizeYAML(v), nil
}

// CheckJSON decodes data as JSON and checks it against s. The error reports
// decode failures only; a well-formed but non-conforming document yields
// (false, nil).
func CheckJSON(s Shape, data []byte) (bool, error) {
	v, err := DecodeJSON(data)
	if err != nil {
		return false, err
	}
	return s.Check(v), nil
}

// CheckYAML decodes data as YAML and checks it against s.
func CheckYAML(s Shape, data []byte) (bool, error) {
	v, err := DecodeYAML(data)
	if err != nil {
		return false, err
	}
	return s.Check(v), nil
}

func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeYAML(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeYAML(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeYAML(t[i])
		}
		return arr
	default:
		return v
	}
}
