package shape

import (
	"encoding/json"
	"math"
	"strconv"
)

// Kind tags the runtime kind of a decoded value. The set is closed: values
// outside it (channels, funcs, structs, maps with non-string keys) are
// KindInvalid and fail every predicate.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindNumber
	KindBool
	KindNull
	KindUndefined
	KindObject
	KindArray
)

// String returns the diagnostic label for the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// absent is the "key not present" sentinel. JSON has only null; the decoded
// Go representation needs a second sentinel so the object rule can hand a
// missing field to the property shape (see dsl.Optional).
type absent struct{}

// Absent is the sentinel value passed to a property shape when the key was
// not present in the input object. It is distinct from untyped nil, which
// models an explicit JSON null.
var Absent any = absent{}

// KindOf inspects a decoded value and returns its Kind. Numeric inputs cover
// float64 (encoding path), json.Number (UseNumber path), and the Go integer
// families produced by yaml.v3; non-finite values are KindInvalid rather than
// KindNumber.
func KindOf(v any) Kind {
	switch t := v.(type) {
	case nil:
		return KindNull
	case absent:
		return KindUndefined
	case string:
		return KindString
	case bool:
		return KindBool
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return KindInvalid
		}
		return KindNumber
	case float32:
		f := float64(t)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return KindInvalid
		}
		return KindNumber
	case json.Number:
		if f, err := strconv.ParseFloat(t.String(), 64); err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return KindInvalid
		}
		return KindNumber
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindNumber
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	default:
		return KindInvalid
	}
}

// IsString reports whether v is textual.
func IsString(v any) bool { return KindOf(v) == KindString }

// IsNumber reports whether v is a finite numeric quantity. NaN and the
// infinities are rejected deliberately; they cannot round-trip through JSON.
func IsNumber(v any) bool { return KindOf(v) == KindNumber }

// IsBool reports whether v is exactly one of the two boolean literals.
func IsBool(v any) bool { return KindOf(v) == KindBool }

// IsNull reports whether v is the explicit-null sentinel (untyped nil).
func IsNull(v any) bool { return KindOf(v) == KindNull }

// IsUndefined reports whether v is the key-not-present sentinel Absent.
func IsUndefined(v any) bool { return KindOf(v) == KindUndefined }

// IsObject reports whether v is a keyed structure (non-null, not an array).
func IsObject(v any) bool { return KindOf(v) == KindObject }

// IsArray reports whether v is an ordered, index-addressable sequence.
func IsArray(v any) bool { return KindOf(v) == KindArray }
