package shape_test

import (
	"encoding/json"
	"math"
	"testing"

	shape "github.com/reoring/shape"
)

func TestKindOf_Basic(t *testing.T) {
	cases := []struct {
		name string
		v    any
		want shape.Kind
	}{
		{"string", "hello", shape.KindString},
		{"empty string", "", shape.KindString},
		{"float64", 42.5, shape.KindNumber},
		{"int", 42, shape.KindNumber},
		{"int64", int64(-7), shape.KindNumber},
		{"uint64", uint64(7), shape.KindNumber},
		{"json.Number", json.Number("29"), shape.KindNumber},
		{"json.Number big", json.Number("123456789012345678901234567890"), shape.KindNumber},
		{"json.Number junk", json.Number("abc"), shape.KindInvalid},
		{"NaN", math.NaN(), shape.KindInvalid},
		{"+Inf", math.Inf(1), shape.KindInvalid},
		{"-Inf", math.Inf(-1), shape.KindInvalid},
		{"true", true, shape.KindBool},
		{"false", false, shape.KindBool},
		{"nil", nil, shape.KindNull},
		{"absent", shape.Absent, shape.KindUndefined},
		{"object", map[string]any{"a": 1}, shape.KindObject},
		{"empty object", map[string]any{}, shape.KindObject},
		{"array", []any{1, "x"}, shape.KindArray},
		{"empty array", []any{}, shape.KindArray},
		{"struct", struct{}{}, shape.KindInvalid},
		{"chan", make(chan int), shape.KindInvalid},
		{"non-string-key map", map[int]any{1: "x"}, shape.KindInvalid},
	}
	for _, tc := range cases {
		if got := shape.KindOf(tc.v); got != tc.want {
			t.Errorf("%s: KindOf(%v) = %v, want %v", tc.name, tc.v, got, tc.want)
		}
	}
}

func TestPredicates_Exactness(t *testing.T) {
	// no coercion anywhere: each predicate accepts its kind only
	if !shape.IsNumber(float64(42)) {
		t.Fatalf("IsNumber(42) should hold")
	}
	if shape.IsNumber(math.NaN()) {
		t.Fatalf("IsNumber(NaN) must be false")
	}
	if shape.IsNumber("42") {
		t.Fatalf("IsNumber of a numeric string must be false")
	}
	if shape.IsString(42) {
		t.Fatalf("IsString(42) must be false")
	}
	if shape.IsBool(1) {
		t.Fatalf("IsBool(1) must be false")
	}
}

func TestNullVsUndefined_DistinctSentinels(t *testing.T) {
	if !shape.IsNull(nil) || shape.IsNull(shape.Absent) {
		t.Fatalf("IsNull must accept nil only")
	}
	if !shape.IsUndefined(shape.Absent) || shape.IsUndefined(nil) {
		t.Fatalf("IsUndefined must accept Absent only")
	}
}

func TestIsObject_ExcludesNullAndArray(t *testing.T) {
	if shape.IsObject(nil) {
		t.Fatalf("null is not an object")
	}
	if shape.IsObject([]any{}) {
		t.Fatalf("array is not an object")
	}
	if !shape.IsObject(map[string]any{}) {
		t.Fatalf("empty map is an object")
	}
}

func TestKindString_Labels(t *testing.T) {
	if shape.KindNumber.String() != "number" || shape.KindInvalid.String() != "unknown" {
		t.Fatalf("unexpected kind labels: %v %v", shape.KindNumber, shape.KindInvalid)
	}
}
