package dsl_test

import (
	"encoding/json"
	"math"
	"os"
	"testing"

	shape "github.com/reoring/shape"
	g "github.com/reoring/shape/dsl"
	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	shape.SetDiagLogger(zerolog.Nop())
	os.Exit(m.Run())
}

func TestString_Basic(t *testing.T) {
	s := g.String()
	if !s.Check("hello") || !s.Check("") {
		t.Fatalf("string values must pass")
	}
	if s.Check(42) || s.Check(nil) || s.Check(true) || s.Check(shape.Absent) {
		t.Fatalf("non-string values must fail")
	}
	if s.Name() != "string" {
		t.Fatalf("name = %q", s.Name())
	}
	if s.Optional() {
		t.Fatalf("leaf shapes are never optional")
	}
}

func TestNumber_FiniteOnly(t *testing.T) {
	n := g.Number()
	if !n.Check(float64(42)) || !n.Check(json.Number("29")) || !n.Check(0) {
		t.Fatalf("finite numbers must pass")
	}
	if n.Check(math.NaN()) {
		t.Fatalf("NaN must fail")
	}
	if n.Check(math.Inf(1)) || n.Check(math.Inf(-1)) {
		t.Fatalf("infinities must fail")
	}
	if n.Check("42") {
		t.Fatalf("numeric strings must fail (no coercion)")
	}
	if n.Name() != "number" {
		t.Fatalf("name = %q", n.Name())
	}
}

func TestBool_LiteralsOnly(t *testing.T) {
	b := g.Bool()
	if !b.Check(true) || !b.Check(false) {
		t.Fatalf("boolean literals must pass")
	}
	if b.Check(0) || b.Check("true") || b.Check(nil) {
		t.Fatalf("non-bool values must fail")
	}
	if b.Name() != "boolean" {
		t.Fatalf("name = %q", b.Name())
	}
}
