package shape

import (
	"errors"

	j "github.com/goccy/go-json"
)

// ErrNotConforming is returned by Conform when the decoded document fails the
// shape check.
var ErrNotConforming = errors.New("shape: value does not conform")

// Conform decodes data as JSON, checks it against s, and unmarshals it into
// the caller-declared type T. Go cannot derive T from the shape the way a
// conditional type system would, so the static type is declared by hand at
// the call site and kept in sync with the shape by convention; Conform keeps
// that pairing at a single call site.
//
//	user, err := shape.Conform[User](userShape, data)
func Conform[T any](s Shape, data []byte) (T, error) {
	var out T
	ok, err := CheckJSON(s, data)
	if err != nil {
		return out, err
	}
	if !ok {
		return out, ErrNotConforming
	}
	if err := j.Unmarshal(data, &out); err != nil {
		return out, err
	}
	return out, nil
}
