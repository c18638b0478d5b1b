// Package geom provides the 2D primitives used to author SVG documents:
// a vector, an axis-aligned rectangle and an isosceles triangle.
//
// All types are plain values. Mutating operations use pointer receivers
// and return the receiver so calls can be chained; everything else
// returns new values and leaves the receiver untouched.
package geom

import (
	"errors"
	"strconv"
)

// ErrInvalidArgument is returned when a constructor or operation receives
// an operand that is missing, non-numeric or not finite.
var ErrInvalidArgument = errors.New("geom: invalid argument")

// FormatFloat renders v in the shortest decimal form without an exponent,
// e.g. 10, 0.5, -4736.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
