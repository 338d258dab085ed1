// Package geom provides a generic three-dimensional point.
//
// The coordinate representation is a type parameter instead of a fixed
// numeric type, so callers pick the storage and arithmetic that fit their
// use:
//   - float64 when precision matters most
//   - float32 when memory or speed does
//   - an integer type for discrete spaces
//
// Instantiations built from different representations are distinct types:
// a Point[int] and a Point[float64] are incompatible with each other.
package geom

import "golang.org/x/exp/constraints"

// Coordinate is the set of types a Point can use as its coordinate
// representation: any integer or floating-point type.
type Coordinate interface {
	constraints.Integer | constraints.Float
}
