package geom

import (
	"fmt"
	"math"
)

// A Point is a location in three-dimensional space, made up of three
// coordinates named x, y and z of representation type C.
//
// Point is a plain value type: assignment copies all three coordinates and
// distinct values never share state. The zero value is the origin.
type Point[C Coordinate] struct {
	x, y, z C
}

// NewPoint returns a Point holding exactly the supplied coordinates. The
// values are stored as given, with no rounding, normalization or
// validation.
func NewPoint[C Coordinate](x, y, z C) Point[C] {
	return Point[C]{x: x, y: y, z: z}
}

// X returns the x coordinate. The coordinate comes back by value, so the
// caller cannot modify the stored coordinate through it.
func (p Point[C]) X() C {
	return p.x
}

// Y returns the y coordinate.
func (p Point[C]) Y() C {
	return p.y
}

// Z returns the z coordinate.
func (p Point[C]) Z() C {
	return p.z
}

// SetX replaces the x coordinate in place. It is the writable counterpart
// of X; the new value is visible to every subsequent read.
func (p *Point[C]) SetX(x C) {
	p.x = x
}

// SetY replaces the y coordinate in place.
func (p *Point[C]) SetY(y C) {
	p.y = y
}

// SetZ replaces the z coordinate in place.
func (p *Point[C]) SetZ(z C) {
	p.z = z
}

// DistanceFrom returns the Euclidean distance between p and other.
//
// Intermediate arithmetic runs in C. An integer C keeps integer overflow
// semantics and a float32 C keeps single-precision rounding; only the
// finished sum of squares is widened to float64, at the square root. For
// floating representations a NaN coordinate makes the result NaN.
func (p Point[C]) DistanceFrom(other Point[C]) float64 {
	dx := p.x - other.x
	dy := p.y - other.y
	dz := p.z - other.z
	return math.Sqrt(float64(dx*dx + dy*dy + dz*dz))
}

// String returns a diagnostic representation such as "Point(1, 2, 3)".
// It is not a serialization format.
func (p Point[C]) String() string {
	return fmt.Sprintf("Point(%v, %v, %v)", p.x, p.y, p.z)
}
