// Package math2d provides 2D vector and anchored-vector geometry for
// drawing and interactive-UI calculations: angles, perpendiculars,
// projections, and intersection queries against lines, rectangles, and
// half-planes.
package math2d

import "math"

// Vec2 represents a free 2D vector (direction and magnitude).
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Polar creates a Vec2 of the given length pointing at angle (radians).
func Polar(length, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{length * cos, length * sin}
}

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns the scalar product a * s.
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Div returns the vector divided by a scalar.
func (a Vec2) Div(s float64) Vec2 {
	return Vec2{a.X / s, a.Y / s}
}

// Negate returns the negated vector.
func (a Vec2) Negate() Vec2 {
	return Vec2{-a.X, -a.Y}
}

// Dot returns the dot product a · b.
func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the scalar 2D cross product a × b.
func (a Vec2) Cross(b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Len returns the length of the vector.
func (a Vec2) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec2) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y
}

// IsUnit reports whether the vector has exactly unit length.
// The comparison is exact: a vector built by Normalize satisfies it,
// one that merely rounds to length 1 does not.
func (a Vec2) IsUnit() bool {
	return a.LenSq() == 1
}

// Normalize returns the unit vector. A vector that is already exactly
// unit length is returned unchanged. The zero vector normalizes to the
// zero vector.
func (a Vec2) Normalize() Vec2 {
	if a.LenSq() == 1 {
		return a
	}
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// Perp returns the counter-clockwise perpendicular (-Y, X).
func (a Vec2) Perp() Vec2 {
	return Vec2{-a.Y, a.X}
}

// PerpCW returns the clockwise perpendicular (Y, X).
// Note this is not the negation of Perp; both forms feed the half-plane
// sign logic and must stay as written.
func (a Vec2) PerpCW() Vec2 {
	return Vec2{a.Y, a.X}
}

// Rotate rotates the vector by angle (radians).
func (a Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		a.X*cos - a.Y*sin,
		a.X*sin + a.Y*cos,
	}
}

// Angle returns the angle of the vector versus the +x axis, in radians.
func (a Vec2) Angle() float64 {
	return math.Atan2(a.Y, a.X)
}

// AngleBetween returns the signed angle from b to a. A positive cross
// product yields a negative angle. When the vectors are exactly
// perpendicular (dot product zero) the result is 0 without going through
// acos, whose argument could round outside [-1, 1].
func (a Vec2) AngleBetween(b Vec2) float64 {
	dot := a.Dot(b)
	if dot == 0 {
		return 0
	}
	angle := math.Acos(dot / (a.Len() * b.Len()))
	if a.Cross(b) > 0 {
		angle = -angle
	}
	return angle
}

// WithAngle returns a vector with the same length pointing at angle.
func (a Vec2) WithAngle(angle float64) Vec2 {
	return Polar(a.Len(), angle)
}

// WithLen returns a vector with the same angle scaled to length l.
func (a Vec2) WithLen(l float64) Vec2 {
	return Polar(l, a.Angle())
}

// Lerp returns linear interpolation between a and b.
func (a Vec2) Lerp(b Vec2, t float64) Vec2 {
	return Vec2{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
	}
}
