package math2d

import "math"

// Point represents a 2D point. Points and vectors are distinct types:
// a Point is a location, a Vec2 is a displacement between locations.
type Point struct {
	X, Y float64
}

// Pt creates a new Point.
func Pt(x, y float64) Point {
	return Point{x, y}
}

// Add returns the point translated by v.
func (p Point) Add(v Vec2) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

// AddScaled returns the point translated by v * s.
func (p Point) AddScaled(v Vec2, s float64) Point {
	return Point{p.X + v.X*s, p.Y + v.Y*s}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{p.X - q.X, p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Lerp returns linear interpolation between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		p.X + (q.X-p.X)*t,
		p.Y + (q.Y-p.Y)*t,
	}
}
