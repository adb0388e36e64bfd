package math2d

// Rect is an axis-aligned rectangle with Min at the top-left corner
// (y grows downward, the usual screen convention).
type Rect struct {
	Min, Max Point
}

// R creates a Rect from its bounds.
func R(minX, minY, maxX, maxY float64) Rect {
	return Rect{Point{minX, minY}, Point{maxX, maxY}}
}

// W returns the rectangle width.
func (r Rect) W() float64 {
	return r.Max.X - r.Min.X
}

// H returns the rectangle height.
func (r Rect) H() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the rectangle center point.
func (r Rect) Center() Point {
	return r.Min.Lerp(r.Max, 0.5)
}

// Contains reports whether p lies inside the rectangle, borders included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
