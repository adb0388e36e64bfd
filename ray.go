package math2d

// Ray is a direction anchored at an origin point. It represents the
// infinite line Origin + t*Dir unless an operation explicitly restricts
// itself to the forward half (t >= 0).
//
// Dir is always unit length: the constructors normalize whatever vector
// they are given, so distance arguments translate directly to points on
// the line.
type Ray struct {
	Origin Point
	Dir    Vec2
}

// NewRay creates a Ray anchored at origin. dir is normalized before
// being stored.
func NewRay(origin Point, dir Vec2) Ray {
	return Ray{origin, dir.Normalize()}
}

// RayThrough creates a Ray anchored at origin pointing toward target.
func RayThrough(origin, target Point) Ray {
	return NewRay(origin, target.Sub(origin))
}

// At returns the point at distance d along the ray. Negative distances
// walk backward along the line.
func (r Ray) At(d float64) Point {
	return r.Origin.AddScaled(r.Dir, d)
}

// PerpPoint returns the point at distance d along one of the two
// perpendiculars through the origin.
func (r Ray) PerpPoint(d float64, clockwise bool) Point {
	if clockwise {
		return r.Origin.AddScaled(r.Dir.PerpCW(), d)
	}
	return r.Origin.AddScaled(r.Dir.Perp(), d)
}

// ParallelPoints returns the two points straddling the origin, each
// separation/2 away along opposite perpendiculars. Anchoring rays with
// the same direction at these points yields the two boundary lines of a
// stroke of the given width centered on this ray.
func (r Ray) ParallelPoints(separation float64) (Point, Point) {
	return r.PerpPoint(separation/2, false), r.PerpPoint(separation/2, true)
}

// WithOriginAt returns the same ray re-anchored at the point distance d
// along the line.
func (r Ray) WithOriginAt(d float64) Ray {
	return Ray{r.At(d), r.Dir}
}

// Rotate returns the ray rotated around its origin by angle (radians).
func (r Ray) Rotate(angle float64) Ray {
	return Ray{r.Origin, r.Dir.Rotate(angle)}
}

// Intersect returns the point where the infinite lines of r and o cross.
// Parallel lines, coincident ones included, report no intersection: the
// determinant test is an exact comparison so that only truly parallel
// directions short-circuit.
//
// Each line is written in implicit form dy*x - dx*y = c with c evaluated
// at the line's origin; Cramer's rule then recovers the crossing.
func (r Ray) Intersect(o Ray) (Point, bool) {
	det := r.Dir.X*o.Dir.Y - o.Dir.X*r.Dir.Y
	if det == 0 {
		return Point{}, false
	}
	c1 := r.Dir.Y*r.Origin.X - r.Dir.X*r.Origin.Y
	c2 := o.Dir.Y*o.Origin.X - o.Dir.X*o.Origin.Y
	return Point{
		X: (r.Dir.X*c2 - o.Dir.X*c1) / det,
		Y: (r.Dir.Y*c2 - o.Dir.Y*c1) / det,
	}, true
}

// IntersectHorizontal returns the point where the line crosses the
// horizontal line at y. An exactly horizontal ray never crosses another
// horizontal line at a single point and reports no intersection. With
// forwardOnly set, crossings behind the origin are rejected.
func (r Ray) IntersectHorizontal(y float64, forwardOnly bool) (Point, bool) {
	if r.Dir.Y == 0 {
		return Point{}, false
	}
	d := (y - r.Origin.Y) / r.Dir.Y
	if forwardOnly && d < 0 {
		return Point{}, false
	}
	return r.At(d), true
}

// IntersectVertical returns the point where the line crosses the
// vertical line at x. An exactly vertical ray reports no intersection.
// With forwardOnly set, crossings behind the origin are rejected.
func (r Ray) IntersectVertical(x float64, forwardOnly bool) (Point, bool) {
	if r.Dir.X == 0 {
		return Point{}, false
	}
	d := (x - r.Origin.X) / r.Dir.X
	if forwardOnly && d < 0 {
		return Point{}, false
	}
	return r.At(d), true
}

// IntersectRect returns the two points where the infinite line crosses
// the rectangle boundary, walking the four edges: the crossings with the
// left and right vertical edges decide which horizontal edge, if any,
// substitutes for an out-of-range side. The result is always either no
// points or exactly two.
func (r Ray) IntersectRect(rect Rect) (Point, Point, bool) {
	left, ok := r.IntersectVertical(rect.Min.X, false)
	if !ok {
		// Exactly vertical: the line crosses top and bottom edges iff
		// its x lies within the horizontal span.
		if r.Origin.X < rect.Min.X || r.Origin.X > rect.Max.X {
			return Point{}, Point{}, false
		}
		return Point{r.Origin.X, rect.Min.Y}, Point{r.Origin.X, rect.Max.Y}, true
	}
	right, _ := r.IntersectVertical(rect.Max.X, false)

	switch {
	case left.Y < rect.Min.Y:
		// Left crossing above the rectangle.
		if right.Y < rect.Min.Y {
			return Point{}, Point{}, false
		}
		top, _ := r.IntersectHorizontal(rect.Min.Y, false)
		if right.Y <= rect.Max.Y {
			return top, right, true
		}
		bottom, _ := r.IntersectHorizontal(rect.Max.Y, false)
		return top, bottom, true

	case left.Y > rect.Max.Y:
		// Left crossing below the rectangle.
		if right.Y > rect.Max.Y {
			return Point{}, Point{}, false
		}
		bottom, _ := r.IntersectHorizontal(rect.Max.Y, false)
		if right.Y >= rect.Min.Y {
			return bottom, right, true
		}
		top, _ := r.IntersectHorizontal(rect.Min.Y, false)
		return bottom, top, true

	default:
		// Left crossing within the vertical span.
		if right.Y < rect.Min.Y {
			top, _ := r.IntersectHorizontal(rect.Min.Y, false)
			return left, top, true
		}
		if right.Y > rect.Max.Y {
			bottom, _ := r.IntersectHorizontal(rect.Max.Y, false)
			return left, bottom, true
		}
		return left, right, true
	}
}
