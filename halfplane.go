package math2d

// InHalfPlane reports whether p lies on the side that r.Dir points
// toward of the boundary line through r.Origin perpendicular to r.Dir.
// Points exactly on the boundary count as inside.
//
// When the boundary line is axis-aligned the test reduces to a single
// coordinate comparison, sidestepping cross-product rounding: a vertical
// direction (Dir.X == 0) means a horizontal boundary, so the sign of
// Dir.Y decides whether "in" is y at or above the origin or at or below
// it; a horizontal direction means a vertical boundary decided on x.
func (r Ray) InHalfPlane(p Point) bool {
	if r.Dir.X == 0 {
		if r.Dir.Y > 0 {
			return p.Y >= r.Origin.Y
		}
		return p.Y <= r.Origin.Y
	}
	if r.Dir.Y == 0 {
		if r.Dir.X > 0 {
			return p.X >= r.Origin.X
		}
		return p.X <= r.Origin.X
	}

	perp := r.Dir.Perp()
	c := perp.Cross(p.Sub(r.Origin))
	if c == 0 {
		// On the boundary.
		return true
	}
	return (c > 0) == (perp.Cross(r.Dir) > 0)
}
