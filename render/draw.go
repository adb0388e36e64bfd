package render

import (
	"math"

	"github.com/ansipixels/math2d"
)

// Bounds returns the framebuffer extent as a math2d rectangle, suitable
// for clipping infinite lines against.
func (fb *Framebuffer) Bounds() math2d.Rect {
	return math2d.R(0, 0, float64(fb.Width-1), float64(fb.Height-1))
}

// DrawLine draws the segment from p to q.
func (fb *Framebuffer) DrawLine(p, q math2d.Point, c Color) {
	dx := q.X - p.X
	dy := q.Y - p.Y
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		fb.SetPixel(int(math.Round(p.X+dx*t)), int(math.Round(p.Y+dy*t)), c)
	}
}

// DrawRect draws the rectangle outline.
func (fb *Framebuffer) DrawRect(r math2d.Rect, c Color) {
	tl := r.Min
	tr := math2d.Pt(r.Max.X, r.Min.Y)
	bl := math2d.Pt(r.Min.X, r.Max.Y)
	br := r.Max
	fb.DrawLine(tl, tr, c)
	fb.DrawLine(tr, br, c)
	fb.DrawLine(br, bl, c)
	fb.DrawLine(bl, tl, c)
}

// DrawRay draws the infinite line through ray clipped to the
// framebuffer. Lines that miss the buffer entirely draw nothing; a hit
// always yields the two boundary crossings to connect.
func (fb *Framebuffer) DrawRay(ray math2d.Ray, c Color) {
	p1, p2, ok := ray.IntersectRect(fb.Bounds())
	if !ok {
		return
	}
	fb.DrawLine(p1, p2, c)
}

// DrawParallels draws the two boundary lines of a stroke of the given
// width centered on ray.
func (fb *Framebuffer) DrawParallels(ray math2d.Ray, width float64, c Color) {
	a, b := ray.ParallelPoints(width)
	fb.DrawRay(math2d.Ray{Origin: a, Dir: ray.Dir}, c)
	fb.DrawRay(math2d.Ray{Origin: b, Dir: ray.Dir}, c)
}

// ShadeHalfPlane stipples every step-th pixel lying in the half-plane of
// ray. step <= 1 fills solid.
func (fb *Framebuffer) ShadeHalfPlane(ray math2d.Ray, step int, c Color) {
	if step < 1 {
		step = 1
	}
	for y := 0; y < fb.Height; y += step {
		for x := 0; x < fb.Width; x += step {
			if ray.InHalfPlane(math2d.Pt(float64(x), float64(y))) {
				fb.SetPixel(x, y, c)
			}
		}
	}
}

// DrawMarker draws a small cross centered on p.
func (fb *Framebuffer) DrawMarker(p math2d.Point, c Color) {
	x := int(math.Round(p.X))
	y := int(math.Round(p.Y))
	for d := -2; d <= 2; d++ {
		fb.SetPixel(x+d, y, c)
		fb.SetPixel(x, y+d, c)
	}
}
