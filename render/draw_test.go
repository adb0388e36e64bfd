package render

import (
	"testing"

	"github.com/ansipixels/math2d"
)

func TestDrawLine(t *testing.T) {
	fb := NewFramebuffer(20, 20)
	fb.DrawLine(math2d.Pt(0, 5), math2d.Pt(19, 5), ColorWhite)
	for x := 0; x < 20; x++ {
		if fb.At(x, 5) != ColorWhite {
			t.Errorf("pixel (%d,5) not set", x)
		}
	}
}

func TestDrawRayClipped(t *testing.T) {
	fb := NewFramebuffer(30, 30)
	// Diagonal through the middle: endpoints land on the buffer edges.
	fb.DrawRay(math2d.NewRay(math2d.Pt(15, 15), math2d.V2(1, 1)), ColorGreen)
	if fb.At(15, 15) != ColorGreen {
		t.Error("center pixel not set")
	}
	if fb.At(0, 0) != ColorGreen || fb.At(29, 29) != ColorGreen {
		t.Error("clipped endpoints not drawn")
	}
	if fb.At(0, 1) == ColorGreen {
		t.Error("pixel off the line was set")
	}
}

func TestDrawRayMiss(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	// Vertical line left of the buffer: nothing to draw.
	fb.DrawRay(math2d.NewRay(math2d.Pt(-5, 0), math2d.V2(0, 1)), ColorRed)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if fb.At(x, y) != (Color{}) {
				t.Fatalf("pixel (%d,%d) set by a line outside the buffer", x, y)
			}
		}
	}
}

func TestDrawRect(t *testing.T) {
	fb := NewFramebuffer(20, 20)
	fb.DrawRect(math2d.R(2, 3, 10, 12), ColorBlue)
	corners := [][2]int{{2, 3}, {10, 3}, {2, 12}, {10, 12}}
	for _, c := range corners {
		if fb.At(c[0], c[1]) != ColorBlue {
			t.Errorf("corner (%d,%d) not set", c[0], c[1])
		}
	}
	if fb.At(5, 5) == ColorBlue {
		t.Error("interior pixel set by outline draw")
	}
}

func TestShadeHalfPlane(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	// Direction +x from the middle column: only x >= 5 shades.
	fb.ShadeHalfPlane(math2d.NewRay(math2d.Pt(5, 0), math2d.V2(1, 0)), 1, ColorWhite)
	if fb.At(6, 3) != ColorWhite || fb.At(5, 9) != ColorWhite {
		t.Error("in-plane pixels not shaded")
	}
	if fb.At(4, 3) == ColorWhite {
		t.Error("out-of-plane pixel shaded")
	}
}

func TestDrawParallels(t *testing.T) {
	fb := NewFramebuffer(21, 21)
	// Vertical stroke of width 10 centered at x=10: boundaries at x=5, 15.
	fb.DrawParallels(math2d.NewRay(math2d.Pt(10, 10), math2d.V2(0, 1)), 10, ColorRed)
	if fb.At(5, 10) != ColorRed || fb.At(15, 10) != ColorRed {
		t.Error("stroke boundary lines not drawn")
	}
	if fb.At(10, 10) == ColorRed {
		t.Error("stroke center drawn by boundary-only draw")
	}
}
