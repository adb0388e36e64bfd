// lineview - Terminal 2D Line Geometry Viewer
// Interactive playground for the math2d library: an anchored vector
// swept through a rectangle, with its boundary crossings, parallel
// stroke lines, and half-plane shading drawn live.
//
// Controls:
//
//	Mouse move  - Move the line anchor
//	A/D         - Rotate the line (spring damped)
//	Space       - Toggle continuous spin
//	H           - Toggle half-plane shading
//	P           - Toggle parallel stroke lines
//	R           - Reset anchor and angle
//	?           - Toggle HUD overlay
//	Esc         - Quit
package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"

	"fortio.org/log"
	"fortio.org/terminal/ansipixels"
	"fortio.org/terminal/ansipixels/tcolor"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/harmonica"
	"github.com/spf13/cobra"

	"github.com/ansipixels/math2d"
	"github.com/ansipixels/math2d/render"
)

var (
	targetFPS   float64
	strokeWidth float64
)

func main() {
	cmd := &cobra.Command{
		Use:   "lineview",
		Short: "Terminal 2D line geometry viewer",
		Long: `lineview - Terminal 2D Line Geometry Viewer

Sweep an anchored vector through a rectangle and watch its boundary
crossings, parallel stroke lines, and half-plane shading update live.

Controls:
  Mouse move  - Move the line anchor
  A/D         - Rotate the line
  Space       - Toggle continuous spin
  H           - Toggle half-plane shading
  P           - Toggle parallel stroke lines
  R           - Reset view
  ?           - Toggle HUD overlay
  Esc         - Quit`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDemo()
		},
	}
	cmd.Flags().Float64Var(&targetFPS, "fps", 60, "Target FPS")
	cmd.Flags().Float64Var(&strokeWidth, "stroke", 16, "Parallel stroke separation in pixels")

	intersectCmd := &cobra.Command{
		Use:   "intersect x1 y1 x2 y2 x3 y3 x4 y4",
		Short: "Intersect two lines given by two points each",
		Long: "Compute the intersection of the line through (x1,y1) and (x2,y2)\n" +
			"with the line through (x3,y3) and (x4,y4).",
		Args: cobra.ExactArgs(8),
		RunE: func(_ *cobra.Command, args []string) error {
			return runIntersect(args)
		},
	}
	cmd.AddCommand(intersectCmd)

	if err := fang.Execute(context.Background(), cmd); err != nil {
		os.Exit(1)
	}
}

func runIntersect(args []string) error {
	v := make([]float64, 8)
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("argument %d (%q): %w", i+1, s, err)
		}
		v[i] = f
	}
	a := math2d.RayThrough(math2d.Pt(v[0], v[1]), math2d.Pt(v[2], v[3]))
	b := math2d.RayThrough(math2d.Pt(v[4], v[5]), math2d.Pt(v[6], v[7]))

	fmt.Printf("Line A: (%g, %g) toward (%g, %g), angle %.6f rad\n", v[0], v[1], v[2], v[3], a.Dir.Angle())
	fmt.Printf("Line B: (%g, %g) toward (%g, %g), angle %.6f rad\n", v[4], v[5], v[6], v[7], b.Dir.Angle())

	p, ok := a.Intersect(b)
	if !ok {
		fmt.Println("Lines are parallel; no intersection.")
		return nil
	}
	fmt.Printf("Intersection: (%.6f, %.6f)\n", p.X, p.Y)
	if a.InHalfPlane(p) && b.InHalfPlane(p) {
		fmt.Println("The crossing lies ahead of both anchors.")
	}
	return nil
}

// SpinAxis tracks the line angle and its velocity with spring decay.
type SpinAxis struct {
	Angle     float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewSpinAxis creates the axis with a harmonica spring for smooth velocity decay.
func NewSpinAxis(fps int) SpinAxis {
	return SpinAxis{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update applies velocity to the angle and decays velocity toward 0.
func (a *SpinAxis) Update(damping bool) {
	a.Angle += a.Velocity
	if damping {
		a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
	}
}

// ViewState holds all demo toggles (UI state, not library code).
type ViewState struct {
	ShadeHalf bool // Whether to stipple the half-plane
	Parallels bool // Whether to draw the parallel stroke lines
	SpinMode  bool // Whether continuous spin is enabled
	ShowHUD   bool // Whether to show the HUD overlay
}

// HUD renders an overlay with the current geometry readout.
type HUD struct {
	state *ViewState
}

// Draw renders the HUD overlay to the terminal using ansipixels.
func (h *HUD) Draw(ap *ansipixels.AnsiPixels, ray math2d.Ray, crossings int) {
	if !h.state.ShowHUD {
		return
	}
	ap.WriteAt(0, 0, tcolor.Green.Foreground()+"angle %.2f rad"+tcolor.Reset, ray.Dir.Angle())
	ap.WriteCentered(0, "lineview")
	ap.WriteRight(0, tcolor.Cyan.Foreground()+"%d crossings"+tcolor.Reset, crossings)

	checkHalf := "[ ]"
	if h.state.ShadeHalf {
		checkHalf = "[✓]"
	}
	checkPar := "[ ]"
	if h.state.Parallels {
		checkPar = "[✓]"
	}
	ap.WriteAt(0, ap.H-1, "%s H: half-plane  %s P: parallels", checkHalf, checkPar)
	ap.WriteRight(ap.H-1, "%sA/D: rotate  Space: spin%s", tcolor.Yellow.Foreground(), tcolor.Reset)
}

func runDemo() error {
	ap := ansipixels.NewAnsiPixels(targetFPS)
	if err := ap.Open(); err != nil {
		return fmt.Errorf("open ansipixels: %w", err)
	}
	defer func() {
		ap.ShowCursor()
		ap.MouseTrackingOff()
		ap.Out.Flush()
		ap.Restore()
	}()
	ap.SyncBackgroundColor()
	ap.MouseTrackingOn()
	ap.HideCursor()

	// 2x height for half-block characters, as usual for pixel output.
	fb := render.NewFramebuffer(ap.W, ap.H*2)
	fb.BG = render.RGB(ap.Background.R, ap.Background.G, ap.Background.B)

	spin := NewSpinAxis(int(math.Round(targetFPS)))
	spin.Angle = -math.Pi / 5
	viewState := &ViewState{ShadeHalf: true, ShowHUD: true}
	hud := &HUD{state: viewState}

	// Anchor starts at the buffer center, mouse takes over afterward.
	anchor := fb.Bounds().Center()
	const impulse = 0.05

	ap.OnMouse = func() {
		anchor = math2d.Pt(float64(ap.Mx), float64(ap.My*2))
	}
	ap.OnResize = func() error {
		fb.Resize(ap.W, ap.H*2)
		anchor = fb.Bounds().Center()
		return nil
	}

	log.Infof("lineview demo starting at %g FPS", targetFPS)
	err := ap.FPSTicks(func() bool {
		for _, b := range ap.Data {
			switch b {
			case 'a', 'A':
				spin.Velocity -= impulse
			case 'd', 'D':
				spin.Velocity += impulse
			case 'h', 'H':
				viewState.ShadeHalf = !viewState.ShadeHalf
			case 'p', 'P':
				viewState.Parallels = !viewState.Parallels
			case 'r', 'R':
				spin = NewSpinAxis(int(math.Round(targetFPS)))
				spin.Angle = -math.Pi / 5
				anchor = fb.Bounds().Center()
			case ' ':
				viewState.SpinMode = !viewState.SpinMode
				if viewState.SpinMode {
					spin.Velocity = 0.02
				}
			case '?':
				viewState.ShowHUD = !viewState.ShowHUD
			case 27, 'q', 'Q': // Escape
				return false
			case 3, 4: // Ctrl-C, Ctrl-D
				return false
			}
		}

		spin.Update(!viewState.SpinMode)
		ray := math2d.NewRay(anchor, math2d.Polar(1, spin.Angle))

		// Rectangle inset from the buffer edges.
		bounds := fb.Bounds()
		insetX, insetY := bounds.W()/6, bounds.H()/6
		box := math2d.R(bounds.Min.X+insetX, bounds.Min.Y+insetY,
			bounds.Max.X-insetX, bounds.Max.Y-insetY)

		fb.Clear()
		if viewState.ShadeHalf {
			fb.ShadeHalfPlane(ray, 4, render.RGB(60, 60, 90))
		}
		fb.DrawRect(box, render.RGB(120, 120, 120))
		if viewState.Parallels {
			fb.DrawParallels(ray, strokeWidth, render.RGB(0, 128, 255))
		}
		fb.DrawRay(ray, render.RGB(0, 255, 128))

		crossings := 0
		if p1, p2, ok := ray.IntersectRect(box); ok {
			crossings = 2
			fb.DrawMarker(p1, render.ColorRed)
			fb.DrawMarker(p2, render.ColorRed)
		}
		fb.DrawMarker(ray.Origin, render.ColorWhite)

		ap.ClearScreen()
		if err := ap.ShowScaledImage(fb.ToImage()); err != nil {
			log.Errf("show image: %v", err)
			return false
		}
		hud.Draw(ap, ray, crossings)
		return true
	})
	if err != nil {
		return fmt.Errorf("main loop: %w", err)
	}
	return nil
}
