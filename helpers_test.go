package panzoom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if !approxEqual(got, want, 1e-6) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertRect(t *testing.T, name string, got, want Rect) {
	t.Helper()
	if !approxEqual(got.X, want.X, 1e-6) || !approxEqual(got.Y, want.Y, 1e-6) ||
		!approxEqual(got.Width, want.Width, 1e-6) || !approxEqual(got.Height, want.Height, 1e-6) {
		t.Errorf("%s = %+v, want %+v", name, got, want)
	}
}

func boolPtr(b bool) *bool { return &b }

// fixture is an 800x600 page whose container fills it, with a 2000x1000
// canvas and a 200x150 minimap panel in the bottom-right corner.
type fixture struct {
	page      *Page
	container *Box
	canvas    *Box
	panel     *Box
	designer  *Designer
	vp        *Viewport
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	if opts.CanvasOriginWidth == 0 {
		opts.CanvasOriginWidth, opts.CanvasOriginHeight = 2000, 1000
	}
	f := &fixture{page: NewPage(800, 600)}
	f.container = NewBox("container", Rect{Width: 800, Height: 600})
	f.canvas = NewChildBox("canvas", f.container, Rect{})
	f.panel = NewBox("navigator", Rect{X: 600, Y: 450, Width: 200, Height: 150})
	f.page.Add(f.container, f.canvas, f.panel)
	f.designer = NewDesigner(Config{
		Container: f.container,
		Canvas:    f.canvas,
		Window:    f.page,
		Navigator: f.panel,
		Options:   opts,
	})
	f.vp = f.designer.Viewport()
	return f
}

// overlap returns the width and height of the intersection of a canvas
// rectangle (container-relative) with a w×h container.
func overlap(r Rect, w, h float64) (float64, float64) {
	ow := math.Min(r.X+r.Width, w) - math.Max(r.X, 0)
	oh := math.Min(r.Y+r.Height, h) - math.Max(r.Y, 0)
	return ow, oh
}
