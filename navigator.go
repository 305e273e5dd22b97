package panzoom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SliderStep is the granularity of the navigator zoom slider.
const SliderStep = 0.1

const sliderStepsPerUnit = 1 / SliderStep

// boxRegistrar is implemented by hosts (Page) that hit-test boxes.
type boxRegistrar interface {
	Add(boxes ...*Box)
}

// Navigator is the minimap: a thumbnail of the canvas letterboxed in a panel
// with a scope rectangle marking the visible part. Dragging the scope pans
// the viewport; the slider, min/max and text controls scale it.
type Navigator struct {
	viewport *Viewport
	panel    Element
	window   EventTarget

	thumbnail *Box
	scope     *Box
	gesture   *Gesture

	slider  float64
	handles []CallbackHandle
}

// NewNavigator mounts a minimap in panel. window receives drag move/up
// events; when it is a *Page the thumbnail and scope boxes are registered
// for hit testing. A nil panel gives a navigator whose zoom controls work
// but which draws nothing.
func NewNavigator(vp *Viewport, panel Element, window EventTarget) *Navigator {
	n := &Navigator{viewport: vp, panel: panel, window: window, slider: vp.CurrentScale()}
	n.handles = append(n.handles, vp.Store().Watch([]Field{FieldScale}, func(c FieldChange) {
		n.slider = c.New
	}))
	if panel == nil {
		return n
	}

	n.thumbnail = NewChildBox("navigator-thumbnail", panel, Rect{})
	n.scope = NewChildBox("navigator-scope", n.thumbnail, Rect{})
	if r, ok := window.(boxRegistrar); ok {
		r.Add(n.thumbnail, n.scope)
	}
	n.gesture = NewGesture(GestureConfig{
		Target: n.scope,
		Window: window,
		OnPan:  n.panScope,
	})
	n.handles = append(n.handles, vp.OnTransform(func(TransformEvent) {
		n.updateScope()
	}))
	n.Refresh()
	return n
}

// Thumbnail returns the thumbnail box, or nil when no panel is mounted.
func (n *Navigator) Thumbnail() *Box { return n.thumbnail }

// Scope returns the scope box, or nil when no panel is mounted.
func (n *Navigator) Scope() *Box { return n.scope }

// SliderValue returns the value shown by the zoom slider.
func (n *Navigator) SliderValue() float64 { return n.slider }

// TextValue returns the zoom level formatted as a percentage.
func (n *Navigator) TextValue() string {
	return fmt.Sprintf("%.0f%%", n.slider*100)
}

// Refresh re-inscribes the thumbnail in the panel and recomputes the scope.
// Call it after the panel or container is resized.
func (n *Navigator) Refresh() {
	if n.panel == nil {
		return
	}
	n.containThumbnail()
	n.updateScope()
}

// containThumbnail letterboxes the thumbnail, centered, in the panel with
// the canvas aspect ratio.
func (n *Navigator) containThumbnail() {
	pr := n.panel.Bounds()
	ow, oh := n.viewport.CanvasSize()
	if pr.Width <= 0 || pr.Height <= 0 {
		n.thumbnail.Place(Rect{})
		return
	}
	if pr.Width/pr.Height > ow/oh {
		w := pr.Height / oh * ow
		n.thumbnail.Place(Rect{X: (pr.Width - w) / 2, Y: 0, Width: w, Height: pr.Height})
	} else {
		h := pr.Width / ow * oh
		n.thumbnail.Place(Rect{X: 0, Y: (pr.Height - h) / 2, Width: pr.Width, Height: h})
	}
}

// ScopeRect computes the scope rectangle relative to the thumbnail, shrunk
// to stay inside it.
func (n *Navigator) ScopeRect() Rect {
	if n.thumbnail == nil {
		return Rect{}
	}
	tr := n.thumbnail.Local()
	ow, oh := n.viewport.CanvasSize()
	m := scaleTranslate(tr.Width/ow, tr.Height/oh, 0, 0)
	r := transformRect(m, n.viewport.VisibleCanvasRect())

	r.X, r.Width = shrinkInto(r.X, r.Width, tr.Width)
	r.Y, r.Height = shrinkInto(r.Y, r.Height, tr.Height)
	return r
}

// shrinkInto clips the span [off, off+size] to [0, limit]. The size never
// goes negative.
func shrinkInto(off, size, limit float64) (float64, float64) {
	if off+size > limit {
		size = limit - off
	}
	if off < 0 {
		size += off
		off = 0
	}
	return off, max(size, 0)
}

func (n *Navigator) updateScope() {
	n.scope.Place(n.ScopeRect())
}

// panScope converts a scope drag into a viewport pan. An axis on which the
// scope already spans the whole thumbnail does not move.
func (n *Navigator) panScope(ctx PanContext) {
	if !ctx.Dragging || !ctx.Device.ButtonDown {
		return
	}
	tr := n.thumbnail.Local()
	sr := n.scope.Local()
	if tr.Width <= 0 || tr.Height <= 0 {
		return
	}
	r := n.viewport.Rect()
	dx := -ctx.DeltaX / tr.Width * r.Width
	dy := -ctx.DeltaY / tr.Height * r.Height
	if nearlyEqual(tr.Width, sr.Width) {
		dx = 0
	}
	if nearlyEqual(tr.Height, sr.Height) {
		dy = 0
	}
	n.viewport.Pan(dx, dy)
}

// SetSlider scales to v (snapped to SliderStep) anchored on the container
// center.
func (n *Navigator) SetSlider(v float64) {
	v = math.Round(v*sliderStepsPerUnit) / sliderStepsPerUnit
	n.scaleCentered(v)
}

// ZoomMin scales to MinScaleValue.
func (n *Navigator) ZoomMin() { n.scaleCentered(MinScaleValue) }

// ZoomMax scales to MaxScaleValue.
func (n *Navigator) ZoomMax() { n.scaleCentered(MaxScaleValue) }

// SubmitText parses a zoom level typed by the user ("1.5" or "150%") and
// applies it. It reports whether the text was accepted.
func (n *Navigator) SubmitText(s string) bool {
	v, ok := parseZoom(s)
	if !ok {
		return false
	}
	n.scaleCentered(v)
	return true
}

func parseZoom(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	pct := strings.HasSuffix(s, "%")
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	if pct {
		v /= 100
	}
	return v, true
}

func (n *Navigator) scaleCentered(v float64) {
	cx, cy := n.viewport.Container().Bounds().Center()
	n.viewport.ScaleAt(v, cx, cy)
}

// Close detaches the navigator's listeners and unregisters its boxes.
func (n *Navigator) Close() {
	if n.gesture != nil {
		n.gesture.Close()
	}
	for _, h := range n.handles {
		h.Remove()
	}
	n.handles = nil
	if r, ok := n.window.(boxRemover); ok && n.thumbnail != nil {
		r.Remove(n.scope)
		r.Remove(n.thumbnail)
	}
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
