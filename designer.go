package panzoom

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/tanema/gween/ease"
)

// boxRemover is implemented by hosts (Page) that hit-test boxes.
type boxRemover interface {
	Remove(b *Box)
}

// Designer wires the store, viewport, gesture and optional navigator
// together for one container.
type Designer struct {
	id   uuid.UUID
	opts Options

	container Element
	canvas    Element
	window    EventTarget

	store     *Store
	viewport  *Viewport
	gesture   *Gesture
	navigator *Navigator

	// owned lists boxes this designer registered with the window host.
	owned   []*Box
	handles []CallbackHandle

	debug    bool
	debugOut io.Writer
}

// NewDesigner builds a designer from cfg. When cfg.Container is nil the
// designer is inert: it has an ID but no viewport and ignores every call.
// It panics if the canvas size in cfg.Options is not positive.
func NewDesigner(cfg Config) *Designer {
	d := &Designer{
		id:       uuid.New(),
		opts:     cfg.Options.withDefaults(),
		debug:    cfg.Debug,
		debugOut: os.Stderr,
	}
	if cfg.Container == nil {
		return d
	}
	d.container = cfg.Container
	d.window = cfg.Window
	if d.window == nil {
		d.window = cfg.Container
	}
	d.canvas = cfg.Canvas
	if d.canvas == nil {
		box := NewChildBox("canvas", cfg.Container, Rect{})
		d.canvas = box
		d.register(box)
	}

	d.store = NewStore()
	d.viewport = NewViewport(d.store, d.container, d.canvas,
		d.opts.CanvasOriginWidth, d.opts.CanvasOriginHeight,
		ViewportOptions{
			KeepInside:           d.opts.KeepInside,
			MovableWhenContained: d.opts.MovableWhenContained,
		})
	d.viewport.designerID = d.id.String()

	d.gesture = NewGesture(GestureConfig{
		Target:       d.container,
		Window:       d.window,
		RequireSpace: d.opts.RequireSpaceToDrag,
		CanPan:       d.viewport.IsMovable,
		PanRate:      d.opts.TrackpadPanRate,
		PinchRate:    d.opts.TrackpadPinchRate,
		InitScale:    d.viewport.CurrentScale(),
		OnPan: func(ctx PanContext) {
			d.viewport.Pan(ctx.DeltaX, ctx.DeltaY)
		},
		OnScale: func(ctx ScaleContext) {
			d.viewport.ScaleAt(ctx.Scale, ctx.PageX, ctx.PageY)
		},
		OnKeyDown: d.handleKey,
	})

	d.handles = append(d.handles,
		d.store.Watch([]Field{FieldScale}, func(c FieldChange) {
			d.gesture.SyncScale(c.New)
			d.gesture.RefreshCursor()
		}),
		d.viewport.OnTransform(d.logTransform),
	)

	if cfg.Navigator != nil {
		d.navigator = NewNavigator(d.viewport, cfg.Navigator, d.window)
	}
	d.debugLog("designer %s: container %v, canvas %gx%g, scale %.3f",
		d.id, d.container.Bounds(), d.opts.CanvasOriginWidth, d.opts.CanvasOriginHeight, d.viewport.CurrentScale())
	return d
}

func (d *Designer) register(b *Box) {
	if r, ok := d.window.(boxRegistrar); ok {
		r.Add(b)
		d.owned = append(d.owned, b)
	}
}

// ID returns the designer's unique identifier.
func (d *Designer) ID() string { return d.id.String() }

// Active reports whether the designer has a container.
func (d *Designer) Active() bool { return d.viewport != nil }

// Options returns the effective options.
func (d *Designer) Options() Options { return d.opts }

// Store returns the observable store, or nil for an inert designer.
func (d *Designer) Store() *Store { return d.store }

// Viewport returns the viewport, or nil for an inert designer.
func (d *Designer) Viewport() *Viewport { return d.viewport }

// Gesture returns the container gesture, or nil for an inert designer.
func (d *Designer) Gesture() *Gesture { return d.gesture }

// Navigator returns the minimap, or nil when none is mounted.
func (d *Designer) Navigator() *Navigator { return d.navigator }

// Canvas returns the canvas element.
func (d *Designer) Canvas() Element { return d.canvas }

// SetEventSink forwards every transform to sink.
func (d *Designer) SetEventSink(sink EventSink) {
	if d.viewport != nil {
		d.viewport.SetEventSink(sink)
	}
}

// Update advances animations by dt seconds. Call it once per frame.
func (d *Designer) Update(dt float32) {
	if d.viewport != nil {
		d.viewport.Update(dt)
	}
}

// Resize re-fits and re-clamps after the container (or navigator panel)
// changed size.
func (d *Designer) Resize() {
	if d.viewport == nil {
		return
	}
	d.viewport.Fit()
	d.viewport.Refresh()
	if d.navigator != nil {
		d.navigator.Refresh()
	}
}

// ZoomIn animates the scale up by DefaultZoomStep around the canvas center.
func (d *Designer) ZoomIn() { d.zoomBy(DefaultZoomStep) }

// ZoomOut animates the scale down by DefaultZoomStep around the canvas center.
func (d *Designer) ZoomOut() { d.zoomBy(1 / DefaultZoomStep) }

func (d *Designer) zoomBy(f float64) {
	if d.viewport == nil {
		return
	}
	d.viewport.AnimateScale(d.viewport.CurrentScale()*f, 0.5, 0.5, float32(d.opts.ZoomSeconds()), ease.OutCubic)
}

// Reset returns the viewport to its fitted, centered state.
func (d *Designer) Reset() {
	if d.viewport != nil {
		d.viewport.Reset()
	}
}

// handleKey maps ctrl/meta + plus, minus and 0 to zoom in, zoom out and reset.
func (d *Designer) handleKey(ctx KeyContext) {
	if !ctx.Device.Ctrl && !ctx.Device.Meta {
		return
	}
	switch ctx.KeyCode {
	case KeyCodePlus:
		d.ZoomIn()
	case KeyCodeMinus:
		d.ZoomOut()
	case KeyCode0:
		d.Reset()
	}
}

// Close detaches every listener and unregisters owned boxes.
func (d *Designer) Close() {
	if d.navigator != nil {
		d.navigator.Close()
	}
	if d.gesture != nil {
		d.gesture.Close()
	}
	for _, h := range d.handles {
		h.Remove()
	}
	d.handles = nil
	if r, ok := d.window.(boxRemover); ok {
		for _, b := range d.owned {
			r.Remove(b)
		}
	}
	d.owned = nil
}
