package panzoom

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TransformEvent describes the viewport after a pan, scale or refresh.
type TransformEvent struct {
	// DesignerID identifies the Designer that owns the viewport. Empty for
	// a standalone Viewport.
	DesignerID string
	// Rect is the canvas rectangle relative to the container.
	Rect                   Rect
	Scale                  float64
	TranslateX, TranslateY float64
	OriginX, OriginY       float64
}

// EventSink receives every TransformEvent a viewport fires.
type EventSink interface {
	PublishTransform(ev TransformEvent)
}

// ViewportOptions tune a Viewport. Zero values select the defaults.
type ViewportOptions struct {
	// KeepInside is the fraction of the container the canvas must keep
	// covering on each axis. Zero means KeepInside.
	KeepInside float64
	// MovableWhenContained lets the canvas be dragged while it is zoomed
	// out (scale <= 1). Nil means true.
	MovableWhenContained *bool
}

// scaleAnim is an active AnimateScale tween.
type scaleAnim struct {
	tween  *gween.Tween
	rx, ry float64
}

// Viewport maps the canvas-origin rectangle into the container according
// to the scale, translate and origin fields held in a Store.
type Viewport struct {
	store     *Store
	container Element
	canvas    Element

	keepInside           float64
	movableWhenContained bool
	initScale            float64

	designerID string
	sink       EventSink
	handlers   registry[TransformEvent]
	anim       *scaleAnim
}

// NewViewport registers the viewport fields in store, fits the canvas in
// the container (see InitialScale), centers it and places canvas.
// canvasW and canvasH are the unscaled canvas dimensions. canvas may be nil.
func NewViewport(store *Store, container, canvas Element, canvasW, canvasH float64, opts ViewportOptions) *Viewport {
	if container == nil {
		panic("panzoom: viewport requires a container")
	}
	if canvasW <= 0 || canvasH <= 0 {
		panic(fmt.Sprintf("panzoom: invalid canvas size %gx%g", canvasW, canvasH))
	}
	v := &Viewport{
		store:                store,
		container:            container,
		canvas:               canvas,
		keepInside:           opts.KeepInside,
		movableWhenContained: true,
	}
	if v.keepInside == 0 {
		v.keepInside = KeepInside
	}
	if opts.MovableWhenContained != nil {
		v.movableWhenContained = *opts.MovableWhenContained
	}
	cr := container.Bounds()
	v.initScale = InitialScale(cr.Width, cr.Height, canvasW, canvasH)
	v.registerFields(canvasW, canvasH)
	v.settle()
	return v
}

func (v *Viewport) registerFields(w, h float64) {
	s := v.store
	s.Register(FieldCanvasOriginWidth, w, FieldSpec{ReadOnly: true})
	s.Register(FieldCanvasOriginHeight, h, FieldSpec{ReadOnly: true})
	s.Register(FieldScale, v.initScale, FieldSpec{
		Set: func(x float64) float64 { return clamp(x, MinScaleValue, MaxScaleValue) },
	})
	s.Register(FieldTranslateX, 0, FieldSpec{})
	s.Register(FieldTranslateY, 0, FieldSpec{})
	s.Register(FieldOriginX, w/2, FieldSpec{})
	s.Register(FieldOriginY, h/2, FieldSpec{})
	s.Register(FieldCanvasWidth, 0, FieldSpec{
		Compute:   func(s *Store) float64 { return s.Get(FieldCanvasOriginWidth) * s.Get(FieldScale) },
		DependsOn: []Field{FieldCanvasOriginWidth, FieldScale},
	})
	s.Register(FieldCanvasHeight, 0, FieldSpec{
		Compute:   func(s *Store) float64 { return s.Get(FieldCanvasOriginHeight) * s.Get(FieldScale) },
		DependsOn: []Field{FieldCanvasOriginHeight, FieldScale},
	})
	// Canvas position inside the container, read back from layout.
	s.Register(FieldInteractionOffsetX, 0, FieldSpec{
		ReadOnly: true,
		Get:      func(float64) float64 { return v.interactionOffset().X },
	})
	s.Register(FieldInteractionOffsetY, 0, FieldSpec{
		ReadOnly: true,
		Get:      func(float64) float64 { return v.interactionOffset().Y },
	})
}

// InitialScale returns the scale at which a canvas of size ow×oh fits inside
// a cw×ch container with InitCanvasMaxRatio of margin, never above 1.
func InitialScale(cw, ch, ow, oh float64) float64 {
	s := 1.0
	if ow > 0 {
		s = min(s, InitCanvasMaxRatio*cw/ow)
	}
	if oh > 0 {
		s = min(s, InitCanvasMaxRatio*ch/oh)
	}
	return clamp(s, MinScaleValue, MaxScaleValue)
}

// Store returns the store holding the viewport fields.
func (v *Viewport) Store() *Store { return v.store }

// Container returns the container element.
func (v *Viewport) Container() Element { return v.container }

// Canvas returns the canvas element, or nil.
func (v *Viewport) Canvas() Element { return v.canvas }

// CurrentScale returns the current scale.
func (v *Viewport) CurrentScale() float64 { return v.store.Get(FieldScale) }

// InitScale returns the scale computed at construction.
func (v *Viewport) InitScale() float64 { return v.initScale }

// CanvasSize returns the unscaled canvas dimensions.
func (v *Viewport) CanvasSize() (w, h float64) {
	return v.store.Get(FieldCanvasOriginWidth), v.store.Get(FieldCanvasOriginHeight)
}

// IsMovable reports whether Pan has any effect. A zoomed-out canvas is
// locked in the center when MovableWhenContained is false.
func (v *Viewport) IsMovable() bool {
	return v.movableWhenContained || v.store.Get(FieldScale) > 1
}

// Rect returns the on-screen canvas rectangle relative to the container.
func (v *Viewport) Rect() Rect {
	s := v.store
	scale := s.Get(FieldScale)
	ow, oh := v.CanvasSize()
	cr := v.container.Bounds()
	baseX := (cr.Width - ow) / 2
	baseY := (cr.Height - oh) / 2
	return Rect{
		X:      baseX + s.Get(FieldTranslateX) - (scale-1)*s.Get(FieldOriginX),
		Y:      baseY + s.Get(FieldTranslateY) - (scale-1)*s.Get(FieldOriginY),
		Width:  ow * scale,
		Height: oh * scale,
	}
}

// PageRect returns the canvas rectangle in page coordinates.
func (v *Viewport) PageRect() Rect {
	cr := v.container.Bounds()
	return v.Rect().Offset(cr.X, cr.Y)
}

// Pan moves the canvas by (dx, dy) screen pixels, clamped so it stays
// partially visible. No-op while the viewport is not movable.
func (v *Viewport) Pan(dx, dy float64) {
	if !v.IsMovable() {
		return
	}
	v.anim = nil
	s := v.store
	s.Set(FieldTranslateX, s.Get(FieldTranslateX)+dx)
	s.Set(FieldTranslateY, s.Get(FieldTranslateY)+dy)
	v.settle()
}

// ScaleAround sets the scale keeping the canvas point at (rx, ry) (fractions
// of the unscaled canvas) fixed on screen. No-op when the clamped scale
// equals the current one.
func (v *Viewport) ScaleAround(newScale, rx, ry float64) {
	v.scaleAround(newScale, rx, ry)
}

func (v *Viewport) scaleAround(newScale, rx, ry float64) {
	s := v.store
	newScale = clamp(newScale, MinScaleValue, MaxScaleValue)
	cur := s.Get(FieldScale)
	if newScale == cur {
		return
	}
	ow, oh := v.CanvasSize()
	ax := ow * clamp(rx, 0, 1)
	ay := oh * clamp(ry, 0, 1)

	s.Set(FieldTranslateX, s.Get(FieldTranslateX)+(cur-1)*(ax-s.Get(FieldOriginX)))
	s.Set(FieldTranslateY, s.Get(FieldTranslateY)+(cur-1)*(ay-s.Get(FieldOriginY)))
	s.Set(FieldOriginX, ax)
	s.Set(FieldOriginY, ay)
	s.Set(FieldScale, newScale)
	v.settle()
}

// Scale sets the scale anchored on the canvas center.
func (v *Viewport) Scale(newScale float64) {
	v.anim = nil
	v.scaleAround(newScale, 0.5, 0.5)
}

// ScaleAt sets the scale anchored on the canvas point under the page
// position (pageX, pageY).
func (v *Viewport) ScaleAt(newScale, pageX, pageY float64) {
	v.anim = nil
	rx, ry := v.anchorRates(pageX, pageY)
	v.scaleAround(newScale, rx, ry)
}

// anchorRates converts a page position into canvas fractions.
func (v *Viewport) anchorRates(pageX, pageY float64) (rx, ry float64) {
	r := v.PageRect()
	rx, ry = 0.5, 0.5
	if r.Width > 0 {
		rx = clamp((pageX-r.X)/r.Width, 0, 1)
	}
	if r.Height > 0 {
		ry = clamp((pageY-r.Y)/r.Height, 0, 1)
	}
	return rx, ry
}

// AnimateScale tweens the scale to target over duration seconds, anchored at
// (rx, ry). Update advances it. A non-positive duration scales immediately.
func (v *Viewport) AnimateScale(target, rx, ry float64, duration float32, easeFn ease.TweenFunc) {
	target = clamp(target, MinScaleValue, MaxScaleValue)
	if duration <= 0 {
		v.anim = nil
		v.scaleAround(target, rx, ry)
		return
	}
	if easeFn == nil {
		easeFn = ease.OutCubic
	}
	v.anim = &scaleAnim{
		tween: gween.New(float32(v.CurrentScale()), float32(target), duration, easeFn),
		rx:    rx,
		ry:    ry,
	}
}

// Animating reports whether an AnimateScale tween is in progress.
func (v *Viewport) Animating() bool { return v.anim != nil }

// StopAnimation cancels an AnimateScale tween at its current value.
func (v *Viewport) StopAnimation() { v.anim = nil }

// Update advances an active scale animation by dt seconds.
func (v *Viewport) Update(dt float32) {
	if v.anim == nil {
		return
	}
	a := v.anim
	val, done := a.tween.Update(dt)
	v.scaleAround(float64(val), a.rx, a.ry)
	if done {
		v.anim = nil
	}
}

// Reset returns to the fitted, centered state of construction.
func (v *Viewport) Reset() {
	v.anim = nil
	ow, oh := v.CanvasSize()
	s := v.store
	s.Set(FieldScale, v.initScale)
	s.Set(FieldOriginX, ow/2)
	s.Set(FieldOriginY, oh/2)
	s.Set(FieldTranslateX, 0)
	s.Set(FieldTranslateY, 0)
	v.settle()
}

// Refresh re-clamps and re-places the canvas, e.g. after the container was
// resized.
func (v *Viewport) Refresh() {
	v.settle()
}

// Fit recomputes the fitted scale for the current container size, as used
// by Reset.
func (v *Viewport) Fit() {
	cr := v.container.Bounds()
	ow, oh := v.CanvasSize()
	v.initScale = InitialScale(cr.Width, cr.Height, ow, oh)
}

// OnTransform registers fn to run after every transform.
func (v *Viewport) OnTransform(fn func(TransformEvent)) CallbackHandle {
	return v.handlers.add(fn)
}

// SetEventSink sets a sink receiving every TransformEvent. Nil disables it.
func (v *Viewport) SetEventSink(sink EventSink) {
	v.sink = sink
}

// Event returns a TransformEvent describing the current state.
func (v *Viewport) Event() TransformEvent {
	s := v.store
	return TransformEvent{
		DesignerID: v.designerID,
		Rect:       v.Rect(),
		Scale:      s.Get(FieldScale),
		TranslateX: s.Get(FieldTranslateX),
		TranslateY: s.Get(FieldTranslateY),
		OriginX:    s.Get(FieldOriginX),
		OriginY:    s.Get(FieldOriginY),
	}
}

// settle clamps or recenters, places the canvas and fires the transform.
func (v *Viewport) settle() {
	if v.IsMovable() {
		v.clampToContainer()
	} else {
		v.recenter()
	}
	if v.canvas != nil {
		v.canvas.Place(v.Rect())
	}
	ev := v.Event()
	v.handlers.fire(ev)
	if v.sink != nil {
		v.sink.PublishTransform(ev)
	}
}

// interactionOffset returns the laid-out canvas origin relative to the
// container, falling back to Rect when there is no canvas element.
func (v *Viewport) interactionOffset() Vec2 {
	if v.canvas == nil {
		r := v.Rect()
		return Vec2{X: r.X, Y: r.Y}
	}
	b, cr := v.canvas.Bounds(), v.container.Bounds()
	return Vec2{X: b.X - cr.X, Y: b.Y - cr.Y}
}

// clampToContainer keeps at least keepInside of the container covered on
// each axis. Margins come from the current container size.
func (v *Viewport) clampToContainer() {
	s := v.store
	r := v.Rect()
	cr := v.container.Bounds()

	minX := cr.Width*v.keepInside - r.Width
	maxX := cr.Width - cr.Width*v.keepInside
	if r.X < minX {
		s.Set(FieldTranslateX, s.Get(FieldTranslateX)+minX-r.X)
	} else if r.X > maxX {
		s.Set(FieldTranslateX, s.Get(FieldTranslateX)-(r.X-maxX))
	}

	minY := cr.Height*v.keepInside - r.Height
	maxY := cr.Height - cr.Height*v.keepInside
	if r.Y < minY {
		s.Set(FieldTranslateY, s.Get(FieldTranslateY)+minY-r.Y)
	} else if r.Y > maxY {
		s.Set(FieldTranslateY, s.Get(FieldTranslateY)-(r.Y-maxY))
	}
}

// recenter places the canvas in the middle of the container.
func (v *Viewport) recenter() {
	s := v.store
	scale := s.Get(FieldScale)
	ow, oh := v.CanvasSize()
	s.Set(FieldTranslateX, (scale-1)*(s.Get(FieldOriginX)-ow/2))
	s.Set(FieldTranslateY, (scale-1)*(s.Get(FieldOriginY)-oh/2))
}
