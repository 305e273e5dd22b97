package panzoom

// GestureState is the drag state of a Gesture.
type GestureState uint8

const (
	GestureIdle     GestureState = iota // no pointer held on the target
	GestureDragging                     // a drag session is active
)

func (s GestureState) String() string {
	if s == GestureDragging {
		return "dragging"
	}
	return "idle"
}

// PointerContext carries information about a pointer event seen by a Gesture.
type PointerContext struct {
	Device         Device
	PageX, PageY   float64
	StartX, StartY float64 // where the drag session began
	DeltaX, DeltaY float64 // movement since the previous sample
	Dragging       bool
}

// PanContext is delivered when a drag or a plain wheel scroll pans.
type PanContext struct {
	DeltaX, DeltaY float64
	// Dragging is true for pointer drags and false for wheel/trackpad pans.
	Dragging bool
	Device   Device
}

// ScaleContext is delivered when ctrl+wheel or a trackpad pinch zooms.
type ScaleContext struct {
	Scale, BeforeScale float64
	PageX, PageY       float64
	Device             Device
}

// KeyContext is delivered for keyboard events on the window.
type KeyContext struct {
	KeyCode int
	Device  Device
}

// GestureConfig wires a Gesture to its event targets and callbacks. Any
// callback may be nil.
type GestureConfig struct {
	// Target receives pointer-down (and wheel, unless WheelTarget is set).
	// A nil Target makes the gesture inert.
	Target Element
	// WheelTarget receives wheel events. Defaults to Target.
	WheelTarget EventTarget
	// Window receives pointer move/up during a drag and keyboard events.
	// Defaults to Target.
	Window EventTarget

	// RequireSpace gates drag panning on the space key being held.
	RequireSpace bool
	// CanPan reports whether panning is currently possible; used only for
	// cursor affordances. Nil means always.
	CanPan func() bool

	// PanRate divides wheel deltas for trackpad panning. Zero means
	// TrackpadPanRate.
	PanRate float64
	// PinchRate multiplies DeltaY before it is subtracted from the wheel
	// accumulator. Zero means TrackpadPinchRate.
	PinchRate float64
	// InitScale seeds the wheel accumulator. Zero means 1.
	InitScale float64

	OnPointerDown func(PointerContext)
	OnPointerMove func(PointerContext)
	OnPointerUp   func(PointerContext)
	OnWheel       func(PointerContext)
	OnKeyDown     func(KeyContext)
	OnKeyUp       func(KeyContext)
	OnPan         func(PanContext)
	OnScale       func(ScaleContext)
}

// gestureState is the per-drag bookkeeping. It is reset at pointer-up.
type gestureState struct {
	startX, startY float64
	lastX, lastY   float64
	deltaX, deltaY float64
	scale          float64
	beforeScale    float64
	dragging       bool
}

// dragSession owns the window subscriptions of one drag.
type dragSession struct {
	move CallbackHandle
	up   CallbackHandle
}

func (s *dragSession) release() {
	s.move.Remove()
	s.up.Remove()
}

// Gesture interprets raw events on a target element into pan and scale
// intents. It owns one Device snapshot.
type Gesture struct {
	cfg    GestureConfig
	device Device
	state  gestureState

	wheelValue float64

	session *dragSession
	handles []CallbackHandle
}

// NewGesture attaches a gesture to cfg.Target. A nil Target returns an inert
// gesture that never fires.
func NewGesture(cfg GestureConfig) *Gesture {
	g := &Gesture{cfg: cfg, device: newDevice()}
	if g.cfg.PanRate == 0 {
		g.cfg.PanRate = TrackpadPanRate
	}
	if g.cfg.PinchRate == 0 {
		g.cfg.PinchRate = TrackpadPinchRate
	}
	if g.cfg.InitScale == 0 {
		g.cfg.InitScale = 1
	}
	g.SyncScale(g.cfg.InitScale)
	if cfg.Target == nil {
		return g
	}
	if g.cfg.WheelTarget == nil {
		g.cfg.WheelTarget = cfg.Target
	}
	if g.cfg.Window == nil {
		g.cfg.Window = cfg.Target
	}

	g.handles = append(g.handles,
		cfg.Target.Listen(EventPointerDown, g.handleDown),
		g.cfg.WheelTarget.Listen(EventWheel, g.handleWheel),
		g.cfg.Window.Listen(EventKeyDown, g.handleKeyDown),
		g.cfg.Window.Listen(EventKeyUp, g.handleKeyUp),
	)
	g.updateCursor()
	return g
}

// State returns the current drag state.
func (g *Gesture) State() GestureState {
	if g.session != nil {
		return GestureDragging
	}
	return GestureIdle
}

// Device returns a copy of the normalized input snapshot.
func (g *Gesture) Device() Device {
	return g.device
}

// WheelValue returns the zoom accumulator in wheel units.
func (g *Gesture) WheelValue() float64 {
	return g.wheelValue
}

// SyncScale re-seeds the wheel accumulator after the scale was changed by
// another source (slider, buttons, animation).
func (g *Gesture) SyncScale(scale float64) {
	g.wheelValue = clamp(scale*WheelScaleRate, MinWheelValue, MaxWheelValue)
	g.state.scale = g.wheelValue / WheelScaleRate
}

// Close releases every listener the gesture registered, including an
// active drag session.
func (g *Gesture) Close() {
	g.endSession()
	for _, h := range g.handles {
		h.Remove()
	}
	g.handles = nil
}

func (g *Gesture) pointerContext() PointerContext {
	return PointerContext{
		Device:   g.device,
		PageX:    g.device.PageX,
		PageY:    g.device.PageY,
		StartX:   g.state.startX,
		StartY:   g.state.startY,
		DeltaX:   g.state.deltaX,
		DeltaY:   g.state.deltaY,
		Dragging: g.state.dragging,
	}
}

func (g *Gesture) handleDown(ev *RawEvent) {
	g.device.Apply(ev)
	g.endSession()

	x, y := g.device.PageX, g.device.PageY
	g.state = gestureState{
		startX: x, startY: y,
		lastX: x, lastY: y,
		scale:       g.state.scale,
		beforeScale: g.state.scale,
		dragging:    true,
	}
	g.session = &dragSession{
		move: g.cfg.Window.Listen(EventPointerMove, g.handleMove),
		up:   g.cfg.Window.Listen(EventPointerUp, g.handleUp),
	}
	g.updateCursor()
	if g.cfg.OnPointerDown != nil {
		g.cfg.OnPointerDown(g.pointerContext())
	}
}

func (g *Gesture) handleMove(ev *RawEvent) {
	g.device.Apply(ev)
	x, y := g.device.PageX, g.device.PageY
	g.state.deltaX = x - g.state.lastX
	g.state.deltaY = y - g.state.lastY

	if g.cfg.OnPointerMove != nil {
		g.cfg.OnPointerMove(g.pointerContext())
	}
	if g.device.ButtonDown && g.spaceSatisfied() && g.cfg.OnPan != nil {
		g.cfg.OnPan(PanContext{
			DeltaX:   g.state.deltaX,
			DeltaY:   g.state.deltaY,
			Dragging: true,
			Device:   g.device,
		})
	}
	g.state.lastX, g.state.lastY = x, y
}

func (g *Gesture) handleUp(ev *RawEvent) {
	defer g.endSession()
	g.device.Apply(ev)
	if g.cfg.OnPointerUp != nil {
		g.cfg.OnPointerUp(g.pointerContext())
	}
}

func (g *Gesture) endSession() {
	if g.session == nil {
		return
	}
	g.session.release()
	g.session = nil
	g.state = gestureState{scale: g.state.scale, beforeScale: g.state.scale}
	g.updateCursor()
}

func (g *Gesture) handleWheel(ev *RawEvent) {
	g.device.Apply(ev)
	if g.device.Ctrl {
		g.wheelValue = clamp(g.wheelValue-g.device.DeltaY*g.cfg.PinchRate, MinWheelValue, MaxWheelValue)
		g.state.beforeScale = g.state.scale
		g.state.scale = g.wheelValue / WheelScaleRate
		if g.cfg.OnScale != nil {
			g.cfg.OnScale(ScaleContext{
				Scale:       g.state.scale,
				BeforeScale: g.state.beforeScale,
				PageX:       ev.PageX,
				PageY:       ev.PageY,
				Device:      g.device,
			})
		}
	} else if g.cfg.OnPan != nil {
		g.cfg.OnPan(PanContext{
			DeltaX: g.device.DeltaX / g.cfg.PanRate,
			DeltaY: g.device.DeltaY / g.cfg.PanRate,
			Device: g.device,
		})
	}
	if g.cfg.OnWheel != nil {
		ctx := g.pointerContext()
		ctx.PageX, ctx.PageY = ev.PageX, ev.PageY
		g.cfg.OnWheel(ctx)
	}
}

func (g *Gesture) handleKeyDown(ev *RawEvent) {
	g.device.Apply(ev)
	g.updateCursor()
	if g.cfg.OnKeyDown != nil {
		g.cfg.OnKeyDown(KeyContext{KeyCode: ev.KeyCode, Device: g.device})
	}
}

func (g *Gesture) handleKeyUp(ev *RawEvent) {
	g.device.Apply(ev)
	g.updateCursor()
	if g.cfg.OnKeyUp != nil {
		g.cfg.OnKeyUp(KeyContext{KeyCode: ev.KeyCode, Device: g.device})
	}
}

func (g *Gesture) spaceSatisfied() bool {
	return !g.cfg.RequireSpace || g.device.Space
}

// updateCursor shows grab when a drag would pan and grabbing while it does.
func (g *Gesture) updateCursor() {
	styler, ok := g.cfg.Target.(CursorStyler)
	if !ok {
		return
	}
	switch {
	case g.cfg.CanPan != nil && !g.cfg.CanPan():
		styler.SetCursor(CursorDefault)
	case !g.spaceSatisfied():
		styler.SetCursor(CursorDefault)
	case g.session != nil && g.device.ButtonDown:
		styler.SetCursor(CursorGrabbing)
	default:
		styler.SetCursor(CursorGrab)
	}
}

// RefreshCursor re-evaluates the cursor affordance, e.g. after the scale
// changed whether panning is possible.
func (g *Gesture) RefreshCursor() {
	if g.cfg.Target != nil {
		g.updateCursor()
	}
}
