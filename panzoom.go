package panzoom

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Vec2 is a 2D vector used for positions, offsets and deltas.
type Vec2 struct {
	X, Y float64
}

// Scale and wheel limits. The wheel accumulator is kept in integer-like
// units so that many small trackpad ticks add up smoothly; the scale is
// always wheelValue / WheelScaleRate.
const (
	MinScaleValue      = 0.1
	MaxScaleValue      = 10.0
	MinWheelValue      = 100.0
	MaxWheelValue      = 10000.0
	InitWheelValue     = 1000.0
	WheelScaleRate     = 1000.0
	InitCanvasMaxRatio = 0.9 // long edge of the canvas vs the container at start
	KeepInside         = 0.2 // fraction of the container the canvas must keep covering

	// Trackpad deltaY is roughly synthetic wheelDeltaY / -3. Pan divides the
	// trackpad delta by TrackpadPanRate; pinch subtracts DeltaY*TrackpadPinchRate
	// from the wheel accumulator, so a negative DeltaY zooms in.
	TrackpadPanRate   = -1.0
	TrackpadPinchRate = 12.0
)

// Key codes the normalizer cares about. Values match DOM keyCode.
const (
	KeyCodeNone  = -1
	KeyCodeSpace = 32
	KeyCode0     = 48
	KeyCodeMinus = 189
	KeyCodePlus  = 187
)

// EventKind identifies a kind of raw input event.
type EventKind uint8

const (
	EventPointerDown EventKind = iota // a pointer button was pressed
	EventPointerMove                  // the pointer moved
	EventPointerUp                    // a pointer button was released
	EventClick                        // press then release
	EventWheel                        // wheel or trackpad scroll/pinch
	EventKeyDown                      // a key was pressed
	EventKeyUp                        // a key was released
	EventKeyPress                     // a character key was typed
)

var eventKindNames = [...]string{
	"pointerdown", "pointermove", "pointerup", "click",
	"wheel", "keydown", "keyup", "keypress",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// IsPointer reports whether k is one of the pointer event kinds.
func (k EventKind) IsPointer() bool {
	return k <= EventClick
}

// IsKey reports whether k is one of the keyboard event kinds.
func (k EventKind) IsKey() bool {
	return k >= EventKeyDown && k <= EventKeyPress
}

// MouseButton identifies a mouse button. Values match DOM MouseEvent.button.
type MouseButton int8

const (
	MouseButtonNone   MouseButton = -1 // no button held
	MouseButtonLeft   MouseButton = 0  // primary (left) mouse button
	MouseButtonMiddle MouseButton = 1  // middle mouse button (scroll wheel click)
	MouseButtonRight  MouseButton = 2  // secondary (right) mouse button
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Has reports whether every modifier in m is set.
func (k KeyModifiers) Has(m KeyModifiers) bool {
	return k&m == m
}

// Cursor is a pointer affordance a host may render.
type Cursor uint8

const (
	CursorDefault  Cursor = iota // platform arrow
	CursorGrab                   // open hand, ready to pan
	CursorGrabbing               // closed hand, panning
)

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
