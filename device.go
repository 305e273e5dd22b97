package panzoom

// RawEvent is a host input event before normalization. Hosts fill the fields
// relevant to Kind and hand the event to Page.Dispatch or to an EventTarget.
type RawEvent struct {
	Kind EventKind

	// PageX and PageY are the pointer position in page (window) coordinates.
	PageX, PageY float64
	// Button is the button that changed state for pointer down/up events.
	Button MouseButton

	// DeltaX and DeltaY are the trackpad/standard wheel deltas. Positive
	// DeltaY scrolls down.
	DeltaX, DeltaY float64
	// WheelDeltaX and WheelDeltaY are the legacy wheel deltas, roughly
	// -3 times DeltaX/DeltaY and multiples of 120 for notched wheels.
	WheelDeltaX, WheelDeltaY float64

	KeyCode   int
	Modifiers KeyModifiers

	defaultPrevented bool
}

// PreventDefault asks the host not to run its native behavior (page scroll,
// browser zoom, back navigation) for this event.
func (e *RawEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *RawEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Device is the normalized input snapshot. One Device is owned by each
// Gesture and updated in place by Apply; callbacks receive copies.
type Device struct {
	Alt, Meta, Ctrl, Space bool

	// ButtonDown is true while the primary button is held.
	ButtonDown bool
	// Button is the last pressed button, MouseButtonNone when released.
	Button MouseButton

	WheelDeltaX, WheelDeltaY float64
	DeltaX, DeltaY           float64

	KeyCode int

	PageX, PageY float64
}

// newDevice returns a Device in its released state.
func newDevice() Device {
	return Device{Button: MouseButtonNone, KeyCode: KeyCodeNone}
}

// Apply folds ev into the snapshot. Pointer and wheel events are always
// marked default-prevented because the container owns those gestures.
func (d *Device) Apply(ev *RawEvent) {
	switch {
	case ev.Kind.IsPointer():
		ev.PreventDefault()
		d.applyPointer(ev)
	case ev.Kind == EventWheel:
		ev.PreventDefault()
		d.WheelDeltaX = ev.WheelDeltaX
		d.WheelDeltaY = ev.WheelDeltaY
		d.DeltaX = ev.DeltaX
		d.DeltaY = ev.DeltaY
		d.applyKeyboard(ev)
	case ev.Kind.IsKey():
		if ev.KeyCode == KeyCodeSpace {
			ev.PreventDefault()
		}
		d.applyKeyboard(ev)
	}
	d.Alt = ev.Modifiers.Has(ModAlt)
}

func (d *Device) applyPointer(ev *RawEvent) {
	switch ev.Kind {
	case EventPointerUp:
		d.ButtonDown = false
		d.Button = MouseButtonNone
	case EventPointerDown:
		d.Button = ev.Button
		if ev.Button == MouseButtonLeft {
			d.ButtonDown = true
		}
	}
	d.PageX = ev.PageX
	d.PageY = ev.PageY
}

func (d *Device) applyKeyboard(ev *RawEvent) {
	if ev.Kind.IsKey() {
		d.KeyCode = ev.KeyCode
	}
	d.Meta = ev.Modifiers.Has(ModMeta)
	d.Ctrl = ev.Modifiers.Has(ModCtrl)

	// Any other keydown releases space, as does every keyup.
	switch ev.Kind {
	case EventKeyDown:
		d.Space = ev.KeyCode == KeyCodeSpace
	case EventKeyUp:
		d.Space = false
	}
}
