package panzoom

// Synthetic input. Injected events are queued on the Page and dispatched one
// per Step, so a host that calls Step once per frame replays them across
// frames exactly like real input.

// Inject queues an arbitrary raw event.
func (p *Page) Inject(ev RawEvent) {
	p.injectQueue = append(p.injectQueue, ev)
}

// InjectPress queues a left-button press at the given page coordinates.
func (p *Page) InjectPress(x, y float64) {
	p.Inject(RawEvent{Kind: EventPointerDown, PageX: x, PageY: y, Button: MouseButtonLeft})
}

// InjectMove queues a pointer move to the given page coordinates. Use it
// between InjectPress and InjectRelease to simulate a drag.
func (p *Page) InjectMove(x, y float64) {
	p.Inject(RawEvent{Kind: EventPointerMove, PageX: x, PageY: y, Button: MouseButtonLeft})
}

// InjectRelease queues a left-button release at the given page coordinates.
func (p *Page) InjectRelease(x, y float64) {
	p.Inject(RawEvent{Kind: EventPointerUp, PageX: x, PageY: y, Button: MouseButtonLeft})
}

// InjectClick queues a press followed by a release at the same position.
// Consumes two steps.
func (p *Page) InjectClick(x, y float64) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves ending at (toX, toY), and a release there. At least
// one move is always queued, so the drag consumes max(frames, 3) steps.
func (p *Page) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	moves := max(frames-2, 1)
	p.InjectPress(fromX, fromY)
	for i := 1; i <= moves; i++ {
		t := float64(i) / float64(moves)
		p.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	p.InjectRelease(toX, toY)
}

// InjectWheel queues a wheel event at (x, y). deltaX/deltaY are trackpad
// deltas; the legacy wheel deltas are derived from them.
func (p *Page) InjectWheel(x, y, deltaX, deltaY float64, mods KeyModifiers) {
	p.Inject(RawEvent{
		Kind:        EventWheel,
		PageX:       x,
		PageY:       y,
		Button:      MouseButtonNone,
		DeltaX:      deltaX,
		DeltaY:      deltaY,
		WheelDeltaX: -3 * deltaX,
		WheelDeltaY: -3 * deltaY,
		Modifiers:   mods,
	})
}

// InjectKey queues a key down or key up event.
func (p *Page) InjectKey(code int, down bool, mods KeyModifiers) {
	kind := EventKeyUp
	if down {
		kind = EventKeyDown
	}
	p.Inject(RawEvent{Kind: kind, KeyCode: code, Button: MouseButtonNone, Modifiers: mods})
}

// Pending returns the number of queued synthetic events.
func (p *Page) Pending() int {
	return len(p.injectQueue)
}

// Step dispatches the oldest queued event. It reports whether one was
// consumed; hosts skip real input on such frames.
func (p *Page) Step() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	ev := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]
	p.Dispatch(&ev)
	return true
}

// Flush dispatches every queued event and returns how many there were.
func (p *Page) Flush() int {
	n := 0
	for p.Step() {
		n++
	}
	return n
}
