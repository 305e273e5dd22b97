package panzoom

// EventTarget delivers raw input events of a given kind to listeners.
type EventTarget interface {
	// Listen registers fn for events of kind. The returned handle removes
	// the listener.
	Listen(kind EventKind, fn func(*RawEvent)) CallbackHandle
}

// Element is the layout collaborator: a box whose page-space rectangle can be
// measured and whose position/size can be written.
type Element interface {
	EventTarget
	// Bounds returns the element's rectangle in page coordinates.
	Bounds() Rect
	// Place sets the element's rectangle relative to its parent element.
	Place(r Rect)
}

// CursorStyler is implemented by elements that can show a pointer cursor.
type CursorStyler interface {
	SetCursor(c Cursor)
}

const eventKindCount = int(EventKeyPress) + 1

// listenerSet holds one registry per event kind.
type listenerSet struct {
	kinds [eventKindCount]registry[*RawEvent]
}

func (l *listenerSet) listen(kind EventKind, fn func(*RawEvent)) CallbackHandle {
	if int(kind) >= eventKindCount {
		panic("panzoom: unknown event kind")
	}
	return l.kinds[kind].add(fn)
}

func (l *listenerSet) dispatch(ev *RawEvent) {
	if int(ev.Kind) < eventKindCount {
		l.kinds[ev.Kind].fire(ev)
	}
}

func (l *listenerSet) count(kind EventKind) int {
	if int(kind) >= eventKindCount {
		return 0
	}
	return l.kinds[kind].len()
}

// Box is the in-memory Element used by hosts and tests. A root Box has page
// coordinates; a child Box is positioned relative to its parent.
type Box struct {
	Name string

	parent    Element
	local     Rect
	cursor    Cursor
	listeners listenerSet
}

// NewBox creates a root box with the given page-space rectangle.
func NewBox(name string, bounds Rect) *Box {
	return &Box{Name: name, local: bounds}
}

// NewChildBox creates a box positioned at local inside parent.
func NewChildBox(name string, parent Element, local Rect) *Box {
	return &Box{Name: name, parent: parent, local: local}
}

// Parent returns the element b is positioned in, or nil for a root box.
func (b *Box) Parent() Element {
	return b.parent
}

// Local returns the rectangle relative to the parent (style left/top/width/height).
func (b *Box) Local() Rect {
	return b.local
}

// Bounds returns the page-space rectangle.
func (b *Box) Bounds() Rect {
	if b.parent == nil {
		return b.local
	}
	p := b.parent.Bounds()
	return b.local.Offset(p.X, p.Y)
}

// Place sets the rectangle relative to the parent.
func (b *Box) Place(r Rect) {
	b.local = r
}

// Listen registers fn for events of kind delivered to this box.
func (b *Box) Listen(kind EventKind, fn func(*RawEvent)) CallbackHandle {
	return b.listeners.listen(kind, fn)
}

// Dispatch delivers ev to this box's listeners only (no bubbling).
func (b *Box) Dispatch(ev *RawEvent) {
	b.listeners.dispatch(ev)
}

// ListenerCount reports how many listeners of kind are attached.
func (b *Box) ListenerCount(kind EventKind) int {
	return b.listeners.count(kind)
}

// SetCursor records the cursor a host should show over this box.
func (b *Box) SetCursor(c Cursor) {
	b.cursor = c
}

// Cursor returns the cursor last set with SetCursor.
func (b *Box) Cursor() Cursor {
	return b.cursor
}
