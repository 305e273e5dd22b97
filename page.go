package panzoom

// Page is the host side of the layout collaborator: it owns the window-level
// listeners, hit-tests registered boxes and bubbles pointer events from the
// hit box up through its Box ancestors before reaching the window.
type Page struct {
	width, height float64

	window listenerSet
	boxes  []*Box

	injectQueue []RawEvent
}

// NewPage creates a page (window) of the given size.
func NewPage(width, height float64) *Page {
	return &Page{width: width, height: height}
}

// Size returns the page dimensions.
func (p *Page) Size() (width, height float64) {
	return p.width, p.height
}

// Resize updates the page dimensions. Callers reposition their root boxes.
func (p *Page) Resize(width, height float64) {
	p.width, p.height = width, height
}

// Listen registers a window-level listener.
func (p *Page) Listen(kind EventKind, fn func(*RawEvent)) CallbackHandle {
	return p.window.listen(kind, fn)
}

// ListenerCount reports how many window-level listeners of kind are attached.
func (p *Page) ListenerCount(kind EventKind) int {
	return p.window.count(kind)
}

// Add registers boxes for hit testing. Later boxes are on top.
func (p *Page) Add(boxes ...*Box) {
	for _, b := range boxes {
		if b == nil {
			panic("panzoom: cannot add nil box")
		}
		p.boxes = append(p.boxes, b)
	}
}

// Remove unregisters a box from hit testing.
func (p *Page) Remove(b *Box) {
	for i, c := range p.boxes {
		if c == b {
			p.boxes = append(p.boxes[:i], p.boxes[i+1:]...)
			return
		}
	}
}

// HitTest returns the topmost registered box containing (x, y), or nil.
func (p *Page) HitTest(x, y float64) *Box {
	for i := len(p.boxes) - 1; i >= 0; i-- {
		b := p.boxes[i]
		if b.Bounds().Contains(x, y) {
			return b
		}
	}
	return nil
}

// Dispatch routes ev. Pointer and wheel events go to the hit box, bubble to
// its Box ancestors and finally to the window. Keyboard events go to the
// window only.
func (p *Page) Dispatch(ev *RawEvent) {
	if ev.Kind.IsPointer() || ev.Kind == EventWheel {
		for b := p.HitTest(ev.PageX, ev.PageY); b != nil; {
			b.Dispatch(ev)
			parent, ok := b.parent.(*Box)
			if !ok {
				break
			}
			b = parent
		}
	}
	p.window.dispatch(ev)
}
