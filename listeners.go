package panzoom

// --- Handler registry ---

type handler[T any] struct {
	id uint32
	fn func(T)
}

// registry is an ordered list of callbacks keyed by a monotonically
// increasing id. It is shared by event targets, the store and the viewport.
type registry[T any] struct {
	handlers []handler[T]
	nextID   uint32
	snapshot []handler[T]
}

func (r *registry[T]) add(fn func(T)) CallbackHandle {
	if fn == nil {
		panic("panzoom: cannot register nil callback")
	}
	r.nextID++
	id := r.nextID
	r.handlers = append(r.handlers, handler[T]{id: id, fn: fn})
	return CallbackHandle{remove: func() { r.remove(id) }}
}

// remove unregisters the handler with the given id.
// The entry is removed from the slice to avoid nil iteration waste.
func (r *registry[T]) remove(id uint32) {
	s := r.handlers
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler[T]{}
			r.handlers = s[:len(s)-1]
			return
		}
	}
}

func (r *registry[T]) has(id uint32) bool {
	for i := range r.handlers {
		if r.handlers[i].id == id {
			return true
		}
	}
	return false
}

func (r *registry[T]) len() int {
	return len(r.handlers)
}

// fire calls every handler in registration order. Handlers may add or
// remove handlers while firing: additions wait for the next fire, removed
// handlers are skipped.
func (r *registry[T]) fire(v T) {
	if len(r.handlers) == 0 {
		return
	}
	snap := append(r.snapshot[:0], r.handlers...)
	r.snapshot = nil // nested fire must not reuse the buffer we iterate
	for _, h := range snap {
		if r.has(h.id) {
			h.fn(v)
		}
	}
	clear(snap)
	r.snapshot = snap[:0]
}

// CallbackHandle allows removing a registered callback or event listener.
// The zero value is valid and Remove is a no-op.
type CallbackHandle struct {
	remove func()
}

// Remove unregisters the callback so it no longer fires. Calling Remove more
// than once is safe.
func (h CallbackHandle) Remove() {
	if h.remove != nil {
		h.remove()
	}
}
