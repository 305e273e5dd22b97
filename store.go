package panzoom

import "fmt"

// Field names a value held by a Store.
type Field string

// Viewport fields.
const (
	FieldCanvasOriginWidth  Field = "canvasOriginWidth"
	FieldCanvasOriginHeight Field = "canvasOriginHeight"
	FieldScale              Field = "scale"
	FieldTranslateX         Field = "translateX"
	FieldTranslateY         Field = "translateY"
	FieldOriginX            Field = "originX"
	FieldOriginY            Field = "originY"
	FieldCanvasWidth        Field = "canvasWidth"
	FieldCanvasHeight       Field = "canvasHeight"
	FieldInteractionOffsetX Field = "interactionOffsetX"
	FieldInteractionOffsetY Field = "interactionOffsetY"
)

// FieldSpec customizes how a field is read and written.
type FieldSpec struct {
	// Get transforms the stored value on read. Nil returns it unchanged.
	Get func(raw float64) float64
	// Set transforms a written value before it is stored (e.g. clamping).
	Set func(v float64) float64
	// ReadOnly fields can only be given a value at registration.
	ReadOnly bool
	// Compute derives the value from other fields. Computed fields are
	// read-only and re-evaluated whenever a field in DependsOn changes.
	Compute   func(s *Store) float64
	DependsOn []Field
}

// FieldChange describes one value change delivered to watchers.
type FieldChange struct {
	Field    Field
	New, Old float64
}

type fieldEntry struct {
	spec       FieldSpec
	raw        float64
	watchers   registry[FieldChange]
	dependents []Field
}

// Store is a small observable key/value model. Writes that do not change a
// field's value do not notify watchers.
type Store struct {
	fields map[Field]*fieldEntry
	order  []Field
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{fields: make(map[Field]*fieldEntry)}
}

// Register adds a field with an initial value. Registering the same field
// twice panics.
func (s *Store) Register(f Field, initial float64, spec FieldSpec) {
	if _, ok := s.fields[f]; ok {
		panic(fmt.Sprintf("panzoom: field %q already registered", f))
	}
	e := &fieldEntry{spec: spec}
	if spec.Set != nil && spec.Compute == nil {
		initial = spec.Set(initial)
	}
	e.raw = initial
	s.fields[f] = e
	s.order = append(s.order, f)
	for _, dep := range spec.DependsOn {
		d := s.entry(dep)
		d.dependents = append(d.dependents, f)
	}
	if spec.Compute != nil {
		e.raw = spec.Compute(s)
	}
}

// Fields returns the registered field names in registration order.
func (s *Store) Fields() []Field {
	return append([]Field(nil), s.order...)
}

// Has reports whether f is registered.
func (s *Store) Has(f Field) bool {
	_, ok := s.fields[f]
	return ok
}

// Get returns the current value of f.
func (s *Store) Get(f Field) float64 {
	return s.read(s.entry(f))
}

// Set writes v to f through the field's setter. Watchers of f and of any
// computed field depending on it are notified when values change.
func (s *Store) Set(f Field, v float64) {
	e := s.entry(f)
	if e.spec.ReadOnly || e.spec.Compute != nil {
		panic(fmt.Sprintf("panzoom: field %q is read-only", f))
	}
	s.write(f, e, v)
}

// Watch calls fn whenever any of fields changes. The handle removes the
// watcher from every field at once.
func (s *Store) Watch(fields []Field, fn func(FieldChange)) CallbackHandle {
	handles := make([]CallbackHandle, 0, len(fields))
	for _, f := range fields {
		handles = append(handles, s.entry(f).watchers.add(fn))
	}
	return CallbackHandle{remove: func() {
		for _, h := range handles {
			h.Remove()
		}
	}}
}

func (s *Store) entry(f Field) *fieldEntry {
	e, ok := s.fields[f]
	if !ok {
		panic(fmt.Sprintf("panzoom: unknown field %q", f))
	}
	return e
}

func (s *Store) read(e *fieldEntry) float64 {
	if e.spec.Get != nil {
		return e.spec.Get(e.raw)
	}
	return e.raw
}

func (s *Store) write(f Field, e *fieldEntry, v float64) {
	if e.spec.Set != nil {
		v = e.spec.Set(v)
	}
	old := s.read(e)
	e.raw = v
	cur := s.read(e)
	if cur == old {
		return
	}
	e.watchers.fire(FieldChange{Field: f, New: cur, Old: old})
	for _, dep := range e.dependents {
		de := s.fields[dep]
		s.recompute(dep, de)
	}
}

func (s *Store) recompute(f Field, e *fieldEntry) {
	old := s.read(e)
	e.raw = e.spec.Compute(s)
	cur := s.read(e)
	if cur == old {
		return
	}
	e.watchers.fire(FieldChange{Field: f, New: cur, Old: old})
	for _, dep := range e.dependents {
		s.recompute(dep, s.fields[dep])
	}
}
