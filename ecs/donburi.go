package ecs

import (
	"github.com/phanxgames/panzoom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// TransformEventType is the Donburi event type for viewport transforms.
var TransformEventType = events.NewEventType[panzoom.TransformEvent]()

// ViewportState is the latest transform of one designer.
type ViewportState struct {
	DesignerID string
	Scale      float64
	Rect       panzoom.Rect
}

// Viewport is the component holding a designer's ViewportState.
var Viewport = donburi.NewComponentType[ViewportState]()

type donburiSink struct {
	world    donburi.World
	entities map[string]donburi.Entity
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to TransformEventType and consumed with ProcessEvents; the
// Viewport component is updated immediately.
func NewDonburiSink(world donburi.World) panzoom.EventSink {
	return &donburiSink{world: world, entities: make(map[string]donburi.Entity)}
}

func (s *donburiSink) PublishTransform(ev panzoom.TransformEvent) {
	TransformEventType.Publish(s.world, ev)

	state := ViewportState{DesignerID: ev.DesignerID, Scale: ev.Scale, Rect: ev.Rect}
	e, ok := s.entities[ev.DesignerID]
	if !ok || !s.world.Valid(e) {
		e = s.world.Create(Viewport)
		s.entities[ev.DesignerID] = e
	}
	Viewport.SetValue(s.world.Entry(e), state)
}

// LookupViewport returns the stored state for designerID.
func LookupViewport(world donburi.World, designerID string) (ViewportState, bool) {
	var (
		found ViewportState
		ok    bool
	)
	donburi.NewQuery(filter.Contains(Viewport)).Each(world, func(entry *donburi.Entry) {
		if v := Viewport.Get(entry); v.DesignerID == designerID {
			found, ok = *v, true
		}
	})
	return found, ok
}
