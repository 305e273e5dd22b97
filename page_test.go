package panzoom

import "testing"

func TestBox_ChildBounds(t *testing.T) {
	parent := NewBox("parent", Rect{X: 50, Y: 30, Width: 400, Height: 300})
	child := NewChildBox("child", parent, Rect{X: 10, Y: 20, Width: 100, Height: 50})

	assertRect(t, "child.Bounds", child.Bounds(), Rect{X: 60, Y: 50, Width: 100, Height: 50})
	assertRect(t, "child.Local", child.Local(), Rect{X: 10, Y: 20, Width: 100, Height: 50})

	parent.Place(Rect{X: 0, Y: 0, Width: 400, Height: 300})
	assertRect(t, "child.Bounds after parent moved", child.Bounds(), Rect{X: 10, Y: 20, Width: 100, Height: 50})
}

func TestPage_HitTestTopmost(t *testing.T) {
	p := NewPage(800, 600)
	bottom := NewBox("bottom", Rect{Width: 800, Height: 600})
	top := NewBox("top", Rect{X: 100, Y: 100, Width: 50, Height: 50})
	p.Add(bottom, top)

	tests := []struct {
		x, y float64
		want *Box
	}{
		{120, 120, top},
		{10, 10, bottom},
		{900, 10, nil},
	}
	for _, tt := range tests {
		if got := p.HitTest(tt.x, tt.y); got != tt.want {
			t.Errorf("HitTest(%v,%v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	p.Remove(top)
	if got := p.HitTest(120, 120); got != bottom {
		t.Errorf("after Remove, HitTest = %v, want bottom", got)
	}
}

func TestPage_DispatchBubbles(t *testing.T) {
	p := NewPage(800, 600)
	parent := NewBox("parent", Rect{Width: 800, Height: 600})
	child := NewChildBox("child", parent, Rect{X: 100, Y: 100, Width: 50, Height: 50})
	p.Add(parent, child)

	var order []string
	parent.Listen(EventPointerDown, func(*RawEvent) { order = append(order, "parent") })
	child.Listen(EventPointerDown, func(*RawEvent) { order = append(order, "child") })
	p.Listen(EventPointerDown, func(*RawEvent) { order = append(order, "window") })

	p.Dispatch(&RawEvent{Kind: EventPointerDown, PageX: 120, PageY: 120})
	want := []string{"child", "parent", "window"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestPage_RootBoxDoesNotBubble(t *testing.T) {
	p := NewPage(800, 600)
	container := NewBox("container", Rect{Width: 800, Height: 600})
	panel := NewBox("panel", Rect{X: 600, Y: 450, Width: 200, Height: 150})
	p.Add(container, panel)

	hits := 0
	container.Listen(EventPointerDown, func(*RawEvent) { hits++ })
	p.Dispatch(&RawEvent{Kind: EventPointerDown, PageX: 700, PageY: 500})
	if hits != 0 {
		t.Errorf("container saw %d events from an overlapping root box", hits)
	}
}

func TestPage_KeysGoToWindowOnly(t *testing.T) {
	p := NewPage(800, 600)
	box := NewBox("box", Rect{Width: 800, Height: 600})
	p.Add(box)

	boxHits, windowHits := 0, 0
	box.Listen(EventKeyDown, func(*RawEvent) { boxHits++ })
	p.Listen(EventKeyDown, func(*RawEvent) { windowHits++ })

	p.Dispatch(&RawEvent{Kind: EventKeyDown, KeyCode: KeyCodeSpace, PageX: 10, PageY: 10})
	if boxHits != 0 || windowHits != 1 {
		t.Errorf("box=%d window=%d, want 0 and 1", boxHits, windowHits)
	}
}

func TestPage_AddNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewPage(1, 1).Add(nil)
}

func TestBox_ListenerCount(t *testing.T) {
	b := NewBox("b", Rect{})
	h := b.Listen(EventWheel, func(*RawEvent) {})
	if n := b.ListenerCount(EventWheel); n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
	h.Remove()
	if n := b.ListenerCount(EventWheel); n != 0 {
		t.Errorf("count = %d after Remove, want 0", n)
	}
}
