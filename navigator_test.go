package panzoom

import "testing"

func TestNavigator_ThumbnailLetterbox(t *testing.T) {
	tests := []struct {
		name  string
		panel Rect
		want  Rect
	}{
		{"wider canvas", Rect{Width: 200, Height: 150}, Rect{X: 0, Y: 25, Width: 200, Height: 100}},
		{"wider panel", Rect{Width: 300, Height: 100}, Rect{X: 50, Y: 0, Width: 200, Height: 100}},
		{"empty panel", Rect{}, Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp, _, _ := newTestViewport(t, Rect{Width: 800, Height: 600}, ViewportOptions{})
			n := NewNavigator(vp, NewBox("panel", tt.panel), nil)
			assertRect(t, "thumbnail", n.Thumbnail().Local(), tt.want)
		})
	}
}

func TestNavigator_ScopeCoversThumbnailWhenFitted(t *testing.T) {
	f := newFixture(t, Options{})
	n := f.designer.Navigator()
	assertRect(t, "scope", n.Scope().Local(), Rect{Width: 200, Height: 100})
}

func TestNavigator_ScopeFollowsViewport(t *testing.T) {
	f := newFixture(t, Options{})
	n := f.designer.Navigator()
	f.vp.Scale(2)
	assertRect(t, "scope", n.Scope().Local(), Rect{X: 80, Y: 35, Width: 40, Height: 30})
	assertRect(t, "scope page bounds", n.Scope().Bounds(), Rect{X: 680, Y: 510, Width: 40, Height: 30})
}

func TestNavigator_ScopeShrinksAtEdge(t *testing.T) {
	f := newFixture(t, Options{})
	f.vp.Scale(2)
	f.vp.Pan(10000, 10000)
	r := f.designer.Navigator().ScopeRect()
	if r.X != 0 || r.Y != 0 {
		t.Errorf("scope origin = (%v,%v), want (0,0)", r.X, r.Y)
	}
	if r.Width >= 40 || r.Height >= 30 {
		t.Errorf("scope size = %vx%v, want shrunk below 40x30", r.Width, r.Height)
	}
	if r.Width < 0 || r.Height < 0 {
		t.Errorf("negative scope size %vx%v", r.Width, r.Height)
	}
}

func TestShrinkInto(t *testing.T) {
	tests := []struct {
		off, size, limit float64
		wantOff, wantSz  float64
	}{
		{10, 20, 100, 10, 20},
		{-5, 20, 100, 0, 15},
		{90, 20, 100, 90, 10},
		{-10, 200, 100, 0, 100},
		{150, 20, 100, 150, 0},
	}
	for _, tt := range tests {
		off, sz := shrinkInto(tt.off, tt.size, tt.limit)
		if off != tt.wantOff || sz != tt.wantSz {
			t.Errorf("shrinkInto(%v,%v,%v) = %v,%v, want %v,%v",
				tt.off, tt.size, tt.limit, off, sz, tt.wantOff, tt.wantSz)
		}
	}
}

func TestNavigator_ScopeDragPansViewport(t *testing.T) {
	f := newFixture(t, Options{})
	f.vp.Scale(2)
	before := f.vp.Rect()

	f.page.Dispatch(&RawEvent{Kind: EventPointerDown, Button: MouseButtonLeft, PageX: 700, PageY: 525})
	f.page.Dispatch(&RawEvent{Kind: EventPointerMove, PageX: 710, PageY: 530})
	f.page.Dispatch(&RawEvent{Kind: EventPointerUp, Button: MouseButtonLeft, PageX: 710, PageY: 530})

	after := f.vp.Rect()
	assertNear(t, "rect dx", after.X-before.X, -200)
	assertNear(t, "rect dy", after.Y-before.Y, -100)
	assertRect(t, "scope", f.designer.Navigator().Scope().Local(), Rect{X: 90, Y: 40, Width: 40, Height: 30})

	if f.designer.Gesture().State() != GestureIdle {
		t.Error("a scope drag must not start a container drag")
	}
}

func TestNavigator_ScopeDragRoundTrip(t *testing.T) {
	f := newFixture(t, Options{})
	f.vp.Scale(2)
	st := f.vp.Store()
	tx, ty := st.Get(FieldTranslateX), st.Get(FieldTranslateY)
	before := f.vp.Rect()

	f.page.Dispatch(&RawEvent{Kind: EventPointerDown, Button: MouseButtonLeft, PageX: 700, PageY: 525})
	f.page.Dispatch(&RawEvent{Kind: EventPointerMove, PageX: 710, PageY: 530})
	assertNear(t, "moved dx", f.vp.Rect().X-before.X, -200)
	f.page.Dispatch(&RawEvent{Kind: EventPointerMove, PageX: 700, PageY: 525})
	f.page.Dispatch(&RawEvent{Kind: EventPointerUp, Button: MouseButtonLeft, PageX: 700, PageY: 525})

	assertNear(t, "translateX", st.Get(FieldTranslateX), tx)
	assertNear(t, "translateY", st.Get(FieldTranslateY), ty)
	assertRect(t, "rect", f.vp.Rect(), before)
}

func TestNavigator_FullAxisDoesNotPan(t *testing.T) {
	f := newFixture(t, Options{})
	before := f.vp.Rect()

	// At the fitted scale the scope spans the whole thumbnail.
	f.page.Dispatch(&RawEvent{Kind: EventPointerDown, Button: MouseButtonLeft, PageX: 700, PageY: 525})
	f.page.Dispatch(&RawEvent{Kind: EventPointerMove, PageX: 720, PageY: 540})
	f.page.Dispatch(&RawEvent{Kind: EventPointerUp, Button: MouseButtonLeft, PageX: 720, PageY: 540})

	assertRect(t, "rect", f.vp.Rect(), before)
}

func TestNavigator_Slider(t *testing.T) {
	f := newFixture(t, Options{})
	n := f.designer.Navigator()
	assertNear(t, "slider", n.SliderValue(), 0.36)

	f.vp.Scale(2)
	assertNear(t, "slider follows scale", n.SliderValue(), 2)

	n.SetSlider(1.04)
	assertNear(t, "snapped scale", f.vp.CurrentScale(), 1)
	assertNear(t, "slider", n.SliderValue(), 1)
	assertNear(t, "gesture accumulator", f.designer.Gesture().WheelValue(), 1000)
}

func TestNavigator_ZoomMinMax(t *testing.T) {
	f := newFixture(t, Options{})
	n := f.designer.Navigator()
	n.ZoomMax()
	assertNear(t, "max", f.vp.CurrentScale(), MaxScaleValue)
	n.ZoomMin()
	assertNear(t, "min", f.vp.CurrentScale(), MinScaleValue)
}

func TestNavigator_TextInput(t *testing.T) {
	f := newFixture(t, Options{})
	n := f.designer.Navigator()

	tests := []struct {
		in     string
		ok     bool
		want   float64
		wantTx string
	}{
		{"150%", true, 1.5, "150%"},
		{" 2 ", true, 2, "200%"},
		{"75 %", true, 0.75, "75%"},
		{"abc", false, 0.75, "75%"},
		{"-1", false, 0.75, "75%"},
		{"0%", false, 0.75, "75%"},
		{"NaN", false, 0.75, "75%"},
		{"", false, 0.75, "75%"},
	}
	for _, tt := range tests {
		if ok := n.SubmitText(tt.in); ok != tt.ok {
			t.Errorf("SubmitText(%q) = %v, want %v", tt.in, ok, tt.ok)
		}
		assertNear(t, "scale after "+tt.in, f.vp.CurrentScale(), tt.want)
		if got := n.TextValue(); got != tt.wantTx {
			t.Errorf("TextValue after %q = %q, want %q", tt.in, got, tt.wantTx)
		}
	}
}

func TestNavigator_WithoutPanel(t *testing.T) {
	vp, _, _ := newTestViewport(t, Rect{Width: 800, Height: 600}, ViewportOptions{})
	n := NewNavigator(vp, nil, nil)
	if n.Thumbnail() != nil || n.Scope() != nil {
		t.Error("no boxes expected without a panel")
	}
	if r := n.ScopeRect(); r != (Rect{}) {
		t.Errorf("ScopeRect = %+v, want zero", r)
	}
	n.Refresh()
	n.SetSlider(3)
	assertNear(t, "scale", vp.CurrentScale(), 3)
	n.Close()
}

func TestNavigator_CloseUnregistersBoxes(t *testing.T) {
	f := newFixture(t, Options{})
	n := f.designer.Navigator()
	n.Close()
	if b := f.page.HitTest(700, 525); b != f.panel {
		t.Errorf("HitTest = %v after Close, want the panel", b)
	}
	if n.Scope().ListenerCount(EventPointerDown) != 0 {
		t.Error("scope still has listeners")
	}
	f.vp.Scale(3)
	assertNear(t, "slider detached", n.SliderValue(), 0.36)
}
