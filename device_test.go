package panzoom

import "testing"

func TestDeviceApply_Pointer(t *testing.T) {
	tests := []struct {
		name       string
		ev         RawEvent
		wantDown   bool
		wantButton MouseButton
	}{
		{"left down", RawEvent{Kind: EventPointerDown, Button: MouseButtonLeft, PageX: 10, PageY: 20}, true, MouseButtonLeft},
		{"right down", RawEvent{Kind: EventPointerDown, Button: MouseButtonRight, PageX: 10, PageY: 20}, false, MouseButtonRight},
		{"middle down", RawEvent{Kind: EventPointerDown, Button: MouseButtonMiddle, PageX: 10, PageY: 20}, false, MouseButtonMiddle},
		{"move", RawEvent{Kind: EventPointerMove, PageX: 10, PageY: 20}, false, MouseButtonNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDevice()
			ev := tt.ev
			d.Apply(&ev)
			if d.ButtonDown != tt.wantDown {
				t.Errorf("ButtonDown = %v, want %v", d.ButtonDown, tt.wantDown)
			}
			if d.Button != tt.wantButton {
				t.Errorf("Button = %d, want %d", d.Button, tt.wantButton)
			}
			if d.PageX != 10 || d.PageY != 20 {
				t.Errorf("page = (%v,%v), want (10,20)", d.PageX, d.PageY)
			}
			if !ev.DefaultPrevented() {
				t.Error("pointer events should be default-prevented")
			}
		})
	}
}

func TestDeviceApply_PointerUpReleases(t *testing.T) {
	d := newDevice()
	d.Apply(&RawEvent{Kind: EventPointerDown, Button: MouseButtonLeft})
	d.Apply(&RawEvent{Kind: EventPointerUp, Button: MouseButtonLeft, PageX: 5, PageY: 6})
	if d.ButtonDown {
		t.Error("ButtonDown should be false after up")
	}
	if d.Button != MouseButtonNone {
		t.Errorf("Button = %d, want -1", d.Button)
	}
	if d.PageX != 5 || d.PageY != 6 {
		t.Errorf("page = (%v,%v), want (5,6)", d.PageX, d.PageY)
	}
}

func TestDeviceApply_Wheel(t *testing.T) {
	d := newDevice()
	d.Apply(&RawEvent{Kind: EventKeyDown, KeyCode: 65})
	ev := RawEvent{
		Kind: EventWheel, DeltaX: 3, DeltaY: -120,
		WheelDeltaX: -9, WheelDeltaY: 360, Modifiers: ModCtrl | ModMeta,
	}
	d.Apply(&ev)

	if d.DeltaX != 3 || d.DeltaY != -120 || d.WheelDeltaX != -9 || d.WheelDeltaY != 360 {
		t.Errorf("deltas = %v,%v wheel %v,%v", d.DeltaX, d.DeltaY, d.WheelDeltaX, d.WheelDeltaY)
	}
	if !d.Ctrl || !d.Meta {
		t.Errorf("ctrl/meta = %v/%v, want true/true", d.Ctrl, d.Meta)
	}
	if d.KeyCode != 65 {
		t.Errorf("KeyCode = %d, wheel must not change it", d.KeyCode)
	}
	if !ev.DefaultPrevented() {
		t.Error("wheel should be default-prevented")
	}
}

func TestDeviceApply_Space(t *testing.T) {
	d := newDevice()

	down := RawEvent{Kind: EventKeyDown, KeyCode: KeyCodeSpace}
	d.Apply(&down)
	if !d.Space {
		t.Fatal("space keydown should set Space")
	}
	if !down.DefaultPrevented() {
		t.Error("space keydown should be default-prevented")
	}

	other := RawEvent{Kind: EventKeyDown, KeyCode: 65}
	d.Apply(&other)
	if d.Space {
		t.Error("another keydown should clear Space")
	}
	if other.DefaultPrevented() {
		t.Error("non-space keys keep their default")
	}
	if d.KeyCode != 65 {
		t.Errorf("KeyCode = %d, want 65", d.KeyCode)
	}

	d.Apply(&RawEvent{Kind: EventKeyDown, KeyCode: KeyCodeSpace})
	if !d.Space {
		t.Fatal("space keydown should set Space again")
	}
	d.Apply(&RawEvent{Kind: EventKeyUp, KeyCode: 65})
	if d.Space {
		t.Error("any keyup clears Space")
	}
}

func TestDeviceApply_AltRefreshedOnEveryEvent(t *testing.T) {
	d := newDevice()
	d.Apply(&RawEvent{Kind: EventPointerMove, Modifiers: ModAlt})
	if !d.Alt {
		t.Fatal("Alt should be set")
	}
	d.Apply(&RawEvent{Kind: EventKeyDown, KeyCode: 65})
	if d.Alt {
		t.Error("Alt should be cleared by an event without alt")
	}
}

func TestNewDevice_Released(t *testing.T) {
	d := newDevice()
	if d.Button != MouseButtonNone || d.KeyCode != KeyCodeNone || d.ButtonDown {
		t.Errorf("newDevice = %+v", d)
	}
}
