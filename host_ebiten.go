package panzoom

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// wheelLinePixels converts ebiten wheel ticks into DOM-style pixel deltas.
const wheelLinePixels = 40

// Default navigator panel size and inset from the window corner.
const (
	defaultNavigatorWidth  = 200
	defaultNavigatorHeight = 150
	navigatorInset         = 16
)

// HostConfig configures the Ebitengine window host.
type HostConfig struct {
	Title         string
	Width, Height int

	Options Options

	// NavigatorWidth and NavigatorHeight size the minimap panel. Zero uses
	// the defaults; a negative width hides the minimap.
	NavigatorWidth, NavigatorHeight float64

	// Content is drawn scaled into the canvas rectangle. Nil draws a grid.
	Content *ebiten.Image

	// Script, when set, replays scripted input instead of live input while
	// it runs. ExitOnScriptDone ends the game loop when it finishes.
	Script           *ScriptRunner
	ExitOnScriptDone bool

	// ScreenshotDir receives PNGs from screenshot steps and F12.
	ScreenshotDir string

	// Reload delivers new Options (e.g. from a config file watcher). The
	// designer is rebuilt on the main loop when one arrives.
	Reload <-chan Options

	// EventSink, when set, receives every TransformEvent.
	EventSink EventSink
}

// Host runs a Designer inside an Ebitengine window. It implements
// ebiten.Game.
type Host struct {
	cfg HostConfig

	page      *Page
	container *Box
	panel     *Box
	designer  *Designer

	width, height int
	prevX, prevY  int
	keyBuf        []ebiten.Key

	screenshotQueue []string
}

// NewHost creates a host for cfg. Call Run or pass it to ebiten.RunGame.
func NewHost(cfg HostConfig) *Host {
	if cfg.Width <= 0 {
		cfg.Width = 1024
	}
	if cfg.Height <= 0 {
		cfg.Height = 768
	}
	if cfg.NavigatorWidth == 0 {
		cfg.NavigatorWidth = defaultNavigatorWidth
	}
	if cfg.NavigatorHeight == 0 {
		cfg.NavigatorHeight = defaultNavigatorHeight
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	h := &Host{
		cfg:    cfg,
		width:  cfg.Width,
		height: cfg.Height,
		page:   NewPage(float64(cfg.Width), float64(cfg.Height)),
	}
	h.container = NewBox("container", Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)})
	h.page.Add(h.container)
	h.buildDesigner(cfg.Options)
	if cfg.Script != nil {
		cfg.Script.OnScreenshot(h.Screenshot)
	}
	return h
}

// buildDesigner (re)creates the designer and, when enabled, the minimap
// panel on top of the container.
func (h *Host) buildDesigner(opts Options) {
	if h.designer != nil {
		h.designer.Close()
	}
	if h.panel != nil {
		h.page.Remove(h.panel)
		h.panel = nil
	}

	cfg := Config{Container: h.container, Window: h.page, Options: opts}
	var panel *Box
	if h.cfg.NavigatorWidth > 0 {
		// The panel is a root box so drags on it do not bubble into the
		// container gesture.
		panel = NewBox("navigator", h.panelRect())
		cfg.Navigator = panel
	}
	h.designer = NewDesigner(cfg)
	if panel != nil {
		// Registered after the designer so the panel sits above the canvas.
		h.page.Add(panel)
		h.panel = panel
		h.raiseNavigator()
	}
	if h.cfg.EventSink != nil {
		h.designer.SetEventSink(h.cfg.EventSink)
	}
}

// raiseNavigator moves the minimap boxes above the panel in hit-test order.
func (h *Host) raiseNavigator() {
	nav := h.designer.Navigator()
	if nav == nil {
		return
	}
	h.page.Remove(nav.Thumbnail())
	h.page.Remove(nav.Scope())
	h.page.Add(nav.Thumbnail(), nav.Scope())
}

func (h *Host) panelRect() Rect {
	return Rect{
		X:      float64(h.width) - h.cfg.NavigatorWidth - navigatorInset,
		Y:      float64(h.height) - h.cfg.NavigatorHeight - navigatorInset,
		Width:  h.cfg.NavigatorWidth,
		Height: h.cfg.NavigatorHeight,
	}
}

// Page returns the host page, e.g. for injecting input.
func (h *Host) Page() *Page { return h.page }

// Designer returns the current designer. It changes after a reload.
func (h *Host) Designer() *Designer { return h.designer }

// Run opens a window and runs the host until it is closed.
func Run(cfg HostConfig) error {
	h := NewHost(cfg)
	title := cfg.Title
	if title == "" {
		title = "panzoom"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(h.width, h.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("run host: %w", err)
	}
	return nil
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	select {
	case opts, ok := <-h.cfg.Reload:
		if ok {
			h.buildDesigner(opts)
			_, _ = fmt.Fprintf(os.Stderr, "[panzoom] options reloaded\n")
		}
	default:
	}

	if s := h.cfg.Script; s != nil {
		s.Step(h.page)
		if s.Done() && h.page.Pending() == 0 && h.cfg.ExitOnScriptDone {
			return ebiten.Termination
		}
	}
	if !h.page.Step() {
		h.pollInput()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		h.Screenshot("manual")
	}

	h.designer.Update(1 / float32(ebiten.TPS()))
	h.updateCursorShape()
	return nil
}

// Layout implements ebiten.Game. A changed outside size resizes the page,
// the container and the minimap panel.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.width || outsideHeight != h.height {
		h.width, h.height = outsideWidth, outsideHeight
		h.page.Resize(float64(outsideWidth), float64(outsideHeight))
		h.container.Place(Rect{Width: float64(outsideWidth), Height: float64(outsideHeight)})
		if h.panel != nil {
			h.panel.Place(h.panelRect())
		}
		h.designer.Resize()
	}
	return outsideWidth, outsideHeight
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

var ebitenButtons = [...]struct {
	eb ebiten.MouseButton
	b  MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
	{ebiten.MouseButtonRight, MouseButtonRight},
}

// pollInput turns this frame's ebiten input state into RawEvents.
func (h *Host) pollInput() {
	mods := readModifiers()
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	if mx != h.prevX || my != h.prevY {
		h.dispatch(RawEvent{Kind: EventPointerMove, PageX: x, PageY: y, Button: MouseButtonNone, Modifiers: mods})
		h.prevX, h.prevY = mx, my
	}
	for _, btn := range ebitenButtons {
		if inpututil.IsMouseButtonJustPressed(btn.eb) {
			h.dispatch(RawEvent{Kind: EventPointerDown, PageX: x, PageY: y, Button: btn.b, Modifiers: mods})
		}
		if inpututil.IsMouseButtonJustReleased(btn.eb) {
			h.dispatch(RawEvent{Kind: EventPointerUp, PageX: x, PageY: y, Button: btn.b, Modifiers: mods})
		}
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		// ebiten reports positive Y for scrolling up; DOM deltas are the
		// opposite.
		dx, dy := -wx*wheelLinePixels, -wy*wheelLinePixels
		h.dispatch(RawEvent{
			Kind: EventWheel, PageX: x, PageY: y, Button: MouseButtonNone,
			DeltaX: dx, DeltaY: dy, WheelDeltaX: -3 * dx, WheelDeltaY: -3 * dy,
			Modifiers: mods,
		})
	}

	h.keyBuf = inpututil.AppendJustPressedKeys(h.keyBuf[:0])
	for _, k := range h.keyBuf {
		if code, ok := domKeyCode(k); ok {
			h.dispatch(RawEvent{Kind: EventKeyDown, KeyCode: code, Button: MouseButtonNone, Modifiers: mods})
		}
	}
	h.keyBuf = inpututil.AppendJustReleasedKeys(h.keyBuf[:0])
	for _, k := range h.keyBuf {
		if code, ok := domKeyCode(k); ok {
			h.dispatch(RawEvent{Kind: EventKeyUp, KeyCode: code, Button: MouseButtonNone, Modifiers: mods})
		}
	}
}

func (h *Host) dispatch(ev RawEvent) {
	h.page.Dispatch(&ev)
}

// domKeyCode maps the ebiten keys the designer reacts to onto DOM key codes.
func domKeyCode(k ebiten.Key) (int, bool) {
	switch {
	case k == ebiten.KeySpace:
		return KeyCodeSpace, true
	case k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9:
		return KeyCode0 + int(k-ebiten.KeyDigit0), true
	case k >= ebiten.KeyA && k <= ebiten.KeyZ:
		return 65 + int(k-ebiten.KeyA), true
	case k == ebiten.KeyMinus, k == ebiten.KeyNumpadSubtract:
		return KeyCodeMinus, true
	case k == ebiten.KeyEqual, k == ebiten.KeyNumpadAdd:
		return KeyCodePlus, true
	}
	return 0, false
}

// updateCursorShape shows the cursor requested by the box under the pointer
// or its nearest ancestor that requested one.
func (h *Host) updateCursorShape() {
	mx, my := ebiten.CursorPosition()
	c := CursorDefault
	for b := h.page.HitTest(float64(mx), float64(my)); b != nil; {
		if b.Cursor() != CursorDefault {
			c = b.Cursor()
			break
		}
		parent, ok := b.Parent().(*Box)
		if !ok {
			break
		}
		b = parent
	}
	switch c {
	case CursorGrab:
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	case CursorGrabbing:
		ebiten.SetCursorShape(ebiten.CursorShapeMove)
	default:
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}
