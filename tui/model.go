// Package tui hosts a panzoom Designer in a terminal with bubbletea.
//
// Each terminal cell covers CellWidth×CellHeight page pixels, so the
// designer works in the same units as the window host. Mouse drags pan,
// ctrl+wheel zooms and the minimap sits in the bottom-right corner.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/phanxgames/panzoom"
)

// Page pixels per terminal cell.
const (
	CellWidth  = 8
	CellHeight = 16
)

const (
	chromeRows   = 2 // status line and help line
	panelCols    = 26
	panelRows    = 8
	panStepCells = 4
	wheelPixels  = 40
	tickInterval = time.Second / 30
	defaultCols  = 80
	defaultRows  = 24
)

type tickMsg time.Time

type reloadMsg panzoom.Options

// Model is the bubbletea model driving one designer.
type Model struct {
	cols, rows int

	opts      panzoom.Options
	page      *panzoom.Page
	container *panzoom.Box
	panel     *panzoom.Box
	designer  *panzoom.Designer
	reload    <-chan panzoom.Options

	keys      KeyMap
	help      help.Model
	zoomInput textinput.Model
	editing   bool
	space     bool
	pressed   bool

	status   string
	quitting bool
}

// NewModel creates a model for opts at the default terminal size. The real
// size arrives with the first tea.WindowSizeMsg.
func NewModel(opts panzoom.Options) Model {
	ti := textinput.New()
	ti.Placeholder = "150%"
	ti.CharLimit = 8
	ti.Width = 8
	ti.Prompt = "zoom: "

	m := Model{
		cols:      defaultCols,
		rows:      defaultRows,
		opts:      opts,
		keys:      DefaultKeyMap,
		help:      help.New(),
		zoomInput: ti,
	}
	m.page = panzoom.NewPage(0, 0)
	m.container = panzoom.NewBox("container", panzoom.Rect{})
	m.page.Add(m.container)
	m.layout()
	m.build()
	return m
}

// WithReload makes the model rebuild its designer whenever new options
// arrive on ch.
func (m Model) WithReload(ch <-chan panzoom.Options) Model {
	m.reload = ch
	return m
}

// Designer returns the current designer.
func (m Model) Designer() *panzoom.Designer { return m.designer }

// Page returns the page the model dispatches to.
func (m Model) Page() *panzoom.Page { return m.page }

// build (re)creates the designer and its minimap panel.
func (m *Model) build() {
	if m.designer != nil {
		m.designer.Close()
	}
	if m.panel != nil {
		m.page.Remove(m.panel)
	}
	m.panel = panzoom.NewBox("navigator", m.panelRect())
	m.designer = panzoom.NewDesigner(panzoom.Config{
		Container: m.container,
		Window:    m.page,
		Navigator: m.panel,
		Options:   m.opts,
	})
	m.page.Add(m.panel)
	if nav := m.designer.Navigator(); nav != nil {
		m.page.Remove(nav.Thumbnail())
		m.page.Remove(nav.Scope())
		m.page.Add(nav.Thumbnail(), nav.Scope())
	}
}

// layout sizes the page, container and panel from the terminal size.
func (m *Model) layout() {
	w := float64(m.cols * CellWidth)
	h := float64(max(m.rows-chromeRows, 1) * CellHeight)
	m.page.Resize(w, h)
	m.container.Place(panzoom.Rect{Width: w, Height: h})
	if m.panel != nil {
		m.panel.Place(m.panelRect())
	}
}

func (m *Model) panelRect() panzoom.Rect {
	w, h := m.page.Size()
	pw := float64(min(panelCols, m.cols/2) * CellWidth)
	ph := float64(min(panelRows, (m.rows-chromeRows)/2) * CellHeight)
	return panzoom.Rect{X: w - pw, Y: h - ph, Width: pw, Height: ph}
}

// Run starts a full-screen program for opts.
func Run(opts panzoom.Options, reload <-chan panzoom.Options) error {
	p := tea.NewProgram(
		NewModel(opts).WithReload(reload),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func waitReload(ch <-chan panzoom.Options) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		opts, ok := <-ch
		if !ok {
			return nil
		}
		return reloadMsg(opts)
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), waitReload(m.reload))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		m.designer.Resize()
		return m, nil

	case tickMsg:
		m.designer.Update(float32(tickInterval.Seconds()))
		return m, tick()

	case reloadMsg:
		m.opts = panzoom.Options(msg)
		m.build()
		m.status = "options reloaded"
		return m, waitReload(m.reload)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateZoomInput(msg)
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m Model) updateZoomInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		if nav := m.designer.Navigator(); nav != nil && !nav.SubmitText(m.zoomInput.Value()) {
			m.status = fmt.Sprintf("invalid zoom %q", m.zoomInput.Value())
		} else {
			m.status = ""
		}
		m.editing = false
		m.zoomInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.editing = false
		m.zoomInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.zoomInput, cmd = m.zoomInput.Update(msg)
	return m, cmd
}

// handleKey maps shortcuts onto the designer. Terminals report no key-up,
// so space toggles the held state instead.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	vp := m.designer.Viewport()
	nav := m.designer.Navigator()
	stepX := float64(panStepCells * CellWidth)
	stepY := float64(panStepCells * CellHeight / 2)

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		vp.Pan(0, stepY)
	case key.Matches(msg, m.keys.Down):
		vp.Pan(0, -stepY)
	case key.Matches(msg, m.keys.Left):
		vp.Pan(stepX, 0)
	case key.Matches(msg, m.keys.Right):
		vp.Pan(-stepX, 0)
	case key.Matches(msg, m.keys.ZoomIn):
		m.designer.ZoomIn()
	case key.Matches(msg, m.keys.ZoomOut):
		m.designer.ZoomOut()
	case key.Matches(msg, m.keys.Reset):
		m.designer.Reset()
	case key.Matches(msg, m.keys.Min):
		nav.ZoomMin()
	case key.Matches(msg, m.keys.Max):
		nav.ZoomMax()
	case key.Matches(msg, m.keys.Zoom):
		m.editing = true
		m.zoomInput.SetValue("")
		return m.zoomInput.Focus()
	case key.Matches(msg, m.keys.Space):
		m.space = !m.space
		kind := panzoom.EventKeyUp
		if m.space {
			kind = panzoom.EventKeyDown
		}
		m.page.Dispatch(&panzoom.RawEvent{Kind: kind, KeyCode: panzoom.KeyCodeSpace, Button: panzoom.MouseButtonNone})
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

// handleMouse converts a cell-based mouse message into a RawEvent at the
// cell center.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	ev := panzoom.RawEvent{
		PageX:     float64(msg.X*CellWidth + CellWidth/2),
		PageY:     float64(msg.Y*CellHeight + CellHeight/2),
		Button:    panzoom.MouseButtonNone,
		Modifiers: modifiers(msg),
	}
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		ev.Kind, ev.DeltaY = panzoom.EventWheel, -wheelPixels
	case msg.Button == tea.MouseButtonWheelDown:
		ev.Kind, ev.DeltaY = panzoom.EventWheel, wheelPixels
	case msg.Button == tea.MouseButtonWheelLeft:
		ev.Kind, ev.DeltaX = panzoom.EventWheel, -wheelPixels
	case msg.Button == tea.MouseButtonWheelRight:
		ev.Kind, ev.DeltaX = panzoom.EventWheel, wheelPixels
	case msg.Action == tea.MouseActionPress:
		ev.Kind, ev.Button = panzoom.EventPointerDown, mouseButton(msg.Button)
		m.pressed = true
	case msg.Action == tea.MouseActionRelease:
		// Many terminals do not report which button was released.
		ev.Kind, ev.Button = panzoom.EventPointerUp, panzoom.MouseButtonLeft
		m.pressed = false
	case msg.Action == tea.MouseActionMotion:
		ev.Kind = panzoom.EventPointerMove
	default:
		return
	}
	if ev.Kind == panzoom.EventWheel {
		ev.WheelDeltaX, ev.WheelDeltaY = -3*ev.DeltaX, -3*ev.DeltaY
	}
	m.page.Dispatch(&ev)
}

func modifiers(msg tea.MouseMsg) panzoom.KeyModifiers {
	var mods panzoom.KeyModifiers
	if msg.Shift {
		mods |= panzoom.ModShift
	}
	if msg.Alt {
		mods |= panzoom.ModAlt
	}
	if msg.Ctrl {
		mods |= panzoom.ModCtrl
	}
	return mods
}

func mouseButton(b tea.MouseButton) panzoom.MouseButton {
	switch b {
	case tea.MouseButtonLeft:
		return panzoom.MouseButtonLeft
	case tea.MouseButtonMiddle:
		return panzoom.MouseButtonMiddle
	case tea.MouseButtonRight:
		return panzoom.MouseButtonRight
	}
	return panzoom.MouseButtonNone
}
