package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/panzoom"
)

// cell is what a terminal cell shows.
type cell uint8

const (
	cellEmpty cell = iota
	cellCanvas
	cellGrid
	cellPanel
	cellThumbnail
	cellScope
)

var (
	canvasColor = lipgloss.Color("#f4f1ea")
	gridColor   = lipgloss.Color("#c8c2b4")
	panelColor  = lipgloss.Color("#1b1c1f")
	thumbColor  = lipgloss.Color("#64748b")
	scopeColor  = lipgloss.Color("#ef4444")
	mutedColor  = lipgloss.Color("#94a3b8")

	cellStyles = [...]lipgloss.Style{
		cellEmpty:     lipgloss.NewStyle(),
		cellCanvas:    lipgloss.NewStyle().Background(canvasColor),
		cellGrid:      lipgloss.NewStyle().Background(canvasColor).Foreground(gridColor),
		cellPanel:     lipgloss.NewStyle().Background(panelColor),
		cellThumbnail: lipgloss.NewStyle().Background(thumbColor),
		cellScope:     lipgloss.NewStyle().Background(thumbColor).Foreground(scopeColor).Bold(true),
	}
	cellRunes = [...]rune{
		cellEmpty:     ' ',
		cellCanvas:    ' ',
		cellGrid:      '·',
		cellPanel:     ' ',
		cellThumbnail: ' ',
		cellScope:     '█',
	}

	statusStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(mutedColor)
)

// gridSpacing is the canvas-space grid spacing shown as dots.
const gridSpacing = 100

// rasterize samples the page at every cell center.
func rasterize(page *panzoom.Page, d *panzoom.Designer, cols, rows int) [][]cell {
	grid := make([][]cell, rows)
	for i := range grid {
		grid[i] = make([]cell, cols)
	}
	vp := d.Viewport()
	if vp == nil {
		return grid
	}
	canvas := vp.PageRect()
	var panel, thumb, scope panzoom.Rect
	nav := d.Navigator()
	if nav != nil && nav.Thumbnail() != nil {
		thumb = nav.Thumbnail().Bounds()
		scope = nav.Scope().Bounds()
		if p, ok := nav.Thumbnail().Parent().(*panzoom.Box); ok {
			panel = p.Bounds()
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x := float64(c*CellWidth + CellWidth/2)
			y := float64(r*CellHeight + CellHeight/2)
			switch {
			case nav != nil && onEdge(scope, x, y):
				grid[r][c] = cellScope
			case nav != nil && thumb.Contains(x, y):
				grid[r][c] = cellThumbnail
			case nav != nil && panel.Contains(x, y):
				grid[r][c] = cellPanel
			case canvas.Contains(x, y):
				grid[r][c] = canvasCell(vp, x, y)
			}
		}
	}
	return grid
}

// onEdge reports whether the cell centered at (x, y) straddles r's outline.
func onEdge(r panzoom.Rect, x, y float64) bool {
	if r.Width <= 0 || r.Height <= 0 {
		return false
	}
	outer := panzoom.Rect{X: r.X - CellWidth/2, Y: r.Y - CellHeight/2, Width: r.Width + CellWidth, Height: r.Height + CellHeight}
	inner := panzoom.Rect{X: r.X + CellWidth/2, Y: r.Y + CellHeight/2, Width: r.Width - CellWidth, Height: r.Height - CellHeight}
	if !outer.Contains(x, y) {
		return false
	}
	return inner.Width <= 0 || inner.Height <= 0 || !inner.Contains(x, y)
}

// canvasCell marks cells that contain a grid intersection.
func canvasCell(vp *panzoom.Viewport, x, y float64) cell {
	s := vp.CurrentScale()
	cx, cy := vp.PageToCanvas(x, y)
	hw, hh := CellWidth/2/s, CellHeight/2/s
	if crossesGrid(cx, hw) && crossesGrid(cy, hh) {
		return cellGrid
	}
	return cellCanvas
}

func crossesGrid(v, half float64) bool {
	lo := math.Floor((v - half) / gridSpacing)
	hi := math.Floor((v + half) / gridSpacing)
	return lo != hi
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	grid := rasterize(m.page, m.designer, m.cols, max(m.rows-chromeRows, 0))

	var b strings.Builder
	for _, row := range grid {
		renderRow(&b, row)
		b.WriteByte('\n')
	}
	b.WriteString(m.statusLine())
	b.WriteByte('\n')
	if m.editing {
		b.WriteString(m.zoomInput.View())
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

// renderRow styles runs of equal cells together.
func renderRow(b *strings.Builder, row []cell) {
	for i := 0; i < len(row); {
		j := i
		for j < len(row) && row[j] == row[i] {
			j++
		}
		b.WriteString(cellStyles[row[i]].Render(strings.Repeat(string(cellRunes[row[i]]), j-i)))
		i = j
	}
}

func (m Model) statusLine() string {
	vp := m.designer.Viewport()
	if vp == nil {
		return mutedStyle.Render("no container")
	}
	ev := vp.Event()
	text := fmt.Sprintf("zoom %s  translate %.0f,%.0f", m.designer.Navigator().TextValue(), ev.TranslateX, ev.TranslateY)
	if m.space {
		text += "  [space]"
	}
	line := statusStyle.Render(text)
	if m.status != "" {
		line += "  " + mutedStyle.Render(m.status)
	}
	return line
}
