package panzoom

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// gridSpacing is the canvas-space distance between grid lines drawn when
// no content image is set.
const gridSpacing = 100

var (
	colorBackground = color.RGBA{0x2b, 0x2d, 0x31, 0xff}
	colorCanvas     = color.RGBA{0xf4, 0xf1, 0xea, 0xff}
	colorGrid       = color.RGBA{0xc8, 0xc2, 0xb4, 0xff}
	colorBorder     = color.RGBA{0x60, 0x60, 0x60, 0xff}
	colorPanel      = color.RGBA{0x1b, 0x1c, 0x1f, 0xe0}
	colorThumbnail  = color.RGBA{0xd9, 0xd4, 0xc8, 0xff}
	colorScope      = color.RGBA{0xe0, 0x4f, 0x3a, 0xff}
)

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	vp := h.designer.Viewport()
	if vp != nil {
		h.drawCanvas(screen, vp)
		h.drawNavigator(screen)
		h.drawStatus(screen, vp)
	}
	h.flushScreenshots(screen)
}

func (h *Host) drawCanvas(screen *ebiten.Image, vp *Viewport) {
	r := vp.PageRect()
	if h.cfg.Content != nil {
		b := h.cfg.Content.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(r.Width/float64(b.Dx()), r.Height/float64(b.Dy()))
		op.GeoM.Translate(r.X, r.Y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(h.cfg.Content, op)
	} else {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), colorCanvas, false)
		drawGrid(screen, vp, r)
	}
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, colorBorder, false)
}

// drawGrid strokes canvas-space grid lines, skipping lines that would be
// closer than 4 screen pixels apart.
func drawGrid(screen *ebiten.Image, vp *Viewport, r Rect) {
	step := gridSpacing * vp.CurrentScale()
	if step < 4 {
		return
	}
	for x := r.X + step; x < r.X+r.Width; x += step {
		vector.StrokeLine(screen, float32(x), float32(r.Y), float32(x), float32(r.Y+r.Height), 1, colorGrid, false)
	}
	for y := r.Y + step; y < r.Y+r.Height; y += step {
		vector.StrokeLine(screen, float32(r.X), float32(y), float32(r.X+r.Width), float32(y), 1, colorGrid, false)
	}
}

func (h *Host) drawNavigator(screen *ebiten.Image) {
	nav := h.designer.Navigator()
	if nav == nil || h.panel == nil {
		return
	}
	p := h.panel.Bounds()
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), colorPanel, false)

	t := nav.Thumbnail().Bounds()
	if h.cfg.Content != nil && t.Width > 0 && t.Height > 0 {
		b := h.cfg.Content.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(t.Width/float64(b.Dx()), t.Height/float64(b.Dy()))
		op.GeoM.Translate(t.X, t.Y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(h.cfg.Content, op)
	} else {
		vector.DrawFilledRect(screen, float32(t.X), float32(t.Y), float32(t.Width), float32(t.Height), colorThumbnail, false)
	}

	s := nav.Scope().Bounds()
	vector.StrokeRect(screen, float32(s.X), float32(s.Y), float32(s.Width), float32(s.Height), 2, colorScope, false)
	ebitenutil.DebugPrintAt(screen, nav.TextValue(), int(p.X)+4, int(p.Y)+2)
}

func (h *Host) drawStatus(screen *ebiten.Image, vp *Viewport) {
	ev := vp.Event()
	msg := fmt.Sprintf("scale %.0f%%  translate %.0f,%.0f  TPS %.0f\nctrl+wheel zoom  drag/wheel pan  ctrl+0 reset  F12 screenshot",
		ev.Scale*100, ev.TranslateX, ev.TranslateY, ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}
