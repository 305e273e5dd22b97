package panzoom

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"os"
	"path/filepath"
	"time"
)

// Snapshot renders the page without a GPU: background, canvas rectangle,
// minimap panel, thumbnail and scope outline in flat colors. Headless
// script runs use it for screenshot steps.
func Snapshot(page *Page, d *Designer) *image.NRGBA {
	w, h := page.Size()
	img := image.NewNRGBA(image.Rect(0, 0, int(math.Ceil(w)), int(math.Ceil(h))))
	fillRect(img, Rect{Width: w, Height: h}, colorBackground)

	vp := d.Viewport()
	if vp == nil {
		return img
	}
	canvas := vp.PageRect()
	fillRect(img, canvas, colorCanvas)
	strokeRect(img, canvas, colorBorder)

	if nav := d.Navigator(); nav != nil && nav.Thumbnail() != nil {
		if p, ok := nav.panel.(*Box); ok {
			fillRect(img, p.Bounds(), colorPanel)
		}
		fillRect(img, nav.Thumbnail().Bounds(), colorThumbnail)
		strokeRect(img, nav.Scope().Bounds(), colorScope)
	}
	return img
}

// WriteSnapshot renders a Snapshot and writes it to dir as a timestamped
// PNG. It returns the file path.
func WriteSnapshot(dir, label string, page *Page, d *Designer) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("snapshot: mkdir %s: %w", dir, err)
	}
	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
	if err := writePNG(path, Snapshot(page, d)); err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	return path, nil
}

func pixelRect(r Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)),
	)
}

// fillRect fills r, clipped to the image.
func fillRect(img draw.Image, r Rect, c color.Color) {
	draw.Draw(img, pixelRect(r).Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Over)
}

// strokeRect draws a one pixel outline of r, clipped to the image.
func strokeRect(img draw.Image, r Rect, c color.Color) {
	pr := pixelRect(r)
	if pr.Empty() {
		return
	}
	src := image.NewUniform(c)
	edges := [...]image.Rectangle{
		image.Rect(pr.Min.X, pr.Min.Y, pr.Max.X, pr.Min.Y+1),
		image.Rect(pr.Min.X, pr.Max.Y-1, pr.Max.X, pr.Max.Y),
		image.Rect(pr.Min.X, pr.Min.Y, pr.Min.X+1, pr.Max.Y),
		image.Rect(pr.Max.X-1, pr.Min.Y, pr.Max.X, pr.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(img, e.Intersect(img.Bounds()), src, image.Point{}, draw.Over)
	}
}
