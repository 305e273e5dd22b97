package panzoom

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func nrgba(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func TestSnapshot(t *testing.T) {
	f := newFixture(t, Options{})
	img := Snapshot(f.page, f.designer)

	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Fatalf("size = %v, want 800x600", b)
	}
	tests := []struct {
		name string
		x, y int
		want color.Color
	}{
		{"background", 10, 10, colorBackground},
		{"canvas", 300, 300, colorCanvas},
		{"canvas border", 40, 300, colorBorder},
		{"thumbnail", 700, 525, colorThumbnail},
		{"scope outline", 650, 475, colorScope},
	}
	for _, tt := range tests {
		if got, want := img.NRGBAAt(tt.x, tt.y), nrgba(tt.want); got != want {
			t.Errorf("%s pixel at (%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, want)
		}
	}
}

func TestSnapshot_InertDesigner(t *testing.T) {
	img := Snapshot(NewPage(20, 10), NewDesigner(Config{}))
	if got, want := img.NRGBAAt(5, 5), nrgba(colorBackground); got != want {
		t.Errorf("pixel = %v, want background %v", got, want)
	}
}

func TestWriteSnapshot(t *testing.T) {
	f := newFixture(t, Options{})
	dir := filepath.Join(t.TempDir(), "shots")
	path, err := WriteSnapshot(dir, "after drag", f.page, f.designer)
	if err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}
	if !strings.HasSuffix(path, "_after_drag.png") {
		t.Errorf("path = %q", path)
	}
	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	cfg, err := png.DecodeConfig(file)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("png size = %dx%d", cfg.Width, cfg.Height)
	}
}
