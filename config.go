package panzoom

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default option values.
const (
	DefaultZoomDuration = 0.25 // seconds for keyboard zoom animations
	DefaultZoomStep     = 1.25 // factor applied by the zoom-in/zoom-out keys
)

// Options are the tunables of a Designer. They decode from YAML.
type Options struct {
	// CanvasOriginWidth and CanvasOriginHeight are the unscaled canvas size.
	CanvasOriginWidth  float64 `yaml:"canvasOriginWidth"`
	CanvasOriginHeight float64 `yaml:"canvasOriginHeight"`

	// MovableWhenContained allows panning while zoomed out. Nil means true.
	MovableWhenContained *bool `yaml:"movableWhenContained,omitempty"`
	// RequireSpaceToDrag gates drag panning on the space key.
	RequireSpaceToDrag bool `yaml:"requireSpaceToDrag"`

	KeepInside        float64 `yaml:"keepInside"`
	TrackpadPanRate   float64 `yaml:"trackpadPanRate"`
	TrackpadPinchRate float64 `yaml:"trackpadPinchRate"`

	// ZoomDuration is the keyboard zoom animation length in seconds. Nil
	// means DefaultZoomDuration; zero zooms instantly.
	ZoomDuration *float64 `yaml:"zoomDuration,omitempty"`

	Debug bool `yaml:"debug"`
}

// DefaultOptions returns Options for a w×h canvas with every tunable at its
// default.
func DefaultOptions(w, h float64) Options {
	return Options{
		CanvasOriginWidth:  w,
		CanvasOriginHeight: h,
		KeepInside:         KeepInside,
		TrackpadPanRate:    TrackpadPanRate,
		TrackpadPinchRate:  TrackpadPinchRate,
	}
}

// Movable reports the effective MovableWhenContained value.
func (o Options) Movable() bool {
	return o.MovableWhenContained == nil || *o.MovableWhenContained
}

// ZoomSeconds reports the effective ZoomDuration.
func (o Options) ZoomSeconds() float64 {
	if o.ZoomDuration == nil {
		return DefaultZoomDuration
	}
	return *o.ZoomDuration
}

// withDefaults fills zero tunables.
func (o Options) withDefaults() Options {
	if o.KeepInside == 0 {
		o.KeepInside = KeepInside
	}
	if o.TrackpadPanRate == 0 {
		o.TrackpadPanRate = TrackpadPanRate
	}
	if o.TrackpadPinchRate == 0 {
		o.TrackpadPinchRate = TrackpadPinchRate
	}
	return o
}

// Validate reports the first invalid option.
func (o Options) Validate() error {
	if o.CanvasOriginWidth <= 0 || o.CanvasOriginHeight <= 0 {
		return fmt.Errorf("canvas size %gx%g: %w", o.CanvasOriginWidth, o.CanvasOriginHeight, ErrInvalidOptions)
	}
	if o.KeepInside < 0 || o.KeepInside > 0.5 {
		return fmt.Errorf("keepInside %g outside [0, 0.5]: %w", o.KeepInside, ErrInvalidOptions)
	}
	if o.ZoomDuration != nil && *o.ZoomDuration < 0 {
		return fmt.Errorf("zoomDuration %g is negative: %w", *o.ZoomDuration, ErrInvalidOptions)
	}
	return nil
}

// ErrInvalidOptions is wrapped by every Validate error.
var ErrInvalidOptions = errors.New("invalid options")

// LoadOptions decodes YAML into Options. Missing tunables take their
// defaults; the result is validated.
func LoadOptions(data []byte) (Options, error) {
	var o Options
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Options{}, fmt.Errorf("parse options: %w", err)
	}
	o = o.withDefaults()
	if err := o.Validate(); err != nil {
		return Options{}, fmt.Errorf("parse options: %w", err)
	}
	return o, nil
}

// LoadOptionsFile reads and decodes a YAML options file.
func LoadOptionsFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options: %w", err)
	}
	o, err := LoadOptions(data)
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return o, nil
}

// Encode writes o as YAML, e.g. for a config template.
func (o Options) Encode() ([]byte, error) {
	data, err := yaml.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("encode options: %w", err)
	}
	return data, nil
}

// Config wires a Designer to its host elements.
type Config struct {
	// Container is the element the canvas lives in. Required; without it
	// NewDesigner returns an inert designer.
	Container Element
	// Canvas is positioned inside Container. Nil creates a child Box.
	Canvas Element
	// Window receives drag and keyboard events. Nil means Container.
	Window EventTarget
	// Navigator is the minimap panel. Nil disables the minimap.
	Navigator Element

	Options
}
