package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/panzoom"
)

// optionFlags are the designer flags shared by every command. Flags that
// were set explicitly override the config file.
type optionFlags struct {
	config       string
	canvasWidth  float64
	canvasHeight float64
	keepInside   float64
	requireSpace bool
	movable      bool
	debug        bool
}

func (f *optionFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.config, "config", "c", "", "YAML options file")
	fs.Float64Var(&f.canvasWidth, "canvas-width", 2000, "Unscaled canvas width")
	fs.Float64Var(&f.canvasHeight, "canvas-height", 1000, "Unscaled canvas height")
	fs.Float64Var(&f.keepInside, "keep-inside", panzoom.KeepInside, "Fraction of the container the canvas must keep covering")
	fs.BoolVar(&f.requireSpace, "require-space", false, "Only pan by dragging while space is held")
	fs.BoolVar(&f.movable, "movable", true, "Allow panning while zoomed out")
	fs.BoolVar(&f.debug, "debug", false, "Log transforms to stderr")
}

// load builds Options from the config file (if any) and explicit flags.
func (f *optionFlags) load(cmd *cobra.Command) (panzoom.Options, error) {
	opts := panzoom.DefaultOptions(f.canvasWidth, f.canvasHeight)
	if f.config != "" {
		var err error
		if opts, err = panzoom.LoadOptionsFile(f.config); err != nil {
			return panzoom.Options{}, err
		}
	}
	return f.apply(cmd, opts)
}

func (f *optionFlags) apply(cmd *cobra.Command, opts panzoom.Options) (panzoom.Options, error) {
	fs := cmd.Flags()
	if fs.Changed("canvas-width") {
		opts.CanvasOriginWidth = f.canvasWidth
	}
	if fs.Changed("canvas-height") {
		opts.CanvasOriginHeight = f.canvasHeight
	}
	if fs.Changed("keep-inside") {
		opts.KeepInside = f.keepInside
	}
	if fs.Changed("require-space") {
		opts.RequireSpaceToDrag = f.requireSpace
	}
	if fs.Changed("movable") {
		movable := f.movable
		opts.MovableWhenContained = &movable
	}
	if fs.Changed("debug") {
		opts.Debug = f.debug
	}
	if err := opts.Validate(); err != nil {
		return panzoom.Options{}, fmt.Errorf("options: %w", err)
	}
	return opts, nil
}

// reloadChannel starts watching the config file when --watch is set. Each
// reload re-applies the explicit flags.
func (f *optionFlags) reloadChannel(cmd *cobra.Command, watch bool) (<-chan panzoom.Options, error) {
	if !watch {
		return nil, nil
	}
	if f.config == "" {
		return nil, fmt.Errorf("--watch requires --config")
	}
	ch := make(chan panzoom.Options, 1)
	err := watchOptions(cmd.Context(), f.config, func(opts panzoom.Options) {
		opts, err := f.apply(cmd, opts)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return
		}
		// Keep only the newest options if the main loop is behind.
		select {
		case <-ch:
		default:
		}
		ch <- opts
	}, func(err error) {
		fmt.Fprintln(cmd.ErrOrStderr(), "watch:", err)
	})
	if err != nil {
		return nil, err
	}
	return ch, nil
}
