// Package panzoom is a pan/zoom viewport controller for a bounded 2D canvas
// inside a resizable container, with a minimap navigator.
//
// The package separates input interpretation from layout. Hosts describe
// their layout with [Element] values (the in-memory [Box] is provided) and
// feed raw input to a [Page], which hit-tests boxes and bubbles events. A
// [Designer] wires everything for one container:
//
//	page := panzoom.NewPage(800, 600)
//	container := panzoom.NewBox("container", panzoom.Rect{Width: 800, Height: 600})
//	page.Add(container)
//
//	d := panzoom.NewDesigner(panzoom.Config{
//		Container: container,
//		Window:    page,
//		Options:   panzoom.DefaultOptions(2000, 1000),
//	})
//	page.Dispatch(&panzoom.RawEvent{Kind: panzoom.EventWheel, DeltaY: -120, Modifiers: panzoom.ModCtrl})
//	fmt.Println(d.Viewport().CurrentScale())
//
// # Input
//
// A [Gesture] owns a [Device] snapshot that normalizes pointer, wheel and
// keyboard events. Dragging with the primary button pans. Wheel events pan,
// or zoom when ctrl is held (trackpad pinch arrives as ctrl+wheel). Zoom is
// accumulated in wheel units so many small trackpad ticks add up smoothly.
//
// # Viewport
//
// [Viewport] keeps scale, translate and origin in an observable [Store].
// Scaling keeps the anchor point fixed on screen, and every transform keeps
// at least [KeepInside] of the container covered by the canvas. Scale is
// always within [MinScaleValue] and [MaxScaleValue]. Animated zoom uses
// [gween] tweens advanced by [Designer.Update].
//
// # Navigator
//
// [Navigator] letterboxes a thumbnail of the canvas in a panel and shows the
// visible part as a scope rectangle. Dragging the scope pans the viewport;
// the slider, min/max and text controls scale it.
//
// # Hosts
//
// [Run] opens an [Ebitengine] window. The tui subpackage hosts a designer in
// a terminal with bubbletea, and the ecs subpackage publishes transforms
// into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package panzoom
