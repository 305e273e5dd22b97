// Package ecs provides ECS adapters for panzoom's viewport transforms.
//
// The primary adapter is [NewDonburiSink], which publishes every
// [panzoom.TransformEvent] into a [Donburi] world as a typed event and keeps
// one entity per designer holding its latest [ViewportState]. Subscribe to
// [TransformEventType] in your ECS systems, or query [Viewport].
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	designer.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
