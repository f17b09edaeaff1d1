// Package ecs provides ECS adapters for the viewport interaction stream.
//
// The primary adapter is [NewDonburiSink], which forwards resolved
// interactions (tap, long press, view reset) into a [Donburi] world as
// typed events. Subscribe to [InteractionEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	vp.SetEventSink(ecs.NewDonburiSink(world))
//	ecs.InteractionEventType.Subscribe(world, onInteraction)
//	// each frame, after vp.Update:
//	ecs.InteractionEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
