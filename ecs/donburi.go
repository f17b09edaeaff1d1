// Package ecs provides ECS adapters for viewport interaction events.
package ecs

import (
	"github.com/phanxgames/viewport"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for viewport interactions.
// Subscribe to this in your ECS systems to receive taps, long presses and
// view resets.
var InteractionEventType = events.NewEventType[viewport.InteractionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Interactions are published to InteractionEventType and can be consumed
// with Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) viewport.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event viewport.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
