package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/viewport"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []viewport.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e viewport.InteractionEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(viewport.InteractionEvent{
		Type:   viewport.EventTap,
		At:     viewport.Percent{X: 40, Y: 60},
		Screen: viewport.Vec2{X: 100, Y: 200},
	})
	sink.EmitEvent(viewport.InteractionEvent{Type: viewport.EventResetView})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatal("events delivered before ProcessEvents")
	}
	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != viewport.EventTap || e0.At != (viewport.Percent{X: 40, Y: 60}) {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Screen.X != 100 || e0.Screen.Y != 200 {
		t.Errorf("event 0 screen: %+v", e0.Screen)
	}
	if received[1].Type != viewport.EventResetView {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink viewport.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	InteractionEventType.Subscribe(world, func(w donburi.World, e viewport.InteractionEvent) {
		count1++
	})
	InteractionEventType.Subscribe(world, func(w donburi.World, e viewport.InteractionEvent) {
		count2++
	})

	sink.EmitEvent(viewport.InteractionEvent{Type: viewport.EventLongPress})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiSink_FromViewport(t *testing.T) {
	world := donburi.NewWorld()
	vp, err := viewport.New(func() viewport.Size {
		return viewport.Size{Width: 400, Height: 400}
	}, viewport.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	vp.SetImage(viewport.ImageDimensions{Width: 800, Height: 800})
	vp.SetEventSink(NewDonburiSink(world))

	var got []viewport.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e viewport.InteractionEvent) {
		got = append(got, e)
	})

	vp.InjectTap(100, 300)
	base := time.Unix(1_700_000_000, 0)
	for i := 0; i < 40; i++ {
		vp.Update(base.Add(time.Duration(i) * 16 * time.Millisecond))
	}
	InteractionEventType.ProcessEvents(world)

	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if got[0].Type != viewport.EventTap || got[0].At != (viewport.Percent{X: 25, Y: 75}) {
		t.Errorf("event: %+v", got[0])
	}
}
