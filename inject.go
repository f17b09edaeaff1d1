package viewport

import (
	"math"
	"time"
)

// Contact IDs used by synthetic input. The mouse-like pointer is 0; pinch
// fingers use 1 and 2.
const (
	syntheticPointerID = 0
	syntheticFingerA   = 1
	syntheticFingerB   = 2
)

func (vp *Viewport) enqueue(phase Phase, changed Contact, contacts ...Contact) {
	vp.injectQueue = append(vp.injectQueue, PointerEvent{
		Phase:    phase,
		Changed:  changed,
		Contacts: contacts,
	})
}

// InjectPress queues a single-contact press at the given container-local
// point. Queued events are replayed one per Update, stamped with the frame
// time.
func (vp *Viewport) InjectPress(x, y float64) {
	c := Contact{ID: syntheticPointerID, X: x, Y: y}
	vp.enqueue(PhaseDown, c, c)
}

// InjectMove queues a move of the pressed contact.
func (vp *Viewport) InjectMove(x, y float64) {
	c := Contact{ID: syntheticPointerID, X: x, Y: y}
	vp.enqueue(PhaseMove, c, c)
}

// InjectRelease queues the release of the pressed contact.
func (vp *Viewport) InjectRelease(x, y float64) {
	vp.enqueue(PhaseUp, Contact{ID: syntheticPointerID, X: x, Y: y})
}

// InjectTap queues a press followed by a release at the same point.
// Consumes two frames.
func (vp *Viewport) InjectTap(x, y float64) {
	vp.InjectPress(x, y)
	vp.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves ending on (toX, toY), and release there.
// The whole sequence consumes `frames` frames; the minimum is 3 (press,
// one move, release).
func (vp *Viewport) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	moves := max(frames-2, 1)
	vp.InjectPress(fromX, fromY)
	for i := 1; i <= moves; i++ {
		t := float64(i) / float64(moves)
		vp.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	vp.InjectRelease(toX, toY)
}

// InjectPinch queues a horizontal two-finger pinch centered on (cx, cy)
// whose finger distance goes from fromDist to toDist over the given number
// of move frames. Fingers go down one at a time and lift one at a time.
func (vp *Viewport) InjectPinch(cx, cy, fromDist, toDist float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	fingers := func(dist float64) (Contact, Contact) {
		half := math.Max(dist, 0) / 2
		return Contact{ID: syntheticFingerA, X: cx - half, Y: cy},
			Contact{ID: syntheticFingerB, X: cx + half, Y: cy}
	}

	a, b := fingers(fromDist)
	vp.enqueue(PhaseDown, a, a)
	vp.enqueue(PhaseDown, b, a, b)
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		a, b = fingers(fromDist + (toDist-fromDist)*t)
		vp.enqueue(PhaseMove, b, a, b)
	}
	vp.enqueue(PhaseUp, b, a)
	vp.enqueue(PhaseUp, a)
}

// InjectedPending reports how many synthetic events are still queued.
func (vp *Viewport) InjectedPending() int {
	return len(vp.injectQueue)
}

// processInjectedInput pops one queued event, stamps it with now and feeds
// it through HandlePointer. Returns true if an event was consumed.
func (vp *Viewport) processInjectedInput(now time.Time) bool {
	if len(vp.injectQueue) == 0 {
		return false
	}
	ev := vp.injectQueue[0]
	copy(vp.injectQueue, vp.injectQueue[1:])
	vp.injectQueue = vp.injectQueue[:len(vp.injectQueue)-1]

	ev.Time = now
	vp.HandlePointer(ev)
	return true
}
