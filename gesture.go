package viewport

import (
	"math"
	"time"
)

// resolution is a gesture the recognizer has settled on. layer is the
// untransformed container point captured when the gesture was recognized,
// and container is the size it was measured against, so later pan, zoom
// or resize does not move it.
type resolution struct {
	kind      EventType
	screen    Vec2
	layer     Vec2
	container Size
	time      time.Time
}

// interactionState lives from a first contact going down until every
// contact has lifted.
type interactionState struct {
	down        bool // a single-contact press is being tracked
	dragging    bool
	pinching    bool
	longPressed bool

	contactID int
	start     Vec2
	last      Vec2
	panAnchor Vec2 // pointer minus offset at press time
	pinchDist float64
}

// gestureRecognizer turns a contact-list stream into pan and pinch updates
// on a View plus tap, long-press and reset resolutions.
type gestureRecognizer struct {
	longPressDelay  time.Duration
	doubleTapWindow time.Duration
	dragThreshold   float64

	st         interactionState
	longPress  deferredCall
	pendingTap deferredCall
	tap        resolution

	lastTap    time.Time
	hasLastTap bool
}

func newGestureRecognizer(opts Options) gestureRecognizer {
	return gestureRecognizer{
		longPressDelay:  opts.LongPressDelay,
		doubleTapWindow: opts.DoubleTapWindow,
		dragThreshold:   opts.DragThreshold,
	}
}

// interacting reports whether a press or pinch is in progress.
func (g *gestureRecognizer) interacting() bool {
	return g.st.down || g.st.pinching
}

// waiting reports whether a long press or a deferred tap is armed.
func (g *gestureRecognizer) waiting() bool {
	return g.longPress.active() || g.pendingTap.active()
}

// handle applies one pointer event. Deadlines that expired before the event
// are resolved first so results stay in arrival order.
func (g *gestureRecognizer) handle(ev PointerEvent, v *View, out []resolution) []resolution {
	out = g.tick(ev.Time, v, out)

	switch ev.Phase {
	case PhaseDown:
		if len(ev.Contacts) >= 2 {
			g.beginPinch(ev.Contacts)
		} else {
			g.beginPress(ev.Changed, ev.Time, v)
		}
	case PhaseMove:
		if g.st.pinching && len(ev.Contacts) >= 2 {
			g.pinchMove(ev.Contacts, v)
		} else if g.st.down {
			if c, ok := findContact(ev.Contacts, g.st.contactID); ok {
				g.dragMove(c.Pos(), v)
			}
		}
	case PhaseUp:
		out = g.contactUp(ev, v, out)
	case PhaseCancel:
		g.cancelCycle()
	}
	return out
}

// tick resolves any long press or deferred tap whose deadline is at or
// before now, earliest deadline first. A long press can only fall due
// before a pending tap when LongPressDelay is shorter than DoubleTapWindow.
func (g *gestureRecognizer) tick(now time.Time, v *View, out []resolution) []resolution {
	if g.longPress.active() && g.pendingTap.active() && g.longPress.deadline.Before(g.pendingTap.deadline) {
		out = g.fireLongPress(now, v, out)
		return g.firePendingTap(now, out)
	}
	out = g.firePendingTap(now, out)
	return g.fireLongPress(now, v, out)
}

func (g *gestureRecognizer) firePendingTap(now time.Time, out []resolution) []resolution {
	if g.pendingTap.fire(now) {
		out = append(out, g.tap)
	}
	return out
}

func (g *gestureRecognizer) fireLongPress(now time.Time, v *View, out []resolution) []resolution {
	if !g.longPress.fire(now) {
		return out
	}
	g.st.longPressed = true
	p := g.st.last
	return append(out, resolution{
		kind:      EventLongPress,
		screen:    p,
		layer:     v.ScreenToLayer(p),
		container: v.Container(),
		time:      g.longPress.deadline,
	})
}

// beginPress starts a single-contact cycle and arms the long-press timer.
func (g *gestureRecognizer) beginPress(c Contact, t time.Time, v *View) {
	p := c.Pos()
	g.longPress.cancel()
	g.st = interactionState{
		down:      true,
		contactID: c.ID,
		start:     p,
		last:      p,
		panAnchor: p.Sub(v.Offset()),
	}
	g.longPress.schedule(t.Add(g.longPressDelay))
}

// dragMove crosses into dragging once either axis exceeds the threshold,
// then pans so the layer follows the pointer.
func (g *gestureRecognizer) dragMove(p Vec2, v *View) {
	if g.st.longPressed {
		return
	}
	g.st.last = p
	if !g.st.dragging {
		d := p.Sub(g.st.start)
		if math.Abs(d.X) > g.dragThreshold || math.Abs(d.Y) > g.dragThreshold {
			g.st.dragging = true
			g.longPress.cancel()
		}
	}
	if g.st.dragging {
		v.SetOffset(p.Sub(g.st.panAnchor))
	}
}

// beginPinch abandons any press in progress and records the baseline
// distance between the first two contacts.
func (g *gestureRecognizer) beginPinch(contacts []Contact) {
	g.longPress.cancel()
	g.st.down = false
	g.st.dragging = false
	g.st.pinching = true
	g.st.pinchDist = contactDistance(contacts[0], contacts[1])
}

// pinchMove zooms by the ratio of the new distance to the baseline around
// the contacts' midpoint, then re-bases on the new distance.
func (g *gestureRecognizer) pinchMove(contacts []Contact, v *View) {
	a, b := contacts[0], contacts[1]
	dist := contactDistance(a, b)
	scale := 1.0
	if g.st.pinchDist > 0 {
		scale = dist / g.st.pinchDist
	}
	center := a.Pos().Add(b.Pos()).Scale(0.5)
	v.ZoomBy(scale, center)
	g.st.pinchDist = dist
}

func (g *gestureRecognizer) contactUp(ev PointerEvent, v *View, out []resolution) []resolution {
	switch remaining := len(ev.Contacts); {
	case remaining >= 2:
		if g.st.pinching {
			g.st.pinchDist = contactDistance(ev.Contacts[0], ev.Contacts[1])
		}
		return out
	case remaining == 1:
		// The remaining contact does not resume panning.
		g.st.pinching = false
		return out
	}

	g.longPress.cancel()
	if g.st.down && !g.st.dragging && !g.st.longPressed && ev.Changed.ID == g.st.contactID {
		out = g.tapCandidate(ev.Changed.Pos(), ev.Time, v, out)
	}
	g.st = interactionState{}
	return out
}

// tapCandidate resolves a second tap inside the window as a view reset and
// otherwise defers the tap until the window has passed.
func (g *gestureRecognizer) tapCandidate(p Vec2, t time.Time, v *View, out []resolution) []resolution {
	if g.hasLastTap && t.Sub(g.lastTap) < g.doubleTapWindow {
		g.pendingTap.cancel()
		v.Reset()
		out = append(out, resolution{kind: EventResetView, screen: p, layer: p, container: v.Container(), time: t})
	} else {
		g.tap = resolution{kind: EventTap, screen: p, layer: v.ScreenToLayer(p), container: v.Container(), time: t}
		g.pendingTap.schedule(t.Add(g.doubleTapWindow))
	}
	g.lastTap = t
	g.hasLastTap = true
	return out
}

// cancelCycle drops the current press or pinch without resolving anything.
// A tap from an earlier cycle that is still waiting out the double-tap
// window is kept.
func (g *gestureRecognizer) cancelCycle() {
	g.longPress.cancel()
	g.st = interactionState{}
}

// abandon drops all gesture state, including deferred taps and the
// double-tap history. Used when the displayed image changes.
func (g *gestureRecognizer) abandon() {
	g.cancelCycle()
	g.pendingTap.cancel()
	g.tap = resolution{}
	g.hasLastTap = false
	g.lastTap = time.Time{}
}

func findContact(contacts []Contact, id int) (Contact, bool) {
	for _, c := range contacts {
		if c.ID == id {
			return c, true
		}
	}
	return Contact{}, false
}

func contactDistance(a, b Contact) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
