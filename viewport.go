package viewport

import "time"

// Vec2 is a 2D vector used for points, offsets and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Size is the on-screen size of the viewport container.
type Size struct {
	Width, Height float64
}

// Empty reports whether either dimension is zero or negative.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Center returns the container-local center point.
func (s Size) Center() Vec2 {
	return Vec2{s.Width / 2, s.Height / 2}
}

// ImageDimensions is the true pixel size of the displayed image. The zero
// value means no image is shown.
type ImageDimensions struct {
	Width, Height int
}

// Empty reports whether no usable image is set.
func (d ImageDimensions) Empty() bool {
	return d.Width <= 0 || d.Height <= 0
}

// ViewportState is the zoom and pan applied to the image layer. Offset is
// measured from the container center, so the layer transform is
// screen = center + Offset + Zoom*(p - center). Renderers must scale about
// the container center first and translate by Offset after; applying Offset
// from the top-left corner misplaces the layer whenever Zoom != 1.
type ViewportState struct {
	Zoom   float64
	Offset Vec2
}

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventTap       EventType = iota + 1 // single tap resolved after the double-tap window
	EventLongPress                      // pointer held still for the long-press delay
	EventResetView                      // double tap; the view has been reset
)

// String returns the follow-up kind used by downstream consumers.
func (e EventType) String() string {
	switch e {
	case EventTap:
		return "tap"
	case EventLongPress:
		return "long-press"
	case EventResetView:
		return "reset-view"
	default:
		return "unknown"
	}
}

// Percent is a position on the original image, in whole percent of its
// width and height, origin top-left. Both fields are in [0, 100].
type Percent struct {
	X, Y int
}

// InteractionEvent is a resolved gesture delivered to the viewport's owner.
// At is only meaningful for EventTap and EventLongPress.
type InteractionEvent struct {
	Type EventType
	At   Percent
	// Screen is the container-local point where the gesture happened.
	Screen Vec2
	Time   time.Time
}

// Phase is the lifecycle stage of a pointer event.
type Phase uint8

const (
	PhaseDown   Phase = iota // a contact touched down
	PhaseMove                // one or more contacts moved
	PhaseUp                  // a contact lifted
	PhaseCancel              // the platform aborted all contacts
)

// Contact is one active touch or mouse pointer. IDs are stable while the
// contact is down. Coordinates are container-local.
type Contact struct {
	ID   int
	X, Y float64
}

// Pos returns the contact position as a Vec2.
func (c Contact) Pos() Vec2 { return Vec2{c.X, c.Y} }

// PointerEvent is one entry of the contact-list input stream. Contacts lists
// every contact still down after the event is applied; Changed is the
// contact that triggered it (for PhaseUp it is no longer in Contacts).
type PointerEvent struct {
	Phase    Phase
	Changed  Contact
	Contacts []Contact
	Time     time.Time
}

// WheelEvent is a desktop scroll. DeltaY follows the platform convention of
// positive values scrolling down (zooming out). HasCursor is false when the
// platform has no pointer position; the container center is used instead.
type WheelEvent struct {
	DeltaY    float64
	Cursor    Vec2
	HasCursor bool
	Time      time.Time
}
