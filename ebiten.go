package viewport

import (
	"image"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxContacts is the number of contact slots: the mouse is 0 and touches
// use 1-9.
const maxContacts = 10

// wheelLineDelta converts one ebiten wheel unit into WheelEvent.DeltaY
// units (pixel-mode browser deltas are about 100 per notch).
const wheelLineDelta = 100

// Input polls Ebitengine's mouse, touch and wheel state once per frame and
// feeds the resulting contact-list events into a Viewport.
type Input struct {
	// Origin is the screen position of the container's top-left corner.
	Origin Vec2

	touchIDs  []ebiten.TouchID
	touchMap  [maxContacts]ebiten.TouchID
	touchUsed [maxContacts]bool

	prev   []Contact
	cur    []Contact
	events []PointerEvent
}

// NewInput creates an Input for a container whose top-left corner is at
// origin on screen.
func NewInput(origin Vec2) *Input {
	return &Input{Origin: origin}
}

// Poll reads the current pointer state and delivers changes since the last
// frame to vp. Call it from ebiten.Game.Update before vp.Update.
func (in *Input) Poll(vp *Viewport, now time.Time) {
	bounds := vp.Container()
	in.cur = in.readContacts(in.cur[:0], bounds)
	in.events = diffContacts(in.prev, in.cur, now, in.events[:0])
	for _, ev := range in.events {
		vp.HandlePointer(ev)
	}
	in.prev = append(in.prev[:0], in.cur...)

	if _, dy := ebiten.Wheel(); dy != 0 {
		mx, my := ebiten.CursorPosition()
		cursor := Vec2{float64(mx), float64(my)}.Sub(in.Origin)
		if containsPoint(bounds, cursor) {
			vp.HandleWheel(WheelEvent{
				DeltaY:    -dy * wheelLineDelta,
				Cursor:    cursor,
				HasCursor: true,
				Time:      now,
			})
		}
	}
}

// readContacts returns the contacts that are down this frame in
// container-local coordinates. Touches take precedence over the mouse, and
// a contact that starts outside the container is ignored.
func (in *Input) readContacts(buf []Contact, bounds Size) []Contact {
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])

	var activeSlots [maxContacts]bool
	for _, tid := range in.touchIDs {
		slot := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		buf = in.track(buf, slot, float64(tx), float64(ty), bounds)
	}

	// Free slots whose touch has lifted.
	for i := 1; i < maxContacts; i++ {
		if in.touchUsed[i] && !activeSlots[i] {
			in.touchUsed[i] = false
			in.touchMap[i] = 0
		}
	}

	if len(in.touchIDs) == 0 && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		buf = in.track(buf, 0, float64(mx), float64(my), bounds)
	}
	return buf
}

// track appends contact id at screen position (sx, sy) unless it is a new
// contact outside the container.
func (in *Input) track(buf []Contact, id int, sx, sy float64, bounds Size) []Contact {
	c := Contact{ID: id, X: sx - in.Origin.X, Y: sy - in.Origin.Y}
	if _, held := findContact(in.prev, id); !held && !containsPoint(bounds, c.Pos()) {
		return buf
	}
	return append(buf, c)
}

// touchSlot maps an ebiten.TouchID to a contact slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (in *Input) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxContacts; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxContacts; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// diffContacts turns two successive contact snapshots into events: lifts
// first, then at most one move, then new contacts. Each event carries its
// own copy of the contacts active after it, in first-down order.
func diffContacts(prev, cur []Contact, now time.Time, out []PointerEvent) []PointerEvent {
	active := slices.Clone(prev)

	for _, p := range prev {
		if _, ok := findContact(cur, p.ID); ok {
			continue
		}
		active = slices.DeleteFunc(active, func(c Contact) bool { return c.ID == p.ID })
		out = append(out, PointerEvent{Phase: PhaseUp, Changed: p, Contacts: slices.Clone(active), Time: now})
	}

	moved := -1
	for i, a := range active {
		c, _ := findContact(cur, a.ID)
		if c != a {
			active[i] = c
			if moved < 0 {
				moved = i
			}
		}
	}
	if moved >= 0 {
		out = append(out, PointerEvent{Phase: PhaseMove, Changed: active[moved], Contacts: slices.Clone(active), Time: now})
	}

	for _, c := range cur {
		if _, ok := findContact(active, c.ID); ok {
			continue
		}
		active = append(active, c)
		out = append(out, PointerEvent{Phase: PhaseDown, Changed: c, Contacts: slices.Clone(active), Time: now})
	}
	return out
}

func containsPoint(s Size, p Vec2) bool {
	return Rect{Width: s.Width, Height: s.Height}.Contains(p.X, p.Y)
}

// affineGeoM converts a [6]float64 affine matrix into an ebiten.GeoM.
func affineGeoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// LayerGeoM returns the geometry that draws a texW x texH texture as the
// image layer: cover-fit using the true image dimensions, then the view
// transform st, then the container origin. The texture may be a downscaled
// copy of the image. ok is false when nothing should be drawn.
func LayerGeoM(texW, texH int, container Size, img ImageDimensions, st ViewportState, origin Vec2) (g ebiten.GeoM, ok bool) {
	r, ok := CoverFit(container, img)
	if !ok || texW <= 0 || texH <= 0 {
		return ebiten.GeoM{}, false
	}
	g.Scale(r.Width/float64(texW), r.Height/float64(texH))
	g.Translate(r.X, r.Y)
	g.Concat(affineGeoM(layerTransform(st, container)))
	g.Translate(origin.X, origin.Y)
	return g, true
}

// Draw renders tex as the image layer into dst, clipped to the container
// placed at origin. It uses RenderState, so settle animations are visible.
func (vp *Viewport) Draw(dst, tex *ebiten.Image, origin Vec2) {
	if tex == nil {
		return
	}
	size := vp.container()
	b := tex.Bounds()
	geo, ok := LayerGeoM(b.Dx(), b.Dy(), size, vp.image, vp.settle.rendered, origin)
	if !ok {
		return
	}

	clip := image.Rect(int(origin.X), int(origin.Y), int(origin.X+size.Width), int(origin.Y+size.Height))
	target, _ := dst.SubImage(clip).(*ebiten.Image)
	if target == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM = geo
	op.Filter = ebiten.FilterLinear
	target.DrawImage(tex, &op)
}
