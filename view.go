package viewport

import "math"

// Default zoom bounds. The image layer never renders smaller than its
// container, so MinZoom is 1.
const (
	DefaultMinZoom = 1.0
	DefaultMaxZoom = 5.0
)

// View is the zoom and pan model for the image layer. Offsets are measured
// from the container center and are always clamped so the zoomed layer
// fully covers the container.
type View struct {
	minZoom float64
	maxZoom float64

	zoom      float64
	offset    Vec2
	container Size

	matrix    [6]float64
	invMatrix [6]float64
	dirty     bool
}

// NewView creates a View at zoom 1 with no offset. Zoom bounds below 1 are
// raised to 1; a max below the min collapses to the min.
func NewView(minZoom, maxZoom float64) *View {
	if minZoom < DefaultMinZoom || math.IsNaN(minZoom) {
		minZoom = DefaultMinZoom
	}
	if maxZoom < minZoom || math.IsNaN(maxZoom) {
		maxZoom = minZoom
	}
	return &View{
		minZoom: minZoom,
		maxZoom: maxZoom,
		zoom:    minZoom,
		dirty:   true,
	}
}

// State returns the current zoom and offset.
func (v *View) State() ViewportState {
	return ViewportState{Zoom: v.zoom, Offset: v.offset}
}

// Zoom returns the current zoom factor.
func (v *View) Zoom() float64 { return v.zoom }

// Offset returns the current pan offset.
func (v *View) Offset() Vec2 { return v.offset }

// ZoomBounds returns the configured minimum and maximum zoom.
func (v *View) ZoomBounds() (minZoom, maxZoom float64) {
	return v.minZoom, v.maxZoom
}

// Container returns the last container size given to SetContainer.
func (v *View) Container() Size { return v.container }

// SetContainer records the container size sampled for the current
// interaction and re-clamps the offset against it.
func (v *View) SetContainer(s Size) {
	if s == v.container {
		return
	}
	v.container = s
	v.offset = ClampOffset(v.offset, v.zoom, s)
	v.dirty = true
}

// ClampOffset restricts candidate so that a layer scaled by zoom about the
// container center still covers the whole container. Each axis is limited
// to ±max(0, (size*zoom - size)/2). An empty container skips the clamp.
func ClampOffset(candidate Vec2, zoom float64, container Size) Vec2 {
	if container.Empty() {
		return candidate
	}
	maxX := math.Max(0, (container.Width*zoom-container.Width)/2)
	maxY := math.Max(0, (container.Height*zoom-container.Height)/2)
	return Vec2{
		X: math.Max(-maxX, math.Min(candidate.X, maxX)),
		Y: math.Max(-maxY, math.Min(candidate.Y, maxY)),
	}
}

// SetOffset clamps candidate against the current zoom, stores it and
// returns the stored value.
func (v *View) SetOffset(candidate Vec2) Vec2 {
	v.offset = ClampOffset(candidate, v.zoom, v.container)
	v.dirty = true
	return v.offset
}

// clampZoom limits z to the configured bounds. ok is false for NaN or
// infinite input, which callers treat as a no-op.
func (v *View) clampZoom(z float64) (clamped float64, ok bool) {
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return v.zoom, false
	}
	return math.Max(v.minZoom, math.Min(z, v.maxZoom)), true
}

// SetZoom sets an absolute zoom anchored at the container center.
func (v *View) SetZoom(z float64) {
	v.ZoomAt(z, v.container.Center())
}

// ZoomBy multiplies the zoom by factor, keeping anchor stationary.
// Used by pinch, where factor is the ratio of contact distances.
func (v *View) ZoomBy(factor float64, anchor Vec2) {
	v.ZoomAt(v.zoom*factor, anchor)
}

// ZoomStep adds delta to the zoom, keeping anchor stationary.
// Used by the scroll wheel.
func (v *View) ZoomStep(delta float64, anchor Vec2) {
	v.ZoomAt(v.zoom+delta, anchor)
}

// ZoomAt changes the zoom to z (clamped) while keeping the layer point
// under anchor at the same screen position, then clamps the offset.
//
// In center-relative coordinates c, with old zoom z0 and offset o0:
//
//	p  = (c - o0) / z0
//	o1 = c - p*z1
func (v *View) ZoomAt(z float64, anchor Vec2) {
	z1, ok := v.clampZoom(z)
	if !ok {
		return
	}
	z0 := v.zoom
	c := anchor.Sub(v.container.Center())
	p := c.Sub(v.offset).Scale(1 / z0)
	v.zoom = z1
	v.offset = ClampOffset(c.Sub(p.Scale(z1)), z1, v.container)
	v.dirty = true
}

// Reset returns to the minimum zoom with no offset.
func (v *View) Reset() {
	v.zoom = v.minZoom
	v.offset = Vec2{}
	v.dirty = true
}

// computeMatrix recomputes the cached layer matrix and its inverse if dirty.
func (v *View) computeMatrix() [6]float64 {
	if !v.dirty {
		return v.matrix
	}
	v.dirty = false
	v.matrix = layerTransform(v.State(), v.container)
	v.invMatrix = invertAffine(v.matrix)
	return v.matrix
}

// Matrix returns the affine matrix mapping untransformed container
// coordinates to screen coordinates.
func (v *View) Matrix() [6]float64 {
	return v.computeMatrix()
}

// LayerToScreen converts an untransformed container point to where it is
// displayed after pan and zoom.
func (v *View) LayerToScreen(p Vec2) Vec2 {
	m := v.computeMatrix()
	x, y := transformPoint(m, p.X, p.Y)
	return Vec2{x, y}
}

// ScreenToLayer undoes pan and zoom, returning the untransformed container
// point displayed at screen point s.
func (v *View) ScreenToLayer(s Vec2) Vec2 {
	v.computeMatrix()
	x, y := transformPoint(v.invMatrix, s.X, s.Y)
	return Vec2{x, y}
}
