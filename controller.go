package viewport

import (
	"io"
	"os"
	"time"
)

// ContainerFunc reports the current on-screen size of the viewport region.
// It is called at interaction time; the result is never cached across
// events.
type ContainerFunc func() Size

// EventSink receives every emitted interaction in addition to registered
// callbacks. See the ecs package for a Donburi-backed sink.
type EventSink interface {
	EmitEvent(event InteractionEvent)
}

// maxGestureContacts is the number of contacts a pinch reads.
const maxGestureContacts = 2

// maxFrameStep caps the settle animation step after a stalled frame.
const maxFrameStep = 0.1

// Viewport owns the view transform, the displayed image dimensions and the
// gesture recognizer for one interactive image region. All methods must be
// called from the same goroutine (the UI thread).
type Viewport struct {
	opts      Options
	container ContainerFunc
	image     ImageDimensions

	view     *View
	gestures gestureRecognizer
	settle   settleAnim

	handlers handlerRegistry
	sink     EventSink
	resBuf   []resolution

	injectQueue []PointerEvent
	testRunner  *TestRunner
	lastUpdate  time.Time

	debugOut io.Writer
}

// New creates a Viewport that samples its container size from container.
func New(container ContainerFunc, opts Options) (*Viewport, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	vp := &Viewport{
		opts:     opts,
		view:     NewView(opts.MinZoom, opts.MaxZoom),
		gestures: newGestureRecognizer(opts),
		settle:   newSettleAnim(float32(opts.SettleDuration.Seconds())),
		debugOut: os.Stderr,
	}
	vp.SetContainerFunc(container)
	return vp, nil
}

// SetContainerFunc replaces the container size source. Nil means an empty
// container.
func (vp *Viewport) SetContainerFunc(container ContainerFunc) {
	if container == nil {
		container = func() Size { return Size{} }
	}
	vp.container = container
}

// Options returns the configuration the viewport was created with.
func (vp *Viewport) Options() Options { return vp.opts }

// SetEventSink forwards every emitted interaction to sink. Pass nil to
// detach.
func (vp *Viewport) SetEventSink(sink EventSink) {
	vp.sink = sink
}

// SetImage replaces the displayed image. The view is reset and any gesture
// in flight, including a tap waiting out the double-tap window, is dropped.
func (vp *Viewport) SetImage(dims ImageDimensions) {
	if dims.Empty() {
		dims = ImageDimensions{}
	}
	vp.image = dims
	vp.gestures.abandon()
	vp.view.Reset()
	vp.settle.snap(vp.view.State())
	vp.debugf("image set to %dx%d", dims.Width, dims.Height)
}

// ClearImage removes the displayed image. Taps and long presses are
// dropped until a new image is set.
func (vp *Viewport) ClearImage() {
	vp.SetImage(ImageDimensions{})
}

// Image returns the dimensions of the displayed image.
func (vp *Viewport) Image() ImageDimensions { return vp.image }

// State returns the current zoom and offset of the model.
func (vp *Viewport) State() ViewportState { return vp.view.State() }

// RenderState returns the transform to draw this frame. It equals State
// except while a settle animation is running.
func (vp *Viewport) RenderState() ViewportState { return vp.settle.rendered }

// Interacting reports whether a press or pinch is in progress.
func (vp *Viewport) Interacting() bool { return vp.gestures.interacting() }

// Container samples and returns the current container size.
func (vp *Viewport) Container() Size { return vp.container() }

// sampleContainer pushes the current container size into the view.
func (vp *Viewport) sampleContainer() {
	vp.view.SetContainer(vp.container())
}

// MapScreenPoint converts a container-local screen point to an image
// percentage through the current transform.
func (vp *Viewport) MapScreenPoint(p Vec2) (Percent, bool) {
	vp.sampleContainer()
	return MapToImage(vp.view.ScreenToLayer(p), vp.view.Container(), vp.image)
}

// ImageToScreen returns where an image percentage is displayed, using the
// rendered transform.
func (vp *Viewport) ImageToScreen(pct Percent) (Vec2, bool) {
	size := vp.container()
	p, ok := MapFromImage(pct, size, vp.image)
	if !ok {
		return Vec2{}, false
	}
	x, y := transformPoint(layerTransform(vp.settle.rendered, size), p.X, p.Y)
	return Vec2{x, y}, true
}

// HandlePointer feeds one contact-list event through the gesture
// recognizer. Resolved interactions are delivered before it returns.
func (vp *Viewport) HandlePointer(ev PointerEvent) {
	if len(ev.Contacts) > maxGestureContacts {
		vp.debugf("warning: %d contacts, only the first %d are used", len(ev.Contacts), maxGestureContacts)
	}
	vp.sampleContainer()
	vp.resBuf = vp.gestures.handle(ev, vp.view, vp.resBuf[:0])
	vp.syncRender()
	vp.dispatch(vp.resBuf)
}

// HandleWheel zooms by the wheel delta around the cursor, or around the
// container center when the platform has no cursor position. It does not
// touch gesture state.
func (vp *Viewport) HandleWheel(ev WheelEvent) {
	vp.sampleContainer()
	vp.resBuf = vp.gestures.tick(ev.Time, vp.view, vp.resBuf[:0])

	anchor := vp.view.Container().Center()
	if ev.HasCursor {
		anchor = ev.Cursor
	}
	vp.view.ZoomStep(-ev.DeltaY*vp.opts.WheelZoomStep, anchor)
	vp.syncRender()
	vp.dispatch(vp.resBuf)
}

// Update advances the viewport to now: it replays one queued synthetic
// event, resolves expired long presses and deferred taps, and steps the
// settle animation. Call it once per frame.
func (vp *Viewport) Update(now time.Time) {
	var dt float64
	if !vp.lastUpdate.IsZero() {
		dt = min(now.Sub(vp.lastUpdate).Seconds(), maxFrameStep)
	}
	vp.lastUpdate = now

	if vp.testRunner != nil {
		vp.testRunner.step(vp, now)
	}
	if !vp.processInjectedInput(now) {
		vp.sampleContainer()
		vp.resBuf = vp.gestures.tick(now, vp.view, vp.resBuf[:0])
		vp.dispatch(vp.resBuf)
	}

	if dt > 0 {
		vp.settle.update(float32(dt))
	}
}

// syncRender keeps the rendered transform locked to the model during a
// press or pinch and eases toward it otherwise.
func (vp *Viewport) syncRender() {
	st := vp.view.State()
	if vp.gestures.interacting() {
		vp.settle.snap(st)
		return
	}
	vp.settle.retarget(st)
}

// dispatch maps resolutions to image coordinates and delivers them. Taps
// and long presses outside the image are dropped.
func (vp *Viewport) dispatch(res []resolution) {
	for _, r := range res {
		ev := InteractionEvent{Type: r.kind, Screen: r.screen, Time: r.time}
		if r.kind != EventResetView {
			pct, ok := MapToImage(r.layer, r.container, vp.image)
			if !ok {
				vp.debugf("%s at (%.1f,%.1f) outside image, dropped", r.kind, r.screen.X, r.screen.Y)
				continue
			}
			ev.At = pct
		}
		vp.emit(ev)
	}
}

func (vp *Viewport) emit(ev InteractionEvent) {
	if ev.Type == EventResetView {
		vp.debugf("reset-view")
	} else {
		vp.debugf("%s at (%d%%, %d%%)", ev.Type, ev.At.X, ev.At.Y)
	}
	vp.handlers.fire(ev)
	if vp.sink != nil {
		vp.sink.EmitEvent(ev)
	}
}
