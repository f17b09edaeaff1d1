// Package viewport is an interactive image viewport for [Ebitengine]: a
// zoom and pan model for one image shown cover-fit inside a container, a
// mapper from screen points to percentage positions on the original image,
// and a gesture recognizer that turns raw pointer and touch contacts into
// pan, pinch zoom, wheel zoom, tap, long press and double-tap reset.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	vp, _ := viewport.New(nil, viewport.DefaultOptions())
//	vp.SetImage(viewport.ImageDimensions{Width: w, Height: h})
//	vp.OnTap(func(ev viewport.InteractionEvent) {
//		fmt.Printf("tapped at %d%%, %d%%\n", ev.At.X, ev.At.Y)
//	})
//	viewport.Run(vp, texture, viewport.RunConfig{Title: "Photo", Width: 1280, Height: 800})
//
// For full control, implement [ebiten.Game] yourself, poll input with an
// [Input] and draw with [Viewport.Draw]:
//
//	func (g *Game) Update() error {
//		now := time.Now()
//		g.input.Poll(g.vp, now)
//		g.vp.Update(now)
//		return nil
//	}
//	func (g *Game) Draw(s *ebiten.Image) { g.vp.Draw(s, g.tex, g.input.Origin) }
//
// Other platforms feed [PointerEvent] and [WheelEvent] values to
// [Viewport.HandlePointer] and [Viewport.HandleWheel] directly.
//
// # Coordinates
//
// The image layer is first scaled to cover the container, then transformed
// by zoom about the container center and translated by the offset:
//
//	screen = center + offset + zoom*(layer - center)
//
// Offsets are clamped so the layer always covers the container, and zoom
// stays within [Options.MinZoom] and [Options.MaxZoom]. Interaction
// positions are reported as integer percentages of the original image, so
// they are independent of the display size and of any downscaled texture.
//
// # Gestures
//
// A single contact that moves more than [Options.DragThreshold] on either
// axis pans. One that stays put for [Options.LongPressDelay] is a long
// press. One released earlier is a tap candidate: a second tap within
// [Options.DoubleTapWindow] resets the view instead, and an unpaired tap is
// delivered once that window has passed. Two contacts pinch-zoom about
// their midpoint. All timers are deadlines resolved on the caller's
// goroutine from event times and [Viewport.Update].
//
// # Testing
//
// [Viewport.InjectTap], [Viewport.InjectDrag] and [Viewport.InjectPinch]
// queue synthetic input replayed one event per Update, and
// [LoadTestScript] sequences them from JSON.
//
// [Ebitengine]: https://ebitengine.org
package viewport
