package viewport

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// settleAnim eases the rendered transform toward the model after discrete
// changes such as a reset or a wheel step. While a press or pinch is
// active the rendered transform tracks the model exactly.
type settleAnim struct {
	duration float32 // seconds
	easeFn   ease.TweenFunc

	rendered ViewportState
	target   ViewportState
	tweens   [3]*gween.Tween // zoom, offset x, offset y
	active   bool
}

func newSettleAnim(seconds float32) settleAnim {
	return settleAnim{
		duration: seconds,
		easeFn:   ease.OutCubic,
		rendered: ViewportState{Zoom: 1},
		target:   ViewportState{Zoom: 1},
	}
}

// snap jumps to st and stops any running animation.
func (s *settleAnim) snap(st ViewportState) {
	s.rendered = st
	s.target = st
	s.active = false
	s.tweens = [3]*gween.Tween{}
}

// retarget starts easing from the currently rendered state toward st. It
// is a no-op when st is already the target.
func (s *settleAnim) retarget(st ViewportState) {
	if st == s.target {
		return
	}
	if s.duration <= 0 {
		s.snap(st)
		return
	}
	from := s.rendered
	s.target = st
	s.tweens[0] = gween.New(float32(from.Zoom), float32(st.Zoom), s.duration, s.easeFn)
	s.tweens[1] = gween.New(float32(from.Offset.X), float32(st.Offset.X), s.duration, s.easeFn)
	s.tweens[2] = gween.New(float32(from.Offset.Y), float32(st.Offset.Y), s.duration, s.easeFn)
	s.active = true
}

// update advances the animation by dt seconds.
func (s *settleAnim) update(dt float32) {
	if !s.active {
		return
	}
	zoom, doneZ := s.tweens[0].Update(dt)
	x, doneX := s.tweens[1].Update(dt)
	y, doneY := s.tweens[2].Update(dt)
	if doneZ && doneX && doneY {
		s.snap(s.target)
		return
	}
	s.rendered = ViewportState{
		Zoom:   float64(zoom),
		Offset: Vec2{float64(x), float64(y)},
	}
}
