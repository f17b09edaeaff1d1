package viewport

import (
	"encoding/json"
	"fmt"
	"time"
)

// testStep represents a single action in a gesture script.
type testStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	From   float64 `json:"from,omitempty"` // pinch start distance
	To     float64 `json:"to,omitempty"`   // pinch end distance
	Delta  float64 `json:"delta,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a gesture script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"press": true, "move": true, "release": true, "tap": true,
	"drag": true, "pinch": true, "wheel": true, "wait": true,
}

// TestRunner sequences injected gestures across frames for scripted
// interaction tests and demos. Attach to a Viewport via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON gesture script and returns a TestRunner
// ready to be attached to a Viewport via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner. Its step method is called from
// Update before queued input is replayed.
func (vp *Viewport) SetTestRunner(runner *TestRunner) {
	vp.testRunner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Viewport.Update.
func (r *TestRunner) step(vp *Viewport, now time.Time) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(vp.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		vp.InjectPress(st.X, st.Y)
	case "move":
		vp.InjectMove(st.X, st.Y)
	case "release":
		vp.InjectRelease(st.X, st.Y)
	case "tap":
		vp.InjectTap(st.X, st.Y)
	case "drag":
		vp.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 3))
	case "pinch":
		vp.InjectPinch(st.X, st.Y, st.From, st.To, max(st.Frames, 1))
	case "wheel":
		vp.HandleWheel(WheelEvent{
			DeltaY:    st.Delta,
			Cursor:    Vec2{st.X, st.Y},
			HasCursor: true,
			Time:      now,
		})
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(vp.injectQueue) == 0 {
		r.done = true
	}
}
