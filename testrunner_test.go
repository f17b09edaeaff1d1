package viewport

import (
	"strings"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "tap", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "drag", "fromX": 10, "fromY": 20, "toX": 30, "toY": 40, "frames": 6},
			{"action": "pinch", "x": 250, "y": 250, "from": 100, "to": 200}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "tap" || runner.steps[0].X != 100 || runner.steps[0].Y != 200 {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "wait" || runner.steps[1].Frames != 3 {
		t.Error("step 1 mismatch")
	}
	if s := runner.steps[2]; s.FromX != 10 || s.FromY != 20 || s.ToX != 30 || s.ToY != 40 || s.Frames != 6 {
		t.Error("step 2 mismatch")
	}
	if s := runner.steps[3]; s.From != 100 || s.To != 200 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	_, err := LoadTestScript([]byte(`not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadTestScript_Empty(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": []}`))
	if err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadTestScript_UnknownAction(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": [{"action": "click"}]}`))
	if err == nil || !strings.Contains(err.Error(), `"click"`) {
		t.Errorf("err = %v, want unknown action error", err)
	}
}

// runFrames steps vp at 16ms intervals starting from start and returns the
// next frame index.
func runFrames(vp *Viewport, start, n int) int {
	for i := 0; i < n; i++ {
		vp.Update(ms((start + i) * 16))
	}
	return start + n
}

func TestRunnerStep_Tap(t *testing.T) {
	vp := newTestViewport(t, DefaultOptions())
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "tap", "x": 250, "y": 250}]}`))
	if err != nil {
		t.Fatal(err)
	}
	vp.SetTestRunner(runner)

	var taps int
	vp.OnTap(func(InteractionEvent) { taps++ })

	// Frame 0 queues and presses, frame 1 releases, frame 2 finishes.
	frame := runFrames(vp, 0, 3)
	if !runner.Done() {
		t.Error("runner should be done once the last step drained")
	}
	if taps != 0 {
		t.Error("tap fired before the double-tap window")
	}
	runFrames(vp, frame, 30)
	if taps != 1 {
		t.Errorf("taps = %d, want 1", taps)
	}
}

func TestRunnerStep_DoubleTap(t *testing.T) {
	vp := newTestViewport(t, DefaultOptions())
	vp.view.SetZoom(3)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "tap", "x": 200, "y": 200},
		{"action": "tap", "x": 200, "y": 200}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	vp.SetTestRunner(runner)

	var taps, resets int
	vp.OnTap(func(InteractionEvent) { taps++ })
	vp.OnResetView(func(InteractionEvent) { resets++ })

	runFrames(vp, 0, 60)
	if !runner.Done() {
		t.Fatal("runner not done")
	}
	if resets != 1 || taps != 0 {
		t.Errorf("resets = %d taps = %d, want 1 and 0", resets, taps)
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	vp := newTestViewport(t, DefaultOptions())
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "press", "x": 250, "y": 250}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	vp.SetTestRunner(runner)

	runFrames(vp, 0, 3)
	if vp.Interacting() {
		t.Error("press ran before the wait finished")
	}
	runFrames(vp, 3, 1)
	if !vp.Interacting() {
		t.Error("press should run after the wait")
	}
}

func TestRunnerStep_Wheel(t *testing.T) {
	vp := newTestViewport(t, DefaultOptions())
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wheel", "x": 250, "y": 250, "delta": -100}]}`))
	if err != nil {
		t.Fatal(err)
	}
	vp.SetTestRunner(runner)
	runFrames(vp, 0, 1)
	if !approxEqual(vp.State().Zoom, 1.5, 1e-9) {
		t.Errorf("Zoom = %v, want 1.5", vp.State().Zoom)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerStep_DragAndPinch(t *testing.T) {
	vp := newTestViewport(t, DefaultOptions())
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "pinch", "x": 250, "y": 250, "from": 100, "to": 200, "frames": 2},
		{"action": "drag", "fromX": 250, "fromY": 250, "toX": 300, "toY": 250, "frames": 4}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	vp.SetTestRunner(runner)
	runFrames(vp, 0, 40)

	if !runner.Done() {
		t.Fatal("runner not done")
	}
	st := vp.State()
	if !approxEqual(st.Zoom, 2, 1e-9) {
		t.Errorf("Zoom = %v, want 2", st.Zoom)
	}
	if !approxEqual(st.Offset.X, 50, 1e-9) || st.Offset.Y != 0 {
		t.Errorf("Offset = %v, want (50,0)", st.Offset)
	}
}
