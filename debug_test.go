package viewport

import (
	"bytes"
	"strings"
	"testing"
)

func newDebugViewport(t *testing.T) (*Viewport, *bytes.Buffer) {
	t.Helper()
	opts := DefaultOptions()
	opts.Debug = true
	vp := newTestViewport(t, opts)
	var buf bytes.Buffer
	vp.debugOut = &buf
	return vp, &buf
}

func TestDebugf_Prefix(t *testing.T) {
	vp, buf := newDebugViewport(t)
	vp.debugf("hello %d", 42)
	if got := buf.String(); got != "[viewport] hello 42\n" {
		t.Errorf("got %q", got)
	}
}

func TestDebugf_NilWriter(t *testing.T) {
	vp, _ := newDebugViewport(t)
	vp.debugOut = nil
	vp.debugf("ignored") // must not panic
}

func TestDebug_ImageSet(t *testing.T) {
	vp, buf := newDebugViewport(t)
	vp.SetImage(ImageDimensions{Width: 640, Height: 480})
	if !strings.Contains(buf.String(), "image set to 640x480") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestDebug_ResetView(t *testing.T) {
	vp, buf := newDebugViewport(t)
	tapAt(vp, 100, 100, 0, 30)
	tapAt(vp, 100, 100, 100, 130)
	if !strings.Contains(buf.String(), "[viewport] reset-view\n") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestDebug_LongPress(t *testing.T) {
	vp, buf := newDebugViewport(t)
	vp.HandlePointer(press(0, 250, 250, ms(0)))
	vp.Update(ms(600))
	if !strings.Contains(buf.String(), "long-press at (50%, 50%)") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestDebug_ExtraContactsWarning(t *testing.T) {
	vp, buf := newDebugViewport(t)
	a := Contact{ID: 1, X: 100, Y: 100}
	b := Contact{ID: 2, X: 200, Y: 100}
	c := Contact{ID: 3, X: 300, Y: 100}
	vp.HandlePointer(PointerEvent{Phase: PhaseDown, Changed: c, Contacts: []Contact{a, b, c}, Time: ms(0)})
	if !strings.Contains(buf.String(), "warning: 3 contacts") {
		t.Errorf("output = %q", buf.String())
	}
}
