package viewport

import "time"

// deferredCall is a single-shot deadline with cancel. It never fires on its
// own: the owner polls it with event or frame timestamps, which keeps all
// gesture handling on the caller's goroutine and makes resolution
// deterministic for a given event sequence.
type deferredCall struct {
	deadline time.Time
	pending  bool
}

// schedule arms the call for at, replacing any earlier deadline.
func (d *deferredCall) schedule(at time.Time) {
	d.deadline = at
	d.pending = true
}

// cancel disarms the call. A cancelled call never fires.
func (d *deferredCall) cancel() {
	d.pending = false
}

// active reports whether the call is armed.
func (d *deferredCall) active() bool {
	return d.pending
}

// fire reports whether the deadline has been reached and, if so, disarms
// the call so it fires at most once per schedule.
func (d *deferredCall) fire(now time.Time) bool {
	if !d.pending || now.Before(d.deadline) {
		return false
	}
	d.pending = false
	return true
}
