package viewport

import "fmt"

// debugf prints a gesture trace line when Options.Debug is set.
func (vp *Viewport) debugf(format string, args ...any) {
	if !vp.opts.Debug || vp.debugOut == nil {
		return
	}
	_, _ = fmt.Fprintf(vp.debugOut, "[viewport] "+format+"\n", args...)
}
