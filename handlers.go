package viewport

type interactionHandler struct {
	id uint32
	fn func(InteractionEvent)
}

type handlerRegistry struct {
	any       []interactionHandler
	tap       []interactionHandler
	longPress []interactionHandler
	resetView []interactionHandler
	nextID    uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType // zero for OnInteraction handlers
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case 0:
		h.reg.any = removeHandler(h.reg.any, h.id)
	case EventTap:
		h.reg.tap = removeHandler(h.reg.tap, h.id)
	case EventLongPress:
		h.reg.longPress = removeHandler(h.reg.longPress, h.id)
	case EventResetView:
		h.reg.resetView = removeHandler(h.reg.resetView, h.id)
	}
}

func removeHandler(s []interactionHandler, id uint32) []interactionHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = interactionHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) add(event EventType, fn func(InteractionEvent)) CallbackHandle {
	r.nextID++
	h := interactionHandler{id: r.nextID, fn: fn}
	switch event {
	case EventTap:
		r.tap = append(r.tap, h)
	case EventLongPress:
		r.longPress = append(r.longPress, h)
	case EventResetView:
		r.resetView = append(r.resetView, h)
	default:
		r.any = append(r.any, h)
	}
	return CallbackHandle{id: h.id, reg: r, event: event}
}

// fire calls the catch-all handlers first, then the type-specific ones.
func (r *handlerRegistry) fire(ev InteractionEvent) {
	for _, h := range r.any {
		h.fn(ev)
	}
	var typed []interactionHandler
	switch ev.Type {
	case EventTap:
		typed = r.tap
	case EventLongPress:
		typed = r.longPress
	case EventResetView:
		typed = r.resetView
	}
	for _, h := range typed {
		h.fn(ev)
	}
}

// OnInteraction registers a callback for every resolved interaction.
func (vp *Viewport) OnInteraction(fn func(InteractionEvent)) CallbackHandle {
	return vp.handlers.add(0, fn)
}

// OnTap registers a callback for taps that landed on the image.
func (vp *Viewport) OnTap(fn func(InteractionEvent)) CallbackHandle {
	return vp.handlers.add(EventTap, fn)
}

// OnLongPress registers a callback for long presses that landed on the image.
func (vp *Viewport) OnLongPress(fn func(InteractionEvent)) CallbackHandle {
	return vp.handlers.add(EventLongPress, fn)
}

// OnResetView registers a callback for double taps. The view has already
// been reset when it runs.
func (vp *Viewport) OnResetView(fn func(InteractionEvent)) CallbackHandle {
	return vp.handlers.add(EventResetView, fn)
}
