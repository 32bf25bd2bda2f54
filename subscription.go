package pinchzoom

import "slices"

// eventType identifies a Viewer subscription list.
type eventType uint8

const (
	eventRest eventType = iota
	eventFrame
	eventDragChange
	eventOverlayClick
	eventIntent
)

type handler[T any] struct {
	id uint32
	fn func(T)
}

type handlerRegistry struct {
	rest         []handler[Transform]
	frame        []handler[Transform]
	dragChange   []handler[bool]
	overlayClick []handler[OverlayClick]
	intent       []handler[ZoomIntent]
	nextID       uint32
}

// Subscription allows removing a registered Viewer callback. The zero value
// is valid and Remove on it does nothing.
type Subscription struct {
	id    uint32
	reg   *handlerRegistry
	event eventType
}

// Remove unregisters the callback so it no longer fires. Calling Remove more
// than once, or from inside the callback itself, is safe.
func (h Subscription) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case eventRest:
		h.reg.rest = removeHandler(h.reg.rest, h.id)
	case eventFrame:
		h.reg.frame = removeHandler(h.reg.frame, h.id)
	case eventDragChange:
		h.reg.dragChange = removeHandler(h.reg.dragChange, h.id)
	case eventOverlayClick:
		h.reg.overlayClick = removeHandler(h.reg.overlayClick, h.id)
	case eventIntent:
		h.reg.intent = removeHandler(h.reg.intent, h.id)
	}
}

func removeHandler[T any](s []handler[T], id uint32) []handler[T] {
	return slices.DeleteFunc(s, func(h handler[T]) bool { return h.id == id })
}

func addHandler[T any](reg *handlerRegistry, list *[]handler[T], event eventType, fn func(T)) Subscription {
	reg.nextID++
	id := reg.nextID
	*list = append(*list, handler[T]{id: id, fn: fn})
	return Subscription{id: id, reg: reg, event: event}
}

// dispatch calls every handler registered at the time of the call. The list
// is cloned so handlers may remove themselves.
func dispatch[T any](list []handler[T], v T) {
	if len(list) == 0 {
		return
	}
	for _, h := range slices.Clone(list) {
		h.fn(v)
	}
}
