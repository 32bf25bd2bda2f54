package ecs

import (
	"github.com/phanxgames/pinchzoom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EventKind identifies what a ViewerEvent reports.
type EventKind uint8

const (
	EventIntent EventKind = iota
	EventRest
	EventDragChange
	EventOverlayClick
)

// ViewerEvent is published to ViewerEventType. Only the field matching Kind
// is set; Viewer is always the source.
type ViewerEvent struct {
	Kind         EventKind
	Viewer       *pinchzoom.Viewer
	Intent       pinchzoom.ZoomIntent
	Transform    pinchzoom.Transform
	DragDisabled bool
	Click        pinchzoom.OverlayClick
}

// ViewerEventType is the Donburi event type for viewer events.
var ViewerEventType = events.NewEventType[ViewerEvent]()

// Connection ties a viewer to a world until Close is called.
type Connection struct {
	subs []pinchzoom.Subscription
}

// Connect subscribes to v and publishes its events into world. Events are
// queued by Donburi and delivered by ViewerEventType.ProcessEvents.
func Connect(world donburi.World, v *pinchzoom.Viewer) *Connection {
	publish := func(e ViewerEvent) {
		e.Viewer = v
		ViewerEventType.Publish(world, e)
	}
	return &Connection{subs: []pinchzoom.Subscription{
		v.OnIntent(func(in pinchzoom.ZoomIntent) {
			publish(ViewerEvent{Kind: EventIntent, Intent: in})
		}),
		v.OnRest(func(t pinchzoom.Transform) {
			publish(ViewerEvent{Kind: EventRest, Transform: t})
		}),
		v.OnDragChange(func(disabled bool) {
			publish(ViewerEvent{Kind: EventDragChange, DragDisabled: disabled})
		}),
		v.OnOverlayClick(func(c pinchzoom.OverlayClick) {
			publish(ViewerEvent{Kind: EventOverlayClick, Click: c})
		}),
	}}
}

// Close stops publishing. It is safe to call more than once.
func (c *Connection) Close() {
	for _, s := range c.subs {
		s.Remove()
	}
	c.subs = nil
}
