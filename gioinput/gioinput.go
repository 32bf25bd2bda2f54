// Package gioinput feeds Gio pointer events to a pinchzoom.Viewer.
//
// Register the viewer's area for the events in Filter, then drain them once
// per frame:
//
//	gioinput.Drain(gtx, tag, viewer, start)
//	viewer.Update(gtx.Now)
package gioinput

import (
	"math"
	"time"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"

	"github.com/phanxgames/pinchzoom"
)

// Kinds are the pointer event kinds a viewer consumes.
const Kinds = pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll | pointer.Cancel

// Filter returns the pointer filter to pass to gtx.Event for tag. Scrolling
// is unbounded so ctrl+wheel reaches the viewer.
func Filter(tag event.Tag) pointer.Filter {
	return pointer.Filter{
		Target:  tag,
		Kinds:   Kinds,
		ScrollX: pointer.ScrollRange{Min: math.MinInt32, Max: math.MaxInt32},
		ScrollY: pointer.ScrollRange{Min: math.MinInt32, Max: math.MaxInt32},
	}
}

// EventSource is implemented by layout.Context.
type EventSource interface {
	Event(filters ...event.Filter) (event.Event, bool)
}

// Drain delivers every pending pointer event for tag to v and returns how
// many were delivered. epoch is the time Gio event times are relative to.
func Drain(src EventSource, tag event.Tag, v *pinchzoom.Viewer, epoch time.Time) int {
	n := 0
	f := Filter(tag)
	for {
		ev, ok := src.Event(f)
		if !ok {
			return n
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		if in, ok := Convert(pe, epoch); ok {
			v.HandleInput(in)
			n++
		}
	}
}

// Convert translates a Gio pointer event into a pinchzoom input event.
// It reports false for events a viewer does not use, such as hover, enter
// and leave, or presses of non-primary mouse buttons.
func Convert(e pointer.Event, epoch time.Time) (pinchzoom.InputEvent, bool) {
	in := pinchzoom.InputEvent{
		X:         float64(e.Position.X),
		Y:         float64(e.Position.Y),
		Modifiers: modifiers(e.Modifiers),
		Time:      epoch.Add(e.Time),
	}
	if e.Kind == pointer.Cancel {
		in.Kind = pinchzoom.InputCancel
		return in, true
	}

	if e.Source == pointer.Touch {
		in.PointerID = int(e.PointerID)
		switch e.Kind {
		case pointer.Press:
			in.Kind = pinchzoom.InputTouchStart
		case pointer.Drag:
			in.Kind = pinchzoom.InputTouchMove
		case pointer.Release:
			in.Kind = pinchzoom.InputTouchEnd
		default:
			return in, false
		}
		return in, true
	}

	switch e.Kind {
	case pointer.Press:
		if !e.Buttons.Contain(pointer.ButtonPrimary) {
			return in, false
		}
		in.Kind = pinchzoom.InputPointerDown
	case pointer.Drag:
		in.Kind = pinchzoom.InputPointerMove
	case pointer.Release:
		in.Kind = pinchzoom.InputPointerUp
	case pointer.Scroll:
		in.Kind = pinchzoom.InputWheel
		in.WheelX = float64(e.Scroll.X)
		in.WheelY = float64(e.Scroll.Y)
	default:
		return in, false
	}
	return in, true
}

func modifiers(m key.Modifiers) pinchzoom.KeyModifiers {
	var mods pinchzoom.KeyModifiers
	if m.Contain(key.ModShift) {
		mods |= pinchzoom.ModShift
	}
	if m.Contain(key.ModCtrl) {
		mods |= pinchzoom.ModCtrl
	}
	if m.Contain(key.ModAlt) {
		mods |= pinchzoom.ModAlt
	}
	if m.Contain(key.ModCommand) || m.Contain(key.ModSuper) {
		mods |= pinchzoom.ModMeta
	}
	return mods
}
