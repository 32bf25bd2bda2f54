package pinchzoom

import (
	"fmt"
	"io"
	"os"
)

// debugOut is where debug lines are written. Tests replace it.
var debugOut io.Writer = os.Stderr

// SetDebug enables or disables diagnostic logging of gestures, goals,
// resets and page-drag changes to stderr.
func (v *Viewer) SetDebug(enabled bool) {
	v.debug = enabled
}

// debugf writes one "[pinchzoom]" line when debug logging is enabled.
func (v *Viewer) debugf(format string, args ...any) {
	if !v.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[pinchzoom] "+format+"\n", args...)
}

// debugGesture logs a gesture event.
func (v *Viewer) debugGesture(ev GestureEvent) {
	if !v.debug {
		return
	}
	switch ev.Kind {
	case GesturePinchUpdate:
		v.debugf("%s movement=%.1f origin=(%.1f,%.1f) ctrl=%v final=%v",
			ev.Kind, ev.MovementX, ev.OriginX, ev.OriginY, ev.Ctrl, ev.Final)
	case GesturePanUpdate:
		v.debugf("%s movement=(%.1f,%.1f) first=%v", ev.Kind, ev.MovementX, ev.MovementY, ev.First)
	case GestureTap:
		v.debugf("%s at (%.1f,%.1f)", ev.Kind, ev.OriginX, ev.OriginY)
	default:
		v.debugf("%s", ev.Kind)
	}
}

// debugGoal logs a goal change and the reason for it.
func (v *Viewer) debugGoal(reason string, t Transform) {
	v.debugf("goal %s: scale=%.3f translate=(%.1f,%.1f)", reason, t.Scale, t.X, t.Y)
}
