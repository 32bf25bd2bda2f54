package pinchzoom

import "time"

// injectTouchBase is the first touch ID used by synthetic pinches, chosen
// well away from IDs a real device hands out first.
const injectTouchBase = 1000

// Synthetic input is queued per frame: each Update consumes one queued
// frame, stamps its events with the frame time and feeds them through the
// same path as real input.

func (v *Viewer) queueFrame(events ...InputEvent) {
	v.injectQueue = append(v.injectQueue, events)
}

// InjectPress queues a pointer press at container point (x, y).
func (v *Viewer) InjectPress(x, y float64) {
	v.queueFrame(InputEvent{Kind: InputPointerDown, X: x, Y: y})
}

// InjectMove queues a pointer move with the button held down.
func (v *Viewer) InjectMove(x, y float64) {
	v.queueFrame(InputEvent{Kind: InputPointerMove, X: x, Y: y})
}

// InjectRelease queues a pointer release.
func (v *Viewer) InjectRelease(x, y float64) {
	v.queueFrame(InputEvent{Kind: InputPointerUp, X: x, Y: y})
}

// InjectTap queues a press followed by a release at the same point.
// Consumes two frames.
func (v *Viewer) InjectTap(x, y float64) {
	v.InjectPress(x, y)
	v.InjectRelease(x, y)
}

// InjectDoubleTap queues two taps on consecutive frames. At 60 frames per
// second the taps land well inside the default double-click window.
func (v *Viewer) InjectDoubleTap(x, y float64) {
	v.InjectTap(x, y)
	v.InjectTap(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2.
func (v *Viewer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	v.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		v.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	v.InjectMove(toX, toY)
	v.InjectRelease(toX, toY)
}

// InjectPinch queues a horizontal two-finger pinch centered on (cx, cy).
// The finger distance goes from startDist to endDist over frames frames,
// then both fingers lift.
func (v *Viewer) InjectPinch(cx, cy, startDist, endDist float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	a, b := injectTouchBase, injectTouchBase+1
	v.queueFrame(
		InputEvent{Kind: InputTouchStart, PointerID: a, X: cx - startDist/2, Y: cy},
		InputEvent{Kind: InputTouchStart, PointerID: b, X: cx + startDist/2, Y: cy},
	)
	dist := startDist
	for i := 1; i <= frames; i++ {
		dist = startDist + (endDist-startDist)*float64(i)/float64(frames)
		v.queueFrame(
			InputEvent{Kind: InputTouchMove, PointerID: a, X: cx - dist/2, Y: cy},
			InputEvent{Kind: InputTouchMove, PointerID: b, X: cx + dist/2, Y: cy},
		)
	}
	v.queueFrame(
		InputEvent{Kind: InputTouchEnd, PointerID: a, X: cx - dist/2, Y: cy},
		InputEvent{Kind: InputTouchEnd, PointerID: b, X: cx + dist/2, Y: cy},
	)
}

// InjectWheelPinch queues notches ctrl+wheel events at (x, y), one per
// frame, each scrolling deltaY. Negative deltaY zooms in.
func (v *Viewer) InjectWheelPinch(x, y, deltaY float64, notches int) {
	for i := 0; i < notches; i++ {
		v.queueFrame(InputEvent{Kind: InputWheel, X: x, Y: y, WheelY: deltaY, Modifiers: ModCtrl})
	}
}

// Pending reports whether synthetic input is still queued.
func (v *Viewer) Pending() bool {
	return len(v.injectQueue) > 0
}

// processInjected pops one queued frame and handles its events at now.
func (v *Viewer) processInjected(now time.Time) {
	if len(v.injectQueue) == 0 {
		return
	}
	frame := v.injectQueue[0]
	copy(v.injectQueue, v.injectQueue[1:])
	v.injectQueue = v.injectQueue[:len(v.injectQueue)-1]

	for _, e := range frame {
		e.Time = now
		v.HandleInput(e)
	}
}
