package pinchzoom

import (
	"math"
	"time"
)

// --- Constants ---

const maxPointers = 10 // slot 0 = mouse, 1-9 = touch

// --- Per-pointer state ---

type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	dragging bool
	// noTap is set once the pointer took part in a pinch, so lifting it
	// never counts as a tap.
	noTap bool
	mods  KeyModifiers
}

// --- Pinch state ---

type pinchState struct {
	active      bool
	wheel       bool // emulated with ctrl+wheel
	pointer0    int
	pointer1    int
	initialDist float64
	movement    float64
	origin      Vec2
	hasOrigin   bool
	// dirty is set when a pinch finger moved since the last emitted frame.
	dirty     bool
	lastWheel time.Time
	mods      KeyModifiers
}

// --- Pan state ---

type panState struct {
	active bool
	slot   int
}

// GestureInterpreter turns raw pointer, touch and wheel input into pinch,
// pan and tap gestures. Two touch points, or a ctrl-modified wheel, make a
// pinch; a single pointer dragged past the dead zone makes a pan. Pans are
// suppressed while a pinch is active.
//
// The interpreter is not safe for concurrent use; feed it from the UI
// thread.
type GestureInterpreter struct {
	deadZone  float64
	wheelIdle time.Duration
	emit      func(GestureEvent)

	pointers  [maxPointers]pointerState
	touchMap  [maxPointers]int
	touchUsed [maxPointers]bool
	pinch     pinchState
	pan       panState
}

// NewGestureInterpreter returns an interpreter that delivers gestures to fn.
func NewGestureInterpreter(cfg Config, fn func(GestureEvent)) *GestureInterpreter {
	cfg = cfg.withDefaults()
	if fn == nil {
		fn = func(GestureEvent) {}
	}
	return &GestureInterpreter{
		deadZone:  cfg.DragDeadZone,
		wheelIdle: cfg.WheelIdle,
		emit:      fn,
	}
}

// Pinching reports whether a pinch gesture is in progress.
func (g *GestureInterpreter) Pinching() bool {
	return g.pinch.active
}

// Panning reports whether a pan gesture is in progress.
func (g *GestureInterpreter) Panning() bool {
	return g.pan.active
}

// Active reports whether any pinch or pan is in progress.
func (g *GestureInterpreter) Active() bool {
	return g.pinch.active || g.pan.active
}

// Reset forgets every pointer and gesture without emitting anything.
// Pointers still held by the user are ignored until pressed again.
func (g *GestureInterpreter) Reset() {
	g.pointers = [maxPointers]pointerState{}
	g.touchMap = [maxPointers]int{}
	g.touchUsed = [maxPointers]bool{}
	g.pinch = pinchState{}
	g.pan = panState{}
}

// Handle processes one raw input event.
func (g *GestureInterpreter) Handle(e InputEvent) {
	switch e.Kind {
	case InputPointerDown:
		g.press(0, e)
	case InputPointerMove:
		g.move(0, e)
	case InputPointerUp:
		g.release(0, e)
	case InputTouchStart:
		slot := g.touchSlot(e.PointerID, true)
		if slot < 0 {
			return
		}
		g.press(slot, e)
		g.detectPinch(e)
	case InputTouchMove:
		slot := g.touchSlot(e.PointerID, false)
		if slot < 0 {
			return
		}
		g.move(slot, e)
		g.detectPinch(e)
	case InputTouchEnd:
		slot := g.touchSlot(e.PointerID, false)
		if slot < 0 {
			return
		}
		if g.pinch.active && !g.pinch.wheel && (slot == g.pinch.pointer0 || slot == g.pinch.pointer1) {
			g.endPinch(e.Time)
		}
		g.release(slot, e)
		g.touchUsed[slot] = false
		g.touchMap[slot] = 0
	case InputWheel:
		g.wheel(e)
	case InputCancel:
		g.cancel(e.Time)
	}
}

// Update emits one pinch frame for all finger movement since the previous
// call, so both fingers of a frame are seen together, and ends a wheel pinch
// that has been idle for the configured time. Call it once per frame after
// handling that frame's input.
func (g *GestureInterpreter) Update(now time.Time) {
	if !g.pinch.active {
		return
	}
	if g.pinch.wheel {
		if now.Sub(g.pinch.lastWheel) >= g.wheelIdle {
			g.endPinch(now)
		}
		return
	}
	if g.pinch.dirty {
		g.pinch.dirty = false
		g.pinchFrame(now)
	}
}

// touchSlot maps a touch ID to a pointer slot (1-9). New slots are only
// allocated when alloc is set. Returns -1 if unknown or full.
func (g *GestureInterpreter) touchSlot(id int, alloc bool) int {
	for i := 1; i < maxPointers; i++ {
		if g.touchUsed[i] && g.touchMap[i] == id {
			return i
		}
	}
	if !alloc {
		return -1
	}
	for i := 1; i < maxPointers; i++ {
		if !g.touchUsed[i] {
			g.touchUsed[i] = true
			g.touchMap[i] = id
			return i
		}
	}
	return -1
}

// touchCount returns the number of touch pointers currently down.
func (g *GestureInterpreter) touchCount() int {
	n := 0
	for i := 1; i < maxPointers; i++ {
		if g.pointers[i].down {
			n++
		}
	}
	return n
}

// --- Pointer state machine ---

func (g *GestureInterpreter) press(slot int, e InputEvent) {
	ps := &g.pointers[slot]
	if ps.down {
		return
	}
	*ps = pointerState{
		down:   true,
		startX: e.X, startY: e.Y,
		lastX: e.X, lastY: e.Y,
		mods: e.Modifiers,
	}
	if g.pinch.active {
		ps.noTap = true
	}
}

func (g *GestureInterpreter) move(slot int, e InputEvent) {
	ps := &g.pointers[slot]
	if !ps.down {
		return
	}
	if e.X == ps.lastX && e.Y == ps.lastY {
		return
	}
	ps.lastX = e.X
	ps.lastY = e.Y

	// Pinch pointers never pan; a second touch means a pinch is coming.
	if g.pinch.active || (slot > 0 && g.touchCount() > 1) {
		return
	}
	if g.pan.active && g.pan.slot != slot {
		return
	}

	dx := e.X - ps.startX
	dy := e.Y - ps.startY
	if !ps.dragging {
		if math.Sqrt(dx*dx+dy*dy) <= g.deadZone {
			return
		}
		ps.dragging = true
		g.pan = panState{active: true, slot: slot}
		g.emit(GestureEvent{
			Kind:      GesturePanUpdate,
			MovementX: dx, MovementY: dy,
			OriginX: ps.startX, OriginY: ps.startY, HasOrigin: true,
			First:     true,
			Modifiers: e.Modifiers,
			Time:      e.Time,
		})
		return
	}
	g.emit(GestureEvent{
		Kind:      GesturePanUpdate,
		MovementX: dx, MovementY: dy,
		OriginX: ps.startX, OriginY: ps.startY, HasOrigin: true,
		Modifiers: e.Modifiers,
		Time:      e.Time,
	})
}

func (g *GestureInterpreter) release(slot int, e InputEvent) {
	ps := &g.pointers[slot]
	if !ps.down {
		return
	}
	switch {
	case g.pan.active && g.pan.slot == slot:
		g.pan = panState{}
		g.emit(GestureEvent{
			Kind:      GesturePanEnd,
			MovementX: ps.lastX - ps.startX, MovementY: ps.lastY - ps.startY,
			Modifiers: e.Modifiers,
			Time:      e.Time,
		})
	case !ps.dragging && !ps.noTap && !g.pinch.active:
		g.emit(GestureEvent{
			Kind:    GestureTap,
			OriginX: e.X, OriginY: e.Y, HasOrigin: true,
			Modifiers: e.Modifiers,
			Time:      e.Time,
		})
	}
	*ps = pointerState{}
}

// --- Pinch detection ---

// detectPinch starts or advances a two-finger pinch after a touch event.
func (g *GestureInterpreter) detectPinch(e InputEvent) {
	if g.pinch.active && g.pinch.wheel {
		return
	}

	if !g.pinch.active {
		if g.touchCount() < 2 {
			return
		}
		var p [2]int
		found := 0
		for i := 1; i < maxPointers && found < 2; i++ {
			if g.pointers[i].down {
				p[found] = i
				found++
			}
		}
		// A pan in progress yields to the pinch.
		if g.pan.active {
			ps := &g.pointers[g.pan.slot]
			g.pan = panState{}
			g.emit(GestureEvent{
				Kind:      GesturePanEnd,
				MovementX: ps.lastX - ps.startX, MovementY: ps.lastY - ps.startY,
				Time:      e.Time,
			})
		}
		ps0, ps1 := &g.pointers[p[0]], &g.pointers[p[1]]
		ps0.dragging, ps1.dragging = false, false
		ps0.noTap, ps1.noTap = true, true
		dist, origin := pinchGeometry(ps0, ps1)
		g.pinch = pinchState{
			active:      true,
			pointer0:    p[0],
			pointer1:    p[1],
			initialDist: dist,
			origin:      origin,
			hasOrigin:   dist > 0,
			mods:        e.Modifiers,
		}
		return
	}

	slot := g.touchSlot(e.PointerID, false)
	if e.Kind == InputTouchMove && (slot == g.pinch.pointer0 || slot == g.pinch.pointer1) {
		g.pinch.mods = e.Modifiers
		g.pinch.dirty = true
	}
}

// refreshPinch recomputes movement and origin from the two pinch fingers.
// It reports false if one of them is no longer down.
func (g *GestureInterpreter) refreshPinch() bool {
	ps0, ps1 := &g.pointers[g.pinch.pointer0], &g.pointers[g.pinch.pointer1]
	if !ps0.down || !ps1.down {
		g.pinch.hasOrigin = false
		return false
	}
	dist, origin := pinchGeometry(ps0, ps1)
	g.pinch.movement = dist - g.pinch.initialDist
	g.pinch.origin = origin
	g.pinch.hasOrigin = dist > 0
	return true
}

// pinchFrame emits a pinch update for the current finger positions.
func (g *GestureInterpreter) pinchFrame(now time.Time) {
	if !g.refreshPinch() {
		// Lost one of the two points: emit a frame without origin.
		g.emit(GestureEvent{Kind: GesturePinchUpdate, MovementX: g.pinch.movement, Time: now})
		return
	}
	g.emit(GestureEvent{
		Kind:      GesturePinchUpdate,
		MovementX: g.pinch.movement,
		OriginX:   g.pinch.origin.X, OriginY: g.pinch.origin.Y,
		HasOrigin: g.pinch.hasOrigin,
		Modifiers: g.pinch.mods,
		Time:      now,
	})
}

// pinchGeometry returns the distance between two pointers and their midpoint.
func pinchGeometry(a, b *pointerState) (float64, Vec2) {
	dx := b.lastX - a.lastX
	dy := b.lastY - a.lastY
	return math.Sqrt(dx*dx + dy*dy), Vec2{X: (a.lastX + b.lastX) / 2, Y: (a.lastY + b.lastY) / 2}
}

// wheel handles ctrl+wheel as an emulated pinch centered on the pointer.
func (g *GestureInterpreter) wheel(e InputEvent) {
	if !e.Modifiers.Has(ModCtrl) {
		return
	}
	if g.pinch.active && !g.pinch.wheel {
		return
	}
	if !g.pinch.active {
		if g.pan.active {
			return
		}
		g.pinch = pinchState{active: true, wheel: true}
	}
	g.pinch.movement -= e.WheelY
	g.pinch.origin = Vec2{X: e.X, Y: e.Y}
	g.pinch.hasOrigin = true
	g.pinch.lastWheel = e.Time
	g.pinch.mods = e.Modifiers
	g.emit(GestureEvent{
		Kind:      GesturePinchUpdate,
		MovementX: g.pinch.movement,
		OriginX:   e.X, OriginY: e.Y, HasOrigin: true,
		Ctrl:      true,
		Modifiers: e.Modifiers,
		Time:      e.Time,
	})
}

// endPinch emits the terminal pinch frame followed by PinchEnd, then makes
// any remaining touch pan-eligible from its current position.
func (g *GestureInterpreter) endPinch(now time.Time) {
	if !g.pinch.wheel {
		g.refreshPinch()
	}
	p := g.pinch
	g.pinch = pinchState{}
	g.emit(GestureEvent{
		Kind:      GesturePinchUpdate,
		MovementX: p.movement,
		OriginX:   p.origin.X, OriginY: p.origin.Y,
		HasOrigin: p.hasOrigin,
		Ctrl:      p.wheel,
		Final:     true,
		Modifiers: p.mods,
		Time:      now,
	})
	g.emit(GestureEvent{Kind: GesturePinchEnd, Ctrl: p.wheel, Modifiers: p.mods, Time: now})

	for i := 1; i < maxPointers; i++ {
		ps := &g.pointers[i]
		if ps.down {
			ps.startX, ps.startY = ps.lastX, ps.lastY
			ps.dragging = false
		}
	}
}

// cancel ends every gesture in progress and forgets all pointers.
func (g *GestureInterpreter) cancel(now time.Time) {
	if g.pinch.active {
		g.endPinch(now)
	}
	if g.pan.active {
		g.pan = panState{}
		g.emit(GestureEvent{Kind: GesturePanEnd, Time: now})
	}
	g.Reset()
}
