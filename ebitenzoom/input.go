package ebitenzoom

import (
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/pinchzoom"
)

// DefaultWheelScale converts one Ebitengine wheel step into the pixel-like
// delta a browser reports for one notch.
const DefaultWheelScale = 100

type point struct {
	x, y int
}

type touchSample struct {
	id ebiten.TouchID
	point
}

// snapshot is the raw input state of one tick.
type snapshot struct {
	mouse     point
	mouseDown bool
	touches   []touchSample
	wheelX    float64
	wheelY    float64
	mods      pinchzoom.KeyModifiers
}

// Input polls Ebitengine's mouse, touch and wheel state once per tick and
// turns what changed into pinchzoom input events.
type Input struct {
	// OffsetX and OffsetY locate the container's top-left corner on screen.
	// Events are reported relative to it.
	OffsetX, OffsetY float64
	// WheelScale multiplies wheel deltas. Zero means DefaultWheelScale.
	WheelScale float64

	mouseDown bool
	mouse     point
	touches   map[ebiten.TouchID]point
	touchIDs  []ebiten.TouchID
	out       []pinchzoom.InputEvent
}

// NewInput returns an Input with no pointers down.
func NewInput() *Input {
	return &Input{
		WheelScale: DefaultWheelScale,
		touches:    make(map[ebiten.TouchID]point),
	}
}

// Poll reads the current input state and returns the events since the
// previous Poll, stamped with now. Call it once from Game.Update. The
// returned slice is reused by the next call.
func (in *Input) Poll(now time.Time) []pinchzoom.InputEvent {
	return in.events(in.snapshot(), now)
}

func (in *Input) snapshot() snapshot {
	mx, my := ebiten.CursorPosition()
	wx, wy := ebiten.Wheel()
	s := snapshot{
		mouse:     point{mx, my},
		mouseDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		wheelX:    wx,
		wheelY:    wy,
		mods:      readModifiers(),
	}
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	for _, id := range in.touchIDs {
		x, y := ebiten.TouchPosition(id)
		s.touches = append(s.touches, touchSample{id: id, point: point{x, y}})
	}
	return s
}

// events diffs s against the previous tick.
func (in *Input) events(s snapshot, now time.Time) []pinchzoom.InputEvent {
	in.out = in.out[:0]
	if in.touches == nil {
		in.touches = make(map[ebiten.TouchID]point)
	}

	// Mouse (pointer 0).
	switch {
	case s.mouseDown && !in.mouseDown:
		in.emit(pinchzoom.InputPointerDown, 0, s.mouse, s.mods, now)
	case s.mouseDown && s.mouse != in.mouse:
		in.emit(pinchzoom.InputPointerMove, 0, s.mouse, s.mods, now)
	case !s.mouseDown && in.mouseDown:
		in.emit(pinchzoom.InputPointerUp, 0, s.mouse, s.mods, now)
	}
	in.mouseDown = s.mouseDown
	in.mouse = s.mouse

	// Touches: lifted fingers first, then new and moved ones.
	var ended []ebiten.TouchID
	for id := range in.touches {
		if !slices.ContainsFunc(s.touches, func(t touchSample) bool { return t.id == id }) {
			ended = append(ended, id)
		}
	}
	slices.Sort(ended)
	for _, id := range ended {
		in.emit(pinchzoom.InputTouchEnd, int(id), in.touches[id], s.mods, now)
		delete(in.touches, id)
	}
	for _, t := range s.touches {
		prev, ok := in.touches[t.id]
		switch {
		case !ok:
			in.emit(pinchzoom.InputTouchStart, int(t.id), t.point, s.mods, now)
		case prev != t.point:
			in.emit(pinchzoom.InputTouchMove, int(t.id), t.point, s.mods, now)
		}
		in.touches[t.id] = t.point
	}

	// Wheel. Ebitengine reports scrolling up as positive; pinchzoom follows
	// the browser convention where scrolling up is negative.
	if s.wheelX != 0 || s.wheelY != 0 {
		scale := in.WheelScale
		if scale == 0 {
			scale = DefaultWheelScale
		}
		e := in.event(pinchzoom.InputWheel, 0, s.mouse, s.mods, now)
		e.WheelX = -s.wheelX * scale
		e.WheelY = -s.wheelY * scale
		in.out = append(in.out, e)
	}
	return in.out
}

func (in *Input) event(kind pinchzoom.InputKind, id int, p point, mods pinchzoom.KeyModifiers, now time.Time) pinchzoom.InputEvent {
	return pinchzoom.InputEvent{
		Kind:      kind,
		PointerID: id,
		X:         float64(p.x) - in.OffsetX,
		Y:         float64(p.y) - in.OffsetY,
		Modifiers: mods,
		Time:      now,
	}
}

func (in *Input) emit(kind pinchzoom.InputKind, id int, p point, mods pinchzoom.KeyModifiers, now time.Time) {
	in.out = append(in.out, in.event(kind, id, p, mods, now))
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() pinchzoom.KeyModifiers {
	var mods pinchzoom.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= pinchzoom.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= pinchzoom.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= pinchzoom.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= pinchzoom.ModMeta
	}
	return mods
}
