package pinchzoom

import (
	"math"
	"time"
)

// Vec2 is a 2D vector used for positions, offsets and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left of the container, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Transform is the scale and translation applied to the displayed image.
// Translation is applied after scaling around the image center, matching
// `translate(X, Y) scale(Scale)` with a centered origin.
type Transform struct {
	Scale float64
	X, Y  float64
}

// Identity is the resting transform of an image that is neither zoomed nor
// panned.
var Identity = Transform{Scale: 1}

// IsIdentity reports whether t equals Identity exactly.
func (t Transform) IsIdentity() bool {
	return t == Identity
}

// Finite reports whether every field of t is a finite number.
func (t Transform) Finite() bool {
	return finite(t.Scale) && finite(t.X) && finite(t.Y)
}

// Translate returns the translation component of t.
func (t Transform) Translate() Vec2 {
	return Vec2{X: t.X, Y: t.Y}
}

// near reports whether every field of a and b is within eps.
func (t Transform) near(o Transform, eps float64) bool {
	return math.Abs(t.Scale-o.Scale) <= eps &&
		math.Abs(t.X-o.X) <= eps &&
		math.Abs(t.Y-o.Y) <= eps
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Has reports whether every modifier in m is set.
func (k KeyModifiers) Has(m KeyModifiers) bool {
	return k&m == m
}

// InputKind identifies a raw input event delivered by the host toolkit.
type InputKind uint8

const (
	InputPointerDown InputKind = iota // mouse or pen button pressed
	InputPointerMove                  // mouse or pen moved, pressed or not
	InputPointerUp                    // mouse or pen button released
	InputTouchStart                   // a finger touched the surface
	InputTouchMove                    // a finger moved
	InputTouchEnd                     // a finger lifted
	InputWheel                        // wheel or trackpad scroll
	InputCancel                       // the host aborted every active pointer
)

// InputEvent is one raw input sample. Positions are in container-local
// coordinates. Touch events carry one touch point each, identified by
// PointerID.
type InputEvent struct {
	Kind      InputKind
	PointerID int
	X, Y      float64
	// WheelX and WheelY are the scroll deltas of an InputWheel event.
	WheelX, WheelY float64
	Modifiers      KeyModifiers
	Time           time.Time
}

// GestureKind identifies a higher-level gesture event.
type GestureKind uint8

const (
	GesturePinchUpdate GestureKind = iota // a pinch moved
	GesturePinchEnd                       // a pinch finished
	GesturePanUpdate                      // a single-pointer drag moved
	GesturePanEnd                         // a single-pointer drag finished
	GestureTap                            // press and release without dragging
)

func (k GestureKind) String() string {
	switch k {
	case GesturePinchUpdate:
		return "pinch"
	case GesturePinchEnd:
		return "pinch-end"
	case GesturePanUpdate:
		return "pan"
	case GesturePanEnd:
		return "pan-end"
	case GestureTap:
		return "tap"
	default:
		return "unknown"
	}
}

// GestureEvent is emitted by a GestureInterpreter. Movement is cumulative
// from the start of the gesture. For pinches MovementX is the change in
// finger distance (or accumulated wheel delta) in pixels.
type GestureEvent struct {
	Kind GestureKind

	MovementX, MovementY float64
	// Origin is the pinch midpoint (touch) or pointer position (wheel), and
	// the tap position for GestureTap. HasOrigin is false when the pinch
	// frame arrived without a usable two-point origin.
	OriginX, OriginY float64
	HasOrigin        bool

	// Ctrl is set for pinches emulated with ctrl+wheel.
	Ctrl bool
	// Final marks the terminal frame of a pinch.
	Final bool
	// First marks the first frame of a pan.
	First bool

	Modifiers KeyModifiers
	Time      time.Time
}

// IntentKind distinguishes single from double clicks.
type IntentKind uint8

const (
	IntentSingleClick IntentKind = iota
	IntentDoubleClick
)

func (k IntentKind) String() string {
	if k == IntentDoubleClick {
		return "double-click"
	}
	return "single-click"
}

// ZoomIntent is the result of click disambiguation.
type ZoomIntent struct {
	Kind      IntentKind
	X, Y      float64
	Modifiers KeyModifiers
}
