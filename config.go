package pinchzoom

import (
	"errors"
	"fmt"
	"time"
)

// Default tuning values.
const (
	DefaultMinScale          = 0.5
	DefaultMaxScale          = 3.0
	DefaultDoubleClickWindow = 200 * time.Millisecond
	DefaultTouchPinchFactor  = 250.0  // pixels of finger travel per unit of scale
	DefaultWheelPinchFactor  = 1000.0 // wheel units per unit of scale
	DefaultDragDeadZone      = 4.0    // pixels
	DefaultWheelIdle         = 150 * time.Millisecond
	// DefaultTallRatio is the height/width ratio above which double-click
	// zoom uses MagnifierValue instead of a single step.
	DefaultTallRatio = 2.0
)

// SpringConfig tunes the damped harmonic oscillator driving each transform
// field. Precision is the rest epsilon: a field is at rest once both its
// distance to the goal and its velocity fall below it.
type SpringConfig struct {
	Mass      float64
	Tension   float64
	Friction  float64
	Precision float64
}

// DefaultSpringConfig returns the standard spring tuning (tension 170,
// friction 26, mass 1) with a 0.01 rest precision.
func DefaultSpringConfig() SpringConfig {
	return SpringConfig{Mass: 1, Tension: 170, Friction: 26, Precision: 0.01}
}

// Config holds every behavioral setting of a Viewer. It is read once by
// NewViewer; later changes have no effect on an existing viewer.
type Config struct {
	// SingleClickToZoom makes every click toggle zoom immediately instead of
	// waiting DoubleClickWindow for a second click.
	SingleClickToZoom bool
	DoubleClickWindow time.Duration

	MinScale, MaxScale float64

	TouchPinchFactor float64
	WheelPinchFactor float64
	// DragDeadZone is the minimum pointer travel in pixels before a press
	// becomes a pan instead of a tap.
	DragDeadZone float64
	// WheelIdle ends a ctrl+wheel pinch after this long without wheel input.
	WheelIdle time.Duration
	TallRatio float64

	Spring SpringConfig
}

// DefaultConfig returns a Config populated with the default values.
func DefaultConfig() Config {
	return Config{
		DoubleClickWindow: DefaultDoubleClickWindow,
		MinScale:          DefaultMinScale,
		MaxScale:          DefaultMaxScale,
		TouchPinchFactor:  DefaultTouchPinchFactor,
		WheelPinchFactor:  DefaultWheelPinchFactor,
		DragDeadZone:      DefaultDragDeadZone,
		WheelIdle:         DefaultWheelIdle,
		TallRatio:         DefaultTallRatio,
		Spring:            DefaultSpringConfig(),
	}
}

// withDefaults returns c with every zero field replaced by its default.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.DoubleClickWindow == 0 {
		c.DoubleClickWindow = d.DoubleClickWindow
	}
	if c.MinScale == 0 {
		c.MinScale = d.MinScale
	}
	if c.MaxScale == 0 {
		c.MaxScale = d.MaxScale
	}
	if c.TouchPinchFactor == 0 {
		c.TouchPinchFactor = d.TouchPinchFactor
	}
	if c.WheelPinchFactor == 0 {
		c.WheelPinchFactor = d.WheelPinchFactor
	}
	if c.DragDeadZone == 0 {
		c.DragDeadZone = d.DragDeadZone
	}
	if c.WheelIdle == 0 {
		c.WheelIdle = d.WheelIdle
	}
	if c.TallRatio == 0 {
		c.TallRatio = d.TallRatio
	}
	if c.Spring.Mass == 0 {
		c.Spring.Mass = d.Spring.Mass
	}
	if c.Spring.Tension == 0 {
		c.Spring.Tension = d.Spring.Tension
	}
	if c.Spring.Friction == 0 {
		c.Spring.Friction = d.Spring.Friction
	}
	if c.Spring.Precision == 0 {
		c.Spring.Precision = d.Spring.Precision
	}
	return c
}

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("pinchzoom: invalid config")

// Validate reports the first invalid setting in c after defaults are
// applied. A Viewer built from an invalid Config falls back to
// DefaultConfig.
func (c Config) Validate() error {
	c = c.withDefaults()
	switch {
	case c.MinScale <= 0 || !finite(c.MinScale):
		return fmt.Errorf("%w: MinScale %v must be positive", ErrInvalidConfig, c.MinScale)
	case c.MaxScale < 1 || !finite(c.MaxScale):
		return fmt.Errorf("%w: MaxScale %v must be at least 1", ErrInvalidConfig, c.MaxScale)
	case c.MinScale > 1:
		return fmt.Errorf("%w: MinScale %v must not exceed 1", ErrInvalidConfig, c.MinScale)
	case c.DoubleClickWindow < 0:
		return fmt.Errorf("%w: DoubleClickWindow %v is negative", ErrInvalidConfig, c.DoubleClickWindow)
	case c.TouchPinchFactor < 0 || c.WheelPinchFactor < 0:
		return fmt.Errorf("%w: pinch factors must be positive", ErrInvalidConfig)
	case c.DragDeadZone < 0:
		return fmt.Errorf("%w: DragDeadZone %v is negative", ErrInvalidConfig, c.DragDeadZone)
	case c.Spring.Mass < 0 || c.Spring.Tension < 0 || c.Spring.Friction < 0:
		return fmt.Errorf("%w: spring mass, tension and friction must be positive", ErrInvalidConfig)
	case c.Spring.Precision < 0:
		return fmt.Errorf("%w: spring precision %v is negative", ErrInvalidConfig, c.Spring.Precision)
	}
	return nil
}
