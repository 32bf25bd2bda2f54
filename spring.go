package pinchzoom

import "math"

const (
	// springStep is the fixed integration step in seconds. Frames are
	// subdivided into steps of this size so the result does not depend on
	// the display refresh rate.
	springStep = 0.001
	// maxFrameDelta caps a single Update so a stalled frame cannot make the
	// integrator explode.
	maxFrameDelta = 0.1
)

// springField is one independently animated value.
type springField struct {
	value    float64
	velocity float64
	goal     float64
}

// step advances the field by dt seconds using semi-implicit Euler
// integration of a damped harmonic oscillator.
func (f *springField) step(cfg SpringConfig, dt float64) {
	accel := (f.goal-f.value)*cfg.Tension/cfg.Mass - f.velocity*cfg.Friction/cfg.Mass
	f.velocity += accel * dt
	f.value += f.velocity * dt
}

// settled reports whether the field is within precision of its goal and
// nearly still.
func (f *springField) settled(precision float64) bool {
	return math.Abs(f.goal-f.value) < precision && math.Abs(f.velocity) < precision
}

// GoalOptions modify how TransformSpring.SetGoal treats a goal.
type GoalOptions struct {
	// Pinching allows a goal scale below 1 while a pinch is held. Without
	// it such goals snap back to Identity.
	Pinching bool
	// Immediate jumps the live value to the goal without animating.
	Immediate bool
}

// TransformSpring owns the live Transform of an image and animates it toward
// a goal, one spring per field. Only SetGoal, Jump and Update change it.
type TransformSpring struct {
	cfg                SpringConfig
	minScale, maxScale float64

	fields  [3]springField // scale, x, y
	resting bool

	onFrame func(Transform)
	onRest  func(Transform)
}

// NewTransformSpring returns a spring resting at Identity. Goal scales are
// clamped to [minScale, maxScale].
func NewTransformSpring(cfg SpringConfig, minScale, maxScale float64) *TransformSpring {
	s := &TransformSpring{
		cfg:      cfg,
		minScale: minScale,
		maxScale: maxScale,
	}
	s.Jump(Identity)
	return s
}

// OnFrame sets the callback invoked after every Update that moved the value.
// The callback may call SetGoal; the new goal applies from the next frame.
func (s *TransformSpring) OnFrame(fn func(Transform)) {
	s.onFrame = fn
}

// OnRest sets the callback invoked once each time the spring settles.
func (s *TransformSpring) OnRest(fn func(Transform)) {
	s.onRest = fn
}

// SetGoal replaces the current goal. The goal scale is clamped to the
// spring's range; a goal below scale 1 without opts.Pinching, or any
// non-finite goal, becomes Identity. It returns the goal actually applied.
func (s *TransformSpring) SetGoal(goal Transform, opts GoalOptions) Transform {
	goal = s.sanitize(goal, opts.Pinching)
	if opts.Immediate {
		s.Jump(goal)
		return goal
	}
	if goal == s.Goal() {
		return goal
	}
	s.fields[0].goal = goal.Scale
	s.fields[1].goal = goal.X
	s.fields[2].goal = goal.Y
	s.resting = false
	return goal
}

func (s *TransformSpring) sanitize(goal Transform, pinching bool) Transform {
	if !goal.Finite() {
		return Identity
	}
	goal.Scale = clamp(goal.Scale, s.minScale, s.maxScale)
	if goal.Scale < 1 && !pinching {
		return Identity
	}
	return goal
}

// Jump sets both live value and goal to t and stops all motion. It does not
// fire OnRest.
func (s *TransformSpring) Jump(t Transform) {
	if !t.Finite() {
		t = Identity
	}
	s.fields[0] = springField{value: t.Scale, goal: t.Scale}
	s.fields[1] = springField{value: t.X, goal: t.X}
	s.fields[2] = springField{value: t.Y, goal: t.Y}
	s.resting = true
}

// Goal returns the transform the spring is moving toward.
func (s *TransformSpring) Goal() Transform {
	return Transform{Scale: s.fields[0].goal, X: s.fields[1].goal, Y: s.fields[2].goal}
}

// Current returns the live interpolated transform.
func (s *TransformSpring) Current() Transform {
	return Transform{Scale: s.fields[0].value, X: s.fields[1].value, Y: s.fields[2].value}
}

// AtRest reports whether every field has settled on its goal.
func (s *TransformSpring) AtRest() bool {
	return s.resting
}

// Update advances the spring by dt seconds and returns the live transform.
func (s *TransformSpring) Update(dt float64) Transform {
	if s.resting || dt <= 0 {
		return s.Current()
	}
	dt = math.Min(dt, maxFrameDelta)

	for remaining := dt; remaining > 0; remaining -= springStep {
		h := math.Min(springStep, remaining)
		for i := range s.fields {
			s.fields[i].step(s.cfg, h)
		}
	}

	settled := true
	for i := range s.fields {
		if !s.fields[i].settled(s.cfg.Precision) {
			settled = false
			break
		}
	}
	if settled {
		for i := range s.fields {
			s.fields[i].value = s.fields[i].goal
			s.fields[i].velocity = 0
		}
	}

	cur := s.Current()
	if !cur.Finite() {
		s.Jump(Identity)
		cur = Identity
		settled = true
	}

	if s.onFrame != nil {
		s.onFrame(cur)
	}
	// OnFrame may have set a new goal.
	if settled && s.Goal() == cur {
		s.resting = true
		if s.onRest != nil {
			s.onRest(cur)
		}
	}
	return s.Current()
}
