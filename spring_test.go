package pinchzoom

import (
	"math"
	"testing"
)

func newTestSpring() *TransformSpring {
	return NewTransformSpring(DefaultSpringConfig(), DefaultMinScale, DefaultMaxScale)
}

// settle runs the spring at 60 fps for up to seconds and returns the number
// of frames until rest, or -1.
func settle(s *TransformSpring, seconds float64) int {
	frames := int(seconds * 60)
	for i := 0; i < frames; i++ {
		s.Update(1.0 / 60)
		if s.AtRest() {
			return i + 1
		}
	}
	return -1
}

func TestSpringStartsAtRestOnIdentity(t *testing.T) {
	s := newTestSpring()
	if !s.AtRest() {
		t.Error("new spring should be at rest")
	}
	if s.Current() != Identity || s.Goal() != Identity {
		t.Errorf("Current = %+v, Goal = %+v, want Identity", s.Current(), s.Goal())
	}
}

func TestSpringConvergesAndRestsOnce(t *testing.T) {
	s := newTestSpring()
	rests := 0
	frames := 0
	s.OnRest(func(Transform) { rests++ })
	s.OnFrame(func(Transform) { frames++ })

	goal := Transform{Scale: 2, X: -150, Y: 80}
	s.SetGoal(goal, GoalOptions{})
	if s.AtRest() {
		t.Fatal("spring at rest right after SetGoal")
	}
	n := settle(s, 3)
	if n < 0 {
		t.Fatalf("spring did not settle, current %+v", s.Current())
	}
	if s.Current() != goal {
		t.Errorf("Current = %+v, want exactly %+v after rest", s.Current(), goal)
	}
	if rests != 1 {
		t.Errorf("OnRest fired %d times, want 1", rests)
	}
	if frames != n {
		t.Errorf("OnFrame fired %d times, want %d", frames, n)
	}

	// Further updates at rest do nothing.
	s.Update(1.0 / 60)
	if rests != 1 || frames != n {
		t.Errorf("callbacks fired while at rest: rests=%d frames=%d", rests, frames)
	}
}

func TestSpringDoesNotOvershootScale(t *testing.T) {
	s := newTestSpring()
	s.SetGoal(Transform{Scale: 3}, GoalOptions{})
	peak := 0.0
	for i := 0; i < 180; i++ {
		peak = math.Max(peak, s.Update(1.0/60).Scale)
	}
	if peak > 3.001 {
		t.Errorf("peak scale = %v, want no visible overshoot", peak)
	}
}

func TestSpringFrameRateIndependent(t *testing.T) {
	a := newTestSpring()
	b := newTestSpring()
	goal := Transform{Scale: 2.5, X: 200, Y: -90}
	a.SetGoal(goal, GoalOptions{})
	b.SetGoal(goal, GoalOptions{})
	for i := 0; i < 30; i++ {
		a.Update(1.0 / 60)
	}
	for i := 0; i < 60; i++ {
		b.Update(1.0 / 120)
	}
	if !a.Current().near(b.Current(), 0.05) {
		t.Errorf("60fps %+v differs from 120fps %+v", a.Current(), b.Current())
	}
}

func TestSpringSetGoalSanitizes(t *testing.T) {
	tests := []struct {
		name string
		goal Transform
		opts GoalOptions
		want Transform
	}{
		{"above max", Transform{Scale: 5, X: 10}, GoalOptions{}, Transform{Scale: 3, X: 10}},
		{"below one", Transform{Scale: 0.7, X: 10}, GoalOptions{}, Identity},
		{"below one pinching", Transform{Scale: 0.7}, GoalOptions{Pinching: true}, Transform{Scale: 0.7}},
		{"below min pinching", Transform{Scale: 0.2}, GoalOptions{Pinching: true}, Transform{Scale: 0.5}},
		{"NaN", Transform{Scale: math.NaN()}, GoalOptions{}, Identity},
		{"infinite translate", Transform{Scale: 2, X: math.Inf(1)}, GoalOptions{}, Identity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSpring()
			if got := s.SetGoal(tt.goal, tt.opts); got != tt.want {
				t.Errorf("SetGoal returned %+v, want %+v", got, tt.want)
			}
			if s.Goal() != tt.want {
				t.Errorf("Goal = %+v, want %+v", s.Goal(), tt.want)
			}
		})
	}
}

func TestSpringSameGoalKeepsRest(t *testing.T) {
	s := newTestSpring()
	s.SetGoal(Identity, GoalOptions{})
	if !s.AtRest() {
		t.Error("setting the resting goal again woke the spring")
	}
}

func TestSpringImmediate(t *testing.T) {
	s := newTestSpring()
	rests := 0
	s.OnRest(func(Transform) { rests++ })
	goal := Transform{Scale: 2, X: 30, Y: 40}
	s.SetGoal(goal, GoalOptions{Immediate: true})
	if s.Current() != goal || !s.AtRest() {
		t.Errorf("Current = %+v, AtRest = %v, want %+v at rest", s.Current(), s.AtRest(), goal)
	}
	if rests != 0 {
		t.Errorf("Immediate goal fired OnRest %d times", rests)
	}
}

func TestSpringZeroDelta(t *testing.T) {
	s := newTestSpring()
	s.SetGoal(Transform{Scale: 2}, GoalOptions{})
	called := false
	s.OnFrame(func(Transform) { called = true })
	if got := s.Update(0); got != Identity {
		t.Errorf("Update(0) = %+v, want Identity", got)
	}
	if called {
		t.Error("OnFrame fired for a zero delta")
	}
}

func TestSpringStalledFrameIsCapped(t *testing.T) {
	s := newTestSpring()
	s.SetGoal(Transform{Scale: 3, X: 500}, GoalOptions{})
	cur := s.Update(30)
	if !cur.Finite() {
		t.Fatalf("Update(30) = %+v, want finite", cur)
	}
	if s.AtRest() {
		t.Error("one stalled frame should advance at most maxFrameDelta")
	}
	if cur.Scale >= 3 {
		t.Errorf("Scale = %v, expected still approaching 3", cur.Scale)
	}
}

func TestSpringGoalChangeFromOnFrame(t *testing.T) {
	s := newTestSpring()
	s.SetGoal(Transform{Scale: 2}, GoalOptions{})
	redirected := false
	s.OnFrame(func(cur Transform) {
		if !redirected && cur.Scale > 1.5 {
			redirected = true
			s.SetGoal(Identity, GoalOptions{})
		}
	})
	var last Transform
	s.OnRest(func(cur Transform) { last = cur })
	if settle(s, 5) < 0 {
		t.Fatal("spring did not settle")
	}
	if !redirected || last != Identity {
		t.Errorf("rested at %+v, want Identity after redirect", last)
	}
}
