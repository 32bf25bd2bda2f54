package pinchzoom

import (
	"encoding/json"
	"fmt"
	"time"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action    string  `json:"action"`
	Label     string  `json:"label,omitempty"`
	X         float64 `json:"x,omitempty"`
	Y         float64 `json:"y,omitempty"`
	FromX     float64 `json:"fromX,omitempty"`
	FromY     float64 `json:"fromY,omitempty"`
	ToX       float64 `json:"toX,omitempty"`
	ToY       float64 `json:"toY,omitempty"`
	StartDist float64 `json:"startDist,omitempty"`
	EndDist   float64 `json:"endDist,omitempty"`
	Delta     float64 `json:"delta,omitempty"`
	Count     int     `json:"count,omitempty"`
	Frames    int     `json:"frames,omitempty"`
	Millis    int     `json:"ms,omitempty"`
}

// script is the top-level JSON structure for a gesture script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var knownActions = map[string]bool{
	"tap": true, "doubletap": true, "drag": true, "pinch": true,
	"wheel": true, "wait": true, "screenshot": true, "reset": true,
}

// ScriptRunner replays a gesture script against a Viewer, one step at a
// time, for demos and automated checks.
//
// A script is JSON of the form
//
//	{"steps": [
//	  {"action": "doubletap", "x": 400, "y": 300},
//	  {"action": "wait", "frames": 60},
//	  {"action": "drag", "fromX": 400, "fromY": 300, "toX": 350, "toY": 300, "frames": 10},
//	  {"action": "pinch", "x": 400, "y": 300, "startDist": 100, "endDist": 50, "frames": 8},
//	  {"action": "wheel", "x": 400, "y": 300, "delta": -100, "count": 3},
//	  {"action": "wait", "ms": 500},
//	  {"action": "screenshot", "label": "zoomed"}
//	]}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	waitUntil time.Time
	done      bool

	onScreenshot func(label string)
}

// LoadScript parses a JSON gesture script and returns a runner for it.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("pinchzoom: parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("pinchzoom: parse script: no steps")
	}
	for i, st := range s.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("pinchzoom: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// OnScreenshot sets the callback run for "screenshot" steps.
func (r *ScriptRunner) OnScreenshot(fn func(label string)) {
	r.onScreenshot = fn
}

// Done reports whether every step has been executed and its input drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame. Call it before Viewer.Update.
func (r *ScriptRunner) Step(v *Viewer, now time.Time) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if v.Pending() {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if !r.waitUntil.IsZero() {
		if now.Before(r.waitUntil) {
			return
		}
		r.waitUntil = time.Time{}
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "tap":
		v.InjectTap(st.X, st.Y)
	case "doubletap":
		v.InjectDoubleTap(st.X, st.Y)
	case "drag":
		v.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "pinch":
		v.InjectPinch(st.X, st.Y, st.StartDist, st.EndDist, max(st.Frames, 1))
	case "wheel":
		v.InjectWheelPinch(st.X, st.Y, st.Delta, max(st.Count, 1))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
		if st.Millis > 0 {
			r.waitUntil = now.Add(time.Duration(st.Millis) * time.Millisecond)
		}
	case "screenshot":
		if r.onScreenshot != nil {
			r.onScreenshot(st.Label)
		}
	case "reset":
		v.Reset()
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.waitUntil.IsZero() && !v.Pending() {
		r.done = true
	}
}
