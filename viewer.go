package pinchzoom

import "time"

// PanMemo holds the translation at the start of a pan. It lives exactly as
// long as one pan gesture.
type PanMemo struct {
	InitialTranslateX, InitialTranslateY float64
}

// pinchMemo holds the goal scale at the start of a pinch.
type pinchMemo struct {
	initialScale float64
}

// Viewer is the zoomable image of one pager page. It interprets input,
// keeps the transform goal valid, animates the live transform, and tells
// the pager when page dragging must stop.
//
// Feed input with HandleInput and call Update once per frame. A Viewer is
// not safe for concurrent use.
type Viewer struct {
	cfg Config

	img         Image
	metrics     ImageMetrics
	containerW  float64
	containerH  float64
	pagerHeight float64

	current       bool
	pagerDragging bool
	annotating    bool
	annotations   AnnotationLayer

	spring   *TransformSpring
	gestures *GestureInterpreter
	clicks   ClickDetector
	drag     *DragCoordinator

	pan          *PanMemo
	panCancelled bool
	pinch        *pinchMemo
	// gestureNoise is set while a pan or pinch has moved, so clicks that
	// belong to the gesture are not read as zoom intents.
	gestureNoise bool

	handlers    handlerRegistry
	lastUpdate  time.Time
	injectQueue [][]InputEvent
	debug       bool
}

// NewViewer returns a Viewer for the current page. cfg is read once; zero
// fields take their defaults and an invalid cfg falls back to
// DefaultConfig with the same SingleClickToZoom setting.
func NewViewer(cfg Config) *Viewer {
	if cfg.Validate() != nil {
		single := cfg.SingleClickToZoom
		cfg = DefaultConfig()
		cfg.SingleClickToZoom = single
	}
	cfg = cfg.withDefaults()

	v := &Viewer{cfg: cfg, current: true}
	v.spring = NewTransformSpring(cfg.Spring, cfg.MinScale, cfg.MaxScale)
	v.spring.OnFrame(v.onFrame)
	v.spring.OnRest(v.onRest)
	v.gestures = NewGestureInterpreter(cfg, v.onGesture)
	v.clicks = NewClickDetector(cfg, v.onIntent)
	v.drag = NewDragCoordinator(v.onDragChange)
	return v
}

// Config returns the configuration the viewer was built with.
func (v *Viewer) Config() Config {
	return v.cfg
}

// --- Pager-facing setters ---

// SetImage shows img. Changing the image discards all zoom, pan and gesture
// state.
func (v *Viewer) SetImage(img Image) {
	if img != v.img {
		v.Reset()
	}
	v.img = img
	v.relayout()
}

// Image returns the image being shown.
func (v *Viewer) Image() Image {
	return v.img
}

// SetContainer sets the size of the area the image is centered in.
func (v *Viewer) SetContainer(width, height float64) {
	v.containerW, v.containerH = width, height
	v.relayout()
}

// SetPagerHeight limits the displayed image height. Zero means no limit
// beyond the container.
func (v *Viewer) SetPagerHeight(h float64) {
	v.pagerHeight = h
	v.relayout()
}

func (v *Viewer) relayout() {
	v.metrics = FitMetrics(v.img, v.containerW, v.containerH, v.pagerHeight)
	if goal := v.spring.Goal(); goal.Scale > 1 && IsOutOfBounds(v.metrics, goal) {
		v.setGoal("out-of-bounds", Identity, GoalOptions{})
	}
}

// Metrics returns the current layout.
func (v *Viewer) Metrics() ImageMetrics {
	return v.metrics
}

// SetCurrent tells the viewer whether its page is the one shown by the
// pager. Leaving the current page resets the transform immediately.
func (v *Viewer) SetCurrent(current bool) {
	if v.current && !current {
		v.Reset()
	}
	v.current = current
}

// Current reports whether the viewer's page is the pager's current page.
func (v *Viewer) Current() bool {
	return v.current
}

// SetPagerDragging tells the viewer the pager is being dragged; clicks are
// ignored meanwhile.
func (v *Viewer) SetPagerDragging(dragging bool) {
	v.pagerDragging = dragging
}

// SetAnnotating switches clicks between zooming and OverlayClick events.
func (v *Viewer) SetAnnotating(annotating bool) {
	v.annotating = annotating
}

// SetAnnotations replaces the annotations drawn over the image.
func (v *Viewer) SetAnnotations(items []Annotation) {
	v.annotations.Set(items)
}

// --- State ---

// Transform returns the live transform for rendering.
func (v *Viewer) Transform() Transform {
	return v.spring.Current()
}

// Goal returns the transform the viewer is animating toward.
func (v *Viewer) Goal() Transform {
	return v.spring.Goal()
}

// Scale returns the live scale, for overlays that must stay in sync.
func (v *Viewer) Scale() float64 {
	return v.spring.Current().Scale
}

// AtRest reports whether the live transform has settled on its goal.
func (v *Viewer) AtRest() bool {
	return v.spring.AtRest()
}

// DragDisabled reports whether the pager must not start page drags.
func (v *Viewer) DragDisabled() bool {
	return v.drag.Disabled()
}

// Markers returns the annotation markers to draw this frame. Markers are
// only shown on the current page, while annotating, for supported file
// types.
func (v *Viewer) Markers() []Marker {
	if !v.current || !v.annotating || !IsSupportedFileType(v.img.FileType) {
		return nil
	}
	return v.annotations.Markers(v.metrics, v.spring.Current())
}

// --- Subscriptions ---

// OnRest registers fn to run each time the transform settles.
func (v *Viewer) OnRest(fn func(Transform)) Subscription {
	return addHandler(&v.handlers, &v.handlers.rest, eventRest, fn)
}

// OnFrame registers fn to run on every frame the transform moves.
func (v *Viewer) OnFrame(fn func(Transform)) Subscription {
	return addHandler(&v.handlers, &v.handlers.frame, eventFrame, fn)
}

// OnDragChange registers fn to run when page dragging is suspended (true)
// or resumed (false).
func (v *Viewer) OnDragChange(fn func(disabled bool)) Subscription {
	return addHandler(&v.handlers, &v.handlers.dragChange, eventDragChange, fn)
}

// OnOverlayClick registers fn to run when the image is clicked while
// annotating.
func (v *Viewer) OnOverlayClick(fn func(OverlayClick)) Subscription {
	return addHandler(&v.handlers, &v.handlers.overlayClick, eventOverlayClick, fn)
}

// OnIntent registers fn to run for every click intent, zooming or not.
func (v *Viewer) OnIntent(fn func(ZoomIntent)) Subscription {
	return addHandler(&v.handlers, &v.handlers.intent, eventIntent, fn)
}

// --- Input and frames ---

// HandleInput feeds one raw input event to the viewer. Input is ignored
// while the page is not current.
func (v *Viewer) HandleInput(e InputEvent) {
	if !v.current {
		return
	}
	v.gestures.Handle(e)
}

// Update advances timers and animation to now and returns the live
// transform. Call it once per frame.
func (v *Viewer) Update(now time.Time) Transform {
	var dt float64
	if !v.lastUpdate.IsZero() {
		dt = now.Sub(v.lastUpdate).Seconds()
	}
	v.lastUpdate = now

	v.processInjected(now)
	v.gestures.Update(now)
	v.clicks.Update(now)
	v.annotations.Update(float32(dt))
	return v.spring.Update(dt)
}

// Reset discards the pending click, every gesture session and the
// transform, returning the image to Identity at once.
func (v *Viewer) Reset() {
	v.clicks.Cancel()
	v.gestures.Reset()
	v.injectQueue = v.injectQueue[:0]
	v.pan = nil
	v.panCancelled = false
	v.pinch = nil
	v.gestureNoise = false
	// A viewer already resting at Identity has nothing to report.
	changed := v.spring.Current() != Identity || v.spring.Goal() != Identity || v.drag.Disabled()
	v.spring.Jump(Identity)
	if !changed {
		return
	}
	v.debugGoal("reset", Identity)
	v.onRest(Identity)
}

// ZoomToggle zooms out to Identity when zoomed, and otherwise zooms in
// toward container point (x, y). Tall images zoom further, see Magnifier.
func (v *Viewer) ZoomToggle(x, y float64) {
	goal := v.spring.Goal()
	if goal.Scale != 1 {
		v.setGoal("zoom-out", Identity, GoalOptions{})
		return
	}
	if !v.metrics.Valid() {
		return
	}
	mag := Magnifier(v.metrics.Ratio(), v.cfg.TallRatio)
	next := ZoomAt(v.metrics, goal, mag, Vec2{X: x, Y: y}, v.cfg.MinScale, v.cfg.MaxScale)
	next = ClampToBounds(v.metrics, next)
	v.drag.Suspend()
	v.setGoal("zoom-in", next, GoalOptions{})
}

func (v *Viewer) setGoal(reason string, t Transform, opts GoalOptions) {
	applied := v.spring.SetGoal(t, opts)
	v.debugGoal(reason, applied)
	// A goal equal to a resting Identity produces no rest event.
	if v.spring.AtRest() && v.spring.Current().Scale == 1 && !v.gestures.Pinching() {
		v.drag.Resume()
	}
}

// --- Gesture handling ---

func (v *Viewer) onGesture(ev GestureEvent) {
	v.debugGesture(ev)
	switch ev.Kind {
	case GesturePinchUpdate:
		v.onPinch(ev)
	case GesturePinchEnd:
		v.onPinchEnd()
	case GesturePanUpdate:
		v.onPan(ev)
	case GesturePanEnd:
		v.onPanEnd()
	case GestureTap:
		v.onTap(ev)
	}
}

func (v *Viewer) onPinch(ev GestureEvent) {
	v.drag.Suspend()
	if ev.MovementX != 0 {
		v.gestureNoise = true
	}
	// The terminal frame carries unreliable deltas; the last goal stands.
	if ev.Final || !ev.HasOrigin || !v.metrics.Valid() {
		return
	}

	goal := v.spring.Goal()
	if v.pinch == nil {
		v.pinch = &pinchMemo{initialScale: goal.Scale}
	}
	factor := v.cfg.TouchPinchFactor
	if ev.Ctrl {
		factor = v.cfg.WheelPinchFactor
	}
	target := v.pinch.initialScale + ev.MovementX/factor
	next := ZoomAt(v.metrics, goal, target-goal.Scale, Vec2{X: ev.OriginX, Y: ev.OriginY}, v.cfg.MinScale, v.cfg.MaxScale)
	next = ClampToBounds(v.metrics, next)
	v.setGoal("pinch", next, GoalOptions{Pinching: true})
}

func (v *Viewer) onPinchEnd() {
	v.pinch = nil
	v.gestureNoise = false
	goal := v.spring.Goal()
	if goal.Scale > 1 && !IsOutOfBounds(v.metrics, goal) {
		v.drag.Suspend()
		return
	}
	v.setGoal("pinch-end", Identity, GoalOptions{})
}

func (v *Viewer) onPan(ev GestureEvent) {
	if ev.MovementX != 0 || ev.MovementY != 0 {
		v.gestureNoise = true
	}
	goal := v.spring.Goal()
	if goal.Scale <= 1 {
		// Not zoomed in: the pager owns horizontal drags.
		return
	}
	v.drag.Suspend()

	if ev.First {
		v.pan = &PanMemo{InitialTranslateX: goal.X, InitialTranslateY: goal.Y}
		v.panCancelled = false
	}
	if v.pan == nil || v.panCancelled {
		return
	}
	candidate := Transform{
		Scale: goal.Scale,
		X:     v.pan.InitialTranslateX + ev.MovementX,
		Y:     v.pan.InitialTranslateY + ev.MovementY,
	}
	if IsOutOfBounds(v.metrics, candidate) {
		v.panCancelled = true
		v.debugf("pan cancelled: out of bounds")
		return
	}
	v.setGoal("pan", candidate, GoalOptions{})
}

func (v *Viewer) onPanEnd() {
	v.pan = nil
	v.panCancelled = false
	v.gestureNoise = false
	if v.spring.Goal().Scale <= 1 {
		v.drag.Resume()
	}
}

func (v *Viewer) onTap(ev GestureEvent) {
	if v.clickSuppressed() {
		return
	}
	if !HitImage(v.metrics, v.spring.Current(), ev.OriginX, ev.OriginY) {
		return
	}
	if v.annotating && !ev.Modifiers.Has(ModCtrl) && !ev.Modifiers.Has(ModMeta) {
		dispatch(v.handlers.overlayClick, overlayClickAt(v.metrics, v.spring.Current(), ev.OriginX, ev.OriginY, ev.Modifiers))
		return
	}
	v.clicks.Click(ev.OriginX, ev.OriginY, ev.Modifiers, ev.Time)
}

// clickSuppressed reports whether clicks are currently gesture noise.
func (v *Viewer) clickSuppressed() bool {
	return v.pagerDragging || v.gestureNoise || v.gestures.Active()
}

func (v *Viewer) onIntent(intent ZoomIntent) {
	dispatch(v.handlers.intent, intent)
	if intent.Kind != v.clicks.ZoomKind() || v.clickSuppressed() {
		return
	}
	v.ZoomToggle(intent.X, intent.Y)
}

// --- Spring callbacks ---

// onFrame resets a goal that no longer fits, as after the container shrinks.
// The goal is checked rather than cur: the in-bounds range jumps where the
// scaled image reaches the container size, so frames in flight between two
// valid goals may briefly fall outside it.
func (v *Viewer) onFrame(cur Transform) {
	if goal := v.spring.Goal(); goal.Scale > 1 && IsOutOfBounds(v.metrics, goal) {
		v.setGoal("out-of-bounds", Identity, GoalOptions{})
	}
	dispatch(v.handlers.frame, cur)
}

func (v *Viewer) onRest(cur Transform) {
	if cur.Scale == 1 {
		v.drag.Resume()
	}
	dispatch(v.handlers.rest, cur)
}

func (v *Viewer) onDragChange(disabled bool) {
	v.debugf("page drag disabled=%v", disabled)
	dispatch(v.handlers.dragChange, disabled)
}
