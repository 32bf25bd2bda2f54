package pinchzoom

import "time"

// ClickDetector turns clicks into ZoomIntents. The detector is chosen once
// from Config.SingleClickToZoom; see NewClickDetector.
type ClickDetector interface {
	// Click records a click at container-space (x, y).
	Click(x, y float64, mods KeyModifiers, now time.Time)
	// Update fires any buffered click whose window has elapsed by now.
	Update(now time.Time)
	// Cancel drops any buffered click without firing it.
	Cancel()
	// ZoomKind is the intent kind that should toggle zoom.
	ZoomKind() IntentKind
}

// NewClickDetector returns the immediate detector when cfg.SingleClickToZoom
// is set, and the debounced double-click detector otherwise. fn receives
// every intent, including single clicks the caller may ignore.
func NewClickDetector(cfg Config, fn func(ZoomIntent)) ClickDetector {
	if fn == nil {
		fn = func(ZoomIntent) {}
	}
	if cfg.SingleClickToZoom {
		return &immediateClicks{emit: fn}
	}
	window := cfg.DoubleClickWindow
	if window <= 0 {
		window = DefaultDoubleClickWindow
	}
	return &debouncedClicks{window: window, emit: fn}
}

// immediateClicks fires every click as it arrives.
type immediateClicks struct {
	emit func(ZoomIntent)
}

func (d *immediateClicks) Click(x, y float64, mods KeyModifiers, _ time.Time) {
	d.emit(ZoomIntent{Kind: IntentSingleClick, X: x, Y: y, Modifiers: mods})
}

func (d *immediateClicks) Update(time.Time)     {}
func (d *immediateClicks) Cancel()              {}
func (d *immediateClicks) ZoomKind() IntentKind { return IntentSingleClick }

// debouncedClicks holds a click for window. A second click inside the
// window fires a single double-click; otherwise the held click fires as a
// single click once the window elapses.
type debouncedClicks struct {
	window time.Duration
	emit   func(ZoomIntent)

	pending   bool
	pendingAt time.Time
	held      ZoomIntent
}

func (d *debouncedClicks) Click(x, y float64, mods KeyModifiers, now time.Time) {
	if d.pending {
		if now.Sub(d.pendingAt) <= d.window {
			d.pending = false
			d.emit(ZoomIntent{Kind: IntentDoubleClick, X: x, Y: y, Modifiers: mods})
			return
		}
		// The held click expired without an Update; flush it first.
		d.flush()
	}
	d.pending = true
	d.pendingAt = now
	d.held = ZoomIntent{Kind: IntentSingleClick, X: x, Y: y, Modifiers: mods}
}

func (d *debouncedClicks) Update(now time.Time) {
	if d.pending && now.Sub(d.pendingAt) > d.window {
		d.flush()
	}
}

func (d *debouncedClicks) flush() {
	d.pending = false
	d.emit(d.held)
}

func (d *debouncedClicks) Cancel() {
	d.pending = false
}

func (d *debouncedClicks) ZoomKind() IntentKind { return IntentDoubleClick }
