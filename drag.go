package pinchzoom

// DragCoordinator tells the external pager whether page dragging must be
// suspended. The callback fires only when the state actually flips.
type DragCoordinator struct {
	disabled bool
	notify   func(disabled bool)
}

// NewDragCoordinator returns a coordinator with page dragging enabled.
func NewDragCoordinator(fn func(disabled bool)) *DragCoordinator {
	return &DragCoordinator{notify: fn}
}

// Suspend disables page dragging.
func (d *DragCoordinator) Suspend() {
	d.set(true)
}

// Resume re-enables page dragging.
func (d *DragCoordinator) Resume() {
	d.set(false)
}

// Disabled reports whether page dragging is currently suspended.
func (d *DragCoordinator) Disabled() bool {
	return d.disabled
}

func (d *DragCoordinator) set(disabled bool) {
	if d.disabled == disabled {
		return
	}
	d.disabled = disabled
	if d.notify != nil {
		d.notify(disabled)
	}
}
