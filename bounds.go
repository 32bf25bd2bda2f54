package pinchzoom

// boundsSlack absorbs float error when an image edge sits exactly on a
// container edge.
const boundsSlack = 1e-6

// ImageRect returns the on-screen rectangle of the image under transform t,
// in container space. Scaling happens around the image center.
func ImageRect(m ImageMetrics, t Transform) Rect {
	c := m.ContainerCenter()
	w := m.DisplayWidth * t.Scale
	h := m.DisplayHeight * t.Scale
	return Rect{
		X:      c.X + t.X - w/2,
		Y:      c.Y + t.Y - h/2,
		Width:  w,
		Height: h,
	}
}

// translateLimit is the largest translation, in either direction, an image
// of the given scaled size may have on a container axis of length
// container.
//
// When the image is at least as large as the container it has to cover it,
// so no edge may move inside. A smaller image can never cover the axis; it
// may move until one of its edges reaches the container's center line.
func translateLimit(size, container float64) float64 {
	if size >= container {
		return (size - container) / 2
	}
	return size / 2
}

// IsOutOfBounds reports whether a zoomed-in transform exposes blank space
// it should not. On an axis where the scaled image is at least as large as
// the container, any gap between an image edge and the container edge is
// out of bounds. On an axis where it is smaller, the image is out of bounds
// once an edge crosses the container's center line.
//
// Transforms at or below scale 1 are never out of bounds; the pager owns
// the image then. Invalid metrics or non-finite transforms count as out of
// bounds so callers fall back to Identity.
func IsOutOfBounds(m ImageMetrics, t Transform) bool {
	if !t.Finite() {
		return true
	}
	if t.Scale <= 1 {
		return false
	}
	if !m.Valid() {
		return true
	}
	lx := translateLimit(m.DisplayWidth*t.Scale, m.ContainerWidth)
	ly := translateLimit(m.DisplayHeight*t.Scale, m.ContainerHeight)
	return t.X > lx+boundsSlack || t.X < -lx-boundsSlack ||
		t.Y > ly+boundsSlack || t.Y < -ly-boundsSlack
}

// ClampToBounds returns t with its translation pulled back to the nearest
// in-bounds position for its scale. Transforms at or below scale 1 are
// returned unchanged; non-finite ones become Identity.
func ClampToBounds(m ImageMetrics, t Transform) Transform {
	if !t.Finite() {
		return Identity
	}
	if t.Scale <= 1 || !m.Valid() {
		return t
	}
	lx := translateLimit(m.DisplayWidth*t.Scale, m.ContainerWidth)
	ly := translateLimit(m.DisplayHeight*t.Scale, m.ContainerHeight)
	t.X = clamp(t.X, -lx, lx)
	t.Y = clamp(t.Y, -ly, ly)
	return t
}

// HitImage reports whether the container-space point (x, y) lies on the
// image under transform t.
func HitImage(m ImageMetrics, t Transform, x, y float64) bool {
	if !m.Valid() {
		return false
	}
	return ImageRect(m, t).Contains(x, y)
}
