package pinchzoom

// ComputeTranslate returns the translation that keeps the container-space
// focal point visually fixed when the scale changes from scale to
// scale+delta. current is the translation in effect at scale.
//
// The focal point is first projected into the image's unscaled space,
// relative to the image center:
//
//	p = (focal - center - current) / scale
//
// Keeping center + t' + p*(scale+delta) equal to focal gives
//
//	t' = current - p*delta
//
// Invalid metrics, a non-positive scale or non-finite input return the
// zero translation.
func ComputeTranslate(m ImageMetrics, scale, delta float64, current, focal Vec2) Vec2 {
	if !m.Valid() || scale <= 0 || !finite(scale) || !finite(delta) {
		return Vec2{}
	}
	c := m.ContainerCenter()
	px := (focal.X - c.X - current.X) / scale
	py := (focal.Y - c.Y - current.Y) / scale
	t := Vec2{
		X: current.X - px*delta,
		Y: current.Y - py*delta,
	}
	if !finite(t.X) || !finite(t.Y) {
		return Vec2{}
	}
	return t
}

// ZoomAt returns t scaled by delta around the focal point, with the new
// scale clamped to [minScale, maxScale]. The translation is computed from
// the clamped delta so the focal point stays fixed even at the limits.
func ZoomAt(m ImageMetrics, t Transform, delta float64, focal Vec2, minScale, maxScale float64) Transform {
	next := clamp(t.Scale+delta, minScale, maxScale)
	tr := ComputeTranslate(m, t.Scale, next-t.Scale, t.Translate(), focal)
	return Transform{Scale: next, X: tr.X, Y: tr.Y}
}
