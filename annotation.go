package pinchzoom

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// markerScale is the resting scale of an annotation marker relative to
	// the image scale.
	markerScale = 0.5
	// markerPopDuration is how long a marker takes to grow in, in seconds.
	markerPopDuration = 0.25
)

// Annotation is a note pinned to an image. Top and Left are percentages of
// the image height and width.
type Annotation struct {
	ID        string
	Top, Left float64
	Label     string
}

// Marker is an annotation positioned on screen for the current frame.
type Marker struct {
	Annotation
	// X and Y are the marker center in container space.
	X, Y float64
	// Scale combines the pop-in animation with the image scale so markers
	// zoom along with the image.
	Scale float64
}

// OverlayClick is delivered when the image is clicked while annotating.
type OverlayClick struct {
	// X and Y are in container space.
	X, Y float64
	// LeftPct and TopPct locate the click on the image, in percent of the
	// image width and height at the current transform.
	LeftPct, TopPct float64
	Modifiers       KeyModifiers
}

// AnnotationLayer keeps annotation markers in sync with an image transform
// and animates them in when the annotation list changes.
type AnnotationLayer struct {
	items  []Annotation
	tweens []*gween.Tween
	scales []float32
}

// Set replaces the annotations. Every marker restarts its pop-in animation.
func (l *AnnotationLayer) Set(items []Annotation) {
	l.items = append(l.items[:0], items...)
	l.tweens = l.tweens[:0]
	l.scales = l.scales[:0]
	for range l.items {
		l.tweens = append(l.tweens, gween.New(0, markerScale, markerPopDuration, ease.OutBack))
		l.scales = append(l.scales, 0)
	}
}

// Len returns the number of annotations.
func (l *AnnotationLayer) Len() int {
	return len(l.items)
}

// Update advances marker animations by dt seconds. Negative or non-finite
// steps are ignored and long stalls finish the animation in one step.
func (l *AnnotationLayer) Update(dt float32) {
	if !finite(dt) {
		return
	}
	dt = clamp(dt, 0, markerPopDuration)
	for i, tw := range l.tweens {
		if tw == nil {
			continue
		}
		val, done := tw.Update(dt)
		l.scales[i] = val
		if done {
			l.scales[i] = markerScale
			l.tweens[i] = nil
		}
	}
}

// Markers returns the on-screen markers for the image laid out by m under
// transform t. It returns nil for invalid metrics.
func (l *AnnotationLayer) Markers(m ImageMetrics, t Transform) []Marker {
	if !m.Valid() || len(l.items) == 0 {
		return nil
	}
	r := ImageRect(m, t)
	out := make([]Marker, len(l.items))
	for i, a := range l.items {
		out[i] = Marker{
			Annotation: a,
			X:          r.X + r.Width*a.Left/100,
			Y:          r.Y + r.Height*a.Top/100,
			Scale:      float64(l.scales[i]) * t.Scale,
		}
	}
	return out
}

// overlayClickAt builds an OverlayClick for container point (x, y).
func overlayClickAt(m ImageMetrics, t Transform, x, y float64, mods KeyModifiers) OverlayClick {
	r := ImageRect(m, t)
	return OverlayClick{
		X: x, Y: y,
		LeftPct:   safeDiv(x-r.X, r.Width) * 100,
		TopPct:    safeDiv(y-r.Y, r.Height) * 100,
		Modifiers: mods,
	}
}
