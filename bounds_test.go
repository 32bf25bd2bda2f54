package pinchzoom

import (
	"math"
	"testing"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

const epsilon = 1e-6

// landscape is a 400x300 image centered in an 800x600 container.
var landscape = ImageMetrics{
	NaturalWidth: 400, NaturalHeight: 300,
	DisplayWidth: 400, DisplayHeight: 300,
	ContainerWidth: 800, ContainerHeight: 600,
}

func TestImageRectIdentity(t *testing.T) {
	r := ImageRect(landscape, Identity)
	want := Rect{X: 200, Y: 150, Width: 400, Height: 300}
	if r != want {
		t.Errorf("ImageRect = %+v, want %+v", r, want)
	}
	if c := r.Center(); c != landscape.ContainerCenter() {
		t.Errorf("center = %+v, want container center", c)
	}
}

func TestImageRectScaledAndTranslated(t *testing.T) {
	r := ImageRect(landscape, Transform{Scale: 2, X: -100, Y: 50})
	if !approxEqual(r.X, -100, epsilon) || !approxEqual(r.Y, 50, epsilon) {
		t.Errorf("origin = (%v, %v), want (-100, 50)", r.X, r.Y)
	}
	if r.Width != 800 || r.Height != 600 {
		t.Errorf("size = %vx%v, want 800x600", r.Width, r.Height)
	}
}

// fill is a 1600x1200 image shrunk to fill an 800x600 container.
var fill = ImageMetrics{
	NaturalWidth: 1600, NaturalHeight: 1200,
	DisplayWidth: 800, DisplayHeight: 600,
	ContainerWidth: 800, ContainerHeight: 600,
}

// tall is a 200x600 strip in an 800x600 container: at scale 2 it is
// narrower than the container but taller.
var tall = ImageMetrics{
	NaturalWidth: 200, NaturalHeight: 600,
	DisplayWidth: 200, DisplayHeight: 600,
	ContainerWidth: 800, ContainerHeight: 600,
}

func TestIsOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		m    ImageMetrics
		t    Transform
		want bool
	}{
		{"identity", landscape, Identity, false},
		{"zoomed out far away", landscape, Transform{Scale: 0.8, X: 5000, Y: -5000}, false},
		{"scale 1 translated", landscape, Transform{Scale: 1, X: 1000}, false},
		{"zoomed centered", landscape, Transform{Scale: 2}, false},

		// At scale 2 landscape covers the container exactly: no room to pan.
		{"exact cover nudged left", landscape, Transform{Scale: 2, X: -1}, true},
		{"exact cover nudged down", landscape, Transform{Scale: 2, Y: 1}, true},
		{"exact cover half blank", landscape, Transform{Scale: 2, X: -375}, true},

		{"fill left edge at container edge", fill, Transform{Scale: 2, X: 400}, false},
		{"fill left edge inside", fill, Transform{Scale: 2, X: 401}, true},
		{"fill right edge at container edge", fill, Transform{Scale: 2, X: -400}, false},
		{"fill right edge inside", fill, Transform{Scale: 2, X: -401}, true},
		{"fill top edge inside", fill, Transform{Scale: 2, Y: 301}, true},
		{"fill bottom edge inside", fill, Transform{Scale: 2, Y: -301}, true},
		{"fill corner within", fill, Transform{Scale: 2, X: -399, Y: 299}, false},
		{"fill scale 3", fill, Transform{Scale: 3, X: 800, Y: -600}, false},

		// Narrower than the container: the center line rule applies on X.
		{"tall edge before center line", tall, Transform{Scale: 2, X: 199}, false},
		{"tall edge on center line", tall, Transform{Scale: 2, X: -200}, false},
		{"tall edge past center line", tall, Transform{Scale: 2, X: 201}, true},
		{"tall covers vertically", tall, Transform{Scale: 2, Y: 300}, false},
		{"tall vertical gap", tall, Transform{Scale: 2, Y: 301}, true},

		{"NaN translate", landscape, Transform{Scale: 2, X: math.NaN()}, true},
		{"infinite scale", landscape, Transform{Scale: math.Inf(1)}, true},
		{"invalid metrics zoomed", ImageMetrics{}, Transform{Scale: 2}, true},
		{"invalid metrics identity", ImageMetrics{}, Identity, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOutOfBounds(tt.m, tt.t); got != tt.want {
				t.Errorf("IsOutOfBounds(%+v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestIsOutOfBoundsLeavesNoGap(t *testing.T) {
	// Whenever a transform that covers an axis is accepted, the image rect
	// spans the whole container on that axis.
	for _, m := range []ImageMetrics{landscape, fill} {
		for x := -500.0; x <= 500; x += 25 {
			tr := Transform{Scale: 2, X: x}
			if IsOutOfBounds(m, tr) {
				continue
			}
			r := ImageRect(m, tr)
			if r.X > boundsSlack || r.X+r.Width < m.ContainerWidth-boundsSlack {
				t.Errorf("accepted %+v leaves a gap: x=[%v,%v]", tr, r.X, r.X+r.Width)
			}
		}
	}
}

func TestClampToBounds(t *testing.T) {
	tests := []struct {
		name string
		m    ImageMetrics
		in   Transform
		want Transform
	}{
		{"in bounds unchanged", fill, Transform{Scale: 2, X: -100, Y: 50}, Transform{Scale: 2, X: -100, Y: 50}},
		{"pulled back on both axes", fill, Transform{Scale: 2, X: -900, Y: 400}, Transform{Scale: 2, X: -400, Y: 300}},
		{"exact cover recentered", landscape, Transform{Scale: 2, X: -100, Y: -50}, Transform{Scale: 2}},
		{"narrow axis to center line", tall, Transform{Scale: 2, X: 350, Y: -500}, Transform{Scale: 2, X: 200, Y: -300}},
		{"scale 1 untouched", fill, Transform{Scale: 1, X: 900}, Transform{Scale: 1, X: 900}},
		{"zoomed out untouched", fill, Transform{Scale: 0.6, X: -30}, Transform{Scale: 0.6, X: -30}},
		{"non-finite", fill, Transform{Scale: math.NaN()}, Identity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampToBounds(tt.m, tt.in)
			if !got.near(tt.want, epsilon) {
				t.Errorf("ClampToBounds(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
			if IsOutOfBounds(tt.m, got) {
				t.Errorf("ClampToBounds(%+v) = %+v is still out of bounds", tt.in, got)
			}
		})
	}
}

func TestHitImage(t *testing.T) {
	tests := []struct {
		name string
		t    Transform
		x, y float64
		want bool
	}{
		{"center", Identity, 400, 300, true},
		{"corner", Identity, 200, 150, true},
		{"letterbox", Identity, 100, 100, false},
		{"letterbox covered when zoomed", Transform{Scale: 2}, 100, 100, true},
		{"moved away", Transform{Scale: 1, X: 300}, 300, 300, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HitImage(landscape, tt.t, tt.x, tt.y); got != tt.want {
				t.Errorf("HitImage(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
	if HitImage(ImageMetrics{}, Identity, 0, 0) {
		t.Error("HitImage with invalid metrics = true, want false")
	}
}

func TestRectContainsEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	if !r.Contains(10, 20) || !r.Contains(110, 70) {
		t.Error("edges should be inside")
	}
	if r.Contains(9.9, 40) || r.Contains(50, 70.1) {
		t.Error("points outside reported inside")
	}
}

func TestMathHelpers(t *testing.T) {
	if got := clamp(5.0, 0, 3); got != 3 {
		t.Errorf("clamp high = %v", got)
	}
	if got := clamp(-1.0, 0, 3); got != 0 {
		t.Errorf("clamp low = %v", got)
	}
	if got := clamp(float32(1.5), 0, 3); got != 1.5 {
		t.Errorf("clamp float32 = %v", got)
	}
	if finite(math.NaN()) || finite(math.Inf(-1)) || !finite(0.0) {
		t.Error("finite misreports")
	}
	if got := safeDiv(1.0, 0); got != 0 {
		t.Errorf("safeDiv by zero = %v, want 0", got)
	}
	if got := safeDiv(6.0, 3); got != 2 {
		t.Errorf("safeDiv = %v, want 2", got)
	}
}
