package pinchzoom

import (
	"math"
	"testing"
)

func TestMagnifierValue(t *testing.T) {
	tests := []struct {
		ratio  float64
		want   int
		wantOK bool
	}{
		{-1, 0, true},
		{0, 0, true},
		{0.5, 0, true},
		{1, 1, true},
		{2.5, 2, true},
		{3, 3, true},
		{7.99, 7, true},
		{18.9, 18, true},
		{19, 0, false},
		{25, 0, false},
		{math.Inf(1), 0, false},
		{math.NaN(), 0, false},
	}
	for _, tt := range tests {
		got, ok := MagnifierValue(tt.ratio)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("MagnifierValue(%v) = (%d, %v), want (%d, %v)", tt.ratio, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestMagnifierValueMonotonic(t *testing.T) {
	prev := -1
	for r := 0.0; r < 19; r += 0.05 {
		n, ok := MagnifierValue(r)
		if !ok {
			t.Fatalf("MagnifierValue(%v) not ok", r)
		}
		if n < prev {
			t.Fatalf("MagnifierValue(%v) = %d, below previous %d", r, n, prev)
		}
		if float64(n) > r {
			t.Fatalf("MagnifierValue(%v) = %d exceeds ratio", r, n)
		}
		prev = n
	}
}

func TestMagnifier(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  float64
	}{
		{"landscape", 0.75, 1},
		{"square", 1, 1},
		{"at tall threshold", 2, 1},
		{"tall", 2.5, 2},
		{"very tall", 3, 3},
		{"beyond table", 25, 1},
		{"unknown", math.NaN(), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Magnifier(tt.ratio, DefaultTallRatio); got != tt.want {
				t.Errorf("Magnifier(%v) = %v, want %v", tt.ratio, got, tt.want)
			}
		})
	}
}
