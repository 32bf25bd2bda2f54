package pinchzoom

import (
	"math"
	"strings"
)

// Image describes the picture shown by a Viewer.
type Image struct {
	Src, Alt                    string
	NaturalWidth, NaturalHeight float64
	// FileType is a bare extension ("png") or a MIME type ("image/png").
	FileType string
}

// Ratio returns the height-to-width ratio of the natural image size, or 0 if
// the width is unknown.
func (img Image) Ratio() float64 {
	return safeDiv(img.NaturalHeight, img.NaturalWidth)
}

var supportedFileTypes = map[string]bool{
	"webp": true,
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"svg":  true,
	"bmp":  true,
}

// IsSupportedFileType reports whether fileType is one of the image types
// annotations can be drawn over. Both bare extensions and "image/" MIME
// types are accepted; matching is exact and case-sensitive after the
// optional prefix is removed.
func IsSupportedFileType(fileType string) bool {
	return supportedFileTypes[strings.TrimPrefix(fileType, "image/")]
}

// ImageMetrics are the layout sizes used by the zoom math. The displayed
// image is centered in the container.
type ImageMetrics struct {
	NaturalWidth, NaturalHeight     float64
	DisplayWidth, DisplayHeight     float64
	ContainerWidth, ContainerHeight float64
}

// Valid reports whether every dimension needed for zoom math is positive
// and finite. Invalid metrics make every calculation fall back to the
// identity transform.
func (m ImageMetrics) Valid() bool {
	for _, v := range [...]float64{m.DisplayWidth, m.DisplayHeight, m.ContainerWidth, m.ContainerHeight} {
		if v <= 0 || !finite(v) {
			return false
		}
	}
	return true
}

// Ratio returns the natural height-to-width ratio, or 0 if unknown.
func (m ImageMetrics) Ratio() float64 {
	return safeDiv(m.NaturalHeight, m.NaturalWidth)
}

// ContainerCenter returns the center of the container in container space.
func (m ImageMetrics) ContainerCenter() Vec2 {
	return Vec2{X: m.ContainerWidth / 2, Y: m.ContainerHeight / 2}
}

// DisplayRect returns the untransformed image rectangle in container space.
func (m ImageMetrics) DisplayRect() Rect {
	return Rect{
		X:      (m.ContainerWidth - m.DisplayWidth) / 2,
		Y:      (m.ContainerHeight - m.DisplayHeight) / 2,
		Width:  m.DisplayWidth,
		Height: m.DisplayHeight,
	}
}

// FitMetrics lays out img inside a container of the given size. The image
// keeps its aspect ratio, never grows beyond its natural size, never exceeds
// the container width, and never exceeds pagerHeight when pagerHeight is
// positive.
func FitMetrics(img Image, containerW, containerH, pagerHeight float64) ImageMetrics {
	m := ImageMetrics{
		NaturalWidth:    img.NaturalWidth,
		NaturalHeight:   img.NaturalHeight,
		ContainerWidth:  containerW,
		ContainerHeight: containerH,
	}
	if img.NaturalWidth <= 0 || img.NaturalHeight <= 0 || !finite(img.NaturalWidth) || !finite(img.NaturalHeight) {
		return m
	}
	maxH := containerH
	if pagerHeight > 0 && (maxH <= 0 || pagerHeight < maxH) {
		maxH = pagerHeight
	}
	fit := 1.0
	if containerW > 0 {
		fit = math.Min(fit, containerW/img.NaturalWidth)
	}
	if maxH > 0 {
		fit = math.Min(fit, maxH/img.NaturalHeight)
	}
	m.DisplayWidth = img.NaturalWidth * fit
	m.DisplayHeight = img.NaturalHeight * fit
	return m
}
