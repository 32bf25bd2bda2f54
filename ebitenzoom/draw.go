// Package ebitenzoom connects a pinchzoom.Viewer to Ebitengine: it polls
// mouse, touch and wheel input into pinchzoom events and draws the image and
// its annotation markers at the viewer's live transform.
//
// A typical game loop:
//
//	func (g *Game) Update() error {
//		now := time.Now()
//		for _, e := range g.input.Poll(now) {
//			g.viewer.HandleInput(e)
//		}
//		g.viewer.Update(now)
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		ebitenzoom.Draw(screen, g.texture, g.viewer, 0, 0)
//	}
package ebitenzoom

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/pinchzoom"
)

// markerSize is the side of an annotation marker at scale 1, in pixels.
const markerSize = 24

// MarkerColor is the fill color of annotation markers.
var MarkerColor = color.RGBA{R: 0xff, G: 0xc1, B: 0x07, A: 0xff}

var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// NewTexture uploads img to the GPU.
func NewTexture(img image.Image) *ebiten.Image {
	return ebiten.NewImageFromImage(img)
}

// GeoM returns the matrix that draws a texture of texW x texH pixels as the
// image laid out by m under transform t, in container space. The texture
// size may differ from the natural size when the source was shrunk.
func GeoM(m pinchzoom.ImageMetrics, t pinchzoom.Transform, texW, texH int) ebiten.GeoM {
	var g ebiten.GeoM
	if texW <= 0 || texH <= 0 || !m.Valid() {
		return g
	}
	g.Translate(-float64(texW)/2, -float64(texH)/2)
	g.Scale(m.DisplayWidth*t.Scale/float64(texW), m.DisplayHeight*t.Scale/float64(texH))
	c := m.ContainerCenter()
	g.Translate(c.X+t.X, c.Y+t.Y)
	return g
}

// Draw renders tex at the viewer's live transform, then any annotation
// markers. (offsetX, offsetY) is the container's top-left corner on dst.
func Draw(dst, tex *ebiten.Image, v *pinchzoom.Viewer, offsetX, offsetY float64) {
	if tex == nil {
		return
	}
	m := v.Metrics()
	if !m.Valid() {
		return
	}
	b := tex.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM = GeoM(m, v.Transform(), b.Dx(), b.Dy())
	op.GeoM.Translate(offsetX, offsetY)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(tex, op)

	DrawMarkers(dst, v.Markers(), offsetX, offsetY)
}

// DrawMarkers draws each marker as a square centered on its position with
// its label beside it.
func DrawMarkers(dst *ebiten.Image, markers []pinchzoom.Marker, offsetX, offsetY float64) {
	for _, mk := range markers {
		size := markerSize * mk.Scale
		if size <= 0 {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(size, size)
		op.GeoM.Translate(offsetX+mk.X-size/2, offsetY+mk.Y-size/2)
		op.ColorScale.ScaleWithColor(MarkerColor)
		dst.DrawImage(whitePixel, op)
		if mk.Label != "" {
			ebitenutil.DebugPrintAt(dst, mk.Label, int(offsetX+mk.X+size/2+4), int(offsetY+mk.Y-8))
		}
	}
}
