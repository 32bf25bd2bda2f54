package ebitenzoom

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/pinchzoom"
)

// FPSOverlay shows FPS, TPS and the viewer's live transform in a small
// panel. The text is refreshed every ~0.5 seconds.
type FPSOverlay struct {
	img     *ebiten.Image
	elapsed float64
}

// NewFPSOverlay creates an overlay ready to Update and Draw.
func NewFPSOverlay() *FPSOverlay {
	// 180x48 is enough for three lines of debug text.
	return &FPSOverlay{img: ebiten.NewImage(180, 48), elapsed: 1}
}

// Update redraws the panel when it is due. dt is in seconds.
func (o *FPSOverlay) Update(dt float64, t pinchzoom.Transform) {
	o.elapsed += dt
	if o.elapsed < 0.5 {
		return
	}
	o.elapsed = 0

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, overlayText(ebiten.ActualFPS(), ebiten.ActualTPS(), t))
}

// Draw draws the panel at (x, y).
func (o *FPSOverlay) Draw(dst *ebiten.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(o.img, op)
}

func overlayText(fps, tps float64, t pinchzoom.Transform) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nzoom %.2fx (%.0f, %.0f)", fps, tps, t.Scale, t.X, t.Y)
}
