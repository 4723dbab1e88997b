package starfield

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// overlayRefresh is how often, in ticks, the overlay text is redrawn.
const overlayRefresh = 30

// statsOverlay shows FPS, TPS, population and dim level in the top-left
// corner. Toggled with F3.
type statsOverlay struct {
	img   *ebiten.Image
	ticks int
	op    ebiten.DrawImageOptions
}

// overlayText formats the overlay contents for s.
func overlayText(s *Scene, fps, tps float64) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nStars: %d\nShooting: %d\nDim: %.2f",
		fps, tps, len(s.stars), len(s.shooting), s.dim)
}

func (o *statsOverlay) draw(screen *ebiten.Image, s *Scene) {
	if o.img == nil {
		// 120x80 fits five DebugPrint lines.
		o.img = ebiten.NewImage(120, 80)
		o.ticks = overlayRefresh
	}
	o.ticks++
	if o.ticks >= overlayRefresh {
		o.ticks = 0
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, overlayText(s, ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	o.op.GeoM.Reset()
	o.op.GeoM.Translate(4, 4)
	screen.DrawImage(o.img, &o.op)
}
