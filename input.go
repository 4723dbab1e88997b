package starfield

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	defaultScrollStep  = 48.0 // pixels per wheel notch
	defaultScrollPages = 3.0  // virtual page length in viewport heights
)

// inputState tracks the live input sampled by the game loop. The scene only
// ever sees the resulting pointer and scroll samples.
type inputState struct {
	scroll       float64
	touchIDs     []ebiten.TouchID
	lastScrollVH float64
}

// sampleInput reads the cursor, touches, wheel and keys and feeds the scene.
func (g *Game) sampleInput() {
	s := g.scene
	g.samplePointer()
	g.sampleScroll()

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showOverlay = !g.showOverlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		s.Screenshot("manual")
	}
}

// samplePointer prefers the first active touch, then the mouse cursor. The
// pointer is cleared when the window is unfocused or the cursor is outside
// the surface.
func (g *Game) samplePointer() {
	s := g.scene
	w, h := s.layout.Width, s.layout.Height

	g.input.touchIDs = ebiten.AppendTouchIDs(g.input.touchIDs[:0])
	if len(g.input.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(g.input.touchIDs[0])
		s.SetPointer(float64(tx), float64(ty))
		return
	}

	if !ebiten.IsFocused() {
		s.ClearPointer()
		return
	}
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	if !(Rect{Width: w, Height: h}).Contains(x, y) {
		s.ClearPointer()
		return
	}
	s.SetPointer(x, y)
}

// sampleScroll turns wheel motion into a virtual page scroll offset. Home
// returns to the top.
func (g *Game) sampleScroll() {
	vh := g.scene.layout.Height
	step := g.cfg.ScrollStep
	if step <= 0 {
		step = defaultScrollStep
	}
	pages := g.cfg.ScrollPages
	if pages <= 0 {
		pages = defaultScrollPages
	}

	offset := g.input.scroll
	_, dy := ebiten.Wheel()
	offset -= dy * step
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		offset = 0
	}
	offset = clamp(offset, 0, vh*pages)

	if offset == g.input.scroll && vh == g.input.lastScrollVH {
		return
	}
	g.input.scroll = offset
	g.input.lastScrollVH = vh
	g.scene.SetScroll(offset, vh)
}
