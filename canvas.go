package starfield

import "math"

// Canvas is the immediate-mode 2D surface the renderer draws on. Colors are
// straight (non-premultiplied) alpha; implementations composite source-over.
type Canvas interface {
	// Clear fills the whole surface with c, replacing its contents.
	Clear(c Color)
	// FillCircle draws a solid disc.
	FillCircle(cx, cy, r float64, c Color)
	// FillRadial draws a disc shaded by a radial gradient.
	FillRadial(g RadialGradient)
	// StrokeLine draws a straight segment of the given width.
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
}

// RadialGradient is a disc of Radius centered at (X, Y). The color at a point
// interpolates from Inner to Outer by its distance from the focus
// (X+FocusX, Y+FocusY), reaching Outer at Radius.
type RadialGradient struct {
	X, Y           float64
	Radius         float64
	FocusX, FocusY float64
	Inner, Outer   Color
}

// At returns the gradient color at (px, py) and whether the point is inside
// the disc.
func (g RadialGradient) At(px, py float64) (Color, bool) {
	dx, dy := px-g.X, py-g.Y
	if dx*dx+dy*dy > g.Radius*g.Radius {
		return Color{}, false
	}
	fx, fy := px-(g.X+g.FocusX), py-(g.Y+g.FocusY)
	t := 0.0
	if g.Radius > 0 {
		t = clamp01(math.Hypot(fx, fy) / g.Radius)
	}
	return g.Inner.Lerp(g.Outer, t), true
}

// isHalo reports whether g is a centered single-color fade to transparent,
// which backends may draw from a cached texture.
func (g RadialGradient) isHalo() bool {
	return g.FocusX == 0 && g.FocusY == 0 && g.Outer.A == 0 &&
		g.Inner.R == g.Outer.R && g.Inner.G == g.Outer.G && g.Inner.B == g.Outer.B
}

// countingCanvas forwards to another Canvas and counts operations. Used for
// debug stats.
type countingCanvas struct {
	Canvas
	ops int
}

func (c *countingCanvas) Clear(col Color) {
	c.ops++
	c.Canvas.Clear(col)
}

func (c *countingCanvas) FillCircle(cx, cy, r float64, col Color) {
	c.ops++
	c.Canvas.FillCircle(cx, cy, r, col)
}

func (c *countingCanvas) FillRadial(g RadialGradient) {
	c.ops++
	c.Canvas.FillRadial(g)
}

func (c *countingCanvas) StrokeLine(x0, y0, x1, y1, width float64, col Color) {
	c.ops++
	c.Canvas.StrokeLine(x0, y0, x1, y1, width, col)
}
