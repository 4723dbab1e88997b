package starfield

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// RasterCanvas implements Canvas in software on an *image.RGBA using the
// golang.org/x/image/vector rasterizer. It needs no GPU or window and is used
// for headless frame export and pixel tests.
type RasterCanvas struct {
	img *image.RGBA
	z   vector.Rasterizer
	src image.Uniform
}

// NewRasterCanvas creates a w x h transparent canvas.
func NewRasterCanvas(w, h int) *RasterCanvas {
	c := &RasterCanvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
	c.z.DrawOp = draw.Over
	return c
}

// Image returns the backing image. It is premultiplied RGBA.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

// Clear replaces every pixel with col.
func (c *RasterCanvas) Clear(col Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

// circleSegments picks a polygon resolution that keeps edges under ~2px.
func circleSegments(r float64) int {
	n := int(math.Ceil(2 * math.Pi * r / 2))
	return min(max(n, 12), 256)
}

// FillCircle draws a disc as a polygon.
func (c *RasterCanvas) FillCircle(cx, cy, r float64, col Color) {
	if r <= 0 || col.A <= 0 {
		return
	}
	b, ok := c.bounds(cx-r, cy-r, cx+r, cy+r)
	if !ok {
		return
	}
	ox, oy := float64(b.Min.X), float64(b.Min.Y)
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over

	n := circleSegments(r)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		x := float32(cx + r*math.Cos(a) - ox)
		y := float32(cy + r*math.Sin(a) - oy)
		if i == 0 {
			c.z.MoveTo(x, y)
		} else {
			c.z.LineTo(x, y)
		}
	}
	c.z.ClosePath()
	c.fill(b, col)
}

// StrokeLine draws the segment as a quad with butt ends.
func (c *RasterCanvas) StrokeLine(x0, y0, x1, y1, width float64, col Color) {
	if width <= 0 || col.A <= 0 {
		return
	}
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	hw := width / 2
	nx, ny := -dy/length*hw, dx/length*hw

	b, ok := c.bounds(
		min(x0, x1)-hw, min(y0, y1)-hw,
		max(x0, x1)+hw, max(y0, y1)+hw,
	)
	if !ok {
		return
	}
	ox, oy := float64(b.Min.X), float64(b.Min.Y)
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
	c.z.MoveTo(float32(x0+nx-ox), float32(y0+ny-oy))
	c.z.LineTo(float32(x1+nx-ox), float32(y1+ny-oy))
	c.z.LineTo(float32(x1-nx-ox), float32(y1-ny-oy))
	c.z.LineTo(float32(x0-nx-ox), float32(y0-ny-oy))
	c.z.ClosePath()
	c.fill(b, col)
}

// FillRadial shades each pixel center inside the disc and composites it
// source-over.
func (c *RasterCanvas) FillRadial(g RadialGradient) {
	if g.Radius <= 0 {
		return
	}
	b, ok := c.bounds(g.X-g.Radius, g.Y-g.Radius, g.X+g.Radius, g.Y+g.Radius)
	if !ok {
		return
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			col, inside := g.At(float64(x)+0.5, float64(y)+0.5)
			if !inside || col.A <= 0 {
				continue
			}
			c.blend(x, y, col)
		}
	}
}

// bounds returns the integer pixel box covering the float box, clipped to
// the image. ok is false when nothing is left.
func (c *RasterCanvas) bounds(x0, y0, x1, y1 float64) (image.Rectangle, bool) {
	r := image.Rect(
		int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Ceil(x1)), int(math.Ceil(y1)),
	).Intersect(c.img.Bounds())
	return r, !r.Empty()
}

func (c *RasterCanvas) fill(b image.Rectangle, col Color) {
	c.src.C = col.NRGBA()
	c.z.Draw(c.img, b, &c.src, image.Point{})
}

// blend composites a straight-alpha color over one pixel.
func (c *RasterCanvas) blend(x, y int, col Color) {
	a := clamp01(col.A)
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	p[0] = uint8(clamp01(col.R)*a*255 + float64(p[0])*(1-a) + 0.5)
	p[1] = uint8(clamp01(col.G)*a*255 + float64(p[1])*(1-a) + 0.5)
	p[2] = uint8(clamp01(col.B)*a*255 + float64(p[2])*(1-a) + 0.5)
	p[3] = uint8(a*255 + float64(p[3])*(1-a) + 0.5)
}
