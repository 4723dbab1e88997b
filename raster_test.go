package starfield

import (
	"image/color"
	"testing"
)

func rgbaAt(c *RasterCanvas, x, y int) color.RGBA {
	return c.Image().RGBAAt(x, y)
}

func TestRasterClear(t *testing.T) {
	c := NewRasterCanvas(8, 6)
	c.Clear(RGB8(6, 9, 22))
	for _, p := range [][2]int{{0, 0}, {7, 5}, {3, 2}} {
		if got := rgbaAt(c, p[0], p[1]); got != (color.RGBA{6, 9, 22, 255}) {
			t.Errorf("pixel %v = %v", p, got)
		}
	}
}

func TestRasterFillCircle(t *testing.T) {
	c := NewRasterCanvas(40, 40)
	c.Clear(Color{0, 0, 0, 1})
	c.FillCircle(20, 20, 8, ColorWhite)

	if got := rgbaAt(c, 20, 20); got.R != 255 {
		t.Errorf("center = %v, want white", got)
	}
	if got := rgbaAt(c, 2, 2); got.R != 0 {
		t.Errorf("corner = %v, want untouched", got)
	}
	if got := rgbaAt(c, 20, 30); got.R != 0 {
		t.Errorf("pixel outside radius = %v, want untouched", got)
	}
}

func TestRasterFillCircleHalfAlpha(t *testing.T) {
	c := NewRasterCanvas(20, 20)
	c.Clear(Color{0, 0, 0, 1})
	c.FillCircle(10, 10, 6, ColorWhite.WithAlpha(0.5))
	got := rgbaAt(c, 10, 10)
	if got.R < 120 || got.R > 135 || got.A != 255 {
		t.Errorf("center = %v, want mid gray over opaque black", got)
	}
}

func TestRasterStrokeLine(t *testing.T) {
	c := NewRasterCanvas(20, 20)
	c.StrokeLine(2, 10, 18, 10, 2, ColorWhite)

	for _, y := range []int{9, 10} {
		if got := rgbaAt(c, 10, y); got.A != 255 {
			t.Errorf("pixel (10,%d) = %v, want covered", y, got)
		}
	}
	if got := rgbaAt(c, 10, 14); got.A != 0 {
		t.Errorf("pixel (10,14) = %v, want empty", got)
	}
	if got := rgbaAt(c, 0, 10); got.A != 0 {
		t.Errorf("pixel before start = %v, want empty", got)
	}
}

func TestRasterZeroLengthLine(t *testing.T) {
	c := NewRasterCanvas(10, 10)
	c.StrokeLine(5, 5, 5, 5, 3, ColorWhite)
	if got := rgbaAt(c, 5, 5); got.A != 0 {
		t.Errorf("zero-length line drew %v", got)
	}
}

func TestRasterFillRadial(t *testing.T) {
	c := NewRasterCanvas(40, 40)
	c.FillRadial(RadialGradient{
		X: 20, Y: 20, Radius: 10,
		Inner: Color{1, 0, 0, 1},
		Outer: Color{0, 0, 1, 1},
	})
	center := rgbaAt(c, 20, 20)
	if center.R < 230 || center.B > 25 {
		t.Errorf("center = %v, want near inner color", center)
	}
	edge := rgbaAt(c, 29, 20)
	if edge.B < 200 {
		t.Errorf("edge = %v, want near outer color", edge)
	}
	if got := rgbaAt(c, 35, 35); got.A != 0 {
		t.Errorf("outside = %v, want empty", got)
	}
}

func TestRasterClipsOffSurface(t *testing.T) {
	c := NewRasterCanvas(10, 10)
	// None of these may panic.
	c.FillCircle(-50, -50, 5, ColorWhite)
	c.FillCircle(5, 5, 100, ColorWhite)
	c.StrokeLine(-20, -20, 30, 30, 2, ColorWhite)
	c.FillRadial(RadialGradient{X: 100, Y: 100, Radius: 5, Inner: ColorWhite})
	c.FillRadial(RadialGradient{X: 0, Y: 0, Radius: 50, Inner: ColorWhite})
}

func TestRasterRendersScene(t *testing.T) {
	s := newTestScene(t, testConfig(), 320, 240)
	c := NewRasterCanvas(320, 240)
	s.Draw(c)

	sky := s.cfg.Render.Sky.NRGBA()
	m := s.Layout().Moon
	// Left limb of the crescent is lit; the shadow disc is offset right.
	lit := rgbaAt(c, int(m.X-0.8*m.Radius), int(m.Y))
	if int(lit.R) < int(sky.R)+100 {
		t.Errorf("lit crescent pixel = %v, want bright", lit)
	}
	corner := rgbaAt(c, 0, 239)
	if corner.A != 255 {
		t.Errorf("corner alpha = %d, want opaque sky", corner.A)
	}
}
