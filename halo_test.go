package starfield

import "testing"

func TestHaloBucket(t *testing.T) {
	tests := []struct {
		r    float64
		want int
	}{
		{0.5, haloMinSize},
		{8, 8},
		{8.1, 16},
		{100, 128},
		{230, 256},
	}
	for _, tt := range tests {
		if got := haloBucket(tt.r); got != tt.want {
			t.Errorf("haloBucket(%v) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestHaloPixelsFalloff(t *testing.T) {
	const r = 16
	pix := haloPixels(r)
	size := r * 2
	if len(pix) != size*size*4 {
		t.Fatalf("len = %d, want %d", len(pix), size*size*4)
	}
	alpha := func(x, y int) byte { return pix[(y*size+x)*4+3] }

	center := alpha(r, r)
	mid := alpha(r+r/2, r)
	corner := alpha(0, 0)
	if center < 240 {
		t.Errorf("center alpha = %d, want near opaque", center)
	}
	if mid >= center || mid == 0 {
		t.Errorf("mid alpha = %d, want between rim and center", mid)
	}
	if corner != 0 {
		t.Errorf("corner alpha = %d, want 0", corner)
	}
	// Premultiplied white: every channel equals alpha.
	off := (r*size + r) * 4
	if pix[off] != pix[off+3] {
		t.Errorf("center rgb %d != alpha %d", pix[off], pix[off+3])
	}
}

func TestRadialGradientIsHalo(t *testing.T) {
	c := Color{1, 0.5, 0.2, 0.3}
	tests := []struct {
		name string
		g    RadialGradient
		want bool
	}{
		{"centered fade", RadialGradient{Radius: 5, Inner: c, Outer: c.WithAlpha(0)}, true},
		{"offset focus", RadialGradient{Radius: 5, FocusX: 1, Inner: c, Outer: c.WithAlpha(0)}, false},
		{"opaque rim", RadialGradient{Radius: 5, Inner: c, Outer: c}, false},
		{"two colors", RadialGradient{Radius: 5, Inner: c, Outer: Color{}}, false},
	}
	for _, tt := range tests {
		if got := tt.g.isHalo(); got != tt.want {
			t.Errorf("%s: isHalo = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRadialGradientAt(t *testing.T) {
	g := RadialGradient{X: 10, Y: 10, Radius: 4, Inner: Color{1, 1, 1, 1}, Outer: Color{0, 0, 0, 1}}
	if c, ok := g.At(10, 10); !ok || c.R != 1 {
		t.Errorf("center = %v, %v", c, ok)
	}
	if c, ok := g.At(12, 10); !ok || !approx(c.R, 0.5) {
		t.Errorf("half radius = %v, %v; want R 0.5", c, ok)
	}
	if _, ok := g.At(15, 10); ok {
		t.Error("point outside radius reported inside")
	}
}
