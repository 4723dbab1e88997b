package starfield

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// haloMinSize is the smallest cached halo radius; smaller halos are drawn by
// scaling this one down.
const haloMinSize = 8

// haloCache holds white radial falloff textures keyed by a power-of-two
// radius bucket. Callers scale the nearest bucket to the exact radius, so a
// pulsing glow does not generate a texture per frame.
type haloCache struct {
	images map[int]*ebiten.Image
}

// haloBucket returns the power-of-two radius bucket for radius.
func haloBucket(radius float64) int {
	key := haloMinSize
	for float64(key) < radius {
		key *= 2
	}
	return key
}

// get returns the cached texture for radius, generating it on first use.
func (hc *haloCache) get(radius float64) *ebiten.Image {
	key := haloBucket(radius)
	if hc.images == nil {
		hc.images = make(map[int]*ebiten.Image)
	}
	if img, ok := hc.images[key]; ok {
		return img
	}
	img := ebiten.NewImage(key*2, key*2)
	img.WritePixels(haloPixels(key))
	hc.images[key] = img
	return img
}

func (hc *haloCache) dispose() {
	for _, img := range hc.images {
		img.Deallocate()
	}
	hc.images = nil
}

// haloPixels builds premultiplied RGBA pixels of a white disc whose alpha
// falls linearly from 1 at the center to 0 at the rim, matching the
// RadialGradient interpolation.
func haloPixels(radius int) []byte {
	size := radius * 2
	pix := make([]byte, size*size*4)
	r := float64(radius)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			dist := math.Sqrt(dx*dx+dy*dy) / r

			alpha := 0.0
			if dist < 1 {
				alpha = 1 - dist
			}

			a := uint8(alpha*255 + 0.5)
			off := (y*size + x) * 4
			pix[off+0] = a // premultiplied white
			pix[off+1] = a
			pix[off+2] = a
			pix[off+3] = a
		}
	}
	return pix
}
