package starfield

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// radialShaderSrc shades a disc with a two-color radial gradient measured
// from a focus point. Inner and Outer are straight alpha; the output is
// premultiplied as Ebitengine expects.
const radialShaderSrc = `//kage:unit pixels
package main

var Center vec2
var Focus vec2
var Radius float
var Inner vec4
var Outer vec4

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	if distance(dst.xy, Center) > Radius {
		return vec4(0)
	}
	t := clamp(distance(dst.xy, Focus)/Radius, 0, 1)
	c := mix(Inner, Outer, t)
	return vec4(c.rgb*c.a, c.a)
}
`

// Compiled on first use. Drawing is single-threaded.
var radialShader *ebiten.Shader

func ensureRadialShader() *ebiten.Shader {
	if radialShader == nil {
		s, err := ebiten.NewShader([]byte(radialShaderSrc))
		if err != nil {
			panic("starfield: failed to compile radial gradient shader: " + err.Error())
		}
		radialShader = s
	}
	return radialShader
}

// EbitenCanvas implements Canvas on an *ebiten.Image using the vector package
// for discs and lines, cached halo textures for centered fades, and a Kage
// shader for general radial gradients.
type EbitenCanvas struct {
	dst *ebiten.Image
	// AntiAlias smooths disc and line edges.
	AntiAlias bool

	halos haloCache

	uniforms map[string]any
	center   [2]float32
	focus    [2]float32
	inner    [4]float32
	outer    [4]float32
	shaderOp ebiten.DrawRectShaderOptions
	imgOp    ebiten.DrawImageOptions
}

// NewEbitenCanvas creates a canvas drawing onto dst.
func NewEbitenCanvas(dst *ebiten.Image) *EbitenCanvas {
	c := &EbitenCanvas{
		dst:       dst,
		AntiAlias: true,
		uniforms:  make(map[string]any, 5),
	}
	c.uniforms["Center"] = c.center[:]
	c.uniforms["Focus"] = c.focus[:]
	c.uniforms["Inner"] = c.inner[:]
	c.uniforms["Outer"] = c.outer[:]
	c.shaderOp.Uniforms = c.uniforms
	return c
}

// SetTarget redirects subsequent draws to dst. Cached textures are kept.
func (c *EbitenCanvas) SetTarget(dst *ebiten.Image) {
	c.dst = dst
}

// Target returns the image currently drawn onto.
func (c *EbitenCanvas) Target() *ebiten.Image {
	return c.dst
}

// Clear fills the target with col.
func (c *EbitenCanvas) Clear(col Color) {
	c.dst.Fill(col.NRGBA())
}

// FillCircle draws a solid disc.
func (c *EbitenCanvas) FillCircle(cx, cy, r float64, col Color) {
	if r <= 0 || col.A <= 0 {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), col.NRGBA(), c.AntiAlias)
}

// StrokeLine draws a segment.
func (c *EbitenCanvas) StrokeLine(x0, y0, x1, y1, width float64, col Color) {
	if width <= 0 || col.A <= 0 {
		return
	}
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), col.NRGBA(), c.AntiAlias)
}

// FillRadial draws a gradient disc. Centered fades to transparent use a
// cached halo texture; everything else goes through the shader.
func (c *EbitenCanvas) FillRadial(g RadialGradient) {
	if g.Radius <= 0 || (g.Inner.A <= 0 && g.Outer.A <= 0) {
		return
	}
	if g.isHalo() {
		c.drawHalo(g)
		return
	}

	x0 := math.Floor(g.X - g.Radius)
	y0 := math.Floor(g.Y - g.Radius)
	size := int(math.Ceil(g.Radius*2)) + 2

	c.center[0], c.center[1] = float32(g.X), float32(g.Y)
	c.focus[0], c.focus[1] = float32(g.X+g.FocusX), float32(g.Y+g.FocusY)
	c.uniforms["Radius"] = float32(g.Radius)
	c.inner = [4]float32{float32(g.Inner.R), float32(g.Inner.G), float32(g.Inner.B), float32(clamp01(g.Inner.A))}
	c.outer = [4]float32{float32(g.Outer.R), float32(g.Outer.G), float32(g.Outer.B), float32(clamp01(g.Outer.A))}

	op := &c.shaderOp
	op.GeoM.Reset()
	op.GeoM.Translate(x0, y0)
	c.dst.DrawRectShader(size, size, ensureRadialShader(), op)
}

// drawHalo scales a cached white falloff texture to the gradient's size and
// tints it with the inner color.
func (c *EbitenCanvas) drawHalo(g RadialGradient) {
	img := c.halos.get(g.Radius)
	src := float64(img.Bounds().Dx())
	d := g.Radius * 2

	op := &c.imgOp
	op.GeoM.Reset()
	op.GeoM.Scale(d/src, d/src)
	op.GeoM.Translate(g.X-g.Radius, g.Y-g.Radius)
	op.Filter = ebiten.FilterLinear

	a := clamp01(g.Inner.A)
	op.ColorScale.Reset()
	op.ColorScale.Scale(float32(g.Inner.R*a), float32(g.Inner.G*a), float32(g.Inner.B*a), float32(a))
	c.dst.DrawImage(img, op)
}

// Dispose releases cached textures.
func (c *EbitenCanvas) Dispose() {
	c.halos.dispose()
}
