package starfield

// Renderer draws a Scene onto a Canvas. The draw order is fixed: clear, moon
// (glow, body, shadow), stars (trail, body, glow), shooting stars.
type Renderer struct {
	cfg *Config
}

// NewRenderer creates a renderer reading its style from cfg.
func NewRenderer(cfg *Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Draw renders s onto c.
func (r *Renderer) Draw(c Canvas, s *Scene) {
	bright := s.Brightness()

	c.Clear(r.cfg.Render.Sky)
	r.drawMoon(c, s.layout.Moon, s.anim.pulse, bright)
	for i := range s.stars {
		r.drawStar(c, &s.stars[i], bright)
	}
	for i := range s.shooting {
		r.drawShootingStar(c, &s.shooting[i], bright)
	}
}

// drawMoon paints the glow, the lit body, then a sky-colored disc offset from
// the center that covers part of the body and leaves a crescent.
func (r *Renderer) drawMoon(c Canvas, m Moon, pulse, bright float64) {
	mc := &r.cfg.Moon
	if m.Radius <= 0 {
		return
	}

	glow := mc.Glow.ScaleAlpha(bright)
	c.FillRadial(RadialGradient{
		X: m.X, Y: m.Y,
		Radius: m.Radius * mc.GlowScale * pulse,
		Inner:  glow,
		Outer:  glow.WithAlpha(0),
	})

	c.FillRadial(RadialGradient{
		X: m.X, Y: m.Y,
		Radius: m.Radius,
		FocusX: -m.Radius * 0.3,
		FocusY: -m.Radius * 0.3,
		Inner:  mc.Light.ScaleAlpha(bright),
		Outer:  mc.Dark.ScaleAlpha(bright),
	})

	c.FillCircle(
		m.X+mc.ShadowOffset.X*m.Radius,
		m.Y+mc.ShadowOffset.Y*m.Radius,
		m.Radius*mc.ShadowScale,
		r.cfg.Render.Sky.ScaleAlpha(bright),
	)
}

// drawStar paints the trail oldest to newest, the body, and a halo for large
// stars.
func (r *Renderer) drawStar(c Canvas, st *Star, bright float64) {
	rc := &r.cfg.Render
	n := st.Trail.Len()
	for i := 1; i < n; i++ {
		a := st.Trail.At(i - 1)
		b := st.Trail.At(i)
		dx, dy := b.X-a.X, b.Y-a.Y
		if dx*dx+dy*dy > rc.MaxSegmentSq {
			continue
		}
		progress := float64(i) / float64(n)
		width := max(st.Size*progress*rc.TrailWidth, 0.3)
		c.StrokeLine(a.X, a.Y, b.X, b.Y, width, st.Color.WithAlpha(progress*rc.TrailAlpha*bright))
	}

	c.FillCircle(st.X, st.Y, st.Size, st.Color.WithAlpha(rc.BodyAlpha*bright))

	if st.BaseSize > rc.GlowThreshold {
		halo := st.Color.WithAlpha(rc.GlowAlpha * bright)
		c.FillRadial(RadialGradient{
			X: st.X, Y: st.Y,
			Radius: st.Size * rc.GlowScale,
			Inner:  halo,
			Outer:  halo.WithAlpha(0),
		})
	}
}

// drawShootingStar paints the streak with alpha from each sample's recorded
// life and width narrowing toward the tail.
func (r *Renderer) drawShootingStar(c Canvas, ss *ShootingStar, bright float64) {
	col := r.cfg.Shooting.Color
	n := ss.Trail.Len()
	for i := 1; i < n; i++ {
		a := ss.Trail.At(i - 1)
		b := ss.Trail.At(i)
		progress := float64(i) / float64(n)
		c.StrokeLine(a.Pos.X, a.Pos.Y, b.Pos.X, b.Pos.Y,
			ss.Size*progress,
			col.WithAlpha(b.Life*progress*bright))
	}
}
