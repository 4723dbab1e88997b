package starfield

// Moon is the resolved moon geometry for the current surface.
type Moon struct {
	X, Y   float64
	Radius float64
}

// Layout is the surface-dependent geometry of a scene. It is recomputed in
// full whenever the surface size changes and is read-only in between.
type Layout struct {
	Width, Height float64
	Vortices      []Vortex
	Moon          Moon
}

// NewLayout resolves vortex centers and the moon for a w x h surface.
func NewLayout(w, h int, cfg *Config) Layout {
	fw, fh := float64(w), float64(h)
	short := min(fw, fh)

	l := Layout{
		Width:    fw,
		Height:   fh,
		Vortices: make([]Vortex, len(cfg.Physics.Vortices)),
	}
	for i, v := range cfg.Physics.Vortices {
		l.Vortices[i] = Vortex{
			X:        v.X * fw,
			Y:        v.Y * fh,
			Strength: v.Strength,
			Radius:   v.Radius * short,
		}
	}

	m := cfg.Moon
	l.Moon = Moon{
		X:      m.X * fw,
		Y:      m.Y * fh,
		Radius: clamp(short*m.RadiusFactor, m.MinRadius, m.MaxRadius),
	}
	return l
}

// Empty reports whether there is no drawing surface.
func (l Layout) Empty() bool {
	return l.Width <= 0 || l.Height <= 0
}
