package starfield

import "math"

// minForceDistance is the distance below which vortex and pointer forces are
// skipped to stay clear of the singularity at the center.
const minForceDistance = 1.0

// vortexForce returns the velocity increment a vortex applies to a point.
// Inside the radius the increment is a tangential push of magnitude
// f = (1 - d/r) * strength * scale, whose sense follows the sign of strength,
// plus an inward pull of |f| * centripetal.
func vortexForce(x, y float64, v Vortex, scale, centripetal float64) (dvx, dvy float64) {
	dx := x - v.X
	dy := y - v.Y
	d := math.Hypot(dx, dy)
	if d >= v.Radius || d <= minForceDistance {
		return 0, 0
	}
	f := (1 - d/v.Radius) * v.Strength * scale
	nx, ny := dx/d, dy/d

	dvx = -ny * f
	dvy = nx * f

	pull := math.Abs(f) * centripetal
	dvx -= nx * pull
	dvy -= ny * pull
	return dvx, dvy
}

// pointerForce returns the tangential increment applied by the pointer.
// The sense is fixed; only proximity scales it.
func pointerForce(x, y float64, p Vec2, radius, strength float64) (dvx, dvy float64) {
	dx := x - p.X
	dy := y - p.Y
	d := math.Hypot(dx, dy)
	if d >= radius || d <= minForceDistance {
		return 0, 0
	}
	f := (1 - d/radius) * strength
	return -dy / d * f, dx / d * f
}

// damp scales a velocity by factor.
func damp(vx, vy, factor float64) (float64, float64) {
	return vx * factor, vy * factor
}

// twinkle returns the displayed size of a star at elapsed seconds t.
func twinkle(base, rate, phase, depth, t float64) float64 {
	return base * (1 - depth + depth*math.Sin(t*rate+phase))
}

// wrap moves a star that left the surface (plus margin) to the opposite edge
// and clears its trail so no segment spans the surface. Reports whether the
// star wrapped.
func wrap(st *Star, w, h, margin float64) bool {
	wrapped := false
	switch {
	case st.X < -margin:
		st.X = w + margin
		wrapped = true
	case st.X > w+margin:
		st.X = -margin
		wrapped = true
	}
	switch {
	case st.Y < -margin:
		st.Y = h + margin
		wrapped = true
	case st.Y > h+margin:
		st.Y = -margin
		wrapped = true
	}
	if wrapped {
		st.Trail.Clear()
	}
	return wrapped
}

// stepStars advances every star by one tick: twinkle, vortex and pointer
// forces, damping, integration, wrap, and trail sampling.
func (s *Scene) stepStars() {
	ph := &s.cfg.Physics
	t := s.Elapsed()
	w, h := s.layout.Width, s.layout.Height

	for i := range s.stars {
		st := &s.stars[i]

		st.Size = twinkle(st.BaseSize, st.TwinkleRate, st.TwinklePhase, s.cfg.Stars.TwinkleDepth, t)

		// Overlapping fields add up without normalization.
		for _, v := range s.layout.Vortices {
			dvx, dvy := vortexForce(st.X, st.Y, v, ph.VortexScale, ph.CentripetalFraction)
			st.VX += dvx
			st.VY += dvy
		}

		if s.hasPointer {
			dvx, dvy := pointerForce(st.X, st.Y, s.pointer, ph.PointerRadius, ph.PointerStrength)
			st.VX += dvx
			st.VY += dvy
		}

		st.VX, st.VY = damp(st.VX, st.VY, ph.Damping)

		// Fixed nominal step: one tick.
		st.X += st.VX + st.DriftX
		st.Y += st.VY + st.DriftY

		wrap(st, w, h, ph.WrapMargin)

		st.Trail.Push(Vec2{st.X, st.Y})
	}
}
