package starfield

// Star is one long-lived point of light. Stars are regenerated wholesale on
// resize and otherwise updated in place.
type Star struct {
	X, Y float64
	// VX and VY are the force-driven velocity in units per tick. Damped every tick.
	VX, VY float64
	// DriftX and DriftY are the constant per-tick drift sampled at creation.
	DriftX, DriftY float64
	// Size is the displayed radius after twinkling; BaseSize is the sampled radius.
	Size, BaseSize float64
	Color          Color
	// TwinkleRate is in radians per second; TwinklePhase in radians.
	TwinkleRate, TwinklePhase float64
	Trail                     Trail[Vec2]
}

// TrailSample is one recorded position of a shooting star together with the
// life it had when recorded.
type TrailSample struct {
	Pos  Vec2
	Life float64
}

// ShootingStar is a short-lived streak. It is removed once Life reaches zero.
type ShootingStar struct {
	X, Y   float64
	VX, VY float64
	// Life runs from 1 down to 0, losing Decay each tick.
	Life  float64
	Decay float64
	Size  float64
	Trail Trail[TrailSample]
}

// IsAlive reports whether the shooting star still has life left.
func (s *ShootingStar) IsAlive() bool {
	return s.Life > 0
}

// Vortex is a fixed swirl field. The sign of Strength selects the rotation
// direction; the field is zero at and beyond Radius.
type Vortex struct {
	X, Y     float64
	Strength float64
	Radius   float64
}
