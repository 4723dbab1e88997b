package starfield

import (
	"math"
	"math/rand/v2"
)

// Factory creates stars and shooting stars with randomized attributes.
// All randomness comes from the injected source so populations are
// reproducible for a given seed.
type Factory struct {
	stars    *StarConfig
	shooting *ShootingStarConfig
	rng      *rand.Rand
}

// NewFactory creates a factory reading its bands and ranges from cfg.
func NewFactory(cfg *Config, rng *rand.Rand) *Factory {
	return &Factory{stars: &cfg.Stars, shooting: &cfg.Shooting, rng: rng}
}

// PopulationSize returns the number of stars for a w x h surface:
// min(MaxStars, floor(w*h / AreaPerStar)).
func PopulationSize(w, h int, cfg StarConfig) int {
	if w <= 0 || h <= 0 || cfg.AreaPerStar <= 0 {
		return 0
	}
	n := int(math.Floor(float64(w) * float64(h) / cfg.AreaPerStar))
	return min(n, cfg.MaxStars)
}

// bandFor returns the first band whose cumulative threshold exceeds u.
// u is expected in [0, 1); values past the last threshold map to the last band.
func bandFor(bands []Band, u float64) Band {
	for _, b := range bands {
		if u < b.Threshold {
			return b
		}
	}
	return bands[len(bands)-1]
}

// NewStar samples a star placed uniformly over a w x h surface.
func (f *Factory) NewStar(w, h float64) Star {
	cfg := f.stars
	b := bandFor(cfg.Bands, f.rng.Float64())

	drift := Range{-cfg.DriftSpeed * b.Speed, cfg.DriftSpeed * b.Speed}
	dx := drift.Random(f.rng)
	dy := drift.Random(f.rng)
	size := b.Size.Random(f.rng)

	return Star{
		X:            f.rng.Float64() * w,
		Y:            f.rng.Float64() * h,
		VX:           dx,
		VY:           dy,
		DriftX:       dx,
		DriftY:       dy,
		Size:         size,
		BaseSize:     size,
		Color:        b.Color,
		TwinkleRate:  cfg.TwinkleRate.Random(f.rng),
		TwinklePhase: f.rng.Float64() * 2 * math.Pi,
		Trail:        NewTrail[Vec2](cfg.TrailCapacity.Random(f.rng)),
	}
}

// NewStars fills a fresh population for a w x h surface.
func (f *Factory) NewStars(w, h int) []Star {
	n := PopulationSize(w, h, *f.stars)
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = f.NewStar(float64(w), float64(h))
	}
	return stars
}

// NewShootingStar samples a shooting star heading down-right from the
// configured origin region of a w x h surface.
func (f *Factory) NewShootingStar(w, h float64) ShootingStar {
	cfg := f.shooting
	origin := cfg.Origin.Scale(w, h)
	heading := cfg.Heading + (f.rng.Float64()*2-1)*cfg.HeadingSkew
	speed := cfg.Speed.Random(f.rng)

	return ShootingStar{
		X:     origin.X + f.rng.Float64()*origin.Width,
		Y:     origin.Y + f.rng.Float64()*origin.Height,
		VX:    math.Cos(heading) * speed,
		VY:    math.Sin(heading) * speed,
		Life:  1,
		Decay: cfg.Decay.Random(f.rng),
		Size:  cfg.Size,
		Trail: NewTrail[TrailSample](cfg.TrailCapacity),
	}
}
