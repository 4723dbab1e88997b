package starfield

import (
	"errors"
	"fmt"
	"math"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// MaxShootingStars is the upper bound on ShootingStarConfig.MaxActive.
const MaxShootingStars = 2

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("starfield: invalid config")

// Band is one weighted class of stars. Bands are sampled by cumulative
// Threshold; the last band must have Threshold 1.
type Band struct {
	// Threshold is the cumulative probability upper bound of this band.
	Threshold float64 `yaml:"threshold"`
	// Color is the star body color.
	Color Color `yaml:"color"`
	// Size is the range of base radii in surface units.
	Size Range `yaml:"size"`
	// Speed scales the drift velocity band.
	Speed float64 `yaml:"speed"`
}

// StarConfig controls the star population.
type StarConfig struct {
	// MaxStars caps the population regardless of surface area.
	MaxStars int `yaml:"max_stars"`
	// AreaPerStar is the surface area (units²) allotted to each star.
	AreaPerStar float64 `yaml:"area_per_star"`
	Bands       []Band  `yaml:"bands"`
	// DriftSpeed is the half-width of the per-axis drift band in units per tick.
	DriftSpeed float64 `yaml:"drift_speed"`
	// TwinkleRate is the range of twinkle angular rates in radians per second.
	TwinkleRate Range `yaml:"twinkle_rate"`
	// TwinkleDepth is the fraction of the base size that twinkling removes at its trough.
	TwinkleDepth float64 `yaml:"twinkle_depth"`
	// TrailCapacity is the range of per-star trail capacities.
	TrailCapacity IntRange `yaml:"trail_capacity"`
}

// VortexSpec places a vortex relative to the surface. X and Y are fractions
// of the surface size; Radius is a fraction of the shorter surface side.
type VortexSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Strength float64 `yaml:"strength"`
	Radius   float64 `yaml:"radius"`
}

// PhysicsConfig holds the force and integration constants.
type PhysicsConfig struct {
	Damping             float64      `yaml:"damping"`
	VortexScale         float64      `yaml:"vortex_scale"`
	CentripetalFraction float64      `yaml:"centripetal_fraction"`
	PointerRadius       float64      `yaml:"pointer_radius"`
	PointerStrength     float64      `yaml:"pointer_strength"`
	WrapMargin          float64      `yaml:"wrap_margin"`
	Vortices            []VortexSpec `yaml:"vortices"`
}

// ShootingStarConfig controls spawning and motion of shooting stars.
type ShootingStarConfig struct {
	// SpawnChance is the per-tick spawn probability.
	SpawnChance float64 `yaml:"spawn_chance"`
	// MaxActive caps concurrent shooting stars. At most MaxShootingStars.
	MaxActive int `yaml:"max_active"`
	// Heading is the base direction in radians (y grows downward).
	Heading float64 `yaml:"heading"`
	// HeadingSkew is the maximum random deviation from Heading.
	HeadingSkew float64 `yaml:"heading_skew"`
	// Speed is in units per tick.
	Speed Range `yaml:"speed"`
	// Decay is the life lost per tick.
	Decay         Range   `yaml:"decay"`
	Size          float64 `yaml:"size"`
	TrailCapacity int     `yaml:"trail_capacity"`
	// Origin is the spawn rectangle as fractions of the surface.
	Origin Rect  `yaml:"origin"`
	Color  Color `yaml:"color"`
}

// MoonConfig describes the crescent moon.
type MoonConfig struct {
	// X and Y are fractions of the surface size.
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	// RadiusFactor is a fraction of the shorter surface side, clamped to
	// [MinRadius, MaxRadius].
	RadiusFactor float64 `yaml:"radius_factor"`
	MinRadius    float64 `yaml:"min_radius"`
	MaxRadius    float64 `yaml:"max_radius"`
	Glow         Color   `yaml:"glow"`
	GlowScale    float64 `yaml:"glow_scale"`
	Light        Color   `yaml:"light"`
	Dark         Color   `yaml:"dark"`
	// ShadowOffset is the shadow disc offset in moon radii.
	ShadowOffset Vec2    `yaml:"shadow_offset"`
	ShadowScale  float64 `yaml:"shadow_scale"`
	// PulseScale is the glow radius multiplier range the glow breathes between.
	PulseScale  Range   `yaml:"pulse_scale"`
	PulsePeriod float64 `yaml:"pulse_period"`
}

// RenderConfig holds the renderer's style constants.
type RenderConfig struct {
	Sky        Color   `yaml:"sky"`
	TrailAlpha float64 `yaml:"trail_alpha"`
	TrailWidth float64 `yaml:"trail_width"`
	// MaxSegmentSq drops trail segments longer than its square root.
	MaxSegmentSq  float64 `yaml:"max_segment_sq"`
	BodyAlpha     float64 `yaml:"body_alpha"`
	GlowThreshold float64 `yaml:"glow_threshold"`
	GlowScale     float64 `yaml:"glow_scale"`
	GlowAlpha     float64 `yaml:"glow_alpha"`
}

// DimConfig maps scroll offset to the dim factor.
type DimConfig struct {
	// Floor is the darkest dim factor.
	Floor float64 `yaml:"floor"`
	// Span is the scroll distance, in viewport heights, at which Floor is reached.
	Span float64 `yaml:"span"`
}

// Config gathers every tunable constant of a scene.
type Config struct {
	// TickRate is the nominal number of ticks per second. Motion is expressed
	// per tick and is not corrected for frame-rate variance.
	TickRate int `yaml:"tick_rate"`
	// FadeIn is the duration in seconds of the intro fade.
	FadeIn   float64            `yaml:"fade_in"`
	Stars    StarConfig         `yaml:"stars"`
	Physics  PhysicsConfig      `yaml:"physics"`
	Shooting ShootingStarConfig `yaml:"shooting"`
	Moon     MoonConfig         `yaml:"moon"`
	Render   RenderConfig       `yaml:"render"`
	Dim      DimConfig          `yaml:"dim"`
}

// DefaultConfig returns the stock night sky.
func DefaultConfig() Config {
	return Config{
		TickRate: 60,
		FadeIn:   1.2,
		Stars: StarConfig{
			MaxStars:    280,
			AreaPerStar: 5200,
			Bands: []Band{
				{Threshold: 0.04, Color: RGB8(255, 196, 150), Size: Range{1.8, 2.6}, Speed: 0.35},
				{Threshold: 0.14, Color: RGB8(170, 200, 255), Size: Range{1.3, 2.0}, Speed: 0.55},
				{Threshold: 0.32, Color: RGB8(255, 240, 200), Size: Range{0.9, 1.5}, Speed: 0.75},
				{Threshold: 1.0, Color: RGB8(225, 230, 245), Size: Range{0.4, 1.0}, Speed: 1.0},
			},
			DriftSpeed:    0.12,
			TwinkleRate:   Range{0.6, 2.4},
			TwinkleDepth:  0.3,
			TrailCapacity: IntRange{8, 20},
		},
		Physics: PhysicsConfig{
			Damping:             0.975,
			VortexScale:         0.012,
			CentripetalFraction: 0.12,
			PointerRadius:       280,
			PointerStrength:     0.05,
			WrapMargin:          12,
			Vortices: []VortexSpec{
				{X: 0.22, Y: 0.32, Strength: 1.0, Radius: 0.30},
				{X: 0.68, Y: 0.24, Strength: -0.8, Radius: 0.26},
				{X: 0.54, Y: 0.72, Strength: 0.9, Radius: 0.32},
				{X: 0.12, Y: 0.80, Strength: -0.7, Radius: 0.22},
				{X: 0.88, Y: 0.62, Strength: 0.6, Radius: 0.20},
			},
		},
		Shooting: ShootingStarConfig{
			SpawnChance:   0.004,
			MaxActive:     2,
			Heading:       math.Pi / 4,
			HeadingSkew:   0.18,
			Speed:         Range{7, 12},
			Decay:         Range{0.012, 0.02},
			Size:          1.8,
			TrailCapacity: 26,
			Origin:        Rect{X: 0, Y: 0, Width: 0.6, Height: 0.3},
			Color:         RGB8(255, 255, 245),
		},
		Moon: MoonConfig{
			X:            0.82,
			Y:            0.18,
			RadiusFactor: 0.055,
			MinRadius:    26,
			MaxRadius:    64,
			Glow:         RGB8(255, 240, 205).WithAlpha(0.22),
			GlowScale:    3.6,
			Light:        RGB8(255, 251, 236),
			Dark:         RGB8(214, 204, 178),
			ShadowOffset: Vec2{0.38, -0.16},
			ShadowScale:  0.9,
			PulseScale:   Range{0.92, 1.08},
			PulsePeriod:  3.2,
		},
		Render: RenderConfig{
			Sky:           RGB8(6, 9, 22),
			TrailAlpha:    0.38,
			TrailWidth:    0.9,
			MaxSegmentSq:  10000,
			BodyAlpha:     0.9,
			GlowThreshold: 1.4,
			GlowScale:     4.5,
			GlowAlpha:     0.22,
		},
		Dim: DimConfig{
			Floor: 0.35,
			Span:  1.8,
		},
	}
}

// LoadConfig reads a YAML file and layers it over DefaultConfig. Keys absent
// from the file keep their default values. The result is validated.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first inconsistency found in c.
func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}
	if c.TickRate <= 0 {
		return invalid("tick_rate must be positive, got %d", c.TickRate)
	}
	if c.FadeIn < 0 {
		return invalid("fade_in must not be negative")
	}

	st := c.Stars
	if st.MaxStars < 0 {
		return invalid("stars.max_stars must not be negative")
	}
	if st.AreaPerStar <= 0 {
		return invalid("stars.area_per_star must be positive")
	}
	if len(st.Bands) == 0 {
		return invalid("stars.bands must not be empty")
	}
	prev := 0.0
	for i, b := range st.Bands {
		if b.Threshold <= prev {
			return invalid("stars.bands[%d].threshold %.3f must exceed %.3f", i, b.Threshold, prev)
		}
		if b.Size.Min <= 0 || b.Size.Max < b.Size.Min {
			return invalid("stars.bands[%d].size is not a positive range", i)
		}
		prev = b.Threshold
	}
	if prev != 1 {
		return invalid("last band threshold must be 1, got %.3f", prev)
	}
	if st.TrailCapacity.Min < 1 || st.TrailCapacity.Max < st.TrailCapacity.Min {
		return invalid("stars.trail_capacity must be a range starting at 1 or more")
	}
	if st.TwinkleDepth < 0 || st.TwinkleDepth > 1 {
		return invalid("stars.twinkle_depth must be in [0, 1]")
	}

	ph := c.Physics
	if ph.Damping <= 0 || ph.Damping > 1 {
		return invalid("physics.damping must be in (0, 1]")
	}
	if ph.PointerRadius <= 0 {
		return invalid("physics.pointer_radius must be positive")
	}
	for i, v := range ph.Vortices {
		if v.Radius <= 0 {
			return invalid("physics.vortices[%d].radius must be positive", i)
		}
	}

	sh := c.Shooting
	if sh.MaxActive < 0 || sh.MaxActive > MaxShootingStars {
		return invalid("shooting.max_active must be in [0, %d], got %d", MaxShootingStars, sh.MaxActive)
	}
	if sh.SpawnChance < 0 || sh.SpawnChance > 1 {
		return invalid("shooting.spawn_chance must be in [0, 1]")
	}
	if sh.Decay.Min <= 0 || sh.Decay.Max < sh.Decay.Min {
		return invalid("shooting.decay must be a positive range")
	}
	if sh.TrailCapacity < 1 {
		return invalid("shooting.trail_capacity must be at least 1")
	}

	if c.Moon.MinRadius <= 0 || c.Moon.MaxRadius < c.Moon.MinRadius {
		return invalid("moon radius bounds are inconsistent")
	}
	if c.Moon.PulsePeriod < 0 {
		return invalid("moon.pulse_period must not be negative")
	}
	if c.Dim.Floor < 0 || c.Dim.Floor > 1 {
		return invalid("dim.floor must be in [0, 1]")
	}
	if c.Dim.Span <= 0 {
		return invalid("dim.span must be positive")
	}
	return nil
}

// yamlColor is the mapping form of a Color in YAML.
type yamlColor struct {
	Hex   string   `yaml:"hex"`
	Alpha *float64 `yaml:"alpha"`
}

// UnmarshalYAML accepts either a "#rrggbb" scalar or a {hex, alpha} mapping.
func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	var yc yamlColor
	if n.Kind == yaml.ScalarNode {
		if err := n.Decode(&yc.Hex); err != nil {
			return err
		}
	} else if err := n.Decode(&yc); err != nil {
		return err
	}
	parsed, err := colorful.Hex(yc.Hex)
	if err != nil {
		return fmt.Errorf("line %d: color %q: %w", n.Line, yc.Hex, err)
	}
	*c = Color{R: parsed.R, G: parsed.G, B: parsed.B, A: 1}
	if yc.Alpha != nil {
		c.A = clamp01(*yc.Alpha)
	}
	return nil
}

// MarshalYAML writes opaque colors as a hex scalar and translucent ones as a
// {hex, alpha} mapping.
func (c Color) MarshalYAML() (any, error) {
	hex := colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hex()
	if c.A >= 1 {
		return hex, nil
	}
	a := c.A
	return yamlColor{Hex: hex, Alpha: &a}, nil
}
