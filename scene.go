package starfield

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// Scene is the top-level object that owns the star population, the surface
// layout, input samples and render state. It is not safe for concurrent use;
// Update, Draw, Resize and the input setters must run on one goroutine.
type Scene struct {
	cfg     Config
	rng     *rand.Rand
	factory *Factory
	layout  Layout

	stars    []Star
	shooting []ShootingStar

	// Input samples. Last write wins; the next tick observes them.
	pointer    Vec2
	hasPointer bool
	scroll     float64
	viewportH  float64
	dim        float64

	tick     uint64
	anim     sceneAnimations
	renderer *Renderer

	logger *zap.Logger
	debug  bool
	stats  debugStats

	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	screenshotQueue []string

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string
}

// Option configures a Scene at construction.
type Option func(*Scene)

// WithSeed seeds the scene's random source with a PCG generator.
func WithSeed(seed1, seed2 uint64) Option {
	return func(s *Scene) {
		s.rng = rand.New(rand.NewPCG(seed1, seed2))
	}
}

// WithRand uses r as the scene's random source.
func WithRand(r *rand.Rand) Option {
	return func(s *Scene) {
		s.rng = r
	}
}

// WithLogger sets the logger used for debug stats and lifecycle events.
func WithLogger(l *zap.Logger) Option {
	return func(s *Scene) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDebug enables per-interval frame stats logging.
func WithDebug(enabled bool) Option {
	return func(s *Scene) {
		s.debug = enabled
	}
}

// NewScene creates a scene with no drawing surface. Until Resize is called
// with a non-empty size, Update and Draw do nothing.
func NewScene(cfg Config, opts ...Option) *Scene {
	s := &Scene{
		cfg:           cfg,
		logger:        zap.NewNop(),
		dim:           1,
		ScreenshotDir: "screenshots",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		now := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(now, now>>17|1))
	}
	s.factory = NewFactory(&s.cfg, s.rng)
	s.renderer = NewRenderer(&s.cfg)
	s.anim = newSceneAnimations(&s.cfg)
	return s
}

// Config returns a copy of the active configuration.
func (s *Scene) Config() Config {
	return s.cfg
}

// Resize sets the drawing surface size. A change of size discards every star
// and shooting star and regenerates the layout and population; in-flight
// trails are lost. Calling Resize with the current size is a no-op.
func (s *Scene) Resize(w, h int) {
	if float64(w) == s.layout.Width && float64(h) == s.layout.Height {
		return
	}
	s.regenerate(w, h)
}

// Reconfigure replaces the configuration and regenerates the scene at the
// current surface size.
func (s *Scene) Reconfigure(cfg Config) {
	s.cfg = cfg
	s.anim.reconfigure(&s.cfg)
	s.regenerate(int(s.layout.Width), int(s.layout.Height))
	s.SetScroll(s.scroll, s.viewportH)
	s.logger.Info("config applied", zap.Int("stars", len(s.stars)))
}

func (s *Scene) regenerate(w, h int) {
	if w <= 0 || h <= 0 {
		s.layout = Layout{}
		s.stars = nil
		s.shooting = nil
		return
	}
	s.layout = NewLayout(w, h, &s.cfg)
	s.stars = s.factory.NewStars(w, h)
	s.shooting = s.shooting[:0]
	if s.viewportH == 0 {
		s.viewportH = float64(h)
	}
	s.logger.Debug("surface resized",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("stars", len(s.stars)),
		zap.Int("vortices", len(s.layout.Vortices)))
}

// SetPointer records the pointer position over the surface.
func (s *Scene) SetPointer(x, y float64) {
	s.pointer = Vec2{x, y}
	s.hasPointer = true
}

// ClearPointer marks the pointer as absent. Pointer forces are skipped until
// the next SetPointer.
func (s *Scene) ClearPointer() {
	s.hasPointer = false
}

// Pointer returns the current pointer sample and whether it is present.
func (s *Scene) Pointer() (Vec2, bool) {
	return s.pointer, s.hasPointer
}

// SetScroll records the page scroll offset and the viewport height it is
// measured against, and recomputes the dim factor.
func (s *Scene) SetScroll(offset, viewportHeight float64) {
	s.scroll = offset
	s.viewportH = viewportHeight
	s.dim = DimFactor(offset, viewportHeight, s.cfg.Dim)
}

// Scroll returns the last recorded scroll offset.
func (s *Scene) Scroll() float64 {
	return s.scroll
}

// DimFactor returns the current scroll-derived brightness in [Floor, 1].
func (s *Scene) DimFactor() float64 {
	return s.dim
}

// Brightness is the multiplier applied to every drawn alpha: the dim factor
// times the intro fade.
func (s *Scene) Brightness() float64 {
	return s.dim * s.anim.fade
}

// Tick returns the number of completed updates.
func (s *Scene) Tick() uint64 {
	return s.tick
}

// Elapsed returns the nominal scene time in seconds (ticks / TickRate).
func (s *Scene) Elapsed() float64 {
	return float64(s.tick) / float64(s.cfg.TickRate)
}

// Layout returns the current surface geometry.
func (s *Scene) Layout() Layout {
	return s.layout
}

// Stars returns the star population. The returned slice MUST NOT be mutated.
func (s *Scene) Stars() []Star {
	return s.stars
}

// ShootingStars returns the active shooting stars. The returned slice MUST
// NOT be mutated.
func (s *Scene) ShootingStars() []ShootingStar {
	return s.shooting
}

// Update advances the scene by one tick: shooting-star spawn, star physics,
// shooting-star lifecycle, then animations.
func (s *Scene) Update() {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInjected()

	if s.layout.Empty() {
		return
	}

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.maybeSpawnShootingStar()
	s.stepStars()
	s.stepShootingStars()
	s.anim.update(float32(1.0 / float64(s.cfg.TickRate)))
	s.tick++

	if s.debug {
		s.stats.updateTime += time.Since(t0)
		s.stats.updates++
	}
}

// Draw renders the scene onto c. With no surface it draws nothing.
func (s *Scene) Draw(c Canvas) {
	if s.layout.Empty() || c == nil {
		return
	}
	if !s.debug {
		s.renderer.Draw(c, s)
		return
	}

	t0 := time.Now()
	cc := &countingCanvas{Canvas: c}
	s.renderer.Draw(cc, s)
	s.stats.drawTime += time.Since(t0)
	s.stats.drawOps += cc.ops
	s.stats.frames++
	if s.stats.frames >= debugLogInterval {
		s.debugLog()
	}
}

// SetDebugMode enables or disables periodic frame stats logging.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	s.stats = debugStats{}
}
