package starfield

import (
	"testing"
)

// testConfig returns the default config with the intro fade and random
// shooting stars disabled so draws and ticks are predictable.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.FadeIn = 0
	cfg.Shooting.SpawnChance = 0
	return cfg
}

func newTestScene(t *testing.T, cfg Config, w, h int) *Scene {
	t.Helper()
	s := NewScene(cfg, WithSeed(1, 2))
	s.Resize(w, h)
	return s
}

// --- Construction ---

func TestNewSceneHasNoSurface(t *testing.T) {
	s := NewScene(DefaultConfig())
	if !s.Layout().Empty() {
		t.Error("new scene should have an empty layout")
	}
	if len(s.Stars()) != 0 {
		t.Errorf("stars = %d, want 0", len(s.Stars()))
	}
	if s.DimFactor() != 1 {
		t.Errorf("dim = %v, want 1", s.DimFactor())
	}
}

func TestUpdateWithoutSurfaceIsNoop(t *testing.T) {
	s := NewScene(DefaultConfig())
	for i := 0; i < 10; i++ {
		s.Update()
	}
	if s.Tick() != 0 {
		t.Errorf("tick = %d, want 0", s.Tick())
	}
	if len(s.ShootingStars()) != 0 {
		t.Error("no shooting stars should spawn without a surface")
	}
}

// --- Resize ---

func TestResizeGeneratesPopulation(t *testing.T) {
	s := newTestScene(t, DefaultConfig(), 1000, 800)
	if n := len(s.Stars()); n != 153 {
		t.Errorf("stars = %d, want 153", n)
	}
	l := s.Layout()
	if l.Width != 1000 || l.Height != 800 {
		t.Errorf("layout = %vx%v, want 1000x800", l.Width, l.Height)
	}
	if len(l.Vortices) != len(s.cfg.Physics.Vortices) {
		t.Errorf("vortices = %d, want %d", len(l.Vortices), len(s.cfg.Physics.Vortices))
	}
}

func TestResizeSameSizeIsNoop(t *testing.T) {
	s := newTestScene(t, DefaultConfig(), 640, 480)
	before := &s.stars[0]
	s.Resize(640, 480)
	if &s.stars[0] != before {
		t.Error("same-size resize regenerated the population")
	}
}

func TestResizeRegeneratesAndDropsShootingStars(t *testing.T) {
	cfg := testConfig()
	cfg.Shooting.SpawnChance = 1
	s := newTestScene(t, cfg, 640, 480)
	s.Update()
	if len(s.ShootingStars()) == 0 {
		t.Fatal("expected a shooting star")
	}

	s.Resize(1280, 960)
	if len(s.ShootingStars()) != 0 {
		t.Errorf("shooting stars = %d after resize, want 0", len(s.ShootingStars()))
	}
	want := PopulationSize(1280, 960, cfg.Stars)
	if len(s.Stars()) != want {
		t.Errorf("stars = %d, want %d", len(s.Stars()), want)
	}
	for _, st := range s.Stars() {
		if st.Trail.Len() != 0 {
			t.Fatal("regenerated star has trail samples")
		}
	}
}

func TestResizeToZeroClearsScene(t *testing.T) {
	s := newTestScene(t, DefaultConfig(), 640, 480)
	s.Resize(0, 0)
	if !s.Layout().Empty() || len(s.Stars()) != 0 {
		t.Error("zero-size resize should leave an empty scene")
	}
	s.Update()
	if s.Tick() != 0 {
		t.Errorf("tick = %d, want 0", s.Tick())
	}
}

// --- Reconfigure ---

func TestReconfigure(t *testing.T) {
	s := newTestScene(t, DefaultConfig(), 1000, 800)
	cfg := DefaultConfig()
	cfg.Stars.MaxStars = 20
	s.Reconfigure(cfg)

	if n := len(s.Stars()); n != 20 {
		t.Errorf("stars = %d, want 20", n)
	}
	if s.Config().Stars.MaxStars != 20 {
		t.Error("Config() did not return the new config")
	}
}

func TestReconfigureKeepsScrollDim(t *testing.T) {
	s := newTestScene(t, DefaultConfig(), 400, 300)
	s.SetScroll(1000, 300)

	cfg := DefaultConfig()
	cfg.Dim.Floor = 0.5
	s.Reconfigure(cfg)
	if !approx(s.DimFactor(), 0.5) {
		t.Errorf("dim = %v, want 0.5", s.DimFactor())
	}
}

// --- Ticks ---

func TestUpdateAdvancesTick(t *testing.T) {
	s := newTestScene(t, DefaultConfig(), 400, 300)
	for i := 0; i < 30; i++ {
		s.Update()
	}
	if s.Tick() != 30 {
		t.Errorf("tick = %d, want 30", s.Tick())
	}
	if !approx(s.Elapsed(), 0.5) {
		t.Errorf("elapsed = %v, want 0.5", s.Elapsed())
	}
}

func TestSeededScenesAreDeterministic(t *testing.T) {
	a := newTestScene(t, DefaultConfig(), 800, 600)
	b := newTestScene(t, DefaultConfig(), 800, 600)
	for i := 0; i < 200; i++ {
		a.Update()
		b.Update()
	}
	if len(a.Stars()) != len(b.Stars()) {
		t.Fatalf("populations differ: %d vs %d", len(a.Stars()), len(b.Stars()))
	}
	for i := range a.Stars() {
		sa, sb := a.Stars()[i], b.Stars()[i]
		if sa.X != sb.X || sa.Y != sb.Y || sa.Size != sb.Size {
			t.Fatalf("star %d differs: (%v,%v) vs (%v,%v)", i, sa.X, sa.Y, sb.X, sb.Y)
		}
	}
	if len(a.ShootingStars()) != len(b.ShootingStars()) {
		t.Error("shooting star counts differ")
	}
}

// --- Input samples ---

func TestPointerLastWriteWins(t *testing.T) {
	s := NewScene(DefaultConfig())
	s.SetPointer(1, 2)
	s.SetPointer(3, 4)
	p, ok := s.Pointer()
	if !ok || p != (Vec2{3, 4}) {
		t.Errorf("pointer = %v, %v; want (3,4), true", p, ok)
	}
	s.ClearPointer()
	if _, ok := s.Pointer(); ok {
		t.Error("pointer should be absent after ClearPointer")
	}
}

func TestBrightnessCombinesDimAndFade(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FadeIn = 0
	s := newTestScene(t, cfg, 400, 300)
	s.SetScroll(0.9*300, 300)
	if !approx(s.Brightness(), s.DimFactor()) {
		t.Errorf("brightness = %v, want %v", s.Brightness(), s.DimFactor())
	}

	cfg.FadeIn = 1
	s = newTestScene(t, cfg, 400, 300)
	if s.Brightness() != 0 {
		t.Errorf("brightness at start of fade = %v, want 0", s.Brightness())
	}
}
