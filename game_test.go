package starfield

import "testing"

func TestGameLayoutResizesScene(t *testing.T) {
	s := NewScene(testConfig(), WithSeed(1, 2))
	g := NewGame(s, DefaultRunConfig())

	w, h := g.Layout(320, 240)
	if w != 320 || h != 240 {
		t.Errorf("Layout = %dx%d, want 320x240", w, h)
	}
	l := s.Layout()
	if l.Width != 320 || l.Height != 240 {
		t.Errorf("scene surface = %vx%v, want 320x240", l.Width, l.Height)
	}
	if len(s.Stars()) == 0 {
		t.Error("scene has no stars after first layout")
	}

	g.Layout(640, 480)
	if l := s.Layout(); l.Width != 640 || l.Height != 480 {
		t.Errorf("scene surface = %vx%v after resize, want 640x480", l.Width, l.Height)
	}
}

func TestGameApplyReload(t *testing.T) {
	t.Run("nil channel", func(t *testing.T) {
		s := newTestScene(t, testConfig(), 400, 300)
		g := NewGame(s, RunConfig{})
		g.applyReload()
		if g.cfg.Reload != nil {
			t.Error("Reload became non-nil")
		}
	})

	t.Run("empty channel", func(t *testing.T) {
		s := newTestScene(t, testConfig(), 400, 300)
		ch := make(chan Config)
		g := NewGame(s, RunConfig{Reload: ch})
		g.applyReload()
		if g.cfg.Reload == nil {
			t.Error("open channel was dropped")
		}
		if s.Config().Stars.MaxStars != testConfig().Stars.MaxStars {
			t.Error("config changed without a delivery")
		}
	})

	t.Run("closed channel", func(t *testing.T) {
		s := newTestScene(t, testConfig(), 400, 300)
		ch := make(chan Config)
		close(ch)
		g := NewGame(s, RunConfig{Reload: ch})
		g.applyReload()
		if g.cfg.Reload != nil {
			t.Error("closed channel still polled")
		}
		// A second call must not block or panic.
		g.applyReload()
	})

	t.Run("delivered config", func(t *testing.T) {
		s := newTestScene(t, testConfig(), 400, 300)
		ch := make(chan Config, 1)
		next := testConfig()
		next.Stars.MaxStars = 7
		ch <- next
		g := NewGame(s, RunConfig{Reload: ch})
		g.applyReload()
		if got := s.Config().Stars.MaxStars; got != 7 {
			t.Errorf("MaxStars = %d, want 7", got)
		}
		if g.cfg.Reload == nil {
			t.Error("channel dropped after a delivery")
		}
	})
}
