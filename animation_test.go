package starfield

import "testing"

func TestFadeInRunsToOne(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FadeIn = 0.5
	a := newSceneAnimations(&cfg)
	if a.fade != 0 {
		t.Fatalf("initial fade = %v, want 0", a.fade)
	}

	prev := a.fade
	for i := 0; i < 40; i++ {
		a.update(1.0 / 60)
		if a.fade < prev {
			t.Fatalf("fade decreased from %v to %v", prev, a.fade)
		}
		prev = a.fade
	}
	if a.fade != 1 || a.fadeTween != nil {
		t.Errorf("fade = %v (tween %v), want finished at 1", a.fade, a.fadeTween != nil)
	}
}

func TestNoFadeStartsBright(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FadeIn = 0
	a := newSceneAnimations(&cfg)
	if a.fade != 1 || a.fadeTween != nil {
		t.Errorf("fade = %v, want 1 with no tween", a.fade)
	}
}

func TestPulseStaysInRangeAndSwings(t *testing.T) {
	cfg := DefaultConfig()
	ps := cfg.Moon.PulseScale
	a := newSceneAnimations(&cfg)

	const eps = 1e-4
	lo, hi := a.pulse, a.pulse
	// Two full periods.
	ticks := int(cfg.Moon.PulsePeriod * 60 * 2)
	for i := 0; i < ticks; i++ {
		a.update(1.0 / 60)
		if a.pulse < ps.Min-eps || a.pulse > ps.Max+eps {
			t.Fatalf("pulse %v outside [%v, %v]", a.pulse, ps.Min, ps.Max)
		}
		lo = min(lo, a.pulse)
		hi = max(hi, a.pulse)
	}
	if hi < ps.Max-0.01 || lo > ps.Min+0.01 {
		t.Errorf("pulse swung only between %v and %v", lo, hi)
	}
}

func TestPulseDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Moon.PulsePeriod = 0
	a := newSceneAnimations(&cfg)
	a.update(1)
	if a.pulseTween != nil {
		t.Error("no tween expected with zero period")
	}
	if a.pulse != cfg.Moon.PulseScale.Min {
		t.Errorf("pulse = %v, want %v", a.pulse, cfg.Moon.PulseScale.Min)
	}
}
