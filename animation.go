package starfield

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// sceneAnimations drives the time-based cosmetic values of a scene: the intro
// fade and the moon glow pulse. Both advance by the fixed tick step.
type sceneAnimations struct {
	// fade multiplies every drawn alpha; it runs from 0 to 1 once.
	fade      float64
	fadeTween *gween.Tween

	// pulse scales the moon glow radius, swinging between PulseScale bounds.
	pulse      float64
	pulseTween *gween.Tween
	rising     bool
	pulseFrom  float64
	pulseTo    float64
	halfPeriod float32
}

func newSceneAnimations(cfg *Config) sceneAnimations {
	a := sceneAnimations{fade: 1}
	if cfg.FadeIn > 0 {
		a.fade = 0
		a.fadeTween = gween.New(0, 1, float32(cfg.FadeIn), ease.OutQuad)
	}
	a.setPulse(cfg.Moon)
	return a
}

// reconfigure picks up new pulse bounds. A running intro fade continues.
func (a *sceneAnimations) reconfigure(cfg *Config) {
	a.setPulse(cfg.Moon)
}

func (a *sceneAnimations) setPulse(m MoonConfig) {
	a.pulseFrom, a.pulseTo = m.PulseScale.Min, m.PulseScale.Max
	a.halfPeriod = float32(m.PulsePeriod / 2)
	a.pulse = a.pulseFrom
	a.pulseTween = nil
	if a.halfPeriod <= 0 || a.pulseFrom == a.pulseTo {
		if a.pulse == 0 {
			a.pulse = 1
		}
		return
	}
	a.rising = true
	a.pulseTween = gween.New(float32(a.pulseFrom), float32(a.pulseTo), a.halfPeriod, ease.InOutSine)
}

// update advances both animations by dt seconds.
func (a *sceneAnimations) update(dt float32) {
	if a.fadeTween != nil {
		val, done := a.fadeTween.Update(dt)
		a.fade = float64(val)
		if done {
			a.fade = 1
			a.fadeTween = nil
		}
	}

	if a.pulseTween != nil {
		val, done := a.pulseTween.Update(dt)
		a.pulse = float64(val)
		if done {
			// Swing back the other way.
			a.rising = !a.rising
			from, to := a.pulseFrom, a.pulseTo
			if !a.rising {
				from, to = to, from
			}
			a.pulseTween = gween.New(float32(from), float32(to), a.halfPeriod, ease.InOutSine)
		}
	}
}
