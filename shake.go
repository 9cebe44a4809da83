package umbra

import (
	"math/rand/v2"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ShakeConfig controls the companion-element shake pulse fired with each
// burst.
type ShakeConfig struct {
	// Amplitude is the maximum positional offset in pixels.
	Amplitude float64
	// Duration is the pulse length in milliseconds. The amplitude decays
	// linearly to zero over this window.
	Duration float64
}

func defaultShakeConfig() ShakeConfig {
	return ShakeConfig{Amplitude: 5, Duration: 600}
}

func (c ShakeConfig) withDefaults() ShakeConfig {
	def := defaultShakeConfig()
	if c.Amplitude <= 0 {
		c.Amplitude = def.Amplitude
	}
	if c.Duration <= 0 {
		c.Duration = def.Duration
	}
	return c
}

// ShakeOffset is the presentation effect a burst emits for an optional
// companion UI element: a positional offset plus an active flag. The core
// never touches any UI itself; the host applies the offset to whatever
// element it wants shaken, or ignores it.
type ShakeOffset struct {
	Offset Vec2
	Active bool
}

// shakePulse drives the decaying jitter. The amplitude envelope is a
// linear tween from the configured amplitude to zero; each frame picks a
// fresh random offset inside the current envelope.
type shakePulse struct {
	tween  *gween.Tween
	offset Vec2
}

func (p *shakePulse) start(cfg ShakeConfig) {
	p.tween = gween.New(float32(cfg.Amplitude), 0, float32(cfg.Duration/1000), ease.Linear)
}

func (p *shakePulse) update(dt float64, rng *rand.Rand) {
	if p.tween == nil {
		return
	}
	amp, done := p.tween.Update(float32(dt / 1000))
	if done {
		p.tween = nil
		p.offset = Vec2{}
		return
	}
	a := float64(amp)
	p.offset = Vec2{
		X: (rng.Float64()*2 - 1) * a,
		Y: (rng.Float64()*2 - 1) * a,
	}
}

func (p *shakePulse) current() ShakeOffset {
	return ShakeOffset{Offset: p.offset, Active: p.tween != nil}
}
