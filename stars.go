package umbra

import "math"

// StarConfig controls the fixed-size twinkling star field.
type StarConfig struct {
	// Count is the number of stars. The set is reseeded, never grown or
	// shrunk, during a session.
	Count int
	// Radius is the range of star radii in pixels.
	Radius Range
	// BaseAlpha is the range of resting opacities.
	BaseAlpha Range
	// TwinkleSpeed is the range of twinkle angular speeds in radians per
	// millisecond.
	TwinkleSpeed Range
	// Amplitude is the opacity swing around BaseAlpha.
	Amplitude float64
	// MinAlpha is the floor the displayed opacity is clamped to.
	MinAlpha float64
}

func defaultStarConfig() StarConfig {
	return StarConfig{
		Count:        160,
		Radius:       Range{0.4, 1.6},
		BaseAlpha:    Range{0.25, 0.75},
		TwinkleSpeed: Range{0.0006, 0.0032},
		Amplitude:    0.3,
		MinAlpha:     0.05,
	}
}

func (c StarConfig) withDefaults() StarConfig {
	def := defaultStarConfig()
	if c.Count <= 0 {
		c.Count = def.Count
	}
	if c.Radius == (Range{}) {
		c.Radius = def.Radius
	}
	if c.BaseAlpha == (Range{}) {
		c.BaseAlpha = def.BaseAlpha
	}
	if c.TwinkleSpeed == (Range{}) {
		c.TwinkleSpeed = def.TwinkleSpeed
	}
	if c.Amplitude <= 0 {
		c.Amplitude = def.Amplitude
	}
	if c.MinAlpha <= 0 {
		c.MinAlpha = def.MinAlpha
	}
	return c
}

// star holds per-star state. Position and twinkle parameters are fixed at
// seed time; the displayed opacity is derived from the clock at draw time,
// so stars carry no per-frame mutable state at all.
type star struct {
	x, y      float64
	radius    float64
	baseAlpha float64
	phase     float64
	speed     float64
}

// reseedStars repopulates the star set across the current surface.
// Called from Configure, so a resize redistributes the field over the new
// bounds.
func (s *Scene) reseedStars() {
	cfg := s.cfg.Stars
	if cap(s.stars) < cfg.Count {
		s.stars = make([]star, cfg.Count)
	}
	s.stars = s.stars[:cfg.Count]
	for i := range s.stars {
		s.stars[i] = star{
			x:         s.rng.Float64() * s.width,
			y:         s.rng.Float64() * s.height,
			radius:    cfg.Radius.Random(s.rng),
			baseAlpha: cfg.BaseAlpha.Random(s.rng),
			phase:     s.rng.Float64() * 2 * math.Pi,
			speed:     cfg.TwinkleSpeed.Random(s.rng),
		}
	}
}

// starAlpha computes a star's displayed opacity at the given timestamp.
func (s *Scene) starAlpha(st *star, now float64) float64 {
	a := st.baseAlpha + math.Sin(now*st.speed*s.cfg.TimeScale+st.phase)*s.cfg.Stars.Amplitude
	return clamp(a, s.cfg.Stars.MinAlpha, 1)
}
