package umbra

// BlackHoleConfig controls the central glow and event-horizon disc. Both
// radii are fractions of min(surface width, surface height), so the hole
// scales with the smaller surface dimension.
type BlackHoleConfig struct {
	// GlowFactor is the outer glow radius as a fraction of min(w, h).
	GlowFactor float64
	// DiscFactor is the event-horizon disc radius as a fraction of min(w, h).
	DiscFactor float64
	// GlowColor is the color at the glow's center; it fades to transparent
	// at the rim.
	GlowColor Color
}

func defaultBlackHoleConfig() BlackHoleConfig {
	return BlackHoleConfig{
		GlowFactor: 0.30,
		DiscFactor: 0.11,
		GlowColor:  Color{R: 0.22, G: 0.10, B: 0.38, A: 0.9},
	}
}

func (c BlackHoleConfig) withDefaults() BlackHoleConfig {
	def := defaultBlackHoleConfig()
	if c.GlowFactor <= 0 {
		c.GlowFactor = def.GlowFactor
	}
	if c.DiscFactor <= 0 {
		c.DiscFactor = def.DiscFactor
	}
	if c.GlowColor == (Color{}) {
		c.GlowColor = def.GlowColor
	}
	return c
}
