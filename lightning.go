package umbra

// LightningConfig controls bolt spawning, path shape, and lifetime.
type LightningConfig struct {
	// Rate is the expected number of bolts per second. The per-frame
	// spawn probability is Rate * dt / 1000, so the spawn rate does not
	// depend on frame rate.
	Rate float64
	// MaxBolts caps the recent-bolts list. The oldest bolt is dropped on
	// overflow regardless of its remaining life.
	MaxBolts int
	// Life is the range of bolt lifetimes in milliseconds.
	Life Range
	// Segments is the range the jagged path's segment count is drawn
	// from. A path always has at least two points.
	Segments Range
	// Jitter is the maximum horizontal offset, in pixels, applied at each
	// step down the path.
	Jitter float64
	// StartBand is the fraction of the surface height the start point is
	// drawn from, measured from the top.
	StartBand float64
	// Span is the range of total vertical extents as fractions of the
	// surface height.
	Span Range
}

func defaultLightningConfig() LightningConfig {
	return LightningConfig{
		Rate:      0.4,
		MaxBolts:  4,
		Life:      Range{180, 420},
		Segments:  Range{6, 14},
		Jitter:    26,
		StartBand: 0.12,
		Span:      Range{0.25, 0.6},
	}
}

func (c LightningConfig) withDefaults() LightningConfig {
	def := defaultLightningConfig()
	if c.Rate <= 0 {
		c.Rate = def.Rate
	}
	if c.MaxBolts <= 0 {
		c.MaxBolts = def.MaxBolts
	}
	if c.Life == (Range{}) {
		c.Life = def.Life
	}
	if c.Segments == (Range{}) {
		c.Segments = def.Segments
	}
	if c.Jitter <= 0 {
		c.Jitter = def.Jitter
	}
	if c.StartBand <= 0 {
		c.StartBand = def.StartBand
	}
	if c.Span == (Range{}) {
		c.Span = def.Span
	}
	return c
}

// bolt is one lightning strike: a jagged polyline plus its age.
type bolt struct {
	points    []Vec2
	age, life float64 // ms
}

// boltList is the capacity-bounded recent-bolts collection, oldest first.
// Bolts leave it two independent ways: age expiry, and oldest-first
// eviction when a spawn overflows MaxBolts. A young bolt can be evicted
// purely by volume.
type boltList struct {
	cfg   LightningConfig
	bolts []bolt
}

func (l *boltList) init(cfg LightningConfig) {
	l.cfg = cfg
	l.bolts = make([]bolt, 0, cfg.MaxBolts)
}

// update ages every bolt by dt milliseconds, drops expired ones, then
// rolls the per-frame spawn.
func (l *boltList) update(dt float64, s *Scene) {
	n := 0
	for i := range l.bolts {
		b := l.bolts[i]
		b.age += dt
		if b.age > b.life {
			continue
		}
		l.bolts[n] = b
		n++
	}
	l.bolts = l.bolts[:n]

	if s.rng.Float64() < l.cfg.Rate*dt/1000 {
		l.spawn(s)
	}
}

// spawn generates a jagged path from a random point near the top of the
// surface down a random vertical span, then appends the bolt, evicting the
// oldest if the list is full.
func (l *boltList) spawn(s *Scene) {
	rng := s.rng
	x := rng.Float64() * s.width
	y := rng.Float64() * s.height * l.cfg.StartBand
	span := l.cfg.Span.Random(rng) * s.height
	segs := int(l.cfg.Segments.Random(rng))
	if segs < 1 {
		segs = 1
	}
	step := span / float64(segs)

	points := make([]Vec2, 0, segs+1)
	points = append(points, Vec2{x, y})
	for i := 0; i < segs; i++ {
		x += (rng.Float64()*2 - 1) * l.cfg.Jitter
		y += step + (rng.Float64()*2-1)*step*0.4
		points = append(points, Vec2{x, y})
	}

	if len(l.bolts) >= l.cfg.MaxBolts {
		copy(l.bolts, l.bolts[1:])
		l.bolts = l.bolts[:len(l.bolts)-1]
	}
	l.bolts = append(l.bolts, bolt{points: points, life: l.cfg.Life.Random(rng)})
}
