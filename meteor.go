package umbra

import (
	"math"
	"math/rand/v2"
)

// MeteorConfig controls meteor spawning, motion, and trails.
type MeteorConfig struct {
	// MaxConcurrent caps the number of live meteors.
	MaxConcurrent int
	// SpawnInterval is the range, in milliseconds, the next spawn delay is
	// drawn from after each spawn attempt.
	SpawnInterval Range
	// Speed is the range of spawn speeds in pixels per second.
	Speed Range
	// Life is the range of lifetimes in milliseconds.
	Life Range
	// Size is the range of head radii in pixels.
	Size Range
	// Hue is the range of trail hues in degrees.
	Hue Range
	// Gravity is the constant downward acceleration in px/s^2.
	Gravity float64
	// TopChance is the probability of the majority spawn branch: above the
	// surface with a downward-diagonal velocity. The rest spawn from a
	// side edge with a mostly horizontal velocity.
	TopChance float64
	// DiagonalAngle is the range of descent angles, in radians below the
	// horizontal, for top spawns. Mirrored left/right with equal chance.
	DiagonalAngle Range
	// SideAngle is the range of descent angles for side spawns.
	SideAngle Range
	// TrailMax is the maximum number of stored trail points.
	TrailMax int
	// TrailMinDist is the minimum distance, in pixels, a meteor must move
	// from the last stored trail point before a new point is appended.
	TrailMinDist float64
	// Margin is how far outside the surface, in pixels, a meteor may
	// travel before it is recycled.
	Margin float64
}

func defaultMeteorConfig() MeteorConfig {
	return MeteorConfig{
		MaxConcurrent: 6,
		SpawnInterval: Range{900, 3200},
		Speed:         Range{180, 420},
		Life:          Range{1400, 3200},
		Size:          Range{1.2, 2.6},
		Hue:           Range{18, 48},
		Gravity:       30,
		TopChance:     0.72,
		DiagonalAngle: Range{math.Pi * 0.28, math.Pi * 0.42},
		SideAngle:     Range{-0.08, 0.30},
		TrailMax:      24,
		TrailMinDist:  5,
		Margin:        80,
	}
}

func (c MeteorConfig) withDefaults() MeteorConfig {
	def := defaultMeteorConfig()
	if c.MaxConcurrent <= 0 {
		c.MaxConcurrent = def.MaxConcurrent
	}
	if c.SpawnInterval == (Range{}) {
		c.SpawnInterval = def.SpawnInterval
	}
	if c.Speed == (Range{}) {
		c.Speed = def.Speed
	}
	if c.Life == (Range{}) {
		c.Life = def.Life
	}
	if c.Size == (Range{}) {
		c.Size = def.Size
	}
	if c.Hue == (Range{}) {
		c.Hue = def.Hue
	}
	if c.Gravity == 0 {
		c.Gravity = def.Gravity
	}
	if c.TopChance <= 0 || c.TopChance > 1 {
		c.TopChance = def.TopChance
	}
	if c.DiagonalAngle == (Range{}) {
		c.DiagonalAngle = def.DiagonalAngle
	}
	if c.SideAngle == (Range{}) {
		c.SideAngle = def.SideAngle
	}
	if c.TrailMax <= 1 {
		c.TrailMax = def.TrailMax
	}
	if c.TrailMinDist <= 0 {
		c.TrailMinDist = def.TrailMinDist
	}
	if c.Margin <= 0 {
		c.Margin = def.Margin
	}
	return c
}

// meteor holds one meteor's state. The struct (and its trail backing
// array) is reused across spawns via the pool's free list.
type meteor struct {
	x, y      float64
	vx, vy    float64
	age, life float64 // ms
	size      float64
	hue       float64
	trail     []Vec2 // oldest first, newest last; never empty once spawned
}

// meteorPool manages live meteors plus a recycle list of retired storage.
// Retired meteors keep their trail capacity, so steady-state operation
// allocates nothing per spawn.
type meteorPool struct {
	cfg        MeteorConfig
	live       []*meteor
	free       []*meteor
	untilSpawn float64 // ms remaining before the next spawn attempt
}

func (p *meteorPool) init(cfg MeteorConfig) {
	p.cfg = cfg
	p.live = make([]*meteor, 0, cfg.MaxConcurrent)
	p.free = make([]*meteor, 0, cfg.MaxConcurrent)
}

// arm draws the first spawn delay.
func (p *meteorPool) arm(rng *rand.Rand) {
	p.untilSpawn = p.cfg.SpawnInterval.Random(rng)
}

// update runs the spawn timer and integrates every live meteor by dt
// milliseconds. Expired or far-off-surface meteors are swapped out of the
// live list and their storage pushed onto the free list.
func (p *meteorPool) update(dt float64, s *Scene) {
	p.untilSpawn -= dt
	if p.untilSpawn <= 0 {
		if len(p.live) < p.cfg.MaxConcurrent {
			p.spawn(s)
		}
		p.untilSpawn = p.cfg.SpawnInterval.Random(s.rng)
	}

	ts := s.cfg.TimeScale
	g := p.cfg.Gravity * dt / 1000 * ts
	k := dt / 1000 * ts
	bounds := s.bounds().Expand(p.cfg.Margin)
	minDist2 := p.cfg.TrailMinDist * p.cfg.TrailMinDist

	i := 0
	for i < len(p.live) {
		m := p.live[i]
		m.age += dt
		m.vy += g
		m.x += m.vx * k
		m.y += m.vy * k

		// Trail is primed at spawn, so the last point always exists.
		last := &m.trail[len(m.trail)-1]
		dx := m.x - last.X
		dy := m.y - last.Y
		if dx*dx+dy*dy >= minDist2 {
			m.trail = append(m.trail, Vec2{m.x, m.y})
			if len(m.trail) > p.cfg.TrailMax {
				copy(m.trail, m.trail[1:])
				m.trail = m.trail[:len(m.trail)-1]
			}
		} else {
			last.X, last.Y = m.x, m.y
		}

		if m.age > m.life || !bounds.Contains(m.x, m.y) {
			n := len(p.live) - 1
			p.live[i] = p.live[n]
			p.live = p.live[:n]
			p.free = append(p.free, m)
			continue
		}
		i++
	}
}

// spawn takes storage from the free list (or allocates on first use),
// rolls the spawn branch, and primes the trail with the spawn point.
func (p *meteorPool) spawn(s *Scene) {
	var m *meteor
	if n := len(p.free); n > 0 {
		m = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		m = &meteor{trail: make([]Vec2, 0, p.cfg.TrailMax+1)}
	}

	rng := s.rng
	ts := s.cfg.TimeScale
	speed := p.cfg.Speed.Random(rng)

	if rng.Float64() < p.cfg.TopChance {
		// Above the surface, falling on a diagonal. Mirrored left or
		// right with equal chance.
		angle := p.cfg.DiagonalAngle.Random(rng)
		dir := 1.0
		if rng.Float64() < 0.5 {
			dir = -1
		}
		m.x = rng.Float64() * s.width
		m.y = -p.cfg.Size.Max * 4
		m.vx = math.Cos(angle) * speed * dir * ts
		m.vy = math.Sin(angle) * speed * ts
	} else {
		// Side edge, mostly horizontal, crossing toward the far side.
		angle := p.cfg.SideAngle.Random(rng)
		m.y = rng.Float64() * s.height * 0.6
		if rng.Float64() < 0.5 {
			m.x = -p.cfg.Size.Max * 4
			m.vx = math.Cos(angle) * speed * ts
		} else {
			m.x = s.width + p.cfg.Size.Max*4
			m.vx = -math.Cos(angle) * speed * ts
		}
		m.vy = math.Sin(angle) * speed * ts
	}

	m.age = 0
	m.life = p.cfg.Life.Random(rng)
	m.size = p.cfg.Size.Random(rng)
	m.hue = p.cfg.Hue.Random(rng)
	m.trail = m.trail[:0]
	m.trail = append(m.trail, Vec2{m.x, m.y})
	p.live = append(p.live, m)
}
