package umbra

import (
	"math"
	"math/rand/v2"
)

// BurstConfig controls the big-bang particle burst and its post-burst ember
// trickle.
type BurstConfig struct {
	// Count is the number of particles spawned by a single trigger.
	Count int
	// MaxParticles caps the total live count, embers included. When a
	// spawn would exceed it the oldest particle is dropped first.
	MaxParticles int
	// Speed is the range of initial radial speeds in pixels per second.
	Speed Range
	// Life is the range of particle lifetimes in milliseconds.
	Life Range
	// Size is the range of particle radii in pixels at birth.
	Size Range
	// Hue is the range of spawn hues in degrees. Defaults cover the warm
	// orange-to-yellow band.
	Hue Range
	// Gravity is the constant downward acceleration in px/s^2.
	Gravity float64
	// EmberWindow is how long after a trigger, in milliseconds, embers
	// keep trickling in near the center.
	EmberWindow float64
	// EmberRate is the expected number of embers per second inside the
	// window.
	EmberRate float64
	// EmberSpeed and EmberLife parameterize the trickled embers.
	EmberSpeed Range
	EmberLife  Range
}

func defaultBurstConfig() BurstConfig {
	return BurstConfig{
		Count:        220,
		MaxParticles: 300,
		Speed:        Range{40, 260},
		Life:         Range{600, 1700},
		Size:         Range{1.0, 3.2},
		Hue:          Range{8, 55},
		Gravity:      55,
		EmberWindow:  1200,
		EmberRate:    24,
		EmberSpeed:   Range{10, 70},
		EmberLife:    Range{250, 700},
	}
}

func (c BurstConfig) withDefaults() BurstConfig {
	def := defaultBurstConfig()
	if c.Count <= 0 {
		c.Count = def.Count
	}
	if c.MaxParticles <= 0 {
		c.MaxParticles = def.MaxParticles
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
	if c.EmberWindow <= 0 {
		c.EmberWindow = def.EmberWindow
	}
	if c.EmberRate <= 0 {
		c.EmberRate = def.EmberRate
	}
	if c.EmberSpeed == (Range{}) {
		c.EmberSpeed = def.EmberSpeed
	}
	if c.EmberLife == (Range{}) {
		c.EmberLife = def.EmberLife
	}
	return c
}

// burstParticle holds per-particle simulation state. Cheap to copy; the
// pool stores values, not pointers.
type burstParticle struct {
	x, y      float64
	vx, vy    float64
	age, life float64 // ms
	size      float64
	r, g, b   float64
}

// burstPool is the big-bang particle collection, kept in spawn order so
// capacity eviction can drop the oldest particle first.
type burstPool struct {
	cfg   BurstConfig
	parts []burstParticle
}

func (p *burstPool) init(cfg BurstConfig) {
	p.cfg = cfg
	p.parts = make([]burstParticle, 0, cfg.MaxParticles)
}

func (p *burstPool) count() int {
	return len(p.parts)
}

// trigger clears the pool and repopulates it with a full burst radiating
// from (cx, cy). Spawn velocities are pre-scaled by timeScale.
func (p *burstPool) trigger(cx, cy, timeScale float64, rng *rand.Rand) {
	p.parts = p.parts[:0]
	n := p.cfg.Count
	if n > p.cfg.MaxParticles {
		n = p.cfg.MaxParticles
	}
	for i := 0; i < n; i++ {
		p.spawn(cx, cy, p.cfg.Speed, p.cfg.Life, timeScale, rng)
	}
}

// spawn adds one particle, evicting the oldest when the pool is at
// capacity.
func (p *burstPool) spawn(cx, cy float64, speed, life Range, timeScale float64, rng *rand.Rand) {
	if len(p.parts) >= p.cfg.MaxParticles {
		copy(p.parts, p.parts[1:])
		p.parts = p.parts[:len(p.parts)-1]
	}
	angle := rng.Float64() * 2 * math.Pi
	sp := speed.Random(rng)
	r, g, b := hsv(p.cfg.Hue.Random(rng), 0.85, 1)
	p.parts = append(p.parts, burstParticle{
		x:    cx,
		y:    cy,
		vx:   math.Cos(angle) * sp * timeScale,
		vy:   math.Sin(angle) * sp * timeScale,
		life: life.Random(rng),
		size: p.cfg.Size.Random(rng),
		r:    r,
		g:    g,
		b:    b,
	})
}

// trickle rolls the per-frame ember spawn while the post-burst window is
// open. The probability scales with dt so the expected ember rate does not
// depend on frame rate.
func (p *burstPool) trickle(sinceBurst, dt, cx, cy, timeScale float64, rng *rand.Rand) {
	if sinceBurst < 0 || sinceBurst > p.cfg.EmberWindow {
		return
	}
	if rng.Float64() < p.cfg.EmberRate*dt/1000 {
		jx := (rng.Float64()*2 - 1) * 6
		jy := (rng.Float64()*2 - 1) * 6
		p.spawn(cx+jx, cy+jy, p.cfg.EmberSpeed, p.cfg.EmberLife, timeScale, rng)
	}
}

// update ages and integrates every particle by dt milliseconds, dropping
// expired ones while preserving spawn order.
func (p *burstPool) update(dt, timeScale float64) {
	g := p.cfg.Gravity * dt / 1000 * timeScale
	k := dt / 1000 * timeScale
	n := 0
	for i := range p.parts {
		q := p.parts[i]
		q.age += dt
		if q.age >= q.life {
			continue
		}
		q.vy += g
		q.x += q.vx * k
		q.y += q.vy * k
		p.parts[n] = q
		n++
	}
	p.parts = p.parts[:n]
}
