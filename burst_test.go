package umbra

import "testing"

func testBurstPool(cfg BurstConfig) *burstPool {
	var p burstPool
	p.init(cfg.withDefaults())
	return &p
}

func TestBurstTriggerPopulatesExactCount(t *testing.T) {
	rng := testRand(1)
	p := testBurstPool(BurstConfig{Count: 50, MaxParticles: 100, Life: Range{500, 900}})
	p.trigger(400, 300, 1, rng)

	if p.count() != 50 {
		t.Fatalf("count after trigger = %d, want 50", p.count())
	}
	for i, q := range p.parts {
		if q.age != 0 {
			t.Errorf("particle %d age = %v, want 0", i, q.age)
		}
		if q.life < 500 || q.life > 900 {
			t.Errorf("particle %d life = %v, want in [500, 900]", i, q.life)
		}
		if q.x != 400 || q.y != 300 {
			t.Errorf("particle %d spawned at (%v, %v), want center (400, 300)", i, q.x, q.y)
		}
	}
}

func TestBurstTriggerClampedToCap(t *testing.T) {
	rng := testRand(1)
	p := testBurstPool(BurstConfig{Count: 500, MaxParticles: 120})
	p.trigger(0, 0, 1, rng)
	if p.count() != 120 {
		t.Errorf("count after oversized trigger = %d, want cap 120", p.count())
	}
}

func TestBurstCapEvictsOldestFirst(t *testing.T) {
	rng := testRand(1)
	p := testBurstPool(BurstConfig{Count: 4, MaxParticles: 4, Life: Range{100, 100}})
	p.trigger(0, 0, 1, rng)
	oldest := p.parts[0]

	p.spawn(99, 99, p.cfg.Speed, p.cfg.Life, 1, rng)

	if p.count() != 4 {
		t.Fatalf("count after spawn at cap = %d, want 4", p.count())
	}
	if p.parts[0] == oldest {
		t.Error("oldest particle survived eviction")
	}
	last := p.parts[3]
	if last.x != 99 || last.y != 99 {
		t.Errorf("newest particle at (%v, %v), want (99, 99)", last.x, last.y)
	}
}

func TestBurstAgeMonotonicAndExpiry(t *testing.T) {
	rng := testRand(2)
	p := testBurstPool(BurstConfig{Count: 100, MaxParticles: 100, Life: Range{100, 600}})
	p.trigger(0, 0, 1, rng)

	for frame := 0; frame < 50; frame++ {
		p.update(16, 1)
		for i := range p.parts {
			q := &p.parts[i]
			if q.age != float64(frame+1)*16 {
				t.Fatalf("frame %d: particle age = %v, want %v", frame, q.age, float64(frame+1)*16)
			}
			if q.age >= q.life {
				t.Fatalf("frame %d: particle with age %v >= life %v still in pool",
					frame, q.age, q.life)
			}
		}
	}
	if p.count() != 0 {
		// 50 frames * 16ms = 800ms > max life 600.
		t.Errorf("count after 800ms = %d, want 0", p.count())
	}
}

func TestBurstScenario800x600(t *testing.T) {
	// Trigger at t=0 on an 800x600 surface; at t=700ms every particle
	// with life < 700 must be gone.
	cfg := DefaultConfig()
	cfg.Seed = 3
	cfg.Burst.EmberWindow = 1 // keep the trickle out of the property
	s := NewScene(cfg)
	s.Configure(800, 600, 1)

	s.Advance(0)
	s.TriggerBurst(0)
	if got := s.burst.count(); got != cfg.Burst.Count && got != s.burst.cfg.MaxParticles {
		t.Fatalf("burst populated %d, want %d (or the cap)", got, cfg.Burst.Count)
	}

	for now := 16.0; now <= 700; now += 16 {
		s.Advance(now)
	}
	s.Advance(700)
	for i := range s.burst.parts {
		if s.burst.parts[i].life < 700 {
			t.Errorf("particle with life %v still alive at t=700", s.burst.parts[i].life)
		}
	}
}

func TestBurstGravityBendsPathsDown(t *testing.T) {
	rng := testRand(4)
	p := testBurstPool(BurstConfig{Count: 200, MaxParticles: 200, Life: Range{5000, 5000}, Gravity: 100})
	p.trigger(0, 0, 1, rng)

	sumVy0 := 0.0
	for i := range p.parts {
		sumVy0 += p.parts[i].vy
	}
	for i := 0; i < 30; i++ {
		p.update(16, 1)
	}
	sumVy := 0.0
	for i := range p.parts {
		sumVy += p.parts[i].vy
	}
	if sumVy <= sumVy0 {
		t.Errorf("mean vy did not increase under gravity: %v -> %v", sumVy0, sumVy)
	}
}

func TestBurstTrickleOnlyInsideWindow(t *testing.T) {
	rng := testRand(5)
	p := testBurstPool(BurstConfig{Count: 1, MaxParticles: 500, EmberWindow: 1200, EmberRate: 100000})
	p.trigger(0, 0, 1, rng)
	n := p.count()

	// Inside the window the huge rate guarantees a spawn each frame.
	p.trickle(100, 16, 0, 0, 1, rng)
	if p.count() != n+1 {
		t.Errorf("count after in-window trickle = %d, want %d", p.count(), n+1)
	}
	// Outside the window nothing spawns regardless of rate.
	p.trickle(1300, 16, 0, 0, 1, rng)
	if p.count() != n+1 {
		t.Errorf("count after out-of-window trickle = %d, want %d", p.count(), n+1)
	}
}

func TestBurstDeterministicWithSeed(t *testing.T) {
	mk := func() *burstPool {
		p := testBurstPool(BurstConfig{Count: 80, MaxParticles: 100})
		p.trigger(400, 300, 1, testRand(77))
		for i := 0; i < 40; i++ {
			p.update(16.67, 1)
		}
		return p
	}
	a, b := mk(), mk()
	if len(a.parts) != len(b.parts) {
		t.Fatalf("pool sizes diverged: %d vs %d", len(a.parts), len(b.parts))
	}
	for i := range a.parts {
		if a.parts[i] != b.parts[i] {
			t.Fatalf("particle %d diverged: %+v vs %+v", i, a.parts[i], b.parts[i])
		}
	}
}

func BenchmarkBurstUpdate(b *testing.B) {
	rng := testRand(1)
	p := testBurstPool(BurstConfig{Count: 300, MaxParticles: 300, Life: Range{1e9, 1e9}})
	p.trigger(400, 300, 1, rng)
	b.ReportAllocs()
	for b.Loop() {
		p.update(16.67, 1)
	}
}

func TestBurstUpdateAllocs(t *testing.T) {
	rng := testRand(1)
	p := testBurstPool(BurstConfig{Count: 300, MaxParticles: 300, Life: Range{1e9, 1e9}})
	p.trigger(400, 300, 1, rng)
	allocs := testing.AllocsPerRun(100, func() {
		p.update(16.67, 1)
	})
	if allocs != 0 {
		t.Errorf("update allocates %v times per frame, want 0", allocs)
	}
}
