package umbra

import "testing"

func testLightningScene(seed uint64, lcfg LightningConfig) *Scene {
	cfg := DefaultConfig()
	cfg.Seed = seed
	cfg.Lightning = lcfg
	// Keep meteors quiet so only the bolt list moves.
	cfg.Meteors.SpawnInterval = Range{1e12, 1e12}
	s := NewScene(cfg)
	s.Configure(800, 600, 1)
	return s
}

func TestBoltPathShape(t *testing.T) {
	s := testLightningScene(1, LightningConfig{Segments: Range{6, 14}, StartBand: 0.12})
	l := &s.bolts
	for i := 0; i < 100; i++ {
		l.spawn(s)
		b := &l.bolts[len(l.bolts)-1]
		if len(b.points) < 2 {
			t.Fatalf("bolt %d has %d points, want >= 2", i, len(b.points))
		}
		start := b.points[0]
		if start.Y < 0 || start.Y > s.height*l.cfg.StartBand {
			t.Fatalf("bolt %d starts at y=%v, want within the top band [0, %v]",
				i, start.Y, s.height*l.cfg.StartBand)
		}
		end := b.points[len(b.points)-1]
		if end.Y <= start.Y {
			t.Fatalf("bolt %d ends at y=%v above its start y=%v", i, end.Y, start.Y)
		}
		if b.age != 0 {
			t.Fatalf("bolt %d age = %v, want 0", i, b.age)
		}
	}
}

func TestBoltCapacityEvictsOldest(t *testing.T) {
	s := testLightningScene(2, LightningConfig{MaxBolts: 3})
	l := &s.bolts
	for i := 0; i < 5; i++ {
		l.spawn(s)
	}
	if len(l.bolts) != 3 {
		t.Fatalf("bolts = %d after 5 spawns, want cap 3", len(l.bolts))
	}
}

func TestBoltYoungEvictedByVolume(t *testing.T) {
	// Capacity eviction is independent of age: a bolt far from expiry is
	// still dropped once enough newer bolts arrive.
	s := testLightningScene(3, LightningConfig{MaxBolts: 2, Life: Range{10000, 10000}})
	l := &s.bolts
	l.spawn(s)
	victim := &l.bolts[0]
	victimStart := victim.points[0]

	l.spawn(s)
	l.spawn(s) // overflows: the first bolt goes despite age 0

	if len(l.bolts) != 2 {
		t.Fatalf("bolts = %d, want 2", len(l.bolts))
	}
	// Start points are continuous random draws, so an equal start means
	// the victim survived.
	if l.bolts[0].points[0] == victimStart {
		t.Fatal("oldest bolt survived capacity eviction")
	}
}

func TestBoltAgeExpiry(t *testing.T) {
	s := testLightningScene(4, LightningConfig{MaxBolts: 8, Life: Range{100, 100}, Rate: 1e-12})
	l := &s.bolts
	l.spawn(s)
	l.update(50, s)
	if len(l.bolts) != 1 {
		t.Fatalf("bolts = %d at age 50/100, want 1", len(l.bolts))
	}
	if l.bolts[0].age != 50 {
		t.Errorf("age = %v, want 50", l.bolts[0].age)
	}
	l.update(51, s)
	if len(l.bolts) != 0 {
		t.Errorf("bolts = %d at age 101/100, want 0", len(l.bolts))
	}
}

func TestBoltSpawnRateScalesWithDt(t *testing.T) {
	// With rate*dt/1000 >= 1 the roll always succeeds, so each update
	// spawns exactly one bolt.
	s := testLightningScene(5, LightningConfig{Rate: 100000, MaxBolts: 100, Life: Range{1e9, 1e9}})
	l := &s.bolts
	for i := 0; i < 10; i++ {
		l.update(16, s)
	}
	if len(l.bolts) != 10 {
		t.Errorf("bolts = %d after 10 certain-spawn updates, want 10", len(l.bolts))
	}
	// A zero dt can never spawn, whatever the rate.
	before := len(l.bolts)
	l.update(0, s)
	if len(l.bolts) != before {
		t.Errorf("bolts = %d after zero-dt update, want %d", len(l.bolts), before)
	}
}
