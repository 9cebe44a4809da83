package umbra

import "testing"

func TestFrameClockFirstTickIsZero(t *testing.T) {
	var c frameClock
	if dt := c.tick(1000); dt != 0 {
		t.Errorf("first tick = %v, want 0", dt)
	}
}

func TestFrameClockDeltas(t *testing.T) {
	var c frameClock
	c.tick(1000)
	tests := []struct {
		name string
		now  float64
		want float64
	}{
		{"normal 16ms", 1016, 16},
		{"normal 32ms", 1048, 32},
		{"clamped to ceiling", 2000, maxFrameDelta},
		{"backwards timestamp", 1500, 0},
		{"recovers after backwards", 1516, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.tick(tt.now); got != tt.want {
				t.Errorf("tick(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestFrameClockResetSwallowsPause(t *testing.T) {
	var c frameClock
	c.tick(0)
	c.tick(16)
	// A pause happens here; resume resets the reference.
	c.reset()
	if dt := c.tick(60000); dt != 0 {
		t.Errorf("first tick after reset = %v, want 0", dt)
	}
	if dt := c.tick(60016); dt != 16 {
		t.Errorf("second tick after reset = %v, want 16", dt)
	}
}

func BenchmarkFrameClockTick(b *testing.B) {
	var c frameClock
	now := 0.0
	b.ReportAllocs()
	for b.Loop() {
		now += 16.67
		_ = c.tick(now)
	}
}
