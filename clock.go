package umbra

// maxFrameDelta caps the simulation step in milliseconds. A long stall (tab
// hidden, debugger, GC pause) otherwise produces one huge dt that teleports
// every entity.
const maxFrameDelta = 48.0

// frameClock tracks frame-to-frame elapsed time from a monotonic millisecond
// timestamp source.
type frameClock struct {
	last    float64
	started bool
}

// tick advances the clock to now and returns the clamped elapsed time in
// milliseconds. The first tick after creation or reset returns 0, as does a
// timestamp that runs backwards.
func (c *frameClock) tick(now float64) float64 {
	if !c.started {
		c.last = now
		c.started = true
		return 0
	}
	dt := now - c.last
	c.last = now
	if dt < 0 {
		return 0
	}
	if dt > maxFrameDelta {
		return maxFrameDelta
	}
	return dt
}

// reset clears the reference timestamp so the next tick returns 0.
// Called on resume so a pause does not surface as one giant delta.
func (c *frameClock) reset() {
	c.started = false
}
