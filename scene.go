package umbra

import (
	"math"
	"math/rand/v2"
)

// Config holds every tunable for a Scene. Zero-value fields are replaced
// with defaults by NewScene, so callers only set what they want to change.
type Config struct {
	// Seed initializes the scene's random source. The same seed with the
	// same sequence of Advance timestamps reproduces the exact same run.
	Seed uint64
	// TimeScale is a global multiplier applied to all velocities and
	// accelerations. 1.0 is real time.
	TimeScale float64

	Stars     StarConfig
	BlackHole BlackHoleConfig
	Burst     BurstConfig
	Meteors   MeteorConfig
	Lightning LightningConfig
	Shake     ShakeConfig
}

// DefaultConfig returns the stock scene tuning.
func DefaultConfig() Config {
	return Config{
		Seed:      1,
		TimeScale: 1.0,
		Stars:     defaultStarConfig(),
		BlackHole: defaultBlackHoleConfig(),
		Burst:     defaultBurstConfig(),
		Meteors:   defaultMeteorConfig(),
		Lightning: defaultLightningConfig(),
		Shake:     defaultShakeConfig(),
	}
}

// Scene owns all effect pools and the frame clock. Advance mutates the
// pools; Draw only reads them. Exactly one of the two runs at a time, so
// the scene needs no locking.
type Scene struct {
	cfg Config
	rng *rand.Rand

	width, height    float64
	centerX, centerY float64
	pixelRatio       float64

	clock  frameClock
	paused bool
	now    float64 // timestamp of the most recent Advance, in ms

	lastBurst  float64
	burstFired bool

	stars   []star
	burst   burstPool
	meteors meteorPool
	bolts   boltList
	shake   shakePulse

	sprites spriteSet

	// ScreenshotDir is where queued screenshots are written. Defaults to
	// "screenshots".
	ScreenshotDir   string
	screenshotQueue []string

	debug bool
	stats frameStats
}

// NewScene creates a Scene with the given config. Zero-value config fields
// take defaults. The scene starts at 1x1; call Configure with the real
// surface size before the first frame.
func NewScene(cfg Config) *Scene {
	def := DefaultConfig()
	if cfg.TimeScale <= 0 {
		cfg.TimeScale = def.TimeScale
	}
	cfg.Stars = cfg.Stars.withDefaults()
	cfg.BlackHole = cfg.BlackHole.withDefaults()
	cfg.Burst = cfg.Burst.withDefaults()
	cfg.Meteors = cfg.Meteors.withDefaults()
	cfg.Lightning = cfg.Lightning.withDefaults()
	cfg.Shake = cfg.Shake.withDefaults()

	s := &Scene{
		cfg:           cfg,
		rng:           rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		pixelRatio:    1,
		ScreenshotDir: "screenshots",
	}
	s.burst.init(cfg.Burst)
	s.meteors.init(cfg.Meteors)
	s.bolts.init(cfg.Lightning)
	s.Configure(1, 1, 1)
	s.meteors.arm(s.rng)
	return s
}

// Configure sets the surface size in logical pixels and the device pixel
// ratio. Dimensions are clamped to a minimum of 1. Size-dependent geometry
// (center point, black hole radii, star positions) is recomputed; in-flight
// meteors and particles are never rescaled. Safe to call between any two
// frames.
func (s *Scene) Configure(width, height, pixelRatio float64) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	s.width, s.height = width, height
	s.centerX, s.centerY = width/2, height/2
	s.pixelRatio = pixelRatio
	s.sprites.holeDirty = true
	s.reseedStars()
}

// Size returns the surface dimensions in logical pixels.
func (s *Scene) Size() (w, h float64) {
	return s.width, s.height
}

// Center returns the surface center point.
func (s *Scene) Center() Vec2 {
	return Vec2{s.centerX, s.centerY}
}

// TimeScale returns the global time-scale multiplier.
func (s *Scene) TimeScale() float64 {
	return s.cfg.TimeScale
}

// Pause stops the simulation. Advance becomes a no-op until Resume.
func (s *Scene) Pause() {
	s.paused = true
}

// Resume restarts the simulation. The frame clock is reset so the first
// Advance after a pause sees a zero delta instead of the whole pause.
func (s *Scene) Resume() {
	s.paused = false
	s.clock.reset()
}

// IsPaused reports whether the scene is paused.
func (s *Scene) IsPaused() bool {
	return s.paused
}

// TriggerBurst fires the big-bang particle burst at the given timestamp:
// the particle pool is repopulated from the surface center, the post-burst
// ember window opens, and the companion shake pulse starts. This is the
// manual entry point external code calls on demand.
func (s *Scene) TriggerBurst(now float64) {
	s.burst.trigger(s.centerX, s.centerY, s.cfg.TimeScale, s.rng)
	s.lastBurst = now
	s.burstFired = true
	s.shake.start(s.cfg.Shake)
}

// LastBurst returns the timestamp of the most recent burst and whether one
// has fired at all.
func (s *Scene) LastBurst() (float64, bool) {
	return s.lastBurst, s.burstFired
}

// ShakeOffset returns the current companion-element shake offset. The host
// applies it to whatever UI element should react to a burst; when no
// element exists the value is simply unused.
func (s *Scene) ShakeOffset() ShakeOffset {
	return s.shake.current()
}

// bounds returns the surface rectangle in logical pixels.
func (s *Scene) bounds() Rect {
	return Rect{0, 0, s.width, s.height}
}

// Advance steps the simulation to the timestamp now (milliseconds from a
// monotonic source). Call once per displayed frame. While paused this is a
// no-op. The elapsed time since the previous Advance is clamped to
// maxFrameDelta before integration.
func (s *Scene) Advance(now float64) {
	if s.paused {
		return
	}
	t0 := debugNow(s.debug)

	dt := s.clock.tick(now)
	s.now = now

	s.meteors.update(dt, s)
	s.bolts.update(dt, s)
	if s.burstFired {
		s.burst.trickle(now-s.lastBurst, dt, s.centerX, s.centerY, s.cfg.TimeScale, s.rng)
	}
	s.burst.update(dt, s.cfg.TimeScale)
	s.shake.update(dt, s.rng)

	if s.debug {
		s.stats.advanceTime = debugSince(t0)
		s.stats.particles = s.burst.count()
		s.stats.meteors = len(s.meteors.live)
		s.stats.recycled = len(s.meteors.free)
		s.stats.bolts = len(s.bolts.bolts)
	}
}

// holeRadii returns the black hole glow and event-horizon disc radii for
// the current surface size.
func (s *Scene) holeRadii() (glow, disc float64) {
	m := math.Min(s.width, s.height)
	return m * s.cfg.BlackHole.GlowFactor, m * s.cfg.BlackHole.DiscFactor
}

// Dispose releases the scene's generated textures. The scene must not be
// drawn afterwards.
func (s *Scene) Dispose() {
	s.sprites.dispose()
}
