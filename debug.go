package umbra

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// frameStats holds per-frame timing and pool-count metrics.
// Only populated when Scene.debug is true.
type frameStats struct {
	advanceTime time.Duration
	drawTime    time.Duration
	particles   int
	meteors     int
	recycled    int
	bolts       int

	overlayText  string
	overlayClock float64
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// timing is logged to stderr and an FPS/pool-count overlay is drawn on top
// of the scene.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// debugNow returns the current time when debug timing is on, and the zero
// time otherwise so release frames skip the clock calls.
func debugNow(enabled bool) time.Time {
	if !enabled {
		return time.Time{}
	}
	return time.Now()
}

func debugSince(t0 time.Time) time.Duration {
	if t0.IsZero() {
		return 0
	}
	return time.Since(t0)
}

// debugLog prints frame timing and pool counts to stderr.
func (s *Scene) debugLog() {
	_, _ = fmt.Fprintf(os.Stderr,
		"[umbra] advance: %v | draw: %v | particles: %d | meteors: %d live / %d pooled | bolts: %d\n",
		s.stats.advanceTime, s.stats.drawTime,
		s.stats.particles, s.stats.meteors, s.stats.recycled, s.stats.bolts)
}

// overlayRefresh is how often, in milliseconds, the overlay text is
// rebuilt. Rebuilding every frame just churns strings.
const overlayRefresh = 500

// drawOverlay renders the FPS/TPS and pool-count readout in the top-left
// corner, refreshed at most every half second.
func (s *Scene) drawOverlay(screen *ebiten.Image) {
	if s.stats.overlayText == "" || s.now-s.stats.overlayClock >= overlayRefresh {
		s.stats.overlayClock = s.now
		s.stats.overlayText = fmt.Sprintf(
			"FPS: %.1f  TPS: %.1f\nparticles: %d\nmeteors: %d (+%d pooled)\nbolts: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			s.stats.particles, s.stats.meteors, s.stats.recycled, s.stats.bolts)
	}
	ebitenutil.DebugPrint(screen, s.stats.overlayText)
}
