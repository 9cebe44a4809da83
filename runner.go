package umbra

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RunConfig controls the window Run creates.
type RunConfig struct {
	Title         string
	Width, Height int
	Resizable     bool
	// Debug enables the scene's debug overlay and stderr timing log.
	Debug bool
	// FadeIn, when positive, fades the scene in from black over this many
	// seconds after startup.
	FadeIn float64
	// OnFrame, when set, is called once per frame after the scene has
	// advanced, with the frame timestamp in milliseconds. Hosts use it to
	// wire input (e.g. a click that calls Scene.TriggerBurst) without
	// implementing ebiten.Game themselves.
	OnFrame func(s *Scene, now float64)
}

// Run opens a window and drives the scene until the window is closed.
// The frame loop pauses while the window is minimized and resumes with a
// reset clock, so a long stint in the taskbar never lands as one giant
// simulation step.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = "umbra"
	}
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	scene.SetDebugMode(cfg.Debug)

	g := &runnerGame{scene: scene, cfg: cfg, epoch: time.Now()}
	if cfg.FadeIn > 0 {
		g.fade = gween.New(1, 0, float32(cfg.FadeIn), ease.OutQuad)
	}
	return ebiten.RunGame(g)
}

// runnerGame adapts a Scene to ebiten.Game.
type runnerGame struct {
	scene *Scene
	cfg   RunConfig
	epoch time.Time

	fade      *gween.Tween
	fadeAlpha float64

	minimized bool
	w, h      int
	ratio     float64
}

func (g *runnerGame) Update() error {
	if ebiten.IsWindowMinimized() {
		if !g.minimized {
			g.minimized = true
			g.scene.Pause()
		}
		return nil
	}
	if g.minimized {
		g.minimized = false
		g.scene.Resume()
	}

	now := float64(time.Since(g.epoch).Microseconds()) / 1000
	g.scene.Advance(now)

	if g.fade != nil {
		a, done := g.fade.Update(float32(1.0 / float64(ebiten.TPS())))
		g.fadeAlpha = float64(a)
		if done {
			g.fade = nil
			g.fadeAlpha = 0
		}
	}
	if g.cfg.OnFrame != nil {
		g.cfg.OnFrame(g.scene, now)
	}
	return nil
}

func (g *runnerGame) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.fadeAlpha > 0 {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(w), float64(h))
		op.ColorScale.Scale(0, 0, 0, float32(g.fadeAlpha))
		screen.DrawImage(WhitePixel, op)
	}
}

func (g *runnerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	ratio := ebiten.Monitor().DeviceScaleFactor()
	if outsideWidth != g.w || outsideHeight != g.h || ratio != g.ratio {
		g.w, g.h, g.ratio = outsideWidth, outsideHeight, ratio
		g.scene.Configure(float64(outsideWidth), float64(outsideHeight), ratio)
	}
	return outsideWidth, outsideHeight
}
