// Package umbra renders a continuously animated cosmic backdrop for
// [Ebitengine]: a twinkling star field, a central black hole, recurring
// "big bang" particle bursts, streaking meteors with fading trails, and
// intermittent lightning.
//
// All state lives on a [Scene]. Every frame, [Scene.Advance] steps the
// simulation by the elapsed time and [Scene.Draw] paints the layers in a
// fixed compositing order. Every entity pool is capacity-bounded and
// meteor storage is recycled, so memory stays flat no matter how long the
// scene runs.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and
// game loop for you:
//
//	scene := umbra.NewScene(umbra.DefaultConfig())
//	umbra.Run(scene, umbra.RunConfig{
//		Title: "Cosmos", Width: 800, Height: 600, Resizable: true,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Advance] and [Scene.Draw] directly:
//
//	type Game struct {
//		scene *umbra.Scene
//		epoch time.Time
//	}
//
//	func (g *Game) Update() error {
//		g.scene.Advance(float64(time.Since(g.epoch).Microseconds()) / 1000)
//		return nil
//	}
//	func (g *Game) Draw(s *ebiten.Image) { g.scene.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) {
//		g.scene.Configure(float64(w), float64(h), 1)
//		return w, h
//	}
//
// Timestamps are milliseconds from any monotonic source; [Scene.Advance]
// clamps outlier deltas so a stall never teleports the simulation.
//
// # Triggering a burst
//
// [Scene.TriggerBurst] repopulates the particle pool from the surface
// center and opens a short ember-trickle window. It also starts a decaying
// shake pulse, exposed through [Scene.ShakeOffset], that hosts can apply
// to any companion UI element; ignoring it is fine.
//
// # Reproducible runs
//
// A Scene draws all randomness from a single source seeded by
// [Config.Seed], so the same seed and the same Advance timestamps replay
// the exact same run. [Script] drives a scene from a JSON step list
// (advance, burst, resize, pause, screenshot) for automated visual checks.
//
// [Ebitengine]: https://ebitengine.org
package umbra
