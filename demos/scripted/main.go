// Scripted runs a scene from a JSON step script with a fixed synthetic
// clock, writing labeled screenshots along the way. The same script and
// seed always produce the same frames, which makes it the repeatable
// visual check for the whole pipeline.
//
// Usage:
//
//	go run ./demos/scripted [script.json]
//
// Without an argument the built-in script below is used: let the scene
// settle, burst, capture the burst at two points in its decay, resize,
// and capture again.
package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solsticegames/umbra"
)

const (
	screenW = 800
	screenH = 600
	frameMs = 1000.0 / 60.0 // synthetic fixed step
)

const defaultScript = `{
	"steps": [
		{"action": "wait", "frames": 120},
		{"action": "screenshot", "label": "settled"},
		{"action": "burst"},
		{"action": "wait", "frames": 20},
		{"action": "screenshot", "label": "burst-early"},
		{"action": "wait", "frames": 60},
		{"action": "screenshot", "label": "burst-late"},
		{"action": "resize", "width": 400, "height": 300},
		{"action": "wait", "frames": 30},
		{"action": "screenshot", "label": "resized"}
	]
}`

type game struct {
	scene  *umbra.Scene
	script *umbra.Script
	frame  int
}

func (g *game) Update() error {
	if g.script.Done() {
		return ebiten.Termination
	}
	now := float64(g.frame) * frameMs
	g.frame++
	g.script.Step(g.scene, now)
	g.scene.Advance(now)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(int, int) (int, int) {
	return screenW, screenH
}

func main() {
	data := []byte(defaultScript)
	if len(os.Args) > 1 {
		var err error
		data, err = os.ReadFile(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
	}
	script, err := umbra.LoadScript(data)
	if err != nil {
		log.Fatal(err)
	}

	scene := umbra.NewScene(umbra.DefaultConfig())
	scene.Configure(screenW, screenH, 1)
	scene.ScreenshotDir = "demos/scripted/out"

	ebiten.SetWindowTitle("Umbra — Scripted Run")
	ebiten.SetWindowSize(screenW, screenH)

	g := &game{scene: scene, script: script}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
