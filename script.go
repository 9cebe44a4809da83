package umbra

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a scene script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// sceneScript is the top-level JSON structure for a scene script.
type sceneScript struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences scene actions and screenshots across frames for
// reproducible visual runs. Supported actions:
//
//	{"action": "burst"}                          trigger a big-bang burst
//	{"action": "resize", "width": W, "height": H} reconfigure the surface
//	{"action": "pause"} / {"action": "resume"}   pause or resume the clock
//	{"action": "screenshot", "label": "name"}    queue a labeled capture
//	{"action": "wait", "frames": N}              let N frames elapse
//
// Call Step once per frame, before Scene.Advance.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON scene script.
func LoadScript(jsonData []byte) (*Script, error) {
	var script sceneScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse scene script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse scene script: no steps")
	}
	return &Script{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *Script) Done() bool {
	return r.done
}

// Step executes the next due action against the scene. now is the frame
// timestamp in milliseconds, the same value passed to Scene.Advance.
func (r *Script) Step(s *Scene, now float64) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "burst":
		s.TriggerBurst(now)
	case "resize":
		s.Configure(st.Width, st.Height, s.pixelRatio)
	case "pause":
		s.Pause()
	case "resume":
		s.Resume()
	case "screenshot":
		s.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
