package panzoom

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// scriptStep is a single action in an interaction script.
type scriptStep struct {
	Action string   `json:"action"`
	Label  string   `json:"label,omitempty"`
	X      float64  `json:"x,omitempty"`
	Y      float64  `json:"y,omitempty"`
	FromX  float64  `json:"fromX,omitempty"`
	FromY  float64  `json:"fromY,omitempty"`
	ToX    float64  `json:"toX,omitempty"`
	ToY    float64  `json:"toY,omitempty"`
	DeltaX float64  `json:"deltaX,omitempty"`
	DeltaY float64  `json:"deltaY,omitempty"`
	Key    int      `json:"key,omitempty"`
	Mods   []string `json:"mods,omitempty"`
	Frames int      `json:"frames,omitempty"`
}

// script is the top-level JSON structure of an interaction script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"press": true, "move": true, "release": true, "click": true,
	"drag": true, "wheel": true, "key": true, "keydown": true, "keyup": true,
	"wait": true, "screenshot": true,
}

var modifierNames = map[string]KeyModifiers{
	"shift": ModShift,
	"ctrl":  ModCtrl,
	"alt":   ModAlt,
	"meta":  ModMeta,
}

// ScriptRunner sequences injected input and screenshots across frames. It
// is driven by calling Step once per frame, before Page.Step.
type ScriptRunner struct {
	steps      []scriptStep
	cursor     int
	waitCount  int
	done       bool
	screenshot func(label string)
}

// LoadScript parses a JSON interaction script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
		if _, err := parseModifiers(st.Mods); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// LoadScriptFile reads and parses a JSON interaction script.
func LoadScriptFile(path string) (*ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return LoadScript(data)
}

func parseModifiers(names []string) (KeyModifiers, error) {
	var m KeyModifiers
	for _, n := range names {
		mod, ok := modifierNames[strings.ToLower(n)]
		if !ok {
			return 0, fmt.Errorf("unknown modifier %q", n)
		}
		m |= mod
	}
	return m, nil
}

// OnScreenshot sets the function called for "screenshot" steps.
func (r *ScriptRunner) OnScreenshot(fn func(label string)) {
	r.screenshot = fn
}

// Done reports whether every step has been executed and drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Len returns the number of steps in the script.
func (r *ScriptRunner) Len() int {
	return len(r.steps)
}

// Step advances the runner by one frame, queueing input on p.
func (r *ScriptRunner) Step(p *Page) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if p.Pending() > 0 {
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
	mods, _ := parseModifiers(st.Mods)

	switch st.Action {
	case "press":
		p.InjectPress(st.X, st.Y)
	case "move":
		p.InjectMove(st.X, st.Y)
	case "release":
		p.InjectRelease(st.X, st.Y)
	case "click":
		p.InjectClick(st.X, st.Y)
	case "drag":
		p.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wheel":
		p.InjectWheel(st.X, st.Y, st.DeltaX, st.DeltaY, mods)
	case "keydown":
		p.InjectKey(st.Key, true, mods)
	case "keyup":
		p.InjectKey(st.Key, false, mods)
	case "key":
		p.InjectKey(st.Key, true, mods)
		p.InjectKey(st.Key, false, mods)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		if r.screenshot != nil {
			r.screenshot(st.Label)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && p.Pending() == 0 {
		r.done = true
	}
}
