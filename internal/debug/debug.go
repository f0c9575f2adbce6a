package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds runtime debugging overlays for the simulation viewer. All overlays are off by default.
type Debug struct {
	ShowFPS       bool
	ShowBodyCount bool

	bodyCount    int
	tick         uint64
	frameCount   uint32
	lastFpsText  string
	lastSimText  string
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetSimState records the current body count and tick number for the overlay.
// Call once per frame before Draw.
func (d *Debug) SetSimState(bodies int, tick uint64) {
	d.bodyCount = bodies
	d.tick = tick
}

// Draw renders any enabled debug overlays at the top-right. Call last in the draw loop.
// Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowBodyCount && d.lastSimText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		if d.lastFpsText != "" {
			w := rl.MeasureText(d.lastFpsText, fontSize)
			rl.DrawText(d.lastFpsText, screenW-w-padding, y, fontSize, rl.Green)
		}
		y += lineHeight
	}

	if d.ShowBodyCount {
		if update {
			d.lastSimText = fmt.Sprintf("Bodies: %d  Tick: %d", d.bodyCount, d.tick)
		}
		if d.lastSimText != "" {
			w := rl.MeasureText(d.lastSimText, fontSize)
			rl.DrawText(d.lastSimText, screenW-w-padding, y, fontSize, rl.Green)
		}
	}
}
