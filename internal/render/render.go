// Package render draws a physics scene as 2D wireframes with an editor-style grid.
package render

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/body"
	"physics-engine/internal/geometry"
	"physics-engine/internal/scene"
)

const (
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

// palette colors finite-mass bodies by index; immovable bodies are drawn gray.
var palette = []rl.Color{
	rl.SkyBlue, rl.Orange, rl.Lime, rl.Pink, rl.Yellow, rl.Violet, rl.Red,
}

var immovableColor = rl.NewColor(150, 150, 150, 255)

// View maps world coordinates to screen pixels. World Y points up and the
// origin sits at the screen center.
type View struct {
	PixelsPerUnit float64
	GridVisible   bool
}

// New returns a view at the given zoom with the grid visible.
func New(pixelsPerUnit float64) *View {
	return &View{PixelsPerUnit: pixelsPerUnit, GridVisible: true}
}

// ToScreen converts a world point to screen pixels.
func (v *View) ToScreen(p geometry.Vec2) rl.Vector2 {
	cx := float64(rl.GetScreenWidth()) / 2
	cy := float64(rl.GetScreenHeight()) / 2
	return rl.NewVector2(float32(cx+p.X*v.PixelsPerUnit), float32(cy-p.Y*v.PixelsPerUnit))
}

// Draw renders the grid (when visible) and every body in the scene.
func (v *View) Draw(s *scene.Scene) {
	if v.GridVisible {
		v.drawGrid()
	}
	for i, b := range s.Bodies() {
		v.drawBody(b, i)
	}
}

// drawBody draws the body's polygon as a closed line loop with a dot at the centroid.
func (v *View) drawBody(b *body.Body, index int) {
	color := immovableColor
	if !isImmovable(b) {
		color = palette[index%len(palette)]
	}
	shape := b.Shape()
	for i := range shape {
		from := v.ToScreen(shape[i])
		to := v.ToScreen(shape[(i+1)%len(shape)])
		rl.DrawLineV(from, to, color)
	}
	c := v.ToScreen(b.Centroid())
	rl.DrawCircleV(c, 2, color)
}

func isImmovable(b *body.Body) bool {
	return math.IsInf(b.Mass(), 1)
}

// drawGrid draws minor/major grid lines over the visible world extent with
// highlighted axis lines through the origin (X=red, Y=green).
func (v *View) drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)

	halfW := float64(rl.GetScreenWidth()) / 2 / v.PixelsPerUnit
	halfH := float64(rl.GetScreenHeight()) / 2 / v.PixelsPerUnit
	extentX := int(halfW) + 1
	extentY := int(halfH) + 1

	for x := -extentX; x <= extentX; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		from := v.ToScreen(geometry.Vec2{X: float64(x), Y: -halfH})
		to := v.ToScreen(geometry.Vec2{X: float64(x), Y: halfH})
		rl.DrawLineV(from, to, c)
	}
	for y := -extentY; y <= extentY; y += gridMinorStep {
		c := major
		if y%gridMajorStep != 0 {
			c = minor
		}
		from := v.ToScreen(geometry.Vec2{X: -halfW, Y: float64(y)})
		to := v.ToScreen(geometry.Vec2{X: halfW, Y: float64(y)})
		rl.DrawLineV(from, to, c)
	}

	rl.DrawLineV(v.ToScreen(geometry.Vec2{X: -halfW}), v.ToScreen(geometry.Vec2{X: halfW}), axisX)
	rl.DrawLineV(v.ToScreen(geometry.Vec2{Y: -halfH}), v.ToScreen(geometry.Vec2{Y: halfH}), axisY)
}
