package forces

import (
	"math"

	"physics-engine/internal/body"
)

// minGravityDistance is the centroid separation below which gravity applies no
// force. The inverse-square magnitude blows up as the distance goes to zero,
// so close pairs are skipped rather than launched.
const minGravityDistance = 5.0

// Gravity applies Newtonian gravitation between two bodies each tick.
type Gravity struct {
	g            float64
	body1, body2 *body.Body
}

// NewGravity returns a gravity binding with proportionality constant g.
func NewGravity(g float64, body1, body2 *body.Body) *Gravity {
	return &Gravity{g: g, body1: body1, body2: body2}
}

func (gr *Gravity) Apply() {
	// G*m1*m2 with an Infinite mass is Inf, and Inf force components turn the
	// finite body's velocity into NaN on the next tick. Immovable bodies take
	// no gravity.
	if math.IsInf(gr.body1.Mass(), 1) || math.IsInf(gr.body2.Mass(), 1) {
		return
	}
	d := gr.body2.Centroid().Sub(gr.body1.Centroid())
	dist := d.Len()
	if dist < minGravityDistance {
		return
	}
	magnitude := gr.g * gr.body1.Mass() * gr.body2.Mass() / (dist * dist)
	f := d.Normalize().Scale(magnitude)
	gr.body1.AddForce(f)
	gr.body2.AddForce(f.Scale(-1))
}

func (gr *Gravity) Bodies() []*body.Body {
	return []*body.Body{gr.body1, gr.body2}
}
