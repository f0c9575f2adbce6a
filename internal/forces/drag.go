package forces

import "physics-engine/internal/body"

// Drag applies a force opposing a body's velocity each tick, proportional to
// its speed.
type Drag struct {
	gamma float64
	body  *body.Body
}

// NewDrag returns a drag binding with proportionality constant gamma; higher
// gamma slows the body down faster.
func NewDrag(gamma float64, b *body.Body) *Drag {
	return &Drag{gamma: gamma, body: b}
}

func (d *Drag) Apply() {
	d.body.AddForce(d.body.Velocity().Scale(-d.gamma))
}

func (d *Drag) Bodies() []*body.Body {
	return []*body.Body{d.body}
}
