package forces

import (
	"physics-engine/internal/body"
	"physics-engine/internal/collision"
	"physics-engine/internal/geometry"
)

// Handler is called when two watched bodies begin colliding. axis is a unit
// vector along the minimum-overlap direction between the shapes; its sign is
// unspecified, so handlers that care about orientation must check it against
// the bodies' relative positions.
type Handler func(body1, body2 *body.Body, axis geometry.Vec2)

// contactState is the two-state machine tracking one watched pair across
// ticks: a contact episode starts when the shapes begin to overlap and ends
// when they separate.
type contactState uint8

const (
	contactNone contactState = iota
	contactActive
)

// Watch runs the collision detector on a body pair each tick and calls the
// handler exactly once per contact episode: on the tick the bodies begin
// overlapping, and not again until after they have separated. Without this
// debounce a handler would fire every tick for the whole duration of overlap.
type Watch struct {
	body1, body2 *body.Body
	handler      Handler
	state        contactState
}

// NewWatch returns a collision binding that invokes handler on each fresh
// contact between the two bodies.
func NewWatch(body1, body2 *body.Body, handler Handler) *Watch {
	return &Watch{body1: body1, body2: body2, handler: handler}
}

func (w *Watch) Apply() {
	c := collision.FindCollision(w.body1.Shape(), w.body2.Shape())
	if !c.Collided {
		w.state = contactNone
		return
	}
	if w.state == contactNone {
		w.handler(w.body1, w.body2, c.Axis)
	}
	w.state = contactActive
}

func (w *Watch) Bodies() []*body.Body {
	return []*body.Body{w.body1, w.body2}
}
