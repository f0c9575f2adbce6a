package forces

import "physics-engine/internal/body"

// Spring applies a Hooke's-law force between two bodies each tick, pulling
// them together in proportion to their separation.
type Spring struct {
	k            float64
	body1, body2 *body.Body
}

// NewSpring returns a spring binding with Hooke's constant k.
func NewSpring(k float64, body1, body2 *body.Body) *Spring {
	return &Spring{k: k, body1: body1, body2: body2}
}

func (s *Spring) Apply() {
	d := s.body2.Centroid().Sub(s.body1.Centroid())
	f := d.Scale(s.k)
	s.body1.AddForce(f)
	s.body2.AddForce(f.Scale(-1))
}

func (s *Spring) Bodies() []*body.Body {
	return []*body.Body{s.body1, s.body2}
}
