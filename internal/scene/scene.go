// Package scene owns the simulated bodies and the registered force bindings
// and steps simulation time forward.
package scene

import (
	"physics-engine/internal/body"
	"physics-engine/internal/forces"
)

// Scene holds a set of bodies and an ordered list of force bindings. Each
// Tick runs every binding in registration order, integrates every body, then
// drops bodies marked for removal together with the bindings that reference
// them. The scene is single-threaded: every binding runs to completion before
// the next one starts.
type Scene struct {
	bodies  []*body.Body
	entries []forces.Generator
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{}
}

// Add appends a body to the scene. Order is preserved; rendering and configs
// rely on stable indices between ticks.
func (s *Scene) Add(b *body.Body) {
	s.bodies = append(s.bodies, b)
}

// Bodies returns the scene's bodies. The slice is shared; callers must not
// mutate it.
func (s *Scene) Bodies() []*body.Body {
	return s.bodies
}

// Register appends a force binding. Bindings run in registration order each
// tick.
func (s *Scene) Register(g forces.Generator) {
	s.entries = append(s.entries, g)
}

// CreateGravity registers Newtonian gravity with constant g between two bodies.
func (s *Scene) CreateGravity(g float64, body1, body2 *body.Body) {
	s.Register(forces.NewGravity(g, body1, body2))
}

// CreateSpring registers a Hooke's-law spring with constant k between two bodies.
func (s *Scene) CreateSpring(k float64, body1, body2 *body.Body) {
	s.Register(forces.NewSpring(k, body1, body2))
}

// CreateDrag registers a drag force with constant gamma on a body.
func (s *Scene) CreateDrag(gamma float64, b *body.Body) {
	s.Register(forces.NewDrag(gamma, b))
}

// CreateCollision registers a handler invoked once per contact episode
// between two bodies.
func (s *Scene) CreateCollision(body1, body2 *body.Body, handler forces.Handler) {
	s.Register(forces.NewWatch(body1, body2, handler))
}

// CreatePhysicsCollision registers impulse-based collision resolution between
// two bodies with the given coefficient of restitution.
func (s *Scene) CreatePhysicsCollision(body1, body2 *body.Body, elasticity float64) {
	s.CreateCollision(body1, body2, forces.ResolveElastic(elasticity))
}

// CreateDestructiveCollision registers a binding that marks both bodies for
// removal when they first collide.
func (s *Scene) CreateDestructiveCollision(body1, body2 *body.Body) {
	s.CreateCollision(body1, body2, forces.Destroy)
}

// Tick advances the simulation by dt seconds: force bindings first, in
// registration order, then body integration, then the removal sweep. Bodies
// marked during the tick stay visible to later bindings within the same tick
// and disappear only at the sweep.
func (s *Scene) Tick(dt float64) {
	for _, e := range s.entries {
		e.Apply()
	}
	for _, b := range s.bodies {
		b.Tick(dt)
	}
	s.sweep()
}

// sweep drops removed bodies and every binding that references one.
func (s *Scene) sweep() {
	kept := s.bodies[:0]
	removed := false
	for _, b := range s.bodies {
		if b.Removed() {
			removed = true
			continue
		}
		kept = append(kept, b)
	}
	s.bodies = kept
	if !removed {
		return
	}
	keptEntries := s.entries[:0]
	for _, e := range s.entries {
		alive := true
		for _, b := range e.Bodies() {
			if b.Removed() {
				alive = false
				break
			}
		}
		if alive {
			keptEntries = append(keptEntries, e)
		}
	}
	s.entries = keptEntries
}
