// Package body implements the rigid bodies the engine simulates.
package body

import (
	"math"

	"physics-engine/internal/geometry"
)

// Infinite is the mass of an immovable body (e.g. a wall). Forces and impulses
// never change its velocity.
var Infinite = math.Inf(1)

// Body is a convex polygon with a mass, a velocity, and per-tick force and
// impulse accumulators. Forces accumulate over a tick and are consumed by
// Tick; they are commutative additions, so any number of generators may act on
// the same body within one tick in any order.
type Body struct {
	shape    geometry.Polygon // world-space vertices
	centroid geometry.Vec2
	velocity geometry.Vec2
	mass     float64

	force   geometry.Vec2
	impulse geometry.Vec2
	removed bool
}

// New returns a body with the given shape and mass. The shape is copied; mass
// must be positive or Infinite.
func New(shape geometry.Polygon, mass float64) *Body {
	p := shape.Clone()
	return &Body{
		shape:    p,
		centroid: p.Centroid(),
		mass:     mass,
	}
}

// Shape returns a copy of the body's polygon in world coordinates. The caller
// may freely modify the returned copy.
func (b *Body) Shape() geometry.Polygon {
	return b.shape.Clone()
}

func (b *Body) Mass() float64 {
	return b.mass
}

func (b *Body) Centroid() geometry.Vec2 {
	return b.centroid
}

func (b *Body) Velocity() geometry.Vec2 {
	return b.velocity
}

func (b *Body) SetVelocity(v geometry.Vec2) {
	b.velocity = v
}

// SetCentroid moves the body so its centroid lands on c.
func (b *Body) SetCentroid(c geometry.Vec2) {
	d := c.Sub(b.centroid)
	b.shape = b.shape.Translate(d)
	b.centroid = c
}

// AddForce accumulates a force to be applied over the next Tick.
func (b *Body) AddForce(f geometry.Vec2) {
	b.force = b.force.Add(f)
}

// AddImpulse accumulates an instantaneous momentum change applied at the next
// Tick. Impulses on an Infinite-mass body have no effect.
func (b *Body) AddImpulse(j geometry.Vec2) {
	b.impulse = b.impulse.Add(j)
}

// Remove marks the body for removal. The scene drops marked bodies, and every
// force binding that references them, at the end of the tick.
func (b *Body) Remove() {
	b.removed = true
}

func (b *Body) Removed() bool {
	return b.removed
}

// Tick integrates the accumulated force and impulse over dt and moves the body
// by its average velocity across the step. Accumulators are cleared afterward.
// An Infinite-mass body keeps its velocity regardless of accumulated forces.
func (b *Body) Tick(dt float64) {
	invMass := 0.0
	if !math.IsInf(b.mass, 1) {
		invMass = 1 / b.mass
	}
	next := b.velocity.
		Add(b.force.Scale(invMass * dt)).
		Add(b.impulse.Scale(invMass))
	// Translate by the average of the old and new velocity over the step.
	d := b.velocity.Add(next).Scale(dt / 2)
	b.shape = b.shape.Translate(d)
	b.centroid = b.centroid.Add(d)
	b.velocity = next
	b.force = geometry.Vec2{}
	b.impulse = geometry.Vec2{}
}
