// Package scenegen builds procedural demo scenes: an orbiting system, a
// walled pit of bouncing polygons, and a spring lattice.
package scenegen

import (
	"math"
	"math/rand"
	"time"

	"physics-engine/internal/body"
	"physics-engine/internal/geometry"
	"physics-engine/internal/scene"
)

// Options controls procedural scene generation.
// Bodies is the number of dynamic bodies; walls and anchors come on top.
// Seed controls randomness; Seed == 0 uses a time-based seed.
// G is the gravitational constant used by Orbit, Elasticity the restitution
// used by Pit, and Extent the arena half-size in world units.
type Options struct {
	Bodies     int
	Seed       int64
	G          float64
	Elasticity float64
	Extent     float64
}

// DefaultOptions returns a sane default configuration.
func DefaultOptions() Options {
	return Options{
		Bodies:     12,
		Seed:       0,
		G:          60.0,
		Elasticity: 0.9,
		Extent:     40.0,
	}
}

// sanitize clamps out-of-range options to usable values.
func sanitize(opts Options) (Options, *rand.Rand) {
	if opts.Bodies <= 0 {
		opts.Bodies = DefaultOptions().Bodies
	}
	if opts.G <= 0 {
		opts.G = DefaultOptions().G
	}
	if opts.Elasticity < 0 || opts.Elasticity > 1 {
		opts.Elasticity = DefaultOptions().Elasticity
	}
	if opts.Extent <= 0 {
		opts.Extent = DefaultOptions().Extent
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return opts, rand.New(rand.NewSource(seed))
}

const (
	centralMass   = 500.0
	centralRadius = 3.0
	satelliteMass = 1.0
	minOrbit      = 10.0

	wallThickness = 2.0
	pitSpeed      = 15.0

	springK     = 8.0
	springGamma = 0.4
	springGap   = 4.0
)

// Orbit builds a central massive octagon with satellites on circular orbits,
// each bound to the center by Newtonian gravity. Satellite speed is the
// circular orbital velocity sqrt(G*M/r), directed perpendicular to the radius.
func Orbit(opts Options) *scene.Scene {
	opts, rng := sanitize(opts)
	s := scene.New()

	central := body.New(geometry.Regular(8, centralRadius, geometry.Vec2{}), centralMass)
	s.Add(central)

	for i := 0; i < opts.Bodies; i++ {
		r := minOrbit + rng.Float64()*(opts.Extent-minOrbit)
		angle := rng.Float64() * 2 * math.Pi
		pos := geometry.Vec2{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
		sides := 3 + rng.Intn(3)
		sat := body.New(geometry.Regular(sides, 1, pos), satelliteMass)
		speed := math.Sqrt(opts.G * centralMass / r)
		sat.SetVelocity(pos.Normalize().Perp().Scale(speed))
		s.Add(sat)
		s.CreateGravity(opts.G, central, sat)
	}
	return s
}

// Pit builds a box of four immovable walls filled with polygons bouncing off
// the walls and each other via impulse-based collisions.
func Pit(opts Options) *scene.Scene {
	opts, rng := sanitize(opts)
	s := scene.New()

	e := opts.Extent
	walls := []*body.Body{
		body.New(geometry.Rect(2*e+2*wallThickness, wallThickness, geometry.Vec2{Y: e + wallThickness/2}), body.Infinite),
		body.New(geometry.Rect(2*e+2*wallThickness, wallThickness, geometry.Vec2{Y: -e - wallThickness/2}), body.Infinite),
		body.New(geometry.Rect(wallThickness, 2*e, geometry.Vec2{X: -e - wallThickness/2}), body.Infinite),
		body.New(geometry.Rect(wallThickness, 2*e, geometry.Vec2{X: e + wallThickness/2}), body.Infinite),
	}
	for _, w := range walls {
		s.Add(w)
	}

	bodies := make([]*body.Body, opts.Bodies)
	for i := range bodies {
		pos := geometry.Vec2{
			X: (rng.Float64()*2 - 1) * (e - 4),
			Y: (rng.Float64()*2 - 1) * (e - 4),
		}
		sides := 3 + rng.Intn(4)
		b := body.New(geometry.Regular(sides, 1+rng.Float64(), pos), 1+rng.Float64()*3)
		angle := rng.Float64() * 2 * math.Pi
		b.SetVelocity(geometry.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(pitSpeed))
		bodies[i] = b
		s.Add(b)
	}

	for _, b := range bodies {
		for _, w := range walls {
			s.CreatePhysicsCollision(b, w, opts.Elasticity)
		}
	}
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			s.CreatePhysicsCollision(bodies[i], bodies[j], opts.Elasticity)
		}
	}
	return s
}

// Springs builds a horizontal chain of squares joined by springs, anchored at
// both ends by immovable posts, with drag on every link. Links start displaced
// vertically so the chain oscillates.
func Springs(opts Options) *scene.Scene {
	opts, _ = sanitize(opts)
	s := scene.New()

	n := opts.Bodies
	startX := -float64(n+1) * springGap / 2

	left := body.New(geometry.Rect(1, 1, geometry.Vec2{X: startX}), body.Infinite)
	right := body.New(geometry.Rect(1, 1, geometry.Vec2{X: startX + float64(n+1)*springGap}), body.Infinite)
	s.Add(left)
	s.Add(right)

	prev := left
	for i := 0; i < n; i++ {
		x := startX + float64(i+1)*springGap
		y := 6 * math.Sin(2*math.Pi*float64(i+1)/float64(n+1))
		b := body.New(geometry.Rect(1.5, 1.5, geometry.Vec2{X: x, Y: y}), 1)
		s.Add(b)
		s.CreateSpring(springK, prev, b)
		s.CreateDrag(springGamma, b)
		prev = b
	}
	s.CreateSpring(springK, prev, right)
	return s
}
