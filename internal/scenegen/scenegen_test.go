package scenegen

import (
	"math"
	"testing"
)

func TestOrbit(t *testing.T) {
	opts := DefaultOptions()
	opts.Bodies = 6
	opts.Seed = 1
	s := Orbit(opts)

	if got := len(s.Bodies()); got != 7 {
		t.Fatalf("len(bodies) = %d, want 7 (central + 6 satellites)", got)
	}
	central := s.Bodies()[0]
	for i, sat := range s.Bodies()[1:] {
		r := sat.Centroid().Sub(central.Centroid()).Len()
		if r < minOrbit {
			t.Errorf("satellite %d at radius %v, want >= %v", i, r, minOrbit)
		}
		want := math.Sqrt(opts.G * centralMass / r)
		if got := sat.Velocity().Len(); math.Abs(got-want) > 1e-9 {
			t.Errorf("satellite %d speed = %v, want circular orbital speed %v", i, got, want)
		}
		// Circular orbit: velocity is perpendicular to the radius vector.
		if dot := sat.Velocity().Dot(sat.Centroid().Sub(central.Centroid())); math.Abs(dot) > 1e-6 {
			t.Errorf("satellite %d velocity not perpendicular to radius (dot = %v)", i, dot)
		}
	}
}

func TestPit(t *testing.T) {
	opts := DefaultOptions()
	opts.Bodies = 5
	opts.Seed = 2
	s := Pit(opts)

	if got := len(s.Bodies()); got != 9 {
		t.Fatalf("len(bodies) = %d, want 9 (4 walls + 5 bodies)", got)
	}
	for i, b := range s.Bodies()[:4] {
		if !math.IsInf(b.Mass(), 1) {
			t.Errorf("wall %d mass = %v, want +Inf", i, b.Mass())
		}
	}
	for i, b := range s.Bodies()[4:] {
		c := b.Centroid()
		if math.Abs(c.X) > opts.Extent || math.Abs(c.Y) > opts.Extent {
			t.Errorf("body %d spawned at %v, outside the arena", i, c)
		}
		if b.Velocity().Len() == 0 {
			t.Errorf("body %d spawned at rest, want moving", i)
		}
	}
}

func TestSprings(t *testing.T) {
	opts := DefaultOptions()
	opts.Bodies = 4
	opts.Seed = 3
	s := Springs(opts)

	if got := len(s.Bodies()); got != 6 {
		t.Fatalf("len(bodies) = %d, want 6 (2 anchors + 4 links)", got)
	}
	if !math.IsInf(s.Bodies()[0].Mass(), 1) || !math.IsInf(s.Bodies()[1].Mass(), 1) {
		t.Error("anchors are not immovable")
	}
	// The chain relaxes rather than drifting: the links should stay between
	// the anchors after a burst of ticks.
	left := s.Bodies()[0].Centroid().X
	right := s.Bodies()[1].Centroid().X
	for i := 0; i < 100; i++ {
		s.Tick(0.01)
	}
	for i, b := range s.Bodies()[2:] {
		x := b.Centroid().X
		if x < left-1 || x > right+1 {
			t.Errorf("link %d drifted to x=%v, outside anchors [%v, %v]", i, x, left, right)
		}
	}
}

func TestSanitizeDefaults(t *testing.T) {
	opts, rng := sanitize(Options{})
	if rng == nil {
		t.Fatal("sanitize returned nil rng")
	}
	def := DefaultOptions()
	if opts.Bodies != def.Bodies || opts.G != def.G || opts.Extent != def.Extent {
		t.Errorf("sanitize(zero) = %+v, want defaults %+v", opts, def)
	}
}
