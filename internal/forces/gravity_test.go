package forces

import (
	"math"
	"testing"

	"physics-engine/internal/body"
	"physics-engine/internal/geometry"
)

const epsilon = 1e-9

func vecAlmostEqual(a, b geometry.Vec2) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func bodyAt(pos geometry.Vec2, mass float64) *body.Body {
	return body.New(geometry.Rect(1, 1, pos), mass)
}

func TestGravityMagnitudeAndDirection(t *testing.T) {
	// Masses 4 and 9 separated by 20 on the x axis with G = 2:
	// |F| = 2 * 4 * 9 / 400 = 0.18, directed along the line between centers.
	b1 := bodyAt(geometry.Vec2{}, 4)
	b2 := bodyAt(geometry.Vec2{X: 20}, 9)
	g := NewGravity(2, b1, b2)

	g.Apply()
	b1.Tick(1)
	b2.Tick(1)

	want1 := geometry.Vec2{X: 0.18 / 4}
	want2 := geometry.Vec2{X: -0.18 / 9}
	if got := b1.Velocity(); !vecAlmostEqual(got, want1) {
		t.Errorf("body1 velocity = %v, want %v", got, want1)
	}
	if got := b2.Velocity(); !vecAlmostEqual(got, want2) {
		t.Errorf("body2 velocity = %v, want %v", got, want2)
	}
}

func TestGravityNewtonsThirdLaw(t *testing.T) {
	b1 := bodyAt(geometry.Vec2{X: -3, Y: 7}, 5)
	b2 := bodyAt(geometry.Vec2{X: 11, Y: -2}, 13)
	NewGravity(6.674e-2, b1, b2).Apply()
	b1.Tick(1)
	b2.Tick(1)

	// Momentum conservation: m1*v1 + m2*v2 = 0.
	total := b1.Velocity().Scale(5).Add(b2.Velocity().Scale(13))
	if !vecAlmostEqual(total, geometry.Vec2{}) {
		t.Errorf("total momentum = %v, want zero", total)
	}
}

func TestGravitySingularityThreshold(t *testing.T) {
	// Below the minimum separation gravity applies no force rather than
	// blowing up as 1/d².
	b1 := bodyAt(geometry.Vec2{}, 10)
	b2 := bodyAt(geometry.Vec2{X: minGravityDistance * 0.9}, 10)
	NewGravity(100, b1, b2).Apply()
	b1.Tick(1)
	b2.Tick(1)

	if got := b1.Velocity(); !vecAlmostEqual(got, geometry.Vec2{}) {
		t.Errorf("body1 velocity = %v, want zero inside threshold", got)
	}
	if got := b2.Velocity(); !vecAlmostEqual(got, geometry.Vec2{}) {
		t.Errorf("body2 velocity = %v, want zero inside threshold", got)
	}
}

func TestGravityFiniteNearThreshold(t *testing.T) {
	// Just above the threshold the force is the plain inverse-square value,
	// not an asymptote.
	d := minGravityDistance * 1.01
	b1 := bodyAt(geometry.Vec2{}, 1)
	b2 := bodyAt(geometry.Vec2{X: d}, 1)
	NewGravity(1, b1, b2).Apply()
	b1.Tick(1)

	want := 1.0 / (d * d)
	if got := b1.Velocity().Len(); math.Abs(got-want) > epsilon {
		t.Errorf("speed just above threshold = %v, want %v", got, want)
	}
}

func TestGravityIgnoresImmovableBodies(t *testing.T) {
	// G*m1*m2 with an Infinite mass would be an Inf force, and once that is
	// accumulated the finite body's velocity goes NaN on the next tick. The
	// binding must apply nothing instead.
	tests := []struct {
		name   string
		m1, m2 float64
	}{
		{"first immovable", body.Infinite, 1},
		{"second immovable", 1, body.Infinite},
		{"both immovable", body.Infinite, body.Infinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b1 := bodyAt(geometry.Vec2{}, tt.m1)
			b2 := bodyAt(geometry.Vec2{X: 20}, tt.m2)
			b2.SetVelocity(geometry.Vec2{Y: 4})
			NewGravity(60, b1, b2).Apply()
			b1.Tick(0.01)
			b2.Tick(0.01)

			if got := b1.Velocity(); !vecAlmostEqual(got, geometry.Vec2{}) {
				t.Errorf("body1 velocity = %v, want unchanged zero", got)
			}
			if got := b2.Velocity(); !vecAlmostEqual(got, geometry.Vec2{Y: 4}) {
				t.Errorf("body2 velocity = %v, want unchanged (0, 4)", got)
			}
		})
	}
}

func TestGravityBodies(t *testing.T) {
	b1 := bodyAt(geometry.Vec2{}, 1)
	b2 := bodyAt(geometry.Vec2{X: 10}, 1)
	g := NewGravity(1, b1, b2)
	bs := g.Bodies()
	if len(bs) != 2 || bs[0] != b1 || bs[1] != b2 {
		t.Errorf("Bodies() = %v, want [body1 body2]", bs)
	}
}
