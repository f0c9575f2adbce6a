package forces

import (
	"math"

	"physics-engine/internal/body"
	"physics-engine/internal/geometry"
)

// ResolveElastic returns a collision handler that applies a restitution
// impulse along the collision axis. elasticity is the coefficient of
// restitution: 0 is perfectly inelastic, 1 perfectly elastic. Either body may
// have Infinite mass (an immovable wall); two Infinite-mass bodies colliding
// is not a supported configuration.
func ResolveElastic(elasticity float64) Handler {
	return func(body1, body2 *body.Body, axis geometry.Vec2) {
		// Orient the axis from body1 toward body2 so the sign of the relative
		// velocity projection distinguishes approaching from separating.
		d := body2.Centroid().Sub(body1.Centroid())
		if d.Dot(axis) < 0 {
			axis = axis.Scale(-1)
		}
		vRel := body1.Velocity().Sub(body2.Velocity()).Dot(axis)
		if vRel <= 0 {
			// Already separating along the axis; an impulse here would inject
			// energy or glue the bodies together.
			return
		}
		j := axis.Scale(reducedMass(body1.Mass(), body2.Mass()) * (1 + elasticity) * vRel)
		body1.AddImpulse(j.Scale(-1))
		body2.AddImpulse(j)
	}
}

// reducedMass is the effective mass term for a two-body impulse. With one
// Infinite mass it degenerates to the other (finite) mass.
func reducedMass(m1, m2 float64) float64 {
	switch {
	case math.IsInf(m1, 1):
		return m2
	case math.IsInf(m2, 1):
		return m1
	default:
		return m1 * m2 / (m1 + m2)
	}
}

// Destroy is a collision handler that marks both bodies for removal. The
// watch debounce guarantees an already-marked pair is not re-marked on later
// ticks of the same contact.
func Destroy(body1, body2 *body.Body, _ geometry.Vec2) {
	body1.Remove()
	body2.Remove()
}
