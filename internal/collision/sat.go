// Package collision implements a separating axis test between convex polygons.
package collision

import (
	"math"

	"physics-engine/internal/geometry"
)

// Collision is the result of an intersection test between two shapes. When
// Collided is true, Axis is a unit vector along the minimum-overlap direction;
// its sign is an implementation choice, so consumers must not assume it points
// from one particular shape toward the other. When Collided is false, Axis is
// the zero vector.
type Collision struct {
	Axis     geometry.Vec2
	Collided bool
}

// FindCollision determines whether two convex polygons intersect. Both shapes
// are read but never retained. If they intersect, the returned axis is the
// edge normal (from either shape) with the smallest projection overlap.
func FindCollision(shape1, shape2 geometry.Polygon) Collision {
	axis1, overlap1, ok := minOverlapAxis(shape1, shape2)
	if !ok {
		return Collision{}
	}
	axis2, overlap2, ok := minOverlapAxis(shape2, shape1)
	if !ok {
		return Collision{}
	}
	if overlap1 < overlap2 {
		return Collision{Axis: axis1, Collided: true}
	}
	return Collision{Axis: axis2, Collided: true}
}

// minOverlapAxis projects both shapes onto the outward normal of each of
// shape1's edges. If any axis separates the projections the shapes provably do
// not intersect and the scan stops early. Otherwise it returns the axis with
// the smallest overlap and that overlap's depth.
func minOverlapAxis(shape1, shape2 geometry.Polygon) (axis geometry.Vec2, overlap float64, ok bool) {
	overlap = math.MaxFloat64
	for _, edge := range shape1.Edges() {
		unit := edge.Perp().Normalize()
		max1, min1 := shape1.Project(unit)
		max2, min2 := shape2.Project(unit)
		if min2 >= max1 || max2 <= min1 {
			return geometry.Vec2{}, 0, false
		}
		depth := math.Min(max1, max2) - math.Max(min1, min2)
		if depth < overlap {
			overlap = depth
			axis = unit
		}
	}
	// Every axis from this shape's edge set overlapped.
	return axis, overlap, true
}
