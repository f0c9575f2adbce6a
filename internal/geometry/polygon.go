package geometry

import "math"

// Polygon is a convex polygon given as vertices in counterclockwise order.
// There is an edge between each pair of consecutive vertices and one between
// the last vertex and the first. Polygons with fewer than 3 vertices or with
// repeated consecutive vertices (zero-length edges) are not valid input;
// callers must validate shapes before handing them to the engine.
type Polygon []Vec2

// Clone returns an independent copy of the polygon.
func (p Polygon) Clone() Polygon {
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Translate returns the polygon shifted by d.
func (p Polygon) Translate(d Vec2) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = v.Add(d)
	}
	return out
}

// Edges returns the N edge vectors of the polygon, edge[i] = vertex[i] - vertex[(i+1) mod N].
func (p Polygon) Edges() []Vec2 {
	edges := make([]Vec2, len(p))
	for i := range p {
		edges[i] = p[i].Sub(p[(i+1)%len(p)])
	}
	return edges
}

// Project projects every vertex onto the given unit axis and returns the
// maximum and minimum scalar projections.
func (p Polygon) Project(axis Vec2) (max, min float64) {
	max = -math.MaxFloat64
	min = math.MaxFloat64
	for _, v := range p {
		proj := v.Dot(axis)
		if proj > max {
			max = proj
		}
		if proj < min {
			min = proj
		}
	}
	return max, min
}

// Area returns the polygon's area via the shoelace formula. Positive for
// counterclockwise winding.
func (p Polygon) Area() float64 {
	sum := 0.0
	for i, v := range p {
		next := p[(i+1)%len(p)]
		sum += v.Cross(next)
	}
	return sum / 2
}

// Centroid returns the area-weighted centroid of the polygon.
func (p Polygon) Centroid() Vec2 {
	var c Vec2
	for i, v := range p {
		next := p[(i+1)%len(p)]
		cross := v.Cross(next)
		c = c.Add(v.Add(next).Scale(cross))
	}
	return c.Scale(1 / (6 * p.Area()))
}

// Contains reports whether the point lies inside the polygon (boundary counts
// as inside). Valid only for convex counterclockwise polygons.
func (p Polygon) Contains(pt Vec2) bool {
	for i, v := range p {
		edge := p[(i+1)%len(p)].Sub(v)
		if edge.Cross(pt.Sub(v)) < 0 {
			return false
		}
	}
	return true
}

// Regular returns a regular n-gon with the given circumradius centered at c.
// Vertices are in counterclockwise order starting at angle 0.
func Regular(n int, radius float64, c Vec2) Polygon {
	p := make(Polygon, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		p[i] = Vec2{c.X + radius*math.Cos(angle), c.Y + radius*math.Sin(angle)}
	}
	return p
}

// Rect returns an axis-aligned rectangle of the given width and height
// centered at c, wound counterclockwise.
func Rect(w, h float64, c Vec2) Polygon {
	hw, hh := w/2, h/2
	return Polygon{
		{c.X + hw, c.Y + hh},
		{c.X - hw, c.Y + hh},
		{c.X - hw, c.Y - hh},
		{c.X + hw, c.Y - hh},
	}
}
