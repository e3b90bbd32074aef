package geom

import "math"

// Polygon is an ordered ring of 2-D points, implicitly closed (the last
// point connects back to the first). A non-degenerate polygon has at least
// three points, distinct consecutive points, and non-zero signed area.
type Polygon []Vec2

// Rect is an axis-aligned 2-D bounding rectangle.
type Rect struct {
	Min, Max Vec2
}

// Width returns the extent of r along X.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the extent of r along Y.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the midpoint of r.
func (r Rect) Center() Vec2 {
	return Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// SignedArea returns the signed area of p: positive for counter-clockwise
// traversal, negative for clockwise.
func (p Polygon) SignedArea() float64 {
	if len(p) < 3 {
		return 0
	}
	sum := 0.0
	for i, a := range p {
		b := p[(i+1)%len(p)]
		sum += a.Cross(b)
	}
	return sum / 2
}

// Area returns the absolute area of p.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// IsCCW reports whether p is traversed counter-clockwise.
func (p Polygon) IsCCW() bool {
	return p.SignedArea() > 0
}

// Reversed returns a copy of p with the traversal direction flipped.
func (p Polygon) Reversed() Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

// Clone returns a copy of p.
func (p Polygon) Clone() Polygon {
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Translate returns a copy of p with d added to every point.
func (p Polygon) Translate(d Vec2) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = pt.Add(d)
	}
	return out
}

// BoundingBox returns the axis-aligned bounding rectangle of p.
// An empty polygon yields the zero Rect.
func (p Polygon) BoundingBox() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	r := Rect{Min: p[0], Max: p[0]}
	for _, pt := range p[1:] {
		r.Min.X = math.Min(r.Min.X, pt.X)
		r.Min.Y = math.Min(r.Min.Y, pt.Y)
		r.Max.X = math.Max(r.Max.X, pt.X)
		r.Max.Y = math.Max(r.Max.Y, pt.Y)
	}
	return r
}

// Centroid returns the area centroid of p. Degenerate polygons fall back to
// the vertex average.
func (p Polygon) Centroid() Vec2 {
	a := p.SignedArea()
	if math.Abs(a) < 1e-12 {
		var sum Vec2
		for _, pt := range p {
			sum = sum.Add(pt)
		}
		if len(p) == 0 {
			return Vec2{}
		}
		return sum.Scale(1 / float64(len(p)))
	}
	var cx, cy float64
	for i, v := range p {
		w := p[(i+1)%len(p)]
		f := v.Cross(w)
		cx += (v.X + w.X) * f
		cy += (v.Y + w.Y) * f
	}
	return Vec2{cx / (6 * a), cy / (6 * a)}
}

// containsTol is the distance within which a point on a polygon edge is
// treated as inside. Matches the kernel resolution scale (mm).
const containsTol = 1e-9

// Contains reports whether pt lies inside p (winding-number rule, valid for
// non-convex rings regardless of traversal direction). Points on an edge
// count as inside.
func (p Polygon) Contains(pt Vec2) bool {
	if len(p) < 3 {
		return false
	}
	winding := 0
	for i, a := range p {
		b := p[(i+1)%len(p)]
		if onSegment(a, b, pt) {
			return true
		}
		if a.Y <= pt.Y {
			if b.Y > pt.Y && b.Sub(a).Cross(pt.Sub(a)) > 0 {
				winding++
			}
		} else {
			if b.Y <= pt.Y && b.Sub(a).Cross(pt.Sub(a)) < 0 {
				winding--
			}
		}
	}
	return winding != 0
}

// onSegment reports whether pt lies on the segment a-b within containsTol.
func onSegment(a, b, pt Vec2) bool {
	ab := b.Sub(a)
	ap := pt.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return ap.Length() <= containsTol
	}
	t := ap.Dot(ab) / l2
	if t < 0 || t > 1 {
		return false
	}
	closest := a.Add(ab.Scale(t))
	return pt.Sub(closest).Length() <= containsTol
}
