package geom

// maxOffsetScale bounds the per-vertex offset magnitude at sharp reflex
// vertices. A vertex never moves farther than maxOffsetScale times the
// requested distance; the resulting local self-overlap is tolerated
// downstream as zero-area degenerate regions.
const maxOffsetScale = 4.0

// OffsetInward returns a copy of p with every vertex displaced toward the
// polygon interior by d. The result has the same vertex count and traversal
// order as p. A distance of zero returns the input unchanged.
//
// Each vertex moves along the bisector of its two adjacent inward edge
// normals by d / cos(theta/2), where theta is the interior angle. If d
// exceeds half the ring's local width, opposing vertices cross over and can
// re-form a ring on the far side; a crossed-over ring may keep the input's
// orientation and a positive area (a square collapses through its center
// into a smaller same-orientation square), so orientation alone cannot
// detect it. Collapse is detected by edge reversal instead, and an empty
// polygon is returned: there is no interior left at the requested distance.
func (p Polygon) OffsetInward(d float64) Polygon {
	if d == 0 || len(p) < 3 {
		return p.Clone()
	}

	// Inward is to the left of travel for counter-clockwise rings, to the
	// right for clockwise.
	side := 1.0
	if !p.IsCCW() {
		side = -1.0
	}

	n := len(p)
	out := make(Polygon, n)
	for i := 0; i < n; i++ {
		prev := p[(i-1+n)%n]
		cur := p[i]
		next := p[(i+1)%n]

		n1 := next.Sub(cur).Perp().Normalize().Scale(side)
		n0 := cur.Sub(prev).Perp().Normalize().Scale(side)

		bisector := n0.Add(n1)
		if bisector.Length() < 1e-12 {
			// Degenerate 180-degree spike: fall back to a single edge
			// normal at the clamped magnitude.
			out[i] = cur.Add(n1.Scale(d * maxOffsetScale))
			continue
		}
		bisector = bisector.Normalize()

		// bisector . n1 == cos(theta/2); clamping it bounds the offset
		// magnitude at reflex vertices.
		denom := bisector.Dot(n1)
		if denom < 1/maxOffsetScale {
			denom = 1 / maxOffsetScale
		}
		out[i] = cur.Add(bisector.Scale(d / denom))
	}

	// A vertex that crossed the far side reverses the direction of its
	// adjacent edges. Local self-overlap from clamped reflex vertices does
	// not reverse edges and passes through for the clipper to tolerate.
	for i := 0; i < n; i++ {
		e := p[(i+1)%n].Sub(p[i])
		if e.Dot(out[(i+1)%n].Sub(out[i])) <= 0 {
			return nil
		}
	}
	return out
}
