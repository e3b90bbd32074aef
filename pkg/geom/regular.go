package geom

import "math"

// RegularPolygon returns a regular n-gon centered at center with the given
// circumscribed radius. phase is the angle (radians, from +X counter-
// clockwise) of the first vertex. The ring is counter-clockwise.
func RegularPolygon(n int, center Vec2, radius, phase float64) Polygon {
	if n < 3 {
		return nil
	}
	out := make(Polygon, n)
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		a := phase + float64(i)*step
		out[i] = Vec2{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
	}
	return out
}

// AcrossFlatsRadius converts an across-flats width (inscribed circle
// diameter) of a regular n-gon to its circumscribed radius.
func AcrossFlatsRadius(n int, width float64) float64 {
	return width / (2 * math.Cos(math.Pi/float64(n)))
}

// filletSegments is the number of line segments approximating each rounded
// corner arc.
const filletSegments = 4

// RoundedRect returns a width x height rectangle centered at center whose
// corners are rounded with radius r, approximated by filletSegments chords
// per corner. r is clamped to half the smaller side; r <= 0 yields a plain
// 4-point rectangle. The ring is counter-clockwise.
func RoundedRect(center Vec2, width, height, r float64) Polygon {
	hw, hh := width/2, height/2
	if r <= 0 {
		return Polygon{
			{center.X - hw, center.Y - hh},
			{center.X + hw, center.Y - hh},
			{center.X + hw, center.Y + hh},
			{center.X - hw, center.Y + hh},
		}
	}
	if r > hw {
		r = hw
	}
	if r > hh {
		r = hh
	}

	// Corner arc centers, counter-clockwise starting from the lower right.
	corners := []struct {
		c     Vec2
		start float64 // arc start angle
	}{
		{Vec2{center.X + hw - r, center.Y - hh + r}, -math.Pi / 2},
		{Vec2{center.X + hw - r, center.Y + hh - r}, 0},
		{Vec2{center.X - hw + r, center.Y + hh - r}, math.Pi / 2},
		{Vec2{center.X - hw + r, center.Y - hh + r}, math.Pi},
	}

	var out Polygon
	for _, corner := range corners {
		for i := 0; i <= filletSegments; i++ {
			a := corner.start + float64(i)*(math.Pi/2)/filletSegments
			out = append(out, Vec2{
				X: corner.c.X + r*math.Cos(a),
				Y: corner.c.Y + r*math.Sin(a),
			})
		}
	}
	return out
}
