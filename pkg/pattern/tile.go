package pattern

import (
	"math"

	"github.com/chazu/knurl/pkg/geom"
)

// Cell is one pattern instance in face-local (u,v) coordinates: its
// outline polygon and its lattice center.
type Cell struct {
	Polygon geom.Polygon
	Center  geom.Vec2
}

// circleSegments approximates circle cells as a regular polygon.
const circleSegments = 32

// tile generates the candidate cells of a pattern over the given extent
// (the offset boundary's bounding box). Cells are not yet clipped; the
// lattice is centered on the extent's midpoint and covers it with one
// pitch of margin on every side.
func tile(bounds geom.Rect, spec Spec) []Cell {
	if bounds.Width() <= 0 || bounds.Height() <= 0 {
		return nil
	}
	if spec.Shape == Line {
		return tileLines(bounds, spec)
	}

	pitchU := spec.pitch()
	pitchV := pitchU
	if spec.Shape == Hexagon || spec.Shape == Circle {
		// Triangular lattice: rows are closer than columns.
		pitchV = pitchU * math.Sqrt(3) / 2
	}

	center := bounds.Center()
	cols := int(math.Ceil(bounds.Width()/2/pitchU)) + 1
	rows := int(math.Ceil(bounds.Height()/2/pitchV)) + 1

	var cells []Cell
	for row := -rows; row <= rows; row++ {
		rowShift := 0.0
		if spec.Stagger && row%2 != 0 {
			rowShift = pitchU / 2
		}
		for col := -cols; col <= cols; col++ {
			c := geom.Vec2{
				X: center.X + float64(col)*pitchU + rowShift,
				Y: center.Y + float64(row)*pitchV,
			}
			cells = append(cells, Cell{Polygon: cellPolygon(spec, c), Center: c})
		}
	}
	return cells
}

// tileLines generates full-length slot cells: a column lattice in u, each
// cell spanning the entire v-extent of the boundary's bounding box.
func tileLines(bounds geom.Rect, spec Spec) []Cell {
	center := bounds.Center()
	cols := int(math.Ceil(bounds.Width() / 2 / spec.Spacing))

	var cells []Cell
	for col := -cols; col <= cols; col++ {
		c := geom.Vec2{X: center.X + float64(col)*spec.Spacing, Y: center.Y}
		cells = append(cells, Cell{
			Polygon: geom.RoundedRect(c, spec.Width, bounds.Height(), 0),
			Center:  c,
		})
	}
	return cells
}

// cellPolygon builds one cell outline centered at c.
func cellPolygon(spec Spec, c geom.Vec2) geom.Polygon {
	switch spec.Shape {
	case Hexagon:
		// Pointy-top orientation: flats face left and right so the
		// across-flats width is the column pitch direction.
		return geom.RegularPolygon(6, c, geom.AcrossFlatsRadius(6, spec.Width), math.Pi/2)
	case Circle:
		return geom.RegularPolygon(circleSegments, c, spec.Width/2, 0)
	case Rect:
		return geom.RoundedRect(c, spec.Width, spec.Width, spec.Fillet)
	default:
		return nil
	}
}
