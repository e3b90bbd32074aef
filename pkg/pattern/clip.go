package pattern

import (
	polyclip "github.com/ctessum/polyclip-go"

	"github.com/chazu/knurl/pkg/geom"
)

// minCellArea is the area (mm^2) below which a clipped cell is discarded
// as degenerate. Reflex-vertex offset clamping can hand the clipper
// self-overlapping boundary slivers; those fall out here as zero-area.
const minCellArea = 1e-6

// clipCells applies the clip policy to the candidate cells against the
// offset boundary. Under Whole, a cell survives unmodified only if every
// vertex is inside the boundary. Under Partial, each cell is replaced by
// its intersection with the boundary; an intersection that splits into
// several pieces yields one cell per above-threshold piece.
func clipCells(cells []Cell, boundary geom.Polygon, policy ClipPolicy) []Cell {
	var out []Cell
	for _, cell := range cells {
		switch policy {
		case Whole:
			if allInside(cell.Polygon, boundary) {
				out = append(out, cell)
			}
		case Partial:
			for _, piece := range intersect(cell.Polygon, boundary) {
				out = append(out, Cell{Polygon: piece, Center: piece.Centroid()})
			}
		}
	}
	return out
}

// allInside reports whether every vertex of p lies inside boundary.
func allInside(p, boundary geom.Polygon) bool {
	for _, v := range p {
		if !boundary.Contains(v) {
			return false
		}
	}
	return true
}

// intersect computes the general polygon intersection cell ^ boundary.
// The boundary may be non-convex (and, after aggressive offsetting,
// locally self-overlapping); polyclip's Vatti-style clipper handles both,
// which a convex-only Sutherland-Hodgman pass would not.
func intersect(cell, boundary geom.Polygon) []geom.Polygon {
	result := toClip(cell).Construct(polyclip.INTERSECTION, toClip(boundary))

	var pieces []geom.Polygon
	for _, contour := range result {
		piece := make(geom.Polygon, len(contour))
		for i, pt := range contour {
			piece[i] = geom.Vec2{X: pt.X, Y: pt.Y}
		}
		if piece.Area() < minCellArea {
			continue
		}
		pieces = append(pieces, piece)
	}
	return pieces
}

// toClip converts a ring to polyclip's representation.
func toClip(p geom.Polygon) polyclip.Polygon {
	contour := make(polyclip.Contour, len(p))
	for i, pt := range p {
		contour[i] = polyclip.Point{X: pt.X, Y: pt.Y}
	}
	return polyclip.Polygon{contour}
}
