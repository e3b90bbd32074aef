package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/knurl/pkg/geom"
)

func square(cx, cy, side float64) geom.Polygon {
	return geom.RoundedRect(geom.Vec2{X: cx, Y: cy}, side, side, 0)
}

func TestClipWhole(t *testing.T) {
	boundary := square(0, 0, 20)
	cells := []Cell{
		{Polygon: square(0, 0, 4), Center: geom.Vec2{}},            // fully inside
		{Polygon: square(9, 0, 4), Center: geom.Vec2{X: 9}},        // straddles the edge
		{Polygon: square(30, 0, 4), Center: geom.Vec2{X: 30}},      // fully outside
		{Polygon: square(8, 8, 4), Center: geom.Vec2{X: 8, Y: 8}},  // corner on boundary
	}

	out := clipCells(cells, boundary, Whole)
	require.Len(t, out, 2)

	// Retained cells pass through unmodified.
	assert.InDelta(t, 16, out[0].Polygon.Area(), 1e-9)
	assert.InDelta(t, 0, out[0].Center.Length(), 1e-12)

	// On-boundary vertices count as inside: the (8,8) cell's corner
	// touches (10,10) and the cell is still whole.
	assert.InDelta(t, 8, out[1].Center.X, 1e-12)
}

func TestClipPartialTrims(t *testing.T) {
	boundary := square(0, 0, 20)
	cells := []Cell{
		{Polygon: square(9, 0, 4), Center: geom.Vec2{X: 9}},
	}

	out := clipCells(cells, boundary, Partial)
	require.Len(t, out, 1)

	// Half the cell hangs outside; the trimmed piece is a 1x4 strip and
	// its center is recomputed from the piece, not the lattice.
	assert.InDelta(t, 12, out[0].Polygon.Area(), 1e-6)
	assert.InDelta(t, 8.5, out[0].Center.X, 1e-6)
	for _, v := range out[0].Polygon {
		assert.LessOrEqual(t, v.X, 10+1e-9)
	}
}

func TestClipPartialSplitsIntoPieces(t *testing.T) {
	// A U-shaped boundary: 10x10 square with a slot cut down from the
	// top edge between x=3 and x=7.
	boundary := geom.Polygon{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 7, Y: 10}, {X: 7, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 10}, {X: 0, Y: 10},
	}
	require.True(t, boundary.IsCCW())

	// One wide cell spanning the slot intersects as two separate pieces.
	cells := []Cell{{Polygon: square(5, 7.5, 8), Center: geom.Vec2{X: 5, Y: 7.5}}}

	out := clipCells(cells, boundary, Partial)
	require.Len(t, out, 2)
	for _, c := range out {
		assert.InDelta(t, 2*6.5, c.Polygon.Area(), 1e-6)
	}
	// The two piece centers flank the slot.
	assert.InDelta(t, 10, out[0].Center.X+out[1].Center.X, 1e-6)
}

func TestClipPartialDiscardsSlivers(t *testing.T) {
	boundary := square(0, 0, 20)
	cells := []Cell{
		{Polygon: square(12-1e-7, 0, 4), Center: geom.Vec2{X: 12}}, // sliver overlap
		{Polygon: square(30, 0, 4), Center: geom.Vec2{X: 30}},        // disjoint
	}
	assert.Empty(t, clipCells(cells, boundary, Partial))
}

func TestClipNonConvexWhole(t *testing.T) {
	// Star boundary: cells between the points are outside even though
	// they sit inside the star's bounding box.
	star := geom.RegularPolygon(5, geom.Vec2{}, 10, 1.5707963267948966)
	inner := geom.RegularPolygon(5, geom.Vec2{}, 4, 1.5707963267948966+0.6283185307179586)
	var boundary geom.Polygon
	for i := 0; i < 5; i++ {
		boundary = append(boundary, star[i], inner[i])
	}

	cells := []Cell{
		{Polygon: square(0, 0, 2), Center: geom.Vec2{}},           // core: inside
		{Polygon: square(0, -8, 2), Center: geom.Vec2{Y: -8}},     // between the lower points
	}
	out := clipCells(cells, boundary, Whole)
	require.Len(t, out, 1)
	assert.InDelta(t, 0, out[0].Center.Length(), 1e-12)
}
