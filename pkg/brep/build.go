package brep

import (
	"fmt"
	"math"

	"github.com/chazu/knurl/pkg/geom"
	"github.com/chazu/knurl/pkg/kernel"
)

// Box builds an x by y by z box with its minimum corner at the origin.
// All six faces are tracked, each wire counter-clockwise about its outward
// normal.
func Box(k kernel.Kernel, x, y, z float64) *Solid {
	shape := k.Box(x, y, z)
	faces := []Face{
		{ // +Z
			Normal: geom.Vec3{Z: 1},
			Loop:   []geom.Vec3{{X: 0, Y: 0, Z: z}, {X: x, Y: 0, Z: z}, {X: x, Y: y, Z: z}, {X: 0, Y: y, Z: z}},
		},
		{ // -Z
			Normal: geom.Vec3{Z: -1},
			Loop:   []geom.Vec3{{X: 0, Y: 0, Z: 0}, {X: 0, Y: y, Z: 0}, {X: x, Y: y, Z: 0}, {X: x, Y: 0, Z: 0}},
		},
		{ // +X
			Normal: geom.Vec3{X: 1},
			Loop:   []geom.Vec3{{X: x, Y: 0, Z: 0}, {X: x, Y: y, Z: 0}, {X: x, Y: y, Z: z}, {X: x, Y: 0, Z: z}},
		},
		{ // -X
			Normal: geom.Vec3{X: -1},
			Loop:   []geom.Vec3{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: z}, {X: 0, Y: y, Z: z}, {X: 0, Y: y, Z: 0}},
		},
		{ // +Y
			Normal: geom.Vec3{Y: 1},
			Loop:   []geom.Vec3{{X: 0, Y: y, Z: 0}, {X: 0, Y: y, Z: z}, {X: x, Y: y, Z: z}, {X: x, Y: y, Z: 0}},
		},
		{ // -Y
			Normal: geom.Vec3{Y: -1},
			Loop:   []geom.Vec3{{X: 0, Y: 0, Z: 0}, {X: x, Y: 0, Z: 0}, {X: x, Y: 0, Z: z}, {X: 0, Y: 0, Z: z}},
		},
	}
	return &Solid{shape: shape, faces: faces}
}

// cylinderWireSegments is the vertex count used for the tracked end-face
// wires of a cylinder.
const cylinderWireSegments = 64

// Cylinder builds a cylinder of the given height and radius rising from
// z = 0 with its axis through the XY origin. The two planar end faces are
// tracked as cylinderWireSegments-gon wires; the barrel is not tracked.
func Cylinder(k kernel.Kernel, height, radius float64) *Solid {
	shape := k.Cylinder(height, radius, cylinderWireSegments)

	ring := geom.RegularPolygon(cylinderWireSegments, geom.Vec2{}, radius, 0)
	top := make([]geom.Vec3, len(ring))
	bottom := make([]geom.Vec3, len(ring))
	for i, p := range ring {
		top[i] = geom.Vec3{X: p.X, Y: p.Y, Z: height}
		// Reverse traversal keeps the bottom wire counter-clockwise
		// about its outward (-Z) normal.
		bottom[len(ring)-1-i] = geom.Vec3{X: p.X, Y: p.Y, Z: 0}
	}

	faces := []Face{
		{Normal: geom.Vec3{Z: 1}, Loop: top},
		{Normal: geom.Vec3{Z: -1}, Loop: bottom},
	}
	return &Solid{shape: shape, faces: faces}
}

// PolygonPrism builds a solid whose top and bottom faces are regular
// sides-gons of the given across-flats width (inscribed circle diameter),
// extruded from z = 0 to height around the XY origin. The end faces and
// every lateral quad face are tracked.
func PolygonPrism(k kernel.Kernel, sides int, width, height float64) (*Solid, error) {
	if sides < 3 {
		return nil, fmt.Errorf("brep: polygon prism needs at least 3 sides, got %d", sides)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("brep: polygon prism dimensions %g x %g, must be positive", width, height)
	}

	radius := geom.AcrossFlatsRadius(sides, width)
	// First flat faces +X: vertices straddle the flats symmetrically.
	ring := geom.RegularPolygon(sides, geom.Vec2{}, radius, math.Pi/float64(sides))

	profile := make([][2]float64, len(ring))
	for i, p := range ring {
		profile[i] = [2]float64{p.X, p.Y}
	}
	shape, err := k.Extrude(profile, height)
	if err != nil {
		return nil, fmt.Errorf("brep: polygon prism: %w", err)
	}

	n := len(ring)
	top := make([]geom.Vec3, n)
	bottom := make([]geom.Vec3, n)
	for i, p := range ring {
		top[i] = geom.Vec3{X: p.X, Y: p.Y, Z: height}
		bottom[n-1-i] = geom.Vec3{X: p.X, Y: p.Y, Z: 0}
	}

	faces := []Face{
		{Normal: geom.Vec3{Z: 1}, Loop: top},
		{Normal: geom.Vec3{Z: -1}, Loop: bottom},
	}
	for i := 0; i < n; i++ {
		a, b := ring[i], ring[(i+1)%n]
		outward := geom.Vec3{X: b.Y - a.Y, Y: a.X - b.X}.Normalize()
		faces = append(faces, Face{
			Normal: outward,
			Loop: []geom.Vec3{
				{X: a.X, Y: a.Y, Z: 0},
				{X: b.X, Y: b.Y, Z: 0},
				{X: b.X, Y: b.Y, Z: height},
				{X: a.X, Y: a.Y, Z: height},
			},
		})
	}

	return &Solid{shape: shape, faces: faces}, nil
}
