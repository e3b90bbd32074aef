// Package kernel defines the abstract geometry kernel interface.
// Implementations (sdfx, manifold) provide solid modeling and
// boolean operations behind this interface. The kernel abstraction
// allows swapping backends without changing the rest of the system.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Solids are immutable: every kernel operation returns a new Solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
// Implementations (sdfx, manifold) provide solid modeling behind this
// interface.
//
// Placement conventions shared by all backends: Box has its minimum corner
// at the origin; Cylinder and Extrude rise from z = 0 to z = height with
// their profile centered on (or expressed around) the origin in XY.
type Kernel interface {
	// Primitives
	Box(x, y, z float64) Solid
	Cylinder(height, radius float64, segments int) Solid

	// Extrude sweeps a closed 2-D profile (ordered ring of XY points,
	// implicitly closed) along +Z from z = 0 to z = height. Degenerate
	// profiles (fewer than 3 points, zero area) are reported as errors.
	Extrude(profile [][2]float64, height float64) (Solid, error)

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees, Rz*Ry*Rx

	// Frame rigidly places a solid expressed in local coordinates into the
	// right-handed orthonormal frame (u, v, n) at origin: local X maps to
	// u, local Y to v, local Z to n.
	Frame(s Solid, origin, u, v, n [3]float64) Solid

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
