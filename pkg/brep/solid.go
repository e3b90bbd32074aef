// Package brep layers boundary-representation face records over the opaque
// kernel solids. Constructors record the outer wire of every planar face
// they create; transforms and booleans keep those records consistent, so
// downstream face selection and wire traversal never have to interrogate
// the kernel's implicit representation.
package brep

import (
	"github.com/chazu/knurl/pkg/geom"
	"github.com/chazu/knurl/pkg/kernel"
)

// Face is a tracked planar face of a solid: an outward unit normal and the
// ordered outer wire, one point per vertex, in the traversal order the face
// was built with (counter-clockwise about the outward normal). The wire is
// never re-sorted.
type Face struct {
	Normal geom.Vec3
	Loop   []geom.Vec3
}

// Origin returns the reference point of the face (the vertex average of
// its wire).
func (f Face) Origin() geom.Vec3 {
	var sum geom.Vec3
	for _, p := range f.Loop {
		sum = sum.Add(p)
	}
	if len(f.Loop) == 0 {
		return geom.Vec3{}
	}
	return sum.Scale(1 / float64(len(f.Loop)))
}

// Solid is an immutable solid with tracked planar faces. Every operation
// returns a new Solid; the kernel handle inside is never mutated.
type Solid struct {
	shape   kernel.Solid
	faces   []Face
	weldTol float64 // > 0 once Clean has been applied
}

// FromKernel wraps a raw kernel solid with an explicit face list.
func FromKernel(shape kernel.Solid, faces []Face) *Solid {
	return &Solid{shape: shape, faces: faces}
}

// Shape returns the underlying kernel solid handle.
func (s *Solid) Shape() kernel.Solid {
	return s.shape
}

// Faces returns the tracked planar faces. Curved faces (e.g. a cylinder
// barrel) are not tracked.
func (s *Solid) Faces() []Face {
	return s.faces
}

// BoundingBox returns the axis-aligned bounding box of the solid.
func (s *Solid) BoundingBox() (min, max geom.Vec3) {
	lo, hi := s.shape.BoundingBox()
	return geom.Vec3{X: lo[0], Y: lo[1], Z: lo[2]}, geom.Vec3{X: hi[0], Y: hi[1], Z: hi[2]}
}

// Mesh tessellates the solid. If the solid has been through Clean, the
// weld pass runs on the raw tessellation before returning.
func (s *Solid) Mesh(k kernel.Kernel) (*kernel.Mesh, error) {
	m, err := k.ToMesh(s.shape)
	if err != nil {
		return nil, err
	}
	if s.weldTol > 0 {
		m = kernel.Weld(m, s.weldTol)
	}
	return m, nil
}

// CleanOptions configures the post-boolean cleanup pass.
type CleanOptions struct {
	// Tolerance is the vertex-merge distance in mm. Zero selects
	// kernel.DefaultWeldTolerance.
	Tolerance float64
}

// Clean returns a copy of s whose tessellation output is simplified by
// welding coincident vertices and dropping degenerate triangles. Cleanup
// only ever reduces or preserves the tessellated vertex count.
func Clean(s *Solid, opts CleanOptions) *Solid {
	tol := opts.Tolerance
	if tol <= 0 {
		tol = kernel.DefaultWeldTolerance
	}
	return &Solid{shape: s.shape, faces: s.faces, weldTol: tol}
}
