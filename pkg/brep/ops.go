package brep

import (
	"github.com/chazu/knurl/pkg/geom"
	"github.com/chazu/knurl/pkg/kernel"
)

// Translate returns s moved by (x, y, z), with face records shifted to
// match.
func Translate(k kernel.Kernel, s *Solid, x, y, z float64) *Solid {
	d := geom.Vec3{X: x, Y: y, Z: z}
	faces := make([]Face, len(s.faces))
	for i, f := range s.faces {
		loop := make([]geom.Vec3, len(f.Loop))
		for j, p := range f.Loop {
			loop[j] = p.Add(d)
		}
		faces[i] = Face{Normal: f.Normal, Loop: loop}
	}
	return &Solid{
		shape:   k.Translate(s.shape, x, y, z),
		faces:   faces,
		weldTol: s.weldTol,
	}
}

// Rotate returns s rotated about the world origin by Euler angles in
// degrees (Rz*Ry*Rx, the kernel convention), with face records rotated to
// match.
func Rotate(k kernel.Kernel, s *Solid, xDeg, yDeg, zDeg float64) *Solid {
	m := geom.EulerRotation(xDeg, yDeg, zDeg)
	faces := make([]Face, len(s.faces))
	for i, f := range s.faces {
		loop := make([]geom.Vec3, len(f.Loop))
		for j, p := range f.Loop {
			loop[j] = m.Apply(p)
		}
		faces[i] = Face{Normal: m.Apply(f.Normal), Loop: loop}
	}
	return &Solid{
		shape:   k.Rotate(s.shape, xDeg, yDeg, zDeg),
		faces:   faces,
		weldTol: s.weldTol,
	}
}

// Union returns the boolean union of a and b. The tracked faces of both
// operands are carried over; coplanar overlapping faces remain separate
// records.
func Union(k kernel.Kernel, a, b *Solid) *Solid {
	faces := make([]Face, 0, len(a.faces)+len(b.faces))
	faces = append(faces, a.faces...)
	faces = append(faces, b.faces...)
	return &Solid{
		shape:   k.Union(a.shape, b.shape),
		faces:   faces,
		weldTol: a.weldTol,
	}
}

// Cut returns base minus tool. The base's tracked faces are carried over:
// a subtraction opens holes in a face but leaves its outer wire intact,
// which is exactly the invariant pattern cutting relies on. A tool that
// would split or consume a tracked face leaves a stale record; callers in
// that position should rebuild the solid from primitives instead.
func Cut(k kernel.Kernel, base, tool *Solid) *Solid {
	return &Solid{
		shape:   k.Difference(base.shape, tool.shape),
		faces:   base.faces,
		weldTol: base.weldTol,
	}
}

// Intersect returns the boolean intersection of a and b. Planar face wires
// are generally not preserved by intersection, so the result carries no
// tracked faces.
func Intersect(k kernel.Kernel, a, b *Solid) *Solid {
	return &Solid{
		shape:   k.Intersection(a.shape, b.shape),
		weldTol: a.weldTol,
	}
}
