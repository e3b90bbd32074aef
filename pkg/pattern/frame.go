package pattern

import (
	"fmt"
	"math"

	"github.com/chazu/knurl/pkg/brep"
	"github.com/chazu/knurl/pkg/geom"
)

// FaceFrame is the local 2-D coordinate system of one selected face:
// a right-handed orthonormal basis (U, V, Normal) anchored at Origin, plus
// the face's outer wire projected into (U, V) coordinates in its natural
// traversal order.
type FaceFrame struct {
	Origin   geom.Vec3
	U, V     geom.Vec3
	Normal   geom.Vec3
	Boundary geom.Polygon
	BBox     geom.Rect
}

// Selector names the faces a pattern applies to, by the direction their
// outward normal most nearly aligns with: ">Z" is the face pointing most
// toward +Z, "<Z" toward -Z, and likewise for X and Y.
type Selector string

// Canonical face selectors.
const (
	TopFace    Selector = ">Z"
	BottomFace Selector = "<Z"
	RightFace  Selector = ">X"
	LeftFace   Selector = "<X"
	BackFace   Selector = ">Y"
	FrontFace  Selector = "<Y"
)

// direction returns the unit vector a selector points along.
func (s Selector) direction() (geom.Vec3, error) {
	switch s {
	case ">X":
		return geom.Vec3{X: 1}, nil
	case "<X":
		return geom.Vec3{X: -1}, nil
	case ">Y":
		return geom.Vec3{Y: 1}, nil
	case "<Y":
		return geom.Vec3{Y: -1}, nil
	case ">Z":
		return geom.Vec3{Z: 1}, nil
	case "<Z":
		return geom.Vec3{Z: -1}, nil
	}
	return geom.Vec3{}, fmt.Errorf("%w: unknown selector %q", ErrNoMatchingFace, string(s))
}

// minAlignment is the smallest normal-to-selector dot product for a face
// to count as "aligned". Faces tilted more than 45 degrees never match.
const minAlignment = math.Sqrt2 / 2

// alignTol groups faces whose alignment is numerically tied with the best
// one, so a selector matches every coplanar-parallel candidate at once.
const alignTol = 1e-9

// Frames resolves a selector against the tracked faces of a solid and
// returns one FaceFrame per matched face. Several faces can tie (e.g. two
// coplanar top faces after a union); all of them are returned.
func Frames(s *brep.Solid, sel Selector) ([]FaceFrame, error) {
	dir, err := sel.direction()
	if err != nil {
		return nil, err
	}

	best := -1.0
	for _, f := range s.Faces() {
		if d := f.Normal.Dot(dir); d > best {
			best = d
		}
	}
	if best < minAlignment {
		return nil, fmt.Errorf("%w: selector %q on a solid with %d tracked faces",
			ErrNoMatchingFace, string(sel), len(s.Faces()))
	}

	var frames []FaceFrame
	for _, f := range s.Faces() {
		if f.Normal.Dot(dir) < best-alignTol {
			continue
		}
		frame, err := FrameForFace(f)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

// FrameForFace derives the local frame of one tracked face. This is the
// entry point for explicit face references (non-axis-aligned faces picked
// by the caller).
//
// The in-plane axes are a pure function of the normal: U is the projection
// of the first world axis in the fixed priority order X, Y, Z that is not
// (nearly) parallel to the normal, and V = Normal x U. The same rule is
// used for every face, which makes a pattern cut on any face a rigid
// transform of the same cut on any other face with an equivalent frame.
func FrameForFace(f brep.Face) (FaceFrame, error) {
	if len(f.Loop) < 3 {
		return FaceFrame{}, fmt.Errorf("%w: outer wire has %d points",
			ErrUnsupportedFaceTopology, len(f.Loop))
	}

	n := f.Normal.Normalize()
	u, v := planeAxes(n)
	origin := f.Origin()

	boundary := make(geom.Polygon, len(f.Loop))
	for i, p := range f.Loop {
		rel := p.Sub(origin)
		boundary[i] = geom.Vec2{X: rel.Dot(u), Y: rel.Dot(v)}
	}
	if boundary.Area() < 1e-9 {
		return FaceFrame{}, fmt.Errorf("%w: outer wire has zero area", ErrUnsupportedFaceTopology)
	}

	return FaceFrame{
		Origin:   origin,
		U:        u,
		V:        v,
		Normal:   n,
		Boundary: boundary,
		BBox:     boundary.BoundingBox(),
	}, nil
}

// planeAxes returns the deterministic in-plane basis for a unit normal.
func planeAxes(n geom.Vec3) (u, v geom.Vec3) {
	for _, axis := range []geom.Vec3{{X: 1}, {Y: 1}, {Z: 1}} {
		if math.Abs(n.Dot(axis)) > 1-1e-9 {
			continue
		}
		u = axis.Sub(n.Scale(n.Dot(axis))).Normalize()
		v = n.Cross(u)
		return u, v
	}
	// Unreachable for a unit normal: at most one axis is parallel to it.
	return geom.Vec3{X: 1}, geom.Vec3{Y: 1}
}
