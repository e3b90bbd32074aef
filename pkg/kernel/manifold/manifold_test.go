//go:build manifold

package manifold

import (
	"math"
	"testing"

	"github.com/chazu/knurl/pkg/kernel"
)

func mustNew(t *testing.T) kernel.Kernel {
	t.Helper()
	k, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return k
}

func TestBox(t *testing.T) {
	k := mustNew(t)
	s := k.Box(10, 20, 30)
	if s == nil {
		t.Fatal("Box() returned nil")
	}
	min, max := s.BoundingBox()

	// Box has its minimum corner at the origin.
	wantMin := [3]float64{0, 0, 0}
	wantMax := [3]float64{10, 20, 30}

	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-wantMin[i]) > 1e-6 {
			t.Errorf("Box min[%d] = %f, want %f", i, min[i], wantMin[i])
		}
		if math.Abs(max[i]-wantMax[i]) > 1e-6 {
			t.Errorf("Box max[%d] = %f, want %f", i, max[i], wantMax[i])
		}
	}
}

func TestCylinderBaseAtOrigin(t *testing.T) {
	k := mustNew(t)
	s := k.Cylinder(40, 10, 32)
	min, max := s.BoundingBox()
	if math.Abs(min[2]) > 1e-6 {
		t.Errorf("Cylinder base z = %f, want 0", min[2])
	}
	if math.Abs(max[2]-40) > 1e-6 {
		t.Errorf("Cylinder top z = %f, want 40", max[2])
	}
}

func TestExtrudeTriangle(t *testing.T) {
	k := mustNew(t)
	s, err := k.Extrude([][2]float64{{0, 0}, {10, 0}, {0, 10}}, 5)
	if err != nil {
		t.Fatalf("Extrude() error = %v", err)
	}
	min, max := s.BoundingBox()
	if math.Abs(min[2]) > 1e-6 || math.Abs(max[2]-5) > 1e-6 {
		t.Errorf("Extrude spans z [%f, %f], want [0, 5]", min[2], max[2])
	}
}

func TestExtrudeDegenerate(t *testing.T) {
	k := mustNew(t)
	if _, err := k.Extrude([][2]float64{{0, 0}, {10, 0}}, 5); err == nil {
		t.Error("Extrude() of a 2-point profile succeeded, want error")
	}
	if _, err := k.Extrude([][2]float64{{0, 0}, {10, 0}, {0, 10}}, 0); err == nil {
		t.Error("Extrude() with zero height succeeded, want error")
	}
}

func TestDifference(t *testing.T) {
	k := mustNew(t)
	box := k.Box(20, 20, 20)
	hole := k.Translate(k.Cylinder(30, 4, 32), 10, 10, -5)
	diff := k.Difference(box, hole)

	mesh, err := k.ToMesh(diff)
	if err != nil {
		t.Fatalf("ToMesh() error = %v", err)
	}
	boxMesh, err := k.ToMesh(box)
	if err != nil {
		t.Fatalf("ToMesh(box) error = %v", err)
	}
	if mesh.TriangleCount() <= boxMesh.TriangleCount() {
		t.Errorf("difference has %d triangles, want more than plain box (%d)",
			mesh.TriangleCount(), boxMesh.TriangleCount())
	}
}
