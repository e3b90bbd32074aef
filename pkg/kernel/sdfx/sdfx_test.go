package sdfx

import (
	"math"
	"testing"
)

func TestBox(t *testing.T) {
	k := New()
	box := k.Box(100, 50, 25)
	mesh, err := k.ToMesh(box)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if mesh.VertexCount() == 0 {
		t.Fatal("expected non-zero vertex count")
	}
	triCount := mesh.TriangleCount()
	if triCount == 0 {
		t.Fatal("expected non-zero triangle count")
	}
	// Verify vertex and index array sizes are consistent.
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if len(mesh.Indices) != triCount*3 {
		t.Fatalf("indices length %d != triCount*3 %d", len(mesh.Indices), triCount*3)
	}
}

func TestBoxMinCornerOrigin(t *testing.T) {
	k := New()
	min, max := k.Box(10, 20, 30).BoundingBox()
	for i, want := range [3]float64{0, 0, 0} {
		if math.Abs(min[i]-want) > 1e-9 {
			t.Errorf("min[%d] = %v, want %v", i, min[i], want)
		}
	}
	for i, want := range [3]float64{10, 20, 30} {
		if math.Abs(max[i]-want) > 1e-9 {
			t.Errorf("max[%d] = %v, want %v", i, max[i], want)
		}
	}
}

func TestCylinderBaseAtOrigin(t *testing.T) {
	k := New()
	cyl := k.Cylinder(50, 10, 32)
	min, max := cyl.BoundingBox()
	if math.Abs(min[2]) > 1e-9 {
		t.Errorf("base z = %v, want 0", min[2])
	}
	if math.Abs(max[2]-50) > 1e-9 {
		t.Errorf("top z = %v, want 50", max[2])
	}
	mesh, err := k.ToMesh(cyl)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.TriangleCount() == 0 {
		t.Fatal("expected non-zero triangle count")
	}
}

func TestExtrudeTriangle(t *testing.T) {
	k := New()
	s, err := k.Extrude([][2]float64{{0, 0}, {20, 0}, {0, 20}}, 5)
	if err != nil {
		t.Fatalf("Extrude failed: %v", err)
	}
	min, max := s.BoundingBox()
	if math.Abs(min[2]) > 1e-9 || math.Abs(max[2]-5) > 1e-9 {
		t.Errorf("extrusion spans z [%v, %v], want [0, 5]", min[2], max[2])
	}
	mesh, err := k.ToMesh(s)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("extrusion mesh is empty")
	}
}

func TestExtrudeClockwiseProfile(t *testing.T) {
	// A clockwise ring must produce the same solid, not an inverted one.
	k := New()
	s, err := k.Extrude([][2]float64{{0, 20}, {20, 0}, {0, 0}}, 5)
	if err != nil {
		t.Fatalf("Extrude failed: %v", err)
	}
	mesh, err := k.ToMesh(s)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("clockwise extrusion mesh is empty")
	}
}

func TestExtrudeDegenerate(t *testing.T) {
	k := New()
	if _, err := k.Extrude([][2]float64{{0, 0}, {1, 1}}, 5); err == nil {
		t.Error("Extrude of 2-point profile succeeded, want error")
	}
	if _, err := k.Extrude([][2]float64{{0, 0}, {1, 1}, {2, 2}}, 5); err == nil {
		t.Error("Extrude of zero-area profile succeeded, want error")
	}
	if _, err := k.Extrude([][2]float64{{0, 0}, {1, 0}, {0, 1}}, 0); err == nil {
		t.Error("Extrude with zero height succeeded, want error")
	}
}

func TestFramePlacement(t *testing.T) {
	// Place a 10x10x5 extrusion onto the +X face frame (u=Y, v=Z, n=X)
	// at origin (40, 0, 0): the solid should occupy x in [40, 45].
	k := New()
	s, err := k.Extrude([][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, 5)
	if err != nil {
		t.Fatalf("Extrude failed: %v", err)
	}
	placed := k.Frame(s,
		[3]float64{40, 0, 0},
		[3]float64{0, 1, 0},
		[3]float64{0, 0, 1},
		[3]float64{1, 0, 0},
	)
	min, max := placed.BoundingBox()
	if math.Abs(min[0]-40) > 1e-6 || math.Abs(max[0]-45) > 1e-6 {
		t.Errorf("placed solid spans x [%v, %v], want [40, 45]", min[0], max[0])
	}
	if math.Abs(min[1]) > 1e-6 || math.Abs(max[1]-10) > 1e-6 {
		t.Errorf("placed solid spans y [%v, %v], want [0, 10]", min[1], max[1])
	}
	if math.Abs(min[2]) > 1e-6 || math.Abs(max[2]-10) > 1e-6 {
		t.Errorf("placed solid spans z [%v, %v], want [0, 10]", min[2], max[2])
	}
}

func TestDifference(t *testing.T) {
	k := New()

	box := k.Box(100, 100, 100)
	boxMesh, err := k.ToMesh(box)
	if err != nil {
		t.Fatalf("ToMesh(box) failed: %v", err)
	}

	cyl := k.Translate(k.Cylinder(120, 20, 32), 50, 50, -10)
	diff := k.Difference(box, cyl)
	diffMesh, err := k.ToMesh(diff)
	if err != nil {
		t.Fatalf("ToMesh(diff) failed: %v", err)
	}
	if diffMesh.IsEmpty() {
		t.Fatal("difference mesh is empty")
	}
	// A box with a hole should have more triangles than a plain box.
	if diffMesh.TriangleCount() <= boxMesh.TriangleCount() {
		t.Fatalf("difference (%d triangles) should have more triangles than box (%d triangles)",
			diffMesh.TriangleCount(), boxMesh.TriangleCount())
	}
}

func TestUnion(t *testing.T) {
	k := New()
	box1 := k.Box(50, 50, 50)
	box2 := k.Translate(k.Box(50, 50, 50), 30, 0, 0)
	u := k.Union(box1, box2)
	mesh, err := k.ToMesh(u)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("union mesh is empty")
	}
	min, max := u.BoundingBox()
	if max[0]-min[0] < 79 {
		t.Errorf("union x extent = %v, want ~80", max[0]-min[0])
	}
}
