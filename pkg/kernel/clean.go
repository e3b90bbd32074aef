package kernel

import "math"

// DefaultWeldTolerance is the default vertex-merge distance for Weld, in mm.
const DefaultWeldTolerance = 1e-4

// Weld returns a copy of m with coincident vertices merged and degenerate
// triangles (two or more merged corners) removed. Vertices closer than tol
// along every axis collapse to one; normals are recomputed by area-weighted
// averaging of the incident faces. The result never has more vertices or
// triangles than the input.
func Weld(m *Mesh, tol float64) *Mesh {
	if m.IsEmpty() {
		return &Mesh{Name: m.Name}
	}
	if tol <= 0 {
		tol = DefaultWeldTolerance
	}

	type cell struct{ x, y, z int64 }
	quantize := func(v int) cell {
		return cell{
			x: int64(math.Round(float64(m.Vertices[v*3+0]) / tol)),
			y: int64(math.Round(float64(m.Vertices[v*3+1]) / tol)),
			z: int64(math.Round(float64(m.Vertices[v*3+2]) / tol)),
		}
	}

	remap := make([]uint32, m.VertexCount())
	seen := make(map[cell]uint32, m.VertexCount())
	var vertices []float32

	for v := 0; v < m.VertexCount(); v++ {
		c := quantize(v)
		if idx, ok := seen[c]; ok {
			remap[v] = idx
			continue
		}
		idx := uint32(len(vertices) / 3)
		seen[c] = idx
		remap[v] = idx
		vertices = append(vertices,
			m.Vertices[v*3+0], m.Vertices[v*3+1], m.Vertices[v*3+2])
	}

	var indices []uint32
	for t := 0; t < m.TriangleCount(); t++ {
		i0 := remap[m.Indices[t*3+0]]
		i1 := remap[m.Indices[t*3+1]]
		i2 := remap[m.Indices[t*3+2]]
		if i0 == i1 || i1 == i2 || i2 == i0 {
			continue // collapsed to an edge or point
		}
		indices = append(indices, i0, i1, i2)
	}

	return &Mesh{
		Vertices: vertices,
		Normals:  vertexNormals(vertices, indices),
		Indices:  indices,
		Name:     m.Name,
	}
}

// vertexNormals generates per-vertex normals by accumulating the
// (area-weighted) face normals of all triangles incident on each vertex.
func vertexNormals(vertices []float32, indices []uint32) []float32 {
	numVerts := len(vertices) / 3
	normals := make([]float32, numVerts*3)

	numTris := len(indices) / 3
	for t := 0; t < numTris; t++ {
		i0 := indices[t*3+0]
		i1 := indices[t*3+1]
		i2 := indices[t*3+2]

		// Triangle vertex positions.
		ax, ay, az := float64(vertices[i0*3]), float64(vertices[i0*3+1]), float64(vertices[i0*3+2])
		bx, by, bz := float64(vertices[i1*3]), float64(vertices[i1*3+1]), float64(vertices[i1*3+2])
		cx, cy, cz := float64(vertices[i2*3]), float64(vertices[i2*3+1]), float64(vertices[i2*3+2])

		// Edge vectors.
		e1x, e1y, e1z := bx-ax, by-ay, bz-az
		e2x, e2y, e2z := cx-ax, cy-ay, cz-az

		// Cross product (unnormalized face normal, length = 2x area).
		nx := float32(e1y*e2z - e1z*e2y)
		ny := float32(e1z*e2x - e1x*e2z)
		nz := float32(e1x*e2y - e1y*e2x)

		for _, idx := range []uint32{i0, i1, i2} {
			normals[idx*3+0] += nx
			normals[idx*3+1] += ny
			normals[idx*3+2] += nz
		}
	}

	for i := 0; i < numVerts; i++ {
		nx := float64(normals[i*3+0])
		ny := float64(normals[i*3+1])
		nz := float64(normals[i*3+2])
		length := math.Sqrt(nx*nx + ny*ny + nz*nz)
		if length > 1e-12 {
			normals[i*3+0] = float32(nx / length)
			normals[i*3+1] = float32(ny / length)
			normals[i*3+2] = float32(nz / length)
		}
	}

	return normals
}
