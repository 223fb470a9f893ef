package cellforge

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Construction-time mesh modifiers. Objects are never deformed after they
// enter the scene, so all of these mutate the mesh in place before it is
// attached to an Object.

// Displace moves every vertex along its normal by the noise field sampled
// at the vertex position, scaled by strength. Normals are rebuilt.
func Displace(m *Mesh, n *Noise, strength float32) {
	if len(m.Normals) != len(m.Positions) {
		m.RecalculateNormals()
	}
	for i, p := range m.Positions {
		m.Positions[i] = p.Add(m.Normals[i].Mul(n.At(p) * strength))
	}
	m.RecalculateNormals()
}

// Solidify turns an open sheet into a closed slab of the given thickness:
// the sheet is duplicated at +-thickness/2 along its vertex normals, the
// lower side flips winding, and the boundary rim is stitched closed.
func Solidify(m *Mesh, thickness float32) {
	if thickness <= 0 {
		panic(fmt.Sprintf("Solidify: thickness must be positive, got %v", thickness))
	}
	if len(m.Normals) != len(m.Positions) {
		m.RecalculateNormals()
	}

	n := uint32(len(m.Positions))
	boundary := m.boundaryEdges()
	half := thickness / 2

	upperPos := make([]mgl32.Vec3, n)
	lowerPos := make([]mgl32.Vec3, n)
	for i, p := range m.Positions {
		offset := m.Normals[i].Mul(half)
		upperPos[i] = p.Add(offset)
		lowerPos[i] = p.Sub(offset)
	}

	upperNrm := make([]mgl32.Vec3, n)
	lowerNrm := make([]mgl32.Vec3, n)
	for i, nm := range m.Normals {
		upperNrm[i] = nm
		lowerNrm[i] = nm.Mul(-1)
	}

	indices := make([]uint32, 0, len(m.Indices)*2+len(boundary)*6)
	indices = append(indices, m.Indices...)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		indices = append(indices, a+n, c+n, b+n) // reversed winding
	}
	for _, e := range boundary {
		a, b := e[0], e[1]
		indices = append(indices, a, b, b+n)
		indices = append(indices, a, b+n, a+n)
	}

	m.Positions = append(upperPos, lowerPos...)
	m.Normals = append(upperNrm, lowerNrm...)
	m.Indices = indices
}

// Smooth applies simple Laplacian smoothing: each vertex moves toward the
// average of its index-connected neighbors by factor, for the given number
// of iterations.
func Smooth(m *Mesh, iterations int, factor float32) {
	if iterations <= 0 {
		return
	}

	neighbors := make(map[uint32][]uint32)
	addNeighbor := func(a, b uint32) {
		neighbors[a] = append(neighbors[a], b)
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		addNeighbor(a, b)
		addNeighbor(b, a)
		addNeighbor(b, c)
		addNeighbor(c, b)
		addNeighbor(c, a)
		addNeighbor(a, c)
	}

	for it := 0; it < iterations; it++ {
		next := make([]mgl32.Vec3, len(m.Positions))
		copy(next, m.Positions)
		for v, ns := range neighbors {
			if len(ns) == 0 {
				continue
			}
			var sum mgl32.Vec3
			for _, nb := range ns {
				sum = sum.Add(m.Positions[nb])
			}
			avg := sum.Mul(1 / float32(len(ns)))
			next[v] = m.Positions[v].Add(avg.Sub(m.Positions[v]).Mul(factor))
		}
		m.Positions = next
	}
	m.RecalculateNormals()
}
