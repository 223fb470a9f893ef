package cellforge

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is an indexed triangle mesh in object-local coordinates.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Indices   []uint32
}

func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m *Mesh) AddTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// RecalculateNormals rebuilds smooth vertex normals as the normalized sum
// of adjacent face normals (area-weighted via the raw cross products).
func (m *Mesh) RecalculateNormals() {
	normals := make([]mgl32.Vec3, len(m.Positions))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		e1 := m.Positions[b].Sub(m.Positions[a])
		e2 := m.Positions[c].Sub(m.Positions[a])
		face := e1.Cross(e2)
		normals[a] = normals[a].Add(face)
		normals[b] = normals[b].Add(face)
		normals[c] = normals[c].Add(face)
	}
	for i, n := range normals {
		if n.Len() > 0 {
			normals[i] = n.Normalize()
		} else {
			normals[i] = mgl32.Vec3{0, 0, 1}
		}
	}
	m.Normals = normals
}

// Faceted returns a flat-shaded copy: vertices are split per triangle and
// every corner carries its face normal.
func (m *Mesh) Faceted() *Mesh {
	out := &Mesh{
		Positions: make([]mgl32.Vec3, 0, len(m.Indices)),
		Normals:   make([]mgl32.Vec3, 0, len(m.Indices)),
		Indices:   make([]uint32, 0, len(m.Indices)),
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		e1 := m.Positions[b].Sub(m.Positions[a])
		e2 := m.Positions[c].Sub(m.Positions[a])
		face := e1.Cross(e2)
		if face.Len() > 0 {
			face = face.Normalize()
		} else {
			face = mgl32.Vec3{0, 0, 1}
		}
		base := uint32(len(out.Positions))
		out.Positions = append(out.Positions, m.Positions[a], m.Positions[b], m.Positions[c])
		out.Normals = append(out.Normals, face, face, face)
		out.AddTriangle(base, base+1, base+2)
	}
	return out
}

// Bounds returns the axis-aligned min/max of the mesh positions.
func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	if len(m.Positions) == 0 {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}
	min = m.Positions[0]
	max = m.Positions[0]
	for _, p := range m.Positions[1:] {
		for i := 0; i < 3; i++ {
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}
	return min, max
}

// boundaryEdges returns edges referenced by exactly one triangle, as
// ordered vertex pairs following the winding of their triangle.
func (m *Mesh) boundaryEdges() [][2]uint32 {
	type edgeKey [2]uint32
	count := make(map[edgeKey]int)
	dir := make(map[edgeKey][2]uint32)

	addEdge := func(a, b uint32) {
		key := edgeKey{a, b}
		if b < a {
			key = edgeKey{b, a}
		}
		count[key]++
		if count[key] == 1 {
			dir[key] = [2]uint32{a, b}
		}
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		addEdge(a, b)
		addEdge(b, c)
		addEdge(c, a)
	}

	var res [][2]uint32
	for key, n := range count {
		if n == 1 {
			res = append(res, dir[key])
		}
	}
	return res
}
