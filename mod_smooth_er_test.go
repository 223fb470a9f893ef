package cellforge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildERNetwork(t *testing.T) {
	net := buildERNetwork(NewSampler(42))

	require.Len(t, net.Nodes, serNodeCount)
	assert.NotEmpty(t, net.Edges)

	seen := make(map[EREdge]bool)
	for _, e := range net.Edges {
		assert.Less(t, e.A, e.B, "edges are stored with A < B")
		assert.False(t, seen[e], "no unordered pair appears twice")
		seen[e] = true

		dist := net.Nodes[e.A].Sub(net.Nodes[e.B]).Len()
		assert.Less(t, dist, float32(serMaxEdgeLength))
	}
}

func TestBuildERNetwork_Deterministic(t *testing.T) {
	a := buildERNetwork(NewSampler(7))
	b := buildERNetwork(NewSampler(7))

	assert.Equal(t, a.Nodes, b.Nodes)
	assert.Equal(t, a.Edges, b.Edges)
}

func TestSmoothERSystem(t *testing.T) {
	scene := NewScene()
	lib := NewMaterialLibrary()
	require.NoError(t, cellMaterialsSystem(lib))

	require.NoError(t, smoothERSystem(scene, lib, NewSampler(42)))

	group := scene.Group("SmoothER")
	junctions := 0
	tubes := 0
	for _, obj := range group.Objects {
		assert.Equal(t, MatSmoothER, obj.Material.Name)
		if len(obj.Name) >= 7 && obj.Name[:7] == "SERTube" {
			tubes++
		} else {
			junctions++
		}
	}
	assert.Equal(t, serNodeCount, junctions)
	assert.Positive(t, tubes)
}
