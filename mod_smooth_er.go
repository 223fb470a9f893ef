package cellforge

import (
	"fmt"
	"sort"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	serNodeCount     = 25
	serShellRadius   = 1.9
	serShellSpread   = 0.5
	serVerticalRange = 1.4
	serMaxNeighbors  = 3
	serMaxEdgeLength = 1.2

	serTubeBevel      = 0.03
	serJunctionRadius = 0.045
)

// ERNetwork is the node/edge connectivity of the smooth-ER tubule mesh.
// Edges are undirected and stored with A < B; no pair appears twice.
type ERNetwork struct {
	Nodes []mgl32.Vec3
	Edges []EREdge
}

type EREdge struct {
	A, B int
}

// buildERNetwork samples nodes on a flattened spherical shell and connects
// each to at most serMaxNeighbors nearest neighbors within the distance
// threshold, deduplicating by unordered index pair.
func buildERNetwork(rng *Sampler) *ERNetwork {
	net := &ERNetwork{}
	for i := 0; i < serNodeCount; i++ {
		theta := rng.Float() * 2 * math32.Pi
		phi := rng.Float() * math32.Pi
		r := serShellRadius + rng.Float()*serShellSpread

		net.Nodes = append(net.Nodes, mgl32.Vec3{
			r * math32.Sin(phi) * math32.Cos(theta),
			(rng.Float() - 0.5) * serVerticalRange,
			r * math32.Sin(phi) * math32.Sin(theta),
		})
	}

	type candidate struct {
		idx  int
		dist float32
	}
	seen := make(map[EREdge]bool)

	for i, node := range net.Nodes {
		candidates := make([]candidate, 0, len(net.Nodes)-1)
		for j, other := range net.Nodes {
			if j == i {
				continue
			}
			candidates = append(candidates, candidate{idx: j, dist: node.Sub(other).Len()})
		}
		sort.Slice(candidates, func(a, b int) bool {
			return candidates[a].dist < candidates[b].dist
		})

		for _, c := range candidates[:serMaxNeighbors] {
			if c.dist >= serMaxEdgeLength {
				continue
			}
			key := EREdge{A: min(i, c.idx), B: max(i, c.idx)}
			if seen[key] {
				continue
			}
			seen[key] = true
			net.Edges = append(net.Edges, key)
		}
	}
	return net
}

// SmoothERModule generates the smooth-ER tubular network: junction nodes
// on a shell around the nucleus connected by slightly bent tubes.
type SmoothERModule struct{}

func (SmoothERModule) Install(app *App, cmd *Commands) {
	cmd.UseSystem(System(smoothERSystem).InStage(Generate))
}

func smoothERSystem(scene *Scene, mats *MaterialLibrary, rng *Sampler) error {
	mat, err := requireMaterial(mats, MatSmoothER)
	if err != nil {
		return err
	}
	group := scene.Group("SmoothER")

	net := buildERNetwork(rng)

	for _, edge := range net.Edges {
		start := net.Nodes[edge.A]
		end := net.Nodes[edge.B]
		mid := start.Add(end).Mul(0.5).Add(mgl32.Vec3{
			rng.Uniform(-0.15, 0.15),
			rng.Uniform(-0.1, 0.1),
			rng.Uniform(-0.15, 0.15),
		})

		tube := NewTube(NewBezierSpline(start, mid, end), serTubeBevel, 8, 8)
		group.Add(&Object{
			Name:      fmt.Sprintf("SERTube_%d_%d", edge.A, edge.B),
			Mesh:      tube,
			Material:  mat,
			Transform: IdentityTransform(),
			Smooth:    true,
		})
	}

	for i, node := range net.Nodes {
		tr := IdentityTransform()
		tr.Position = node
		group.Add(&Object{
			Name:      fmt.Sprintf("SERJunction_%d", i),
			Mesh:      NewUVSphere(serJunctionRadius, 12, 6),
			Material:  mat,
			Transform: tr,
			Smooth:    true,
		})
	}
	return nil
}
