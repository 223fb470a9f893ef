package cellforge

const (
	membraneRadius   = 3.0
	membraneSegments = 64
	membraneRings    = 32

	// Organic irregularity of the outer envelope.
	membraneDisplaceStrength = 0.05
	membraneNoiseScale       = 0.5
)

// MembraneModule generates the outer cell membrane: one large sphere with
// a small noise displacement.
type MembraneModule struct{}

func (MembraneModule) Install(app *App, cmd *Commands) {
	cmd.UseSystem(System(membraneSystem).InStage(Generate))
}

func membraneSystem(scene *Scene, mats *MaterialLibrary, rng *Sampler) error {
	mat, err := requireMaterial(mats, MatMembrane)
	if err != nil {
		return err
	}

	mesh := NewUVSphere(membraneRadius, membraneSegments, membraneRings)

	params := DefaultNoiseParams()
	params.Frequency = 1 / membraneNoiseScale
	noise := NewNoise(rng.Int63(), params)
	Displace(mesh, noise, membraneDisplaceStrength)

	scene.Group("CellMembrane").Add(&Object{
		Name:      "CellMembrane",
		Mesh:      mesh,
		Material:  mat,
		Transform: IdentityTransform(),
		Smooth:    true,
	})
	return nil
}
