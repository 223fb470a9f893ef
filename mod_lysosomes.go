package cellforge

import (
	"fmt"
)

const (
	lysosomeCount         = 10
	lysosomeScatterRadius = 2.3
	lysosomePushThreshold = 1.4
	lysosomePushRadius    = 1.7
	lysosomeMinSize       = 0.07
	lysosomeMaxSize       = 0.12
)

// LysosomesModule scatters digestive vesicles through the cytoplasm.
type LysosomesModule struct{}

func (LysosomesModule) Install(app *App, cmd *Commands) {
	cmd.UseSystem(System(lysosomesSystem).InStage(Generate))
}

func lysosomesSystem(scene *Scene, mats *MaterialLibrary, rng *Sampler) error {
	mat, err := requireMaterial(mats, MatLysosome)
	if err != nil {
		return err
	}
	group := scene.Group("Lysosomes")

	for i := 0; i < lysosomeCount; i++ {
		pos := PushOut(rng.PointInSphere(lysosomeScatterRadius), lysosomePushThreshold, lysosomePushRadius)
		radius := rng.Uniform(lysosomeMinSize, lysosomeMaxSize)

		tr := IdentityTransform()
		tr.Position = pos
		group.Add(&Object{
			Name:      fmt.Sprintf("Lysosome_%d", i),
			Mesh:      NewUVSphere(radius, 16, 8),
			Material:  mat,
			Transform: tr,
			Smooth:    true,
		})
	}
	return nil
}
