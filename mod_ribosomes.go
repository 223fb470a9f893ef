package cellforge

import (
	"fmt"
)

const (
	freeRibosomeCount     = 60
	freeRibosomeRadius    = 0.022
	freeRibosomeScatter   = 2.5
	freeRibosomePushLimit = 1.3
	freeRibosomePushOut   = 1.5
)

// FreeRibosomesModule scatters unbound ribosomes through the cytoplasm.
// Unlike the ER-bound ones these stay flat-shaded.
type FreeRibosomesModule struct{}

func (FreeRibosomesModule) Install(app *App, cmd *Commands) {
	cmd.UseSystem(System(freeRibosomesSystem).InStage(Generate))
}

func freeRibosomesSystem(scene *Scene, mats *MaterialLibrary, rng *Sampler) error {
	mat, err := requireMaterial(mats, MatRibosome)
	if err != nil {
		return err
	}
	group := scene.Group("FreeRibosomes")

	for i := 0; i < freeRibosomeCount; i++ {
		pos := PushOut(rng.PointInSphere(freeRibosomeScatter), freeRibosomePushLimit, freeRibosomePushOut)

		tr := IdentityTransform()
		tr.Position = pos
		group.Add(&Object{
			Name:      fmt.Sprintf("FreeRibosome_%d", i),
			Mesh:      NewUVSphere(freeRibosomeRadius, 6, 4),
			Material:  mat,
			Transform: tr,
		})
	}
	return nil
}
