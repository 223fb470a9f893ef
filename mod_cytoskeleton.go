package cellforge

import (
	"fmt"
)

const (
	microtubuleCount  = 18
	microtubuleReach  = 2.7
	microtubuleBevel  = 0.006
	microtubuleJitter = 0.25
)

// CytoskeletonModule generates microtubules radiating from the centrosome
// out toward the membrane.
type CytoskeletonModule struct{}

func (CytoskeletonModule) Install(app *App, cmd *Commands) {
	cmd.UseSystem(System(cytoskeletonSystem).InStage(Generate))
}

func cytoskeletonSystem(scene *Scene, mats *MaterialLibrary, rng *Sampler) error {
	mat, err := requireMaterial(mats, MatCytoskeleton)
	if err != nil {
		return err
	}
	group := scene.Group("Cytoskeleton")

	for i := 0; i < microtubuleCount; i++ {
		end := rng.PointOnSphere(microtubuleReach)
		// Re-randomize height over a wider band so the tubules do not
		// cluster on the shell.
		end[1] = rng.Uniform(-2, 2)

		mid := centrosomeBase.Add(end).Mul(0.5)
		mid = mid.Add(rng.PointInCube(microtubuleJitter))

		tube := NewTube(NewBezierSpline(centrosomeBase, mid, end), microtubuleBevel, 8, 8)
		group.Add(&Object{
			Name:      fmt.Sprintf("Microtubule_%d", i),
			Mesh:      tube,
			Material:  mat,
			Transform: IdentityTransform(),
			Smooth:    true,
		})
	}
	return nil
}
