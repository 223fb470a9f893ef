package cellforge

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var golgiBase = mgl32.Vec3{-1.8, 0.3, 1.0}

const (
	golgiCisternae      = 5
	golgiMajorRadius    = 0.28
	golgiMinorRadius    = 0.05
	golgiFlatten        = 0.35
	golgiVesicles       = 8
	golgiVesicleMinSize = 0.04
)

// GolgiModule generates the Golgi apparatus: a stack of flattened tori
// with vesicles budding off one face.
type GolgiModule struct{}

func (GolgiModule) Install(app *App, cmd *Commands) {
	cmd.UseSystem(System(golgiSystem).InStage(Generate))
}

func golgiSystem(scene *Scene, mats *MaterialLibrary, rng *Sampler) error {
	golgiMat, err := requireMaterial(mats, MatGolgi)
	if err != nil {
		return err
	}
	vesicleMat, err := requireMaterial(mats, MatVesicle)
	if err != nil {
		return err
	}
	group := scene.Group("GolgiApparatus")

	for i := 0; i < golgiCisternae; i++ {
		group.Add(&Object{
			Name:     fmt.Sprintf("GolgiCisterna_%d", i),
			Mesh:     NewTorus(golgiMajorRadius, golgiMinorRadius, 24, 8),
			Material: golgiMat,
			Transform: Transform{
				Position: golgiBase.Add(mgl32.Vec3{float32(i) * 0.04, float32(i) * 0.1, 0}),
				Rotation: EulerXYZ(0, 0, math32.Pi/4),
				Scale:    mgl32.Vec3{1, 1, golgiFlatten},
			},
			Smooth: true,
		})
	}

	for i := 0; i < golgiVesicles; i++ {
		radius := golgiVesicleMinSize + rng.Float()*0.025
		pos := golgiBase.Add(mgl32.Vec3{
			0.3 + rng.Uniform(0, 0.2),
			rng.Uniform(-0.15, 0.35),
			rng.Uniform(-0.2, 0.2),
		})
		tr := IdentityTransform()
		tr.Position = pos
		group.Add(&Object{
			Name:      fmt.Sprintf("GolgiVesicle_%d", i),
			Mesh:      NewUVSphere(radius, 12, 6),
			Material:  vesicleMat,
			Transform: tr,
			Smooth:    true,
		})
	}
	return nil
}
