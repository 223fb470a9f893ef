package cellforge

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	mitoCount         = 12
	mitoScatterRadius = 2.2
	mitoPushThreshold = 1.4
	mitoPushRadius    = 1.7

	mitoMinLength = 0.35
	mitoMaxLength = 0.55
	mitoMinRadius = 0.1
	mitoMaxRadius = 0.15

	cristaeCount       = 4
	cristaeMinorRadius = 0.015
)

// MitochondriaModule scatters capsule-shaped mitochondria through the
// cytoplasm, each with a row of torus cristae along its long axis.
type MitochondriaModule struct{}

func (MitochondriaModule) Install(app *App, cmd *Commands) {
	cmd.UseSystem(System(mitochondriaSystem).InStage(Generate))
}

func mitochondriaSystem(scene *Scene, mats *MaterialLibrary, rng *Sampler) error {
	outerMat, err := requireMaterial(mats, MatMitoOuter)
	if err != nil {
		return err
	}
	innerMat, err := requireMaterial(mats, MatMitoInner)
	if err != nil {
		return err
	}
	group := scene.Group("Mitochondria")

	for i := 0; i < mitoCount; i++ {
		pos := PushOut(rng.PointInSphere(mitoScatterRadius), mitoPushThreshold, mitoPushRadius)
		rot := EulerXYZ(
			rng.Float()*math32.Pi,
			rng.Float()*math32.Pi,
			rng.Float()*math32.Pi,
		)

		length := rng.Uniform(mitoMinLength, mitoMaxLength)
		radius := rng.Uniform(mitoMinRadius, mitoMaxRadius)

		group.Add(&Object{
			Name:     fmt.Sprintf("Mitochondrion_%d", i),
			Mesh:     NewCapsule(radius, length, 24, 8),
			Material: outerMat,
			Transform: Transform{
				Position: pos,
				Rotation: rot,
				Scale:    mgl32.Vec3{1, 1, 1},
			},
			Smooth: true,
		})

		// Cristae lie perpendicular to the capsule axis, spaced evenly
		// along it.
		for c := 0; c < cristaeCount; c++ {
			offset := (float32(c) - 1.5) * (length / 4.5)
			cristaPos := pos.Add(rot.Rotate(mgl32.Vec3{0, 0, offset}))

			group.Add(&Object{
				Name:     fmt.Sprintf("Crista_%d_%d", i, c),
				Mesh:     NewTorus(radius*0.6, cristaeMinorRadius, 16, 8),
				Material: innerMat,
				Transform: Transform{
					Position: cristaPos,
					Rotation: rot.Mul(EulerXYZ(math32.Pi/2, 0, 0)),
					Scale:    mgl32.Vec3{1, 1, 1},
				},
				Smooth: true,
			})
		}
	}
	return nil
}
