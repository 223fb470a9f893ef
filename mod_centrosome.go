package cellforge

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var centrosomeBase = mgl32.Vec3{1.5, -0.5, -1.2}

const (
	centrioleCount   = 2
	centrioleSpacing = 0.18

	tripletCount      = 9
	tubulesPerTriplet = 3
	tubuleRadius      = 0.012
	tubuleDepth       = 0.2
	tripletBaseRadius = 0.07
	tripletRadiusStep = 0.015
	tripletAngleSkew  = 0.08
)

// CentrosomeModule generates the centriole pair: two barrels of nine
// microtubule triplets each, oriented perpendicular to one another.
type CentrosomeModule struct{}

func (CentrosomeModule) Install(app *App, cmd *Commands) {
	cmd.UseSystem(System(centrosomeSystem).InStage(Generate))
}

func centrosomeSystem(scene *Scene, mats *MaterialLibrary) error {
	mat, err := requireMaterial(mats, MatCentriole)
	if err != nil {
		return err
	}
	group := scene.Group("Centrosome")

	for c := 0; c < centrioleCount; c++ {
		centriolePos := centrosomeBase.Add(mgl32.Vec3{0, float32(c) * centrioleSpacing, 0})

		// The second barrel is rotated a quarter turn so the pair sits
		// perpendicular, as in a real centrosome.
		orient := mgl32.QuatIdent()
		if c == 1 {
			orient = EulerXYZ(math32.Pi/2, 0, 0)
		}

		for i := 0; i < tripletCount; i++ {
			angle := float32(i) / tripletCount * 2 * math32.Pi
			for t := 0; t < tubulesPerTriplet; t++ {
				r := tripletBaseRadius + float32(t)*tripletRadiusStep
				offsetAngle := angle + float32(t)*tripletAngleSkew

				local := mgl32.Vec3{
					math32.Cos(offsetAngle) * r,
					math32.Sin(offsetAngle) * r,
					0,
				}

				group.Add(&Object{
					Name:     fmt.Sprintf("Centriole%d_Triplet%d_%d", c, i, t),
					Mesh:     NewCylinder(tubuleRadius, tubuleDepth, 12),
					Material: mat,
					Transform: Transform{
						Position: centriolePos.Add(orient.Rotate(local)),
						Rotation: orient,
						Scale:    mgl32.Vec3{1, 1, 1},
					},
				})
			}
		}
	}
	return nil
}
