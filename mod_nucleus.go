package cellforge

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	nucleusOffset = mgl32.Vec3{0, 0, 0.2}
	nucleolusPos  = mgl32.Vec3{0.25, 0.15, 0.35}
)

const (
	envelopeRadius    = 1.1
	nucleoplasmRadius = 1.0
	nucleolusRadius   = 0.35

	chromatinCount       = 10
	chromatinCtrlPoints  = 4
	chromatinSpread      = 0.7
	chromatinBevel       = 0.025
	chromatinRadialSegs  = 8
	chromatinPerSpanSegs = 8
)

// NucleusModule generates the nuclear envelope, nucleoplasm, nucleolus and
// the chromatin strands threaded through them.
type NucleusModule struct{}

func (NucleusModule) Install(app *App, cmd *Commands) {
	cmd.UseSystem(System(nucleusSystem).InStage(Generate))
}

func nucleusSystem(scene *Scene, mats *MaterialLibrary, rng *Sampler) error {
	group := scene.Group("Nucleus")

	spheres := []struct {
		name    string
		mat     string
		radius  float32
		pos     mgl32.Vec3
		seg, rn int
	}{
		{"NuclearEnvelope", MatNuclearEnvelope, envelopeRadius, nucleusOffset, 48, 24},
		{"Nucleoplasm", MatNucleoplasm, nucleoplasmRadius, nucleusOffset, 48, 24},
		{"Nucleolus", MatNucleolus, nucleolusRadius, nucleolusPos, 24, 12},
	}
	for _, def := range spheres {
		mat, err := requireMaterial(mats, def.mat)
		if err != nil {
			return err
		}
		tr := IdentityTransform()
		tr.Position = def.pos
		group.Add(&Object{
			Name:      def.name,
			Mesh:      NewUVSphere(def.radius, def.seg, def.rn),
			Material:  mat,
			Transform: tr,
			Smooth:    true,
		})
	}

	chromatin, err := requireMaterial(mats, MatChromatin)
	if err != nil {
		return err
	}
	for i := 0; i < chromatinCount; i++ {
		points := make([]mgl32.Vec3, chromatinCtrlPoints)
		for j := range points {
			points[j] = rng.PointInSphere(chromatinSpread).Add(nucleusOffset)
		}
		tube := NewTube(NewBezierSpline(points...), chromatinBevel, chromatinRadialSegs, chromatinPerSpanSegs)
		group.Add(&Object{
			Name:      fmt.Sprintf("Chromatin%d", i),
			Mesh:      tube,
			Material:  chromatin,
			Transform: IdentityTransform(),
			Smooth:    true,
		})
	}
	return nil
}
