package cellforge

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	cisternaCuts      = 12
	cisternaThickness = 0.02

	erRibosomeRadius  = 0.018
	erRibosomeLift    = 0.025
	rotationJitterMax = 0.05
)

// erStack describes one pile of rough-ER cisternae and its ribosome dusting.
type erStack struct {
	base          mgl32.Vec3
	count         int
	width, height float32
	stepX, stepY  float32
	yBias         float32
	tiltY         float32
	ribosomes     int
	spreadX       float32
	spreadY       float32
}

var erStacks = []erStack{
	{base: mgl32.Vec3{1.4, 0.1, 0.3}, count: 5, width: 0.5, height: 0.3, stepX: 0.06, stepY: 0.1, yBias: -0.2, tiltY: -0.3, ribosomes: 20, spreadX: 0.4, spreadY: 0.25},
	{base: mgl32.Vec3{-0.8, -0.2, 1.3}, count: 4, width: 0.45, height: 0.28, stepX: 0.05, stepY: 0.1, yBias: -0.15, tiltY: 1.9, ribosomes: 15, spreadX: 0.35, spreadY: 0.22},
	{base: mgl32.Vec3{0.5, 0.4, -1.4}, count: 3, width: 0.4, height: 0.25, stepX: 0.05, stepY: 0.09, yBias: -0.1, tiltY: 3.8, ribosomes: 12, spreadX: 0.3, spreadY: 0.2},
}

// CisternaHeight is the per-vertex z displacement of a unit cisterna sheet
// at local (x, y), x and y in [-0.5, 0.5]: a parabolic curvature along x,
// two crossed sine waves, and a quadratic edge roll-up past 70% of the
// half-extent.
func CisternaHeight(x, y float32) float32 {
	curve := 0.15 * (1 - (x*2)*(x*2))
	wave := math32.Sin(x*8)*0.03 + math32.Sin(y*6)*0.02

	edgeDist := math32.Max(math32.Abs(x*2), math32.Abs(y*2))
	var roll float32
	if edgeDist > 0.7 {
		t := (edgeDist - 0.7) / 0.3
		roll = t * t * 0.06
	}
	return curve + wave + roll
}

// newCisternaMesh builds one deformed, solidified ER sheet in unit-plane
// local coordinates; width/height arrive via the object scale.
func newCisternaMesh() *Mesh {
	mesh := NewPlane(1, cisternaCuts)
	for i, p := range mesh.Positions {
		mesh.Positions[i] = mgl32.Vec3{p.X(), p.Y(), CisternaHeight(p.X(), p.Y())}
	}
	mesh.RecalculateNormals()
	Solidify(mesh, cisternaThickness)
	return mesh
}

// RoughERModule generates three stacks of ribbed ER sheets, each studded
// with membrane-bound ribosomes.
type RoughERModule struct{}

func (RoughERModule) Install(app *App, cmd *Commands) {
	cmd.UseSystem(System(roughERSystem).InStage(Generate))
}

func roughERSystem(scene *Scene, mats *MaterialLibrary, rng *Sampler) error {
	group := scene.Group("RoughER")

	erMat, err := requireMaterial(mats, MatRoughER)
	if err != nil {
		return err
	}
	riboMat, err := requireMaterial(mats, MatRibosome)
	if err != nil {
		return err
	}

	for si, stack := range erStacks {
		for i := 0; i < stack.count; i++ {
			loc := stack.base.Add(mgl32.Vec3{
				stack.stepX * float32(i),
				stack.stepY*float32(i) + stack.yBias,
				0,
			})
			jitter := (rng.Float() - 0.5) * 2 * rotationJitterMax

			group.Add(&Object{
				Name:     fmt.Sprintf("RER_Stack%d_Cisterna%d", si+1, i),
				Mesh:     newCisternaMesh(),
				Material: erMat,
				Transform: Transform{
					Position: loc,
					Rotation: EulerXYZ(0.1, stack.tiltY, jitter),
					Scale:    mgl32.Vec3{stack.width, stack.height, 1},
				},
				Smooth: true,
			})

			for r := 0; r < stack.ribosomes; r++ {
				pos := loc.Add(mgl32.Vec3{
					rng.Uniform(-stack.spreadX, stack.spreadX),
					rng.Uniform(-stack.spreadY, stack.spreadY),
					erRibosomeLift * rng.Sign(),
				})
				tr := IdentityTransform()
				tr.Position = pos
				group.Add(&Object{
					Name:      fmt.Sprintf("Ribosome_S%dC%d_%d", si+1, i, r),
					Mesh:      NewUVSphere(erRibosomeRadius, 8, 4),
					Material:  riboMat,
					Transform: tr,
				})
			}
		}
	}
	return nil
}
