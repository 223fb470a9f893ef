package cellforge

import (
	"github.com/go-gl/mathgl/mgl32"
)

// StagingModule frames the finished cell: one camera, a key sun light and
// a cool area fill, and a realtime-capable render mode for preview/export.
type StagingModule struct{}

func (StagingModule) Install(app *App, cmd *Commands) {
	cmd.UseSystem(System(stagingSystem).InStage(Assemble))
}

func stagingSystem(scene *Scene) error {
	scene.Camera = &CameraDef{
		Position: mgl32.Vec3{8, -8, 6},
		Rotation: EulerXYZ(mgl32.DegToRad(60), 0, mgl32.DegToRad(45)),
		FovY:     mgl32.DegToRad(40),
		Near:     0.1,
		Far:      100,
	}

	scene.AddLight(LightDef{
		Type:      LightTypeDirectional,
		Name:      "Sun",
		Position:  mgl32.Vec3{5, -5, 10},
		Rotation:  mgl32.QuatIdent(),
		Color:     [3]float32{1, 1, 1},
		Intensity: 2,
	})
	scene.AddLight(LightDef{
		Type:      LightTypeArea,
		Name:      "Fill",
		Position:  mgl32.Vec3{-5, 5, 5},
		Rotation:  mgl32.QuatIdent(),
		Color:     [3]float32{0.8, 0.9, 1.0},
		Intensity: 100,
	})

	scene.Mode = RenderRealtime
	return nil
}
