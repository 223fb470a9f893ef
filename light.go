package cellforge

import (
	"github.com/go-gl/mathgl/mgl32"
)

type LightType uint32

const (
	LightTypePoint       LightType = 0
	LightTypeDirectional LightType = 1
	LightTypeSpot        LightType = 2
	LightTypeArea        LightType = 3
)

// LightDef defines a light instantiation.
type LightDef struct {
	Type      LightType
	Name      string
	Position  mgl32.Vec3
	Rotation  mgl32.Quat
	Color     [3]float32
	Intensity float32
}
