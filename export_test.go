package cellforge

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellforge3d/cellforge/gltf"
)

func buildExportScene(t *testing.T) (*Scene, *MaterialLibrary) {
	t.Helper()
	lib := NewMaterialLibrary()
	opaque, err := lib.Create("Opaque", mgl32.Vec3{1, 0, 0})
	require.NoError(t, err)
	blended, err := lib.Create("Blended", mgl32.Vec3{0, 1, 0}, WithAlpha(0.5), WithEmission(mgl32.Vec3{1, 1, 1}, 2))
	require.NoError(t, err)

	scene := NewScene()
	g := scene.Group("GroupA")
	g.Add(&Object{
		Name:      "smooth",
		Mesh:      NewUVSphere(1, 8, 4),
		Material:  opaque,
		Transform: IdentityTransform(),
		Smooth:    true,
	})
	g.Add(&Object{
		Name:      "flat",
		Mesh:      NewUVSphere(0.5, 6, 3),
		Material:  blended,
		Transform: IdentityTransform(),
	})
	scene.Group("GroupB").Add(&Object{
		Name:      "other",
		Mesh:      NewCylinder(0.2, 1, 8),
		Material:  opaque,
		Transform: IdentityTransform(),
	})

	scene.Camera = &CameraDef{
		Position: mgl32.Vec3{8, -8, 6},
		Rotation: mgl32.QuatIdent(),
		FovY:     0.7,
		Near:     0.1,
		Far:      100,
	}
	scene.AddLight(LightDef{
		Type:      LightTypeDirectional,
		Name:      "Sun",
		Rotation:  mgl32.QuatIdent(),
		Color:     [3]float32{1, 1, 1},
		Intensity: 2,
	})
	scene.AddLight(LightDef{
		Type:      LightTypeArea,
		Name:      "Fill",
		Rotation:  mgl32.QuatIdent(),
		Color:     [3]float32{0.8, 0.9, 1},
		Intensity: 100,
	})
	return scene, lib
}

func TestBuildGLTF(t *testing.T) {
	scene, _ := buildExportScene(t)

	doc, bin, err := BuildGLTF(scene)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.NotEmpty(t, bin)
	assert.Equal(t, 0, len(bin)%4, "binary buffer must stay 4-byte aligned")

	// 3 meshes, one node each, plus 2 group parents, 1 camera, 2 lights.
	assert.Len(t, doc.Meshes, 3)
	assert.Len(t, doc.Nodes, 3+2+1+2)
	require.Len(t, doc.Scenes, 1)
	assert.Len(t, doc.Scenes[0].Nodes, 2+1+2, "groups, camera and lights are scene roots")

	// Materials dedupe by id: two objects share Opaque.
	assert.Len(t, doc.Materials, 2)

	assert.Len(t, doc.Accessors, 3*3, "position, normal and index accessor per mesh")
	assert.Equal(t, int64(len(bin)), doc.Buffers[0].ByteLength)
	assert.Contains(t, doc.ExtensionsUsed, gltf.ExtLightsPunctual)
}

func TestBuildGLTF_MaterialModes(t *testing.T) {
	scene, _ := buildExportScene(t)
	doc, _, err := BuildGLTF(scene)
	require.NoError(t, err)

	var opaque, blended *gltf.Material
	for i := range doc.Materials {
		switch doc.Materials[i].Name {
		case "Opaque":
			opaque = &doc.Materials[i]
		case "Blended":
			blended = &doc.Materials[i]
		}
	}
	require.NotNil(t, opaque)
	require.NotNil(t, blended)

	assert.Empty(t, opaque.AlphaMode)
	assert.False(t, opaque.DoubleSided)

	assert.Equal(t, gltf.BLEND, blended.AlphaMode)
	assert.True(t, blended.DoubleSided)
	require.NotNil(t, blended.EmissiveFactor)
	assert.Equal(t, [3]float32{2, 2, 2}, *blended.EmissiveFactor)
	assert.Equal(t, float32(0.5), blended.PBRMetallicRoughness.BaseColorFactor[3])
}

func TestBuildGLTF_FacetedFlatObjects(t *testing.T) {
	scene, _ := buildExportScene(t)
	doc, _, err := BuildGLTF(scene)
	require.NoError(t, err)

	counts := make(map[string]int64)
	for _, m := range doc.Meshes {
		counts[m.Name] = doc.Accessors[m.Primitives[0].Attributes["POSITION"]].Count
	}

	smooth := NewUVSphere(1, 8, 4)
	flat := NewUVSphere(0.5, 6, 3).Faceted()
	assert.Equal(t, int64(smooth.VertexCount()), counts["smooth"])
	assert.Equal(t, int64(flat.VertexCount()), counts["flat"], "flat objects export per-face vertices")
}

func TestBuildGLTF_AreaLightFallsBackToPoint(t *testing.T) {
	scene, _ := buildExportScene(t)
	doc, _, err := BuildGLTF(scene)
	require.NoError(t, err)

	ext, ok := doc.Extensions.(map[string]any)[gltf.ExtLightsPunctual].(gltf.LightsExt)
	require.True(t, ok)
	require.Len(t, ext.Lights, 2)
	assert.Equal(t, gltf.LightDirectional, ext.Lights[0].Type)
	assert.Equal(t, gltf.LightPoint, ext.Lights[1].Type, "area lights have no glTF equivalent")
}

func TestBuildGLTF_InvalidScene(t *testing.T) {
	_, _, err := BuildGLTF(NewScene())
	assert.Error(t, err)
}

func TestBuildGLTF_RoundTripsThroughGLB(t *testing.T) {
	scene, _ := buildExportScene(t)
	doc, bin, err := BuildGLTF(scene)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, gltf.EncodeGLB(&buf, doc, bin))

	r := bytes.NewReader(buf.Bytes())
	n, err := gltf.SeekJSON(r)
	require.NoError(t, err)

	jsonData := make([]byte, n)
	_, err = io.ReadFull(r, jsonData)
	require.NoError(t, err)

	var decoded gltf.GLTF
	require.NoError(t, json.Unmarshal(jsonData, &decoded))
	assert.Equal(t, "2.0", decoded.Asset.Version)
	assert.Len(t, decoded.Meshes, len(doc.Meshes))
}
