package cellforge

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/cellforge3d/cellforge/gltf"
)

// BuildGLTF converts a validated scene into a glTF 2.0 document plus its
// binary buffer. Groups become parent nodes, objects become mesh nodes
// with TRS transforms, blended materials get alpha blending with backface
// culling disabled, and lights ride on KHR_lights_punctual.
func BuildGLTF(scene *Scene) (*gltf.GLTF, []byte, error) {
	if err := scene.Validate(); err != nil {
		return nil, nil, fmt.Errorf("scene incomplete: %w", err)
	}

	doc := &gltf.GLTF{}
	doc.Asset.Generator = "cellforge"
	doc.Asset.Version = "2.0"

	var bin bytes.Buffer
	addView := func(data []byte, target int64) int64 {
		offset := int64(bin.Len())
		bin.Write(data)
		for bin.Len()%4 != 0 {
			bin.WriteByte(0)
		}
		doc.BufferViews = append(doc.BufferViews, gltf.BufferView{
			Buffer:     0,
			ByteOffset: offset,
			ByteLength: int64(len(data)),
			Target:     target,
		})
		return int64(len(doc.BufferViews) - 1)
	}

	matIndex := make(map[MaterialId]int64)
	materialIdx := func(mat *Material) int64 {
		if idx, ok := matIndex[mat.Id]; ok {
			return idx
		}
		base := [4]float32{mat.BaseColor.X(), mat.BaseColor.Y(), mat.BaseColor.Z(), mat.Alpha}
		metallic := float32(0)
		rough := mat.Roughness
		gm := gltf.Material{
			Name: mat.Name,
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &base,
				MetallicFactor:  &metallic,
				RoughnessFactor: &rough,
			},
		}
		if mat.EmissionStrength > 0 {
			emissive := [3]float32{
				mat.Emission.X() * mat.EmissionStrength,
				mat.Emission.Y() * mat.EmissionStrength,
				mat.Emission.Z() * mat.EmissionStrength,
			}
			gm.EmissiveFactor = &emissive
		}
		if mat.Blended {
			gm.AlphaMode = gltf.BLEND
			gm.DoubleSided = true
		}
		doc.Materials = append(doc.Materials, gm)
		idx := int64(len(doc.Materials) - 1)
		matIndex[mat.Id] = idx
		return idx
	}

	var rootNodes []int64
	for _, group := range scene.Groups() {
		var children []int64
		for _, obj := range group.Objects {
			mesh := obj.Mesh
			if !obj.Smooth {
				mesh = mesh.Faceted()
			}

			posView := addView(vec3Bytes(mesh.Positions), gltf.ARRAY_BUFFER)
			nrmView := addView(vec3Bytes(mesh.Normals), gltf.ARRAY_BUFFER)
			idxView := addView(indexBytes(mesh.Indices), gltf.ELEMENT_ARRAY_BUFFER)

			bbMin, bbMax := mesh.Bounds()
			doc.Accessors = append(doc.Accessors,
				gltf.Accessor{
					BufferView:    &posView,
					ComponentType: gltf.FLOAT,
					Count:         int64(len(mesh.Positions)),
					Type:          gltf.VEC3,
					Min:           bbMin[:],
					Max:           bbMax[:],
				},
				gltf.Accessor{
					BufferView:    &nrmView,
					ComponentType: gltf.FLOAT,
					Count:         int64(len(mesh.Normals)),
					Type:          gltf.VEC3,
				},
				gltf.Accessor{
					BufferView:    &idxView,
					ComponentType: gltf.UNSIGNED_INT,
					Count:         int64(len(mesh.Indices)),
					Type:          gltf.SCALAR,
				},
			)
			posAcc := int64(len(doc.Accessors) - 3)
			nrmAcc := posAcc + 1
			idxAcc := posAcc + 2

			mat := materialIdx(obj.Material)
			doc.Meshes = append(doc.Meshes, gltf.Mesh{
				Name: obj.Name,
				Primitives: []gltf.Primitive{{
					Attributes: map[string]int64{
						"POSITION": posAcc,
						"NORMAL":   nrmAcc,
					},
					Indices:  &idxAcc,
					Material: &mat,
				}},
			})
			meshIdx := int64(len(doc.Meshes) - 1)

			doc.Nodes = append(doc.Nodes, gltf.Node{
				Name:        obj.Name,
				Mesh:        &meshIdx,
				Translation: vec3Ptr(obj.Transform.Position),
				Rotation:    quatPtr(obj.Transform.Rotation),
				Scale:       vec3Ptr(obj.Transform.Scale),
			})
			children = append(children, int64(len(doc.Nodes)-1))
		}

		doc.Nodes = append(doc.Nodes, gltf.Node{
			Name:     group.Name,
			Children: children,
		})
		rootNodes = append(rootNodes, int64(len(doc.Nodes)-1))
	}

	if scene.Camera != nil {
		far := scene.Camera.Far
		doc.Cameras = append(doc.Cameras, gltf.Camera{
			Name: "Camera",
			Type: "perspective",
			Perspective: &gltf.Perspective{
				Yfov:  scene.Camera.FovY,
				Znear: scene.Camera.Near,
				Zfar:  &far,
			},
		})
		camIdx := int64(len(doc.Cameras) - 1)
		doc.Nodes = append(doc.Nodes, gltf.Node{
			Name:        "Camera",
			Camera:      &camIdx,
			Translation: vec3Ptr(scene.Camera.Position),
			Rotation:    quatPtr(scene.Camera.Rotation),
		})
		rootNodes = append(rootNodes, int64(len(doc.Nodes)-1))
	}

	if len(scene.Lights) > 0 {
		ext := gltf.LightsExt{}
		for i, def := range scene.Lights {
			ext.Lights = append(ext.Lights, gltf.Light{
				Name:      def.Name,
				Color:     def.Color,
				Intensity: def.Intensity,
				Type:      lightTypeName(def.Type),
			})
			doc.Nodes = append(doc.Nodes, gltf.Node{
				Name:        def.Name,
				Translation: vec3Ptr(def.Position),
				Rotation:    quatPtr(def.Rotation),
				Extensions: map[string]any{
					gltf.ExtLightsPunctual: gltf.NodeLightExt{Light: int64(i)},
				},
			})
			rootNodes = append(rootNodes, int64(len(doc.Nodes)-1))
		}
		doc.ExtensionsUsed = append(doc.ExtensionsUsed, gltf.ExtLightsPunctual)
		doc.Extensions = map[string]any{gltf.ExtLightsPunctual: ext}
	}

	doc.Buffers = []gltf.Buffer{{ByteLength: int64(bin.Len())}}
	sceneIdx := int64(0)
	doc.Scene = &sceneIdx
	doc.Scenes = []gltf.Scene{{Name: "Cell", Nodes: rootNodes}}

	return doc, bin.Bytes(), nil
}

// lightTypeName maps scene light types onto KHR_lights_punctual. glTF has
// no area light; the fill exports as a point light.
func lightTypeName(t LightType) string {
	switch t {
	case LightTypeDirectional:
		return gltf.LightDirectional
	case LightTypeSpot:
		return gltf.LightSpot
	default:
		return gltf.LightPoint
	}
}

func vec3Bytes(vs []mgl32.Vec3) []byte {
	buf := make([]byte, 0, len(vs)*12)
	var scratch [4]byte
	for _, v := range vs {
		for i := 0; i < 3; i++ {
			binary.LittleEndian.PutUint32(scratch[:], math32.Float32bits(v[i]))
			buf = append(buf, scratch[:]...)
		}
	}
	return buf
}

func indexBytes(indices []uint32) []byte {
	buf := make([]byte, len(indices)*4)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}

func vec3Ptr(v mgl32.Vec3) *[3]float32 {
	res := [3]float32{v.X(), v.Y(), v.Z()}
	return &res
}

func quatPtr(q mgl32.Quat) *[4]float32 {
	res := [4]float32{q.V.X(), q.V.Y(), q.V.Z(), q.W}
	return &res
}
