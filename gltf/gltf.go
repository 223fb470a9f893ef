// Package gltf implements the subset of glTF 2.0 serialization needed to
// export a generated scene as a binary .glb file.
package gltf

// Root glTF object.
type GLTF struct {
	ExtensionsUsed []string     `json:"extensionsUsed,omitempty"`
	Accessors      []Accessor   `json:"accessors,omitempty"`
	Asset          Asset        `json:"asset"`
	Buffers        []Buffer     `json:"buffers,omitempty"`
	BufferViews    []BufferView `json:"bufferViews,omitempty"`
	Cameras        []Camera     `json:"cameras,omitempty"`
	Materials      []Material   `json:"materials,omitempty"`
	Meshes         []Mesh       `json:"meshes,omitempty"`
	Nodes          []Node       `json:"nodes,omitempty"`
	Scene          *int64       `json:"scene,omitempty"`
	Scenes         []Scene      `json:"scenes,omitempty"`
	Extensions     any          `json:"extensions,omitempty"`
}

// glTF.asset.
type Asset struct {
	Generator string `json:"generator,omitempty"`
	Version   string `json:"version"`
}

// glTF.accessors' element.
type Accessor struct {
	BufferView    *int64    `json:"bufferView,omitempty"`
	ByteOffset    int64     `json:"byteOffset,omitempty"` // Default is 0.
	ComponentType int64     `json:"componentType"`
	Count         int64     `json:"count"`
	Type          string    `json:"type"`
	Max           []float32 `json:"max,omitempty"`
	Min           []float32 `json:"min,omitempty"`
	Name          string    `json:"name,omitempty"`
}

// accessor.componentType values.
const (
	UNSIGNED_INT = 5125
	FLOAT        = 5126
)

// accessor.type values.
const (
	SCALAR = "SCALAR"
	VEC3   = "VEC3"
)

// glTF.buffers' element.
type Buffer struct {
	URI        string `json:"uri,omitempty"`
	ByteLength int64  `json:"byteLength"`
	Name       string `json:"name,omitempty"`
}

// glTF.bufferViews' element.
type BufferView struct {
	Buffer     int64 `json:"buffer"`
	ByteOffset int64 `json:"byteOffset,omitempty"` // Default is 0.
	ByteLength int64 `json:"byteLength"`
	Target     int64 `json:"target,omitempty"`
}

// bufferView.target values.
const (
	ARRAY_BUFFER         = 34962
	ELEMENT_ARRAY_BUFFER = 34963
)

// glTF.cameras' element.
type Camera struct {
	Perspective *Perspective `json:"perspective,omitempty"`
	Type        string       `json:"type"`
	Name        string       `json:"name,omitempty"`
}

// camera.perspective.
type Perspective struct {
	AspectRatio *float32 `json:"aspectRatio,omitempty"`
	Yfov        float32  `json:"yfov"`
	Zfar        *float32 `json:"zfar,omitempty"`
	Znear       float32  `json:"znear"`
}

// glTF.materials' element.
type Material struct {
	Name                 string                `json:"name,omitempty"`
	PBRMetallicRoughness *PBRMetallicRoughness `json:"pbrMetallicRoughness,omitempty"`
	EmissiveFactor       *[3]float32           `json:"emissiveFactor,omitempty"`
	AlphaMode            string                `json:"alphaMode,omitempty"` // Default is "OPAQUE".
	DoubleSided          bool                  `json:"doubleSided,omitempty"`
}

// material.pbrMetallicRoughness.
type PBRMetallicRoughness struct {
	BaseColorFactor *[4]float32 `json:"baseColorFactor,omitempty"`
	MetallicFactor  *float32    `json:"metallicFactor,omitempty"`
	RoughnessFactor *float32    `json:"roughnessFactor,omitempty"`
}

// material.alphaMode values.
const (
	OPAQUE = "OPAQUE"
	BLEND  = "BLEND"
)

// glTF.meshes' element.
type Mesh struct {
	Primitives []Primitive `json:"primitives"`
	Name       string      `json:"name,omitempty"`
}

// mesh.primitives' element.
type Primitive struct {
	Attributes map[string]int64 `json:"attributes"`
	Indices    *int64           `json:"indices,omitempty"`
	Material   *int64           `json:"material,omitempty"`
	Mode       *int64           `json:"mode,omitempty"` // Default is 4 (triangles).
}

// glTF.nodes' element.
type Node struct {
	Camera      *int64      `json:"camera,omitempty"`
	Children    []int64     `json:"children,omitempty"`
	Mesh        *int64      `json:"mesh,omitempty"`
	Rotation    *[4]float32 `json:"rotation,omitempty"` // x, y, z, w
	Scale       *[3]float32 `json:"scale,omitempty"`
	Translation *[3]float32 `json:"translation,omitempty"`
	Name        string      `json:"name,omitempty"`
	Extensions  any         `json:"extensions,omitempty"`
}

// glTF.scenes' element.
type Scene struct {
	Nodes []int64 `json:"nodes,omitempty"`
	Name  string  `json:"name,omitempty"`
}

// KHR_lights_punctual document-level extension payload.
type LightsExt struct {
	Lights []Light `json:"lights"`
}

// KHR_lights_punctual light.
type Light struct {
	Name      string     `json:"name,omitempty"`
	Color     [3]float32 `json:"color"`
	Intensity float32    `json:"intensity"`
	Type      string     `json:"type"`
}

// light.type values.
const (
	LightDirectional = "directional"
	LightPoint       = "point"
	LightSpot        = "spot"
)

// KHR_lights_punctual node-level extension payload.
type NodeLightExt struct {
	Light int64 `json:"light"`
}

// ExtLightsPunctual is the extension identifier.
const ExtLightsPunctual = "KHR_lights_punctual"
