package cellforge

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type MaterialId string

func makeMaterialId() MaterialId {
	return MaterialId(uuid.NewString())
}

// Material is an immutable appearance descriptor shared by reference
// across every object of the same organelle kind.
type Material struct {
	Id               MaterialId
	Name             string
	BaseColor        mgl32.Vec3
	Alpha            float32
	Roughness        float32
	Emission         mgl32.Vec3
	EmissionStrength float32

	// Blended is set for any alpha below 1; the exporter reads it to
	// enable transparent draw mode and disable backface culling.
	Blended bool
}

type MaterialOption func(*Material)

func WithAlpha(alpha float32) MaterialOption {
	return func(m *Material) { m.Alpha = alpha }
}

func WithRoughness(roughness float32) MaterialOption {
	return func(m *Material) { m.Roughness = roughness }
}

func WithEmission(color mgl32.Vec3, strength float32) MaterialOption {
	return func(m *Material) {
		m.Emission = color
		m.EmissionStrength = strength
	}
}

// MaterialLibrary registers material descriptors by name.
type MaterialLibrary struct {
	materials map[string]*Material
	order     []string
}

func NewMaterialLibrary() *MaterialLibrary {
	return &MaterialLibrary{
		materials: make(map[string]*Material),
	}
}

// Create builds and registers a material. Defaults: alpha 1, roughness 0.5,
// no emission. Creating the same name twice with identical parameters
// returns the existing descriptor; a conflicting redefinition is an error.
func (lib *MaterialLibrary) Create(name string, baseColor mgl32.Vec3, opts ...MaterialOption) (*Material, error) {
	if name == "" {
		return nil, fmt.Errorf("material name must not be empty")
	}

	mat := &Material{
		Name:      name,
		BaseColor: baseColor,
		Alpha:     1.0,
		Roughness: 0.5,
	}
	for _, opt := range opts {
		opt(mat)
	}

	if mat.Alpha < 0 || mat.Alpha > 1 {
		return nil, fmt.Errorf("material %q: alpha %v out of [0, 1]", name, mat.Alpha)
	}
	if mat.Roughness < 0 || mat.Roughness > 1 {
		return nil, fmt.Errorf("material %q: roughness %v out of [0, 1]", name, mat.Roughness)
	}
	if mat.EmissionStrength < 0 {
		return nil, fmt.Errorf("material %q: emission strength %v is negative", name, mat.EmissionStrength)
	}
	mat.Blended = mat.Alpha < 1

	if existing, ok := lib.materials[name]; ok {
		if sameMaterial(existing, mat) {
			return existing, nil
		}
		return nil, fmt.Errorf("material %q already registered with different parameters", name)
	}

	mat.Id = makeMaterialId()
	lib.materials[name] = mat
	lib.order = append(lib.order, name)
	return mat, nil
}

func sameMaterial(a, b *Material) bool {
	return a.Name == b.Name &&
		a.BaseColor == b.BaseColor &&
		a.Alpha == b.Alpha &&
		a.Roughness == b.Roughness &&
		a.Emission == b.Emission &&
		a.EmissionStrength == b.EmissionStrength
}

// Get returns the registered material with the given name, or nil.
func (lib *MaterialLibrary) Get(name string) *Material {
	return lib.materials[name]
}

// All returns materials in registration order.
func (lib *MaterialLibrary) All() []*Material {
	res := make([]*Material, 0, len(lib.order))
	for _, name := range lib.order {
		res = append(res, lib.materials[name])
	}
	return res
}

func (lib *MaterialLibrary) Len() int {
	return len(lib.materials)
}

// PruneUnreferenced drops every material not assigned to any object in the
// scene and reports how many were removed. Run after Scene.Clear so a
// regeneration starts from orphan-free state.
func (lib *MaterialLibrary) PruneUnreferenced(scene *Scene) int {
	referenced := make(map[MaterialId]bool)
	for _, group := range scene.Groups() {
		for _, obj := range group.Objects {
			if obj.Material != nil {
				referenced[obj.Material.Id] = true
			}
		}
	}

	var kept []string
	removed := 0
	for _, name := range lib.order {
		if referenced[lib.materials[name].Id] {
			kept = append(kept, name)
		} else {
			delete(lib.materials, name)
			removed++
		}
	}
	lib.order = kept
	return removed
}

func requireMaterial(lib *MaterialLibrary, name string) (*Material, error) {
	mat := lib.Get(name)
	if mat == nil {
		return nil, fmt.Errorf("material %q is not registered", name)
	}
	return mat, nil
}

// Material names shared between the material setup and the generators.
const (
	MatMembrane        = "Membrane"
	MatNuclearEnvelope = "NuclearEnvelope"
	MatNucleoplasm     = "Nucleoplasm"
	MatNucleolus       = "Nucleolus"
	MatChromatin       = "Chromatin"
	MatRoughER         = "RoughER"
	MatSmoothER        = "SmoothER"
	MatRibosome        = "Ribosome"
	MatMitoOuter       = "MitoOuter"
	MatMitoInner       = "MitoInner"
	MatGolgi           = "Golgi"
	MatVesicle         = "Vesicle"
	MatLysosome        = "Lysosome"
	MatCentriole       = "Centriole"
	MatCytoskeleton    = "Cytoskeleton"
)

// MaterialsModule installs the library and registers the cell palette
// during Setup.
type MaterialsModule struct{}

func (MaterialsModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewMaterialLibrary())
	cmd.UseSystem(System(cellMaterialsSystem).InStage(Setup))
}

func cellMaterialsSystem(lib *MaterialLibrary) error {
	type matDef struct {
		name string
		col  mgl32.Vec3
		opts []MaterialOption
	}

	defs := []matDef{
		{MatMembrane, mgl32.Vec3{0.5, 0.8, 0.6}, []MaterialOption{WithAlpha(0.15), WithRoughness(0.1)}},
		{MatNuclearEnvelope, mgl32.Vec3{0.4, 0.3, 0.7}, []MaterialOption{WithAlpha(0.5), WithRoughness(0.2)}},
		{MatNucleoplasm, mgl32.Vec3{0.5, 0.4, 0.8}, []MaterialOption{WithAlpha(0.7), WithRoughness(0.4), WithEmission(mgl32.Vec3{0.2, 0.1, 0.3}, 0.3)}},
		{MatNucleolus, mgl32.Vec3{0.3, 0.2, 0.5}, []MaterialOption{WithRoughness(0.6), WithEmission(mgl32.Vec3{0.1, 0.05, 0.15}, 0.5)}},
		{MatChromatin, mgl32.Vec3{0.6, 0.5, 0.9}, []MaterialOption{WithAlpha(0.9), WithRoughness(0.5), WithEmission(mgl32.Vec3{0.2, 0.15, 0.3}, 0.2)}},
		{MatRoughER, mgl32.Vec3{0.2, 0.6, 0.8}, []MaterialOption{WithAlpha(0.6), WithRoughness(0.3)}},
		{MatSmoothER, mgl32.Vec3{0.3, 0.7, 0.85}, []MaterialOption{WithAlpha(0.5), WithRoughness(0.25)}},
		{MatRibosome, mgl32.Vec3{0.15, 0.4, 0.6}, []MaterialOption{WithRoughness(0.6)}},
		{MatMitoOuter, mgl32.Vec3{0.9, 0.4, 0.35}, []MaterialOption{WithAlpha(0.75), WithRoughness(0.3)}},
		{MatMitoInner, mgl32.Vec3{0.95, 0.5, 0.4}, []MaterialOption{WithAlpha(0.9), WithRoughness(0.5), WithEmission(mgl32.Vec3{0.3, 0.1, 0.05}, 0.3)}},
		{MatGolgi, mgl32.Vec3{0.95, 0.8, 0.3}, []MaterialOption{WithAlpha(0.65), WithRoughness(0.3)}},
		{MatVesicle, mgl32.Vec3{0.95, 0.85, 0.4}, []MaterialOption{WithAlpha(0.7), WithRoughness(0.2)}},
		{MatLysosome, mgl32.Vec3{0.5, 0.85, 0.3}, []MaterialOption{WithAlpha(0.75), WithRoughness(0.4), WithEmission(mgl32.Vec3{0.15, 0.25, 0.1}, 0.2)}},
		{MatCentriole, mgl32.Vec3{0.85, 0.85, 0.95}, []MaterialOption{WithRoughness(0.3)}},
		{MatCytoskeleton, mgl32.Vec3{0.5, 0.5, 0.6}, []MaterialOption{WithAlpha(0.2), WithRoughness(0.5)}},
	}

	for _, def := range defs {
		if _, err := lib.Create(def.name, def.col, def.opts...); err != nil {
			return err
		}
	}
	return nil
}
