package cellforge

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type ObjectId string

func makeObjectId() ObjectId {
	return ObjectId(uuid.NewString())
}

// Transform places an object in the cell: translation, rotation, then
// optional non-uniform scale.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func IdentityTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

func (t Transform) Mat4() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translate.Mul4(t.Rotation.Mat4()).Mul4(scale)
}

// EulerXYZ builds a rotation from XYZ euler angles in radians.
func EulerXYZ(x, y, z float32) mgl32.Quat {
	return mgl32.AnglesToQuat(x, y, z, mgl32.XYZ)
}

// Object is one generated organelle instance. It is write-once: after the
// generator adds it to a group nothing mutates it.
type Object struct {
	Id        ObjectId
	Name      string
	Mesh      *Mesh
	Material  *Material
	Transform Transform

	// Smooth selects smooth shading on export; flat objects are faceted.
	Smooth bool
}

// Group is a named collection of objects for one organelle type.
type Group struct {
	Name    string
	Objects []*Object
}

func (g *Group) Add(obj *Object) *Object {
	if obj.Id == "" {
		obj.Id = makeObjectId()
	}
	g.Objects = append(g.Objects, obj)
	return obj
}

func (g *Group) Len() int {
	return len(g.Objects)
}

type RenderMode int

const (
	// RenderRealtime selects a realtime-capable preview engine.
	RenderRealtime RenderMode = iota
	RenderRaytraced
)

type CameraDef struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	FovY     float32 // radians
	Near     float32
	Far      float32
}

// Scene is the explicit generation context: every generator writes its
// group here, staging sets camera/lights, export reads the whole thing.
type Scene struct {
	groups []*Group
	byName map[string]*Group

	Camera *CameraDef
	Lights []LightDef
	Mode   RenderMode
}

func NewScene() *Scene {
	return &Scene{
		byName: make(map[string]*Group),
	}
}

// Group returns the named group, creating it on first use. Creation order
// is preserved for export and summaries.
func (s *Scene) Group(name string) *Group {
	if g, ok := s.byName[name]; ok {
		return g
	}
	g := &Group{Name: name}
	s.byName[name] = g
	s.groups = append(s.groups, g)
	return g
}

func (s *Scene) Groups() []*Group {
	return s.groups
}

func (s *Scene) AddLight(def LightDef) {
	s.Lights = append(s.Lights, def)
}

// ObjectCount returns the total number of objects across all groups.
func (s *Scene) ObjectCount() int {
	total := 0
	for _, g := range s.groups {
		total += len(g.Objects)
	}
	return total
}

// Clear discards all generated content so the pipeline can run again.
func (s *Scene) Clear() {
	s.groups = nil
	s.byName = make(map[string]*Group)
	s.Camera = nil
	s.Lights = nil
}

type GroupCount struct {
	Name  string
	Count int
}

// Summary reports per-group object counts in creation order.
func (s *Scene) Summary() []GroupCount {
	res := make([]GroupCount, 0, len(s.groups))
	for _, g := range s.groups {
		res = append(res, GroupCount{Name: g.Name, Count: len(g.Objects)})
	}
	return res
}

// Validate checks that the scene graph is complete and self-consistent:
// every object carries a mesh and a material, and no group is empty.
func (s *Scene) Validate() error {
	if len(s.groups) == 0 {
		return fmt.Errorf("scene has no groups")
	}
	for _, g := range s.groups {
		if len(g.Objects) == 0 {
			return fmt.Errorf("group %q is empty", g.Name)
		}
		for _, obj := range g.Objects {
			if obj.Mesh == nil || len(obj.Mesh.Positions) == 0 {
				return fmt.Errorf("group %q: object %q has no geometry", g.Name, obj.Name)
			}
			if obj.Material == nil {
				return fmt.Errorf("group %q: object %q has no material", g.Name, obj.Name)
			}
		}
	}
	return nil
}

// SceneModule installs the shared Scene resource.
type SceneModule struct{}

func (SceneModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewScene())
}
