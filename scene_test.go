package cellforge

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testObject(name string, mat *Material) *Object {
	return &Object{
		Name:      name,
		Mesh:      NewUVSphere(1, 8, 4),
		Material:  mat,
		Transform: IdentityTransform(),
	}
}

func testMaterial(t *testing.T) *Material {
	t.Helper()
	lib := NewMaterialLibrary()
	mat, err := lib.Create("Test", mgl32.Vec3{1, 1, 1})
	require.NoError(t, err)
	return mat
}

func TestScene_Group_CreateOrGet(t *testing.T) {
	scene := NewScene()

	a := scene.Group("Nucleus")
	b := scene.Group("Nucleus")
	assert.Same(t, a, b, "same name returns the same group")

	scene.Group("Membrane")
	var names []string
	for _, g := range scene.Groups() {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"Nucleus", "Membrane"}, names, "creation order is preserved")
}

func TestScene_ObjectIds(t *testing.T) {
	scene := NewScene()
	mat := testMaterial(t)

	obj := scene.Group("G").Add(testObject("a", mat))
	other := scene.Group("G").Add(testObject("b", mat))

	assert.NotEmpty(t, obj.Id)
	assert.NotEmpty(t, other.Id)
	assert.NotEqual(t, obj.Id, other.Id)
}

func TestScene_Summary(t *testing.T) {
	scene := NewScene()
	mat := testMaterial(t)
	scene.Group("A").Add(testObject("1", mat))
	scene.Group("A").Add(testObject("2", mat))
	scene.Group("B").Add(testObject("3", mat))

	assert.Equal(t, []GroupCount{{"A", 2}, {"B", 1}}, scene.Summary())
	assert.Equal(t, 3, scene.ObjectCount())
}

func TestScene_Validate(t *testing.T) {
	scene := NewScene()
	assert.Error(t, scene.Validate(), "empty scene is invalid")

	scene.Group("Empty")
	assert.Error(t, scene.Validate(), "empty group is invalid")

	scene = NewScene()
	mat := testMaterial(t)
	scene.Group("G").Add(&Object{Name: "nogeo", Material: mat, Transform: IdentityTransform()})
	assert.Error(t, scene.Validate(), "object without geometry is invalid")

	scene = NewScene()
	scene.Group("G").Add(&Object{Name: "nomat", Mesh: NewUVSphere(1, 8, 4), Transform: IdentityTransform()})
	assert.Error(t, scene.Validate(), "object without material is invalid")

	scene = NewScene()
	scene.Group("G").Add(testObject("ok", mat))
	assert.NoError(t, scene.Validate())
}

func TestScene_Clear(t *testing.T) {
	scene := NewScene()
	mat := testMaterial(t)
	scene.Group("G").Add(testObject("a", mat))
	scene.Camera = &CameraDef{}
	scene.AddLight(LightDef{Name: "Sun"})

	scene.Clear()

	assert.Empty(t, scene.Groups())
	assert.Zero(t, scene.ObjectCount())
	assert.Nil(t, scene.Camera)
	assert.Empty(t, scene.Lights)

	// The scene is reusable after clearing.
	scene.Group("G").Add(testObject("b", mat))
	assert.Equal(t, 1, scene.ObjectCount())
}

func TestTransform_Mat4(t *testing.T) {
	tr := IdentityTransform()
	assert.Equal(t, mgl32.Ident4(), tr.Mat4())

	tr.Position = mgl32.Vec3{1, 2, 3}
	tr.Scale = mgl32.Vec3{2, 2, 2}
	p := tr.Mat4().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 3, float64(p.X()), 1e-5)
	assert.InDelta(t, 2, float64(p.Y()), 1e-5)
	assert.InDelta(t, 3, float64(p.Z()), 1e-5)
}
