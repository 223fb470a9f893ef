package cellforge

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Primitive mesh builders. All of them return unit-transform meshes
// centered on the local origin; placement happens on the owning Object.
// Dimensions must be positive: violations are programming errors and panic.

func checkPositive(what string, vals ...float32) {
	for _, v := range vals {
		if v <= 0 {
			panic(fmt.Sprintf("%s: dimension must be positive, got %v", what, v))
		}
	}
}

// NewUVSphere builds a latitude/longitude sphere with the given number of
// segments (longitude) and rings (latitude).
func NewUVSphere(radius float32, segments, rings int) *Mesh {
	checkPositive("NewUVSphere", radius)
	if segments < 3 || rings < 2 {
		panic(fmt.Sprintf("NewUVSphere: need segments >= 3 and rings >= 2, got %d/%d", segments, rings))
	}

	mesh := &Mesh{}
	for ring := 0; ring <= rings; ring++ {
		phi := math32.Pi * float32(ring) / float32(rings)
		for seg := 0; seg <= segments; seg++ {
			theta := 2 * math32.Pi * float32(seg) / float32(segments)
			n := mgl32.Vec3{
				math32.Sin(phi) * math32.Cos(theta),
				math32.Sin(phi) * math32.Sin(theta),
				math32.Cos(phi),
			}
			mesh.Positions = append(mesh.Positions, n.Mul(radius))
			mesh.Normals = append(mesh.Normals, n)
		}
	}

	stride := uint32(segments + 1)
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			a := uint32(ring)*stride + uint32(seg)
			b := a + stride
			if ring > 0 {
				mesh.AddTriangle(a, b, a+1)
			}
			if ring < rings-1 {
				mesh.AddTriangle(a+1, b, b+1)
			}
		}
	}
	return mesh
}

// NewCylinder builds a capped cylinder along the local Z axis, centered on
// the origin, spanning z in [-depth/2, depth/2].
func NewCylinder(radius, depth float32, segments int) *Mesh {
	checkPositive("NewCylinder", radius, depth)
	if segments < 3 {
		panic(fmt.Sprintf("NewCylinder: need segments >= 3, got %d", segments))
	}

	mesh := &Mesh{}
	half := depth / 2

	// Side wall, radial normals.
	for seg := 0; seg <= segments; seg++ {
		theta := 2 * math32.Pi * float32(seg) / float32(segments)
		n := mgl32.Vec3{math32.Cos(theta), math32.Sin(theta), 0}
		mesh.Positions = append(mesh.Positions,
			mgl32.Vec3{n.X() * radius, n.Y() * radius, -half},
			mgl32.Vec3{n.X() * radius, n.Y() * radius, half},
		)
		mesh.Normals = append(mesh.Normals, n, n)
	}
	for seg := 0; seg < segments; seg++ {
		a := uint32(seg * 2)
		mesh.AddTriangle(a, a+2, a+1)
		mesh.AddTriangle(a+1, a+2, a+3)
	}

	// Caps with their own vertices for hard edges.
	for _, lid := range []struct {
		z float32
		n mgl32.Vec3
	}{
		{-half, mgl32.Vec3{0, 0, -1}},
		{half, mgl32.Vec3{0, 0, 1}},
	} {
		center := uint32(len(mesh.Positions))
		mesh.Positions = append(mesh.Positions, mgl32.Vec3{0, 0, lid.z})
		mesh.Normals = append(mesh.Normals, lid.n)
		for seg := 0; seg <= segments; seg++ {
			theta := 2 * math32.Pi * float32(seg) / float32(segments)
			mesh.Positions = append(mesh.Positions, mgl32.Vec3{
				radius * math32.Cos(theta),
				radius * math32.Sin(theta),
				lid.z,
			})
			mesh.Normals = append(mesh.Normals, lid.n)
		}
		for seg := 0; seg < segments; seg++ {
			a := center + 1 + uint32(seg)
			if lid.n.Z() > 0 {
				mesh.AddTriangle(center, a, a+1)
			} else {
				mesh.AddTriangle(center, a+1, a)
			}
		}
	}
	return mesh
}

// NewTorus builds a torus around the local Z axis.
func NewTorus(majorRadius, minorRadius float32, majorSegments, minorSegments int) *Mesh {
	checkPositive("NewTorus", majorRadius, minorRadius)
	if majorSegments < 3 || minorSegments < 3 {
		panic(fmt.Sprintf("NewTorus: need segments >= 3, got %d/%d", majorSegments, minorSegments))
	}

	mesh := &Mesh{}
	for i := 0; i <= majorSegments; i++ {
		u := 2 * math32.Pi * float32(i) / float32(majorSegments)
		ringCenter := mgl32.Vec3{majorRadius * math32.Cos(u), majorRadius * math32.Sin(u), 0}
		for j := 0; j <= minorSegments; j++ {
			v := 2 * math32.Pi * float32(j) / float32(minorSegments)
			n := mgl32.Vec3{
				math32.Cos(v) * math32.Cos(u),
				math32.Cos(v) * math32.Sin(u),
				math32.Sin(v),
			}
			mesh.Positions = append(mesh.Positions, ringCenter.Add(n.Mul(minorRadius)))
			mesh.Normals = append(mesh.Normals, n)
		}
	}

	stride := uint32(minorSegments + 1)
	for i := 0; i < majorSegments; i++ {
		for j := 0; j < minorSegments; j++ {
			a := uint32(i)*stride + uint32(j)
			b := a + stride
			mesh.AddTriangle(a, b, a+1)
			mesh.AddTriangle(a+1, b, b+1)
		}
	}
	return mesh
}

// NewPlane builds a subdivided square in the local XY plane, side length
// size, with cuts interior subdivisions per axis (cuts+1 quads per side).
func NewPlane(size float32, cuts int) *Mesh {
	checkPositive("NewPlane", size)
	if cuts < 0 {
		panic(fmt.Sprintf("NewPlane: cuts must be >= 0, got %d", cuts))
	}

	mesh := &Mesh{}
	n := cuts + 2 // vertices per side
	for yi := 0; yi < n; yi++ {
		for xi := 0; xi < n; xi++ {
			x := size * (float32(xi)/float32(n-1) - 0.5)
			y := size * (float32(yi)/float32(n-1) - 0.5)
			mesh.Positions = append(mesh.Positions, mgl32.Vec3{x, y, 0})
			mesh.Normals = append(mesh.Normals, mgl32.Vec3{0, 0, 1})
		}
	}
	for yi := 0; yi < n-1; yi++ {
		for xi := 0; xi < n-1; xi++ {
			a := uint32(yi*n + xi)
			b := a + uint32(n)
			mesh.AddTriangle(a, a+1, b)
			mesh.AddTriangle(a+1, b+1, b)
		}
	}
	return mesh
}

// NewCapsule builds a cylinder of the given depth with hemispherical end
// caps, along the local Z axis. Total height is depth + 2*radius.
func NewCapsule(radius, depth float32, segments, capRings int) *Mesh {
	checkPositive("NewCapsule", radius, depth)
	if segments < 3 || capRings < 1 {
		panic(fmt.Sprintf("NewCapsule: need segments >= 3 and capRings >= 1, got %d/%d", segments, capRings))
	}

	mesh := &Mesh{}
	half := depth / 2

	// Profile from south pole over the lower cap, up the side wall and over
	// the upper cap to the north pole; lathed around Z.
	type profilePoint struct {
		r, z   float32
		nr, nz float32
	}
	var profile []profilePoint

	for i := 0; i <= capRings; i++ {
		// phi from -pi/2 (pole) to 0 (equator)
		phi := -math32.Pi/2 + math32.Pi/2*float32(i)/float32(capRings)
		profile = append(profile, profilePoint{
			r:  radius * math32.Cos(phi),
			z:  -half + radius*math32.Sin(phi),
			nr: math32.Cos(phi),
			nz: math32.Sin(phi),
		})
	}
	profile = append(profile, profilePoint{r: radius, z: half, nr: 1, nz: 0})
	for i := 1; i <= capRings; i++ {
		phi := math32.Pi / 2 * float32(i) / float32(capRings)
		profile = append(profile, profilePoint{
			r:  radius * math32.Cos(phi),
			z:  half + radius*math32.Sin(phi),
			nr: math32.Cos(phi),
			nz: math32.Sin(phi),
		})
	}

	for _, p := range profile {
		for seg := 0; seg <= segments; seg++ {
			theta := 2 * math32.Pi * float32(seg) / float32(segments)
			c, s := math32.Cos(theta), math32.Sin(theta)
			mesh.Positions = append(mesh.Positions, mgl32.Vec3{p.r * c, p.r * s, p.z})
			n := mgl32.Vec3{p.nr * c, p.nr * s, p.nz}
			if n.Len() > 0 {
				n = n.Normalize()
			}
			mesh.Normals = append(mesh.Normals, n)
		}
	}

	stride := uint32(segments + 1)
	rows := len(profile)
	for row := 0; row < rows-1; row++ {
		for seg := 0; seg < segments; seg++ {
			a := uint32(row)*stride + uint32(seg)
			b := a + stride
			mesh.AddTriangle(a, a+1, b)
			mesh.AddTriangle(a+1, b+1, b)
		}
	}
	return mesh
}
