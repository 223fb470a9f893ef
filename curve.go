package cellforge

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// BezierSpline is a cubic bezier chain with automatic tangent handles:
// each handle points along the direction between the two neighboring
// control points, with length one third of the distance to its neighbor.
type BezierSpline struct {
	Points []mgl32.Vec3
}

func NewBezierSpline(points ...mgl32.Vec3) *BezierSpline {
	if len(points) < 2 {
		panic(fmt.Sprintf("NewBezierSpline: need at least 2 control points, got %d", len(points)))
	}
	return &BezierSpline{Points: points}
}

// handles returns the incoming and outgoing handle positions of control
// point i.
func (sp *BezierSpline) handles(i int) (left, right mgl32.Vec3) {
	p := sp.Points[i]

	var prev, next mgl32.Vec3
	hasPrev := i > 0
	hasNext := i < len(sp.Points)-1
	if hasPrev {
		prev = sp.Points[i-1]
	}
	if hasNext {
		next = sp.Points[i+1]
	}

	var dir mgl32.Vec3
	switch {
	case hasPrev && hasNext:
		dir = next.Sub(prev)
	case hasNext:
		dir = next.Sub(p)
	default:
		dir = p.Sub(prev)
	}
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}

	if hasPrev {
		left = p.Sub(dir.Mul(prev.Sub(p).Len() / 3))
	} else {
		left = p
	}
	if hasNext {
		right = p.Add(dir.Mul(next.Sub(p).Len() / 3))
	} else {
		right = p
	}
	return left, right
}

// Sample evaluates the spline into a polyline with perSpan segments per
// control-point span. The result passes through every control point.
func (sp *BezierSpline) Sample(perSpan int) []mgl32.Vec3 {
	if perSpan < 1 {
		panic(fmt.Sprintf("BezierSpline.Sample: perSpan must be >= 1, got %d", perSpan))
	}

	var out []mgl32.Vec3
	for span := 0; span < len(sp.Points)-1; span++ {
		p0 := sp.Points[span]
		_, h0 := sp.handles(span)
		h1, _ := sp.handles(span + 1)
		p1 := sp.Points[span+1]

		start := 0
		if span > 0 {
			start = 1 // span boundary already emitted
		}
		for i := start; i <= perSpan; i++ {
			t := float32(i) / float32(perSpan)
			out = append(out, bezierPoint(p0, h0, h1, p1, t))
		}
	}
	return out
}

func bezierPoint(p0, h0, h1, p1 mgl32.Vec3, t float32) mgl32.Vec3 {
	u := 1 - t
	a := p0.Mul(u * u * u)
	b := h0.Mul(3 * u * u * t)
	c := h1.Mul(3 * u * t * t)
	d := p1.Mul(t * t * t)
	return a.Add(b).Add(c).Add(d)
}

// NewTube sweeps a circular cross-section of the given bevel radius along
// the spline, using parallel-transport frames to avoid twisting, and caps
// both ends.
func NewTube(spline *BezierSpline, bevel float32, radialSegments, perSpan int) *Mesh {
	checkPositive("NewTube", bevel)
	if radialSegments < 3 {
		panic(fmt.Sprintf("NewTube: need radialSegments >= 3, got %d", radialSegments))
	}

	path := spline.Sample(perSpan)
	mesh := &Mesh{}

	// Initial frame.
	tangent := path[1].Sub(path[0])
	if tangent.Len() == 0 {
		tangent = mgl32.Vec3{0, 0, 1}
	}
	tangent = tangent.Normalize()
	ref := mgl32.Vec3{0, 0, 1}
	if math32.Abs(tangent.Dot(ref)) > 0.95 {
		ref = mgl32.Vec3{1, 0, 0}
	}
	side := tangent.Cross(ref).Normalize()
	up := side.Cross(tangent)

	stride := uint32(radialSegments + 1)
	for i, p := range path {
		if i > 0 {
			// Transport the frame onto the new tangent.
			next := tangent
			if i < len(path)-1 {
				next = path[i+1].Sub(path[i-1])
			} else {
				next = path[i].Sub(path[i-1])
			}
			if next.Len() > 0 {
				next = next.Normalize()
				axis := tangent.Cross(next)
				if axis.Len() > 1e-6 {
					angle := math32.Acos(mgl32.Clamp(tangent.Dot(next), -1, 1))
					rot := mgl32.QuatRotate(angle, axis.Normalize())
					side = rot.Rotate(side)
					up = rot.Rotate(up)
				}
				tangent = next
			}
		}

		for seg := 0; seg <= radialSegments; seg++ {
			theta := 2 * math32.Pi * float32(seg) / float32(radialSegments)
			n := side.Mul(math32.Cos(theta)).Add(up.Mul(math32.Sin(theta)))
			mesh.Positions = append(mesh.Positions, p.Add(n.Mul(bevel)))
			mesh.Normals = append(mesh.Normals, n)
		}
	}

	for i := 0; i < len(path)-1; i++ {
		for seg := 0; seg < radialSegments; seg++ {
			a := uint32(i)*stride + uint32(seg)
			b := a + stride
			mesh.AddTriangle(a, a+1, b)
			mesh.AddTriangle(a+1, b+1, b)
		}
	}

	// End caps.
	for _, end := range []struct {
		row    int
		center mgl32.Vec3
		flip   bool
	}{
		{0, path[0], true},
		{len(path) - 1, path[len(path)-1], false},
	} {
		center := uint32(len(mesh.Positions))
		mesh.Positions = append(mesh.Positions, end.center)
		n := mgl32.Vec3{0, 0, 1}
		mesh.Normals = append(mesh.Normals, n)
		base := uint32(end.row) * stride
		for seg := 0; seg < radialSegments; seg++ {
			a := base + uint32(seg)
			if end.flip {
				mesh.AddTriangle(center, a+1, a)
			} else {
				mesh.AddTriangle(center, a, a+1)
			}
		}
	}

	return mesh
}
