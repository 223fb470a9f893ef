package cellforge

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBezierSpline_SamplePassesThroughControlPoints(t *testing.T) {
	p0 := mgl32.Vec3{0, 0, 0}
	p1 := mgl32.Vec3{1, 2, 0}
	p2 := mgl32.Vec3{3, 1, -1}
	sp := NewBezierSpline(p0, p1, p2)

	const perSpan = 4
	path := sp.Sample(perSpan)

	// Two spans share the middle sample.
	require.Len(t, path, 2*perSpan+1)
	assert.InDelta(t, 0, path[0].Sub(p0).Len(), 1e-5)
	assert.InDelta(t, 0, path[perSpan].Sub(p1).Len(), 1e-5)
	assert.InDelta(t, 0, path[2*perSpan].Sub(p2).Len(), 1e-5)
}

func TestBezierSpline_StraightSegment(t *testing.T) {
	// Two collinear control points sample onto the connecting line.
	sp := NewBezierSpline(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 0, 0})
	for _, p := range sp.Sample(8) {
		assert.InDelta(t, 0, float64(p.Y()), 1e-5)
		assert.InDelta(t, 0, float64(p.Z()), 1e-5)
		assert.GreaterOrEqual(t, p.X(), float32(-1e-5))
		assert.LessOrEqual(t, p.X(), float32(2+1e-5))
	}
}

func TestBezierSpline_Invalid(t *testing.T) {
	require.Panics(t, func() { NewBezierSpline(mgl32.Vec3{0, 0, 0}) })

	sp := NewBezierSpline(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0})
	require.Panics(t, func() { sp.Sample(0) })
}

func TestNewTube(t *testing.T) {
	sp := NewBezierSpline(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 2})
	const bevel float32 = 0.1
	m := NewTube(sp, bevel, 8, 8)

	assertValidIndices(t, m)
	assert.Positive(t, m.TriangleCount())

	// A straight Z tube keeps every ring vertex at the bevel radius.
	for i, p := range m.Positions {
		if i >= len(m.Positions)-2 {
			continue // cap centers
		}
		assert.InDelta(t, bevel, mgl32.Vec2{p.X(), p.Y()}.Len(), 1e-4)
	}

	require.Panics(t, func() { NewTube(sp, 0, 8, 8) })
	require.Panics(t, func() { NewTube(sp, 0.1, 2, 8) })
}
