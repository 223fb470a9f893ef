package cellforge

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampler_Determinism(t *testing.T) {
	a := NewSampler(42)
	b := NewSampler(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float(), b.Float())
	}

	assert.Equal(t, int64(42), a.Seed())
}

func TestSampler_Uniform(t *testing.T) {
	rng := NewSampler(7)
	for i := 0; i < 1000; i++ {
		v := rng.Uniform(-2, 3)
		if v < -2 || v >= 3 {
			t.Errorf("Expected value in [-2, 3), got %v", v)
		}
	}
}

func TestSampler_Sign(t *testing.T) {
	rng := NewSampler(7)
	var pos, neg int
	for i := 0; i < 1000; i++ {
		switch rng.Sign() {
		case 1:
			pos++
		case -1:
			neg++
		default:
			t.Fatalf("Sign must be -1 or +1")
		}
	}
	assert.Greater(t, pos, 400)
	assert.Greater(t, neg, 400)
}

func TestSampler_PointInSphere_WithinRadius(t *testing.T) {
	rng := NewSampler(1)
	const radius = 2.5
	for i := 0; i < 5000; i++ {
		p := rng.PointInSphere(radius)
		if p.Len() > radius+1e-4 {
			t.Fatalf("Expected point inside radius %v, got length %v", radius, p.Len())
		}
	}
}

func TestSampler_PointInSphere_VolumeUniform(t *testing.T) {
	rng := NewSampler(99)
	const radius float32 = 1
	const samples = 20000

	// For a volume-uniform distribution the mean distance from the center
	// is 3r/4, and the fraction inside r/2 is (1/2)^3 = 1/8.
	var sum float32
	inner := 0
	for i := 0; i < samples; i++ {
		l := rng.PointInSphere(radius).Len()
		sum += l
		if l < radius/2 {
			inner++
		}
	}

	assert.InDelta(t, 0.75, sum/samples, 0.01)
	assert.InDelta(t, 0.125, float64(inner)/samples, 0.01)
}

func TestSampler_PointInSphere_InvalidRadius(t *testing.T) {
	rng := NewSampler(1)
	require.Panics(t, func() { rng.PointInSphere(0) })
	require.Panics(t, func() { rng.PointInSphere(-1) })
}

func TestSampler_PointOnSphere(t *testing.T) {
	rng := NewSampler(3)
	const radius float32 = 1.7
	for i := 0; i < 1000; i++ {
		p := rng.PointOnSphere(radius)
		assert.InDelta(t, radius, p.Len(), 1e-3)
	}
}

func TestSampler_PointInCube(t *testing.T) {
	rng := NewSampler(5)
	for i := 0; i < 1000; i++ {
		p := rng.PointInCube(0.25)
		for axis := 0; axis < 3; axis++ {
			if math32.Abs(p[axis]) > 0.25 {
				t.Fatalf("Expected coordinate within 0.25, got %v", p[axis])
			}
		}
	}
}

func TestPushOut(t *testing.T) {
	// Inside the threshold: moved out to minRadius along its own direction.
	in := mgl32.Vec3{0.3, 0.4, 0}
	out := PushOut(in, 1.4, 1.7)
	assert.InDelta(t, 1.7, out.Len(), 1e-5)
	assert.InDelta(t, 0, out.Cross(in).Len(), 1e-5, "direction must be preserved")

	// Beyond the threshold: unchanged.
	far := mgl32.Vec3{2, 0, 0}
	assert.Equal(t, far, PushOut(far, 1.4, 1.7))
}
