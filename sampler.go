package cellforge

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Sampler is the shared random source for all generators. Every draw goes
// through one seeded stream so a fixed seed reproduces the whole model.
type Sampler struct {
	seed int64
	rng  *rand.Rand
}

func NewSampler(seed int64) *Sampler {
	return &Sampler{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (s *Sampler) Seed() int64 {
	return s.seed
}

func (s *Sampler) Float() float32 {
	return s.rng.Float32()
}

// Uniform returns a value in [min, max).
func (s *Sampler) Uniform(min, max float32) float32 {
	return min + (max-min)*s.rng.Float32()
}

// Sign returns -1 or +1 with equal probability.
func (s *Sampler) Sign() float32 {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// Int63 hands out derived seeds, e.g. for noise fields.
func (s *Sampler) Int63() int64 {
	return s.rng.Int63()
}

// PointInSphere returns a point uniformly distributed by volume inside a
// sphere of the given radius. Radius is taken from the inverse CDF
// (cube root of a uniform variate); direction is uniform on the unit sphere.
func (s *Sampler) PointInSphere(radius float32) mgl32.Vec3 {
	if radius <= 0 {
		panic(fmt.Sprintf("PointInSphere: radius must be positive, got %v", radius))
	}
	u := s.rng.Float32()
	v := s.rng.Float32()
	theta := 2 * math32.Pi * u
	phi := math32.Acos(2*v - 1)
	r := radius * math32.Cbrt(s.rng.Float32())

	return mgl32.Vec3{
		r * math32.Sin(phi) * math32.Cos(theta),
		r * math32.Sin(phi) * math32.Sin(theta),
		r * math32.Cos(phi),
	}
}

// PointOnSphere returns a point uniformly distributed on the surface of a
// sphere of the given radius.
func (s *Sampler) PointOnSphere(radius float32) mgl32.Vec3 {
	if radius <= 0 {
		panic(fmt.Sprintf("PointOnSphere: radius must be positive, got %v", radius))
	}
	u := s.rng.Float32()
	v := s.rng.Float32()
	theta := 2 * math32.Pi * u
	phi := math32.Acos(2*v - 1)

	return mgl32.Vec3{
		radius * math32.Sin(phi) * math32.Cos(theta),
		radius * math32.Sin(phi) * math32.Sin(theta),
		radius * math32.Cos(phi),
	}
}

// PointInCube returns a jitter vector with each coordinate uniform in
// [-halfExtent, halfExtent).
func (s *Sampler) PointInCube(halfExtent float32) mgl32.Vec3 {
	return mgl32.Vec3{
		s.Uniform(-halfExtent, halfExtent),
		s.Uniform(-halfExtent, halfExtent),
		s.Uniform(-halfExtent, halfExtent),
	}
}

// PushOut keeps organelle positions away from the nucleus region: points
// closer to the origin than threshold are moved out to minRadius along
// their own direction, points beyond threshold are returned unchanged.
func PushOut(p mgl32.Vec3, threshold, minRadius float32) mgl32.Vec3 {
	if p.Len() < threshold {
		return p.Normalize().Mul(minRadius)
	}
	return p
}

// SamplerModule installs the shared Sampler resource. A zero Seed draws one
// from the clock, matching unseeded one-off runs.
type SamplerModule struct {
	Seed int64
}

func (m SamplerModule) Install(app *App, cmd *Commands) {
	seed := m.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cmd.AddResources(NewSampler(seed))
}
