package cellforge

import (
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// NoiseParams holds configurable parameters for fractal noise generation.
type NoiseParams struct {
	Octaves     int
	Frequency   float32
	Amplitude   float32
	Persistence float32
	Lacunarity  float32
}

func DefaultNoiseParams() NoiseParams {
	return NoiseParams{
		Octaves:     4,
		Frequency:   1,
		Amplitude:   1,
		Persistence: 0.5,
		Lacunarity:  2,
	}
}

// Noise is a seeded 3D fractal value-noise field. Output is in [-1, 1].
type Noise struct {
	params NoiseParams
	perm   [512]uint8
}

func NewNoise(seed int64, params NoiseParams) *Noise {
	n := &Noise{params: params}
	rng := rand.New(rand.NewSource(seed))

	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	rng.Shuffle(len(p), func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
	copy(n.perm[:256], p[:])
	copy(n.perm[256:], p[:])
	return n
}

func (n *Noise) hash(x, y, z int) float32 {
	h := n.perm[n.perm[n.perm[x&255]+uint8(y&255)]+uint8(z&255)]
	return float32(h)/127.5 - 1
}

func fade(t float32) float32 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func (n *Noise) at(p mgl32.Vec3) float32 {
	x0 := int(math32.Floor(p.X()))
	y0 := int(math32.Floor(p.Y()))
	z0 := int(math32.Floor(p.Z()))

	tx := fade(p.X() - math32.Floor(p.X()))
	ty := fade(p.Y() - math32.Floor(p.Y()))
	tz := fade(p.Z() - math32.Floor(p.Z()))

	c000 := n.hash(x0, y0, z0)
	c100 := n.hash(x0+1, y0, z0)
	c010 := n.hash(x0, y0+1, z0)
	c110 := n.hash(x0+1, y0+1, z0)
	c001 := n.hash(x0, y0, z0+1)
	c101 := n.hash(x0+1, y0, z0+1)
	c011 := n.hash(x0, y0+1, z0+1)
	c111 := n.hash(x0+1, y0+1, z0+1)

	return lerp(
		lerp(lerp(c000, c100, tx), lerp(c010, c110, tx), ty),
		lerp(lerp(c001, c101, tx), lerp(c011, c111, tx), ty),
		tz,
	)
}

// At evaluates the fractal sum at p.
func (n *Noise) At(p mgl32.Vec3) float32 {
	freq := n.params.Frequency
	amp := n.params.Amplitude
	var sum, norm float32
	for o := 0; o < n.params.Octaves; o++ {
		sum += amp * n.at(p.Mul(freq))
		norm += amp
		freq *= n.params.Lacunarity
		amp *= n.params.Persistence
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
