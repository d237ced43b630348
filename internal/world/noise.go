package world

import (
	"math"
)

// NoiseSource is a deterministic 2D noise function with output in [-1, 1].
type NoiseSource interface {
	Sample2D(u, v float64) float64
}

// NoiseFunc adapts a plain function to NoiseSource.
type NoiseFunc func(u, v float64) float64

func (f NoiseFunc) Sample2D(u, v float64) float64 { return f(u, v) }

// ConstantNoise returns the same value everywhere (flat worlds, tests).
type ConstantNoise float64

func (c ConstantNoise) Sample2D(_, _ float64) float64 { return float64(c) }

// ---------------------------------------------------------------------------
// Value noise

// ValueNoise is hashed lattice value noise, smoothed with a quintic fade.
type ValueNoise struct {
	seed int64
}

// NewValueNoise creates a value noise source.
func NewValueNoise(seed int64) *ValueNoise {
	return &ValueNoise{seed: seed}
}

// Sample2D returns value noise remapped from [0,1] to [-1,1].
func (n *ValueNoise) Sample2D(u, v float64) float64 {
	return valueNoise2D(u, v, n.seed)*2 - 1
}

// fade function is used for smoothing (6t^5 - 15t^4 + 10t^3)
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func hash2(x int64, z int64, seed int64) uint64 {
	// SplitMix64 style integer hash, stable across runs for same inputs
	v := uint64(x) + (uint64(z) << 1) + uint64(seed)*0x9E3779B97F4A7C15
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	v = v ^ (v >> 31)
	return v
}

func latticeValue(x int64, z int64, seed int64) float64 {
	h := hash2(x, z, seed)
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

func valueNoise2D(x float64, z float64, seed int64) float64 {
	x0 := math.Floor(x)
	z0 := math.Floor(z)

	fx := fade(x - x0)
	fz := fade(z - z0)

	v00 := latticeValue(int64(x0), int64(z0), seed)
	v10 := latticeValue(int64(x0)+1, int64(z0), seed)
	v01 := latticeValue(int64(x0), int64(z0)+1, seed)
	v11 := latticeValue(int64(x0)+1, int64(z0)+1, seed)

	i0 := lerp(v00, v10, fx)
	i1 := lerp(v01, v11, fx)
	return lerp(i0, i1, fz) // [0,1]
}

// ---------------------------------------------------------------------------
// Simplex noise

// grad2 are the gradient directions used by 2D simplex noise.
var grad2 = [12][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {1, 0}, {-1, 0},
	{0, 1}, {0, -1}, {0, 1}, {0, -1},
}

// Simplex produces seeded 2D simplex noise.
type Simplex struct {
	perm [512]int
}

// NewSimplex creates a simplex source with a permutation table shuffled from seed.
func NewSimplex(seed int64) *Simplex {
	s := &Simplex{}

	var p [256]int
	for i := range p {
		p[i] = i
	}

	// Fisher-Yates shuffle driven by an LCG.
	r := uint64(seed)
	for i := 255; i > 0; i-- {
		r = r*6364136223846793005 + 1442695040888963407
		j := int((r >> 33) % uint64(i+1))
		p[i], p[j] = p[j], p[i]
	}

	for i := range s.perm {
		s.perm[i] = p[i&255]
	}
	return s
}

// Sample2D returns simplex noise in [-1, 1].
func (s *Simplex) Sample2D(x, y float64) float64 {
	const (
		f2 = 0.36602540378443864676 // (sqrt(3) - 1) / 2
		g2 = 0.21132486540518711775 // (3 - sqrt(3)) / 6
	)

	sk := (x + y) * f2
	i := int(math.Floor(x + sk))
	j := int(math.Floor(y + sk))

	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	var i1, j1 int
	if x0 > y0 {
		i1 = 1
	} else {
		j1 = 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1.0 + 2.0*g2
	y2 := y0 - 1.0 + 2.0*g2

	ii := i & 255
	jj := j & 255
	gi0 := s.perm[ii+s.perm[jj]] % 12
	gi1 := s.perm[ii+i1+s.perm[jj+j1]] % 12
	gi2 := s.perm[ii+1+s.perm[jj+1]] % 12

	n := corner(grad2[gi0], x0, y0) + corner(grad2[gi1], x1, y1) + corner(grad2[gi2], x2, y2)
	return clampUnit(70.0 * n)
}

func corner(g [2]float64, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	t *= t
	return t * t * (g[0]*x + g[1]*y)
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
