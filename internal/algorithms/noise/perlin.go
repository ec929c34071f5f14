package noise

import (
	"math"

	prng "mad-maze/pkg/core"
)

// Field is Ken Perlin's improved gradient noise with a permutation shuffled
// from a deterministic source.
type Field struct {
	perm [512]int
}

// NewField builds a field whose permutation is drawn from rng.
func NewField(rng *prng.Random) *Field {
	f := &Field{}
	p := make([]int, 256)
	for i := range p {
		p[i] = i
	}
	rng.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })
	for i := 0; i < 512; i++ {
		f.perm[i] = p[i&255]
	}
	return f
}

func fade(t float64) float64 { return t * t * t * (t*(t*6-15) + 10) }

func lerp(t, a, b float64) float64 { return a + t*(b-a) }

func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := y
	if h < 8 {
		u = x
	}
	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// Noise samples the field at (x, y, z). Values lie roughly in [-1, 1] and are
// exactly 0 on integer lattice points.
func (f *Field) Noise(x, y, z float64) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)
	X, Y, Z := int(fx)&255, int(fy)&255, int(fz)&255
	x, y, z = x-fx, y-fy, z-fz
	u, v, w := fade(x), fade(y), fade(z)

	p := &f.perm
	a := p[X] + Y
	aa := p[a] + Z
	ab := p[a+1] + Z
	b := p[X+1] + Y
	ba := p[b] + Z
	bb := p[b+1] + Z

	return lerp(w,
		lerp(v,
			lerp(u, grad(p[aa], x, y, z), grad(p[ba], x-1, y, z)),
			lerp(u, grad(p[ab], x, y-1, z), grad(p[bb], x-1, y-1, z))),
		lerp(v,
			lerp(u, grad(p[aa+1], x, y, z-1), grad(p[ba+1], x-1, y, z-1)),
			lerp(u, grad(p[ab+1], x, y-1, z-1), grad(p[bb+1], x-1, y-1, z-1))))
}

// Quantize rounds n to the nearest multiple of t, halves rounding up. A zero
// step leaves n unchanged.
func Quantize(n, t float64) float64 {
	if t == 0 {
		return n
	}
	return math.Floor(n/t+0.5) * t
}

// warpStrength scales how far DomainWarp displaces a coordinate.
const warpStrength = 4

// DomainWarp displaces (x, y) by two decorrelated samples of the field.
func (f *Field) DomainWarp(x, y, z float64) (float64, float64) {
	qx := f.Noise(x, y, z)
	qy := f.Noise(x+5.2, y+1.3, z)
	return x + warpStrength*qx, y + warpStrength*qy
}

// multiScaleOctaves is the number of frequency doublings MultiScale sums.
const multiScaleOctaves = 3

// MultiScale sums octaves of increasing frequency and decreasing amplitude.
func (f *Field) MultiScale(x, y, z float64) float64 {
	sum := 0.0
	freq, amp := 1.0, 1.0
	for o := 0; o < multiScaleOctaves; o++ {
		sum += f.Noise(x*freq, y*freq, z) * amp
		freq *= 2
		amp /= 2
	}
	return sum
}

// Dynamic samples the field with time folded into the third axis.
func (f *Field) Dynamic(x, y, z, t float64) float64 {
	return f.Noise(x, y, z+t)
}
