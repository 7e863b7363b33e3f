package gen

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/chewxy/math32"
	"github.com/ojrac/opensimplex-go"

	"github.com/Faultbox/terragen/internal/heightmap"
)

// Noise backends.
const (
	BackendPerlin  = "perlin"
	BackendSimplex = "simplex"
)

// Octave amplitudes, lowest frequency first. Octave i samples at 2^i times
// the base frequency.
var octaveAmplitudes = [...]float64{1, 0.53, 0.20, 0.12, 0.05}

const (
	islandLift  = 0.9
	islandPower = 4.5
)

// go-perlin parameters. Noise2D sums perlinOctaves octaves internally;
// Elevation does the layering, so each sample is a single octave.
const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 1
)

// Source2D samples coherent noise in [0, 1].
type Source2D interface {
	Sample(x, y float64) float64
}

type perlinSource struct {
	p *perlin.Perlin
}

func (s perlinSource) Sample(x, y float64) float64 {
	v := (s.p.Noise2D(x, y) + 1) * 0.5
	return min(max(v, 0), 1)
}

type simplexSource struct {
	n opensimplex.Noise
}

func (s simplexSource) Sample(x, y float64) float64 {
	return s.n.Eval2(x, y)
}

// NewSource creates the named noise backend seeded with seed.
func NewSource(backend string, seed int64) (Source2D, error) {
	switch backend {
	case BackendPerlin:
		return perlinSource{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}, nil
	case BackendSimplex:
		return simplexSource{n: opensimplex.NewNormalized(seed)}, nil
	default:
		return nil, fmt.Errorf("unknown noise backend %q", backend)
	}
}

// Noise layers octaves of a Source2D into island-shaped elevation.
type Noise struct {
	src  Source2D
	freq float64
}

// NewNoise creates a synthesizer sampling src at base frequency freq.
func NewNoise(src Source2D, freq float64) *Noise {
	return &Noise{src: src, freq: freq}
}

// Elevation returns the amplitude-weighted octave sum at (nx, ny), normalized
// back into [0, 1].
func (n *Noise) Elevation(nx, ny float64) float64 {
	var sum, total float64
	f := n.freq
	for _, amp := range octaveAmplitudes {
		sum += amp * n.src.Sample(f*nx, f*ny)
		total += amp
		f *= 2
	}
	return sum / total
}

// Height shapes elevation at (nx, ny), both in [-0.5, 0.5] relative to the
// region centre. A square falloff pulls the borders under water and the
// power curve sharpens peaks and flattens lowlands.
func (n *Noise) Height(nx, ny float64) float32 {
	e := float32(n.Elevation(nx, ny))
	m := 2 * math32.Max(math32.Abs(float32(nx)), math32.Abs(float32(ny)))
	d := m * m
	h := (islandLift + e - d) / 2
	if h <= 0 {
		return 0
	}
	return math32.Pow(h, islandPower)
}

// Apply overwrites every sample in region with Height.
func (n *Noise) Apply(hf *heightmap.HeightField, region Rect) error {
	if err := region.check(hf); err != nil {
		return err
	}
	w, h := float64(region.Width()), float64(region.Height())
	for y := region.Top; y <= region.Bottom; y++ {
		ny := relative(y-region.Top, h)
		for x := region.Left; x <= region.Right; x++ {
			nx := relative(x-region.Left, w)
			if err := hf.PointSet(x, y, n.Height(nx, ny)); err != nil {
				return err
			}
		}
	}
	return nil
}

func relative(offset int, span float64) float64 {
	if span == 0 {
		return 0
	}
	return float64(offset)/span - 0.5
}
