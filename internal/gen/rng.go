package gen

import (
	"math/rand/v2"
	"time"
)

// Rand is the seeded random source shared by the generation stages. A "god"
// generator hands out map seeds; the map generator is reseeded from each one
// so a map seed alone reproduces a terrain.
type Rand struct {
	god     *rand.Rand
	mapRand *rand.Rand
	mapSeed uint64
}

// NewRand creates a Rand whose god generator is seeded from the wall clock,
// then draws a first map seed.
func NewRand() *Rand {
	now := uint64(time.Now().UnixNano())
	r := &Rand{god: rand.New(rand.NewPCG(now, now>>32))}
	r.Randomize()
	return r
}

// NewSeeded creates a Rand that starts on the given map seed.
func NewSeeded(seed uint64) *Rand {
	r := &Rand{god: rand.New(rand.NewPCG(seed, ^seed))}
	r.Reseed(seed)
	return r
}

// FromSeed is NewSeeded for a configured seed, where 0 asks for a random one.
func FromSeed(seed uint64) *Rand {
	if seed == 0 {
		return NewRand()
	}
	return NewSeeded(seed)
}

// Randomize draws a fresh map seed from the god generator.
func (r *Rand) Randomize() {
	r.Reseed(uint64(r.god.Uint32()) + uint64(r.god.Uint32()))
}

// Reseed restarts the map generator on seed.
func (r *Rand) Reseed(seed uint64) {
	r.mapSeed = seed
	r.mapRand = rand.New(rand.NewPCG(seed, 0))
}

// MapSeed returns the current map seed.
func (r *Rand) MapSeed() uint64 { return r.mapSeed }

// Float32 returns a map value in [0, 1).
func (r *Rand) Float32() float32 { return r.mapRand.Float32() }

// IntN returns a map value in [0, n). It returns 0 when n <= 0.
func (r *Rand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.mapRand.IntN(n)
}
