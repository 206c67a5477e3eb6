package gacha

import (
	"math/rand/v2"
	"sync"
)

type RandomSource interface {
	Float64() float64 // [0, 1)
}

type globalRNG struct{}

func (globalRNG) Float64() float64 { return rand.Float64() }

// DefaultRNG is safe for concurrent use.
func DefaultRNG() RandomSource { return globalRNG{} }

// Replicable RNG for tests and simulations.
type seededRNG struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}
