package dispatch

import (
	"math/rand/v2"
	"sync"
)

// Picker chooses one sound among the non-empty slots of an entry
type Picker interface {
	// Pick returns an index in [0, n). n is always positive.
	Pick(n int) int
}

// RandomPicker picks uniformly. It is safe for concurrent use.
type RandomPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomPicker creates a picker; equal seeds give equal sequences
func NewRandomPicker(seed uint64) *RandomPicker {
	return &RandomPicker{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Pick implements Picker.Pick
func (p *RandomPicker) Pick(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.IntN(n)
}
