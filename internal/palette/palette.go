// Package palette generates random display colours.
package palette

import (
	"math/rand/v2"
	"strings"
	"sync"
)

const hexDigits = "0123456789ABCDEF"

// Generator produces "#RRGGBB" colours. The zero value is not usable; call New.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a generator seeded from the runtime's random source.
func New() *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded returns a deterministic generator.
func NewSeeded(seed1, seed2 uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// RandomColor returns six uniformly chosen uppercase hex digits prefixed by '#'.
func (g *Generator) RandomColor() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var b strings.Builder
	b.Grow(7)
	b.WriteByte('#')
	for i := 0; i < 6; i++ {
		b.WriteByte(hexDigits[g.rng.IntN(len(hexDigits))])
	}
	return b.String()
}
