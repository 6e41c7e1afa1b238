package generator

import (
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// Source is the randomness capability consumed by Sample.
// IntN must return a uniformly distributed integer in [0, n) for any n >= 1.
// *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a ChaCha8-backed source seeded from seed.
// Equal seeds produce equal draw sequences on every platform and Go release
// that ships the ChaCha8 generator. The returned source is not safe for
// concurrent use; give each goroutine its own or wrap it with NewLockedSource.
func NewSource(seed uint64) *rand.Rand {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return rand.New(rand.NewChaCha8(key))
}

// RandomSeed draws a seed from the runtime's global generator.
// Report it alongside generated data so the output can be reproduced.
func RandomSeed() uint64 {
	return rand.Uint64()
}

// LockedSource serializes access to a shared Source.
// Draws stay uniform but their order across goroutines is not deterministic.
type LockedSource struct {
	mu  sync.Mutex
	src Source
}

// NewLockedSource wraps src for concurrent use.
func NewLockedSource(src Source) *LockedSource {
	return &LockedSource{src: src}
}

// IntN implements Source.
func (s *LockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.IntN(n)
}
