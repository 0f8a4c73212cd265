package mask

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// BitSource yields independent uniform random bits, one per call.
type BitSource interface {
	Bool() bool
}

// PCG is a BitSource backed by a PCG generator. The same seed always
// produces the same bit sequence.
type PCG struct {
	rng *rand.Rand
}

// NewPCG returns a reproducible BitSource for seed.
func NewPCG(seed uint64) *PCG {
	return &PCG{rng: rand.New(rand.NewPCG(seed, seed^0xdeadbeef))}
}

// NewRandom returns a PCG seeded from the operating system's entropy source.
func NewRandom() *PCG {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return &PCG{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	}
	return NewPCG(binary.LittleEndian.Uint64(buf[:]))
}

// Bool implements BitSource.
func (p *PCG) Bool() bool {
	return p.rng.Uint64()&1 == 1
}

// Sequence replays a fixed list of bits, wrapping around when exhausted.
// An empty Sequence always yields false.
type Sequence struct {
	bits []bool
	next int
}

// NewSequence returns a BitSource replaying bits in order.
func NewSequence(bits ...bool) *Sequence {
	return &Sequence{bits: bits}
}

// Bool implements BitSource.
func (s *Sequence) Bool() bool {
	if len(s.bits) == 0 {
		return false
	}
	b := s.bits[s.next%len(s.bits)]
	s.next++
	return b
}
