package qsat

import (
	"math/rand"
)

/*
Sampler draws measurement samples of the input register from a finished
simulation. The marginal distribution over the sampled qubits is computed
once from the state's amplitudes; each shot is then an independent draw
from that distribution.

A hardware execution would collapse the state per shot and re-prepare the
circuit. The simulator skips the re-run and samples the precomputed
distribution directly, which is an exact simplification for independent
shots. Sampling never mutates the state, so one final state can back any
number of samplers.
*/
type Sampler struct {
	dist   []float64
	qubits int
	rng    *rand.Rand
}

// NewSampler captures the marginal distribution over the given qubits,
// ordered so that qubits[0] renders as the leftmost bit-string character.
func NewSampler(state *QuantumState, qubits []int, seed int64) *Sampler {
	return &Sampler{
		dist:   state.Distribution(qubits),
		qubits: len(qubits),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Sample draws the given number of independent shots, returning one
// bit-string per shot.
func (s *Sampler) Sample(shots int) ([]string, error) {
	if shots <= 0 {
		return nil, ErrBadShotCount
	}
	out := make([]string, shots)
	for i := range out {
		out[i] = s.bitstring(s.draw())
	}
	return out, nil
}

// Frequencies draws shots and tallies them into a table keyed by
// bit-string. Every possible bit-string appears, zero counts included, so
// the table renders directly as a complete histogram. Counts always sum
// to exactly the shot count.
func (s *Sampler) Frequencies(shots int) (map[string]int, error) {
	if shots <= 0 {
		return nil, ErrBadShotCount
	}
	table := make(map[string]int, len(s.dist))
	for k := range s.dist {
		table[s.bitstring(k)] = 0
	}
	for i := 0; i < shots; i++ {
		table[s.bitstring(s.draw())]++
	}
	return table, nil
}

// draw walks the cumulative distribution against one uniform variate.
func (s *Sampler) draw() int {
	r := s.rng.Float64()
	cumulative := 0.0
	for k, p := range s.dist {
		cumulative += p
		if r <= cumulative {
			return k
		}
	}
	// Float rounding can leave the cumulative sum a hair under r.
	return len(s.dist) - 1
}

func (s *Sampler) bitstring(index int) string {
	b := make([]byte, s.qubits)
	for j := range b {
		if index&(1<<j) != 0 {
			b[j] = '1'
		} else {
			b[j] = '0'
		}
	}
	return string(b)
}
