package qsat

import (
	"fmt"
	"math"
	"math/cmplx"
)

// maxQubits caps register size; 2^30 complex128 amplitudes is already 16 GiB.
const maxQubits = 30

/*
QuantumState owns the amplitude vector of an n-qubit register. The vector
holds 2^n complex amplitudes indexed so that bit i of a basis index is the
value of qubit i. It starts in the all-zero basis state and is mutated only
through unitary gate application.

The squared magnitudes always sum to 1. The invariant is rechecked after
every gate; drift beyond the configured tolerance surfaces as
ErrInvariantViolation and is never silently renormalized.

A QuantumState is owned by a single simulation session. Concurrent runs
must each allocate their own instance.
*/
type QuantumState struct {
	amps      []complex128
	numQubits int
	tolerance float64
	maxDrift  float64
}

// NewQuantumState creates an n-qubit register in |0...0⟩ with the default
// norm tolerance.
func NewQuantumState(numQubits int) (*QuantumState, error) {
	return NewQuantumStateWithTolerance(numQubits, NewConfig().Tolerance)
}

// NewQuantumStateWithTolerance creates an n-qubit register in |0...0⟩.
func NewQuantumStateWithTolerance(numQubits int, tolerance float64) (*QuantumState, error) {
	if numQubits < 1 || numQubits > maxQubits {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQubitCount, numQubits)
	}
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1
	return &QuantumState{
		amps:      amps,
		numQubits: numQubits,
		tolerance: tolerance,
	}, nil
}

// NumQubits returns the register size.
func (s *QuantumState) NumQubits() int {
	return s.numQubits
}

// Amplitude returns the amplitude of a single basis state.
func (s *QuantumState) Amplitude(index int) complex128 {
	return s.amps[index]
}

// Snapshot copies the amplitude vector, for diagnostics and tests.
func (s *QuantumState) Snapshot() []complex128 {
	out := make([]complex128, len(s.amps))
	copy(out, s.amps)
	return out
}

// NormDrift reports the largest |Σ|amp|² − 1| observed after any gate.
func (s *QuantumState) NormDrift() float64 {
	return s.maxDrift
}

/*
Apply multiplies the state vector by the gate's unitary, extended by
identity on untouched qubits. The tensor product is realized as index
arithmetic: basis indices are partitioned by the target bit, and pairs
differing only in that bit are combined wherever all control bits are set.
*/
func (s *QuantumState) Apply(g Gate) error {
	if err := g.Validate(s.numQubits); err != nil {
		return err
	}

	tbit := 1 << g.Target
	cmask := g.controlMask()
	n := len(s.amps)

	switch g.Kind {
	case KindH:
		if len(g.Controls) > 0 {
			return fmt.Errorf("hadamard takes no controls, got %d", len(g.Controls))
		}
		f := complex(1/math.Sqrt2, 0)
		for i := 0; i < n; i++ {
			if i&tbit == 0 {
				j := i | tbit
				a, b := s.amps[i], s.amps[j]
				s.amps[i] = f * (a + b)
				s.amps[j] = f * (a - b)
			}
		}
	case KindX:
		for i := 0; i < n; i++ {
			if i&tbit == 0 && i&cmask == cmask {
				j := i | tbit
				s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
			}
		}
	case KindZ:
		full := cmask | tbit
		for i := 0; i < n; i++ {
			if i&full == full {
				s.amps[i] = -s.amps[i]
			}
		}
	default:
		return fmt.Errorf("unknown gate kind %d", g.Kind)
	}

	return s.checkNorm()
}

// ApplyAll applies a gate sequence in order, stopping at the first error.
func (s *QuantumState) ApplyAll(gates []Gate) error {
	for _, g := range gates {
		if err := s.Apply(g); err != nil {
			return err
		}
	}
	return nil
}

func (s *QuantumState) checkNorm() error {
	norm := 0.0
	for _, a := range s.amps {
		norm += real(a)*real(a) + imag(a)*imag(a)
	}
	drift := math.Abs(norm - 1)
	if drift > s.maxDrift {
		s.maxDrift = drift
	}
	if drift > s.tolerance {
		return fmt.Errorf("%w: norm %.17g", ErrInvariantViolation, norm)
	}
	return nil
}

/*
Probability returns the chance of observing the given partial assignment:
the sum of squared magnitudes over every basis state consistent with it.
The assignment maps qubit index to 0 or 1; qubits not present are traced
out. It reads the state without mutating it.
*/
func (s *QuantumState) Probability(assignment map[int]int) float64 {
	mask, want := 0, 0
	for q, v := range assignment {
		mask |= 1 << q
		if v != 0 {
			want |= 1 << q
		}
	}

	p := 0.0
	for i, a := range s.amps {
		if i&mask == want {
			p += real(a)*real(a) + imag(a)*imag(a)
		}
	}
	return p
}

/*
Distribution returns the marginal probability distribution over an ordered
subset of qubits. Entry k covers all basis states whose bit at qubits[j]
equals bit j of k, for every j. This is the partial-measurement view the
sampler draws from.
*/
func (s *QuantumState) Distribution(qubits []int) []float64 {
	dist := make([]float64, 1<<len(qubits))
	for i, a := range s.amps {
		p := real(a)*real(a) + imag(a)*imag(a)
		if p == 0 {
			continue
		}
		k := 0
		for j, q := range qubits {
			if i&(1<<q) != 0 {
				k |= 1 << j
			}
		}
		dist[k] += p
	}
	return dist
}

// Phase returns the argument of a basis state's amplitude, for diagnostics.
func (s *QuantumState) Phase(index int) float64 {
	return cmplx.Phase(s.amps[index])
}
