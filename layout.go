package qsat

import "fmt"

/*
RegisterLayout maps logical roles onto physical qubit indices: input
variables first, then the oracle output qubit, then one dedicated ancilla
per clause, then the helper chain used to decompose multi-controlled
flips. The role index sets are disjoint by construction.

Every ancilla and helper must be back in |0⟩ after oracle application;
the oracle builder's uncompute pass guarantees it.
*/
type RegisterLayout struct {
	numVars    int
	numClauses int
	numHelpers int
}

// NewRegisterLayout sizes a register for a formula with the given variable
// and clause counts. A k-controlled flip needs k-2 helpers, so the layout
// allocates max(1, clauses-2): one helper covers the per-clause
// triple-control gadget, clauses-2 cover the AND readout ladder.
func NewRegisterLayout(numVars, numClauses int) (*RegisterLayout, error) {
	if numVars < 1 {
		return nil, fmt.Errorf("%w: need at least one input variable", ErrInvalidQubitCount)
	}
	if numClauses < 1 {
		return nil, ErrEmptyFormula
	}
	helpers := numClauses - 2
	if helpers < 1 {
		helpers = 1
	}
	layout := &RegisterLayout{
		numVars:    numVars,
		numClauses: numClauses,
		numHelpers: helpers,
	}
	if layout.NumQubits() > maxQubits {
		return nil, fmt.Errorf("%w: layout needs %d qubits", ErrInvalidQubitCount, layout.NumQubits())
	}
	return layout, nil
}

// NumQubits returns the total register size across all roles.
func (r *RegisterLayout) NumQubits() int {
	return r.numVars + 1 + r.numClauses + r.numHelpers
}

// NumVars returns the input register size.
func (r *RegisterLayout) NumVars() int {
	return r.numVars
}

// NumClauses returns how many clause ancillas the layout carries.
func (r *RegisterLayout) NumClauses() int {
	return r.numClauses
}

// NumHelpers returns how many helper ancillas the layout carries.
func (r *RegisterLayout) NumHelpers() int {
	return r.numHelpers
}

// Input returns the physical qubit holding variable i.
func (r *RegisterLayout) Input(i int) int {
	return i
}

// Inputs returns the input register indices in variable order.
func (r *RegisterLayout) Inputs() []int {
	qubits := make([]int, r.numVars)
	for i := range qubits {
		qubits[i] = i
	}
	return qubits
}

// Output returns the oracle output qubit.
func (r *RegisterLayout) Output() int {
	return r.numVars
}

// ClauseAncilla returns the dedicated ancilla for clause c.
func (r *RegisterLayout) ClauseAncilla(c int) int {
	return r.numVars + 1 + c
}

// Helpers returns the helper chain indices.
func (r *RegisterLayout) Helpers() []int {
	qubits := make([]int, r.numHelpers)
	for i := range qubits {
		qubits[i] = r.numVars + 1 + r.numClauses + i
	}
	return qubits
}
