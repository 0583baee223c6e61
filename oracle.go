package qsat

import (
	"fmt"

	"github.com/theapemachine/errnie"
)

/*
OracleBuilder composes the gate primitives into the reversible marking
oracle U_f: |x⟩|y⟩ → |x⟩|y ⊕ f(x)⟩, where f(x)=1 iff every clause of the
formula has exactly one true literal.

The emitted sequence has three sections:

 1. a forward pass computing each clause's indicator into its ancilla,
 2. a readout ANDing all clause ancillas into the output qubit,
 3. the identical forward pass again, uncomputing every ancilla to |0⟩.

Forward and uncompute passes come from the same builder function, so they
can never drift apart when the formula changes. Because every primitive is
self-inverse, replaying a section exactly reverses it.
*/
type OracleBuilder struct {
	formula Formula
	layout  *RegisterLayout
}

// NewOracleBuilder validates the formula against the layout. Malformed
// formulas and undersized layouts are configuration errors: fatal,
// surfaced immediately, never retried.
func NewOracleBuilder(formula Formula, layout *RegisterLayout) (*OracleBuilder, error) {
	if err := formula.Validate(layout.NumVars()); err != nil {
		return nil, err
	}
	if layout.NumClauses() < len(formula) {
		return nil, fmt.Errorf("%w: %d clause ancillas for %d clauses",
			ErrInsufficientAncillas, layout.NumClauses(), len(formula))
	}
	needed := len(formula) - 2
	if needed < 1 {
		needed = 1
	}
	if layout.NumHelpers() < needed {
		return nil, fmt.Errorf("%w: %d helpers, need %d",
			ErrInsufficientAncillas, layout.NumHelpers(), needed)
	}
	return &OracleBuilder{formula: formula, layout: layout}, nil
}

// Build emits the full oracle gate sequence.
func (b *OracleBuilder) Build() []Gate {
	forward := b.clausePass()

	gates := make([]Gate, 0, 2*len(forward)+8)
	gates = append(gates, forward...)
	gates = append(gates, b.readout()...)
	gates = append(gates, forward...)

	errnie.Info(
		"oracle built - %d clauses, %d qubits, %d gates",
		len(b.formula),
		b.layout.NumQubits(),
		len(gates),
	)
	return gates
}

// clausePass emits the clause sub-circuits in order. Applying it twice is
// the identity, which Build exploits for uncomputation.
func (b *OracleBuilder) clausePass() []Gate {
	var gates []Gate
	for ci := range b.formula {
		gates = append(gates, b.clauseCircuit(ci)...)
	}
	return gates
}

/*
clauseCircuit computes clause ci's "exactly one literal true" indicator
into its dedicated ancilla.

The X adjustment turns every negated literal into a plain qubit=1 test.
The three CNOTs then compute the parity of true literals, which is 1 for
one or three of them. The triple-controlled flip cancels the three-true
case, leaving exactly-one. The trailing X gates restore the input
register, so the oracle never leaks into or permanently alters it.
*/
func (b *OracleBuilder) clauseCircuit(ci int) []Gate {
	clause := b.formula[ci]
	ancilla := b.layout.ClauseAncilla(ci)

	var adjust []Gate
	vars := make([]int, len(clause))
	for i, lit := range clause {
		vars[i] = b.layout.Input(lit.Var)
		if lit.Negated {
			adjust = append(adjust, X(vars[i]))
		}
	}

	gates := append([]Gate{}, adjust...)
	for _, v := range vars {
		gates = append(gates, CNOT(v, ancilla))
	}

	// Three controls, one helper; the ladder uncomputes the helper itself.
	triple, err := ControlledX(vars, ancilla, b.layout.Helpers())
	if err != nil {
		// NewOracleBuilder sized the layout; running out here is a defect.
		panic(err)
	}
	gates = append(gates, triple...)
	gates = append(gates, adjust...)
	return gates
}

// readout ANDs all clause ancillas into the output qubit. Conditioned on
// the clause indicators it is self-inverse, so replaying the forward pass
// afterwards restores every scratch qubit.
func (b *OracleBuilder) readout() []Gate {
	ancillas := make([]int, len(b.formula))
	for ci := range b.formula {
		ancillas[ci] = b.layout.ClauseAncilla(ci)
	}
	gates, err := ControlledX(ancillas, b.layout.Output(), b.layout.Helpers())
	if err != nil {
		panic(err)
	}
	return gates
}
