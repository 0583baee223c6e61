package qsat

import "errors"

var (
	// Configuration errors, detected while building circuits.
	ErrInvalidQubitCount    = errors.New("qubit count must be between 1 and 30")
	ErrQubitOutOfRange      = errors.New("qubit index out of range")
	ErrDuplicateQubit       = errors.New("gate addresses the same qubit twice")
	ErrVariableOutOfRange   = errors.New("clause references variable outside the input register")
	ErrInsufficientAncillas = errors.New("register layout has too few ancilla qubits for the formula")
	ErrRepeatedVariable     = errors.New("clause repeats a variable, which the gate set cannot express")
	ErrEmptyFormula         = errors.New("formula has no clauses")

	// ErrNoSolutions means the iteration count cannot be derived because the
	// formula is unsatisfiable; an explicit iteration count must be configured.
	ErrNoSolutions = errors.New("formula has no satisfying assignments")

	// ErrInvariantViolation reports state vector norm drift beyond tolerance.
	// It indicates a defect in gate composition and is never corrected.
	ErrInvariantViolation = errors.New("state vector norm invariant violated")

	// ErrBadShotCount rejects non-positive shot counts at sampler entry.
	ErrBadShotCount = errors.New("shot count must be positive")
)
