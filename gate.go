package qsat

// GateKind identifies one of the unitary primitives the simulator supports.
type GateKind int

const (
	// KindH is the Hadamard gate.
	// H = 1/√2 * [1  1]
	//            [1 -1]
	KindH GateKind = iota

	// KindX is the Pauli-X bit flip, optionally controlled. One control
	// makes it a CNOT, two a Toffoli; any control count is accepted.
	KindX

	// KindZ is the phase flip, optionally controlled. With controls it
	// flips the sign of basis states where target and all controls are 1.
	KindZ
)

/*
Gate is an immutable description of a unitary operation: a kind, a target
qubit, and zero or more control qubits. Gates are stateless and reusable;
applying one is a pure transformation of a QuantumState.

Every gate in this set is self-inverse, which the oracle builder relies on
for ancilla uncomputation.
*/
type Gate struct {
	Kind     GateKind
	Target   int
	Controls []int
}

// H returns a Hadamard gate on the target qubit.
func H(target int) Gate {
	return Gate{Kind: KindH, Target: target}
}

// X returns a Pauli-X gate on the target qubit.
func X(target int) Gate {
	return Gate{Kind: KindX, Target: target}
}

// CNOT returns a controlled-NOT flipping target iff control is 1.
func CNOT(control, target int) Gate {
	return Gate{Kind: KindX, Target: target, Controls: []int{control}}
}

// CCNOT returns a Toffoli gate flipping target iff both controls are 1.
func CCNOT(control1, control2, target int) Gate {
	return Gate{Kind: KindX, Target: target, Controls: []int{control1, control2}}
}

// CZ returns a controlled phase flip across the target and all controls.
// With no controls it is a plain Pauli-Z.
func CZ(target int, controls ...int) Gate {
	return Gate{Kind: KindZ, Target: target, Controls: controls}
}

// Validate checks that the gate addresses distinct qubits inside an
// n-qubit register.
func (g Gate) Validate(numQubits int) error {
	if g.Target < 0 || g.Target >= numQubits {
		return ErrQubitOutOfRange
	}
	seen := map[int]bool{g.Target: true}
	for _, c := range g.Controls {
		if c < 0 || c >= numQubits {
			return ErrQubitOutOfRange
		}
		if seen[c] {
			return ErrDuplicateQubit
		}
		seen[c] = true
	}
	return nil
}

// controlMask returns the bitmask selecting basis states where every
// control qubit is 1.
func (g Gate) controlMask() int {
	mask := 0
	for _, c := range g.Controls {
		mask |= 1 << c
	}
	return mask
}

/*
ControlledX builds a multi-controlled X from CNOT and Toffoli gates.

One and two controls map to the native primitives. Three or more use the
standard Toffoli ladder: the first two controls are ANDed into helpers[0],
each further control is ANDed with the previous helper into the next, the
last rung flips the target, and the ladder is then replayed in reverse so
every helper returns to |0⟩. A k-controlled flip needs k-2 helpers, all of
which must start at |0⟩.
*/
func ControlledX(controls []int, target int, helpers []int) ([]Gate, error) {
	k := len(controls)
	switch k {
	case 0:
		return []Gate{X(target)}, nil
	case 1:
		return []Gate{CNOT(controls[0], target)}, nil
	case 2:
		return []Gate{CCNOT(controls[0], controls[1], target)}, nil
	}

	if len(helpers) < k-2 {
		return nil, ErrInsufficientAncillas
	}

	forward := make([]Gate, 0, k-2)
	forward = append(forward, CCNOT(controls[0], controls[1], helpers[0]))
	for i := 2; i < k-1; i++ {
		forward = append(forward, CCNOT(controls[i], helpers[i-2], helpers[i-1]))
	}

	gates := make([]Gate, 0, 2*len(forward)+1)
	gates = append(gates, forward...)
	gates = append(gates, CCNOT(controls[k-1], helpers[k-3], target))
	for i := len(forward) - 1; i >= 0; i-- {
		gates = append(gates, forward[i])
	}
	return gates, nil
}
