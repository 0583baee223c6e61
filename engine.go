package qsat

import (
	"math"

	"github.com/theapemachine/errnie"
)

/*
GroverEngine drives the three-phase search: initialization into uniform
superposition, the oracle/diffusion amplification loop, and a final state
ready for measurement sampling.

The engine owns no ambient state. Each Run allocates a fresh QuantumState,
so independent runs can execute concurrently on their own engines.
*/
type GroverEngine struct {
	formula Formula
	layout  *RegisterLayout
	oracle  []Gate
	config  *Config
	metrics *Metrics
}

// NewGroverEngine validates the formula, sizes the register, and builds
// the oracle once; the gate sequence is immutable and reused across
// iterations and runs.
func NewGroverEngine(formula Formula, numVars int, config *Config) (*GroverEngine, error) {
	if config == nil {
		config = NewConfig()
	}
	layout, err := NewRegisterLayout(numVars, len(formula))
	if err != nil {
		return nil, err
	}
	builder, err := NewOracleBuilder(formula, layout)
	if err != nil {
		return nil, err
	}
	return &GroverEngine{
		formula: formula,
		layout:  layout,
		oracle:  builder.Build(),
		config:  config,
		metrics: NewMetrics(),
	}, nil
}

// Layout exposes the register layout, primarily so callers can hand the
// input register to a Sampler.
func (e *GroverEngine) Layout() *RegisterLayout {
	return e.layout
}

// Metrics returns the counters recorded by this engine's runs.
func (e *GroverEngine) Metrics() *Metrics {
	return e.metrics
}

/*
Iterations returns the Grover iteration count. An explicit
Config.Iterations wins. Otherwise the count is derived from
k ≈ (π/4)·√(N/M) with N the input space size and M the number of
satisfying assignments, counted classically. An unsatisfiable formula has
no derivable count and requires the explicit setting.
*/
func (e *GroverEngine) Iterations() (int, error) {
	if e.config.Iterations > 0 {
		return e.config.Iterations, nil
	}
	m := len(e.formula.Solutions(e.layout.NumVars()))
	if m == 0 {
		return 0, ErrNoSolutions
	}
	n := float64(int(1) << e.layout.NumVars())
	k := int(math.Round(math.Pi / 4 * math.Sqrt(n/float64(m))))
	if k < 1 {
		k = 1
	}
	return k, nil
}

// Initialize prepares the register: Hadamard across the input register
// for uniform superposition, X then Hadamard on the output qubit so it
// sits in |−⟩ and the oracle's flip becomes a phase kickback.
func (e *GroverEngine) Initialize(s *QuantumState) error {
	for _, q := range e.layout.Inputs() {
		if err := s.Apply(H(q)); err != nil {
			return err
		}
	}
	out := e.layout.Output()
	if err := s.Apply(X(out)); err != nil {
		return err
	}
	return s.Apply(H(out))
}

/*
Diffusion emits the inversion-about-the-average operator on the input
register: Hadamards, X gates, a multi-controlled Z flipping the all-ones
state (all-zero before the X conjugation), X gates, Hadamards. Per
amplitude component the net effect is 2·mean − amplitude, growing the
oracle-negated components and shrinking the rest.
*/
func (e *GroverEngine) Diffusion() []Gate {
	inputs := e.layout.Inputs()
	last := len(inputs) - 1

	var gates []Gate
	for _, q := range inputs {
		gates = append(gates, H(q))
	}
	for _, q := range inputs {
		gates = append(gates, X(q))
	}
	gates = append(gates, CZ(inputs[last], inputs[:last]...))
	for _, q := range inputs {
		gates = append(gates, X(q))
	}
	for _, q := range inputs {
		gates = append(gates, H(q))
	}
	return gates
}

// Run executes initialization and the full amplification loop on a fresh
// register and returns the final state for sampling.
func (e *GroverEngine) Run() (*QuantumState, error) {
	iterations, err := e.Iterations()
	if err != nil {
		return nil, err
	}

	errnie.Info(
		"grover run - %d vars, %d clauses, %d iterations",
		e.layout.NumVars(),
		len(e.formula),
		iterations,
	)

	state, err := NewQuantumStateWithTolerance(e.layout.NumQubits(), e.config.Tolerance)
	if err != nil {
		return nil, err
	}
	if err := e.Initialize(state); err != nil {
		return nil, err
	}

	diffusion := e.Diffusion()
	for i := 0; i < iterations; i++ {
		if err := state.ApplyAll(e.oracle); err != nil {
			return nil, err
		}
		e.metrics.RecordOracle(len(e.oracle))
		if err := state.ApplyAll(diffusion); err != nil {
			return nil, err
		}
		e.metrics.RecordDiffusion(len(diffusion))
	}

	e.metrics.RecordNormDrift(state.NormDrift())
	return state, nil
}
