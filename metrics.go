package qsat

import "sync"

// Metrics collects per-engine simulation counters. All methods are safe
// for concurrent use so batch experiments can share a reporting path.
type Metrics struct {
	mu sync.RWMutex

	GatesApplied          int64
	OracleApplications    int64
	DiffusionApplications int64

	// MaxNormDrift is the worst |Σ|amp|² − 1| seen across runs. Anything
	// approaching the configured tolerance points at a gate defect.
	MaxNormDrift float64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) RecordOracle(gates int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.OracleApplications++
	m.GatesApplied += int64(gates)
}

func (m *Metrics) RecordDiffusion(gates int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.DiffusionApplications++
	m.GatesApplied += int64(gates)
}

func (m *Metrics) RecordNormDrift(drift float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if drift > m.MaxNormDrift {
		m.MaxNormDrift = drift
	}
}

// ExportMetrics returns a snapshot suitable for logging or reporting.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"gates_applied":          m.GatesApplied,
		"oracle_applications":    m.OracleApplications,
		"diffusion_applications": m.DiffusionApplications,
		"max_norm_drift":         m.MaxNormDrift,
	}
}
