package qsat

import (
	"context"
	"sync"

	"github.com/theapemachine/errnie"
)

// Experiment describes one independent Grover run: a formula, its input
// register size, and the run configuration.
type Experiment struct {
	ID      string
	Formula Formula
	NumVars int
	Config  *Config
}

// ExperimentResult carries the outcome of one experiment. Err is set when
// construction or execution failed; Frequencies is nil in that case.
type ExperimentResult struct {
	ID          string
	Iterations  int
	Frequencies map[string]int
	Err         error
}

/*
RunExperiments fans a batch of experiments out over a fixed worker pool.
Each worker runs experiments sequentially on its own engine and state, so
no quantum state is ever shared between goroutines. Results arrive on the
returned channel in completion order; the channel closes once every
experiment has finished or the context is cancelled.
*/
func RunExperiments(ctx context.Context, experiments []Experiment, workers int) <-chan ExperimentResult {
	if workers < 1 {
		workers = 1
	}

	errnie.Info(
		"experiment batch - %d experiments, %d workers",
		len(experiments),
		workers,
	)

	jobs := make(chan Experiment)
	results := make(chan ExperimentResult, len(experiments))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for exp := range jobs {
				select {
				case <-ctx.Done():
					results <- ExperimentResult{ID: exp.ID, Err: ctx.Err()}
					continue
				default:
				}
				results <- runExperiment(exp)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, exp := range experiments {
			select {
			case <-ctx.Done():
				return
			case jobs <- exp:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

func runExperiment(exp Experiment) ExperimentResult {
	cfg := exp.Config
	if cfg == nil {
		cfg = NewConfig()
	}

	engine, err := NewGroverEngine(exp.Formula, exp.NumVars, cfg)
	if err != nil {
		return ExperimentResult{ID: exp.ID, Err: err}
	}

	iterations, err := engine.Iterations()
	if err != nil {
		return ExperimentResult{ID: exp.ID, Err: err}
	}

	state, err := engine.Run()
	if err != nil {
		return ExperimentResult{ID: exp.ID, Err: err}
	}

	sampler := NewSampler(state, engine.Layout().Inputs(), cfg.Seed)
	freqs, err := sampler.Frequencies(cfg.Shots)
	if err != nil {
		return ExperimentResult{ID: exp.ID, Err: err}
	}

	return ExperimentResult{
		ID:          exp.ID,
		Iterations:  iterations,
		Frequencies: freqs,
	}
}
