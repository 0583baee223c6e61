package qsat

type Config struct {
	// Shots is the number of measurement samples drawn after a run.
	Shots int

	// Iterations overrides the derived Grover iteration count when > 0.
	// Required when the solution count cannot be established.
	Iterations int

	// Tolerance bounds the acceptable state vector norm drift per gate.
	Tolerance float64

	// Seed drives measurement sampling, making runs reproducible.
	Seed int64
}

func NewConfig() *Config {
	return &Config{
		Shots:      1000,
		Iterations: 0,
		Tolerance:  1e-9,
		Seed:       1,
	}
}
