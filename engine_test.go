package qsat

import (
	"errors"
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	. "github.com/smartystreets/goconvey/convey"
)

func TestIterationCount(t *testing.T) {
	Convey("Given the worked example engine", t, func() {
		Convey("The derived count follows (π/4)·√(N/M)", func() {
			engine, err := NewGroverEngine(exampleFormula(), 3, nil)
			So(err, ShouldBeNil)

			// N=8, M=1: (π/4)·√8 ≈ 2.22, rounded to 2.
			k, err := engine.Iterations()
			So(err, ShouldBeNil)
			So(k, ShouldEqual, 2)
		})

		Convey("An explicit configuration overrides the derivation", func() {
			cfg := NewConfig()
			cfg.Iterations = 1
			engine, err := NewGroverEngine(exampleFormula(), 3, cfg)
			So(err, ShouldBeNil)

			k, err := engine.Iterations()
			So(err, ShouldBeNil)
			So(k, ShouldEqual, 1)
		})

		Convey("An unsatisfiable formula requires the explicit count", func() {
			engine, err := NewGroverEngine(unsatFormula(), 3, nil)
			So(err, ShouldBeNil)

			_, err = engine.Iterations()
			So(errors.Is(err, ErrNoSolutions), ShouldBeTrue)

			_, err = engine.Run()
			So(errors.Is(err, ErrNoSolutions), ShouldBeTrue)
		})
	})
}

func TestDiffusion(t *testing.T) {
	Convey("Given a uniform superposition with one negated amplitude", t, func() {
		engine, err := NewGroverEngine(exampleFormula(), 3, nil)
		So(err, ShouldBeNil)
		layout := engine.Layout()

		s, err := NewQuantumState(layout.NumQubits())
		So(err, ShouldBeNil)
		for _, q := range layout.Inputs() {
			So(s.Apply(H(q)), ShouldBeNil)
		}

		// Flip the sign of the x1=1, x2=0, x3=1 component: conjugate a
		// controlled-Z over all inputs with X on the zero position.
		So(s.Apply(X(layout.Input(1))), ShouldBeNil)
		So(s.Apply(CZ(layout.Input(2), layout.Input(0), layout.Input(1))), ShouldBeNil)
		So(s.Apply(X(layout.Input(1))), ShouldBeNil)

		So(s.ApplyAll(engine.Diffusion()), ShouldBeNil)

		Convey("The negated component is amplified per 2·mean − amplitude", func() {
			// amp = 1/√8 everywhere, one component at −1/√8:
			// mean = 0.75/√8, reflected marked amp = 2.5/√8, others 0.5/√8.
			dist := s.Distribution(layout.Inputs())
			So(dist[0b101], ShouldAlmostEqual, 6.25/8, 1e-12)
			for k, p := range dist {
				if k != 0b101 {
					So(p, ShouldAlmostEqual, 0.25/8, 1e-12)
				}
			}
		})

		Convey("Amplitude magnitudes match the reflection exactly", func() {
			inv := 1 / math.Sqrt(8)
			mean := 0.75 * inv
			for k := 0; k < 8; k++ {
				amp := inv
				if k == 0b101 {
					amp = -inv
				}
				want := math.Abs(2*mean - amp)
				got := s.Amplitude(k)
				So(math.Hypot(real(got), imag(got)), ShouldAlmostEqual, want, 1e-12)
			}
		})
	})
}

func TestGroverEndToEnd(t *testing.T) {
	Convey("Given the worked example with a single iteration", t, func() {
		cfg := NewConfig()
		cfg.Iterations = 1
		cfg.Seed = 42

		engine, err := NewGroverEngine(exampleFormula(), 3, cfg)
		So(err, ShouldBeNil)

		state, err := engine.Run()
		So(err, ShouldBeNil)

		Convey("The solution probability is amplified well past uniform", func() {
			dist := state.Distribution(engine.Layout().Inputs())
			// One iteration at N=8, M=1 lands at sin²(3·asin(1/√8)) ≈ 0.78.
			So(dist[0b101], ShouldAlmostEqual, 0.78125, 1e-9)
		})

		Convey("Sampling 1000 shots makes 101 the dominant outcome", func() {
			sampler := NewSampler(state, engine.Layout().Inputs(), cfg.Seed)
			freqs, err := sampler.Frequencies(1000)
			So(err, ShouldBeNil)
			t.Logf("frequency table: %s", spew.Sdump(freqs))

			So(freqs["101"], ShouldBeGreaterThan, 600)
			for key, count := range freqs {
				if key != "101" {
					So(count, ShouldBeLessThan, 125)
				}
			}
		})

		Convey("Run metrics reflect the single iteration", func() {
			m := engine.Metrics().ExportMetrics()
			So(m["oracle_applications"], ShouldEqual, int64(1))
			So(m["diffusion_applications"], ShouldEqual, int64(1))
			So(m["gates_applied"].(int64), ShouldBeGreaterThan, int64(0))
			So(m["max_norm_drift"].(float64), ShouldBeLessThan, 1e-10)
		})
	})

	Convey("Given the derived two-iteration schedule", t, func() {
		engine, err := NewGroverEngine(exampleFormula(), 3, nil)
		So(err, ShouldBeNil)

		state, err := engine.Run()
		So(err, ShouldBeNil)

		Convey("A second iteration amplifies the solution further", func() {
			dist := state.Distribution(engine.Layout().Inputs())
			So(dist[0b101], ShouldBeGreaterThan, 0.9)
		})
	})
}
