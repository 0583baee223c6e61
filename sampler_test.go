package qsat

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSampler(t *testing.T) {
	Convey("Given a sampler over a two-qubit superposition", t, func() {
		s, err := NewQuantumState(3)
		So(err, ShouldBeNil)
		So(s.Apply(H(0)), ShouldBeNil)
		So(s.Apply(H(1)), ShouldBeNil)

		sampler := NewSampler(s, []int{0, 1}, 7)

		Convey("Non-positive shot counts are rejected", func() {
			_, err := sampler.Sample(0)
			So(errors.Is(err, ErrBadShotCount), ShouldBeTrue)

			_, err = sampler.Frequencies(-5)
			So(errors.Is(err, ErrBadShotCount), ShouldBeTrue)
		})

		Convey("Sample returns one bit-string per shot", func() {
			samples, err := sampler.Sample(50)
			So(err, ShouldBeNil)
			So(samples, ShouldHaveLength, 50)
			for _, bits := range samples {
				So(bits, ShouldBeIn, []string{"00", "01", "10", "11"})
			}
		})

		Convey("The frequency table enumerates every bit-string and sums to the shot count", func() {
			freqs, err := sampler.Frequencies(400)
			So(err, ShouldBeNil)
			So(freqs, ShouldHaveLength, 4)

			total := 0
			for _, key := range []string{"00", "01", "10", "11"} {
				count, ok := freqs[key]
				So(ok, ShouldBeTrue)
				total += count
			}
			So(total, ShouldEqual, 400)
		})

		Convey("Sampling never mutates the underlying state", func() {
			before := s.Snapshot()
			_, err := sampler.Sample(200)
			So(err, ShouldBeNil)
			So(s.Snapshot(), ShouldResemble, before)
		})
	})

	Convey("Given a deterministic state", t, func() {
		s, err := NewQuantumState(2)
		So(err, ShouldBeNil)
		So(s.Apply(X(1)), ShouldBeNil)

		Convey("Every shot lands on the only possible outcome", func() {
			sampler := NewSampler(s, []int{0, 1}, 1)
			freqs, err := sampler.Frequencies(100)
			So(err, ShouldBeNil)
			So(freqs["01"], ShouldEqual, 100)
			So(freqs["00"], ShouldEqual, 0)
			So(freqs["10"], ShouldEqual, 0)
			So(freqs["11"], ShouldEqual, 0)
		})
	})

	Convey("Given two samplers with the same seed", t, func() {
		s, err := NewQuantumState(2)
		So(err, ShouldBeNil)
		So(s.Apply(H(0)), ShouldBeNil)
		So(s.Apply(H(1)), ShouldBeNil)

		Convey("Their draws are identical", func() {
			a, err := NewSampler(s, []int{0, 1}, 99).Sample(64)
			So(err, ShouldBeNil)
			b, err := NewSampler(s, []int{0, 1}, 99).Sample(64)
			So(err, ShouldBeNil)
			So(a, ShouldResemble, b)
		})
	})
}

func TestBitstringOrder(t *testing.T) {
	Convey("Given a state with only the first sampled qubit set", t, func() {
		s, err := NewQuantumState(3)
		So(err, ShouldBeNil)
		So(s.Apply(X(0)), ShouldBeNil)

		Convey("The first qubit renders as the leftmost character", func() {
			sampler := NewSampler(s, []int{0, 1, 2}, 1)
			samples, err := sampler.Sample(1)
			So(err, ShouldBeNil)
			So(samples[0], ShouldEqual, "100")
		})
	})
}
