package field

import (
	"fmt"
	"math"

	"github.com/colinrgodsey/wave-daemon/physics"
	"gonum.org/v1/gonum/floats"
)

// Traveling describes a free plane wave moving toward +x. B trails E by a
// quarter wavelength.
type Traveling struct {
	Field      physics.Field
	Amplitude  float64
	Wavelength float64
	Frequency  float64
	Span       float64
	Time       float64
	Samples    int
}

func (t Traveling) validate() error {
	switch {
	case !(t.Wavelength > 0) || !finite(t.Wavelength):
		return fmt.Errorf("%w: wavelength %v", physics.ErrInvalidConfig, t.Wavelength)
	case !(t.Span > 0) || !finite(t.Span):
		return fmt.Errorf("%w: span %v", physics.ErrInvalidConfig, t.Span)
	case !finite(t.Frequency) || t.Frequency < 0:
		return fmt.Errorf("%w: frequency %v", physics.ErrInvalidConfig, t.Frequency)
	case !finite(t.Amplitude) || !finite(t.Time):
		return fmt.Errorf("%w: amplitude %v, time %v", physics.ErrInvalidInput, t.Amplitude, t.Time)
	}
	return nil
}

// At evaluates the wave at position x and time t.
func (t Traveling) At(x, time float64) float64 {
	k := 2 * math.Pi / t.Wavelength
	ω := 2 * math.Pi * t.Frequency
	phase := k*x - ω*time
	if t.Field == physics.Magnetic {
		phase += math.Pi / 2
	}
	return t.Amplitude * math.Sin(phase)
}

// SampleTraveling evaluates t over [0, Span] at t.Samples positions.
func SampleTraveling(t Traveling) (Profile, error) {
	if err := checkSamples(t.Samples); err != nil {
		return nil, err
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	xs := floats.Span(make([]float64, t.Samples), 0, t.Span)
	xs[len(xs)-1] = t.Span

	out := make(Profile, len(xs))
	for i, x := range xs {
		out[i] = Sample{x, t.At(x, t.Time)}
	}
	return out, nil
}
