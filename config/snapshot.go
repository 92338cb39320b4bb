package config

import (
	"fmt"
	"math"
	"time"

	"github.com/colinrgodsey/wave-daemon/field"
	"github.com/colinrgodsey/wave-daemon/physics"
)

// Snapshot is a validated, immutable parameter set.
type Snapshot struct {
	Boundary         physics.Boundary  `json:"boundary"`
	Length           float64           `json:"cavity-length"`
	Amplitude        float64           `json:"amplitude"`
	PeakE            float64           `json:"peak-e"`
	Modes            []int             `json:"modes"`
	Samples          int               `json:"samples"`
	Tick             time.Duration     `json:"-"`
	TimeStep         float64           `json:"time-step"`
	ObservationPoint float64           `json:"observation-point"`
	HistorySize      int               `json:"history-size"`
	Wavelength       float64           `json:"wavelength"`
	Frequency        float64           `json:"frequency"`
	Constants        physics.Constants `json:"constants"`
}

func (s Snapshot) validate() error {
	if !s.Boundary.Valid() {
		return fmt.Errorf("%w: %d", physics.ErrUnhandledBoundary, int(s.Boundary))
	}
	if err := s.Constants.Validate(); err != nil {
		return err
	}
	if _, err := physics.FundamentalWavelength(s.Boundary, s.Length); err != nil {
		return err
	}
	for _, n := range s.Modes {
		if _, err := physics.HarmonicIndex(s.Boundary, n); err != nil {
			return err
		}
	}
	switch {
	case s.Samples < 2:
		return fmt.Errorf("%w: samples %v", physics.ErrInvalidConfig, s.Samples)
	case s.Tick <= 0:
		return fmt.Errorf("%w: tick %v", physics.ErrInvalidConfig, s.Tick)
	case s.HistorySize < 1:
		return fmt.Errorf("%w: history size %v", physics.ErrInvalidConfig, s.HistorySize)
	case !(s.Wavelength > 0) || !(s.Frequency >= 0):
		return fmt.Errorf("%w: wavelength %v, frequency %v", physics.ErrInvalidConfig, s.Wavelength, s.Frequency)
	case bad(s.Amplitude) || bad(s.TimeStep):
		return fmt.Errorf("%w: amplitude %v, time step %v", physics.ErrInvalidInput, s.Amplitude, s.TimeStep)
	case bad(s.PeakE) || s.PeakE < 0:
		return fmt.Errorf("%w: peak E %v", physics.ErrInvalidInput, s.PeakE)
	case s.ObservationPoint < 0 || s.ObservationPoint > s.Length:
		return fmt.Errorf("%w: observation point %v outside cavity", physics.ErrInvalidConfig, s.ObservationPoint)
	}
	return nil
}

func bad(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// Mode is the lowest selected mode, used for single mode readouts.
func (s Snapshot) Mode() int {
	if len(s.Modes) == 0 {
		return 1
	}
	n := s.Modes[0]
	for _, m := range s.Modes[1:] {
		if m < n {
			n = m
		}
	}
	return n
}

// Request builds the sampling request of field f at phase θ.
func (s Snapshot) Request(f physics.Field, θ float64) field.Request {
	return field.Request{
		Field:     f,
		Modes:     s.Modes,
		Boundary:  s.Boundary,
		Length:    s.Length,
		Amplitude: s.Amplitude,
		Time:      θ,
		Samples:   s.Samples,
	}
}

// Traveling builds the free wave comparison of field f at time t.
func (s Snapshot) Traveling(f physics.Field, t float64) field.Traveling {
	return field.Traveling{
		Field:      f,
		Amplitude:  s.Amplitude,
		Wavelength: s.Wavelength,
		Frequency:  s.Frequency,
		Span:       s.Length,
		Time:       t,
		Samples:    s.Samples,
	}
}
