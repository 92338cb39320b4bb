package field

import (
	"fmt"
	"math"

	"github.com/colinrgodsey/wave-daemon/physics"
	"gonum.org/v1/gonum/floats"
)

// Sample is a field value at a position along the cavity.
type Sample struct {
	Position float64 `json:"x"`
	Value    float64 `json:"v"`
}

// Profile is a position-ordered set of samples at a single instant.
type Profile []Sample

// Request describes one field profile of a standing wave. Time is the
// fundamental phase ω₁t in radians; mode n oscillates at n·ω₁.
type Request struct {
	Field     physics.Field
	Modes     []int
	Boundary  physics.Boundary
	Length    float64
	Amplitude float64
	Time      float64
	Samples   int
}

type mode struct {
	n int
	k float64
}

type evaluator struct {
	req    Request
	form   physics.Form
	policy physics.EdgePolicy
	modes  []mode
}

func newEvaluator(req Request) (*evaluator, error) {
	form, err := physics.FormFor(req.Boundary, req.Field)
	if err != nil {
		return nil, err
	}
	policy, err := physics.PolicyFor(req.Boundary, req.Field)
	if err != nil {
		return nil, err
	}
	if !(req.Length > 0) || math.IsInf(req.Length, 0) {
		return nil, fmt.Errorf("%w: cavity length %v", physics.ErrInvalidConfig, req.Length)
	}
	if !finite(req.Amplitude) || !finite(req.Time) {
		return nil, fmt.Errorf("%w: amplitude %v, time %v", physics.ErrInvalidInput, req.Amplitude, req.Time)
	}

	e := &evaluator{req: req, form: form, policy: policy}
	for _, n := range req.Modes {
		k, err := physics.WaveNumber(req.Boundary, n, req.Length)
		if err != nil {
			return nil, err
		}
		e.modes = append(e.modes, mode{n: n, k: k})
	}
	return e, nil
}

func (e *evaluator) spatial(m mode, x float64) float64 {
	analytic := e.form.Spatial.Apply(m.k * x)
	switch {
	case x < physics.Eps:
		return e.policy.AtStart.Force(analytic)
	case math.Abs(x-e.req.Length) < physics.Eps:
		return e.policy.AtEnd.Force(analytic)
	}
	return analytic
}

// at evaluates the superposition at x for fundamental phase θ.
func (e *evaluator) at(x, θ float64) (v float64) {
	for _, m := range e.modes {
		v += e.req.Amplitude * e.spatial(m, x) * e.form.Temporal.Apply(float64(m.n)*θ)
	}
	return
}

func (e *evaluator) value(x float64) float64 {
	return e.at(x, e.req.Time)
}

func (e *evaluator) checkPosition(x float64) error {
	if x < 0 || x > e.req.Length || !finite(x) {
		return fmt.Errorf("%w: position %v outside [0, %v]", physics.ErrInvalidInput, x, e.req.Length)
	}
	return nil
}

func (e *evaluator) positions() []float64 {
	xs := floats.Span(make([]float64, e.req.Samples), 0, e.req.Length)
	xs[len(xs)-1] = e.req.Length
	return xs
}

func checkSamples(n int) error {
	if n < 2 {
		return fmt.Errorf("%w: need at least 2 samples, got %v", physics.ErrInvalidConfig, n)
	}
	return nil
}

// SampleProfile evaluates the standing wave of req at req.Samples evenly
// spaced positions over [0, Length], both walls included. Samples at the
// walls take the values forced by the boundary's edge policy.
func SampleProfile(req Request) (Profile, error) {
	if err := checkSamples(req.Samples); err != nil {
		return nil, err
	}
	e, err := newEvaluator(req)
	if err != nil {
		return nil, err
	}

	xs := e.positions()
	out := make(Profile, len(xs))
	for i, x := range xs {
		out[i] = Sample{x, e.value(x)}
	}
	return out, nil
}

// Value evaluates the standing wave of req at a single position.
func Value(req Request, x float64) (float64, error) {
	e, err := newEvaluator(req)
	if err != nil {
		return 0, err
	}
	if err := e.checkPosition(x); err != nil {
		return 0, err
	}
	return e.value(x), nil
}

// Values returns the field values of p.
func (p Profile) Values() []float64 {
	out := make([]float64, len(p))
	for i, s := range p {
		out[i] = s.Value
	}
	return out
}

// Peak returns the largest magnitude in p.
func (p Profile) Peak() float64 {
	if len(p) == 0 {
		return 0
	}
	vs := p.Values()
	return math.Max(math.Abs(floats.Max(vs)), math.Abs(floats.Min(vs)))
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
