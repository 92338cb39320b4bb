package field

import (
	"fmt"
	"sort"

	"github.com/colinrgodsey/cartesius/f64"
	"github.com/colinrgodsey/wave-daemon/physics"
)

// Function returns the standing wave of req as a function over (x, θ), where
// θ replaces req.Time. Positions outside the cavity are an error.
func Function(req Request) (f64.Function2D, error) {
	e, err := newEvaluator(req)
	if err != nil {
		return nil, err
	}
	return func(pos f64.Vec2) (float64, error) {
		if err := e.checkPosition(pos[0]); err != nil {
			return 0, err
		}
		if !finite(pos[1]) {
			return 0, fmt.Errorf("%w: phase %v", physics.ErrInvalidInput, pos[1])
		}
		return e.at(pos[0], pos[1]), nil
	}, nil
}

// SampleParallel produces the same profile as SampleProfile, spreading the
// evaluation over all available procs. Results are reassembled in position
// order.
func SampleParallel(req Request) (Profile, error) {
	if err := checkSamples(req.Samples); err != nil {
		return nil, err
	}
	e, err := newEvaluator(req)
	if err != nil {
		return nil, err
	}
	xs := e.positions()

	fn := f64.Function2D(func(pos f64.Vec2) (float64, error) {
		return e.value(pos[0]), nil
	})

	positions := make(chan f64.Vec2, len(xs))
	for _, x := range xs {
		positions <- f64.Vec2{x, req.Time}
	}
	close(positions)

	out := make(Profile, 0, len(xs))
	for s := range fn.Multi(positions) {
		out = append(out, Sample{Position: s[0], Value: s[2]})
	}
	if len(out) != len(xs) {
		return nil, fmt.Errorf("parallel sampling lost %v of %v samples", len(xs)-len(out), len(xs))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out, nil
}
