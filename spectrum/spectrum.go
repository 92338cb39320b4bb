// Package spectrum recovers the per-mode amplitudes of a sampled standing
// wave.
package spectrum

import (
	"fmt"
	"math"

	"github.com/colinrgodsey/wave-daemon/field"
	"github.com/colinrgodsey/wave-daemon/physics"
	"github.com/mjibson/go-dsp/fft"
)

// ModeAmplitude is the instantaneous amplitude of one harmonic, including
// its temporal factor.
type ModeAmplitude struct {
	Mode      int     `json:"n"`
	Index     int     `json:"m"`
	Amplitude float64 `json:"a"`
}

// Decompose projects p onto the first maxMode harmonics of field f under
// boundary b. p must be evenly spaced from x=0 with at least 2 samples.
//
// The profile is unfolded into one full 4L period by reflecting it at each
// wall, odd across nodes and even across antinodes. Every harmonic of the
// boundary then lands on an exact DFT bin.
func Decompose(p field.Profile, b physics.Boundary, f physics.Field, maxMode int) ([]ModeAmplitude, error) {
	form, err := physics.FormFor(b, f)
	if err != nil {
		return nil, err
	}
	policy, err := physics.PolicyFor(b, f)
	if err != nil {
		return nil, err
	}
	if maxMode < 1 {
		return nil, fmt.Errorf("%w (got %v)", physics.ErrInvalidMode, maxMode)
	}
	if err := checkSpacing(p); err != nil {
		return nil, err
	}

	seq := unfold(p.Values(), parity(policy.AtStart), parity(policy.AtEnd))
	M := len(seq)
	top, err := physics.HarmonicIndex(b, maxMode)
	if err != nil {
		return nil, err
	}
	if top >= M/2 {
		return nil, fmt.Errorf("%w: %v samples cannot resolve mode %v", physics.ErrInvalidConfig, len(p), maxMode)
	}

	bins := fft.FFTReal(seq)
	out := make([]ModeAmplitude, 0, maxMode)
	for n := 1; n <= maxMode; n++ {
		m, err := physics.HarmonicIndex(b, n)
		if err != nil {
			return nil, err
		}
		var a float64
		if form.Spatial == physics.Cos {
			a = real(bins[m]) * 2 / float64(M)
		} else {
			a = -imag(bins[m]) * 2 / float64(M)
		}
		out = append(out, ModeAmplitude{Mode: n, Index: m, Amplitude: a})
	}
	return out, nil
}

// Dominant returns the mode with the largest magnitude.
func Dominant(modes []ModeAmplitude) (ModeAmplitude, bool) {
	if len(modes) == 0 {
		return ModeAmplitude{}, false
	}
	best := modes[0]
	for _, m := range modes[1:] {
		if math.Abs(m.Amplitude) > math.Abs(best.Amplitude) {
			best = m
		}
	}
	return best, true
}

func parity(e physics.Edge) float64 {
	if e == physics.Node {
		return -1
	}
	return 1
}

// unfold extends samples over [0, L] to one 4L period.
func unfold(vs []float64, atStart, atEnd float64) []float64 {
	last := len(vs) - 1
	M := 4 * last
	seq := make([]float64, M)
	copy(seq, vs)
	for j := last + 1; j <= 2*last; j++ {
		seq[j] = atEnd * vs[2*last-j]
	}
	for j := 2*last + 1; j < M; j++ {
		seq[j] = atStart * seq[M-j]
	}
	return seq
}

func checkSpacing(p field.Profile) error {
	if len(p) < 2 {
		return fmt.Errorf("%w: need at least 2 samples, got %v", physics.ErrInvalidConfig, len(p))
	}
	dx := p[1].Position - p[0].Position
	if p[0].Position != 0 || !(dx > 0) {
		return fmt.Errorf("%w: profile must start at 0 and increase", physics.ErrInvalidInput)
	}
	for i, s := range p {
		if math.Abs(s.Position-float64(i)*dx) > 1e-6*dx {
			return fmt.Errorf("%w: uneven sample spacing at %v", physics.ErrInvalidInput, s.Position)
		}
	}
	return nil
}
