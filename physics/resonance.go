package physics

import "math"

// ResonanceInfo holds the resonant frequencies and wavelengths of a cavity.
type ResonanceInfo struct {
	FundamentalFrequency  float64 `json:"fundamental-frequency"`
	ModeFrequency         float64 `json:"mode-frequency"`
	FundamentalWavelength float64 `json:"fundamental-wavelength"`
	ModeWavelength        float64 `json:"mode-wavelength"`
}

// WaveInfo holds the wave parameters of a single cavity mode. Harmonic is
// ω/ω₁, the multiple of the fundamental the mode's wave number belongs to.
type WaveInfo struct {
	Harmonic      int     `json:"harmonic"`
	K             float64 `json:"k"`
	Omega         float64 `json:"omega"`
	Wavelength    float64 `json:"wavelength"`
	PhaseVelocity float64 `json:"phase-velocity"`
}

// ComputeResonance derives the fundamental and mode n resonances for a
// cavity of length l, with waves traveling at v.
func ComputeResonance(b Boundary, l float64, n int, v float64) (ResonanceInfo, error) {
	if err := checkMode(n); err != nil {
		return ResonanceInfo{}, err
	}
	if err := checkSpeed(v); err != nil {
		return ResonanceInfo{}, err
	}
	λ1, err := FundamentalWavelength(b, l)
	if err != nil {
		return ResonanceInfo{}, err
	}
	f1 := v / λ1
	return ResonanceInfo{
		FundamentalFrequency:  f1,
		ModeFrequency:         f1 * float64(n),
		FundamentalWavelength: λ1,
		ModeWavelength:        λ1 / float64(n),
	}, nil
}

// ComputeWave derives k, ω=kv and λ=2π/k for mode n from WaveNumber. For
// symmetric cavities this is the n-th harmonic, so it agrees with
// ComputeResonance. Open-closed cavities only hold odd quarter waves: mode n
// is the (2n-1)-th harmonic here, while ComputeResonance keeps the n·f₁
// series.
func ComputeWave(b Boundary, l float64, n int, v float64) (WaveInfo, error) {
	if err := checkSpeed(v); err != nil {
		return WaveInfo{}, err
	}
	k, err := WaveNumber(b, n, l)
	if err != nil {
		return WaveInfo{}, err
	}
	m, err := HarmonicIndex(b, n)
	if err != nil {
		return WaveInfo{}, err
	}
	m1, err := HarmonicIndex(b, 1)
	if err != nil {
		return WaveInfo{}, err
	}
	ω := k * v
	return WaveInfo{
		Harmonic:      m / m1,
		K:             k,
		Omega:         ω,
		Wavelength:    2 * math.Pi / k,
		PhaseVelocity: ω / k,
	}, nil
}
