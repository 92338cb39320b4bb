package physics

import "fmt"

// EnergyInfo holds the energy densities and flux of a plane wave.
type EnergyInfo struct {
	PeakB             float64 `json:"peak-b"`
	ElectricDensity   float64 `json:"electric-density"`
	MagneticDensity   float64 `json:"magnetic-density"`
	TotalDensity      float64 `json:"total-density"`
	PoyntingMagnitude float64 `json:"poynting"`
	RadiationPressure float64 `json:"radiation-pressure"`
}

// ComputeEnergy derives the energy readouts of a wave with peak electric
// field peakE, using E = vB for the magnetic peak.
func ComputeEnergy(peakE, v, ε0, μ0 float64) (EnergyInfo, error) {
	switch {
	case !isFinite(peakE) || peakE < 0:
		return EnergyInfo{}, fmt.Errorf("%w: peak E %v", ErrInvalidInput, peakE)
	case !isFinite(v) || v <= 0:
		return EnergyInfo{}, fmt.Errorf("%w: wave speed %v", ErrInvalidInput, v)
	case !isFinite(ε0) || ε0 <= 0, !isFinite(μ0) || μ0 <= 0:
		return EnergyInfo{}, fmt.Errorf("%w: epsilon0 %v, mu0 %v", ErrInvalidInput, ε0, μ0)
	}

	peakB := peakE / v
	uE := 0.5 * ε0 * peakE * peakE
	uB := 0.5 * peakB * peakB / μ0
	s := peakE * peakB / μ0

	return EnergyInfo{
		PeakB:             peakB,
		ElectricDensity:   uE,
		MagneticDensity:   uB,
		TotalDensity:      uE + uB,
		PoyntingMagnitude: s,
		RadiationPressure: s / v,
	}, nil
}

// Energy is ComputeEnergy using the medium in c.
func (c Constants) Energy(peakE float64) (EnergyInfo, error) {
	return ComputeEnergy(peakE, c.WaveSpeed, c.Epsilon0, c.Mu0)
}
