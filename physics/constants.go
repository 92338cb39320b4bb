package physics

import (
	"fmt"
	"math"
)

// CODATA 2018 values.
const (
	SpeedOfLight       = 299792458.0      // m/s
	VacuumPermittivity = 8.8541878128e-12 // F/m
	VacuumPermeability = 1.25663706212e-6 // H/m

	// Eps is the distance from a wall under which a sample takes the
	// boundary-forced value instead of the analytic one.
	Eps = 1e-10
)

// Constants groups the medium constants used by the calculators.
type Constants struct {
	WaveSpeed float64 `json:"wave-speed" yaml:"wave-speed"`
	Epsilon0  float64 `json:"epsilon0" yaml:"epsilon0"`
	Mu0       float64 `json:"mu0" yaml:"mu0"`
}

// Vacuum returns the constants of free space.
func Vacuum() Constants {
	return Constants{
		WaveSpeed: SpeedOfLight,
		Epsilon0:  VacuumPermittivity,
		Mu0:       VacuumPermeability,
	}
}

func (c Constants) Validate() error {
	if err := checkSpeed(c.WaveSpeed); err != nil {
		return err
	}
	if !(c.Epsilon0 > 0) || !(c.Mu0 > 0) || isInf(c.Epsilon0) || isInf(c.Mu0) {
		return fmt.Errorf("%w: epsilon0 %v, mu0 %v", ErrInvalidConfig, c.Epsilon0, c.Mu0)
	}
	return nil
}

func isInf(x float64) bool {
	return math.IsInf(x, 0)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
