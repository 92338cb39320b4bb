// Package readout formats derived quantities into the short text lines shown
// next to the wave.
package readout

import (
	"fmt"
	"math"
	"strconv"

	"github.com/colinrgodsey/wave-daemon/physics"
	"github.com/dustin/go-humanize"
)

// Scientific formats v as a two decimal mantissa and a power of ten,
// e.g. "4.43×10^-18 J/m³".
func Scientific(v float64, unit string) string {
	switch {
	case v == 0:
		return "0 " + unit
	case math.IsNaN(v) || math.IsInf(v, 0):
		return fmt.Sprintf("%v %v", v, unit)
	}
	exp := int(math.Floor(math.Log10(math.Abs(v))))
	mantissa := v / math.Pow(10, float64(exp))
	// rounding can carry into the next decade
	if s := strconv.FormatFloat(math.Abs(mantissa), 'f', 2, 64); s == "10.00" {
		mantissa /= 10
		exp++
	}
	return fmt.Sprintf("%.2f×10^%d %v", mantissa, exp, unit)
}

// Frequency formats hz with an SI prefix, e.g. "75 MHz".
func Frequency(hz float64) string {
	return humanize.SIWithDigits(hz, 2, "Hz")
}

// Length formats a length in cavity units with two decimals.
func Length(l float64) string {
	return strconv.FormatFloat(l, 'f', 2, 64)
}

// Resonance returns the readout lines for mode n.
func Resonance(info physics.ResonanceInfo, n int) []string {
	return []string{
		"f1 = " + Frequency(info.FundamentalFrequency),
		fmt.Sprintf("f%d = %v", n, Frequency(info.ModeFrequency)),
		"λ1 = " + Length(info.FundamentalWavelength),
		fmt.Sprintf("λ%d = %v", n, Length(info.ModeWavelength)),
	}
}

// Wave returns the readout lines for a single mode's wave parameters,
// headed by the harmonic they belong to.
func Wave(info physics.WaveInfo) []string {
	return []string{
		fmt.Sprintf("h%d = %v", info.Harmonic, Frequency(info.Omega/(2*math.Pi))),
		fmt.Sprintf("λ = %.2f", info.Wavelength),
		fmt.Sprintf("k = %.2f rad/m", info.K),
		fmt.Sprintf("ω = %.2f rad/s", info.Omega),
	}
}

// Energy returns the readout lines for an energy calculation.
func Energy(info physics.EnergyInfo) []string {
	return []string{
		"B0 = " + Scientific(info.PeakB, "T"),
		"uE = " + Scientific(info.ElectricDensity, "J/m³"),
		"uB = " + Scientific(info.MagneticDensity, "J/m³"),
		"u = " + Scientific(info.TotalDensity, "J/m³"),
		"S = " + Scientific(info.PoyntingMagnitude, "W/m²"),
		"P = " + Scientific(info.RadiationPressure, "Pa"),
	}
}

// Nodes returns one line listing marker positions of each kind.
func Nodes(f physics.Field, markers []physics.Marker) string {
	var nodes, antinodes []string
	for _, m := range markers {
		if m.Kind == physics.Node {
			nodes = append(nodes, Length(m.Position))
		} else {
			antinodes = append(antinodes, Length(m.Position))
		}
	}
	return fmt.Sprintf("%v nodes=%v antinodes=%v", f, nodes, antinodes)
}

// Count formats large counters with separators.
func Count(n uint64) string {
	return humanize.Comma(int64(n))
}
