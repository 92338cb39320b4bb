package readout

import (
	"testing"

	"github.com/colinrgodsey/wave-daemon/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScientific(t *testing.T) {
	assert.Equal(t, "1.50×10^-3 J", Scientific(1.5e-3, "J"))
	assert.Equal(t, "3.34×10^-12 T", Scientific(3.3356e-12, "T"))
	assert.Equal(t, "-2.00×10^5 Pa", Scientific(-2e5, "Pa"))
	assert.Equal(t, "1.00×10^1 m", Scientific(9.999, "m"))
	assert.Equal(t, "0 J/m³", Scientific(0, "J/m³"))
}

func TestFrequency(t *testing.T) {
	assert.Equal(t, "75 MHz", Frequency(7.5e7))
	assert.Equal(t, "150 MHz", Frequency(1.5e8))
	assert.Equal(t, "2.5 kHz", Frequency(2500))
}

func TestResonanceLines(t *testing.T) {
	info, err := physics.ComputeResonance(physics.OpenClosed, 1, 2, 3e8)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"f1 = 75 MHz",
		"f2 = 150 MHz",
		"λ1 = 4.00",
		"λ2 = 2.00",
	}, Resonance(info, 2))
}

func TestWaveLines(t *testing.T) {
	info, err := physics.ComputeWave(physics.OpenClosed, 1, 2, 3e8)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"h3 = 225 MHz",
		"λ = 1.33",
		"k = 4.71 rad/m",
		"ω = 1413716694.12 rad/s",
	}, Wave(info))
}

func TestEnergyLines(t *testing.T) {
	info, err := physics.ComputeEnergy(1e-3, 3e8, 8.85e-12, 1.25663706212e-6)
	require.NoError(t, err)
	lines := Energy(info)
	require.Len(t, lines, 6)
	assert.Equal(t, "B0 = 3.33×10^-12 T", lines[0])
}

func TestNodesLine(t *testing.T) {
	pairs, err := physics.EnumerateNodes(physics.Electric, 2, 800)
	require.NoError(t, err)
	assert.Equal(t, "E nodes=[0.00 400.00] antinodes=[200.00 600.00]",
		Nodes(physics.Electric, physics.Markers(pairs)))
}

func TestCount(t *testing.T) {
	assert.Equal(t, "1,234,567", Count(1234567))
}
