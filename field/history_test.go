package field

import (
	"math"
	"testing"

	"github.com/colinrgodsey/wave-daemon/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryWindow(t *testing.T) {
	h := NewHistory(3)
	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.Points())

	h.Push(1, 10)
	h.Push(2, 20)
	assert.Equal(t, []Point{{1, 10}, {2, 20}}, h.Points())

	h.Push(3, 30)
	h.Push(4, 40)
	h.Push(5, 50)
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 3, h.Cap())
	assert.Equal(t, uint64(5), h.Total())
	assert.Equal(t, []Point{{3, 30}, {4, 40}, {5, 50}}, h.Points())

	h.Reset()
	assert.Equal(t, 0, h.Len())
	h.Push(6, 60)
	assert.Equal(t, []Point{{6, 60}}, h.Points())
}

func TestHistoryMinimumSize(t *testing.T) {
	h := NewHistory(0)
	h.Push(1, 1)
	h.Push(2, 2)
	assert.Equal(t, []Point{{2, 2}}, h.Points())
}

func TestObservationSeries(t *testing.T) {
	tw := Traveling{
		Field:      physics.Electric,
		Amplitude:  2,
		Wavelength: 4,
		Frequency:  0.25,
		Span:       10,
	}
	pts, err := ObservationSeries(tw, 1, 2, 0.5, 4)
	require.NoError(t, err)
	require.Len(t, pts, 4)

	for i, p := range pts {
		time := 2 - float64(i)*0.5
		assert.Equal(t, time, p.Time)
		assert.InDelta(t, 2*math.Sin(math.Pi/2*1-math.Pi/2*time), p.Value, 1e-12)
	}

	_, err = ObservationSeries(tw, 1, 2, 0, 4)
	assert.ErrorIs(t, err, physics.ErrInvalidConfig)
	_, err = ObservationSeries(tw, 1, 2, 0.5, 0)
	assert.ErrorIs(t, err, physics.ErrInvalidConfig)
}
