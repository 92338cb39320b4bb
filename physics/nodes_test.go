package physics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerateNodesElectric(t *testing.T) {
	pairs, err := EnumerateNodes(Electric, 2, 800)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	assert.InDelta(t, 0, pairs[0].Node, 1e-9)
	assert.InDelta(t, 400, pairs[1].Node, 1e-9)
	assert.InDelta(t, 200, pairs[0].Antinode, 1e-9)
	assert.InDelta(t, 600, pairs[1].Antinode, 1e-9)
}

func TestEnumerateNodesMagneticSwapped(t *testing.T) {
	e, err := EnumerateNodes(Electric, 3, 900)
	require.NoError(t, err)
	b, err := EnumerateNodes(Magnetic, 3, 900)
	require.NoError(t, err)
	require.Len(t, b, 3)

	for i := range e {
		assert.InDelta(t, e[i].Node, b[i].Antinode, 1e-9)
		assert.InDelta(t, e[i].Antinode, b[i].Node, 1e-9)
	}
}

func TestNodesForOpenClosed(t *testing.T) {
	// quarter-wave: E antinode at the open end, node at the closed end
	pairs, err := NodesFor(OpenClosed, Electric, 2, 3)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	assert.InDelta(t, 0, pairs[0].Antinode, 1e-9)
	assert.InDelta(t, 1, pairs[0].Node, 1e-9)
	assert.InDelta(t, 2, pairs[1].Antinode, 1e-9)
	assert.InDelta(t, 3, pairs[1].Node, 1e-9)
}

func TestMarkersOrdered(t *testing.T) {
	pairs, err := NodesFor(OpenOpen, Electric, 3, 600)
	require.NoError(t, err)
	markers := Markers(pairs)
	require.Len(t, markers, 6)

	assert.Equal(t, Antinode, markers[0].Kind)
	for i := 1; i < len(markers); i++ {
		assert.Less(t, markers[i-1].Position, markers[i].Position)
		assert.NotEqual(t, markers[i-1].Kind, markers[i].Kind)
	}
}

func TestEnumerateNodesErrors(t *testing.T) {
	_, err := EnumerateNodes(Electric, 0, 800)
	assert.True(t, errors.Is(err, ErrInvalidMode))

	_, err = EnumerateNodes(Magnetic, 1, 0)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}
