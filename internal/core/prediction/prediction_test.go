package prediction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/ballchaser/internal/core/geometry"
	"github.com/zeusync/ballchaser/internal/core/world"
)

func slice(t, x float64) world.PredictionSlice {
	return world.PredictionSlice{GameSeconds: t, Physics: world.Physics{Location: geometry.Vec(x, 0, 92)}}
}

func TestTable_FindSliceAtTime(t *testing.T) {
	tab := NewTable([]world.PredictionSlice{slice(10.5, 3), slice(10, 1), slice(10.25, 2), slice(11, 4)})
	assert.Equal(t, 4, tab.Len())

	s, ok := tab.FindSliceAtTime(10.25)
	require.True(t, ok)
	assert.Equal(t, 2.0, s.Physics.Location.X)

	s, ok = tab.FindSliceAtTime(10.3)
	require.True(t, ok)
	assert.Equal(t, 3.0, s.Physics.Location.X)

	s, ok = tab.FindSliceAtTime(10)
	require.True(t, ok)
	assert.Equal(t, 1.0, s.Physics.Location.X)

	_, ok = tab.FindSliceAtTime(9.9)
	assert.False(t, ok)
	_, ok = tab.FindSliceAtTime(11.01)
	assert.False(t, ok)
}

func TestTable_Empty(t *testing.T) {
	_, ok := NewTable(nil).FindSliceAtTime(0)
	assert.False(t, ok)
}
