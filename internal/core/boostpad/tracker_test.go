package boostpad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/ballchaser/internal/core/geometry"
	"github.com/zeusync/ballchaser/internal/core/world"
)

func field() world.FieldInfo {
	return world.FieldInfo{BoostPads: []world.BoostPad{
		{Location: geometry.Vec(3584, 0, 73), IsFullBoost: true},
		{Location: geometry.Vec(0, -4240, 70)},
		{Location: geometry.Vec(-3584, 0, 73), IsFullBoost: true},
		{Location: geometry.Vec(-1792, -4184, 70)},
	}}
}

func TestPadTracker_InitializeAndUpdate(t *testing.T) {
	tr := NewPadTracker()
	assert.False(t, tr.Initialized())
	assert.Empty(t, tr.Pads())

	tr.Initialize(field())
	require.True(t, tr.Initialized())
	require.Len(t, tr.Pads(), 4)
	for _, p := range tr.Pads() {
		assert.False(t, p.IsActive)
	}
	assert.Len(t, tr.FullBoosts(), 2)

	tr.Update(&world.Snapshot{BoostPads: []world.BoostPadState{
		{IsActive: true},
		{IsActive: false, Timer: 2.5},
		{IsActive: true},
		{IsActive: true},
		{IsActive: true}, // unknown pad
	}})
	pads := tr.Pads()
	assert.True(t, pads[0].IsActive)
	assert.False(t, pads[1].IsActive)
	assert.Equal(t, 2.5, pads[1].Timer)

	tr.Update(nil)
	assert.True(t, tr.Pads()[0].IsActive)
}

func TestPadTracker_PadsIsACopy(t *testing.T) {
	tr := NewPadTracker()
	tr.Initialize(field())
	pads := tr.Pads()
	pads[0].IsActive = true
	assert.False(t, tr.Pads()[0].IsActive)
}

func TestPadTracker_NearestActive(t *testing.T) {
	tr := NewPadTracker()
	tr.Initialize(field())

	_, ok := tr.NearestActive(geometry.Zero, false)
	assert.False(t, ok)

	tr.Update(&world.Snapshot{BoostPads: []world.BoostPadState{
		{IsActive: true}, {IsActive: true}, {IsActive: false}, {IsActive: true},
	}})

	p, ok := tr.NearestActive(geometry.Vec(-3000, -500, 17), false)
	require.True(t, ok)
	assert.Equal(t, geometry.Vec(-1792, -4184, 70), p.Location)

	p, ok = tr.NearestActive(geometry.Vec(-3000, -500, 17), true)
	require.True(t, ok)
	assert.Equal(t, geometry.Vec(3584, 0, 73), p.Location, "left full pad is inactive")
}
