package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/ballchaser/internal/core/geometry"
	"github.com/zeusync/ballchaser/internal/core/world"
)

func at(x, y, z float64) world.Physics {
	return world.Physics{Location: geometry.Vec(x, y, z)}
}

func TestField_Goals(t *testing.T) {
	f := NewField(DefaultGoalDistance)

	blue := f.Goals(world.TeamBlue)
	assert.Equal(t, geometry.Vec(0, -5120, 0), blue.Own)
	assert.Equal(t, geometry.Vec(0, 5120, 0), blue.Opponent)

	orange := f.Goals(world.TeamOrange)
	assert.Equal(t, blue.Own, orange.Opponent)
	assert.Equal(t, blue.Opponent, orange.Own)

	assert.Equal(t, blue, f.Goals(world.Team(5)))
}

func TestClassify(t *testing.T) {
	goals := NewField(DefaultGoalDistance).Goals(world.TeamBlue)

	tests := []struct {
		name string
		ball geometry.Vector3
		want Mode
	}{
		{"equidistant ties to offense", geometry.Vec(0, 0, 0), ModeOffense},
		{"inside tie margin", geometry.Vec(0, -40, 0), ModeOffense},
		{"own half beyond margin", geometry.Vec(0, -200, 0), ModeDefense},
		{"deep in own half", geometry.Vec(1500, -4000, 300), ModeDefense},
		{"attacking half", geometry.Vec(-800, 2500, 92), ModeOffense},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(goals, tt.ball, DefaultBallRadius))
		})
	}
}

func TestSelector_TeamsAreMirrored(t *testing.T) {
	s := NewSelector(DefaultOptions())
	ball := at(0, 3000, 92)
	car := at(0, 0, 17)

	assert.Equal(t, ModeOffense, s.Decide(world.TeamBlue, car, ball).Mode)
	assert.Equal(t, ModeDefense, s.Decide(world.TeamOrange, car, ball).Mode)
}

func TestOffenseTarget_OnBallSurface(t *testing.T) {
	goal := geometry.Vec(0, 5120, 0)
	balls := []geometry.Vector3{
		geometry.Vec(0, 0, 92),
		geometry.Vec(2500, 3000, 400),
		geometry.Vec(-3000, -1000, 92),
		goal,
	}
	cars := []geometry.Vector3{
		geometry.Vec(0, -2000, 17),
		geometry.Vec(3000, 4500, 17),
		geometry.Vec(-100, 100, 0),
		geometry.Vec(0, 5120, 0),
	}
	for _, ball := range balls {
		for _, car := range cars {
			target, aim := OffenseTarget(car, ball, goal, DefaultBallRadius)
			assert.InDelta(t, DefaultBallRadius, target.Dist(ball), 1e-6, "car %v ball %v", car, ball)
			if ball != goal {
				assert.InDelta(t, DefaultBallRadius, aim.Dist(ball), 1e-6)
			}
		}
	}
}

func TestOffenseTarget_SwingsAwayFromGoal(t *testing.T) {
	// car level with the ball on its +x side; the target sits on the far side from the goal
	goal := geometry.Vec(0, 5120, 0)
	ball := geometry.Vec(0, 0, 92)
	target, aim := OffenseTarget(geometry.Vec(1000, 0, 92), ball, goal, DefaultBallRadius)

	assert.Less(t, aim.Y, ball.Y)
	assert.Less(t, target.Y, ball.Y)
	assert.Less(t, target.X, 0.0, "blend overshoots the aim point away from the car")
}

func TestDefenseTarget(t *testing.T) {
	own := geometry.Vec(0, -5120, 0)
	ball := geometry.Vec(0, -1000, 92)
	target := DefenseTarget(ball, own, DefaultBallRadius)

	assert.InDelta(t, 0.9*DefaultBallRadius, target.Dist(ball), 1e-9)
	assert.Less(t, target.Y, ball.Y)

	assert.Equal(t, own, DefenseTarget(own, own, DefaultBallRadius))
}

func TestSelector_StrikeDecision(t *testing.T) {
	s := NewSelector(DefaultOptions())

	d := s.Decide(world.TeamBlue, at(500, -1500, 17), at(200, 1000, 92))
	assert.Equal(t, ModeOffense, d.Mode)
	assert.Equal(t, PhaseStrike, d.Phase)
	assert.InDelta(t, DefaultBallRadius, d.Target.Dist(geometry.Vec(200, 1000, 92)), 1e-6)
	assert.False(t, d.Kickoff)

	d = s.Decide(world.TeamBlue, at(500, -1500, 17), at(200, -3000, 92))
	assert.Equal(t, ModeDefense, d.Mode)
	assert.Equal(t, PhaseDefend, d.Phase)
	assert.Equal(t, geometry.Vector3{}, d.AimPoint)
}

func TestIsKickoff(t *testing.T) {
	ball := at(0, 0, 92)
	assert.True(t, IsKickoff(ball, DefaultBallRadius, 0.1, 0.1))

	moving := ball
	moving.Velocity = geometry.Vec(0, 0, 5)
	assert.False(t, IsKickoff(moving, DefaultBallRadius, 0.1, 0.1))

	assert.False(t, IsKickoff(at(10, 0, 92), DefaultBallRadius, 0.1, 0.1))
}

func TestSelector_KickoffFlag(t *testing.T) {
	d := NewSelector(DefaultOptions()).Decide(world.TeamOrange, at(-2048, 2560, 17), at(0, 0, 92))
	assert.True(t, d.Kickoff)

	opts := DefaultOptions()
	opts.Profile = ProfileLineUp
	d = NewSelector(opts).Decide(world.TeamOrange, at(-2048, 2560, 17), at(0, 0, 92))
	assert.False(t, d.Kickoff, "line-up profile has no kickoff detection")
}

func TestSelector_ModeHold(t *testing.T) {
	opts := DefaultOptions()
	opts.ModeHoldTicks = 3
	s := NewSelector(opts)

	car := at(0, 0, 17)
	attack := at(0, 2000, 92)
	defend := at(0, -2000, 92)

	require.Equal(t, ModeOffense, s.Decide(world.TeamBlue, car, attack).Mode)
	assert.Equal(t, ModeOffense, s.Decide(world.TeamBlue, car, defend).Mode)
	assert.Equal(t, ModeOffense, s.Decide(world.TeamBlue, car, defend).Mode)
	assert.Equal(t, ModeDefense, s.Decide(world.TeamBlue, car, defend).Mode)

	// a single disagreeing tick resets the count
	assert.Equal(t, ModeDefense, s.Decide(world.TeamBlue, car, attack).Mode)
	assert.Equal(t, ModeDefense, s.Decide(world.TeamBlue, car, defend).Mode)
	assert.Equal(t, ModeDefense, s.Decide(world.TeamBlue, car, attack).Mode)

	s.Reset()
	assert.Equal(t, ModeOffense, s.Decide(world.TeamBlue, car, attack).Mode)
}

func TestSelector_NoHoldFlipsEveryTick(t *testing.T) {
	s := NewSelector(DefaultOptions())
	car := at(0, 0, 17)
	for i := 0; i < 4; i++ {
		assert.Equal(t, ModeOffense, s.Decide(world.TeamBlue, car, at(0, 100, 92)).Mode)
		assert.Equal(t, ModeDefense, s.Decide(world.TeamBlue, car, at(0, -100, 92)).Mode)
	}
}

func TestSelector_LineUpProfile(t *testing.T) {
	opts := DefaultOptions()
	opts.Profile = ProfileLineUp
	s := NewSelector(opts)
	ball := at(0, 0, 92)

	d := s.Decide(world.TeamBlue, at(0, -300, 17), ball)
	assert.Equal(t, PhaseShoot, d.Phase)

	d = s.Decide(world.TeamBlue, at(2000, 0, 17), ball)
	assert.Equal(t, PhaseLineUp, d.Phase)
	assert.InDelta(t, 5*DefaultBallRadius-100, d.Target.Dist(ball.Location), 1e-9)
	assert.Less(t, d.Target.Y, 0.0)

	deep := at(0, -3000, 92)
	d = s.Decide(world.TeamBlue, at(0, -3200, 17), deep)
	assert.Equal(t, ModeDefense, d.Mode)
	assert.Equal(t, PhaseClear, d.Phase)
	assert.Equal(t, deep.Location, d.Target)

	d = s.Decide(world.TeamBlue, at(0, -2800, 17), deep)
	assert.Equal(t, PhaseDefend, d.Phase)
	assert.InDelta(t, 0.9*2*DefaultBallRadius, d.Target.Dist(deep.Location), 1e-9)
}

func TestParseProfile(t *testing.T) {
	p, err := ParseProfile("")
	require.NoError(t, err)
	assert.Equal(t, ProfileStrike, p)

	p, err = ParseProfile("lineup")
	require.NoError(t, err)
	assert.Equal(t, ProfileLineUp, p)

	_, err = ParseProfile("turtle")
	assert.ErrorIs(t, err, ErrUnknownProfile)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "offense", ModeOffense.String())
	assert.Equal(t, "defense", ModeDefense.String())
	assert.Equal(t, "unknown", Mode(9).String())
}
