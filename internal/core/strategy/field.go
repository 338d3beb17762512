package strategy

import (
	"github.com/zeusync/ballchaser/internal/core/geometry"
	"github.com/zeusync/ballchaser/internal/core/world"
)

const (
	DefaultBallRadius   = 92.0
	DefaultGoalDistance = 5120.0
)

// Goals is the pair of goal centres seen from one team.
type Goals struct {
	Own      geometry.Vector3
	Opponent geometry.Vector3
}

// Field maps a team to its goals. Blue defends -y and attacks +y.
type Field struct {
	byTeam [2]Goals
}

func NewField(goalDistance float64) Field {
	blue := geometry.Vec(0, -goalDistance, 0)
	orange := geometry.Vec(0, goalDistance, 0)
	return Field{byTeam: [2]Goals{
		world.TeamBlue:   {Own: blue, Opponent: orange},
		world.TeamOrange: {Own: orange, Opponent: blue},
	}}
}

// Goals returns the goal pair for team. Anything that is not orange is
// treated as blue.
func (f Field) Goals(team world.Team) Goals {
	if team == world.TeamOrange {
		return f.byTeam[world.TeamOrange]
	}
	return f.byTeam[world.TeamBlue]
}
