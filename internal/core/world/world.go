// Package world holds the read-only game state the host hands the agent each tick.
package world

import (
	"fmt"

	"github.com/zeusync/ballchaser/internal/core/geometry"
)

// Team identifies which goal a car defends.
type Team int

const (
	TeamBlue   Team = 0
	TeamOrange Team = 1
)

func (t Team) String() string {
	switch t {
	case TeamBlue:
		return "blue"
	case TeamOrange:
		return "orange"
	default:
		return fmt.Sprintf("team(%d)", int(t))
	}
}

// Valid reports whether t is one of the two playing teams.
func (t Team) Valid() bool {
	return t == TeamBlue || t == TeamOrange
}

// Physics is the pose of a body for one tick.
type Physics struct {
	Location        geometry.Vector3 `json:"location"`
	Velocity        geometry.Vector3 `json:"velocity"`
	Rotation        geometry.Rotator `json:"rotation"`
	AngularVelocity geometry.Vector3 `json:"angular_velocity"`
}

// Orientation derives the body basis from the rotation.
func (p Physics) Orientation() geometry.Orientation {
	return geometry.NewOrientation(p.Rotation)
}

// Speed is the length of the velocity.
func (p Physics) Speed() float64 {
	return p.Velocity.Length()
}

type CarState struct {
	Name     string  `json:"name"`
	Team     Team    `json:"team"`
	Physics  Physics `json:"physics"`
	Boost    float64 `json:"boost"`
	OnGround bool    `json:"on_ground"`
}

type BallState struct {
	Physics Physics `json:"physics"`
}

// BoostPadState is the live status of one pad, indexed like FieldInfo.BoostPads.
type BoostPadState struct {
	IsActive bool    `json:"is_active"`
	Timer    float64 `json:"timer"`
}

// PredictionSlice is one sample of the host's ball trajectory prediction.
type PredictionSlice struct {
	GameSeconds float64 `json:"game_seconds"`
	Physics     Physics `json:"physics"`
}

// Snapshot is everything the host reports for a single tick.
// It is owned by the caller; the agent does not keep it past the tick.
type Snapshot struct {
	SecondsElapsed float64           `json:"seconds_elapsed"`
	Cars           []CarState        `json:"cars"`
	Ball           BallState         `json:"ball"`
	BoostPads      []BoostPadState   `json:"boost_pads,omitempty"`
	BallPrediction []PredictionSlice `json:"ball_prediction,omitempty"`
}

// Car returns the car at index.
func (s *Snapshot) Car(index int) (CarState, error) {
	if index < 0 || index >= len(s.Cars) {
		return CarState{}, fmt.Errorf("%w: index %d, %d cars", ErrCarIndexOutOfRange, index, len(s.Cars))
	}
	return s.Cars[index], nil
}

type BoostPad struct {
	Location    geometry.Vector3 `json:"location"`
	IsFullBoost bool             `json:"is_full_boost"`
}

// FieldInfo is the static arena description sent once at match start.
type FieldInfo struct {
	BoostPads []BoostPad `json:"boost_pads"`
}
