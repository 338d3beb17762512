// Package actuation turns a world-space target into steer, throttle and boost.
package actuation

import (
	"math"

	"github.com/zeusync/ballchaser/internal/core/controls"
	"github.com/zeusync/ballchaser/internal/core/geometry"
	"github.com/zeusync/ballchaser/internal/core/world"
)

const (
	DefaultSteeringGain            = 0.1
	DefaultCatchUpDistance         = 4.0
	DefaultCatchUpHeadingTolerance = 22.5

	// reverseAngle is the bearing past which the car backs up instead of turning around.
	reverseAngle = 90.0
)

type Options struct {
	BallRadius   float64
	SteeringGain float64
	// CatchUpDistance is in ball radii, measured on the ground plane.
	CatchUpDistance float64
	// CatchUpHeadingTolerance is in degrees.
	CatchUpHeadingTolerance float64
}

func DefaultOptions() Options {
	return Options{
		BallRadius:              92,
		SteeringGain:            DefaultSteeringGain,
		CatchUpDistance:         DefaultCatchUpDistance,
		CatchUpHeadingTolerance: DefaultCatchUpHeadingTolerance,
	}
}

type Translator struct {
	opts Options
}

func NewTranslator(opts Options) *Translator {
	return &Translator{opts: opts}
}

func (t *Translator) Options() Options { return t.opts }

// SteeringAngle is the bearing of target from the car in degrees, positive to the right.
func SteeringAngle(car world.Physics, target geometry.Vector3) float64 {
	return geometry.NormalizeAngleDegrees(
		geometry.AngleToTargetDegrees(car.Location, car.Orientation(), target))
}

// SteerFromAngle maps a bearing to steer and throttle. Targets more than 90
// degrees off the nose are reached in reverse with full opposite lock.
func SteerFromAngle(angle, gain float64) (steer, throttle float64) {
	switch {
	case angle > reverseAngle:
		return -1, -1
	case angle < -reverseAngle:
		return 1, -1
	default:
		return controls.Clamp(angle * gain), 1
	}
}

// CatchUpBoost reports whether the car is far from the ball and already
// pointed at the target.
func (t *Translator) CatchUpBoost(car world.Physics, target, ball geometry.Vector3) bool {
	if ball.FlatDist(car.Location) <= t.opts.CatchUpDistance*t.opts.BallRadius {
		return false
	}
	heading := car.Orientation().Heading()
	bearing := geometry.CompassBearing(car.Location, target)
	return math.Abs(geometry.AngleDifference(heading, bearing)) < t.opts.CatchUpHeadingTolerance
}

// Translate builds the drive command for one tick. boostHint is ORed into the
// catch-up decision; nothing boosts while reversing.
func (t *Translator) Translate(car world.Physics, target, ball geometry.Vector3, boostHint bool) controls.Command {
	steer, throttle := SteerFromAngle(SteeringAngle(car, target), t.opts.SteeringGain)

	cmd := controls.Command{
		Steer:    steer,
		Throttle: throttle,
		Boost:    boostHint || t.CatchUpBoost(car, target, ball),
	}
	if cmd.Throttle < 0 {
		cmd.Boost = false
	}
	return cmd
}
