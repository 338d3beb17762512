// Package strategy decides between attacking and defending and picks the
// world-space point the car should drive at.
package strategy

import (
	"fmt"
	"math"

	"github.com/zeusync/ballchaser/internal/core/geometry"
	"github.com/zeusync/ballchaser/internal/core/world"
)

// Mode is the high-level intent for a tick.
type Mode int

const (
	ModeOffense Mode = iota
	ModeDefense
)

func (m Mode) String() string {
	switch m {
	case ModeOffense:
		return "offense"
	case ModeDefense:
		return "defense"
	default:
		return "unknown"
	}
}

// Phase names the concrete target rule that produced a Decision.
type Phase string

const (
	PhaseStrike Phase = "strike"
	PhaseShoot  Phase = "shoot"
	PhaseLineUp Phase = "line-up"
	PhaseClear  Phase = "clear"
	PhaseDefend Phase = "defend"
)

// Profile selects the target synthesis rules.
type Profile string

const (
	// ProfileStrike always aims at the far side of the ball and detects kickoffs.
	ProfileStrike Profile = "strike"
	// ProfileLineUp drives to a line-up point before shooting and clears
	// straight through the ball when well placed on defense.
	ProfileLineUp Profile = "lineup"
)

func ParseProfile(s string) (Profile, error) {
	switch Profile(s) {
	case ProfileStrike, "":
		return ProfileStrike, nil
	case ProfileLineUp:
		return ProfileLineUp, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownProfile, s)
	}
}

type Options struct {
	Profile      Profile
	BallRadius   float64
	GoalDistance float64
	// KickoffPositionTolerance is in ball radii from the centre spot.
	KickoffPositionTolerance float64
	KickoffSpeedTolerance    float64
	// ModeHoldTicks debounces mode changes. Zero switches immediately.
	ModeHoldTicks int
}

func DefaultOptions() Options {
	return Options{
		Profile:                  ProfileStrike,
		BallRadius:               DefaultBallRadius,
		GoalDistance:             DefaultGoalDistance,
		KickoffPositionTolerance: 0.1,
		KickoffSpeedTolerance:    0.1,
	}
}

// Decision is the output of one strategy pass.
type Decision struct {
	Mode   Mode
	Phase  Phase
	Target geometry.Vector3
	// Kickoff recommends boosting regardless of mode.
	Kickoff bool

	// NearPoint is the point on the ball closest to the car.
	NearPoint geometry.Vector3
	// AimPoint is the point on the ball opposite the opponent goal. Zero on defense.
	AimPoint geometry.Vector3

	BallToOpponentGoal float64
	BallToOwnGoal      float64
}

// Selector turns a car and ball pose into a Decision. It only keeps state
// when ModeHoldTicks is set.
type Selector struct {
	opts  Options
	field Field

	held    Mode
	hasHeld bool
	pending int
}

func NewSelector(opts Options) *Selector {
	if opts.BallRadius <= 0 {
		opts.BallRadius = DefaultBallRadius
	}
	if opts.GoalDistance <= 0 {
		opts.GoalDistance = DefaultGoalDistance
	}
	if opts.Profile == "" {
		opts.Profile = ProfileStrike
	}
	return &Selector{opts: opts, field: NewField(opts.GoalDistance)}
}

func (s *Selector) Options() Options { return s.opts }

func (s *Selector) Field() Field { return s.field }

// Reset forgets the held mode.
func (s *Selector) Reset() {
	s.hasHeld = false
	s.pending = 0
}

// Classify is the raw per-tick mode rule: offense when the ball is closer to
// the opponent goal than to the own goal, with one ball radius in favour of
// offense.
func Classify(goals Goals, ball geometry.Vector3, radius float64) Mode {
	if goals.Opponent.Dist(ball)-radius < goals.Own.Dist(ball) {
		return ModeOffense
	}
	return ModeDefense
}

// IsKickoff reports a stationary ball on the centre spot.
func IsKickoff(ball world.Physics, radius, positionTolerance, speedTolerance float64) bool {
	return ball.Location.Flat().Length() < positionTolerance*radius &&
		ball.Speed() < speedTolerance
}

// Decide runs one strategy pass for a car of the given team.
func (s *Selector) Decide(team world.Team, car, ball world.Physics) Decision {
	goals := s.field.Goals(team)
	r := s.opts.BallRadius
	carLoc, ballLoc := car.Location, ball.Location

	d := Decision{
		Mode:               s.hold(Classify(goals, ballLoc, r)),
		NearPoint:          NearPoint(carLoc, ballLoc, r),
		BallToOpponentGoal: goals.Opponent.Dist(ballLoc),
		BallToOwnGoal:      goals.Own.Dist(ballLoc),
	}

	switch s.opts.Profile {
	case ProfileLineUp:
		s.decideLineUp(&d, goals, carLoc, ballLoc)
	default:
		s.decideStrike(&d, goals, carLoc, ballLoc)
		d.Kickoff = IsKickoff(ball, r, s.opts.KickoffPositionTolerance, s.opts.KickoffSpeedTolerance)
	}
	return d
}

func (s *Selector) decideStrike(d *Decision, goals Goals, car, ball geometry.Vector3) {
	r := s.opts.BallRadius
	if d.Mode == ModeOffense {
		d.Phase = PhaseStrike
		d.Target, d.AimPoint = OffenseTarget(car, ball, goals.Opponent, r)
		return
	}
	d.Phase = PhaseDefend
	d.Target = DefenseTarget(ball, goals.Own, r)
}

func (s *Selector) decideLineUp(d *Decision, goals Goals, car, ball geometry.Vector3) {
	r := s.opts.BallRadius
	dist := car.Dist(ball)
	carToBall := geometry.CompassBearing(car, ball)
	low := ball.Z < 2*r

	if d.Mode == ModeOffense {
		goalToBall := ball.Sub(goals.Opponent).Normalized()
		lineUp := 5 * r
		shotAngle := math.Abs(geometry.AngleDifference(geometry.CompassBearing(ball, goals.Opponent), carToBall))

		d.AimPoint = ball.Add(goalToBall.Scale(r))
		if dist < lineUp && shotAngle < 45 && low {
			d.Phase = PhaseShoot
			d.Target = d.NearPoint.Add(d.AimPoint.Sub(d.NearPoint).Scale(2.5))
			return
		}
		d.Phase = PhaseLineUp
		d.Target = ball.Add(goalToBall.Scale(lineUp - 100))
		return
	}

	clearDist := 2 * r
	clearAngle := math.Abs(geometry.AngleDifference(carToBall, geometry.CompassBearing(goals.Own, ball)))
	if dist < 1.2*clearDist && clearAngle < 80 && low {
		d.Phase = PhaseClear
		d.Target = ball
		return
	}
	d.Phase = PhaseDefend
	d.Target = ball.Add(goals.Own.Sub(ball).Normalized().Scale(0.9 * clearDist))
}

func (s *Selector) hold(raw Mode) Mode {
	if s.opts.ModeHoldTicks <= 0 || !s.hasHeld {
		s.held, s.hasHeld, s.pending = raw, true, 0
		return raw
	}
	if raw == s.held {
		s.pending = 0
		return s.held
	}
	s.pending++
	if s.pending >= s.opts.ModeHoldTicks {
		s.held, s.pending = raw, 0
	}
	return s.held
}

// NearPoint is the point on the ball's surface closest to the car.
// A car inside the ball centre gets the centre back.
func NearPoint(car, ball geometry.Vector3, radius float64) geometry.Vector3 {
	return ball.Add(car.Sub(ball).Normalized().Scale(radius))
}

// OffenseTarget returns a point on the ball's surface swung towards the side
// facing away from the opponent goal, and the aim point it was blended with.
func OffenseTarget(car, ball, opponentGoal geometry.Vector3, radius float64) (target, aim geometry.Vector3) {
	goalToBall := ball.Sub(opponentGoal).Normalized()
	aim = ball.Add(goalToBall.Scale(radius))
	near := NearPoint(car, ball, radius)
	blended := near.Add(aim.Sub(near).Scale(2.5))

	dir := blended.Sub(ball).Normalized()
	if dir.IsZero() {
		// car on the ball centre and ball on the goal centre
		dir = opponentGoal.Scale(-1).Normalized()
	}
	return ball.Add(dir.Scale(radius)), aim
}

// DefenseTarget is just behind the ball on the side of the defended goal.
func DefenseTarget(ball, ownGoal geometry.Vector3, radius float64) geometry.Vector3 {
	return ball.Add(ownGoal.Sub(ball).Normalized().Scale(0.9 * radius))
}
