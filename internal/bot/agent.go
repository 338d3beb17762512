// Package bot runs one car: it owns the active maneuver and the per-tick
// decision pipeline from world snapshot to controller command.
package bot

import (
	"github.com/zeusync/ballchaser/internal/core/actuation"
	"github.com/zeusync/ballchaser/internal/core/boostpad"
	"github.com/zeusync/ballchaser/internal/core/chat"
	"github.com/zeusync/ballchaser/internal/core/controls"
	"github.com/zeusync/ballchaser/internal/core/events/bus"
	"github.com/zeusync/ballchaser/internal/core/geometry"
	"github.com/zeusync/ballchaser/internal/core/maneuver"
	"github.com/zeusync/ballchaser/internal/core/observability/log"
	"github.com/zeusync/ballchaser/internal/core/prediction"
	"github.com/zeusync/ballchaser/internal/core/render"
	"github.com/zeusync/ballchaser/internal/core/strategy"
	"github.com/zeusync/ballchaser/internal/core/world"
)

// Agent is the long-lived state of one car for a match. It is driven by a
// single caller and is not safe for concurrent use.
type Agent struct {
	name  string
	team  world.Team
	index int
	opts  Options

	// at most one maneuver at a time; replaced wholesale
	active *maneuver.Sequence

	tracker    *boostpad.PadTracker
	selector   *strategy.Selector
	translator *actuation.Translator

	renderer  render.Renderer
	messenger chat.Messenger
	events    bus.EventBus
	topic     string
	logger    log.Log

	mode    strategy.Mode
	hasMode bool
	warned  bool
}

func NewAgent(name string, team world.Team, index int, opts Options, options ...Option) *Agent {
	a := &Agent{
		name:       name,
		team:       team,
		index:      index,
		opts:       opts,
		tracker:    boostpad.NewPadTracker(),
		selector:   strategy.NewSelector(opts.Strategy),
		translator: actuation.NewTranslator(opts.Actuation),
		renderer:   render.Nop{},
		messenger:  chat.Discard{},
		logger:     log.NewNop(),
	}
	for _, opt := range options {
		opt(a)
	}
	a.logger = a.logger.With(log.String("agent", name), log.Int("index", index), log.String("team", team.String()))
	return a
}

func (a *Agent) Name() string     { return a.name }
func (a *Agent) Team() world.Team { return a.team }
func (a *Agent) Index() int       { return a.index }
func (a *Agent) Options() Options { return a.opts }

func (a *Agent) Tracker() *boostpad.PadTracker { return a.tracker }

// ActiveSequence returns the maneuver being played, or nil.
func (a *Agent) ActiveSequence() *maneuver.Sequence { return a.active }

// Initialize prepares the agent for a new match.
func (a *Agent) Initialize(info world.FieldInfo) {
	a.tracker.Initialize(info)
	a.selector.Reset()
	a.active = nil
	a.hasMode = false
	a.warned = false
	a.logger.Debug("initialized", log.Int("boost_pads", len(info.BoostPads)))
}

// Tick produces the command for one snapshot. dt is the time in seconds since
// the previous tick.
func (a *Agent) Tick(snap *world.Snapshot, dt float64) controls.Command {
	if snap == nil {
		return controls.Neutral()
	}
	a.tracker.Update(snap)

	if a.active != nil && !a.active.IsDone() {
		if cmd, ok := a.active.Tick(dt); ok {
			return cmd.Sanitized()
		}
		a.logger.Debug("maneuver finished", log.String("maneuver", a.active.Name()))
	}

	self, err := snap.Car(a.index)
	if err != nil {
		if !a.warned {
			a.logger.Warn("self car missing from snapshot", log.Error(err))
			a.warned = true
		}
		return controls.Neutral()
	}
	a.warned = false

	car, ball := self.Physics, snap.Ball.Physics

	d := a.selector.Decide(a.team, car, ball)
	a.observeMode(d.Mode)

	target := d.Target
	if lead, ok := a.leadPoint(snap, car, ball); ok {
		a.renderer.DrawLine3D(ball.Location, lead, render.Red)
		target = lead
	}
	a.draw(car, d, target)

	if a.shouldFlip(car) {
		return a.BeginFrontFlip(dt)
	}

	return a.translator.Translate(car, target, ball.Location, d.Kickoff).Sanitized()
}

// BeginFrontFlip announces and starts a front flip, returning its first
// command.
func (a *Agent) BeginFrontFlip(dt float64) controls.Command {
	if err := a.messenger.SendQuickChat(false, chat.InformationIGotIt); err != nil {
		a.logger.Warn("quick chat failed", log.Error(err))
	}
	return a.Begin(maneuver.FrontFlipName, maneuver.FrontFlip(), dt)
}

// Begin discards any active maneuver, starts a new one from steps and plays
// its first tick so no idle tick precedes it.
func (a *Agent) Begin(name string, steps []maneuver.Step, dt float64) controls.Command {
	a.active = maneuver.NewSequence(name, steps...)
	a.logger.Debug("maneuver started", log.String("maneuver", name), log.Float64("duration", a.active.Duration()))
	a.publish(EventManeuverStarted, ManeuverStarted{Index: a.index, Name: name})

	cmd, ok := a.active.Tick(dt)
	if !ok {
		return controls.Neutral()
	}
	return cmd.Sanitized()
}

func (a *Agent) observeMode(m strategy.Mode) {
	if a.hasMode && a.mode == m {
		return
	}
	if a.hasMode {
		a.logger.Debug("mode changed", log.String("from", a.mode.String()), log.String("to", m.String()))
		a.publish(EventModeChanged, ModeChanged{Index: a.index, From: a.mode, To: m})
	}
	a.mode, a.hasMode = m, true
}

func (a *Agent) shouldFlip(car world.Physics) bool {
	f := a.opts.Flip
	if !f.Enabled {
		return false
	}
	if a.active != nil && !a.active.IsDone() {
		return false
	}
	speed := car.Speed()
	return speed > f.MinSpeed && speed < f.MaxSpeed
}

// leadPoint is where the ball is forecast to be after the lead horizon.
func (a *Agent) leadPoint(snap *world.Snapshot, car, ball world.Physics) (geometry.Vector3, bool) {
	l := a.opts.Lead
	if !l.Enabled || len(snap.BallPrediction) == 0 {
		return geometry.Zero, false
	}
	if car.Location.Dist(ball.Location) <= l.MinDistance {
		return geometry.Zero, false
	}

	var p prediction.Predictor = prediction.NewTable(snap.BallPrediction)
	slice, ok := p.FindSliceAtTime(snap.SecondsElapsed + l.HorizonSeconds)
	if !ok {
		return geometry.Zero, false
	}
	return slice.Physics.Location, true
}

func (a *Agent) draw(car world.Physics, d strategy.Decision, target geometry.Vector3) {
	r := a.renderer
	r.DrawRect3D(d.NearPoint, 4, 4, true, render.Cyan, true)
	if d.Mode == strategy.ModeOffense {
		r.DrawRect3D(d.AimPoint, 4, 4, true, render.Green, true)
	}
	r.DrawLine3D(car.Location, target, render.White)
	r.DrawRect3D(target, 8, 8, true, render.Cyan, true)
	r.DrawString3D(car.Location, 1, 1, string(d.Phase), render.White)

	if pad, ok := a.tracker.NearestActive(car.Location, true); ok {
		r.DrawRect3D(pad.Location, 6, 6, true, render.Yellow, true)
	}
}
