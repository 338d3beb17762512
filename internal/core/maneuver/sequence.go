// Package maneuver plays back committed multi-tick control patterns.
//
// A Sequence ignores the world once started: it emits each step's command
// for that step's duration and then reports done.
package maneuver

import "github.com/zeusync/ballchaser/internal/core/controls"

// State is the playback state of a Sequence.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePlaying:
		return "Playing"
	case StateDone:
		return "Done"
	default:
		return "Invalid"
	}
}

// Step holds one command for a fixed number of seconds.
type Step struct {
	Duration float64
	Command  controls.Command
}

// Sequence is an ordered list of steps with a playback cursor.
// The zero value is Idle.
type Sequence struct {
	name    string
	steps   []Step
	index   int
	elapsed float64
	begun   bool
	state   State
}

// NewSequence returns a sequence already playing from its first step.
func NewSequence(name string, steps ...Step) *Sequence {
	s := &Sequence{}
	s.Start(name, steps)
	return s
}

// Start replaces whatever s was playing and rewinds to the first step.
func (s *Sequence) Start(name string, steps []Step) {
	s.name = name
	s.steps = append([]Step(nil), steps...)
	s.index = 0
	s.elapsed = 0
	s.begun = false
	s.state = StatePlaying
}

// Tick advances playback by dt seconds and returns the command for this tick.
// The second result is false once the sequence has run out of steps, and on
// every call after that.
//
// A step's clock starts on the tick it is first emitted, so every step is
// emitted at least once. Time beyond a step's duration is dropped rather than
// carried into the next step.
func (s *Sequence) Tick(dt float64) (controls.Command, bool) {
	if s.state != StatePlaying {
		return controls.Command{}, false
	}
	if dt < 0 {
		dt = 0
	}

	if s.begun {
		s.elapsed += dt
		if s.elapsed >= s.steps[s.index].Duration {
			s.index++
			s.elapsed = 0
		}
	}

	if s.index >= len(s.steps) {
		s.state = StateDone
		return controls.Command{}, false
	}

	s.begun = true
	return s.steps[s.index].Command, true
}

func (s *Sequence) IsDone() bool { return s.state == StateDone }

func (s *Sequence) State() State { return s.state }

func (s *Sequence) Name() string { return s.name }

// Step returns the index of the step being played.
func (s *Sequence) Step() int { return s.index }

// Duration is the total scripted time of the sequence.
func (s *Sequence) Duration() float64 {
	var total float64
	for _, st := range s.steps {
		total += st.Duration
	}
	return total
}
