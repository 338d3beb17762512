package maneuver

import "github.com/zeusync/ballchaser/internal/core/controls"

const FrontFlipName = "front_flip"

// FrontFlip is jump, release, second jump with the nose pitched down, then a
// neutral coast while the car lands.
func FrontFlip() []Step {
	return []Step{
		{Duration: 0.05, Command: controls.Command{Jump: true}},
		{Duration: 0.05, Command: controls.Command{Jump: false}},
		{Duration: 0.2, Command: controls.Command{Jump: true, Pitch: -1}},
		{Duration: 0.8, Command: controls.Command{}},
	}
}
