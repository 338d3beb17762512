// Package controls defines the per-tick actuator output sent back to the host.
package controls

// Command is a single tick of controller input.
// Scalar axes are in [-1, 1]; the zero value is a neutral pad.
type Command struct {
	Steer     float64 `json:"steer"`
	Throttle  float64 `json:"throttle"`
	Pitch     float64 `json:"pitch"`
	Yaw       float64 `json:"yaw"`
	Roll      float64 `json:"roll"`
	Jump      bool    `json:"jump"`
	Boost     bool    `json:"boost"`
	Handbrake bool    `json:"handbrake"`
}

// Neutral returns a command with every input released.
func Neutral() Command {
	return Command{}
}

// Clamp limits v to the safe actuator range [-1, 1].
func Clamp(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	case v != v:
		// NaN
		return 0
	default:
		return v
	}
}

// Sanitized returns a copy of c with every scalar axis clamped.
func (c Command) Sanitized() Command {
	c.Steer = Clamp(c.Steer)
	c.Throttle = Clamp(c.Throttle)
	c.Pitch = Clamp(c.Pitch)
	c.Yaw = Clamp(c.Yaw)
	c.Roll = Clamp(c.Roll)
	return c
}
