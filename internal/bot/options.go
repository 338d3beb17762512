package bot

import (
	"github.com/zeusync/ballchaser/internal/core/actuation"
	"github.com/zeusync/ballchaser/internal/core/chat"
	"github.com/zeusync/ballchaser/internal/core/events/bus"
	"github.com/zeusync/ballchaser/internal/core/observability/log"
	"github.com/zeusync/ballchaser/internal/core/render"
	"github.com/zeusync/ballchaser/internal/core/strategy"
)

// FlipOptions controls the speed-band front flip trigger.
type FlipOptions struct {
	Enabled bool
	// The flip fires while the car speed is strictly between MinSpeed and MaxSpeed.
	MinSpeed float64
	MaxSpeed float64
}

// LeadOptions controls driving at the predicted ball instead of the current one.
type LeadOptions struct {
	Enabled bool
	// MinDistance is the car to ball distance beyond which the lead applies.
	MinDistance    float64
	HorizonSeconds float64
}

type Options struct {
	Strategy  strategy.Options
	Actuation actuation.Options
	Flip      FlipOptions
	Lead      LeadOptions
}

func DefaultOptions() Options {
	return Options{
		Strategy:  strategy.DefaultOptions(),
		Actuation: actuation.DefaultOptions(),
		Flip: FlipOptions{
			MinSpeed: 750,
			MaxSpeed: 800,
		},
		Lead: LeadOptions{
			MinDistance:    1500,
			HorizonSeconds: 2,
		},
	}
}

// Option configures the collaborators of an Agent.
type Option func(*Agent)

func WithRenderer(r render.Renderer) Option {
	return func(a *Agent) {
		if r != nil {
			a.renderer = r
		}
	}
}

func WithMessenger(m chat.Messenger) Option {
	return func(a *Agent) {
		if m != nil {
			a.messenger = m
		}
	}
}

// WithEvents publishes agent notifications on topic. An empty topic uses the
// bus default topic.
func WithEvents(b bus.EventBus, topic string) Option {
	return func(a *Agent) {
		a.events = b
		a.topic = topic
	}
}

func WithLogger(l log.Log) Option {
	return func(a *Agent) {
		if l != nil {
			a.logger = l
		}
	}
}
