package bot

import (
	"github.com/zeusync/ballchaser/internal/core/events/bus"
	"github.com/zeusync/ballchaser/internal/core/observability/log"
	"github.com/zeusync/ballchaser/internal/core/strategy"
)

const (
	EventModeChanged     = "agent.mode_changed"
	EventManeuverStarted = "agent.maneuver_started"
)

type ModeChanged struct {
	Index int
	From  strategy.Mode
	To    strategy.Mode
}

type ManeuverStarted struct {
	Index int
	Name  string
}

func (a *Agent) publish(eventType string, data any) {
	if a.events == nil {
		return
	}
	e := bus.NewEvent(eventType, a.name, data)

	var err error
	if a.topic == "" {
		err = a.events.Publish(e)
	} else {
		err = a.events.PublishToTopic(a.topic, e)
	}
	if err != nil {
		a.logger.Warn("event handler failed", log.String("event", eventType), log.Error(err))
	}
}
