package host

import (
	"time"

	"github.com/zeusync/ballchaser/internal/core/events/bus"
	"github.com/zeusync/ballchaser/internal/core/observability/log"
)

// logObserver writes bus traffic to the log.
type logObserver struct {
	logger log.Log
}

var _ bus.EventBusObserver = (*logObserver)(nil)

func (o *logObserver) OnPublish(topic, eventType string, e bus.Event) {
	o.logger.Debug("event published",
		log.String("topic", topic),
		log.String("event", eventType),
		log.String("source", e.Source()),
		log.Any("data", e.Data()),
	)
}

func (o *logObserver) OnDelivered(topic, eventType string, handlers int, err error, d time.Duration) {
	if err != nil {
		o.logger.Warn("event handler failed",
			log.String("topic", topic),
			log.String("event", eventType),
			log.Int("handlers", handlers),
			log.Error(err),
		)
		return
	}
	o.logger.Debug("event delivered",
		log.String("topic", topic),
		log.String("event", eventType),
		log.Int("handlers", handlers),
		log.Duration("took", d),
	)
}
