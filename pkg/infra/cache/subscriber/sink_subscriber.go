package subscriber

import (
	"context"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

const exportTimeout = 5 * time.Second

// Sink receives moderation events relayed from redis, e.g. the websocket
// feed or the Kafka audit exporter.
type Sink interface {
	Export(ctx context.Context, ev event.Event) error
}

type SinkSubscriber[T event.Event] struct {
	logger *logrus.Logger
	name   string
	sink   Sink
}

func NewSinkSubscriber[T event.Event](logger *logrus.Logger, name string, sink Sink) cache.EventSubscriber[T] {
	return &SinkSubscriber[T]{
		logger: logger,
		name:   name,
		sink:   sink,
	}
}

func (s *SinkSubscriber[T]) OnEvent(ctx context.Context, ev T) error {
	ctx, cancel := context.WithTimeout(ctx, exportTimeout)
	defer cancel()

	s.logger.WithFields(logrus.Fields{
		"sink":  s.name,
		"event": ev.Type(),
	}).Debug("relaying moderation event")
	return s.sink.Export(ctx, ev)
}

// RegisterSink subscribes sink to every moderation event type.
func RegisterSink(logger *logrus.Logger, listener cache.EventListener, name string, sink Sink) {
	cache.RegisterEventSubscriber[event.CommentFlaggedEvent](listener,
		NewSinkSubscriber[event.CommentFlaggedEvent](logger, name, sink))
	cache.RegisterEventSubscriber[event.CommentUnflaggedEvent](listener,
		NewSinkSubscriber[event.CommentUnflaggedEvent](logger, name, sink))
}
