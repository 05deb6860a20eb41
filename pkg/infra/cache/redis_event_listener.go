package cache

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

type redisEventListener struct {
	logger   *logrus.Logger
	cache    Client
	registry map[string]reflect.Type

	mu       sync.RWMutex
	handlers []Handler
}

func NewRedisEventListener(
	logger *logrus.Logger,
	cache Client,
	registry map[string]reflect.Type,
) EventListener {
	return &redisEventListener{
		logger:   logger,
		cache:    cache,
		registry: registry,
	}
}

func (r *redisEventListener) Register(handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers = append(r.handlers, handler)
}

// Listen blocks until ctx is done, resubscribing after connection loss.
func (r *redisEventListener) Listen(ctx context.Context, channels ...Channel) {
	channelNames := make([]string, 0, len(channels))
	for _, ch := range channels {
		channelNames = append(channelNames, string(ch))
	}

	for {
		if ctx.Err() != nil {
			r.logger.Info("redis pubsub listener shutting down")
			return
		}

		r.listenOnce(ctx, channelNames)

		if ctx.Err() != nil {
			return
		}

		r.logger.Warn("redis pubsub disconnected, reconnecting in 1s...")
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Second):
		}
	}
}

func (r *redisEventListener) listenOnce(ctx context.Context, channelNames []string) {
	pubSub := r.cache.RedisClient().Subscribe(ctx, channelNames...)
	defer func() { _ = pubSub.Close() }()

	r.logger.WithField("channels", channelNames).Debug("redis pubsub connected")

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = pubSub.Close()
		case <-done:
		}
	}()

	for msg := range pubSub.Channel() {
		if ctx.Err() != nil {
			return
		}
		r.handleMessage(ctx, msg.Payload)
	}
}

func (r *redisEventListener) handleMessage(ctx context.Context, payload string) {
	ev, err := r.decode(payload)
	if err != nil {
		r.logger.WithError(err).Error("error decoding redis message")
		return
	}

	r.mu.RLock()
	handlers := append([]Handler(nil), r.handlers...)
	r.mu.RUnlock()

	for _, h := range handlers {
		if err := h(ctx, ev); err != nil {
			r.logger.WithError(err).WithField("event", ev.Type()).Error("error executing subscriber")
		}
	}
}

func (r *redisEventListener) decode(payload string) (event.Event, error) {
	var envelope RedisMessage
	if err := jsonAPI.Unmarshal([]byte(payload), &envelope); err != nil {
		return nil, err
	}

	concreteType, ok := r.registry[envelope.Type]
	if !ok {
		return nil, fmt.Errorf("unknown event type: %s", envelope.Type)
	}

	eventPtr := reflect.New(concreteType)
	if err := jsonAPI.Unmarshal(envelope.Event, eventPtr.Interface()); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", envelope.Type, err)
	}
	ev, ok := eventPtr.Elem().Interface().(event.Event)
	if !ok {
		return nil, fmt.Errorf("%s does not implement event.Event", envelope.Type)
	}
	return ev, nil
}
