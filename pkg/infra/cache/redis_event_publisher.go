package cache

import (
	"context"

	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache/event"
)

type redisEventPublisher struct {
	cache   Client
	channel Channel
}

func NewRedisEventPublisher(cache Client, channel Channel) EventPublisher {
	return &redisEventPublisher{
		cache:   cache,
		channel: channel,
	}
}

func (p *redisEventPublisher) Publish(ctx context.Context, ev event.Event) error {
	data, err := EncodeMessage(ev)
	if err != nil {
		return err
	}
	return p.cache.RedisClient().Publish(ctx, string(p.channel), string(data)).Err()
}
