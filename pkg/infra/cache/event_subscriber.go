package cache

import (
	"context"

	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache/event"
)

type EventSubscriber[T event.Event] interface {
	OnEvent(ctx context.Context, ev T) error
}

// RegisterEventSubscriber attaches subscriber to every event of type T the
// listener decodes.
func RegisterEventSubscriber[T event.Event](l EventListener, subscriber EventSubscriber[T]) {
	l.Register(func(ctx context.Context, ev event.Event) error {
		typed, ok := ev.(T)
		if !ok {
			return nil
		}
		return subscriber.OnEvent(ctx, typed)
	})
}
