package cache

import (
	"context"

	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache/event"
)

// Handler ignores events it does not handle.
type Handler func(ctx context.Context, ev event.Event) error

type EventListener interface {
	Listen(ctx context.Context, channels ...Channel)
	Register(handler Handler)
}
