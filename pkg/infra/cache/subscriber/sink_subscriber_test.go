package subscriber_test

import (
	"context"
	"io"
	"testing"

	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache/event"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache/subscriber"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	got []event.Event
}

func (s *recordingSink) Export(ctx context.Context, ev event.Event) error {
	if _, ok := ctx.Deadline(); !ok {
		panic("export without deadline")
	}
	s.got = append(s.got, ev)
	return nil
}

type capturingListener struct {
	handlers []cache.Handler
}

func (l *capturingListener) Listen(context.Context, ...cache.Channel) {}

func (l *capturingListener) Register(h cache.Handler) {
	l.handlers = append(l.handlers, h)
}

func (l *capturingListener) dispatch(ev event.Event) {
	for _, h := range l.handlers {
		_ = h(context.Background(), ev)
	}
}

func TestRegisterSink(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	listener := &capturingListener{}
	sink := &recordingSink{}
	subscriber.RegisterSink(logger, listener, "test", sink)
	require.Len(t, listener.handlers, 2)

	listener.dispatch(event.CommentFlaggedEvent{CommentID: "c1"})
	listener.dispatch(event.CommentUnflaggedEvent{CommentID: "c1", Removed: 1})

	require.Len(t, sink.got, 2)
	assert.Equal(t, event.CommentFlaggedEventType, sink.got[0].Type())
	assert.Equal(t, event.CommentUnflaggedEventType, sink.got[1].Type())
}
