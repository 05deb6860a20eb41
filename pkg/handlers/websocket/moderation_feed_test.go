package websocket_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/handlers/websocket"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache/event"
	"github.com/NeuralTrust/TrustGuard/pkg/middleware"
	fiberws "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	gorilla "github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startFeed(t *testing.T, maxConns int) (*websocket.ModerationFeed, string) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	feed := websocket.NewModerationFeed(logger, 4)
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/ws/moderation",
		middleware.NewWebsocketMiddleware(logger, maxConns).Middleware(),
		fiberws.New(feed.Handle),
	)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() {
		feed.Close()
		_ = app.Shutdown()
	})
	return feed, "ws://" + ln.Addr().String() + "/ws/moderation"
}

func TestModerationFeed_Broadcast(t *testing.T) {
	feed, url := startFeed(t, 4)

	conn, _, err := gorilla.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return feed.Clients() == 1 }, time.Second, 10*time.Millisecond)

	err = feed.Export(context.Background(), event.CommentFlaggedEvent{
		CommentID: "c1",
		ModID:     "default-admin",
		Source:    event.SourceAuto,
	})
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	kind, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, gorilla.TextMessage, kind)
	assert.Contains(t, string(msg), `"type":"CommentFlaggedEvent"`)
	assert.Contains(t, string(msg), `"comment_id":"c1"`)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return feed.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestModerationFeed_ConnectionLimit(t *testing.T) {
	feed, url := startFeed(t, 1)

	first, _, err := gorilla.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer first.Close()
	require.Eventually(t, func() bool { return feed.Clients() == 1 }, time.Second, 10*time.Millisecond)

	_, resp, err := gorilla.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestModerationFeed_RequiresUpgrade(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	app := fiber.New()
	app.Get("/ws/moderation", middleware.NewWebsocketMiddleware(logger, 1).Middleware())

	req, err := http.NewRequest(http.MethodGet, "/ws/moderation", nil)
	require.NoError(t, err)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}

func TestModerationFeed_CloseRejectsNewClients(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	feed := websocket.NewModerationFeed(logger, 1)
	feed.Close()

	assert.Equal(t, 0, feed.Clients())
	assert.NoError(t, feed.Export(context.Background(), event.CommentUnflaggedEvent{}))
}
