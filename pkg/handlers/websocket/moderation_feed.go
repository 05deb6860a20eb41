package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/common"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache/event"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/prometheus"
	infraWebsocket "github.com/NeuralTrust/TrustGuard/pkg/infra/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

type Handler interface {
	Handle(c *websocket.Conn)
}

type subscriber struct {
	send chan []byte
}

// ModerationFeed relays moderation events to connected websocket clients.
// A client that cannot keep up is disconnected rather than slowing the feed.
type ModerationFeed struct {
	logger     *logrus.Logger
	bufferSize int

	mu      sync.RWMutex
	clients map[*subscriber]struct{}
	closed  bool
}

func NewModerationFeed(logger *logrus.Logger, bufferSize int) *ModerationFeed {
	if bufferSize <= 0 {
		bufferSize = 16
	}
	return &ModerationFeed{
		logger:     logger,
		bufferSize: bufferSize,
		clients:    make(map[*subscriber]struct{}),
	}
}

// Export broadcasts ev to every client.
func (f *ModerationFeed) Export(_ context.Context, ev event.Event) error {
	msg, err := cache.EncodeMessage(ev)
	if err != nil {
		return err
	}

	var slow []*subscriber
	f.mu.RLock()
	for s := range f.clients {
		select {
		case s.send <- msg:
		default:
			slow = append(slow, s)
		}
	}
	f.mu.RUnlock()

	for _, s := range slow {
		f.logger.Warn("dropping slow moderation feed client")
		f.unregister(s)
	}
	return nil
}

func (f *ModerationFeed) Clients() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.clients)
}

// Close disconnects every client and rejects new ones.
func (f *ModerationFeed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	for s := range f.clients {
		delete(f.clients, s)
		close(s.send)
		prometheus.WebsocketClients.Dec()
	}
}

func (f *ModerationFeed) register() (*subscriber, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil, false
	}
	s := &subscriber{send: make(chan []byte, f.bufferSize)}
	f.clients[s] = struct{}{}
	prometheus.WebsocketClients.Inc()
	return s, true
}

func (f *ModerationFeed) unregister(s *subscriber) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.clients[s]; !ok {
		return
	}
	delete(f.clients, s)
	close(s.send)
	prometheus.WebsocketClients.Dec()
}

func (f *ModerationFeed) Handle(c *websocket.Conn) {
	if sem, ok := c.Locals(common.WsSemaphoreKey).(*infraWebsocket.Semaphore); ok {
		defer sem.Release()
	}

	s, ok := f.register()
	if !ok {
		_ = c.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"), time.Now().Add(writeWait))
		return
	}
	defer f.unregister(s)

	// The reader only exists to process control frames and notice a
	// disconnect; clients never send data.
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = c.SetReadDeadline(time.Now().Add(pongWait))
		c.SetPongHandler(func(string) error {
			return c.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-s.send:
			_ = c.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
				f.logger.WithError(err).Debug("moderation feed write failed")
				return
			}
		case <-ticker.C:
			if err := c.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
