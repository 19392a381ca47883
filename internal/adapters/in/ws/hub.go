// Package ws streams domain events to connected websocket clients. Web and
// mobile frontends subscribe to learn about new bids and order transitions
// without polling.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"marketplace/internal/core/domain/events"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// outboundMessage is the frame sent to every subscriber.
type outboundMessage struct {
	Type string       `json:"type"`
	Data events.Event `json:"data"`
}

type subscription struct {
	ch chan outboundMessage
}

// Hub fans incoming domain events out to all connected clients. It
// implements the event publisher contract, so it can sit next to the broker
// publisher behind one fan-out. Slow clients drop frames instead of
// blocking the rest.
type Hub struct {
	mu       sync.RWMutex
	subs     map[*subscription]struct{}
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subs:     make(map[*subscription]struct{}),
		upgrader: websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		logger:   logger.With("component", "ws-hub"),
	}
}

// Publish broadcasts the events to every connected client.
func (h *Hub) Publish(_ context.Context, evts ...events.Event) {
	for _, evt := range evts {
		h.broadcast(outboundMessage{Type: evt.Name(), Data: evt})
	}
}

func (h *Hub) broadcast(msg outboundMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs {
		select {
		case sub.ch <- msg:
		default:
		}
	}
}

func (h *Hub) subscribe(buffer int) *subscription {
	sub := &subscription{ch: make(chan outboundMessage, buffer)}
	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

func (h *Hub) unsubscribe(sub *subscription) {
	h.mu.Lock()
	delete(h.subs, sub)
	h.mu.Unlock()
	close(sub.ch)
}

// Handle upgrades the request and streams events until the client goes away.
func (h *Hub) Handle(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	sub := h.subscribe(64)
	defer h.unsubscribe(sub)

	// Reader goroutine: its only job is to notice the peer closing.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg := <-sub.ch:
			payload, err := json.Marshal(msg)
			if err != nil {
				h.logger.Error("failed to encode frame", "type", msg.Type, "error", err)
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return nil
			}
		case <-done:
			return nil
		case <-c.Request().Context().Done():
			return nil
		}
	}
}
