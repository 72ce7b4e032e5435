// Package websocket streams sync progress to subscribed browser clients.
// The hub implements events.Writer so the reconciler stays unaware of the
// transport.
package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"kind_contact_server/internal/infrastructure/events"
	"kind_contact_server/pkg/constants"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client is one subscribed websocket connection.
type Client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans sync events out to every connected client. Slow clients get
// dropped rather than blocking the broadcast.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	closed  bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
	}
}

// WriteEvent implements events.Writer by broadcasting the event as JSON.
func (h *Hub) WriteEvent(ctx context.Context, event events.SyncEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	h.broadcast(payload)
	return nil
}

// Close drops every client.
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
	return nil
}

func (h *Hub) broadcast(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
			// Buffer full: the client is not keeping up, skip it.
		}
	}
}

func (h *Hub) register(client *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[client] = struct{}{}
	return true
}

func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
}

// ServeWS upgrades the request and subscribes the connection to the sync
// progress feed until the peer disconnects.
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Error("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		conn: conn,
		send: make(chan []byte, constants.SyncEventBuffer),
	}
	if !h.register(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump(h)
}

// writePump sends broadcast payloads until the send channel closes.
func (c *Client) writePump() {
	defer c.conn.Close()
	for payload := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

// readPump exists to detect the peer closing; inbound payloads are ignored.
func (c *Client) readPump(h *Hub) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
