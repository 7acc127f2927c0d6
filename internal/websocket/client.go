// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package websocket

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/lectern/internal/logging"
	"github.com/tomtom215/lectern/internal/metrics"
	"github.com/tomtom215/lectern/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
	sendBuffer     = 64
)

// clientIDCounter gives clients increasing IDs so broadcasts iterate in a
// stable order.
var clientIDCounter atomic.Uint64

// Client is one WebSocket connection registered with a Hub.
type Client struct {
	id       uint64
	tenantID string
	hub      *Hub
	conn     *websocket.Conn
	send     chan Message
}

// NewClient creates a client. An empty tenantID subscribes to every tenant.
func NewClient(hub *Hub, conn *websocket.Conn, tenantID string) *Client {
	return &Client{
		id:       clientIDCounter.Add(1),
		tenantID: tenantID,
		hub:      hub,
		conn:     conn,
		send:     make(chan Message, sendBuffer),
	}
}

// ID returns the client's identifier.
func (c *Client) ID() uint64 {
	return c.id
}

// wants reports whether the client subscribed to msg's tenant. Clients
// subscribed to "" or "all" get everything; messages without a tenant go to
// everyone.
func (c *Client) wants(msg Message) bool {
	if c.tenantID == "" || c.tenantID == models.AllTenants || msg.TenantID == "" {
		return true
	}
	return msg.TenantID == c.tenantID
}

// readPump handles client frames until the connection fails, then
// unregisters. The unregister gives up after writeWait so a stopped hub
// cannot leak this goroutine.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.Unregister <- c:
		case <-time.After(writeWait):
		}
		_ = c.conn.Close() // best effort
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logging.Error().Err(err).Msg("failed to set read deadline")
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				metrics.WSErrors.WithLabelValues("read").Inc()
				logging.Warn().Err(err).Uint64("client_id", c.id).Msg("unexpected websocket close")
			}
			return
		}

		if msg.Type == MessageTypePing {
			select {
			case c.send <- Message{Type: MessageTypePong}:
			default:
			}
		}
	}
}

// writePump is the only writer to the connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close() // best effort
	}()

	for {
		select {
		case message, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(message); err != nil {
				metrics.WSErrors.WithLabelValues("write").Inc()
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Start runs the client's pumps.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(*http.Request) bool {
		return true
	},
}

// ServeHTTP upgrades the request and registers the new client. The
// tenantId query parameter narrows the subscription.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an error response.
		metrics.WSErrors.WithLabelValues("upgrade").Inc()
		logging.Ctx(r.Context()).Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	// The hijacked request's context is never canceled, so a hub that is
	// not running is bounded by registerTimeout instead.
	client := NewClient(h, conn, r.URL.Query().Get("tenantId"))
	select {
	case h.Register <- client:
	case <-time.After(h.registerTimeout):
		metrics.WSErrors.WithLabelValues("register_timeout").Inc()
		logging.Ctx(r.Context()).Warn().Msg("websocket hub not accepting clients")
		_ = conn.Close() // best effort
		return
	}
	client.Start()
}
