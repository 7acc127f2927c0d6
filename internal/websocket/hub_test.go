// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package websocket

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/lectern/internal/metrics"
	"github.com/tomtom215/lectern/internal/models"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.Disabled)
}

// setupHub starts a hub and stops it when the test ends.
func setupHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = hub.RunWithContext(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return hub
}

// registerClient registers a connectionless client for hub-only tests.
func registerClient(t *testing.T, hub *Hub, tenantID string) *Client {
	t.Helper()
	client := NewClient(hub, nil, tenantID)
	hub.Register <- client
	waitFor(t, func() bool { return hub.GetClientCount() > 0 })
	return client
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func receive(t *testing.T, client *Client) Message {
	t.Helper()
	select {
	case msg, ok := <-client.send:
		if !ok {
			t.Fatal("send channel closed")
		}
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
	return Message{}
}

// ========================================
// Hub lifecycle
// ========================================

func TestHub_ClientRegistration(t *testing.T) {
	hub := setupHub(t)

	client := registerClient(t, hub, "")
	if got := hub.GetClientCount(); got != 1 {
		t.Fatalf("GetClientCount() = %d, want 1", got)
	}

	hub.Unregister <- client
	waitFor(t, func() bool { return hub.GetClientCount() == 0 })

	if _, ok := <-client.send; ok {
		t.Error("send channel should be closed after unregister")
	}
}

func TestHub_UnregisterUnknownClient(t *testing.T) {
	hub := setupHub(t)
	registerClient(t, hub, "")

	hub.Unregister <- NewClient(hub, nil, "")
	time.Sleep(20 * time.Millisecond)

	if got := hub.GetClientCount(); got != 1 {
		t.Errorf("GetClientCount() = %d, want 1", got)
	}
}

func TestHub_RunWithContext(t *testing.T) {
	t.Run("canceled", func(t *testing.T) {
		hub := NewHub()
		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() { errCh <- hub.RunWithContext(ctx) }()

		client := NewClient(hub, nil, "")
		hub.Register <- client
		cancel()

		select {
		case err := <-errCh:
			if !errors.Is(err, context.Canceled) {
				t.Errorf("RunWithContext() = %v, want context.Canceled", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("hub did not stop")
		}

		if _, ok := <-client.send; ok {
			t.Error("client should be closed on shutdown")
		}
		if got := hub.GetClientCount(); got != 0 {
			t.Errorf("GetClientCount() = %d, want 0", got)
		}
	})

	t.Run("deadline", func(t *testing.T) {
		hub := NewHub()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err := hub.RunWithContext(ctx)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("RunWithContext() = %v, want context.DeadlineExceeded", err)
		}
		if got := getShutdownReason(ctx); got != ShutdownReasonContextDeadline {
			t.Errorf("getShutdownReason() = %q, want %q", got, ShutdownReasonContextDeadline)
		}
	})
}

// ========================================
// Broadcasting
// ========================================

func TestHub_BroadcastToClients(t *testing.T) {
	hub := setupHub(t)
	first := registerClient(t, hub, "")
	second := NewClient(hub, nil, "")
	hub.Register <- second
	waitFor(t, func() bool { return hub.GetClientCount() == 2 })

	hub.BroadcastJSON(MessageTypePing, "", map[string]string{"hello": "world"})

	for _, c := range []*Client{first, second} {
		msg := receive(t, c)
		if msg.Type != MessageTypePing {
			t.Errorf("client %d got type %q, want %q", c.ID(), msg.Type, MessageTypePing)
		}
	}
}

func TestHub_TenantFiltering(t *testing.T) {
	hub := setupHub(t)
	mit := registerClient(t, hub, "mit")
	everyone := NewClient(hub, nil, "")
	hub.Register <- everyone
	waitFor(t, func() bool { return hub.GetClientCount() == 2 })

	stanford := &models.LiveSession{SessionID: "s1", TenantID: "stanford", Status: models.SessionActive}
	hub.BroadcastSessionEvent(MessageTypeSessionStarted, stanford)
	mitSession := &models.LiveSession{SessionID: "m1", TenantID: "mit", Status: models.SessionActive}
	hub.BroadcastSessionEvent(MessageTypeSessionStarted, mitSession)

	if msg := receive(t, everyone); msg.TenantID != "stanford" {
		t.Errorf("unfiltered client first message tenant = %q, want stanford", msg.TenantID)
	}
	if msg := receive(t, everyone); msg.TenantID != "mit" {
		t.Errorf("unfiltered client second message tenant = %q, want mit", msg.TenantID)
	}

	msg := receive(t, mit)
	if msg.TenantID != "mit" {
		t.Errorf("filtered client got tenant %q, want mit", msg.TenantID)
	}
	select {
	case extra := <-mit.send:
		t.Errorf("filtered client got unexpected message %+v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_DropsSlowClient(t *testing.T) {
	hub := setupHub(t)
	registerClient(t, hub, "")

	for i := 0; i < sendBuffer+1; i++ {
		hub.BroadcastJSON(MessageTypePing, "", i)
	}

	waitFor(t, func() bool { return hub.GetClientCount() == 0 })
}

func TestHub_AllSubscriberReceivesTenantEvents(t *testing.T) {
	hub := setupHub(t)
	all := registerClient(t, hub, models.AllTenants)

	hub.BroadcastSessionEvent(MessageTypeSessionStarted, &models.LiveSession{SessionID: "s1", TenantID: "mit"})

	msg := receive(t, all)
	if msg.Type != MessageTypeSessionStarted || msg.TenantID != "mit" {
		t.Errorf("message = %+v, want mit session_started", msg)
	}
}

func TestClient_Wants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		client   string
		message  string
		expected bool
	}{
		{"unfiltered client", "", "mit", true},
		{"untagged message", "mit", "", true},
		{"matching tenant", "mit", "mit", true},
		{"other tenant", "mit", "stanford", false},
		{"all subscriber", "all", "mit", true},
		{"all subscriber untagged", "all", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := &Client{tenantID: tt.client}
			if got := c.wants(Message{TenantID: tt.message}); got != tt.expected {
				t.Errorf("wants() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMarshalMessage(t *testing.T) {
	t.Parallel()

	data, err := MarshalMessage(Message{Type: MessageTypePong})
	if err != nil {
		t.Fatalf("MarshalMessage() error = %v", err)
	}
	if got := string(data); got != `{"type":"pong"}` {
		t.Errorf("MarshalMessage() = %s, want {\"type\":\"pong\"}", got)
	}
}

// ========================================
// WebSocket transport
// ========================================

func dialWebSocket(t *testing.T, server *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + query
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_ServeHTTP(t *testing.T) {
	hub := setupHub(t)
	server := httptest.NewServer(hub)
	defer server.Close()

	conn := dialWebSocket(t, server, "?tenantId=harvard")
	waitFor(t, func() bool { return hub.GetClientCount() == 1 })

	hub.BroadcastSessionEvent(MessageTypeSessionJoined, &models.LiveSession{
		SessionID: "h1", TenantID: "harvard", Status: models.SessionActive, Attendees: 1,
	})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg struct {
		Type     string             `json:"type"`
		TenantID string             `json:"tenantId"`
		Data     models.LiveSession `json:"data"`
	}
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if msg.Type != MessageTypeSessionJoined {
		t.Errorf("type = %q, want %q", msg.Type, MessageTypeSessionJoined)
	}
	if msg.Data.SessionID != "h1" || msg.Data.Attendees != 1 {
		t.Errorf("data = %+v, want session h1 with 1 attendee", msg.Data)
	}
}

func TestClient_PingPong(t *testing.T) {
	hub := setupHub(t)
	server := httptest.NewServer(hub)
	defer server.Close()

	conn := dialWebSocket(t, server, "")
	if err := conn.WriteJSON(Message{Type: MessageTypePing}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if msg.Type != MessageTypePong {
		t.Errorf("type = %q, want %q", msg.Type, MessageTypePong)
	}
}

func TestClient_DisconnectUnregisters(t *testing.T) {
	hub := setupHub(t)
	server := httptest.NewServer(hub)
	defer server.Close()

	conn := dialWebSocket(t, server, "")
	waitFor(t, func() bool { return hub.GetClientCount() == 1 })

	conn.Close()
	waitFor(t, func() bool { return hub.GetClientCount() == 0 })
}

func TestHub_ServeHTTP_HubNotRunning(t *testing.T) {
	hub := NewHub()
	hub.registerTimeout = 50 * time.Millisecond
	server := httptest.NewServer(hub)
	defer server.Close()

	before := testutil.ToFloat64(metrics.WSErrors.WithLabelValues("register_timeout"))
	conn := dialWebSocket(t, server, "/")

	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("SetReadDeadline() error = %v", err)
	}
	_, _, err := conn.ReadMessage()
	if err == nil {
		t.Fatal("ReadMessage() succeeded, want the server to close the connection")
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		t.Fatalf("ReadMessage() timed out, connection was left open: %v", err)
	}

	if got := testutil.ToFloat64(metrics.WSErrors.WithLabelValues("register_timeout")) - before; got != 1 {
		t.Errorf("register_timeout delta = %v, want 1", got)
	}
	if hub.GetClientCount() != 0 {
		t.Errorf("GetClientCount() = %d, want 0", hub.GetClientCount())
	}
}
