// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package api

import (
	"net/http"

	"github.com/tomtom215/lectern/internal/live"
	"github.com/tomtom215/lectern/internal/logging"
	"github.com/tomtom215/lectern/internal/metrics"
	"github.com/tomtom215/lectern/internal/models"
	ws "github.com/tomtom215/lectern/internal/websocket"
)

// StartSession starts a live session, replacing any session with the same id.
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if !parseBody(w, r, &req, "Missing required fields: sessionId, title, instructor, tenantId") {
		return
	}

	session := h.live.Start(live.StartParams{
		SessionID:  req.SessionID,
		Title:      req.Title,
		Instructor: req.Instructor,
		TenantID:   req.TenantID,
	})
	h.publishSessionEvent(r, metrics.LiveEventStarted, ws.MessageTypeSessionStarted, &session)

	respondJSON(w, http.StatusCreated, SessionResponse{
		Message: "Live session started successfully",
		Session: session,
	})
}

// StopSession stops a session. Stopping twice re-stamps endTime.
func (h *Handler) StopSession(w http.ResponseWriter, r *http.Request) {
	var req StopSessionRequest
	if !parseBody(w, r, &req, "Missing required field: sessionId") {
		return
	}

	session, err := h.live.Stop(req.SessionID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	h.publishSessionEvent(r, metrics.LiveEventStopped, ws.MessageTypeSessionStopped, &session)

	respondJSON(w, http.StatusOK, SessionResponse{
		Message: "Live session stopped successfully",
		Session: session,
	})
}

// JoinSession adds one attendee to an active session.
func (h *Handler) JoinSession(w http.ResponseWriter, r *http.Request) {
	var req AttendSessionRequest
	if !parseBody(w, r, &req, msgSessionUserRequired) {
		return
	}

	session, err := h.live.Join(req.SessionID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	h.publishSessionEvent(r, metrics.LiveEventJoined, ws.MessageTypeSessionJoined, &session)

	respondJSON(w, http.StatusOK, SessionResponse{
		Message: "Joined session successfully",
		Session: session,
	})
}

// SetReminder acknowledges a reminder request. The session is not looked up
// and nothing is stored.
func (h *Handler) SetReminder(w http.ResponseWriter, r *http.Request) {
	var req AttendSessionRequest
	if !parseBody(w, r, &req, msgSessionUserRequired) {
		return
	}

	respondJSON(w, http.StatusOK, ReminderResponse{
		Message:   "Reminder set successfully",
		SessionID: req.SessionID,
	})
}

// Sessions lists active sessions and all sessions in first-start order.
func (h *Handler) Sessions(w http.ResponseWriter, _ *http.Request) {
	active, all := h.live.Sessions()
	respondJSON(w, http.StatusOK, SessionsResponse{
		ActiveSessions: active,
		AllSessions:    all,
	})
}

// LiveEvents upgrades to a WebSocket streaming session events.
func (h *Handler) LiveEvents(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		respondError(w, http.StatusNotFound, msgRouteNotFound)
		return
	}
	h.wsHub.ServeHTTP(w, r)
}

// publishSessionEvent records the lifecycle metric and notifies WebSocket
// subscribers.
func (h *Handler) publishSessionEvent(r *http.Request, event, messageType string, session *models.LiveSession) {
	metrics.RecordLiveSessionEvent(event, h.live.ActiveCount())

	logging.Ctx(r.Context()).Info().
		Str("event", event).
		Str("session_id", sanitizeLogValue(session.SessionID)).
		Str("tenant_id", sanitizeLogValue(session.TenantID)).
		Int("attendees", session.Attendees).
		Msg("live session event")

	if h.wsHub != nil {
		h.wsHub.BroadcastSessionEvent(messageType, session)
	}
}
