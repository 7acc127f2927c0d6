// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

/*
Package websocket streams live session events to browser clients.

A single Hub goroutine owns the client set. Each connected Client runs a
readPump and a writePump. The REST handlers publish events through
BroadcastSessionEvent after a successful start, stop or join; a slow client
whose send buffer is full is dropped rather than stalling the hub.

Clients connect to /api/live/ws, optionally with ?tenantId=<id> to receive
only that tenant's sessions (tenantId=all behaves like no filter):

	{"type":"session_started","tenantId":"mit","data":{"sessionId":"ml-101",...}}
	{"type":"session_joined","tenantId":"mit","data":{"sessionId":"ml-101","attendees":1,...}}
	{"type":"session_stopped","tenantId":"mit","data":{"sessionId":"ml-101","endTime":"...",...}}

A client may send {"type":"ping"} and receives {"type":"pong"}.

Origin checking is done by the API's CORS middleware before the upgrade, so
the upgrader itself accepts any origin that reaches it.
*/
package websocket
