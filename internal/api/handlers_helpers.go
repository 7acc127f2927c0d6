// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package api

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/lectern/internal/catalog"
	"github.com/tomtom215/lectern/internal/live"
	"github.com/tomtom215/lectern/internal/logging"
	"github.com/tomtom215/lectern/internal/validation"
)

// Messages shared by more than one endpoint.
const (
	msgRouteNotFound       = "Route not found"
	msgCourseNotFound      = "Course not found"
	msgSessionNotFound     = "Session not found"
	msgTenantIDRequired    = "tenantId is required"
	msgSessionUserRequired = "sessionId and userId are required"
	msgInvalidBody         = "Invalid request body"
	msgBodyTooLarge        = "Request entity too large"
	msgInternalError       = "Internal server error"
	msgSomethingWrong      = "Something went wrong"
)

// errBodyTooLarge marks a body that exceeded the RequestSize limit.
var errBodyTooLarge = errors.New("request body too large")

// sanitizeLogValue escapes control characters so client input cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// respondJSON writes v with the given status.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError writes {"error": message}.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondText writes a plain-text body. Used where clients expect the
// middleware's text responses rather than JSON.
func respondText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// decodeBody fills dst from a JSON or url-encoded body. Any other content
// type, or no body at all, leaves dst untouched so the required-field
// checks report what is missing.
func decodeBody(r *http.Request, dst interface{}) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch {
	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return readError(err)
		}
		if len(strings.TrimSpace(string(data))) == 0 {
			return nil
		}
		return json.Unmarshal(data, dst)

	case mediaType == "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return readError(err)
		}
		fields := make(map[string]string, len(r.PostForm))
		for key, values := range r.PostForm {
			if len(values) > 0 {
				fields[key] = values[0]
			}
		}
		data, err := json.Marshal(fields)
		if err != nil {
			return err
		}
		return json.Unmarshal(data, dst)
	}
	return nil
}

func readError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return errBodyTooLarge
	}
	return err
}

// parseBody decodes and validates a request body, writing the error
// response itself when it returns false. missingMessage answers any failed
// validation tag.
func parseBody(w http.ResponseWriter, r *http.Request, dst interface{}, missingMessage string) bool {
	if err := decodeBody(r, dst); err != nil {
		switch {
		case errors.Is(err, errBodyTooLarge):
			respondError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
		case errors.Is(err, ErrInvalidProgress):
			respondError(w, http.StatusBadRequest, ErrInvalidProgress.Error())
		default:
			logging.Ctx(r.Context()).Debug().Str("error", sanitizeLogValue(err.Error())).Msg("rejected request body")
			respondError(w, http.StatusBadRequest, msgInvalidBody)
		}
		return false
	}

	if verr := validation.ValidateStruct(dst); verr != nil {
		logging.Ctx(r.Context()).Debug().Strs("fields", verr.Fields()).Msg("request validation failed")
		respondError(w, http.StatusBadRequest, missingMessage)
		return false
	}
	return true
}

// respondDomainError maps a sentinel error from the domain packages to its
// status and fixed message.
func respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, catalog.ErrTenantNotFound):
		respondError(w, http.StatusNotFound, "Tenant not found")
	case errors.Is(err, catalog.ErrCourseNotFound):
		respondError(w, http.StatusNotFound, msgCourseNotFound)
	case errors.Is(err, live.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, msgSessionNotFound)
	case errors.Is(err, live.ErrSessionNotActive):
		respondError(w, http.StatusBadRequest, "Session is not active")
	default:
		logging.Ctx(r.Context()).Error().Err(err).Msg("unhandled domain error")
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   msgInternalError,
			Message: msgSomethingWrong,
		})
	}
}
