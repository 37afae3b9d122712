package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ewilliams-labs/dashboard/internal/core/domain"
	"github.com/ewilliams-labs/dashboard/internal/core/ports"
)

const (
	errCodeInvalidArgument   = "INVALID_ARGUMENT"
	errCodeUpstreamAuth      = "UPSTREAM_UNAUTHORIZED"
	errCodeUpstreamStatus    = "UPSTREAM_STATUS"
	errCodeUpstreamShape     = "UPSTREAM_SHAPE_MISMATCH"
	errCodeUpstreamTransport = "UPSTREAM_UNREACHABLE"
	errCodeCanceled          = "REQUEST_CANCELED"
	errCodeInternal          = "INTERNAL"
)

type errorResponse struct {
	Error          string `json:"error"`
	Code           string `json:"code,omitempty"`
	UpstreamStatus int    `json:"upstream_status,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("rest: failed to encode response", "error", err)
	}
}

func writeErrorWithCode(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

// writeServiceError maps a service failure onto an HTTP status.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var statusErr *ports.StatusError

	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		writeErrorWithCode(w, http.StatusBadRequest, err.Error(), errCodeInvalidArgument)
		return
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeErrorWithCode(w, http.StatusServiceUnavailable, err.Error(), errCodeCanceled)
		return
	case errors.As(err, &statusErr):
		if statusErr.StatusCode == http.StatusUnauthorized || statusErr.StatusCode == http.StatusForbidden {
			writeJSON(w, statusErr.StatusCode, errorResponse{Error: err.Error(), Code: errCodeUpstreamAuth, UpstreamStatus: statusErr.StatusCode})
			return
		}
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error(), Code: errCodeUpstreamStatus, UpstreamStatus: statusErr.StatusCode})
		return
	case errors.Is(err, ports.ErrShapeMismatch), errors.Is(err, ports.ErrEmptyList):
		slog.Warn("rest: unexpected catalog payload", "path", r.URL.Path, "error", err)
		writeErrorWithCode(w, http.StatusBadGateway, err.Error(), errCodeUpstreamShape)
		return
	case errors.Is(err, ports.ErrTransport):
		writeErrorWithCode(w, http.StatusBadGateway, err.Error(), errCodeUpstreamTransport)
		return
	}

	slog.Error("rest: request failed", "path", r.URL.Path, "error", err)
	writeErrorWithCode(w, http.StatusInternalServerError, err.Error(), errCodeInternal)
}
