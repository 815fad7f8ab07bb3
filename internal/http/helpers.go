package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"petledger/internal/core"
	"petledger/internal/storage"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeBody reads a JSON request body into dst, rejecting unknown fields
// and oversized payloads.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// writeMutation reports the outcome of an add or remove. A validation
// failure is the caller's fault; a storage failure still carries the
// applied change, so the payload goes out with a warning instead of an
// error status.
func writeMutation(w http.ResponseWriter, r *http.Request, status int, payload map[string]any, err error) {
	switch {
	case err == nil:
		writeJSON(w, status, payload)
	case errors.Is(err, core.ErrInvalidRecord):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, storage.ErrUnavailable):
		slog.WarnContext(r.Context(), "Mutation applied but not persisted", "error", err)
		payload["warning"] = "change applied but not persisted, storage is unavailable"
		writeJSON(w, status, payload)
	default:
		slog.ErrorContext(r.Context(), "Mutation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
