package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taskcal/taskcal/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeStoreError maps a store failure onto an HTTP response.
// Validation and not-found errors carry client-safe messages; anything
// else is logged server-side and answered with the generic fallback so
// connection strings and driver detail never reach the client.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var ve *store.ValidationError
	if errors.As(err, &ve) {
		writeError(w, http.StatusBadRequest, ve.Msg)
		return
	}
	var nf *store.NotFoundError
	if errors.As(err, &nf) {
		writeError(w, http.StatusNotFound, "Task not found")
		return
	}
	slog.ErrorContext(r.Context(), fallback,
		"error", err, "request_id", requestID(r.Context()))
	writeError(w, http.StatusInternalServerError, fallback)
}

// decodeJSON strictly decodes a request body, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
