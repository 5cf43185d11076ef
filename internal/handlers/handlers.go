// Package handlers translates HTTP semantics to storage operations. Every
// request moves through the same states: decode and validate the payload,
// execute the storage call, select the status code, serialize the result.
// Validation failures answer 400 with a per-field detail list, missing ids
// answer 404, credential mismatches answer 401, and anything unexpected
// answers a generic 500 with the detail kept in the server log.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"kandacms/internal/cache"
	"kandacms/internal/models"
	"kandacms/internal/store"
)

// API groups all endpoint handlers around their shared dependencies.
// The response cache may be nil when Valkey is not configured.
type API struct {
	stores *store.Stores
	cache  *cache.ResponseCache
}

// New creates the API handler group.
func New(stores *store.Stores, respCache *cache.ResponseCache) *API {
	return &API{stores: stores, cache: respCache}
}

// respondJSON serializes v with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// respondBytes writes an already-serialized JSON body.
func respondBytes(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

// respondError writes a plain error body: {"error": msg}.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// respondInternal logs the failure and answers a generic 500. The real
// error never reaches the client.
func respondInternal(w http.ResponseWriter, op string, err error) {
	slog.Error(op, "error", err)
	respondError(w, http.StatusInternalServerError, "Internal server error")
}

// respondValidation answers 400 with every offending field.
func respondValidation(w http.ResponseWriter, msg string, errs models.FieldErrors) {
	respondJSON(w, http.StatusBadRequest, map[string]any{
		"error":   msg,
		"details": errs,
	})
}

// decodeBody parses the request body into v. A malformed body answers 400
// and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

// idParam parses the {id} route parameter. A malformed id can never match
// a record, so it reports not-found rather than a client error.
func idParam(w http.ResponseWriter, r *http.Request, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, what+" not found")
		return uuid.Nil, false
	}
	return id, true
}
