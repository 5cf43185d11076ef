package handlers

import (
	"net/http"
	"time"

	"kandacms/internal/models"
)

// MediaList serves every media record, newest upload first.
func (a *API) MediaList(w http.ResponseWriter, r *http.Request) {
	items, err := a.stores.Media.List()
	if err != nil {
		respondInternal(w, "list media failed", err)
		return
	}
	if items == nil {
		items = []models.Media{}
	}
	respondJSON(w, http.StatusOK, items)
}

// MediaGet serves a single media record by id.
func (a *API) MediaGet(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Media")
	if !ok {
		return
	}

	m, err := a.stores.Media.FindByID(id)
	if err != nil {
		respondInternal(w, "find media failed", err)
		return
	}
	if m == nil {
		respondError(w, http.StatusNotFound, "Media not found")
		return
	}
	respondJSON(w, http.StatusOK, m)
}

// MediaCreate validates and stores a new media record. The URL is opaque
// text, either a remote address or an inline data-URI, and is never fetched or
// decoded server-side.
func (a *API) MediaCreate(w http.ResponseWriter, r *http.Request) {
	var in models.MediaInput
	if !decodeBody(w, r, &in) {
		return
	}
	if errs := in.Validate(); errs != nil {
		respondValidation(w, "Invalid media data", errs)
		return
	}

	m, err := a.stores.Media.Create(in.Normalize(time.Now()))
	if err != nil {
		respondInternal(w, "create media failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, m)
}

// MediaDelete removes a media record. Posts or settings referencing its
// URL keep the copied string; there is no foreign key to cascade.
func (a *API) MediaDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Media")
	if !ok {
		return
	}

	deleted, err := a.stores.Media.Delete(id)
	if err != nil {
		respondInternal(w, "delete media failed", err)
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "Media not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
