// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"

	"kandacms/internal/cache"
	"kandacms/internal/models"
)

// SettingsGet serves the settings singleton. When settings were never
// written it answers an empty object, not a 404; the singleton simply
// has no values yet. The serialized body is cached under the resource key.
func (a *API) SettingsGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if body, ok := a.cache.Get(ctx, cache.KeySettings); ok {
		respondBytes(w, http.StatusOK, body)
		return
	}

	settings, err := a.stores.Settings.Get()
	if err != nil {
		respondInternal(w, "get settings failed", err)
		return
	}

	var body []byte
	if settings == nil {
		body = []byte("{}")
	} else {
		body, err = json.Marshal(settings)
		if err != nil {
			respondInternal(w, "marshal settings failed", err)
			return
		}
	}
	a.cache.Set(ctx, cache.KeySettings, body)
	respondBytes(w, http.StatusOK, body)
}

// SettingsUpdate applies a partial update to the singleton with upsert
// semantics: the first write creates the row, every later write mutates
// that same row. UpdatedAt is stamped by the storage layer.
func (a *API) SettingsUpdate(w http.ResponseWriter, r *http.Request) {
	var patch models.SiteSettingsPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	if errs := patch.Validate(); errs != nil {
		respondValidation(w, "Invalid settings data", errs)
		return
	}

	settings, err := a.stores.Settings.Update(patch)
	if err != nil {
		respondInternal(w, "update settings failed", err)
		return
	}

	a.cache.Invalidate(r.Context(), cache.KeySettings)
	respondJSON(w, http.StatusOK, settings)
}
