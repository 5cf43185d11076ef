// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"kandacms/internal/cache"
	"kandacms/internal/models"
)

// NewsList serves the public news listing: published posts only, newest
// first. The serialized body is cached under the resource key and any
// news mutation invalidates it.
func (a *API) NewsList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if body, ok := a.cache.Get(ctx, cache.KeyPublishedNews); ok {
		respondBytes(w, http.StatusOK, body)
		return
	}

	posts, err := a.stores.News.ListPublished()
	if err != nil {
		respondInternal(w, "list published posts failed", err)
		return
	}
	if posts == nil {
		posts = []models.NewsPost{}
	}

	body, err := json.Marshal(posts)
	if err != nil {
		respondInternal(w, "marshal posts failed", err)
		return
	}
	a.cache.Set(ctx, cache.KeyPublishedNews, body)
	respondBytes(w, http.StatusOK, body)
}

// NewsListAll serves the dashboard listing: every post including drafts.
// Not cached; the dashboard always reads fresh.
func (a *API) NewsListAll(w http.ResponseWriter, r *http.Request) {
	posts, err := a.stores.News.List()
	if err != nil {
		respondInternal(w, "list all posts failed", err)
		return
	}
	if posts == nil {
		posts = []models.NewsPost{}
	}
	respondJSON(w, http.StatusOK, posts)
}

// NewsGet serves a single post by id.
func (a *API) NewsGet(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Post")
	if !ok {
		return
	}

	post, err := a.stores.News.FindByID(id)
	if err != nil {
		respondInternal(w, "find post failed", err)
		return
	}
	if post == nil {
		respondError(w, http.StatusNotFound, "Post not found")
		return
	}
	respondJSON(w, http.StatusOK, post)
}

// NewsCreate validates and stores a new post, applying the documented
// defaults for absent fields.
func (a *API) NewsCreate(w http.ResponseWriter, r *http.Request) {
	var in models.NewsPostInput
	if !decodeBody(w, r, &in) {
		return
	}
	if errs := in.Validate(); errs != nil {
		respondValidation(w, "Invalid post data", errs)
		return
	}

	post, err := a.stores.News.Create(in.Normalize(time.Now()))
	if err != nil {
		respondInternal(w, "create post failed", err)
		return
	}

	a.cache.Invalidate(r.Context(), cache.KeyPublishedNews)
	respondJSON(w, http.StatusCreated, post)
}

// NewsUpdate applies a partial update to an existing post.
func (a *API) NewsUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Post")
	if !ok {
		return
	}

	var patch models.NewsPostPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	if errs := patch.Validate(); errs != nil {
		respondValidation(w, "Invalid post data", errs)
		return
	}

	post, err := a.stores.News.Update(id, patch)
	if err != nil {
		respondInternal(w, "update post failed", err)
		return
	}
	if post == nil {
		respondError(w, http.StatusNotFound, "Post not found")
		return
	}

	a.cache.Invalidate(r.Context(), cache.KeyPublishedNews)
	respondJSON(w, http.StatusOK, post)
}

// NewsDelete removes a post. Hard delete, no tombstone.
func (a *API) NewsDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "Post")
	if !ok {
		return
	}

	deleted, err := a.stores.News.Delete(id)
	if err != nil {
		respondInternal(w, "delete post failed", err)
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "Post not found")
		return
	}

	a.cache.Invalidate(r.Context(), cache.KeyPublishedNews)
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
