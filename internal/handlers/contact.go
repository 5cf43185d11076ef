package handlers

import (
	"net/http"
	"time"

	"kandacms/internal/models"
)

// ContactCreate accepts a public contact form submission. The submission
// time is stamped server-side; the record is append-only from here on.
func (a *API) ContactCreate(w http.ResponseWriter, r *http.Request) {
	var in models.ContactInput
	if !decodeBody(w, r, &in) {
		return
	}
	if errs := in.Validate(); errs != nil {
		respondValidation(w, "Invalid contact data", errs)
		return
	}

	sub, err := a.stores.Contact.Create(in.Normalize(time.Now()))
	if err != nil {
		respondInternal(w, "create contact submission failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, sub)
}

// ContactList serves every submission for the dashboard, newest first.
func (a *API) ContactList(w http.ResponseWriter, r *http.Request) {
	subs, err := a.stores.Contact.List()
	if err != nil {
		respondInternal(w, "list contact submissions failed", err)
		return
	}
	if subs == nil {
		subs = []models.ContactSubmission{}
	}
	respondJSON(w, http.StatusOK, subs)
}
