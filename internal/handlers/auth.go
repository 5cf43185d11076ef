package handlers

import (
	"net/http"

	"kandacms/internal/models"
)

// Login checks the submitted credential pair against the stored user.
// The comparison is plaintext equality, the documented behavior of this
// prototype, with no hashing, rate limiting, or lockout. No session state
// is created server-side on success or failure; the dashboard keeps its
// own flag client-side.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var in models.LoginInput
	if !decodeBody(w, r, &in) {
		return
	}

	user, err := a.stores.Users.FindByUsername(in.Username)
	if err != nil {
		respondInternal(w, "login lookup failed", err)
		return
	}
	if user == nil || user.Password != in.Password {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    user.Public(),
	})
}

// ChangePassword replaces the stored password after verifying the old
// one. A wrong old password answers 401 and leaves the stored value
// untouched.
func (a *API) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var in models.ChangePasswordInput
	if !decodeBody(w, r, &in) {
		return
	}
	if errs := in.Validate(); errs != nil {
		respondValidation(w, "Invalid password data", errs)
		return
	}

	user, err := a.stores.Users.FindByUsername(*in.Username)
	if err != nil {
		respondInternal(w, "change password lookup failed", err)
		return
	}
	if user == nil || user.Password != *in.OldPassword {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := a.stores.Users.UpdatePassword(user.ID, *in.NewPassword); err != nil {
		respondInternal(w, "change password failed", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
