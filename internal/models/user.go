// Package models defines the data structures that map to database tables
// and provides the input validation used by the HTTP layer. Input and
// patch types use pointer fields so a partial update can tell an absent
// field from an explicit zero value.
package models

import "github.com/google/uuid"

// User is the dashboard credential record. The site runs on a single
// shared admin credential; the password is stored and compared as
// plaintext, which is a documented weakness of this prototype rather
// than an oversight.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Password string    `json:"-"` // Never serialize the password
}

// PublicUser is the shape of a user returned by the login endpoint.
type PublicUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// Public strips the password for API responses.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username}
}

// LoginInput is the login payload.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangePasswordInput is the change-password payload.
type ChangePasswordInput struct {
	Username    *string `json:"username"`
	OldPassword *string `json:"oldPassword"`
	NewPassword *string `json:"newPassword"`
}

// Validate checks the payload and returns every offending field.
func (in *ChangePasswordInput) Validate() FieldErrors {
	var errs FieldErrors
	errs = requireString(errs, "username", in.Username, maxUsernameLen)
	errs = requireString(errs, "oldPassword", in.OldPassword, maxPasswordLen)
	errs = requireString(errs, "newPassword", in.NewPassword, maxPasswordLen)
	return errs
}
