package models

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContactSubmission is a message sent through the public contact form.
// Submissions are append-only; they are never updated or deleted.
type ContactSubmission struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// ContactInput is the public contact form payload. SubmittedAt is always
// stamped server-side.
type ContactInput struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Message *string `json:"message"`
}

// Validate checks the payload and returns every offending field.
func (in *ContactInput) Validate() FieldErrors {
	var errs FieldErrors
	errs = requireString(errs, "name", in.Name, maxNameLen)
	errs = requireString(errs, "email", in.Email, maxEmailLen)
	if in.Email != nil && strings.TrimSpace(*in.Email) != "" {
		if _, err := mail.ParseAddress(strings.TrimSpace(*in.Email)); err != nil {
			errs = errs.Add("email", "must be a valid email address")
		}
	}
	errs = checkLenOnly(errs, "phone", in.Phone, maxPhoneLen)
	errs = requireString(errs, "message", in.Message, maxMessageLen)
	return errs
}

// Normalize produces a submission from a validated payload, stamping the
// submission time.
func (in *ContactInput) Normalize(now time.Time) ContactSubmission {
	return ContactSubmission{
		Name:        strings.TrimSpace(*in.Name),
		Email:       strings.TrimSpace(*in.Email),
		Phone:       in.Phone,
		Message:     *in.Message,
		SubmittedAt: now,
	}
}
