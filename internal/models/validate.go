// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validation limits per field.
const (
	maxTitleLen    = 300
	maxContentLen  = 100_000
	maxExcerptLen  = 1_000
	maxCategoryLen = 100
	maxAuthorLen   = 100
	maxNameLen     = 200
	maxEmailLen    = 320
	maxPhoneLen    = 50
	maxMessageLen  = 10_000
	maxFilenameLen = 300
	maxURLLen      = 10_000_000 // data-URIs are stored inline as opaque text
	maxSizeLen     = 50
	maxSlotLen     = 10_000_000
	maxUsernameLen = 100
	maxPasswordLen = 200
)

// FieldError describes a single rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors collects every offending field of a payload. A nil slice
// means the payload is valid.
type FieldErrors []FieldError

// Error implements the error interface, joining all field messages.
func (e FieldErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a field error and returns the extended slice.
func (e FieldErrors) Add(field, message string) FieldErrors {
	return append(e, FieldError{Field: field, Message: message})
}

func tooLong(max int) string {
	return fmt.Sprintf("is too long (max %d characters)", max)
}

// requireString validates a mandatory string field: present, non-blank
// after trimming, and within the length limit.
func requireString(errs FieldErrors, field string, v *string, max int) FieldErrors {
	if v == nil || strings.TrimSpace(*v) == "" {
		return errs.Add(field, "is required")
	}
	if utf8.RuneCountInString(*v) > max {
		return errs.Add(field, tooLong(max))
	}
	return errs
}

// checkPresentString validates an optional string field: when present it
// must be non-blank and within the length limit.
func checkPresentString(errs FieldErrors, field string, v *string, max int) FieldErrors {
	if v == nil {
		return errs
	}
	return requireString(errs, field, v, max)
}

// checkLenOnly validates an optional string field against a length limit,
// allowing blank values.
func checkLenOnly(errs FieldErrors, field string, v *string, max int) FieldErrors {
	if v != nil && utf8.RuneCountInString(*v) > max {
		return errs.Add(field, tooLong(max))
	}
	return errs
}

// checkNullableLen validates a nullable patch field against a length
// limit. An absent field or an explicit null is always valid.
func checkNullableLen(errs FieldErrors, field string, v Nullable[string], max int) FieldErrors {
	return checkLenOnly(errs, field, v.Value, max)
}
