// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Media is an uploaded asset record. The URL may be a remote address or a
// data-URI; either way it is stored as opaque text, there is no binary
// storage behind it. Size is the human-readable string the uploader
// reported (e.g. "1.2 MB").
type Media struct {
	ID         uuid.UUID `json:"id"`
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	Size       string    `json:"size"`
	UploadDate time.Time `json:"uploadDate"`
}

// MediaInput is the create payload for a media record. UploadDate is
// optional; when absent the storage layer stamps it at insert.
type MediaInput struct {
	Filename   *string    `json:"filename"`
	URL        *string    `json:"url"`
	Size       *string    `json:"size"`
	UploadDate *time.Time `json:"uploadDate"`
}

// Validate checks a create payload and returns every offending field.
func (in *MediaInput) Validate() FieldErrors {
	var errs FieldErrors
	errs = requireString(errs, "filename", in.Filename, maxFilenameLen)
	errs = requireString(errs, "url", in.URL, maxURLLen)
	errs = requireString(errs, "size", in.Size, maxSizeLen)
	return errs
}

// Normalize produces a media record from a validated payload.
func (in *MediaInput) Normalize(now time.Time) Media {
	m := Media{
		Filename:   *in.Filename,
		URL:        *in.URL,
		Size:       *in.Size,
		UploadDate: now,
	}
	if in.UploadDate != nil {
		m.UploadDate = *in.UploadDate
	}
	return m
}
