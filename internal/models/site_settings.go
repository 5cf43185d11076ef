// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SiteSettings holds the site-wide image slots and contact details edited
// from the dashboard. It is a singleton row: at most one record ever
// exists, addressed without an id parameter. Image values are URLs or
// data-URIs stored as opaque text.
type SiteSettings struct {
	ID              uuid.UUID `json:"id"`
	HeroImage       *string   `json:"heroImage"`
	AboutImage      *string   `json:"aboutImage"`
	ProgramsImage   *string   `json:"programsImage"`
	FacilitiesImage *string   `json:"facilitiesImage"`
	AdmissionsImage *string   `json:"admissionsImage"`
	CampusImage     *string   `json:"campusImage"`
	DirectorImage   *string   `json:"directorImage"`
	FooterImage     *string   `json:"footerImage"`
	ContactEmail    *string   `json:"contactEmail"`
	ContactPhone    *string   `json:"contactPhone"`
	ContactAddress  *string   `json:"contactAddress"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// SiteSettingsPatch is the partial-update payload for the settings
// singleton. Every column is nullable, so each field is Nullable: an
// absent field leaves the stored value untouched and an explicit null
// clears it.
type SiteSettingsPatch struct {
	HeroImage       Nullable[string] `json:"heroImage"`
	AboutImage      Nullable[string] `json:"aboutImage"`
	ProgramsImage   Nullable[string] `json:"programsImage"`
	FacilitiesImage Nullable[string] `json:"facilitiesImage"`
	AdmissionsImage Nullable[string] `json:"admissionsImage"`
	CampusImage     Nullable[string] `json:"campusImage"`
	DirectorImage   Nullable[string] `json:"directorImage"`
	FooterImage     Nullable[string] `json:"footerImage"`
	ContactEmail    Nullable[string] `json:"contactEmail"`
	ContactPhone    Nullable[string] `json:"contactPhone"`
	ContactAddress  Nullable[string] `json:"contactAddress"`
}

// Validate checks the fields that are present and returns every offending one.
func (p *SiteSettingsPatch) Validate() FieldErrors {
	var errs FieldErrors
	errs = checkNullableLen(errs, "heroImage", p.HeroImage, maxSlotLen)
	errs = checkNullableLen(errs, "aboutImage", p.AboutImage, maxSlotLen)
	errs = checkNullableLen(errs, "programsImage", p.ProgramsImage, maxSlotLen)
	errs = checkNullableLen(errs, "facilitiesImage", p.FacilitiesImage, maxSlotLen)
	errs = checkNullableLen(errs, "admissionsImage", p.AdmissionsImage, maxSlotLen)
	errs = checkNullableLen(errs, "campusImage", p.CampusImage, maxSlotLen)
	errs = checkNullableLen(errs, "directorImage", p.DirectorImage, maxSlotLen)
	errs = checkNullableLen(errs, "footerImage", p.FooterImage, maxSlotLen)
	errs = checkNullableLen(errs, "contactEmail", p.ContactEmail, maxEmailLen)
	errs = checkNullableLen(errs, "contactPhone", p.ContactPhone, maxPhoneLen)
	errs = checkNullableLen(errs, "contactAddress", p.ContactAddress, maxNameLen)
	return errs
}

// Apply copies the present fields onto existing settings. A present null
// clears the stored value.
func (p *SiteSettingsPatch) Apply(s *SiteSettings) {
	if p.HeroImage.Present {
		s.HeroImage = p.HeroImage.Value
	}
	if p.AboutImage.Present {
		s.AboutImage = p.AboutImage.Value
	}
	if p.ProgramsImage.Present {
		s.ProgramsImage = p.ProgramsImage.Value
	}
	if p.FacilitiesImage.Present {
		s.FacilitiesImage = p.FacilitiesImage.Value
	}
	if p.AdmissionsImage.Present {
		s.AdmissionsImage = p.AdmissionsImage.Value
	}
	if p.CampusImage.Present {
		s.CampusImage = p.CampusImage.Value
	}
	if p.DirectorImage.Present {
		s.DirectorImage = p.DirectorImage.Value
	}
	if p.FooterImage.Present {
		s.FooterImage = p.FooterImage.Value
	}
	if p.ContactEmail.Present {
		s.ContactEmail = p.ContactEmail.Value
	}
	if p.ContactPhone.Present {
		s.ContactPhone = p.ContactPhone.Value
	}
	if p.ContactAddress.Present {
		s.ContactAddress = p.ContactAddress.Value
	}
}
