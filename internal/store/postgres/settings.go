// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kandacms/internal/models"
)

// SettingsStore manages the site settings singleton row. The table has a
// constant unique `singleton` column, so the upsert is one statement and
// the row count can never drift above one.
type SettingsStore struct {
	db *sql.DB
}

const settingsColumns = `id, hero_image, about_image, programs_image, facilities_image,
	admissions_image, campus_image, director_image, footer_image,
	contact_email, contact_phone, contact_address, updated_at`

func scanSettings(row interface{ Scan(...any) error }) (*models.SiteSettings, error) {
	s := &models.SiteSettings{}
	err := row.Scan(
		&s.ID, &s.HeroImage, &s.AboutImage, &s.ProgramsImage, &s.FacilitiesImage,
		&s.AdmissionsImage, &s.CampusImage, &s.DirectorImage, &s.FooterImage,
		&s.ContactEmail, &s.ContactPhone, &s.ContactAddress, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the settings row, or nil if settings were never written.
func (s *SettingsStore) Get() (*models.SiteSettings, error) {
	settings, err := scanSettings(s.db.QueryRow(`
		SELECT ` + settingsColumns + ` FROM site_settings LIMIT 1
	`))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get site settings: %w", err)
	}
	return settings, nil
}

// Update upserts the singleton: inserts the row if missing, otherwise
// rewrites each column from a value/presence parameter pair, so an absent
// patch field keeps the stored value and a present null clears it.
// UpdatedAt is stamped on every write.
func (s *SettingsStore) Update(patch models.SiteSettingsPatch) (*models.SiteSettings, error) {
	updated, err := scanSettings(s.db.QueryRow(`
		INSERT INTO site_settings (
			id, singleton, hero_image, about_image, programs_image, facilities_image,
			admissions_image, campus_image, director_image, footer_image,
			contact_email, contact_phone, contact_address, updated_at
		)
		VALUES ($1, TRUE, $2, $4, $6, $8, $10, $12, $14, $16, $18, $20, $22, $24)
		ON CONFLICT (singleton) DO UPDATE SET
			hero_image       = CASE WHEN $3  THEN $2  ELSE site_settings.hero_image END,
			about_image      = CASE WHEN $5  THEN $4  ELSE site_settings.about_image END,
			programs_image   = CASE WHEN $7  THEN $6  ELSE site_settings.programs_image END,
			facilities_image = CASE WHEN $9  THEN $8  ELSE site_settings.facilities_image END,
			admissions_image = CASE WHEN $11 THEN $10 ELSE site_settings.admissions_image END,
			campus_image     = CASE WHEN $13 THEN $12 ELSE site_settings.campus_image END,
			director_image   = CASE WHEN $15 THEN $14 ELSE site_settings.director_image END,
			footer_image     = CASE WHEN $17 THEN $16 ELSE site_settings.footer_image END,
			contact_email    = CASE WHEN $19 THEN $18 ELSE site_settings.contact_email END,
			contact_phone    = CASE WHEN $21 THEN $20 ELSE site_settings.contact_phone END,
			contact_address  = CASE WHEN $23 THEN $22 ELSE site_settings.contact_address END,
			updated_at       = EXCLUDED.updated_at
		RETURNING `+settingsColumns,
		uuid.New(),
		patch.HeroImage.Value, patch.HeroImage.Present,
		patch.AboutImage.Value, patch.AboutImage.Present,
		patch.ProgramsImage.Value, patch.ProgramsImage.Present,
		patch.FacilitiesImage.Value, patch.FacilitiesImage.Present,
		patch.AdmissionsImage.Value, patch.AdmissionsImage.Present,
		patch.CampusImage.Value, patch.CampusImage.Present,
		patch.DirectorImage.Value, patch.DirectorImage.Present,
		patch.FooterImage.Value, patch.FooterImage.Present,
		patch.ContactEmail.Value, patch.ContactEmail.Present,
		patch.ContactPhone.Value, patch.ContactPhone.Present,
		patch.ContactAddress.Value, patch.ContactAddress.Present,
		time.Now(),
	))
	if err != nil {
		return nil, fmt.Errorf("update site settings: %w", err)
	}
	return updated, nil
}
