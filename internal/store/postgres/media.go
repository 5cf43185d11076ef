// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package postgres

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"kandacms/internal/models"
)

// MediaStore handles all media record database operations.
type MediaStore struct {
	db *sql.DB
}

// List returns every media record, newest upload first.
func (s *MediaStore) List() ([]models.Media, error) {
	rows, err := s.db.Query(`
		SELECT id, filename, url, size, upload_date
		FROM media
		ORDER BY upload_date DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	var items []models.Media
	for rows.Next() {
		var m models.Media
		if err := rows.Scan(&m.ID, &m.Filename, &m.URL, &m.Size, &m.UploadDate); err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// FindByID retrieves a media record by its UUID. Returns nil if not found.
func (s *MediaStore) FindByID(id uuid.UUID) (*models.Media, error) {
	m := &models.Media{}
	err := s.db.QueryRow(`
		SELECT id, filename, url, size, upload_date FROM media WHERE id = $1
	`, id).Scan(&m.ID, &m.Filename, &m.URL, &m.Size, &m.UploadDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find media by id: %w", err)
	}
	return m, nil
}

// Create inserts a new media record and returns it with the generated ID.
func (s *MediaStore) Create(m models.Media) (*models.Media, error) {
	created := &models.Media{}
	err := s.db.QueryRow(`
		INSERT INTO media (id, filename, url, size, upload_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, filename, url, size, upload_date
	`, uuid.New(), m.Filename, m.URL, m.Size, m.UploadDate).Scan(
		&created.ID, &created.Filename, &created.URL, &created.Size, &created.UploadDate,
	)
	if err != nil {
		return nil, fmt.Errorf("create media: %w", err)
	}
	return created, nil
}

// Delete removes a media record by ID, reporting whether a row existed.
func (s *MediaStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete media: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete media: %w", err)
	}
	return n > 0, nil
}
