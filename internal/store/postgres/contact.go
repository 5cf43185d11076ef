package postgres

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"kandacms/internal/models"
)

// ContactStore handles contact submission database operations.
// Submissions are append-only; there is no update or delete.
type ContactStore struct {
	db *sql.DB
}

// List returns every submission, newest first.
func (s *ContactStore) List() ([]models.ContactSubmission, error) {
	rows, err := s.db.Query(`
		SELECT id, name, email, phone, message, submitted_at
		FROM contact_submissions
		ORDER BY submitted_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	defer rows.Close()

	var subs []models.ContactSubmission
	for rows.Next() {
		var c models.ContactSubmission
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scan contact submission: %w", err)
		}
		subs = append(subs, c)
	}
	return subs, rows.Err()
}

// Create inserts a new submission and returns it with the generated ID.
func (s *ContactStore) Create(sub models.ContactSubmission) (*models.ContactSubmission, error) {
	created := &models.ContactSubmission{}
	err := s.db.QueryRow(`
		INSERT INTO contact_submissions (id, name, email, phone, message, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, email, phone, message, submitted_at
	`, uuid.New(), sub.Name, sub.Email, sub.Phone, sub.Message, sub.SubmittedAt).Scan(
		&created.ID, &created.Name, &created.Email, &created.Phone, &created.Message, &created.SubmittedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create contact submission: %w", err)
	}
	return created, nil
}
