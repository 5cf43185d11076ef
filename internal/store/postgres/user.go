package postgres

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"kandacms/internal/models"
)

// UserStore handles dashboard credential database operations.
type UserStore struct {
	db *sql.DB
}

// FindByUsername retrieves a user by username. Returns nil if not found.
func (s *UserStore) FindByUsername(username string) (*models.User, error) {
	u := &models.User{}
	err := s.db.QueryRow(`
		SELECT id, username, password FROM users WHERE username = $1
	`, username).Scan(&u.ID, &u.Username, &u.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return u, nil
}

// Create inserts a new user.
func (s *UserStore) Create(username, password string) (*models.User, error) {
	u := &models.User{}
	err := s.db.QueryRow(`
		INSERT INTO users (id, username, password)
		VALUES ($1, $2, $3)
		RETURNING id, username, password
	`, uuid.New(), username, password).Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// UpdatePassword replaces a user's stored password.
func (s *UserStore) UpdatePassword(id uuid.UUID, password string) error {
	_, err := s.db.Exec(`UPDATE users SET password = $1 WHERE id = $2`, password, id)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// Count returns the number of users. Used by the seeder.
func (s *UserStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}
