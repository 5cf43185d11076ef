// Package postgres implements the store interfaces on top of PostgreSQL
// using database/sql with the pgx stdlib driver. Every operation is a
// single parameterized statement; no operation spans more than one row,
// so per-statement atomicity is all the isolation needed.
package postgres

import (
	"database/sql"

	"kandacms/internal/store"
)

// New returns a Stores bundle backed by the given database connection.
func New(db *sql.DB) *store.Stores {
	return &store.Stores{
		News:     &NewsStore{db: db},
		Media:    &MediaStore{db: db},
		Contact:  &ContactStore{db: db},
		Settings: &SettingsStore{db: db},
		Users:    &UserStore{db: db},
	}
}
