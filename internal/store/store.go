// Package store defines the storage contract between the HTTP layer and
// persistence. Two interchangeable implementations exist: the postgres
// subpackage backed by a relational database, and the memory subpackage
// holding everything in process. One is selected at startup; the caller
// cannot tell them apart.
//
// Lookups and updates report a missing id as (nil, nil) rather than an
// error, and Delete reports whether a row existed. Handlers map those
// signals to HTTP 404.
package store

import (
	"github.com/google/uuid"

	"kandacms/internal/models"
)

// NewsStore manages news posts. List results are ordered by editorial
// date descending, ties broken by id descending.
type NewsStore interface {
	List() ([]models.NewsPost, error)
	ListPublished() ([]models.NewsPost, error)
	FindByID(id uuid.UUID) (*models.NewsPost, error)
	Create(post models.NewsPost) (*models.NewsPost, error)
	Update(id uuid.UUID, patch models.NewsPostPatch) (*models.NewsPost, error)
	Delete(id uuid.UUID) (bool, error)
}

// MediaStore manages media records. There is no update operation; assets
// are immutable once created. List is ordered by upload date descending,
// ties broken by id descending.
type MediaStore interface {
	List() ([]models.Media, error)
	FindByID(id uuid.UUID) (*models.Media, error)
	Create(m models.Media) (*models.Media, error)
	Delete(id uuid.UUID) (bool, error)
}

// ContactStore manages contact submissions. Append-only: no update, no
// delete. List is ordered by submission time descending.
type ContactStore interface {
	List() ([]models.ContactSubmission, error)
	Create(sub models.ContactSubmission) (*models.ContactSubmission, error)
}

// SettingsStore manages the site settings singleton. Get returns nil when
// settings have never been written. Update applies upsert semantics: when
// no row exists it creates one, and it stamps UpdatedAt on every write,
// so the row count never exceeds one.
type SettingsStore interface {
	Get() (*models.SiteSettings, error)
	Update(patch models.SiteSettingsPatch) (*models.SiteSettings, error)
}

// UserStore manages dashboard credentials.
type UserStore interface {
	FindByUsername(username string) (*models.User, error)
	Create(username, password string) (*models.User, error)
	UpdatePassword(id uuid.UUID, password string) error
	Count() (int, error)
}

// Stores bundles one store per entity. Both backends produce this bundle
// from their constructors.
type Stores struct {
	News     NewsStore
	Media    MediaStore
	Contact  ContactStore
	Settings SettingsStore
	Users    UserStore
}
