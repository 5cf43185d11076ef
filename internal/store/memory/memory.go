// Package memory implements the store interfaces with in-process maps.
// Data does not survive a restart. Each store serializes its operations
// through an RWMutex, so every logical operation runs to completion
// before another one against the same entity begins, the same guarantee
// the database backend gets from per-statement atomicity.
package memory

import (
	"github.com/google/uuid"

	"kandacms/internal/models"
	"kandacms/internal/store"
)

// New returns a Stores bundle holding everything in process memory.
func New() *store.Stores {
	return &store.Stores{
		News:     &NewsStore{posts: make(map[uuid.UUID]models.NewsPost)},
		Media:    &MediaStore{items: make(map[uuid.UUID]models.Media)},
		Contact:  &ContactStore{subs: make(map[uuid.UUID]models.ContactSubmission)},
		Settings: &SettingsStore{},
		Users:    &UserStore{users: make(map[uuid.UUID]models.User)},
	}
}

// laterByID is the deterministic tie-break for equal recency values:
// higher id string sorts first.
func laterByID(a, b uuid.UUID) bool {
	return a.String() > b.String()
}
