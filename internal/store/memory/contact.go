package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"kandacms/internal/models"
)

// ContactStore keeps contact submissions in a map guarded by an RWMutex.
// Append-only: no update, no delete.
type ContactStore struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]models.ContactSubmission
}

// List returns every submission, newest first.
func (s *ContactStore) List() ([]models.ContactSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var subs []models.ContactSubmission
	for _, c := range s.subs {
		subs = append(subs, c)
	}
	sort.Slice(subs, func(i, j int) bool {
		if !subs[i].SubmittedAt.Equal(subs[j].SubmittedAt) {
			return subs[i].SubmittedAt.After(subs[j].SubmittedAt)
		}
		return laterByID(subs[i].ID, subs[j].ID)
	})
	return subs, nil
}

// Create stores a new submission under a generated id.
func (s *ContactStore) Create(sub models.ContactSubmission) (*models.ContactSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub.ID = uuid.New()
	s.subs[sub.ID] = sub
	return &sub, nil
}
