package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"kandacms/internal/models"
)

// MediaStore keeps media records in a map guarded by an RWMutex.
type MediaStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]models.Media
}

// List returns every media record, newest upload first.
func (s *MediaStore) List() ([]models.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []models.Media
	for _, m := range s.items {
		items = append(items, m)
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].UploadDate.Equal(items[j].UploadDate) {
			return items[i].UploadDate.After(items[j].UploadDate)
		}
		return laterByID(items[i].ID, items[j].ID)
	})
	return items, nil
}

// FindByID retrieves a media record by id. Returns nil if not found.
func (s *MediaStore) FindByID(id uuid.UUID) (*models.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if m, ok := s.items[id]; ok {
		return &m, nil
	}
	return nil, nil
}

// Create stores a new media record under a generated id.
func (s *MediaStore) Create(m models.Media) (*models.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = uuid.New()
	s.items[m.ID] = m
	return &m, nil
}

// Delete removes a media record, reporting whether it existed.
func (s *MediaStore) Delete(id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}
