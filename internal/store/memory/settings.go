package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"kandacms/internal/models"
)

// SettingsStore holds the site settings singleton. A nil value means
// settings were never written.
type SettingsStore struct {
	mu       sync.RWMutex
	settings *models.SiteSettings
}

// Get returns a copy of the settings, or nil if never written.
func (s *SettingsStore) Get() (*models.SiteSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return nil, nil
	}
	copied := *s.settings
	return &copied, nil
}

// Update upserts the singleton: the first write creates the record, later
// writes mutate it in place. UpdatedAt is stamped on every write.
func (s *SettingsStore) Update(patch models.SiteSettingsPatch) (*models.SiteSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings == nil {
		s.settings = &models.SiteSettings{ID: uuid.New()}
	}
	patch.Apply(s.settings)
	s.settings.UpdatedAt = time.Now()
	copied := *s.settings
	return &copied, nil
}
