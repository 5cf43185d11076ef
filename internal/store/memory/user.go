package memory

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"kandacms/internal/models"
)

// UserStore keeps dashboard credentials in a map guarded by an RWMutex.
type UserStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
}

// FindByUsername retrieves a user by username. Returns nil if not found.
func (s *UserStore) FindByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

// Create stores a new user under a generated id. Usernames are unique,
// matching the database constraint.
func (s *UserStore) Create(username, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return nil, fmt.Errorf("create user: username %q already exists", username)
		}
	}
	u := models.User{ID: uuid.New(), Username: username, Password: password}
	s.users[u.ID] = u
	return &u, nil
}

// UpdatePassword replaces a user's stored password. Missing ids are a
// no-op, matching the database backend.
func (s *UserStore) UpdatePassword(id uuid.UUID, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		u.Password = password
		s.users[id] = u
	}
	return nil
}

// Count returns the number of users.
func (s *UserStore) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}
