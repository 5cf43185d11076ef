package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"kandacms/internal/models"
)

// NewsStore keeps news posts in a map guarded by an RWMutex.
type NewsStore struct {
	mu    sync.RWMutex
	posts map[uuid.UUID]models.NewsPost
}

// List returns every post, newest editorial date first.
func (s *NewsStore) List() ([]models.NewsPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(models.NewsPost) bool { return true }), nil
}

// ListPublished returns only published posts, newest editorial date first.
func (s *NewsStore) ListPublished() ([]models.NewsPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(p models.NewsPost) bool { return p.IsPublished() }), nil
}

// collect copies matching posts sorted by date descending, id descending
// on ties. Callers must hold at least the read lock.
func (s *NewsStore) collect(keep func(models.NewsPost) bool) []models.NewsPost {
	var posts []models.NewsPost
	for _, p := range s.posts {
		if keep(p) {
			posts = append(posts, p)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].Date != posts[j].Date {
			return posts[i].Date > posts[j].Date
		}
		return laterByID(posts[i].ID, posts[j].ID)
	})
	return posts
}

// FindByID retrieves a post by id. Returns nil if not found.
func (s *NewsStore) FindByID(id uuid.UUID) (*models.NewsPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.posts[id]; ok {
		return &p, nil
	}
	return nil, nil
}

// Create stores a new post under a generated id.
func (s *NewsStore) Create(post models.NewsPost) (*models.NewsPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post.ID = uuid.New()
	s.posts[post.ID] = post
	return &post, nil
}

// Update applies a partial update. Returns nil when the id does not exist.
func (s *NewsStore) Update(id uuid.UUID, patch models.NewsPostPatch) (*models.NewsPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.posts[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(&existing)
	s.posts[id] = existing
	return &existing, nil
}

// Delete removes a post, reporting whether it existed.
func (s *NewsStore) Delete(id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return false, nil
	}
	delete(s.posts, id)
	return true, nil
}
