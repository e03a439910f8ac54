package store

import (
	"sort"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/postdeck/postdeck/internal/models"
	"github.com/postdeck/postdeck/internal/transfer"
)

type PostStore interface {
	Create(post *models.Post) (*models.Post, error)
	GetAll() []*models.Post
	GetByID(id string) (*models.Post, bool)
	Update(id string, patch *transfer.PostUpdate) (*models.Post, bool)
	Delete(id string) bool
	GetByStatus(status string) []*models.Post
	GetByDateRange(start, end time.Time) []*models.Post
}

type postStore struct {
	mu    sync.RWMutex
	posts map[string]*models.Post
	order []string
}

// Create assigns the server-side fields and stores the record. PublishedAt
// is stamped only when the post is created directly as published; the
// engagement counters always start at zero.
func (s *postStore) Create(post *models.Post) (*models.Post, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	post.ID = id
	post.CreatedAt = now
	post.EngagementStats = models.EngagementStats{}
	if post.Status == models.PostStatusPublished {
		post.PublishedAt = &now
	} else {
		post.PublishedAt = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[id] = post
	s.order = append(s.order, id)
	return post, nil
}

// GetAll returns every post, newest first.
func (s *postStore) GetAll() []*models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := s.collect(nil)
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}

func (s *postStore) GetByID(id string) (*models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	return post, ok
}

// Update shallow-merges the patch over the stored record. Fields the patch
// leaves nil stay as they were; id and createdAt are not reachable at all.
func (s *postStore) Update(id string, patch *transfer.PostUpdate) (*models.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, false
	}

	updated := *post
	if patch.Title != nil {
		updated.Title = *patch.Title
	}
	if patch.Content != nil {
		updated.Content = *patch.Content
	}
	if len(patch.Platforms) > 0 {
		updated.Platforms = patch.Platforms
	}
	if patch.Status != nil {
		updated.Status = *patch.Status
	}
	if patch.ScheduledFor != nil {
		updated.ScheduledFor = patch.ScheduledFor
	}
	if patch.PublishedAt != nil {
		updated.PublishedAt = patch.PublishedAt
	}
	if patch.MediaURL != nil {
		updated.MediaURL = patch.MediaURL
	}
	if patch.MediaType != nil {
		updated.MediaType = patch.MediaType
	}
	if patch.TemplateID != nil {
		updated.TemplateID = patch.TemplateID
	}

	s.posts[id] = &updated
	return &updated, true
}

func (s *postStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return false
	}
	delete(s.posts, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *postStore) GetByStatus(status string) []*models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(p *models.Post) bool {
		return p.Status == status
	})
}

// GetByDateRange filters on createdAt, bounds inclusive.
func (s *postStore) GetByDateRange(start, end time.Time) []*models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(p *models.Post) bool {
		return !p.CreatedAt.Before(start) && !p.CreatedAt.After(end)
	})
}

// collect walks the records in insertion order. Callers hold the lock.
func (s *postStore) collect(keep func(*models.Post) bool) []*models.Post {
	posts := make([]*models.Post, 0, len(s.order))
	for _, id := range s.order {
		post := s.posts[id]
		if keep == nil || keep(post) {
			posts = append(posts, post)
		}
	}
	return posts
}

// put inserts a record as-is, fixture ids and timestamps included.
func (s *postStore) put(post *models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[post.ID] = post
	s.order = append(s.order, post.ID)
}
