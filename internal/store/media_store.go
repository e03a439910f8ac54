package store

import (
	"sort"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/postdeck/postdeck/internal/models"
)

type MediaStore interface {
	Create(item *models.MediaItem) (*models.MediaItem, error)
	GetAll() []*models.MediaItem
	GetByID(id string) (*models.MediaItem, bool)
	Delete(id string) bool
	Len() int
}

type mediaStore struct {
	mu    sync.RWMutex
	items map[string]*models.MediaItem
	order []string
}

func (s *mediaStore) Create(item *models.MediaItem) (*models.MediaItem, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	item.ID = id
	item.UploadedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[id] = item
	s.order = append(s.order, id)
	return item, nil
}

// GetAll returns media items, most recently uploaded first.
func (s *mediaStore) GetAll() []*models.MediaItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]*models.MediaItem, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.items[id])
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].UploadedAt.After(items[j].UploadedAt)
	})
	return items
}

func (s *mediaStore) GetByID(id string) (*models.MediaItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	return item, ok
}

func (s *mediaStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *mediaStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
