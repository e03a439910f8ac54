package store

import (
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/postdeck/postdeck/internal/models"
)

// AnalyticsStore is create-only: entries are never updated or deleted.
type AnalyticsStore interface {
	Create(entry *models.AnalyticsEntry) (*models.AnalyticsEntry, error)
	GetAll() []*models.AnalyticsEntry
	GetByDateRange(startDate, endDate string) []*models.AnalyticsEntry
	GetByPlatform(platform string) []*models.AnalyticsEntry
}

type analyticsStore struct {
	mu      sync.RWMutex
	entries map[string]*models.AnalyticsEntry
	order   []string
}

func (s *analyticsStore) Create(entry *models.AnalyticsEntry) (*models.AnalyticsEntry, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	entry.ID = id
	entry.CreatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = entry
	s.order = append(s.order, id)
	return entry, nil
}

// GetAll returns entries in insertion order.
func (s *analyticsStore) GetAll() []*models.AnalyticsEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(nil)
}

// GetByDateRange filters on the date string, bounds inclusive. Lexical
// comparison matches calendar order for the "2006-01-02" layout.
func (s *analyticsStore) GetByDateRange(startDate, endDate string) []*models.AnalyticsEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(e *models.AnalyticsEntry) bool {
		return e.Date >= startDate && e.Date <= endDate
	})
}

func (s *analyticsStore) GetByPlatform(platform string) []*models.AnalyticsEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(e *models.AnalyticsEntry) bool {
		return e.Platform == platform
	})
}

func (s *analyticsStore) collect(keep func(*models.AnalyticsEntry) bool) []*models.AnalyticsEntry {
	entries := make([]*models.AnalyticsEntry, 0, len(s.order))
	for _, id := range s.order {
		entry := s.entries[id]
		if keep == nil || keep(entry) {
			entries = append(entries, entry)
		}
	}
	return entries
}

func (s *analyticsStore) put(entry *models.AnalyticsEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.ID] = entry
	s.order = append(s.order, entry.ID)
}
