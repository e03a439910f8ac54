package store

import (
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/postdeck/postdeck/internal/models"
)

// TemplateStore has no update operation: templates are created and
// replaced wholesale, never edited in place.
type TemplateStore interface {
	Create(template *models.Template) (*models.Template, error)
	GetAll() []*models.Template
	GetByID(id string) (*models.Template, bool)
	GetByCategory(category string) []*models.Template
	Delete(id string) bool
}

type templateStore struct {
	mu        sync.RWMutex
	templates map[string]*models.Template
	order     []string
}

func (s *templateStore) Create(template *models.Template) (*models.Template, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	template.ID = id
	template.CreatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[id] = template
	s.order = append(s.order, id)
	return template, nil
}

// GetAll returns templates in insertion order.
func (s *templateStore) GetAll() []*models.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(nil)
}

func (s *templateStore) GetByID(id string) (*models.Template, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	template, ok := s.templates[id]
	return template, ok
}

func (s *templateStore) GetByCategory(category string) []*models.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(t *models.Template) bool {
		return t.Category == category
	})
}

func (s *templateStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.templates[id]; !ok {
		return false
	}
	delete(s.templates, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *templateStore) collect(keep func(*models.Template) bool) []*models.Template {
	templates := make([]*models.Template, 0, len(s.order))
	for _, id := range s.order {
		template := s.templates[id]
		if keep == nil || keep(template) {
			templates = append(templates, template)
		}
	}
	return templates
}

func (s *templateStore) put(template *models.Template) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[template.ID] = template
	s.order = append(s.order, template.ID)
}
