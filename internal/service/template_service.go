package service

import (
	"fmt"
	"log/slog"

	"github.com/postdeck/postdeck/internal/models"
	"github.com/postdeck/postdeck/internal/store"
	"github.com/postdeck/postdeck/internal/transfer"
)

type TemplateService interface {
	Create(tc *transfer.TemplateCreation) (*models.Template, error)
	List() []*models.Template
	ListByCategory(category string) []*models.Template
	Info(id string) (*models.Template, bool)
}

type templateService struct {
	ts store.TemplateStore
}

func NewTemplateService(ts store.TemplateStore) TemplateService {
	return &templateService{ts: ts}
}

func (s *templateService) Create(tc *transfer.TemplateCreation) (*models.Template, error) {
	if err := validate.Struct(tc); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	template := &models.Template{
		Name:            tc.Name,
		Description:     tc.Description,
		Category:        tc.Category,
		Platforms:       tc.Platforms,
		ContentTemplate: tc.ContentTemplate,
		ImageURL:        tc.ImageURL,
	}

	created, err := s.ts.Create(template)
	if err != nil {
		slog.Error(err.Error())
		return nil, fmt.Errorf("error creating template: %w", err)
	}
	return created, nil
}

func (s *templateService) List() []*models.Template {
	return s.ts.GetAll()
}

func (s *templateService) ListByCategory(category string) []*models.Template {
	return s.ts.GetByCategory(category)
}

func (s *templateService) Info(id string) (*models.Template, bool) {
	return s.ts.GetByID(id)
}
