package service

import (
	"fmt"
	"log/slog"

	"github.com/postdeck/postdeck/internal/models"
	"github.com/postdeck/postdeck/internal/store"
	"github.com/postdeck/postdeck/internal/transfer"
)

type AnalyticsService interface {
	Create(ac *transfer.AnalyticsCreation) (*models.AnalyticsEntry, error)
	List() []*models.AnalyticsEntry
	ListByDateRange(startDate, endDate string) []*models.AnalyticsEntry
	ListByPlatform(platform string) []*models.AnalyticsEntry
}

type analyticsService struct {
	as store.AnalyticsStore
}

func NewAnalyticsService(as store.AnalyticsStore) AnalyticsService {
	return &analyticsService{as: as}
}

func (s *analyticsService) Create(ac *transfer.AnalyticsCreation) (*models.AnalyticsEntry, error) {
	if err := validate.Struct(ac); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	entry := &models.AnalyticsEntry{
		Date:     ac.Date,
		Platform: ac.Platform,
		Metric:   ac.Metric,
		Value:    ac.Value,
	}

	created, err := s.as.Create(entry)
	if err != nil {
		slog.Error(err.Error())
		return nil, fmt.Errorf("error creating analytics entry: %w", err)
	}
	return created, nil
}

func (s *analyticsService) List() []*models.AnalyticsEntry {
	return s.as.GetAll()
}

func (s *analyticsService) ListByDateRange(startDate, endDate string) []*models.AnalyticsEntry {
	return s.as.GetByDateRange(startDate, endDate)
}

func (s *analyticsService) ListByPlatform(platform string) []*models.AnalyticsEntry {
	return s.as.GetByPlatform(platform)
}
