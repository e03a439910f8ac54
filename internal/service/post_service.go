package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/postdeck/postdeck/internal/models"
	"github.com/postdeck/postdeck/internal/store"
	"github.com/postdeck/postdeck/internal/transfer"
)

var validate = validator.New()

type PostService interface {
	Create(pc *transfer.PostCreation) (*models.Post, error)
	List() []*models.Post
	ListByStatus(status string) []*models.Post
	ListByDateRange(startDate, endDate string) ([]*models.Post, error)
	Info(id string) (*models.Post, bool)
	Update(id string, patch *transfer.PostUpdate) (*models.Post, bool, error)
	Remove(id string) bool
}

type postService struct {
	ps store.PostStore
}

func NewPostService(ps store.PostStore) PostService {
	return &postService{ps: ps}
}

func (s *postService) Create(pc *transfer.PostCreation) (*models.Post, error) {
	if err := validate.Struct(pc); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	status := pc.Status
	if status == "" {
		status = models.PostStatusDraft
	}

	post := &models.Post{
		Title:        pc.Title,
		Content:      pc.Content,
		Platforms:    pc.Platforms,
		Status:       status,
		ScheduledFor: pc.ScheduledFor,
		MediaURL:     pc.MediaURL,
		MediaType:    pc.MediaType,
		TemplateID:   pc.TemplateID,
	}

	created, err := s.ps.Create(post)
	if err != nil {
		slog.Error(err.Error())
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	return created, nil
}

func (s *postService) List() []*models.Post {
	return s.ps.GetAll()
}

func (s *postService) ListByStatus(status string) []*models.Post {
	return s.ps.GetByStatus(status)
}

// ListByDateRange filters on creation date; bounds are calendar dates,
// inclusive at both ends.
func (s *postService) ListByDateRange(startDate, endDate string) ([]*models.Post, error) {
	const layout = "2006-01-02"

	start, err := time.Parse(layout, startDate)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := time.Parse(layout, endDate)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("invalid end date: %w", err)
	}

	// Push the end bound to the last instant of that day so the whole
	// endDate is included.
	end = end.Add(24*time.Hour - time.Nanosecond)

	return s.ps.GetByDateRange(start, end), nil
}

func (s *postService) Info(id string) (*models.Post, bool) {
	return s.ps.GetByID(id)
}

func (s *postService) Update(id string, patch *transfer.PostUpdate) (*models.Post, bool, error) {
	if err := validate.Struct(patch); err != nil {
		slog.Info(err.Error())
		return nil, false, err
	}

	post, ok := s.ps.Update(id, patch)
	return post, ok, nil
}

func (s *postService) Remove(id string) bool {
	return s.ps.Delete(id)
}
