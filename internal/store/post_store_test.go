package store

import (
	"testing"
	"time"

	"github.com/postdeck/postdeck/internal/models"
	"github.com/postdeck/postdeck/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftPost(title string) *models.Post {
	return &models.Post{
		Title:     title,
		Content:   "content for " + title,
		Platforms: []string{"instagram"},
		Status:    models.PostStatusDraft,
	}
}

func TestPostCreateAssignsDefaults(t *testing.T) {
	s := NewEmpty()

	created, err := s.Posts.Create(draftPost("first"))
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Nil(t, created.PublishedAt)
	assert.Equal(t, models.EngagementStats{}, created.EngagementStats)

	second, err := s.Posts.Create(draftPost("second"))
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, second.ID)
}

func TestPostCreatePublishedStampsPublishedAt(t *testing.T) {
	s := NewEmpty()

	post := draftPost("launch")
	post.Status = models.PostStatusPublished

	created, err := s.Posts.Create(post)
	require.NoError(t, err)
	require.NotNil(t, created.PublishedAt)
	assert.WithinDuration(t, time.Now(), *created.PublishedAt, time.Second)
}

func TestPostReadAfterCreate(t *testing.T) {
	s := NewEmpty()

	created, err := s.Posts.Create(draftPost("readable"))
	require.NoError(t, err)

	got, ok := s.Posts.GetByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)
}

func TestPostGetByIDUnknown(t *testing.T) {
	s := NewEmpty()

	_, ok := s.Posts.GetByID("nope")
	assert.False(t, ok)
}

func TestPostGetAllNewestFirst(t *testing.T) {
	s := New()

	posts := s.Posts.GetAll()
	require.Len(t, posts, 3)
	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i].CreatedAt.After(posts[i-1].CreatedAt))
	}
	assert.Equal(t, "Summer Sale Campaign", posts[0].Title)
}

func TestPostUpdateMergesOnlyProvidedFields(t *testing.T) {
	s := NewEmpty()

	created, err := s.Posts.Create(draftPost("original title"))
	require.NoError(t, err)

	newTitle := "updated title"
	newStatus := models.PostStatusScheduled
	when := time.Now().Add(48 * time.Hour)
	updated, ok := s.Posts.Update(created.ID, &transfer.PostUpdate{
		Title:        &newTitle,
		Status:       &newStatus,
		ScheduledFor: &when,
	})
	require.True(t, ok)

	assert.Equal(t, "updated title", updated.Title)
	assert.Equal(t, models.PostStatusScheduled, updated.Status)
	require.NotNil(t, updated.ScheduledFor)
	assert.True(t, updated.ScheduledFor.Equal(when))

	// Untouched fields survive, id and createdAt never move.
	assert.Equal(t, created.Content, updated.Content)
	assert.Equal(t, created.Platforms, updated.Platforms)
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))

	got, ok := s.Posts.GetByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, updated, got)
}

func TestPostUpdateUnknownID(t *testing.T) {
	s := NewEmpty()

	title := "anything"
	_, ok := s.Posts.Update("missing", &transfer.PostUpdate{Title: &title})
	assert.False(t, ok)
}

func TestPostDeleteTwice(t *testing.T) {
	s := NewEmpty()

	created, err := s.Posts.Create(draftPost("doomed"))
	require.NoError(t, err)

	assert.True(t, s.Posts.Delete(created.ID))
	_, ok := s.Posts.GetByID(created.ID)
	assert.False(t, ok)
	assert.False(t, s.Posts.Delete(created.ID))
}

func TestPostGetByStatus(t *testing.T) {
	s := NewEmpty()

	_, err := s.Posts.Create(draftPost("draft one"))
	require.NoError(t, err)

	scheduled := draftPost("scheduled one")
	scheduled.Status = models.PostStatusScheduled
	_, err = s.Posts.Create(scheduled)
	require.NoError(t, err)

	drafts := s.Posts.GetByStatus(models.PostStatusDraft)
	require.Len(t, drafts, 1)
	assert.Equal(t, "draft one", drafts[0].Title)

	assert.Empty(t, s.Posts.GetByStatus(models.PostStatusPublished))
}

func TestPostGetByDateRange(t *testing.T) {
	s := NewEmpty()

	created, err := s.Posts.Create(draftPost("today"))
	require.NoError(t, err)

	day := created.CreatedAt.Format("2006-01-02")
	start, _ := time.Parse("2006-01-02", day)
	end := start.Add(24*time.Hour - time.Nanosecond)

	inRange := s.Posts.GetByDateRange(start, end)
	require.Len(t, inRange, 1)
	assert.Equal(t, created.ID, inRange[0].ID)

	past := s.Posts.GetByDateRange(start.AddDate(0, 0, -7), start.AddDate(0, 0, -6))
	assert.Empty(t, past)
}
