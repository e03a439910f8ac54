package store

import (
	"testing"
	"time"

	"github.com/postdeck/postdeck/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaStoreEmptyOnSeed(t *testing.T) {
	s := New()

	assert.Zero(t, s.Media.Len())
	assert.Empty(t, s.Media.GetAll())
}

func TestMediaCreateAndDelete(t *testing.T) {
	s := NewEmpty()

	created, err := s.Media.Create(&models.MediaItem{
		Filename:     "abc123.png",
		OriginalName: "banner.png",
		MimeType:     "image/png",
		Size:         2048,
		URL:          "/uploads/abc123.png",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.UploadedAt.IsZero())
	assert.Equal(t, 1, s.Media.Len())

	got, ok := s.Media.GetByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)

	assert.True(t, s.Media.Delete(created.ID))
	_, ok = s.Media.GetByID(created.ID)
	assert.False(t, ok)
	assert.False(t, s.Media.Delete(created.ID))
	assert.Zero(t, s.Media.Len())
}

func TestMediaGetAllNewestFirst(t *testing.T) {
	s := NewEmpty()

	first, err := s.Media.Create(&models.MediaItem{Filename: "a.png", OriginalName: "a.png", MimeType: "image/png", Size: 1, URL: "/uploads/a.png"})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := s.Media.Create(&models.MediaItem{Filename: "b.png", OriginalName: "b.png", MimeType: "image/png", Size: 1, URL: "/uploads/b.png"})
	require.NoError(t, err)

	items := s.Media.GetAll()
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)
}
