package service

import (
	"testing"
	"time"

	"github.com/postdeck/postdeck/internal/models"
	"github.com/postdeck/postdeck/internal/store"
	"github.com/postdeck/postdeck/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPostStore serves canned posts; engagement stats only ever come from
// seeding, so summary tests need direct control over the records.
type stubPostStore struct {
	posts []*models.Post
}

func (s *stubPostStore) Create(post *models.Post) (*models.Post, error) { return post, nil }
func (s *stubPostStore) GetAll() []*models.Post                         { return s.posts }
func (s *stubPostStore) GetByID(id string) (*models.Post, bool)         { return nil, false }
func (s *stubPostStore) Update(id string, patch *transfer.PostUpdate) (*models.Post, bool) {
	return nil, false
}
func (s *stubPostStore) Delete(id string) bool { return false }
func (s *stubPostStore) GetByStatus(status string) []*models.Post {
	var out []*models.Post
	for _, p := range s.posts {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}
func (s *stubPostStore) GetByDateRange(start, end time.Time) []*models.Post { return nil }

func statPost(id string, likes, comments, shares, reach int) *models.Post {
	return &models.Post{
		ID:              id,
		Status:          models.PostStatusPublished,
		EngagementStats: models.EngagementStats{Likes: likes, Comments: comments, Shares: shares, Reach: reach},
	}
}

func TestSummaryEngagementRate(t *testing.T) {
	ps := &stubPostStore{posts: []*models.Post{
		statPost("1", 20, 6, 4, 100),
		statPost("2", 30, 5, 5, 200),
		statPost("3", 0, 0, 0, 0),
	}}

	summary := NewDashboardService(ps).Summary()

	assert.Equal(t, 3, summary.TotalPosts)
	assert.Equal(t, 300, summary.TotalReach)
	assert.Equal(t, 23.3, summary.EngagementRate)
	assert.Zero(t, summary.ScheduledPosts)
	assert.Nil(t, summary.NextScheduledPost)
}

func TestSummaryZeroReach(t *testing.T) {
	ps := &stubPostStore{posts: []*models.Post{
		statPost("1", 50, 10, 5, 0),
	}}

	summary := NewDashboardService(ps).Summary()

	assert.Equal(t, 1, summary.TotalPosts)
	assert.Zero(t, summary.TotalReach)
	assert.Zero(t, summary.EngagementRate)
}

func TestSummaryNextScheduledPost(t *testing.T) {
	now := time.Now()
	soon := now.Add(2 * time.Hour)
	later := now.Add(24 * time.Hour)
	past := now.Add(-2 * time.Hour)

	ps := &stubPostStore{posts: []*models.Post{
		{ID: "past", Status: models.PostStatusScheduled, ScheduledFor: &past},
		{ID: "later", Status: models.PostStatusScheduled, ScheduledFor: &later},
		{ID: "soon", Status: models.PostStatusScheduled, ScheduledFor: &soon},
		{ID: "no-time", Status: models.PostStatusScheduled},
	}}

	summary := NewDashboardService(ps).Summary()

	assert.Equal(t, 4, summary.ScheduledPosts)
	require.NotNil(t, summary.NextScheduledPost)
	assert.Equal(t, "soon", summary.NextScheduledPost.ID)
}

func TestSummaryNoFutureScheduledPost(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	ps := &stubPostStore{posts: []*models.Post{
		{ID: "past", Status: models.PostStatusScheduled, ScheduledFor: &past},
	}}

	summary := NewDashboardService(ps).Summary()
	assert.Nil(t, summary.NextScheduledPost)
}

func TestSummaryOnSeededStore(t *testing.T) {
	st := store.New()
	summary := NewDashboardService(st.Posts).Summary()

	// 342+28+15 + 189+12+8 + 567+45+23 = 1229 engagement over 7400 reach.
	assert.Equal(t, 3, summary.TotalPosts)
	assert.Equal(t, 7400, summary.TotalReach)
	assert.Equal(t, 16.6, summary.EngagementRate)
}
