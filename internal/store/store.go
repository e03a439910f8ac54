package store

import "github.com/postdeck/postdeck/internal/models"

// Store bundles the per-entity collections. Everything lives in process
// memory: a restart throws all of it away and New seeds the fixtures again.
type Store struct {
	Posts     PostStore
	Templates TemplateStore
	Media     MediaStore
	Analytics AnalyticsStore
}

// New returns a store seeded with the fixture data.
func New() *Store {
	posts := newPostStore()
	templates := newTemplateStore()
	media := newMediaStore()
	analytics := newAnalyticsStore()
	seed(posts, templates, analytics)

	return &Store{
		Posts:     posts,
		Templates: templates,
		Media:     media,
		Analytics: analytics,
	}
}

// NewEmpty returns a store with no records. Tests use it when they need
// full control over the contents.
func NewEmpty() *Store {
	return &Store{
		Posts:     newPostStore(),
		Templates: newTemplateStore(),
		Media:     newMediaStore(),
		Analytics: newAnalyticsStore(),
	}
}

func newPostStore() *postStore {
	return &postStore{posts: make(map[string]*models.Post)}
}

func newTemplateStore() *templateStore {
	return &templateStore{templates: make(map[string]*models.Template)}
}

func newMediaStore() *mediaStore {
	return &mediaStore{items: make(map[string]*models.MediaItem)}
}

func newAnalyticsStore() *analyticsStore {
	return &analyticsStore{entries: make(map[string]*models.AnalyticsEntry)}
}
