package transfer

import "time"

// PostCreation is the insert shape for posts. Server-assigned fields
// (id, createdAt, publishedAt, engagementStats) have no place here.
type PostCreation struct {
	Title        string     `json:"title" validate:"required"`
	Content      string     `json:"content" validate:"required"`
	Platforms    []string   `json:"platforms" validate:"required,min=1,dive,oneof=facebook instagram linkedin twitter"`
	Status       string     `json:"status" validate:"omitempty,oneof=draft scheduled published"`
	ScheduledFor *time.Time `json:"scheduledFor"`
	MediaURL     *string    `json:"mediaUrl"`
	MediaType    *string    `json:"mediaType"`
	TemplateID   *string    `json:"templateId"`
}

// PostUpdate is the partial-update shape. Nil means "leave untouched";
// the field set doubles as the allow-list, so id and createdAt cannot be
// overwritten through it.
type PostUpdate struct {
	Title        *string    `json:"title"`
	Content      *string    `json:"content"`
	Platforms    []string   `json:"platforms" validate:"omitempty,min=1,dive,oneof=facebook instagram linkedin twitter"`
	Status       *string    `json:"status" validate:"omitempty,oneof=draft scheduled published"`
	ScheduledFor *time.Time `json:"scheduledFor"`
	PublishedAt  *time.Time `json:"publishedAt"`
	MediaURL     *string    `json:"mediaUrl"`
	MediaType    *string    `json:"mediaType"`
	TemplateID   *string    `json:"templateId"`
}
