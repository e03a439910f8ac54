package models

import "time"

// Template is a reusable content skeleton. ContentTemplate carries
// placeholder tokens such as [PRODUCT_NAME] that the client substitutes;
// this layer stores them verbatim.
type Template struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Platforms       []string  `json:"platforms"`
	ContentTemplate string    `json:"contentTemplate"`
	ImageURL        *string   `json:"imageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
}
