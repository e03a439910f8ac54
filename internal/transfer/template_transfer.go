package transfer

// TemplateCreation is the insert shape for templates.
type TemplateCreation struct {
	Name            string   `json:"name" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	Category        string   `json:"category" validate:"required"`
	Platforms       []string `json:"platforms" validate:"required,min=1,dive,oneof=facebook instagram linkedin twitter"`
	ContentTemplate string   `json:"contentTemplate" validate:"required"`
	ImageURL        *string  `json:"imageUrl"`
}
