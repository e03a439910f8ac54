package transfer

// AnalyticsCreation is the insert shape for analytics entries. Value is
// stored as-is; unit conversion (the UI renders some values /10 as
// percentages) is the caller's business.
type AnalyticsCreation struct {
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Platform string `json:"platform" validate:"required"`
	Metric   string `json:"metric" validate:"required"`
	Value    int    `json:"value" validate:"min=0"`
}
