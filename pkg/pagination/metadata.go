package pagination

// Metadata is a snapshot of the values a Helper derives, shaped for API
// responses.
type Metadata struct {
	Total        int  `json:"total"`         // Total number of items across all pages
	Page         int  `json:"page"`          // Current page number (1-based)
	Limit        int  `json:"limit"`         // Items per page
	Offset       int  `json:"offset"`        // Items skipped before the current page
	TotalPages   int  `json:"total_pages"`   // Calculated total number of pages
	NextPage     int  `json:"next_page"`     // Current page when there is no next page
	PreviousPage int  `json:"previous_page"` // Current page when there is no previous page
	HasNext      bool `json:"has_next"`
	HasPrevious  bool `json:"has_previous"`
}

// Metadata returns a snapshot of h.
func (h *Helper) Metadata() Metadata {
	return Metadata{
		Total:        h.total,
		Page:         h.page,
		Limit:        h.limit,
		Offset:       h.Offset(),
		TotalPages:   h.PageCount(),
		NextPage:     h.NextPage(),
		PreviousPage: h.PreviousPage(),
		HasNext:      h.HasNext(),
		HasPrevious:  h.HasPrevious(),
	}
}
