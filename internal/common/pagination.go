package common

// PageCursor holds pagination metadata for a single result page.
// 모든 페이징 연산은 NewPageCursor 하나로 계산한다 (off-by-one 방지).
type PageCursor struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// NewPageCursor computes pagination metadata over the post-filter total.
// TotalPages is never below 1, so page 1 against an empty total is still
// addressable. Returns ErrInvalidPage when page is outside [1, TotalPages].
func NewPageCursor(total int64, pageSize, page int) (*PageCursor, error) {
	if pageSize < 1 {
		return nil, ErrInvalidInput
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 || page > totalPages {
		return nil, ErrInvalidPage
	}

	return &PageCursor{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page != totalPages,
	}, nil
}

// Bounds returns the half-open slice range [start, end) for this page,
// clipped to the candidate count.
func (c *PageCursor) Bounds(n int) (int, int) {
	start := (c.Page - 1) * c.PageSize
	end := c.Page * c.PageSize
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}
	return start, end
}
