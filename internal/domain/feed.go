package domain

// FeedPage is one page of a ranked feed, as returned to callers.
type FeedPage struct {
	Items      []Post `json:"items"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalItems int    `json:"total_items"`
	TotalPages int    `json:"total_pages"`
}

// PaginatePosts slices a ranked sequence into one page. A page past the end
// is a valid empty page; total pages never drops below one even for an empty
// sequence.
func PaginatePosts(ranked []Post, page, pageSize int) FeedPage {
	totalItems := len(ranked)
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	items := make([]Post, end-start)
	copy(items, ranked[start:end])

	return FeedPage{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
