package models

// PageRequest is the shared pagination contract for listing operations.
// Page is 1-based; PerPage is bounded by the pagination utility.
type PageRequest struct {
	Page    int `form:"page" json:"page"`
	PerPage int `form:"per_page" json:"per_page"`
}

// Page is one page of an ordered, finite result set. A fresh query must
// be issued per page; pages are not restartable cursors.
type Page[T any] struct {
	Items       []T `json:"items"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}
