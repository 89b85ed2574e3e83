package utils

// Pagination bounds shared by every listing endpoint.
const (
	DefaultPerPage = 10
	MaxPerPage     = 50
)

// PageWindow is the resolved offset window for one page of a listing.
type PageWindow struct {
	Offset      int
	Limit       int
	CurrentPage int
	TotalPages  int
}

// Paginate resolves a 1-based page request against a total count.
// perPage is capped at MaxPerPage; a non-positive perPage is rejected.
// The requested page is clamped into [1, max(totalPages,1)], so
// concatenating pages 1..totalPages walks the dataset exactly once.
func Paginate(totalCount, page, perPage int) (PageWindow, error) {
	if perPage <= 0 {
		return PageWindow{}, NewInvalidArgument("per_page must be positive")
	}
	if totalCount < 0 {
		return PageWindow{}, NewInvalidArgument("total count cannot be negative")
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	totalPages := (totalCount + perPage - 1) / perPage

	// Clamp into [1, max(totalPages,1)]; an empty dataset pins the
	// window to page 1.
	if page < 1 {
		page = 1
	}
	if totalPages == 0 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}

	return PageWindow{
		Offset:      (page - 1) * perPage,
		Limit:       perPage,
		CurrentPage: page,
		TotalPages:  totalPages,
	}, nil
}
