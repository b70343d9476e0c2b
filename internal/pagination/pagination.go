package pagination

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Metadata describes one page of a larger result set
type Metadata struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

// ComputeMetadata builds page metadata from the caller-supplied page and page size.
// Inputs are not validated or clamped. A non-positive page size yields zero pages.
// HasNext is page < totalPages, so it is also true for negative pages when any page exists.
func ComputeMetadata(page, pageSize, total int) Metadata {
	totalPages := TotalPages(total, pageSize)
	return Metadata{
		Page:        page,
		PageSize:    pageSize,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

// TotalPages returns ceil(total/pageSize), or 0 when pageSize <= 0
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	return pages
}

// Offset returns the index of the first item on page. Callers must bound
// page first, the product is not checked for overflow.
func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}

// SliceForPage returns the items that fall on page. Invalid bounds and
// out-of-range pages yield an empty slice.
func SliceForPage[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize <= 0 {
		return []T{}
	}

	// Bound the page before multiplying so huge pages cannot wrap the offset
	if page > TotalPages(len(items), pageSize) {
		return []T{}
	}

	start := Offset(page, pageSize)

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	// Copy so callers never share the backing array beyond the window
	window := make([]T, end-start)
	copy(window, items[start:end])
	return window
}
