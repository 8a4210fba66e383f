package repository

// Page size limits shared by every comment listing
const (
	DefaultPageSize = 15
	MaxPerPage      = 50
	MaxCursorLimit  = 30
)

// ClampPerPage bounds an offset-mode page size to [1, MaxPerPage]
func ClampPerPage(n int) int {
	return clampSize(n, MaxPerPage)
}

// ClampCursorLimit bounds a cursor-mode page size to [1, MaxCursorLimit]
func ClampCursorLimit(n int) int {
	return clampSize(n, MaxCursorLimit)
}

func clampSize(n, max int) int {
	if n <= 0 {
		n = DefaultPageSize
	}
	if n > max {
		n = max
	}
	return n
}

func lastPage(total int64, perPage int) int {
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	if pages < 1 {
		return 1
	}
	return pages
}
