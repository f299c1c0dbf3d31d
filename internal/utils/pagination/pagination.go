package pagination

// maxPageSize caps how many rows one listing call may return.
const maxPageSize = 100

// Normalize clamps raw page/pageSize query values into usable bounds.
// Non-positive pages become 1; a non-positive or oversized pageSize falls
// back to defaultSize.
func Normalize(page, pageSize, defaultSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultSize
	}
	return page, pageSize
}

// Offset converts a 1-based page number into a row offset.
func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}

// LastPage computes the highest page number for a total row count.
// An empty result set still has one (empty) page.
func LastPage(total int64, pageSize int) int {
	if total <= 0 {
		return 1
	}
	last := int((total + int64(pageSize) - 1) / int64(pageSize))
	if last < 1 {
		last = 1
	}
	return last
}
