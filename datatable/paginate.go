package datatable

// PageSize is the fixed number of rows per page.
const PageSize = 10

// Paginate returns the 1-based page slice of rows. Pages out of range
// clamp to an empty slice rather than panicking.
func Paginate(rows []Row, page, pageSize int) []Row {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(rows) {
		return nil
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// TotalPages reports how many pages count rows occupy; never below 1 so
// the pagination control always has a current page to display.
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}
