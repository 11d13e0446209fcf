package pagination

import "math"

// CalculateOffset calculates the database OFFSET value based on page number and limit.
// Page numbers are 1-based, so page 1 has offset 0. Pages below 1 and
// negative limits yield 0. Offsets past math.MaxInt saturate at math.MaxInt.
//
// Formula: offset = (page - 1) * limit
//
// Examples:
//   - Page 1, Limit 20 -> Offset 0
//   - Page 2, Limit 20 -> Offset 20
//   - Page 3, Limit 10 -> Offset 20
func CalculateOffset(page, limit int) int {
	if page < 1 || limit <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// CalculateTotalPages calculates the total number of pages based on total items and limit.
// Uses ceiling division to ensure all items are included.
//
// Special cases:
//   - If limit is 0 or negative, returns 0
//   - If total is 0 or negative, returns 0
//   - Otherwise, returns ceil(total / limit)
//
// Examples:
//   - Total 0, Limit 20 -> 0 pages
//   - Total 10, Limit 20 -> 1 page
//   - Total 21, Limit 20 -> 2 pages
//   - Total 100, Limit 0 -> 0 pages
func CalculateTotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}

// pageForOffset returns the 1-based page that contains offset.
func pageForOffset(offset, limit int) int {
	if limit <= 0 || offset <= 0 {
		return 1
	}
	page := offset / limit
	if page == math.MaxInt {
		return page
	}
	return page + 1
}
