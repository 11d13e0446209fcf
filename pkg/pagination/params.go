package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page  int // 1-based page number
	Limit int // Items per page
}

// ParseQueryParams parses pagination parameters from HTTP request query string.
// Returns Params with defaults if parameters are missing.
//
// Query parameters:
//   - page: Page number (must be positive integer)
//   - limit: Items per page (must be between 1 and config.MaxLimit)
//
// Returns an error wrapping ErrInvalidPage or ErrInvalidLimit if a parameter
// is present but invalid.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{
		Page:  config.DefaultPage,
		Limit: config.DefaultLimit,
	}

	query := r.URL.Query()

	if pageStr := query.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return params, fmt.Errorf("%w: page must be a positive integer", ErrInvalidPage)
		}
		params.Page = page
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > config.MaxLimit {
			return params, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidLimit, config.MaxLimit)
		}
		params.Limit = limit
	}

	return params, nil
}

// Helper builds a Helper for params over total items. Range checks stop at
// Validate and WithDefaults; everything after that is normalized by New.
// Call WithDefaults first: a zero Limit left in p falls back to the package
// DefaultLimit, not to a Config's DefaultLimit.
func (p Params) Helper(total int) *Helper {
	return New(Options{
		Limit: p.Limit,
		Page:  p.Page,
		Total: total,
	})
}
