package pagination

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPage marks a page parameter below 1.
	ErrInvalidPage = errors.New("invalid page")
	// ErrInvalidLimit marks a limit parameter outside [1, MaxLimit].
	ErrInvalidLimit = errors.New("invalid limit")
)

// Validate validates pagination parameters against the configuration.
// Unlike Helper, which clamps silently, request input is rejected here so
// callers can answer with a client error.
// Returns an error if:
//   - page is less than 1
//   - limit is less than 1 or greater than config.MaxLimit
func (p Params) Validate(config Config) error {
	if p.Page < 1 {
		return fmt.Errorf("%w: page must be a positive integer", ErrInvalidPage)
	}
	if p.Limit < 1 || p.Limit > config.MaxLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidLimit, config.MaxLimit)
	}
	return nil
}

// WithDefaults applies default values from config to Params.
//
// Rules:
//   - If page <= 0, set to config.DefaultPage
//   - If limit <= 0, set to config.DefaultLimit
//   - If limit > config.MaxLimit, cap to config.MaxLimit
//
// The result is ready for Params.Helper.
func (p Params) WithDefaults(config Config) Params {
	if p.Page <= 0 {
		p.Page = config.DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = config.DefaultLimit
	}
	if p.Limit > config.MaxLimit {
		p.Limit = config.MaxLimit
	}
	return p
}
