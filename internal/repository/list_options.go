package repository

import "hrm-backend/internal/apperror"

const (
	// DefaultLimit and MaxLimit bound every paginated read.
	DefaultLimit = 100
	MaxLimit     = 100
)

// ListOptions carries pagination, ordering and explicit eager-loading flags.
// Relations are never fetched implicitly; the caller opts in so I/O cost
// stays visible at the call site.
type ListOptions struct {
	Skip    int
	Limit   int
	OrderBy string

	IncludeDepartment bool
	IncludePosition   bool
}

// Normalize validates pagination bounds and applies the default/cap.
func (o ListOptions) Normalize() (ListOptions, error) {
	if o.Skip < 0 {
		return o, apperror.InvalidValue("pagination", "skip must be non-negative")
	}
	if o.Limit < 0 {
		return o, apperror.InvalidValue("pagination", "limit must be non-negative")
	}
	if o.Limit == 0 || o.Limit > MaxLimit {
		o.Limit = DefaultLimit
	}
	return o, nil
}
