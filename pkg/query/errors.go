package query

import "errors"

// Parse-time errors. All of them abort the whole parse; a query string
// with one bad token never yields a partial Query.
var (
	ErrInvalidFilter    = errors.New("invalid filter")
	ErrInvalidCondition = errors.New("invalid filter condition")
	ErrInvalidSort      = errors.New("invalid sort")
	ErrInvalidSortBy    = errors.New("invalid sort by")
	ErrInvalidField     = errors.New("field not allowed")
)
