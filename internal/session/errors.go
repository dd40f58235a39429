package session

import "errors"

// Usage errors. These are returned to the caller and never shown as session messages.
var (
	ErrPageOutOfRange = errors.New("page out of range")
	ErrInvalidLimit   = errors.New("invalid page size")
	ErrUnknownRegion  = errors.New("unknown region")
	ErrSearchInFlight = errors.New("search in flight")
)
