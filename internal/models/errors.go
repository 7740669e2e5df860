package models

import "errors"

// Error taxonomy shared by services and handlers.
// Handlers map these to HTTP statuses with errors.Is, so wrap them with
// fmt.Errorf("%w: ...") when adding context.
var (
	// ErrInvalidCredentials is returned for an unknown username and for a
	// wrong password alike, so a caller cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotFound is returned when an entity id has no entry.
	ErrNotFound = errors.New("not found")

	// ErrMissingFields is returned when a required field is absent or blank.
	ErrMissingFields = errors.New("missing fields")

	// ErrBadDate is returned when a date field is not a valid YYYY-MM-DD value.
	ErrBadDate = errors.New("invalid date, expected YYYY-MM-DD")
)
