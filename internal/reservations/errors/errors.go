package errors

import (
	"errors"

	"reception/internal/calendar"
)

var (
	ErrNotFound = errors.New("reservation not found")

	ErrRoomNotFound = errors.New("room not found")

	// ErrNotAvailable covers both an empty or inverted date range and the
	// absence of a free room; callers cannot tell the two apart.
	ErrNotAvailable = errors.New("no room available for the requested dates")

	ErrMalformedDate = calendar.ErrMalformedDate
)
