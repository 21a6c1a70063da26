package errorvalues

import (
	"errors"
	"fmt"
)

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrAuthRequired     = errors.New("Authentication required")
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrSubEventNotFound = errors.New("subevent not found")
	// Returned when a resource exists but belongs to another user.
	// Handlers answer it the same way as a missing resource.
	ErrWrongOwner = errors.New("resource belongs to another user")
)

var (
	ErrDailyLogNotFound = errors.New("daily log not found")
	// Unique (user_id, date) violation on insert
	ErrDailyLogExists = errors.New("daily log for this date already exists")
)

// ErrValidation is wrapped by every input validation failure, so callers can
// match the whole class with errors.Is.
var ErrValidation = errors.New("validation error")

var (
	ErrInvalidDate           = fmt.Errorf("%w: invalid date, expected DD-MM-YYYY", ErrValidation)
	ErrInvalidTime           = fmt.Errorf("%w: invalid time, expected HH:MM", ErrValidation)
	ErrInvalidMonth          = fmt.Errorf("%w: month must be in range 1..12", ErrValidation)
	ErrInvalidColor          = fmt.Errorf("%w: color must be a hex value", ErrValidation)
	ErrEndBeforeStart        = fmt.Errorf("%w: end is before start", ErrValidation)
	ErrSubEventOutsideParent = fmt.Errorf("%w: subevent outside parent timeframe", ErrValidation)
)
