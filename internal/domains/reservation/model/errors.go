package model

import (
	"cowork/shared/constant"
	"cowork/shared/failure"
	"fmt"
	"time"
)

var (
	ErrInvalidDateFormat = failure.BadRequestFromString("date must use the MM-DD-YYYY format")
	ErrIncompleteRange   = fmt.Errorf("%w, start and end must be given together", ErrInvalidDateFormat)
	ErrDateTooSoon       = failure.Unprocessable("reservation date is too soon")
	ErrSundayBlocked     = failure.Unprocessable("reservations are not allowed on Sundays")
	ErrShiftOccupied     = failure.Conflict("shift already reserved for this room and date")
	ErrUnknownClient     = failure.Unprocessable("client does not exist")
	ErrUnknownRoom       = failure.Unprocessable("room does not exist")
	ErrBlankEventName    = failure.BadRequestFromString("event name must not be blank")
	ErrFolioNotFound     = failure.NotFound("reservation folio not found")
	ErrInvalidShift      = failure.BadRequestFromString("shift must be one of morning, afternoon, evening")
	ErrNoReservations    = failure.NotFound("no reservations for the requested date")
)

// SundayBlockedError rejects a Sunday. Suggested holds the following Monday when it was offered.
type SundayBlockedError struct {
	Suggested time.Time
}

func (e *SundayBlockedError) Error() string {
	if e.Suggested.IsZero() {
		return ErrSundayBlocked.Error()
	}

	return fmt.Sprintf("%s, suggested date %s", ErrSundayBlocked.Error(), e.Suggested.Format(constant.InputDateLayout))
}

func (e *SundayBlockedError) Unwrap() error {
	return ErrSundayBlocked
}
