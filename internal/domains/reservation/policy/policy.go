// Package policy decides whether a requested reservation date can be booked.
//
// A date is bookable when it is at least LeadDays calendar days after today and is not a
// Sunday. With OfferSundaySubstitute the caller is offered the following Monday instead of
// a plain rejection.
package policy

import (
	"cowork/config"
	"cowork/internal/domains/reservation/model"
	"cowork/shared/constant"
	"cowork/shared/timezone"
	"fmt"
	"strings"
	"time"
)

const DefaultLeadDays = 2

type Policy struct {
	LeadDays              int
	OfferSundaySubstitute bool
}

// Confirm is asked whether the suggested substitute date is acceptable.
type Confirm func(suggested time.Time) bool

// Accept and Decline are fixed answers for callers that already know the decision.
func Accept(time.Time) bool  { return true }
func Decline(time.Time) bool { return false }

type Validator struct {
	policy Policy
}

func New(policy Policy) Validator {
	if policy.LeadDays < 0 {
		policy.LeadDays = DefaultLeadDays
	}

	return Validator{policy: policy}
}

func FromConfig(cfg *config.Config) Validator {
	return New(Policy{
		LeadDays:              cfg.App.Booking.LeadDays,
		OfferSundaySubstitute: cfg.App.Booking.OfferSundaySubstitute,
	})
}

func (v Validator) Policy() Policy {
	return v.policy
}

// Decision is a bookable date. Substituted is set when it is the Monday offered for a Sunday.
type Decision struct {
	Date        time.Time
	Substituted bool
}

// Validate parses raw and applies the lead time and Sunday rules relative to today.
// A nil confirm declines any substitute.
func (v Validator) Validate(raw string, today time.Time, confirm Confirm) (time.Time, error) {
	decision, err := v.Decide(raw, today, confirm)

	return decision.Date, err
}

// Decide is Validate reporting whether the Sunday substitute was taken.
func (v Validator) Decide(raw string, today time.Time, confirm Confirm) (Decision, error) {
	date, err := ParseDate(raw)
	if err != nil {
		return Decision{}, err
	}

	if timezone.DaysBetween(today, date) < v.policy.LeadDays {
		return Decision{}, fmt.Errorf("%w, book at least %d days ahead", model.ErrDateTooSoon, v.policy.LeadDays)
	}

	if date.Weekday() != time.Sunday {
		return Decision{Date: date}, nil
	}

	if !v.policy.OfferSundaySubstitute {
		return Decision{}, &model.SundayBlockedError{}
	}

	monday := date.AddDate(0, 0, 1)

	if confirm != nil && confirm(monday) {
		return Decision{Date: monday, Substituted: true}, nil
	}

	return Decision{}, &model.SundayBlockedError{Suggested: monday}
}

// ParseDate reads a MM-DD-YYYY date as a calendar date at UTC midnight.
func ParseDate(raw string) (time.Time, error) {
	date, err := time.Parse(constant.InputDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, model.ErrInvalidDateFormat
	}

	return date, nil
}

// FormatDate renders a calendar date in the MM-DD-YYYY layout.
func FormatDate(date time.Time) string {
	return date.Format(constant.InputDateLayout)
}

// Today is the calendar date of now, at UTC midnight like parsed dates.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
