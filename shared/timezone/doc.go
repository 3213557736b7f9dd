// Package timezone holds the application zone and calendar-date helpers.
//
// The zone comes from APP_TIMEZONE and is loaded when the package is imported:
//
//	now := timezone.Now()
//	t, err := timezone.Parse("01-02-2006", "06-13-2024")
//	days := timezone.DaysBetween(clock.Now(), t)
//
// Services read the current time through a Clock so tests can pin "today".
package timezone
