// Package eventfilter implements the pure event filtering engine: category,
// free-text and location matching, relative calendar time windows, and
// map-eligibility for marker rendering.
package eventfilter

import "time"

// Named time windows accepted by Criteria.Time.
const (
	WindowToday    = "today"
	WindowTomorrow = "tomorrow"
	WindowThisWeek = "this_week"
	WindowWeekend  = "weekend"
	WindowNextWeek = "next_week"
)

// Window is a half-open interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WindowFor resolves a named window relative to now. All windows use
// calendar-day boundaries, never rolling 24-hour offsets. Weeks start on
// Sunday. Unknown names report ok=false.
func WindowFor(name string, now time.Time) (Window, bool) {
	today := startOfDay(now)
	weekday := int(today.Weekday()) // Sunday = 0

	// Start of the current Sunday-based week; the next week begins seven
	// days later.
	thisWeekStart := today.AddDate(0, 0, -weekday)
	nextWeekStart := thisWeekStart.AddDate(0, 0, 7)

	switch name {
	case WindowToday:
		return Window{Start: today, End: today.AddDate(0, 0, 1)}, true

	case WindowTomorrow:
		return Window{Start: today.AddDate(0, 0, 1), End: today.AddDate(0, 0, 2)}, true

	case WindowThisWeek:
		// Only the remaining days of the week: days already passed before
		// today are not offered back to the user.
		return Window{Start: today, End: nextWeekStart}, true

	case WindowWeekend:
		weekendStart := today.AddDate(0, 0, 5-weekday)
		if weekendStart.Before(today) {
			// Already inside the weekend.
			weekendStart = today
		}

		return Window{Start: weekendStart, End: nextWeekStart}, true

	case WindowNextWeek:
		return Window{Start: nextWeekStart, End: nextWeekStart.AddDate(0, 0, 7)}, true
	}

	return Window{}, false
}
