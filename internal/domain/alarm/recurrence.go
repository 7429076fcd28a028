package alarm

import "time"

// Schedule is the outcome of a recurrence calculation.
type Schedule struct {
	// Trigger is the full-alert instant.
	Trigger time.Time
	// PreAlert is the pre-alert instant, zero when none applies.
	PreAlert time.Time
}

// HasPreAlert reports whether a pre-alert instant was produced.
func (s Schedule) HasPreAlert() bool {
	return !s.PreAlert.IsZero()
}

// NextOccurrence returns the first instant strictly after now that falls on
// hour:minute of a day in days (any day when days is empty). With skipNext
// the first such instant is passed over and the one after it is returned.
//
// Wall-clock values are built in now's location, so DST transitions shift the
// absolute instant but never the time of day.
func NextOccurrence(now time.Time, hour, minute int, days DaysOfWeek, skipNext bool) time.Time {
	next := occurrenceAfter(now, hour, minute, days)
	if skipNext {
		next = occurrenceAfter(next, hour, minute, days)
	}

	return next
}

// Calculate computes the next schedule of def at now. The pre-alert instant
// is produced only when def asks for it and the offset is positive.
func Calculate(now time.Time, def Definition, preAlertOffset time.Duration) Schedule {
	schedule := Schedule{
		Trigger: NextOccurrence(now, def.Hour, def.Minute, def.Days, def.SkipNext),
	}

	if def.PreAlert && preAlertOffset > 0 {
		schedule.PreAlert = schedule.Trigger.Add(-preAlertOffset)
	}

	return schedule
}

// occurrenceAfter scans today and the following seven days.
// Seven days ahead is the same weekday next week, so a set bit is always found.
func occurrenceAfter(now time.Time, hour, minute int, days DaysOfWeek) time.Time {
	for offset := 0; offset <= 7; offset++ {
		candidate := time.Date(now.Year(), now.Month(), now.Day()+offset, hour, minute, 0, 0, now.Location())
		if !candidate.After(now) {
			continue
		}

		if !days.IsRepeating() || days.Has(candidate.Weekday()) {
			return candidate
		}
	}

	// Unreachable for valid input: every weekday recurs within eight days.
	return time.Date(now.Year(), now.Month(), now.Day()+1, hour, minute, 0, 0, now.Location())
}
