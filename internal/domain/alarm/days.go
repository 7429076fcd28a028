package alarm

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DaysOfWeek is a weekly recurrence set. Bit 0 is Monday and bit 6 is Sunday.
type DaysOfWeek uint8

const (
	// Monday through Sunday are the single-day members of the set.
	Monday DaysOfWeek = 1 << iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday

	// Weekdays is Monday to Friday.
	Weekdays = Monday | Tuesday | Wednesday | Thursday | Friday
	// Weekend is Saturday and Sunday.
	Weekend = Saturday | Sunday
	// EveryDay has all seven bits set.
	EveryDay = Weekdays | Weekend
)

// ErrUnknownDayName is returned by ParseDaysOfWeek for unknown day names.
var ErrUnknownDayName = errors.New("unknown day name")

// dayNames is indexed by bit position.
//
//nolint:gochecknoglobals // Read-only lookup table.
var dayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// bit returns the bit position of the weekday (Monday = 0).
func bit(day time.Weekday) uint {
	return uint((day + 6) % 7)
}

// DayOf returns the single-day set for a time.Weekday.
func DayOf(day time.Weekday) DaysOfWeek {
	return 1 << bit(day)
}

// Has reports whether the weekday is part of the set.
func (d DaysOfWeek) Has(day time.Weekday) bool {
	return d&DayOf(day) != 0
}

// IsRepeating reports whether any day is set.
func (d DaysOfWeek) IsRepeating() bool {
	return d&EveryDay != 0
}

// Valid reports whether only bits 0..6 are used.
func (d DaysOfWeek) Valid() bool {
	return d&^EveryDay == 0
}

// String renders the set as "never", "every day", or a comma-separated day list.
func (d DaysOfWeek) String() string {
	switch d {
	case 0:
		return "never"
	case EveryDay:
		return "every day"
	case Weekdays:
		return "Mon-Fri"
	case Weekend:
		return "Sat-Sun"
	}

	names := make([]string, 0, len(dayNames))

	for i, name := range dayNames {
		if d&(1<<i) != 0 {
			names = append(names, name)
		}
	}

	return strings.Join(names, ",")
}

// ParseDaysOfWeek parses the forms accepted by the CLI: "never", "every day",
// "weekdays", "weekend", day names ("mon,wed"), and ranges ("mon-fri").
func ParseDaysOfWeek(s string) (DaysOfWeek, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch s {
	case "", "never", "none", "once":
		return 0, nil
	case "every day", "everyday", "daily", "all":
		return EveryDay, nil
	case "weekdays":
		return Weekdays, nil
	case "weekend", "weekends":
		return Weekend, nil
	}

	var days DaysOfWeek

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)

		from, to, isRange := strings.Cut(part, "-")
		if !isRange {
			to = from
		}

		first, err := dayIndex(from)
		if err != nil {
			return 0, err
		}

		last, err := dayIndex(to)
		if err != nil {
			return 0, err
		}

		// Ranges wrap around the week, so "sat-mon" is Sat, Sun, Mon.
		for i := first; ; i = (i + 1) % 7 {
			days |= 1 << i

			if i == last {
				break
			}
		}
	}

	return days, nil
}

// dayIndex maps a day name or its three-letter prefix to its bit position.
func dayIndex(name string) (int, error) {
	name = strings.TrimSpace(name)
	if len(name) >= 3 {
		for i, candidate := range dayNames {
			if strings.HasPrefix(name, strings.ToLower(candidate)) {
				return i, nil
			}
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownDayName, name)
}
