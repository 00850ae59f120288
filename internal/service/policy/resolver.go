package policy

import (
	"strconv"
	"strings"
	"time"

	"github.com/tempohq/tempo-backend-go/internal/domain/policy"
)

// Documented fallbacks for missing or malformed policy fields. A broken
// configuration degrades to these, it never blocks an attendance event.
const (
	DefaultOnsiteStart = "09:00"
	DefaultRemoteStart = "08:00"
)

var weekdayOrder = []string{
	policy.Monday,
	policy.Tuesday,
	policy.Wednesday,
	policy.Thursday,
	policy.Friday,
	policy.Saturday,
	policy.Sunday,
}

// Clock is a wall-clock time of day without a date or zone.
type Clock struct {
	Hour   int
	Minute int
}

func (c Clock) String() string {
	return pad2(c.Hour) + ":" + pad2(c.Minute)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// Timings holds the resolved start-of-day wall clocks per work type. Both
// fields are always populated.
type Timings struct {
	OnsiteStart Clock
	RemoteStart Clock
}

// WeekSchedule holds the normalized working/weekend day partition. The two
// sets are always disjoint and non-empty.
type WeekSchedule struct {
	WorkingDays []string
	WeekendDays []string
}

// IsWorkingDay reports whether t's weekday belongs to the working set.
func (w WeekSchedule) IsWorkingDay(t time.Time) bool {
	symbol := WeekdaySymbol(t.Weekday())
	for _, d := range w.WorkingDays {
		if d == symbol {
			return true
		}
	}
	return false
}

// WeekdaySymbol maps a time.Weekday onto the policy vocabulary.
func WeekdaySymbol(d time.Weekday) string {
	switch d {
	case time.Monday:
		return policy.Monday
	case time.Tuesday:
		return policy.Tuesday
	case time.Wednesday:
		return policy.Wednesday
	case time.Thursday:
		return policy.Thursday
	case time.Friday:
		return policy.Friday
	case time.Saturday:
		return policy.Saturday
	default:
		return policy.Sunday
	}
}

// ParseClock parses a "HH:MM" wall-clock string.
func ParseClock(s string) (Clock, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return Clock{}, false
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, true
}

// ResolveTimings substitutes defaults for missing or malformed timing
// fields. A nil policy resolves entirely to defaults.
func ResolveTimings(raw *policy.WorkPolicy) Timings {
	timings := Timings{}
	timings.OnsiteStart, _ = ParseClock(DefaultOnsiteStart)
	timings.RemoteStart, _ = ParseClock(DefaultRemoteStart)

	if raw == nil {
		return timings
	}
	if raw.OnsiteStart != nil {
		if c, ok := ParseClock(*raw.OnsiteStart); ok {
			timings.OnsiteStart = c
		}
	}
	if raw.RemoteStart != nil {
		if c, ok := ParseClock(*raw.RemoteStart); ok {
			timings.RemoteStart = c
		}
	}
	return timings
}

// ResolveWeekSchedule normalizes the raw weekday lists: deduplicates,
// drops symbols outside the vocabulary, sorts into canonical weekday order,
// and removes weekend days that also appear as working days (working-day
// membership wins conflicts). Either set ending up empty substitutes the
// Mon-Fri / Sat-Sun default for both.
func ResolveWeekSchedule(raw *policy.WorkPolicy) WeekSchedule {
	if raw == nil {
		return defaultWeekSchedule()
	}

	working := normalizeDays(raw.WorkingDays, nil)
	weekend := normalizeDays(raw.WeekendDays, working)

	if len(working) == 0 || len(weekend) == 0 {
		return defaultWeekSchedule()
	}
	return WeekSchedule{WorkingDays: working, WeekendDays: weekend}
}

func defaultWeekSchedule() WeekSchedule {
	return WeekSchedule{
		WorkingDays: []string{policy.Monday, policy.Tuesday, policy.Wednesday, policy.Thursday, policy.Friday},
		WeekendDays: []string{policy.Saturday, policy.Sunday},
	}
}

// normalizeDays canonicalizes a weekday list, excluding any symbol already
// claimed by exclude.
func normalizeDays(days []string, exclude []string) []string {
	present := make(map[string]bool, len(days))
	for _, d := range days {
		present[strings.ToUpper(strings.TrimSpace(d))] = true
	}
	for _, d := range exclude {
		delete(present, d)
	}

	var out []string
	for _, symbol := range weekdayOrder {
		if present[symbol] {
			out = append(out, symbol)
		}
	}
	return out
}
