package recurrence

import (
	"fmt"
	"strings"
	"time"

	"planner-recurrence/internal/model"
)

// Period is the closed set of recurrence cadences. Each variant carries
// only the fields that apply to it, so an impossible combination (repeat
// days on a monthly rule, say) cannot be represented.
type Period interface {
	isPeriod()
}

// Daily repeats every Every days.
type Daily struct {
	Every int
}

// Weekly repeats every Every weeks, or on the listed weekdays when Days
// is non-empty (in which case Every does not participate; inherited
// behavior of the original engine).
type Weekly struct {
	Every int
	Days  []time.Weekday
}

// Monthly repeats every Every calendar months.
type Monthly struct {
	Every int
}

// Yearly repeats every Every calendar years.
type Yearly struct {
	Every int
}

func (Daily) isPeriod()   {}
func (Weekly) isPeriod()  {}
func (Monthly) isPeriod() {}
func (Yearly) isPeriod()  {}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParsePeriod builds a Period from stored rule fields. A non-positive
// value defaults to 1. Unknown weekday names in repeatDays are skipped;
// unknown period types are an error.
func ParsePeriod(periodType string, periodValue int, repeatDays string) (Period, error) {
	if periodValue <= 0 {
		periodValue = 1
	}

	switch strings.ToLower(strings.TrimSpace(periodType)) {
	case model.PeriodDaily:
		return Daily{Every: periodValue}, nil
	case model.PeriodWeekly:
		return Weekly{Every: periodValue, Days: parseWeekdays(repeatDays)}, nil
	case model.PeriodMonthly:
		return Monthly{Every: periodValue}, nil
	case model.PeriodYearly:
		return Yearly{Every: periodValue}, nil
	default:
		return nil, fmt.Errorf("unknown period type %q", periodType)
	}
}

func parseWeekdays(raw string) []time.Weekday {
	var days []time.Weekday
	seen := make(map[time.Weekday]bool)
	for _, part := range strings.Split(raw, ",") {
		day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(part))]
		if !ok || seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	return days
}
