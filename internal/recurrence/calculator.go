// Package recurrence computes the next due occurrence of a recurrence
// rule. All arithmetic happens in UTC; callers convert for display only.
package recurrence

import "time"

// Schedule is a rule's cadence plus its validity window.
type Schedule struct {
	Period  Period
	Forever bool
	// End bounds the last admissible occurrence when Forever is false.
	// A finite schedule with no End never fires.
	End *time.Time
}

// ActiveAt reports whether the schedule may still produce occurrences.
func (s Schedule) ActiveAt(now time.Time) bool {
	if s.Forever {
		return true
	}
	return s.End != nil && !s.End.Before(now)
}

// Next returns the first occurrence strictly after now, computed from the
// fixed anchor. Callers pass now as the anchor when the originating task
// has no due time. The second return is false when the schedule is
// inactive, unconfigured, or the occurrence would fall past End.
func (s Schedule) Next(anchor, now time.Time) (time.Time, bool) {
	now = now.UTC()
	if !s.ActiveAt(now) {
		return time.Time{}, false
	}

	candidate := anchor.UTC()
	switch p := s.Period.(type) {
	case Daily:
		candidate = stepWhileDue(candidate, now, 0, 0, p.Every)
	case Weekly:
		if len(p.Days) == 0 {
			candidate = stepWhileDue(candidate, now, 0, 0, 7*p.Every)
		} else {
			candidate = nextListedWeekday(p.Days, candidate, now)
		}
	case Monthly:
		candidate = stepWhileDue(candidate, now, 0, p.Every, 0)
	case Yearly:
		candidate = stepWhileDue(candidate, now, p.Every, 0, 0)
	default:
		return time.Time{}, false
	}

	if !s.Forever && s.End != nil && candidate.After(*s.End) {
		return time.Time{}, false
	}
	return candidate, true
}

// stepWhileDue advances candidate by the given calendar step until it is
// strictly after now. AddDate normalizes out-of-range days, so a monthly
// step from Jan 31 rolls over into early March when February is shorter;
// that roll-over is the chosen behavior, not clamping.
func stepWhileDue(candidate, now time.Time, years, months, days int) time.Time {
	for !candidate.After(now) {
		candidate = candidate.AddDate(years, months, days)
	}
	return candidate
}

// nextListedWeekday scans day by day from now across the next two weeks
// for the first listed weekday whose anchor time-of-day is still ahead.
// The fallback one week out only triggers when the scan finds nothing.
func nextListedWeekday(days []time.Weekday, anchor, now time.Time) time.Time {
	for offset := 0; offset < 14; offset++ {
		day := now.AddDate(0, 0, offset)
		if !listedDay(days, day.Weekday()) {
			continue
		}
		candidate := atAnchorTime(day, anchor)
		if candidate.After(now) {
			return candidate
		}
	}
	return atAnchorTime(now.AddDate(0, 0, 7), anchor)
}

func listedDay(days []time.Weekday, d time.Weekday) bool {
	for _, day := range days {
		if day == d {
			return true
		}
	}
	return false
}

// atAnchorTime keeps day's date and takes hour/minute from the anchor.
func atAnchorTime(day, anchor time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		anchor.Hour(), anchor.Minute(), 0, 0, day.Location())
}
