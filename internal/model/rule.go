package model

import "time"

// Recurrence period types as stored on a rule.
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

// RecurrenceRule configures recurrence for exactly one task. The owning
// task's due time is the anchor every occurrence is computed from.
type RecurrenceRule struct {
	ID     uint `gorm:"primaryKey"`
	TaskID uint `gorm:"uniqueIndex"`
	Task   Task `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`

	PeriodType  string
	PeriodValue int `gorm:"default:1"`
	// RepeatDays holds comma-separated lowercase weekday names
	// ("monday,wednesday"); meaningful only for weekly rules.
	RepeatDays     string
	EndDate        *time.Time
	InfiniteRepeat bool `gorm:"default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Active reports whether the rule may still produce occurrences at now.
// A non-infinite rule without an end date never fires.
func (r RecurrenceRule) Active(now time.Time) bool {
	if r.InfiniteRepeat {
		return true
	}
	return r.EndDate != nil && !r.EndDate.Before(now)
}
