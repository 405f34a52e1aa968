package model

import "time"

// Task statuses as stored. Materialized instances always start in todo.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

// Task represents a single item in the planner. The engine only ever
// inserts tasks; updates and deletes belong to the planner API.
type Task struct {
	ID          uint `gorm:"primaryKey"`
	OwnerID     uint `gorm:"index"`
	BoardID     uint `gorm:"index"`
	ListID      uint `gorm:"index"`
	Name        string
	Description string
	Priority    string
	DueTime     *time.Time
	Completed   bool   `gorm:"default:false"`
	Status      string `gorm:"default:todo"`
	NewTask     bool   `gorm:"default:false"`

	// RuleID and OccurrenceAt are set only on instances materialized by
	// the recurrence engine. The composite unique index makes the insert
	// the arbiter against concurrent sweeps; both columns stay NULL on
	// ordinary tasks, which SQLite exempts from the constraint.
	RuleID       *uint      `gorm:"index:idx_rule_occurrence,unique"`
	OccurrenceAt *time.Time `gorm:"index:idx_rule_occurrence,unique"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
