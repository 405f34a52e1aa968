package service

import (
	"context"
	"regexp"
	"time"

	"planner-recurrence/internal/model"
)

// Trailing " (<text>)" suffix left by a previous materialization.
var nameSuffix = regexp.MustCompile(` \([^)]*\)$`)

// baseName strips the occurrence-date suffix from a task name, so
// repeated materializations replace the date instead of stacking it.
func baseName(name string) string {
	return nameSuffix.ReplaceAllString(name, "")
}

// occurrenceName derives the display name of a materialized instance,
// e.g. "Pay rent (Feb 5)".
func occurrenceName(original string, at time.Time) string {
	return baseName(original) + " (" + at.Format("Jan 2") + ")"
}

// materialize persists a new task instance for the candidate occurrence,
// copying the originating task's fields and stamping the idempotency pair.
func (s *RecurrenceService) materialize(ctx context.Context, rule *model.RecurrenceRule, candidate time.Time) (*model.Task, error) {
	due := candidate
	task := &model.Task{
		OwnerID:      rule.Task.OwnerID,
		BoardID:      rule.Task.BoardID,
		ListID:       rule.Task.ListID,
		Name:         occurrenceName(rule.Task.Name, candidate),
		Description:  rule.Task.Description,
		Priority:     rule.Task.Priority,
		DueTime:      &due,
		Completed:    false,
		Status:       model.StatusTodo,
		NewTask:      true,
		RuleID:       &rule.ID,
		OccurrenceAt: &due,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}
