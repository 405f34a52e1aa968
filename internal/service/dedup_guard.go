package service

import (
	"context"
	"time"

	"planner-recurrence/internal/model"
)

const (
	// dedupWindow is the span around a candidate occurrence searched for
	// an already-materialized instance.
	dedupWindow = 24 * time.Hour

	// materializeHorizon bounds how far ahead of now an occurrence may be
	// materialized. It matches the dedup window, so an instance exists at
	// most one day before its occurrence.
	materializeHorizon = 24 * time.Hour
)

// shouldMaterialize decides whether a new instance is needed for the
// candidate occurrence. The probe is a name/time heuristic over the
// owner's tasks; the unique occurrence index on insert is the real
// arbiter under concurrent runs.
func (s *RecurrenceService) shouldMaterialize(ctx context.Context, rule *model.RecurrenceRule, candidate, now time.Time) (bool, error) {
	if candidate.Sub(now) > materializeHorizon {
		return false, nil
	}

	existing, err := s.tasks.FindSimilar(ctx, rule.Task.OwnerID, baseName(rule.Task.Name), candidate, dedupWindow)
	if err != nil {
		return false, err
	}
	return existing == nil, nil
}
