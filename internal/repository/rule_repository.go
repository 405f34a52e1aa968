package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"planner-recurrence/internal/model"
)

// RuleRepository reads recurrence rules together with their owning task,
// so materialization needs no second round trip.
type RuleRepository struct {
	db *gorm.DB
}

func NewRuleRepository(db *gorm.DB) *RuleRepository {
	return &RuleRepository{db: db}
}

// Create attaches a rule to a task. One task holds at most one rule.
func (r *RuleRepository) Create(ctx context.Context, rule *model.RecurrenceRule) error {
	if err := r.db.WithContext(ctx).Create(rule).Error; err != nil {
		return fmt.Errorf("create rule: %w", err)
	}
	return nil
}

// FindActive returns every rule still capable of producing occurrences at
// now, across all users.
func (r *RuleRepository) FindActive(ctx context.Context, now time.Time) ([]model.RecurrenceRule, error) {
	var rules []model.RecurrenceRule
	if err := r.activeQuery(ctx, now).Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("find active rules: %w", err)
	}
	return rules, nil
}

// FindActiveForUser restricts FindActive to rules whose owning task
// belongs to ownerID.
func (r *RuleRepository) FindActiveForUser(ctx context.Context, now time.Time, ownerID uint) ([]model.RecurrenceRule, error) {
	var rules []model.RecurrenceRule
	err := r.activeQuery(ctx, now).
		Joins("JOIN tasks ON tasks.id = recurrence_rules.task_id").
		Where("tasks.owner_id = ?", ownerID).
		Find(&rules).Error
	if err != nil {
		return nil, fmt.Errorf("find active rules for user %d: %w", ownerID, err)
	}
	return rules, nil
}

func (r *RuleRepository) activeQuery(ctx context.Context, now time.Time) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Task").
		Where("recurrence_rules.infinite_repeat = ? OR recurrence_rules.end_date >= ?", true, now)
}
