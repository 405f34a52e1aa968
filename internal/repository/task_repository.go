package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"planner-recurrence/internal/model"
)

// ErrDuplicateTask reports an insert that collided with the unique
// (rule_id, occurrence_at) index: the occurrence is already materialized.
var ErrDuplicateTask = errors.New("task for this occurrence already exists")

// TaskRepository persists tasks. The recurrence engine only inserts and
// searches; task mutation belongs to the planner API.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateTask
		}
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// FindSimilar returns one task of the owner whose name contains fragment
// and whose due time lies strictly within the window around the given
// instant, or nil when none exists. Strict bounds keep instances sitting
// exactly one window apart from suppressing each other.
func (r *TaskRepository) FindSimilar(ctx context.Context, ownerID uint, fragment string, around time.Time, window time.Duration) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Where(`owner_id = ? AND name LIKE ? ESCAPE '\' AND due_time > ? AND due_time < ?`,
			ownerID, "%"+escapeLike(fragment)+"%", around.Add(-window), around.Add(window)).
		First(&task).Error
	switch {
	case err == nil:
		return &task, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, fmt.Errorf("find similar task: %w", err)
	}
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "%", `\%`)
	return strings.ReplaceAll(s, "_", `\_`)
}
