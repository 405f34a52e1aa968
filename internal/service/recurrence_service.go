package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"planner-recurrence/internal/clock"
	"planner-recurrence/internal/model"
	"planner-recurrence/internal/recurrence"
	"planner-recurrence/internal/repository"
)

// RuleStore supplies recurrence rules together with their owning task.
type RuleStore interface {
	FindActive(ctx context.Context, now time.Time) ([]model.RecurrenceRule, error)
	FindActiveForUser(ctx context.Context, now time.Time, ownerID uint) ([]model.RecurrenceRule, error)
}

// TaskStore persists and searches task instances.
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	FindSimilar(ctx context.Context, ownerID uint, fragment string, around time.Time, window time.Duration) (*model.Task, error)
}

// Result aggregates one rule-processing pass.
type Result struct {
	Processed        int
	Created          int
	CreatedTaskNames []string
}

// RecurrenceService materializes task instances for due recurrence rules.
// It runs a timer-driven global sweep and offers a synchronous per-user
// pass for immediate feedback.
type RecurrenceService struct {
	rules     RuleStore
	tasks     TaskStore
	scheduler *SchedulerService
	clock     clock.Clock
	interval  time.Duration
	log       zerolog.Logger

	mu      sync.Mutex // lifecycle state
	running bool
	entryID cron.EntryID

	// sweepMu serializes sweeps so a slow tick cannot interleave its
	// check-then-insert with the next tick or a user-triggered run.
	sweepMu sync.Mutex
}

func NewRecurrenceService(rules RuleStore, tasks TaskStore, scheduler *SchedulerService, clk clock.Clock, interval time.Duration, log zerolog.Logger) *RecurrenceService {
	return &RecurrenceService{
		rules:     rules,
		tasks:     tasks,
		scheduler: scheduler,
		clock:     clk,
		interval:  interval,
		log:       log,
	}
}

// Start fires one immediate sweep and arms the repeating timer. Calling
// Start on a running service is a no-op.
func (s *RecurrenceService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}

	id, err := s.scheduler.ScheduleInterval(s.interval, s.runSweep)
	if err != nil {
		return fmt.Errorf("schedule sweep: %w", err)
	}
	s.entryID = id
	s.scheduler.Start()
	s.running = true
	s.log.Info().Dur("interval", s.interval).Msg("recurrence sweep armed")

	go s.runSweep()
	return nil
}

// Stop disarms the timer and waits for an in-flight sweep to return.
// Calling Stop on a stopped service is a no-op.
func (s *RecurrenceService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.scheduler.Remove(s.entryID)
	s.scheduler.Stop()
	s.running = false
	s.log.Info().Msg("recurrence sweep stopped")
}

func (s *RecurrenceService) runSweep() {
	if _, err := s.Sweep(context.Background()); err != nil {
		// The next timer firing retries; no backoff.
		s.log.Error().Err(err).Msg("sweep aborted")
	}
}

// Sweep processes every active rule across all users. Per-rule failures
// are logged and skipped; only a failure to fetch the rules aborts the
// pass.
func (s *RecurrenceService) Sweep(ctx context.Context) (Result, error) {
	s.sweepMu.Lock()
	defer s.sweepMu.Unlock()

	now := s.clock.Now().UTC()
	rules, err := s.rules.FindActive(ctx, now)
	if err != nil {
		return Result{}, fmt.Errorf("fetch active rules: %w", err)
	}

	res := s.processRules(ctx, rules, now)
	s.log.Info().Int("processed", res.Processed).Int("created", res.Created).Msg("sweep finished")
	return res, nil
}

// ProcessForUser runs the sweep pipeline over one owner's rules and
// returns the counts synchronously. Failures are logged, never returned:
// the caller always sees whatever was accumulated before the failure.
func (s *RecurrenceService) ProcessForUser(ctx context.Context, ownerID uint) Result {
	s.sweepMu.Lock()
	defer s.sweepMu.Unlock()

	now := s.clock.Now().UTC()
	rules, err := s.rules.FindActiveForUser(ctx, now, ownerID)
	if err != nil {
		s.log.Error().Err(err).Uint("owner_id", ownerID).Msg("fetch rules for user")
		return Result{}
	}
	return s.processRules(ctx, rules, now)
}

func (s *RecurrenceService) processRules(ctx context.Context, rules []model.RecurrenceRule, now time.Time) Result {
	var res Result
	for i := range rules {
		rule := &rules[i]
		res.Processed++

		created, err := s.processRule(ctx, rule, now)
		if err != nil {
			s.log.Error().Err(err).Uint("rule_id", rule.ID).Msg("process rule")
			continue
		}
		if created != nil {
			res.Created++
			res.CreatedTaskNames = append(res.CreatedTaskNames, created.Name)
		}
	}
	return res
}

// processRule runs calculator, guard and materializer for one rule.
// It returns the created task, or nil when no instance was needed.
func (s *RecurrenceService) processRule(ctx context.Context, rule *model.RecurrenceRule, now time.Time) (*model.Task, error) {
	period, err := recurrence.ParsePeriod(rule.PeriodType, rule.PeriodValue, rule.RepeatDays)
	if err != nil {
		// Unrecognized period: the rule simply yields no occurrence.
		s.log.Debug().Uint("rule_id", rule.ID).Str("period_type", rule.PeriodType).Msg("skipping rule")
		return nil, nil
	}
	sched := recurrence.Schedule{Period: period, Forever: rule.InfiniteRepeat, End: rule.EndDate}

	// The originating task's due time anchors every occurrence; rules on
	// tasks without one anchor at processing time.
	anchor := now
	if rule.Task.DueTime != nil {
		anchor = *rule.Task.DueTime
	}

	candidate, ok := sched.Next(anchor, now)
	if !ok {
		return nil, nil
	}

	ok, err = s.shouldMaterialize(ctx, rule, candidate, now)
	if err != nil || !ok {
		return nil, err
	}

	task, err := s.materialize(ctx, rule, candidate)
	if errors.Is(err, repository.ErrDuplicateTask) {
		// Lost a race with a concurrent run; the instance exists.
		s.log.Debug().Uint("rule_id", rule.ID).Time("occurrence", candidate).Msg("occurrence already materialized")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}
