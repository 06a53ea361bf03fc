package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"workforce-scheduler-backend/internal/config"
	"workforce-scheduler-backend/internal/database/models"
	apperrors "workforce-scheduler-backend/internal/errors"
	"workforce-scheduler-backend/internal/logger"
	"workforce-scheduler-backend/internal/repository"

	"gorm.io/gorm"
)

// DelayEvaluator scans materialized tasks against wall-clock time and store
// hours, driving the per-task lateness state machine:
//
//	OnTrack -> Late (warning alert) -> Escalated (critical alert) -> Resolved
//
// At most one unacknowledged alert exists per task; escalation supersedes the
// open warning in place. A new incident begins only after acknowledgement or
// a start-time change, and within one incident a severity is alerted at most
// once.
type DelayEvaluator struct {
	taskRepo   repository.TaskInstanceRepositoryInterface
	alertRepo  repository.DelayAlertRepositoryInterface
	notifier   Notifier
	storeHours *config.StoreHours
	grace      time.Duration
	escalation time.Duration
	log        *logger.Logger
}

// NewDelayEvaluator creates a new delay evaluator. The escalation threshold
// must be larger than the grace period (enforced at config load).
func NewDelayEvaluator(taskRepo repository.TaskInstanceRepositoryInterface, alertRepo repository.DelayAlertRepositoryInterface, notifier Notifier, storeHours *config.StoreHours, grace, escalation time.Duration) *DelayEvaluator {
	if notifier == nil {
		notifier = NewLogNotifier()
	}
	return &DelayEvaluator{
		taskRepo:   taskRepo,
		alertRepo:  alertRepo,
		notifier:   notifier,
		storeHours: storeHours,
		grace:      grace,
		escalation: escalation,
		log:        logger.WithComponent("delay-evaluator"),
	}
}

// EvaluateAll runs one polling pass at the given time. Completed tasks and
// tasks on other dates are already out of scope (date rollover resolves
// them); a closed store raises nothing.
func (e *DelayEvaluator) EvaluateAll(ctx context.Context, now time.Time) error {
	if !e.storeHours.IsOpenAt(now) {
		e.log.Debug("store closed, skipping evaluation pass")
		return nil
	}

	tasks, err := e.taskRepo.GetIncompleteForDate(DateOnly(now))
	if err != nil {
		return fmt.Errorf("%w: load tasks for evaluation: %v", apperrors.ErrStorageUnavailable, err)
	}

	for i := range tasks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.EvaluateTask(&tasks[i], now); err != nil {
			e.log.WithError(err).WithField("task_id", tasks[i].ID).Error("delay evaluation failed for task")
		}
	}
	return nil
}

// EvaluateTask advances the lateness state machine for one task
func (e *DelayEvaluator) EvaluateTask(task *models.TaskInstance, now time.Time) error {
	if task.IsCompleted || !DateOnly(task.OccurrenceDate).Equal(DateOnly(now)) {
		return nil
	}

	deserved := e.deservedSeverity(task, now)
	if deserved == "" {
		return nil
	}

	scheduledStart := task.ScheduledStart()

	open, err := e.alertRepo.GetOpenByTask(task.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("load open alert: %w", err)
	}

	if open != nil {
		return e.superseded(task, open, deserved, scheduledStart, now)
	}

	// No open alert. Within one incident each severity fires at most once,
	// so only a severity above everything already alerted for this
	// scheduled start produces a new alert.
	alerted, err := e.alertRepo.GetMaxSeverityForIncident(task.ID, scheduledStart)
	if err != nil {
		return fmt.Errorf("load incident history: %w", err)
	}
	if deserved.Rank() <= alerted.Rank() {
		return nil
	}

	alert := &models.DelayAlert{
		TaskID:         task.ID,
		Severity:       deserved,
		Message:        e.message(task, deserved, now),
		ScheduledStart: scheduledStart,
	}
	if err := e.alertRepo.Create(alert); err != nil {
		if apperrors.IsAlreadyExists(err) {
			// Another evaluation pass raised the alert first.
			return nil
		}
		return fmt.Errorf("create alert: %w", err)
	}

	e.notify(alert)
	return nil
}

// superseded handles a task that already has an open alert: escalation or a
// changed start time updates that row in place, never inserting a duplicate.
func (e *DelayEvaluator) superseded(task *models.TaskInstance, open *models.DelayAlert, deserved models.AlertSeverity, scheduledStart time.Time, now time.Time) error {
	startChanged := !open.ScheduledStart.Equal(scheduledStart)
	if !startChanged && deserved.Rank() <= open.Severity.Rank() {
		return nil
	}

	open.Severity = deserved
	open.Message = e.message(task, deserved, now)
	open.ScheduledStart = scheduledStart
	if err := e.alertRepo.Update(open); err != nil {
		return fmt.Errorf("supersede open alert: %w", err)
	}

	e.notify(open)
	return nil
}

// deservedSeverity maps lateness past the scheduled end onto a severity.
// Empty means on track.
func (e *DelayEvaluator) deservedSeverity(task *models.TaskInstance, now time.Time) models.AlertSeverity {
	end := task.ScheduledEnd()
	switch {
	case now.After(end.Add(e.escalation)):
		return models.AlertSeverityCritical
	case now.After(end.Add(e.grace)):
		return models.AlertSeverityWarning
	}
	return ""
}

func (e *DelayEvaluator) message(task *models.TaskInstance, severity models.AlertSeverity, now time.Time) string {
	overdue := now.Sub(task.ScheduledEnd()).Round(time.Minute)
	return fmt.Sprintf("%s (%s-%s) still open %s past its scheduled end",
		task.Title, task.StartTime, task.EndTime, overdue)
}

// notify hands the alert to the notification collaborator. Delivery failure
// is logged and ignored: the alert row is the durable fact.
func (e *DelayEvaluator) notify(alert *models.DelayAlert) {
	event := AlertEvent{
		TaskID:    alert.TaskID,
		Severity:  alert.Severity,
		Message:   alert.Message,
		CreatedAt: alert.CreatedAt,
	}
	if err := e.notifier.Publish(event); err != nil {
		e.log.WithError(err).WithField("task_id", alert.TaskID).Warn("alert notification delivery failed")
	}
}
