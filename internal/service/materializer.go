package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"workforce-scheduler-backend/internal/database/models"
	apperrors "workforce-scheduler-backend/internal/errors"
	"workforce-scheduler-backend/internal/logger"
	"workforce-scheduler-backend/internal/repository"

	"gorm.io/gorm"
)

// MaterializationResult reports what a single materialize call did
type MaterializationResult string

const (
	MaterializationCreated       MaterializationResult = "created"
	MaterializationAlreadyExists MaterializationResult = "already_exists"
	MaterializationSkipped       MaterializationResult = "skipped"
)

// MaterializationSummary aggregates one materialization pass over a date
type MaterializationSummary struct {
	Date          time.Time `json:"date"`
	Created       int       `json:"created"`
	AlreadyExists int       `json:"already_exists"`
	Skipped       int       `json:"skipped"`
	Failed        int       `json:"failed"`
}

// Materializer turns "occurs" decisions into persisted task rows. Every
// operation here is idempotent: the unique occurrence index is the mutual
// exclusion point, so re-running a date or racing another engine instance
// converges to the same state.
type Materializer struct {
	eventRepo repository.EventDefinitionRepositoryInterface
	taskRepo  repository.TaskInstanceRepositoryInterface
	log       *logger.Logger
}

// NewMaterializer creates a new materializer
func NewMaterializer(eventRepo repository.EventDefinitionRepositoryInterface, taskRepo repository.TaskInstanceRepositoryInterface) *Materializer {
	return &Materializer{
		eventRepo: eventRepo,
		taskRepo:  taskRepo,
		log:       logger.WithComponent("materializer"),
	}
}

// Materialize ensures the task instance for one (definition, date) pair
// exists. When the row already exists only the fields a manager has not
// overridden are reconciled against the current definition; manual edits
// are never clobbered.
func (m *Materializer) Materialize(ctx context.Context, def *models.EventDefinition, date time.Time) (MaterializationResult, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if !OccursOn(def, date) {
		return MaterializationSkipped, nil
	}

	task := m.buildTask(def, DateOnly(date))
	created, err := m.taskRepo.CreateConditional(task)
	if err != nil {
		return "", fmt.Errorf("conditional insert: %w", err)
	}
	if created {
		m.log.WithFields(map[string]interface{}{
			"event_id": def.ID,
			"date":     task.OccurrenceDate.Format("2006-01-02"),
		}).Info("materialized task instance")
		return MaterializationCreated, nil
	}

	// Lost the insert to an earlier run or a concurrent engine instance.
	// Not an error: reconcile and report AlreadyExists.
	m.log.WithField("event_id", def.ID).Debug("occurrence already materialized")

	if err := m.reconcile(def, DateOnly(date)); err != nil {
		return "", err
	}
	return MaterializationAlreadyExists, nil
}

// MaterializeDate runs one materialization pass for every active definition,
// or only one store's definitions when storeID is non-empty. Each event's
// expansion is its own unit of work: a failure on one event is counted and
// logged, the rest of the pass continues, and the next scheduled cycle heals
// any gap.
func (m *Materializer) MaterializeDate(ctx context.Context, date time.Time, storeID string) (*MaterializationSummary, error) {
	var defs []models.EventDefinition
	var err error
	if storeID != "" {
		defs, err = m.eventRepo.GetActiveByStore(storeID)
	} else {
		defs, err = m.eventRepo.GetActive()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load active definitions: %v", apperrors.ErrStorageUnavailable, err)
	}

	summary := &MaterializationSummary{Date: DateOnly(date)}
	for i := range defs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result, err := m.Materialize(ctx, &defs[i], date)
		if err != nil {
			summary.Failed++
			m.log.WithError(err).WithField("event_id", defs[i].ID).Error("materialization failed for event")
			continue
		}
		switch result {
		case MaterializationCreated:
			summary.Created++
		case MaterializationAlreadyExists:
			summary.AlreadyExists++
		case MaterializationSkipped:
			summary.Skipped++
		}
	}

	m.log.WithFields(map[string]interface{}{
		"date":           summary.Date.Format("2006-01-02"),
		"created":        summary.Created,
		"already_exists": summary.AlreadyExists,
		"skipped":        summary.Skipped,
		"failed":         summary.Failed,
	}).Info("materialization pass finished")

	return summary, nil
}

func (m *Materializer) buildTask(def *models.EventDefinition, date time.Time) *models.TaskInstance {
	eventID := def.ID
	return &models.TaskInstance{
		SourceEventID:   &eventID,
		OccurrenceDate:  date,
		StartTime:       def.StartTime,
		EndTime:         def.EndTime(),
		Title:           def.Title,
		PackageCount:    def.PackageCount,
		TeamSize:        def.TeamSize,
		SectionLabel:    def.SectionLabel,
		ManagerInitials: def.ManagerInitials,
		ConditionFlag:   def.ConditionFlag,
		ManagerID:       def.ManagerID,
		StoreID:         def.StoreID,
	}
}

// reconcile copies current definition values onto the existing row for every
// field without a human-override marker. Operational fields (completion,
// pin, assignment) belong to the manager and are never touched.
func (m *Materializer) reconcile(def *models.EventDefinition, date time.Time) error {
	existing, err := m.taskRepo.GetByOccurrence(def.ID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Deleted between the insert attempt and now; nothing to reconcile.
			return nil
		}
		return fmt.Errorf("load existing occurrence: %w", err)
	}

	desired := map[string]interface{}{
		models.FieldTitle:           def.Title,
		models.FieldStartTime:       def.StartTime,
		models.FieldEndTime:         def.EndTime(),
		models.FieldPackageCount:    def.PackageCount,
		models.FieldTeamSize:        def.TeamSize,
		models.FieldSectionLabel:    def.SectionLabel,
		models.FieldManagerInitials: def.ManagerInitials,
		models.FieldConditionFlag:   def.ConditionFlag,
	}

	updates := make(map[string]interface{})
	for field, value := range desired {
		if !existing.IsOverridden(field) {
			updates[field] = value
		}
	}
	if len(updates) == 0 {
		return nil
	}

	if err := m.taskRepo.UpdateFields(existing.ID, updates); err != nil {
		return fmt.Errorf("reconcile occurrence: %w", err)
	}
	return nil
}
