package repository

import (
	"errors"
	"time"

	"workforce-scheduler-backend/internal/database/models"
	apperrors "workforce-scheduler-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// DelayAlertRepository handles database operations for delay alerts
type DelayAlertRepository struct {
	db *gorm.DB
}

// NewDelayAlertRepository creates a new delay alert repository
func NewDelayAlertRepository(db *gorm.DB) *DelayAlertRepository {
	return &DelayAlertRepository{db: db}
}

// Create creates a new delay alert. The partial unique index on task_id
// (where not acknowledged) rejects a second open alert for the same task,
// surfaced as ErrOpenAlertExists.
func (r *DelayAlertRepository) Create(alert *models.DelayAlert) error {
	err := r.db.Create(alert).Error
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return apperrors.ErrOpenAlertExists
	}
	return err
}

// GetByID retrieves a delay alert by ID
func (r *DelayAlertRepository) GetByID(id uuid.UUID) (*models.DelayAlert, error) {
	var alert models.DelayAlert
	err := r.db.First(&alert, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

// GetOpenByTask retrieves the single unacknowledged alert for a task, if any
func (r *DelayAlertRepository) GetOpenByTask(taskID uuid.UUID) (*models.DelayAlert, error) {
	var alert models.DelayAlert
	err := r.db.First(&alert, "task_id = ? AND acknowledged = ?", taskID, false).Error
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

// GetMaxSeverityForIncident returns the highest severity already alerted for
// a task within the incident anchored at the given scheduled start.
func (r *DelayAlertRepository) GetMaxSeverityForIncident(taskID uuid.UUID, scheduledStart time.Time) (models.AlertSeverity, error) {
	var alerts []models.DelayAlert
	err := r.db.Where("task_id = ? AND scheduled_start = ?", taskID, scheduledStart).Find(&alerts).Error
	if err != nil {
		return "", err
	}

	var max models.AlertSeverity
	for _, a := range alerts {
		if a.Severity.Rank() > max.Rank() {
			max = a.Severity
		}
	}
	return max, nil
}

// GetByTask retrieves all alerts for a task, newest first
func (r *DelayAlertRepository) GetByTask(taskID uuid.UUID) ([]models.DelayAlert, error) {
	var alerts []models.DelayAlert
	err := r.db.Where("task_id = ?", taskID).Order("created_at DESC").Find(&alerts).Error
	return alerts, err
}

// GetOpen retrieves unacknowledged alerts with pagination
func (r *DelayAlertRepository) GetOpen(limit, offset int) ([]models.DelayAlert, int64, error) {
	var alerts []models.DelayAlert
	var total int64

	if err := r.db.Model(&models.DelayAlert{}).Where("acknowledged = ?", false).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("acknowledged = ?", false).Order("created_at DESC").Limit(limit).Offset(offset).Find(&alerts).Error
	return alerts, total, err
}

// Update saves the full alert row (used to supersede an open alert's
// severity in place rather than inserting a duplicate)
func (r *DelayAlertRepository) Update(alert *models.DelayAlert) error {
	return r.db.Save(alert).Error
}

// Acknowledge closes an open alert, ending its delay incident
func (r *DelayAlertRepository) Acknowledge(id uuid.UUID, by string, at time.Time) error {
	result := r.db.Model(&models.DelayAlert{}).Where("id = ? AND acknowledged = ?", id, false).Updates(map[string]interface{}{
		"acknowledged":    true,
		"acknowledged_at": at,
		"acknowledged_by": by,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
