package repository

import (
	"time"

	"workforce-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// EventDefinitionRepositoryInterface defines the interface for event definition repository operations
type EventDefinitionRepositoryInterface interface {
	Create(def *models.EventDefinition) error
	GetByID(id uuid.UUID) (*models.EventDefinition, error)
	GetAll(limit, offset int) ([]models.EventDefinition, int64, error)
	GetByStoreID(storeID string, limit, offset int) ([]models.EventDefinition, int64, error)
	GetActive() ([]models.EventDefinition, error)
	GetActiveByStore(storeID string) ([]models.EventDefinition, error)
	Update(def *models.EventDefinition) error
	SetActive(id uuid.UUID, active bool) error
	DeleteCascade(id uuid.UUID, today time.Time) error
}

// TaskInstanceRepositoryInterface defines the interface for task instance repository operations
type TaskInstanceRepositoryInterface interface {
	Create(task *models.TaskInstance) error
	CreateConditional(task *models.TaskInstance) (bool, error)
	GetByID(id uuid.UUID) (*models.TaskInstance, error)
	GetByOccurrence(eventID uuid.UUID, date time.Time) (*models.TaskInstance, error)
	GetByDate(date time.Time, storeID string, limit, offset int) ([]models.TaskInstance, int64, error)
	GetBySourceEvent(eventID uuid.UUID) ([]models.TaskInstance, error)
	GetIncompleteForDate(date time.Time) ([]models.TaskInstance, error)
	Update(task *models.TaskInstance) error
	UpdateFields(id uuid.UUID, fields map[string]interface{}) error
	Delete(id uuid.UUID) error
}

// DelayAlertRepositoryInterface defines the interface for delay alert repository operations
type DelayAlertRepositoryInterface interface {
	Create(alert *models.DelayAlert) error
	GetByID(id uuid.UUID) (*models.DelayAlert, error)
	GetOpenByTask(taskID uuid.UUID) (*models.DelayAlert, error)
	GetMaxSeverityForIncident(taskID uuid.UUID, scheduledStart time.Time) (models.AlertSeverity, error)
	GetByTask(taskID uuid.UUID) ([]models.DelayAlert, error)
	GetOpen(limit, offset int) ([]models.DelayAlert, int64, error)
	Update(alert *models.DelayAlert) error
	Acknowledge(id uuid.UUID, by string, at time.Time) error
}
