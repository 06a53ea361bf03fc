package repository

import (
	"time"

	"workforce-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventDefinitionRepository handles database operations for event definitions
type EventDefinitionRepository struct {
	db *gorm.DB
}

// NewEventDefinitionRepository creates a new event definition repository
func NewEventDefinitionRepository(db *gorm.DB) *EventDefinitionRepository {
	return &EventDefinitionRepository{db: db}
}

// Create creates a new event definition
func (r *EventDefinitionRepository) Create(def *models.EventDefinition) error {
	return r.db.Create(def).Error
}

// GetByID retrieves an event definition by ID
func (r *EventDefinitionRepository) GetByID(id uuid.UUID) (*models.EventDefinition, error) {
	var def models.EventDefinition
	err := r.db.First(&def, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// GetAll retrieves all event definitions with pagination
func (r *EventDefinitionRepository) GetAll(limit, offset int) ([]models.EventDefinition, int64, error) {
	var defs []models.EventDefinition
	var total int64

	if err := r.db.Model(&models.EventDefinition{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&defs).Error
	return defs, total, err
}

// GetByStoreID retrieves event definitions for a store with pagination
func (r *EventDefinitionRepository) GetByStoreID(storeID string, limit, offset int) ([]models.EventDefinition, int64, error) {
	var defs []models.EventDefinition
	var total int64

	if err := r.db.Model(&models.EventDefinition{}).Where("store_id = ?", storeID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("store_id = ?", storeID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&defs).Error
	return defs, total, err
}

// GetActive retrieves every active event definition. Each materialization
// cycle reloads this fresh so restarts lose no state.
func (r *EventDefinitionRepository) GetActive() ([]models.EventDefinition, error) {
	var defs []models.EventDefinition
	err := r.db.Where("is_active = ?", true).Find(&defs).Error
	return defs, err
}

// GetActiveByStore retrieves active event definitions for one store
func (r *EventDefinitionRepository) GetActiveByStore(storeID string) ([]models.EventDefinition, error) {
	var defs []models.EventDefinition
	err := r.db.Where("is_active = ? AND store_id = ?", true, storeID).Find(&defs).Error
	return defs, err
}

// Update updates an event definition
func (r *EventDefinitionRepository) Update(def *models.EventDefinition) error {
	return r.db.Save(def).Error
}

// SetActive toggles the soft lifecycle flag
func (r *EventDefinitionRepository) SetActive(id uuid.UUID, active bool) error {
	result := r.db.Model(&models.EventDefinition{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteCascade removes the definition and only those generated tasks that
// are still in the future and not completed. Completed or past occurrences
// keep their source_event_id as an orphaned historical reference.
func (r *EventDefinitionRepository) DeleteCascade(id uuid.UUID, today time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(
			"source_event_id = ? AND occurrence_date >= ? AND is_completed = ?",
			id, today, false,
		).Delete(&models.TaskInstance{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.EventDefinition{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
