package repository

import (
	"time"

	"workforce-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TaskInstanceRepository handles database operations for task instances
type TaskInstanceRepository struct {
	db *gorm.DB
}

// NewTaskInstanceRepository creates a new task instance repository
func NewTaskInstanceRepository(db *gorm.DB) *TaskInstanceRepository {
	return &TaskInstanceRepository{db: db}
}

// Create creates a task instance (manual creation path)
func (r *TaskInstanceRepository) Create(task *models.TaskInstance) error {
	return r.db.Create(task).Error
}

// CreateConditional inserts a generated task instance keyed by
// (source_event_id, occurrence_date). The insert and the existence check are
// one atomic statement: ON CONFLICT DO NOTHING on the occurrence index, so
// concurrent engine invocations and crash-recovery replays converge. Returns
// false when a row for the occurrence key already existed.
func (r *TaskInstanceRepository) CreateConditional(task *models.TaskInstance) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "source_event_id"},
			{Name: "occurrence_date"},
		},
		DoNothing: true,
	}).Create(task)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetByID retrieves a task instance by ID
func (r *TaskInstanceRepository) GetByID(id uuid.UUID) (*models.TaskInstance, error) {
	var task models.TaskInstance
	err := r.db.First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetByOccurrence retrieves the generated task for an (event, date) pair
func (r *TaskInstanceRepository) GetByOccurrence(eventID uuid.UUID, date time.Time) (*models.TaskInstance, error) {
	var task models.TaskInstance
	err := r.db.First(&task, "source_event_id = ? AND occurrence_date = ?", eventID, date).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetByDate retrieves task instances for a date, optionally filtered by store
func (r *TaskInstanceRepository) GetByDate(date time.Time, storeID string, limit, offset int) ([]models.TaskInstance, int64, error) {
	var tasks []models.TaskInstance
	var total int64

	query := r.db.Model(&models.TaskInstance{}).Where("occurrence_date = ?", date)
	if storeID != "" {
		query = query.Where("store_id = ?", storeID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("start_time ASC").Limit(limit).Offset(offset).Find(&tasks).Error
	return tasks, total, err
}

// GetBySourceEvent retrieves all task instances generated from a definition
func (r *TaskInstanceRepository) GetBySourceEvent(eventID uuid.UUID) ([]models.TaskInstance, error) {
	var tasks []models.TaskInstance
	err := r.db.Where("source_event_id = ?", eventID).Order("occurrence_date ASC").Find(&tasks).Error
	return tasks, err
}

// GetIncompleteForDate retrieves the unfinished tasks the delay evaluator
// polls. Tasks on earlier dates are past the date rollover and excluded.
func (r *TaskInstanceRepository) GetIncompleteForDate(date time.Time) ([]models.TaskInstance, error) {
	var tasks []models.TaskInstance
	err := r.db.Where("occurrence_date = ? AND is_completed = ?", date, false).Find(&tasks).Error
	return tasks, err
}

// Update saves the full task row
func (r *TaskInstanceRepository) Update(task *models.TaskInstance) error {
	return r.db.Save(task).Error
}

// UpdateFields applies a partial column update to a task row
func (r *TaskInstanceRepository) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	result := r.db.Model(&models.TaskInstance{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a task instance
func (r *TaskInstanceRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.TaskInstance{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
