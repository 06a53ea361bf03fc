package service

import (
	"errors"
	"fmt"
	"time"

	"workforce-scheduler-backend/internal/database/models"
	apperrors "workforce-scheduler-backend/internal/errors"
	"workforce-scheduler-backend/internal/logger"
	"workforce-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskService handles manager actions on task instances: manual creation,
// completion, pinning, assignment and per-field payload overrides. Any
// payload edit on a generated task sets its override marker so later
// re-materialization leaves that field alone.
type TaskService struct {
	repo      repository.TaskInstanceRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(repo repository.TaskInstanceRepositoryInterface, validator *validator.Validate) *TaskService {
	return &TaskService{
		repo:      repo,
		validator: validator,
		log:       logger.WithComponent("tasks"),
	}
}

// CreateTaskRequest represents the request to create a manual task instance
type CreateTaskRequest struct {
	OccurrenceDate  time.Time `json:"occurrence_date" validate:"required"`
	StartTime       string    `json:"start_time" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,min=1"`

	Title           string   `json:"title" validate:"required,min=1,max=100"`
	PackageCount    int      `json:"package_count" validate:"min=0"`
	TeamSize        int      `json:"team_size" validate:"min=0"`
	SectionLabel    string   `json:"section_label" validate:"max=60"`
	ManagerInitials string   `json:"manager_initials" validate:"max=10"`
	ConditionFlag   bool     `json:"condition_flag"`
	AssignedMembers []string `json:"assigned_members,omitempty"`
	IsPinned        bool     `json:"is_pinned"`

	ManagerID string `json:"manager_id" validate:"required,max=40"`
	StoreID   string `json:"store_id" validate:"required,max=40"`
}

// OverrideTaskRequest carries manager edits to a task. Provided payload
// fields are written and marked human-overridden; operational fields are
// written without markers (they are always manager-owned).
type OverrideTaskRequest struct {
	StartTime       *string `json:"start_time,omitempty"`
	EndTime         *string `json:"end_time,omitempty"`
	Title           *string `json:"title,omitempty"`
	PackageCount    *int    `json:"package_count,omitempty"`
	TeamSize        *int    `json:"team_size,omitempty"`
	SectionLabel    *string `json:"section_label,omitempty"`
	ManagerInitials *string `json:"manager_initials,omitempty"`
	ConditionFlag   *bool   `json:"condition_flag,omitempty"`

	IsPinned        *bool     `json:"is_pinned,omitempty"`
	AssignedMembers *[]string `json:"assigned_members,omitempty"`
}

// TaskResponse represents the response for task instance operations
type TaskResponse struct {
	ID               uuid.UUID  `json:"id"`
	SourceEventID    *uuid.UUID `json:"source_event_id,omitempty"`
	OccurrenceDate   string     `json:"occurrence_date"`
	StartTime        string     `json:"start_time"`
	EndTime          string     `json:"end_time"`
	Title            string     `json:"title"`
	PackageCount     int        `json:"package_count"`
	TeamSize         int        `json:"team_size"`
	SectionLabel     string     `json:"section_label"`
	ManagerInitials  string     `json:"manager_initials"`
	ConditionFlag    bool       `json:"condition_flag"`
	ManagerID        string     `json:"manager_id"`
	StoreID          string     `json:"store_id"`
	IsCompleted      bool       `json:"is_completed"`
	CompletedAt      *string    `json:"completed_at,omitempty"`
	IsPinned         bool       `json:"is_pinned"`
	AssignedMembers  []string   `json:"assigned_members"`
	OverriddenFields []string   `json:"overridden_fields"`
	CreatedAt        string     `json:"created_at"`
	UpdatedAt        string     `json:"updated_at"`
}

// TaskListResponse represents a paginated list of task instances
type TaskListResponse struct {
	Tasks    []TaskResponse `json:"tasks"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a manual task instance (no source event, not subject to
// the occurrence uniqueness constraint)
func (s *TaskService) Create(req *CreateTaskRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	start, err := time.Parse("15:04", req.StartTime)
	if err != nil {
		return nil, apperrors.NewValidationError("start_time", apperrors.ErrInvalidStartTime.Error())
	}

	end := start.Add(time.Duration(req.DurationMinutes) * time.Minute)
	task := &models.TaskInstance{
		OccurrenceDate:  DateOnly(req.OccurrenceDate),
		StartTime:       req.StartTime,
		EndTime:         end.Format("15:04"),
		Title:           req.Title,
		PackageCount:    req.PackageCount,
		TeamSize:        req.TeamSize,
		SectionLabel:    req.SectionLabel,
		ManagerInitials: req.ManagerInitials,
		ConditionFlag:   req.ConditionFlag,
		ManagerID:       req.ManagerID,
		StoreID:         req.StoreID,
		IsPinned:        req.IsPinned,
		AssignedMembers: models.StringList(req.AssignedMembers),
	}

	if err := s.repo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task instance: %w", err)
	}
	return s.toResponse(task), nil
}

// GetByID retrieves a task instance by ID
func (s *TaskService) GetByID(id uuid.UUID) (*TaskResponse, error) {
	task, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task instance: %w", err)
	}
	return s.toResponse(task), nil
}

// ListByDate retrieves tasks for a date, optionally filtered by store
func (s *TaskService) ListByDate(date time.Time, storeID string, page, pageSize int) (*TaskListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}
	offset := (page - 1) * pageSize

	tasks, total, err := s.repo.GetByDate(DateOnly(date), storeID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list task instances: %w", err)
	}

	resp := &TaskListResponse{
		Tasks:    make([]TaskResponse, 0, len(tasks)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range tasks {
		resp.Tasks = append(resp.Tasks, *s.toResponse(&tasks[i]))
	}
	return resp, nil
}

// MarkComplete marks a task done, terminating any open delay incident at the
// evaluator's next pass
func (s *TaskService) MarkComplete(id uuid.UUID, completedBy string) (*TaskResponse, error) {
	task, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task instance: %w", err)
	}
	if task.IsCompleted {
		return nil, apperrors.ErrTaskAlreadyCompleted
	}

	now := time.Now()
	task.IsCompleted = true
	task.CompletedAt = &now
	task.UpdatedBy = completedBy
	if err := s.repo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to complete task instance: %w", err)
	}

	s.log.WithField("task_id", id).Info("task marked complete")
	return s.toResponse(task), nil
}

// Override applies manager edits. Payload edits on generated tasks set the
// per-field override marker; once set, regeneration never overwrites that
// field again.
func (s *TaskService) Override(id uuid.UUID, req *OverrideTaskRequest, updatedBy string) (*TaskResponse, error) {
	task, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task instance: %w", err)
	}

	override := func(field string, apply func()) {
		apply()
		if task.IsGenerated() {
			task.MarkOverridden(field)
		}
	}

	if req.StartTime != nil {
		if _, err := time.Parse("15:04", *req.StartTime); err != nil {
			return nil, apperrors.NewValidationError("start_time", apperrors.ErrInvalidStartTime.Error())
		}
		override(models.FieldStartTime, func() { task.StartTime = *req.StartTime })
	}
	if req.EndTime != nil {
		if _, err := time.Parse("15:04", *req.EndTime); err != nil {
			return nil, apperrors.NewValidationError("end_time", apperrors.ErrInvalidStartTime.Error())
		}
		override(models.FieldEndTime, func() { task.EndTime = *req.EndTime })
	}
	if req.Title != nil {
		override(models.FieldTitle, func() { task.Title = *req.Title })
	}
	if req.PackageCount != nil {
		override(models.FieldPackageCount, func() { task.PackageCount = *req.PackageCount })
	}
	if req.TeamSize != nil {
		override(models.FieldTeamSize, func() { task.TeamSize = *req.TeamSize })
	}
	if req.SectionLabel != nil {
		override(models.FieldSectionLabel, func() { task.SectionLabel = *req.SectionLabel })
	}
	if req.ManagerInitials != nil {
		override(models.FieldManagerInitials, func() { task.ManagerInitials = *req.ManagerInitials })
	}
	if req.ConditionFlag != nil {
		override(models.FieldConditionFlag, func() { task.ConditionFlag = *req.ConditionFlag })
	}

	// Operational fields are always manager-owned, no markers needed.
	if req.IsPinned != nil {
		task.IsPinned = *req.IsPinned
	}
	if req.AssignedMembers != nil {
		task.AssignedMembers = models.StringList(*req.AssignedMembers)
	}

	task.UpdatedBy = updatedBy
	if err := s.repo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task instance: %w", err)
	}

	return s.toResponse(task), nil
}

// Delete deletes a task instance directly (manager action)
func (s *TaskService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task instance: %w", err)
	}
	return nil
}

func (s *TaskService) toResponse(task *models.TaskInstance) *TaskResponse {
	resp := &TaskResponse{
		ID:               task.ID,
		SourceEventID:    task.SourceEventID,
		OccurrenceDate:   task.OccurrenceDate.Format("2006-01-02"),
		StartTime:        task.StartTime,
		EndTime:          task.EndTime,
		Title:            task.Title,
		PackageCount:     task.PackageCount,
		TeamSize:         task.TeamSize,
		SectionLabel:     task.SectionLabel,
		ManagerInitials:  task.ManagerInitials,
		ConditionFlag:    task.ConditionFlag,
		ManagerID:        task.ManagerID,
		StoreID:          task.StoreID,
		IsCompleted:      task.IsCompleted,
		IsPinned:         task.IsPinned,
		AssignedMembers:  task.AssignedMembers,
		OverriddenFields: task.OverriddenFields,
		CreatedAt:        task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        task.UpdatedAt.Format(time.RFC3339),
	}
	if task.CompletedAt != nil {
		completed := task.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completed
	}
	if resp.AssignedMembers == nil {
		resp.AssignedMembers = []string{}
	}
	if resp.OverriddenFields == nil {
		resp.OverriddenFields = []string{}
	}
	return resp
}
