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

// EventService governs the lifecycle of event definitions. Edits apply
// prospectively only: already-materialized task instances are never touched
// here, the next materialization cycle picks up the new definition for any
// date not yet generated.
type EventService struct {
	repo      repository.EventDefinitionRepositoryInterface
	taskRepo  repository.TaskInstanceRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewEventService creates a new event service
func NewEventService(repo repository.EventDefinitionRepositoryInterface, taskRepo repository.TaskInstanceRepositoryInterface, validator *validator.Validate) *EventService {
	return &EventService{
		repo:      repo,
		taskRepo:  taskRepo,
		validator: validator,
		log:       logger.WithComponent("event-lifecycle"),
	}
}

// CreateEventRequest represents the request to create an event definition
type CreateEventRequest struct {
	StartTime       string                `json:"start_time" validate:"required"`
	DurationMinutes int                   `json:"duration_minutes" validate:"required,min=1"`
	RecurrenceKind  models.RecurrenceKind `json:"recurrence_kind" validate:"required"`
	RecurrenceDays  []int                 `json:"recurrence_days,omitempty"`
	WindowStart     time.Time             `json:"window_start" validate:"required"`
	WindowEnd       *time.Time            `json:"window_end,omitempty"`

	Title           string `json:"title" validate:"required,min=1,max=100"`
	PackageCount    int    `json:"package_count" validate:"min=0"`
	TeamSize        int    `json:"team_size" validate:"min=0"`
	SectionLabel    string `json:"section_label" validate:"max=60"`
	ManagerInitials string `json:"manager_initials" validate:"max=10"`
	ConditionFlag   bool   `json:"condition_flag"`

	ManagerID string `json:"manager_id" validate:"required,max=40"`
	StoreID   string `json:"store_id" validate:"required,max=40"`
}

// UpdateEventRequest represents the request to update an event definition.
// Ownership (manager, store) is immutable and deliberately absent.
type UpdateEventRequest struct {
	StartTime       *string                `json:"start_time,omitempty"`
	DurationMinutes *int                   `json:"duration_minutes,omitempty"`
	RecurrenceKind  *models.RecurrenceKind `json:"recurrence_kind,omitempty"`
	RecurrenceDays  *[]int                 `json:"recurrence_days,omitempty"`
	WindowStart     *time.Time             `json:"window_start,omitempty"`
	WindowEnd       *time.Time             `json:"window_end,omitempty"`
	ClearWindowEnd  bool                   `json:"clear_window_end,omitempty"`

	Title           *string `json:"title,omitempty"`
	PackageCount    *int    `json:"package_count,omitempty"`
	TeamSize        *int    `json:"team_size,omitempty"`
	SectionLabel    *string `json:"section_label,omitempty"`
	ManagerInitials *string `json:"manager_initials,omitempty"`
	ConditionFlag   *bool   `json:"condition_flag,omitempty"`
}

// EventResponse represents the response for event definition operations
type EventResponse struct {
	ID              uuid.UUID             `json:"id"`
	StartTime       string                `json:"start_time"`
	EndTime         string                `json:"end_time"`
	DurationMinutes int                   `json:"duration_minutes"`
	RecurrenceKind  models.RecurrenceKind `json:"recurrence_kind"`
	RecurrenceDays  []int                 `json:"recurrence_days,omitempty"`
	WindowStart     string                `json:"window_start"`
	WindowEnd       *string               `json:"window_end,omitempty"`
	Title           string                `json:"title"`
	PackageCount    int                   `json:"package_count"`
	TeamSize        int                   `json:"team_size"`
	SectionLabel    string                `json:"section_label"`
	ManagerInitials string                `json:"manager_initials"`
	ConditionFlag   bool                  `json:"condition_flag"`
	ManagerID       string                `json:"manager_id"`
	StoreID         string                `json:"store_id"`
	IsActive        bool                  `json:"is_active"`
	CreatedAt       string                `json:"created_at"`
	UpdatedAt       string                `json:"updated_at"`
}

// EventListResponse represents a paginated list of event definitions
type EventListResponse struct {
	Events   []EventResponse `json:"events"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create validates and persists a new event definition. Past dates are never
// retroactively materialized; the engine only expands forward from here.
func (s *EventService) Create(req *CreateEventRequest) (*EventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if err := validateSchedule(req.StartTime, req.DurationMinutes, req.RecurrenceKind, req.RecurrenceDays, req.WindowStart, req.WindowEnd); err != nil {
		return nil, err
	}

	def := &models.EventDefinition{
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		RecurrenceKind:  req.RecurrenceKind,
		RecurrenceDays:  models.IntList(req.RecurrenceDays),
		WindowStart:     DateOnly(req.WindowStart),
		Title:           req.Title,
		PackageCount:    req.PackageCount,
		TeamSize:        req.TeamSize,
		SectionLabel:    req.SectionLabel,
		ManagerInitials: req.ManagerInitials,
		ConditionFlag:   req.ConditionFlag,
		ManagerID:       req.ManagerID,
		StoreID:         req.StoreID,
		IsActive:        true,
	}
	if req.WindowEnd != nil {
		end := DateOnly(*req.WindowEnd)
		def.WindowEnd = &end
	}
	if def.RecurrenceKind != models.RecurrenceCustom {
		// Days-of-week are only meaningful for custom recurrence.
		def.RecurrenceDays = nil
	}

	if err := s.repo.Create(def); err != nil {
		return nil, fmt.Errorf("failed to create event definition: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"event_id": def.ID,
		"store_id": def.StoreID,
	}).Info("event definition created")

	return s.toResponse(def), nil
}

// GetByID retrieves an event definition by ID
func (s *EventService) GetByID(id uuid.UUID) (*EventResponse, error) {
	def, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event definition: %w", err)
	}
	return s.toResponse(def), nil
}

// List retrieves event definitions, optionally filtered by store
func (s *EventService) List(storeID string, page, pageSize int) (*EventListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var defs []models.EventDefinition
	var total int64
	var err error
	if storeID != "" {
		defs, total, err = s.repo.GetByStoreID(storeID, pageSize, offset)
	} else {
		defs, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list event definitions: %w", err)
	}

	resp := &EventListResponse{
		Events:   make([]EventResponse, 0, len(defs)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range defs {
		resp.Events = append(resp.Events, *s.toResponse(&defs[i]))
	}
	return resp, nil
}

// Update applies prospective changes to a definition. Tasks already
// materialized keep the values they were generated with; only dates not yet
// generated see the new schedule and payload.
func (s *EventService) Update(id uuid.UUID, req *UpdateEventRequest) (*EventResponse, error) {
	def, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event definition: %w", err)
	}

	if req.StartTime != nil {
		def.StartTime = *req.StartTime
	}
	if req.DurationMinutes != nil {
		def.DurationMinutes = *req.DurationMinutes
	}
	if req.RecurrenceKind != nil {
		def.RecurrenceKind = *req.RecurrenceKind
	}
	if req.RecurrenceDays != nil {
		def.RecurrenceDays = models.IntList(*req.RecurrenceDays)
	}
	if req.WindowStart != nil {
		def.WindowStart = DateOnly(*req.WindowStart)
	}
	if req.WindowEnd != nil && req.ClearWindowEnd {
		return nil, apperrors.NewValidationError("window_end", "cannot set and clear window_end in the same request")
	}
	if req.ClearWindowEnd {
		def.WindowEnd = nil
	} else if req.WindowEnd != nil {
		end := DateOnly(*req.WindowEnd)
		def.WindowEnd = &end
	}
	if req.Title != nil {
		def.Title = *req.Title
	}
	if req.PackageCount != nil {
		def.PackageCount = *req.PackageCount
	}
	if req.TeamSize != nil {
		def.TeamSize = *req.TeamSize
	}
	if req.SectionLabel != nil {
		def.SectionLabel = *req.SectionLabel
	}
	if req.ManagerInitials != nil {
		def.ManagerInitials = *req.ManagerInitials
	}
	if req.ConditionFlag != nil {
		def.ConditionFlag = *req.ConditionFlag
	}

	if def.RecurrenceKind != models.RecurrenceCustom {
		def.RecurrenceDays = nil
	}

	// The updated definition must satisfy the same invariants as a new one.
	if err := validateSchedule(def.StartTime, def.DurationMinutes, def.RecurrenceKind, def.RecurrenceDays, def.WindowStart, def.WindowEnd); err != nil {
		return nil, err
	}

	if err := s.repo.Update(def); err != nil {
		return nil, fmt.Errorf("failed to update event definition: %w", err)
	}

	s.log.WithField("event_id", def.ID).Info("event definition updated")
	return s.toResponse(def), nil
}

// Deactivate stops future generation without touching materialized tasks
func (s *EventService) Deactivate(id uuid.UUID) error {
	if err := s.repo.SetActive(id, false); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEventNotFound
		}
		return fmt.Errorf("failed to deactivate event definition: %w", err)
	}
	s.log.WithField("event_id", id).Info("event definition deactivated")
	return nil
}

// Delete removes the definition and cascades only to future, non-completed
// generated tasks. Completed or past occurrences stay as history.
func (s *EventService) Delete(id uuid.UUID) error {
	if err := s.repo.DeleteCascade(id, DateOnly(time.Now())); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEventNotFound
		}
		return fmt.Errorf("failed to delete event definition: %w", err)
	}
	s.log.WithField("event_id", id).Info("event definition deleted")
	return nil
}

// validateSchedule enforces the schedule invariants shared by create and
// update: a parseable start time, positive duration, a known recurrence kind,
// non-empty in-range custom days, and window_end >= window_start.
func validateSchedule(startTime string, durationMinutes int, kind models.RecurrenceKind, days []int, windowStart time.Time, windowEnd *time.Time) error {
	if _, err := time.Parse("15:04", startTime); err != nil {
		return apperrors.NewValidationError("start_time", apperrors.ErrInvalidStartTime.Error())
	}
	if durationMinutes <= 0 {
		return apperrors.NewValidationError("duration_minutes", apperrors.ErrNonPositiveDuration.Error())
	}
	if !kind.IsValid() {
		return apperrors.NewValidationError("recurrence_kind", apperrors.ErrInvalidRecurrenceKind.Error())
	}
	if kind == models.RecurrenceCustom {
		if len(days) == 0 {
			return apperrors.NewValidationError("recurrence_days", apperrors.ErrEmptyCustomDays.Error())
		}
		for _, d := range days {
			if d < 0 || d > 6 {
				return apperrors.NewValidationError("recurrence_days", apperrors.ErrInvalidRecurrenceDay.Error())
			}
		}
	}
	if windowEnd != nil && DateOnly(*windowEnd).Before(DateOnly(windowStart)) {
		return apperrors.NewValidationError("window_end", apperrors.ErrWindowEndBeforeStart.Error())
	}
	return nil
}

func (s *EventService) toResponse(def *models.EventDefinition) *EventResponse {
	resp := &EventResponse{
		ID:              def.ID,
		StartTime:       def.StartTime,
		EndTime:         def.EndTime(),
		DurationMinutes: def.DurationMinutes,
		RecurrenceKind:  def.RecurrenceKind,
		RecurrenceDays:  def.RecurrenceDays,
		WindowStart:     def.WindowStart.Format("2006-01-02"),
		Title:           def.Title,
		PackageCount:    def.PackageCount,
		TeamSize:        def.TeamSize,
		SectionLabel:    def.SectionLabel,
		ManagerInitials: def.ManagerInitials,
		ConditionFlag:   def.ConditionFlag,
		ManagerID:       def.ManagerID,
		StoreID:         def.StoreID,
		IsActive:        def.IsActive,
		CreatedAt:       def.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       def.UpdatedAt.Format(time.RFC3339),
	}
	if def.WindowEnd != nil {
		end := def.WindowEnd.Format("2006-01-02")
		resp.WindowEnd = &end
	}
	return resp
}
