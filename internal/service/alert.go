package service

import (
	"errors"
	"fmt"
	"time"

	"workforce-scheduler-backend/internal/database/models"
	apperrors "workforce-scheduler-backend/internal/errors"
	"workforce-scheduler-backend/internal/logger"
	"workforce-scheduler-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AlertService exposes delay alerts to managers: listing and acknowledgement.
// Acknowledging an alert closes its delay incident.
type AlertService struct {
	repo repository.DelayAlertRepositoryInterface
	log  *logger.Logger
}

// NewAlertService creates a new alert service
func NewAlertService(repo repository.DelayAlertRepositoryInterface) *AlertService {
	return &AlertService{
		repo: repo,
		log:  logger.WithComponent("alerts"),
	}
}

// AlertResponse represents the response for delay alert operations
type AlertResponse struct {
	ID             uuid.UUID            `json:"id"`
	TaskID         uuid.UUID            `json:"task_id"`
	Severity       models.AlertSeverity `json:"severity"`
	Message        string               `json:"message"`
	ScheduledStart string               `json:"scheduled_start"`
	Acknowledged   bool                 `json:"acknowledged"`
	AcknowledgedAt *string              `json:"acknowledged_at,omitempty"`
	AcknowledgedBy string               `json:"acknowledged_by,omitempty"`
	CreatedAt      string               `json:"created_at"`
}

// AlertListResponse represents a paginated list of delay alerts
type AlertListResponse struct {
	Alerts   []AlertResponse `json:"alerts"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Acknowledge closes an open alert. Acknowledging twice is an error, and a
// later escalation for the same task opens a fresh alert instead of
// reopening this one.
func (s *AlertService) Acknowledge(id uuid.UUID, acknowledgedBy string) (*AlertResponse, error) {
	alert, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAlertNotFound
		}
		return nil, fmt.Errorf("failed to get delay alert: %w", err)
	}
	if alert.Acknowledged {
		return nil, apperrors.ErrAlertAcknowledged
	}

	now := time.Now()
	if err := s.repo.Acknowledge(id, acknowledgedBy, now); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAlertAcknowledged
		}
		return nil, fmt.Errorf("failed to acknowledge delay alert: %w", err)
	}

	alert.Acknowledged = true
	alert.AcknowledgedAt = &now
	alert.AcknowledgedBy = acknowledgedBy

	s.log.WithFields(map[string]interface{}{
		"alert_id": id,
		"task_id":  alert.TaskID,
	}).Info("delay alert acknowledged")

	return s.toResponse(alert), nil
}

// ListOpen retrieves unacknowledged alerts with pagination
func (s *AlertService) ListOpen(page, pageSize int) (*AlertListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}
	offset := (page - 1) * pageSize

	alerts, total, err := s.repo.GetOpen(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list open alerts: %w", err)
	}

	resp := &AlertListResponse{
		Alerts:   make([]AlertResponse, 0, len(alerts)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range alerts {
		resp.Alerts = append(resp.Alerts, *s.toResponse(&alerts[i]))
	}
	return resp, nil
}

// ListByTask retrieves all alerts for one task, newest first
func (s *AlertService) ListByTask(taskID uuid.UUID) ([]AlertResponse, error) {
	alerts, err := s.repo.GetByTask(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts for task: %w", err)
	}

	resp := make([]AlertResponse, 0, len(alerts))
	for i := range alerts {
		resp = append(resp, *s.toResponse(&alerts[i]))
	}
	return resp, nil
}

func (s *AlertService) toResponse(alert *models.DelayAlert) *AlertResponse {
	resp := &AlertResponse{
		ID:             alert.ID,
		TaskID:         alert.TaskID,
		Severity:       alert.Severity,
		Message:        alert.Message,
		ScheduledStart: alert.ScheduledStart.Format(time.RFC3339),
		Acknowledged:   alert.Acknowledged,
		AcknowledgedBy: alert.AcknowledgedBy,
		CreatedAt:      alert.CreatedAt.Format(time.RFC3339),
	}
	if alert.AcknowledgedAt != nil {
		ack := alert.AcknowledgedAt.Format(time.RFC3339)
		resp.AcknowledgedAt = &ack
	}
	return resp
}
