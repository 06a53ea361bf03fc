package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// EventServiceInterface defines the interface for event lifecycle operations
type EventServiceInterface interface {
	Create(req *CreateEventRequest) (*EventResponse, error)
	GetByID(id uuid.UUID) (*EventResponse, error)
	List(storeID string, page, pageSize int) (*EventListResponse, error)
	Update(id uuid.UUID, req *UpdateEventRequest) (*EventResponse, error)
	Deactivate(id uuid.UUID) error
	Delete(id uuid.UUID) error
}

// TaskServiceInterface defines the interface for task instance operations
type TaskServiceInterface interface {
	Create(req *CreateTaskRequest) (*TaskResponse, error)
	GetByID(id uuid.UUID) (*TaskResponse, error)
	ListByDate(date time.Time, storeID string, page, pageSize int) (*TaskListResponse, error)
	MarkComplete(id uuid.UUID, completedBy string) (*TaskResponse, error)
	Override(id uuid.UUID, req *OverrideTaskRequest, updatedBy string) (*TaskResponse, error)
	Delete(id uuid.UUID) error
}

// AlertServiceInterface defines the interface for delay alert operations
type AlertServiceInterface interface {
	Acknowledge(id uuid.UUID, acknowledgedBy string) (*AlertResponse, error)
	ListOpen(page, pageSize int) (*AlertListResponse, error)
	ListByTask(taskID uuid.UUID) ([]AlertResponse, error)
}

// EngineInterface defines the operational trigger surface of the engine
type EngineInterface interface {
	GenerateForDate(ctx context.Context, date time.Time, storeID string) (*MaterializationSummary, error)
	EvaluateNow(ctx context.Context) error
}
