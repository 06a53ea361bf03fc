package testutils

import (
	"time"

	"workforce-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

// EventDefinitionFactory provides methods to create test EventDefinition data
type EventDefinitionFactory struct{}

// NewEventDefinitionFactory creates a new EventDefinitionFactory
func NewEventDefinitionFactory() *EventDefinitionFactory {
	return &EventDefinitionFactory{}
}

// Create creates a test EventDefinition with default values: a daily
// unloading event starting 2024-01-01 at 08:00 for two hours
func (f *EventDefinitionFactory) Create() *models.EventDefinition {
	return &models.EventDefinition{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		StartTime:       "08:00",
		DurationMinutes: 120,
		RecurrenceKind:  models.RecurrenceDaily,
		WindowStart:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Title:           "Morning truck unload",
		PackageCount:    40,
		TeamSize:        3,
		SectionLabel:    "Receiving",
		ManagerInitials: "JD",
		ManagerID:       "mgr-001",
		StoreID:         "store-001",
		IsActive:        true,
	}
}

// WithRecurrence sets a custom recurrence kind and days
func (f *EventDefinitionFactory) WithRecurrence(kind models.RecurrenceKind, days ...int) *models.EventDefinition {
	event := f.Create()
	event.RecurrenceKind = kind
	event.RecurrenceDays = models.IntList(days)
	return event
}

// WithWindow sets a custom materialization window
func (f *EventDefinitionFactory) WithWindow(start time.Time, end *time.Time) *models.EventDefinition {
	event := f.Create()
	event.WindowStart = start
	event.WindowEnd = end
	return event
}

// WithStartTime sets a custom wall-clock start time and duration
func (f *EventDefinitionFactory) WithStartTime(startTime string, durationMinutes int) *models.EventDefinition {
	event := f.Create()
	event.StartTime = startTime
	event.DurationMinutes = durationMinutes
	return event
}

// Inactive creates a deactivated event definition
func (f *EventDefinitionFactory) Inactive() *models.EventDefinition {
	event := f.Create()
	event.IsActive = false
	return event
}

// TaskInstanceFactory provides methods to create test TaskInstance data
type TaskInstanceFactory struct{}

// NewTaskInstanceFactory creates a new TaskInstanceFactory
func NewTaskInstanceFactory() *TaskInstanceFactory {
	return &TaskInstanceFactory{}
}

// Create creates a test manual TaskInstance with default values
func (f *TaskInstanceFactory) Create() *models.TaskInstance {
	return &models.TaskInstance{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OccurrenceDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       "08:00",
		EndTime:         "10:00",
		Title:           "Morning truck unload",
		PackageCount:    40,
		TeamSize:        3,
		SectionLabel:    "Receiving",
		ManagerInitials: "JD",
		ManagerID:       "mgr-001",
		StoreID:         "store-001",
	}
}

// Generated creates a task instance materialized from the given definition
// on the given date
func (f *TaskInstanceFactory) Generated(event *models.EventDefinition, date time.Time) *models.TaskInstance {
	task := f.Create()
	task.SourceEventID = &event.ID
	task.OccurrenceDate = date
	task.StartTime = event.StartTime
	task.EndTime = event.EndTime()
	task.Title = event.Title
	task.PackageCount = event.PackageCount
	task.TeamSize = event.TeamSize
	task.SectionLabel = event.SectionLabel
	task.ManagerInitials = event.ManagerInitials
	task.ConditionFlag = event.ConditionFlag
	task.ManagerID = event.ManagerID
	task.StoreID = event.StoreID
	return task
}

// WithSchedule sets custom occurrence date and start/end times
func (f *TaskInstanceFactory) WithSchedule(date time.Time, startTime, endTime string) *models.TaskInstance {
	task := f.Create()
	task.OccurrenceDate = date
	task.StartTime = startTime
	task.EndTime = endTime
	return task
}

// Completed creates a completed task instance
func (f *TaskInstanceFactory) Completed() *models.TaskInstance {
	task := f.Create()
	now := time.Now()
	task.IsCompleted = true
	task.CompletedAt = &now
	return task
}

// DelayAlertFactory provides methods to create test DelayAlert data
type DelayAlertFactory struct{}

// NewDelayAlertFactory creates a new DelayAlertFactory
func NewDelayAlertFactory() *DelayAlertFactory {
	return &DelayAlertFactory{}
}

// Create creates a test open warning alert for the given task
func (f *DelayAlertFactory) Create(task *models.TaskInstance) *models.DelayAlert {
	return &models.DelayAlert{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TaskID:         task.ID,
		Severity:       models.AlertSeverityWarning,
		Message:        "task overdue",
		ScheduledStart: task.ScheduledStart(),
	}
}

// Acknowledged creates an acknowledged alert for the given task
func (f *DelayAlertFactory) Acknowledged(task *models.TaskInstance, severity models.AlertSeverity) *models.DelayAlert {
	alert := f.Create(task)
	now := time.Now()
	alert.Severity = severity
	alert.Acknowledged = true
	alert.AcknowledgedAt = &now
	alert.AcknowledgedBy = "mgr-001"
	return alert
}
