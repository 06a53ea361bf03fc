package models

import (
	"time"
)

// EventDefinition is a template for a repeating work event. The scheduling
// engine expands it into concrete TaskInstance rows, one per occurrence date.
// All times are store-local wall-clock times.
type EventDefinition struct {
	BaseModel

	// Schedule
	StartTime       string         `json:"start_time" gorm:"size:5;not null" validate:"required"` // "HH:MM"
	DurationMinutes int            `json:"duration_minutes" gorm:"not null" validate:"required,min=1"`
	RecurrenceKind  RecurrenceKind `json:"recurrence_kind" gorm:"type:varchar(20);not null" validate:"required"`
	RecurrenceDays  IntList        `json:"recurrence_days" gorm:"type:jsonb"` // 0=Sunday..6=Saturday, custom kind only
	WindowStart     time.Time      `json:"window_start" gorm:"type:date;not null" validate:"required"`
	WindowEnd       *time.Time     `json:"window_end,omitempty" gorm:"type:date"` // nil means open-ended

	// Payload carried into generated tasks verbatim
	Title           string `json:"title" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	PackageCount    int    `json:"package_count" gorm:"default:0" validate:"min=0"`
	TeamSize        int    `json:"team_size" gorm:"default:1" validate:"min=0"`
	SectionLabel    string `json:"section_label" gorm:"size:60" validate:"max=60"`
	ManagerInitials string `json:"manager_initials" gorm:"size:10" validate:"max=10"`
	ConditionFlag   bool   `json:"condition_flag" gorm:"default:false"`

	// Ownership, immutable after creation
	ManagerID string `json:"manager_id" gorm:"size:40;not null;index" validate:"required"`
	StoreID   string `json:"store_id" gorm:"size:40;not null;index" validate:"required"`

	// Soft toggle: inactive definitions never generate new occurrences,
	// already-materialized tasks are untouched.
	IsActive bool `json:"is_active" gorm:"default:true;index"`
}

// TableName returns the table name for EventDefinition
func (EventDefinition) TableName() string {
	return "event_definitions"
}

// StartOn combines the definition's wall-clock start time with a date.
func (e *EventDefinition) StartOn(date time.Time) time.Time {
	hh, mm := parseWallClock(e.StartTime)
	return time.Date(date.Year(), date.Month(), date.Day(), hh, mm, 0, 0, date.Location())
}

// EndOn returns the scheduled end datetime on the given date.
func (e *EventDefinition) EndOn(date time.Time) time.Time {
	return e.StartOn(date).Add(time.Duration(e.DurationMinutes) * time.Minute)
}

// EndTime returns the derived "HH:MM" end-of-day time for the definition.
func (e *EventDefinition) EndTime() string {
	end := e.EndOn(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	return end.Format("15:04")
}

func parseWallClock(s string) (hour, minute int) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0
	}
	return t.Hour(), t.Minute()
}
