package models

import (
	"time"

	"github.com/google/uuid"
)

// Overridable field names recorded in TaskInstance.OverriddenFields. Once a
// manager has edited one of these on a generated task, re-materialization
// leaves that field alone.
const (
	FieldTitle           = "title"
	FieldStartTime       = "start_time"
	FieldEndTime         = "end_time"
	FieldPackageCount    = "package_count"
	FieldTeamSize        = "team_size"
	FieldSectionLabel    = "section_label"
	FieldManagerInitials = "manager_initials"
	FieldConditionFlag   = "condition_flag"
)

// OverridableFields lists the task fields a manager may override on a
// generated task. Operational fields (completion, pin, assignment) are always
// manager-owned and never reconciled by the materializer.
var OverridableFields = []string{
	FieldTitle,
	FieldStartTime,
	FieldEndTime,
	FieldPackageCount,
	FieldTeamSize,
	FieldSectionLabel,
	FieldManagerInitials,
	FieldConditionFlag,
}

// TaskInstance is one concrete, independently editable occurrence of a work
// event. Generated instances keep a back-reference to their definition; the
// (source_event_id, occurrence_date) pair is the idempotency anchor for
// materialization. Manually created tasks have a nil SourceEventID and are
// not constrained by that index (Postgres treats NULLs as distinct).
type TaskInstance struct {
	BaseModel

	SourceEventID  *uuid.UUID `json:"source_event_id,omitempty" gorm:"type:uuid;index;uniqueIndex:idx_task_occurrence"`
	OccurrenceDate time.Time  `json:"occurrence_date" gorm:"type:date;not null;index;uniqueIndex:idx_task_occurrence" validate:"required"`

	StartTime string `json:"start_time" gorm:"size:5;not null" validate:"required"` // "HH:MM"
	EndTime   string `json:"end_time" gorm:"size:5;not null" validate:"required"`   // "HH:MM"

	// Payload copied from the definition at generation time
	Title           string `json:"title" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	PackageCount    int    `json:"package_count" gorm:"default:0"`
	TeamSize        int    `json:"team_size" gorm:"default:1"`
	SectionLabel    string `json:"section_label" gorm:"size:60"`
	ManagerInitials string `json:"manager_initials" gorm:"size:10"`
	ConditionFlag   bool   `json:"condition_flag" gorm:"default:false"`

	ManagerID string `json:"manager_id" gorm:"size:40;not null;index"`
	StoreID   string `json:"store_id" gorm:"size:40;not null;index"`

	// Operational fields, owned by the manager after generation
	IsCompleted     bool       `json:"is_completed" gorm:"default:false;index"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	IsPinned        bool       `json:"is_pinned" gorm:"default:false"`
	AssignedMembers StringList `json:"assigned_members" gorm:"type:jsonb"`

	// Per-field human-override markers
	OverriddenFields StringList `json:"overridden_fields" gorm:"type:jsonb"`
}

// TableName returns the table name for TaskInstance
func (TaskInstance) TableName() string {
	return "task_instances"
}

// IsGenerated reports whether the task was materialized from a definition.
func (t *TaskInstance) IsGenerated() bool {
	return t.SourceEventID != nil
}

// IsOverridden reports whether a manager has edited the given field.
func (t *TaskInstance) IsOverridden(field string) bool {
	return t.OverriddenFields.Contains(field)
}

// MarkOverridden records that a manager has edited the given field.
func (t *TaskInstance) MarkOverridden(field string) {
	if !t.OverriddenFields.Contains(field) {
		t.OverriddenFields = append(t.OverriddenFields, field)
	}
}

// ScheduledStart returns the task's start datetime on its occurrence date.
func (t *TaskInstance) ScheduledStart() time.Time {
	hh, mm := parseWallClock(t.StartTime)
	d := t.OccurrenceDate
	return time.Date(d.Year(), d.Month(), d.Day(), hh, mm, 0, 0, d.Location())
}

// ScheduledEnd returns the task's end datetime on its occurrence date.
func (t *TaskInstance) ScheduledEnd() time.Time {
	hh, mm := parseWallClock(t.EndTime)
	d := t.OccurrenceDate
	end := time.Date(d.Year(), d.Month(), d.Day(), hh, mm, 0, 0, d.Location())
	// An end time at or before the start wraps past midnight.
	if !end.After(t.ScheduledStart()) {
		end = end.AddDate(0, 0, 1)
	}
	return end
}
