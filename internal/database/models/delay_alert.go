package models

import (
	"time"

	"github.com/google/uuid"
)

// DelayAlert is one notification of task lateness. The partial unique index
// on task_id guarantees at most one unacknowledged alert per task; escalation
// updates that open row in place instead of inserting a duplicate.
// ScheduledStart anchors the delay incident: a changed task start time starts
// a fresh incident.
type DelayAlert struct {
	BaseModel

	TaskID         uuid.UUID     `json:"task_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_alert_open,where:acknowledged = false" validate:"required"`
	Severity       AlertSeverity `json:"severity" gorm:"type:varchar(20);not null" validate:"required"`
	Message        string        `json:"message" gorm:"size:200"`
	ScheduledStart time.Time     `json:"scheduled_start" gorm:"not null"`
	Acknowledged   bool          `json:"acknowledged" gorm:"default:false"`
	AcknowledgedAt *time.Time    `json:"acknowledged_at,omitempty"`
	AcknowledgedBy string        `json:"acknowledged_by,omitempty" gorm:"size:40"`
}

// TableName returns the table name for DelayAlert
func (DelayAlert) TableName() string {
	return "delay_alerts"
}
