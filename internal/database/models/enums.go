package models

// RecurrenceKind defines how an event definition repeats across dates
type RecurrenceKind string

const (
	RecurrenceNone     RecurrenceKind = "none"
	RecurrenceDaily    RecurrenceKind = "daily"
	RecurrenceWeekly   RecurrenceKind = "weekly"
	RecurrenceWeekdays RecurrenceKind = "weekdays"
	RecurrenceCustom   RecurrenceKind = "custom"
)

// AlertSeverity defines the severity levels of a delay alert
type AlertSeverity string

const (
	AlertSeverityInfo     AlertSeverity = "info"
	AlertSeverityWarning  AlertSeverity = "warning"
	AlertSeverityCritical AlertSeverity = "critical"
)

// IsValid checks if the RecurrenceKind is valid
func (k RecurrenceKind) IsValid() bool {
	switch k {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceWeekdays, RecurrenceCustom:
		return true
	}
	return false
}

// IsValid checks if the AlertSeverity is valid
func (s AlertSeverity) IsValid() bool {
	switch s {
	case AlertSeverityInfo, AlertSeverityWarning, AlertSeverityCritical:
		return true
	}
	return false
}

// Rank orders severities so a higher severity can supersede a lower one
func (s AlertSeverity) Rank() int {
	switch s {
	case AlertSeverityInfo:
		return 1
	case AlertSeverityWarning:
		return 2
	case AlertSeverityCritical:
		return 3
	}
	return 0
}
