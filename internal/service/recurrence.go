package service

import (
	"time"

	"workforce-scheduler-backend/internal/database/models"
)

// DateOnly truncates a timestamp to its calendar date. Occurrence dates are
// always compared at day granularity in the store's wall-clock calendar.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// OccursOn decides whether an event definition fires on the given calendar
// date. Pure and deterministic: no I/O, no clock reads. Inactive definitions
// and dates outside [window_start, window_end] never occur; an absent
// window_end means the window is open-ended.
func OccursOn(def *models.EventDefinition, date time.Time) bool {
	if !def.IsActive {
		return false
	}

	d := DateOnly(date)
	start := DateOnly(def.WindowStart)
	if d.Before(start) {
		return false
	}
	if def.WindowEnd != nil && d.After(DateOnly(*def.WindowEnd)) {
		return false
	}

	switch def.RecurrenceKind {
	case models.RecurrenceNone:
		return d.Equal(start)
	case models.RecurrenceDaily:
		return true
	case models.RecurrenceWeekly:
		return d.Weekday() == start.Weekday()
	case models.RecurrenceWeekdays:
		wd := d.Weekday()
		return wd != time.Saturday && wd != time.Sunday
	case models.RecurrenceCustom:
		return def.RecurrenceDays.Contains(int(d.Weekday()))
	}
	return false
}
