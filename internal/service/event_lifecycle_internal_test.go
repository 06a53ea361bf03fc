package service

import (
	"testing"
	"time"

	"workforce-scheduler-backend/internal/database/models"
	apperrors "workforce-scheduler-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestValidateSchedule(t *testing.T) {
	windowStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	after := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		startTime   string
		duration    int
		kind        models.RecurrenceKind
		days        []int
		windowEnd   *time.Time
		expectError bool
		field       string
	}{
		{
			name:      "valid daily schedule",
			startTime: "08:00",
			duration:  120,
			kind:      models.RecurrenceDaily,
		},
		{
			name:      "valid custom schedule",
			startTime: "14:30",
			duration:  60,
			kind:      models.RecurrenceCustom,
			days:      []int{1, 4},
			windowEnd: &after,
		},
		{
			name:        "unparseable start time",
			startTime:   "8am",
			duration:    60,
			kind:        models.RecurrenceDaily,
			expectError: true,
			field:       "start_time",
		},
		{
			name:        "hour out of range",
			startTime:   "25:00",
			duration:    60,
			kind:        models.RecurrenceDaily,
			expectError: true,
			field:       "start_time",
		},
		{
			name:        "zero duration",
			startTime:   "08:00",
			duration:    0,
			kind:        models.RecurrenceDaily,
			expectError: true,
			field:       "duration_minutes",
		},
		{
			name:        "negative duration",
			startTime:   "08:00",
			duration:    -30,
			kind:        models.RecurrenceDaily,
			expectError: true,
			field:       "duration_minutes",
		},
		{
			name:        "unknown recurrence kind",
			startTime:   "08:00",
			duration:    60,
			kind:        models.RecurrenceKind("fortnightly"),
			expectError: true,
			field:       "recurrence_kind",
		},
		{
			name:        "custom kind with no days",
			startTime:   "08:00",
			duration:    60,
			kind:        models.RecurrenceCustom,
			days:        []int{},
			expectError: true,
			field:       "recurrence_days",
		},
		{
			name:        "custom day out of range",
			startTime:   "08:00",
			duration:    60,
			kind:        models.RecurrenceCustom,
			days:        []int{1, 7},
			expectError: true,
			field:       "recurrence_days",
		},
		{
			name:        "window end before window start",
			startTime:   "08:00",
			duration:    60,
			kind:        models.RecurrenceDaily,
			windowEnd:   &before,
			expectError: true,
			field:       "window_end",
		},
		{
			name:      "window end equal to window start",
			startTime: "08:00",
			duration:  60,
			kind:      models.RecurrenceNone,
			windowEnd: &windowStart,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateSchedule(tc.startTime, tc.duration, tc.kind, tc.days, windowStart, tc.windowEnd)
			if tc.expectError {
				assert.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
				var vErr *apperrors.ValidationError
				if assert.ErrorAs(t, err, &vErr) {
					assert.Equal(t, tc.field, vErr.Field)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBuildDailySpec(t *testing.T) {
	spec, err := buildDailySpec("04:00")
	assert.NoError(t, err)
	assert.Equal(t, "0 0 4 * * *", spec)

	spec, err = buildDailySpec("23:59")
	assert.NoError(t, err)
	assert.Equal(t, "0 59 23 * * *", spec)

	_, err = buildDailySpec("24:00")
	assert.Error(t, err)

	_, err = buildDailySpec("0400")
	assert.Error(t, err)
}

func TestDeservedSeverity(t *testing.T) {
	grace := 15 * time.Minute
	escalation := 60 * time.Minute
	evaluator := NewDelayEvaluator(nil, nil, nil, nil, grace, escalation)

	task := &models.TaskInstance{
		OccurrenceDate: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		StartTime:      "08:00",
		EndTime:        "10:00",
	}
	end := time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		now      time.Time
		expected models.AlertSeverity
	}{
		{"before scheduled end", end.Add(-time.Minute), ""},
		{"within grace", end.Add(10 * time.Minute), ""},
		{"exactly at grace boundary", end.Add(grace), ""},
		{"past grace", end.Add(20 * time.Minute), models.AlertSeverityWarning},
		{"exactly at escalation boundary", end.Add(escalation), models.AlertSeverityWarning},
		{"past escalation", end.Add(61 * time.Minute), models.AlertSeverityCritical},
		{"far past escalation", end.Add(5 * time.Hour), models.AlertSeverityCritical},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, evaluator.deservedSeverity(task, tc.now))
		})
	}
}

func TestScheduledEndWrapsPastMidnight(t *testing.T) {
	task := &models.TaskInstance{
		OccurrenceDate: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		StartTime:      "23:00",
		EndTime:        "01:00",
	}

	end := task.ScheduledEnd()
	assert.Equal(t, time.Date(2024, 1, 9, 1, 0, 0, 0, time.UTC), end)
	assert.True(t, end.After(task.ScheduledStart()))
}
