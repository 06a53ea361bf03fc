package service_test

import (
	"errors"
	"testing"

	"workforce-scheduler-backend/internal/database/models"
	"workforce-scheduler-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type failingNotifier struct{ calls int }

func (n *failingNotifier) Publish(service.AlertEvent) error {
	n.calls++
	return errors.New("sink unavailable")
}

type recordingNotifier struct{ events []service.AlertEvent }

func (n *recordingNotifier) Publish(event service.AlertEvent) error {
	n.events = append(n.events, event)
	return nil
}

func TestStreamNotifierDeliversInOrder(t *testing.T) {
	stream := service.NewStreamNotifier(4)

	first := service.AlertEvent{TaskID: uuid.New(), Severity: models.AlertSeverityWarning}
	second := service.AlertEvent{TaskID: uuid.New(), Severity: models.AlertSeverityCritical}
	assert.NoError(t, stream.Publish(first))
	assert.NoError(t, stream.Publish(second))

	assert.Equal(t, first.TaskID, (<-stream.Events()).TaskID)
	assert.Equal(t, second.TaskID, (<-stream.Events()).TaskID)
}

func TestStreamNotifierDropsOldestWhenFull(t *testing.T) {
	stream := service.NewStreamNotifier(2)

	oldest := service.AlertEvent{TaskID: uuid.New()}
	kept := service.AlertEvent{TaskID: uuid.New()}
	newest := service.AlertEvent{TaskID: uuid.New()}

	assert.NoError(t, stream.Publish(oldest))
	assert.NoError(t, stream.Publish(kept))
	// Buffer is full; publishing must not block and must evict the oldest
	assert.NoError(t, stream.Publish(newest))

	assert.Equal(t, kept.TaskID, (<-stream.Events()).TaskID)
	assert.Equal(t, newest.TaskID, (<-stream.Events()).TaskID)
}

func TestFanoutNotifierSurvivesFailingSink(t *testing.T) {
	failing := &failingNotifier{}
	recording := &recordingNotifier{}
	fanout := service.NewFanoutNotifier(failing, recording)

	event := service.AlertEvent{TaskID: uuid.New(), Message: "task overdue"}
	assert.NoError(t, fanout.Publish(event))

	assert.Equal(t, 1, failing.calls)
	if assert.Len(t, recording.events, 1) {
		assert.Equal(t, event.TaskID, recording.events[0].TaskID)
	}
}
