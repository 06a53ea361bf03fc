package service

import (
	"time"

	"workforce-scheduler-backend/internal/database/models"
	"workforce-scheduler-backend/internal/logger"

	"github.com/google/uuid"
)

// AlertEvent is what the engine hands to the external notification
// collaborator. The engine does not format or deliver notifications itself;
// the alert row is the durable fact and delivery is best-effort.
type AlertEvent struct {
	TaskID    uuid.UUID            `json:"task_id"`
	Severity  models.AlertSeverity `json:"severity"`
	Message   string               `json:"message"`
	CreatedAt time.Time            `json:"created_at"`
}

// Notifier delivers alert events to whichever channel the surrounding
// product uses. A delivery failure never rolls back the alert record.
type Notifier interface {
	Publish(event AlertEvent) error
}

// LogNotifier writes alert events to the structured log. Used as the default
// sink and in development.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier creates a notifier backed by the structured log
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{log: logger.WithComponent("alert-notifier")}
}

// Publish logs the alert event
func (n *LogNotifier) Publish(event AlertEvent) error {
	n.log.WithFields(map[string]interface{}{
		"task_id":  event.TaskID,
		"severity": event.Severity,
	}).Warn(event.Message)
	return nil
}

// StreamNotifier exposes alert events on a buffered channel for the
// notification collaborator to drain. When the consumer falls behind the
// oldest pending event is dropped rather than blocking an evaluation pass.
type StreamNotifier struct {
	events chan AlertEvent
	log    *logger.Logger
}

// NewStreamNotifier creates a stream notifier with the given buffer size
func NewStreamNotifier(buffer int) *StreamNotifier {
	if buffer <= 0 {
		buffer = 64
	}
	return &StreamNotifier{
		events: make(chan AlertEvent, buffer),
		log:    logger.WithComponent("alert-stream"),
	}
}

// Events returns the stream consumers read from
func (n *StreamNotifier) Events() <-chan AlertEvent {
	return n.events
}

// Publish enqueues the event without ever blocking the evaluator
func (n *StreamNotifier) Publish(event AlertEvent) error {
	for {
		select {
		case n.events <- event:
			return nil
		default:
			select {
			case dropped := <-n.events:
				n.log.WithField("task_id", dropped.TaskID).Warn("alert stream full, dropping oldest event")
			default:
			}
		}
	}
}

// FanoutNotifier publishes to several notifiers; one failing sink does not
// stop the others
type FanoutNotifier struct {
	sinks []Notifier
	log   *logger.Logger
}

// NewFanoutNotifier creates a notifier that fans out to all given sinks
func NewFanoutNotifier(sinks ...Notifier) *FanoutNotifier {
	return &FanoutNotifier{
		sinks: sinks,
		log:   logger.WithComponent("alert-notifier"),
	}
}

// Publish delivers the event to every sink
func (n *FanoutNotifier) Publish(event AlertEvent) error {
	for _, sink := range n.sinks {
		if err := sink.Publish(event); err != nil {
			n.log.WithError(err).Warn("alert delivery failed, record kept")
		}
	}
	return nil
}
