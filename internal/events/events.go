package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/smd-system/ai-service/internal/task"
)

// TaskCompletedEvent is published after the runner writes a terminal
// task record. It carries everything a delivery handler needs without
// a dependency on the runner itself.
type TaskCompletedEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// TaskID is the identifier of the finished task
	TaskID string `json:"task_id"`

	// CallbackURL is the caller-supplied delivery URL, empty when the
	// caller did not request a callback
	CallbackURL string `json:"callback_url,omitempty"`

	// Record is the stored terminal record
	Record task.Record `json:"record"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// NewTaskCompletedEvent creates an event for a finished task.
func NewTaskCompletedEvent(taskID, callbackURL string, record task.Record) *TaskCompletedEvent {
	return &TaskCompletedEvent{
		ID:          uuid.New(),
		TaskID:      taskID,
		CallbackURL: callbackURL,
		Record:      record,
		CreatedAt:   time.Now().UTC(),
	}
}

// EventHandler defines an interface for components that react to
// completed tasks, e.g. webhook delivery.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	HandleEvent(ctx context.Context, event *TaskCompletedEvent) error
}

// EventEmitter defines an interface for publishing completion events
// without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *TaskCompletedEvent) error
}
