package task

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Status represents the current state of a task record.
type Status string

// Possible task status values
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Task type identifiers, one per analysis family.
const (
	TypeSemanticDiff    = "semantic_diff"
	TypeSummary         = "summary"
	TypeCLOPLOCheck     = "clo_plo_check"
	TypeRelationExtract = "relation_extract"
	TypeOCRExtract      = "ocr_extract"
)

// Common errors returned by task stores and the runner.
var (
	ErrTaskNotFound = errors.New("task not found")
	ErrQueueFull    = errors.New("task queue is full")
	ErrQueueClosed  = errors.New("task queue is closed")
)

// Terminal reports whether the status is one of the two final states.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Record is the stored outcome of one unit of background work, keyed
// by its deterministic task id. Payload holds the family-specific
// result once the task completes; Error is set only on failure.
type Record struct {
	TaskID      string          `json:"task_id"`
	Type        string          `json:"type"`
	Status      Status          `json:"status"`
	Payload     json.RawMessage `json:"payload,omitempty"`
	Error       string          `json:"error,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}

// TaskStore defines the interface for persisting task records.
// Absence of a key is a normal condition signalled by ErrTaskNotFound,
// not a store failure.
type TaskStore interface {
	// Put writes a record, overwriting any previous record for the id.
	Put(ctx context.Context, record Record) error

	// Get returns the record for the id, or ErrTaskNotFound.
	Get(ctx context.Context, taskID string) (Record, error)
}

// Task represents a unit of background work bound to a task id.
// Execute returns the family-specific payload to be stored on success.
type Task interface {
	// ID returns the task's deterministic identifier.
	ID() string

	// Type returns the task type identifier.
	Type() string

	// CallbackURL returns the optional result delivery URL, or "".
	CallbackURL() string

	// Execute runs the analysis and returns its result payload.
	Execute(ctx context.Context) (any, error)
}

// funcTask adapts a closure to the Task interface so the five
// analysis families share a single engine.
type funcTask struct {
	id          string
	typ         string
	callbackURL string
	fn          func(ctx context.Context) (any, error)
}

// New builds a Task from an analysis closure.
func New(id, typ, callbackURL string, fn func(ctx context.Context) (any, error)) Task {
	return &funcTask{id: id, typ: typ, callbackURL: callbackURL, fn: fn}
}

func (t *funcTask) ID() string          { return t.id }
func (t *funcTask) Type() string        { return t.typ }
func (t *funcTask) CallbackURL() string { return t.callbackURL }

func (t *funcTask) Execute(ctx context.Context) (any, error) {
	return t.fn(ctx)
}
