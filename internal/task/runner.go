package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// RunnerConfig holds configuration for the task runner.
type RunnerConfig struct {
	// WorkerCount determines how many concurrent workers process tasks
	WorkerCount int

	// QueueSize determines the buffer size for the in-memory task queue
	QueueSize int
}

// DefaultRunnerConfig returns a RunnerConfig with reasonable defaults.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		WorkerCount: 2,
		QueueSize:   100,
	}
}

// CompletionFunc is invoked after a terminal record has been written.
// The record passed is the stored terminal record.
type CompletionFunc func(ctx context.Context, t Task, record Record)

// Runner manages background task processing. Handlers submit tasks and
// return immediately; workers execute the analysis off the request
// path and write exactly one terminal record per task.
type Runner struct {
	store        TaskStore
	taskChan     chan Task
	ctx          context.Context
	cancelFunc   context.CancelFunc
	wg           sync.WaitGroup
	config       RunnerConfig
	logger       *slog.Logger
	onCompletion CompletionFunc

	mu     sync.Mutex
	closed bool
}

// NewRunner creates a new Runner backed by the given store.
func NewRunner(store TaskStore, config RunnerConfig, logger *slog.Logger) *Runner {
	if config.WorkerCount <= 0 {
		config.WorkerCount = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{
		store:      store,
		taskChan:   make(chan Task, config.QueueSize),
		ctx:        ctx,
		cancelFunc: cancel,
		config:     config,
		logger:     logger,
	}
}

// SetCompletionFunc registers a hook called after each terminal write.
// Must be called before Start.
func (r *Runner) SetCompletionFunc(fn CompletionFunc) {
	r.onCompletion = fn
}

// Submit registers a pending record for the task and adds it to the
// queue. It never blocks on task execution. A rejected submission
// leaves no record behind, so capacity is checked before the pending
// write.
func (r *Runner) Submit(ctx context.Context, t Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrQueueClosed
	}
	if len(r.taskChan) == cap(r.taskChan) {
		return fmt.Errorf("%w: capacity %d reached", ErrQueueFull, cap(r.taskChan))
	}

	pending := Record{
		TaskID:    t.ID(),
		Type:      t.Type(),
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.store.Put(ctx, pending); err != nil {
		return fmt.Errorf("failed to save pending task record: %w", err)
	}

	// Submitters are the only senders and they hold the lock, so the
	// slot checked above is still free.
	r.taskChan <- t
	return nil
}

// Start launches the worker goroutines.
func (r *Runner) Start() {
	for i := 0; i < r.config.WorkerCount; i++ {
		r.wg.Add(1)
		go r.worker(i)
	}
}

// Stop gracefully shuts down the runner. Queued tasks that have not
// started are abandoned with their pending record left in the store.
func (r *Runner) Stop() {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.taskChan)
	}
	r.mu.Unlock()

	r.cancelFunc()
	r.wg.Wait()
}

// worker processes tasks from the queue until shutdown.
func (r *Runner) worker(id int) {
	defer r.wg.Done()

	r.logger.Debug("starting worker", "worker_id", id)

	for {
		select {
		case <-r.ctx.Done():
			r.logger.Debug("stopping worker", "worker_id", id)
			return
		case t, ok := <-r.taskChan:
			if !ok {
				r.logger.Debug("task channel closed, stopping worker", "worker_id", id)
				return
			}
			r.processTask(t, id)
		}
	}
}

// processTask handles execution of a single task: the processing
// marker, the analysis itself, and the single terminal write. Worker
// failures are captured in the failed record; there is no caller left
// to propagate them to.
func (r *Runner) processTask(t Task, workerID int) {
	ctx := context.Background()
	logger := r.logger.With(
		"task_id", t.ID(),
		"task_type", t.Type(),
		"worker_id", workerID,
	)

	now := time.Now().UTC()
	processing := Record{
		TaskID:    t.ID(),
		Type:      t.Type(),
		Status:    StatusProcessing,
		CreatedAt: now,
	}
	if err := r.store.Put(ctx, processing); err != nil {
		logger.Error("failed to mark task as processing", "error", err)
	}

	logger.Info("processing task")

	result, err := t.Execute(ctx)

	terminal := Record{
		TaskID:    t.ID(),
		Type:      t.Type(),
		CreatedAt: now,
	}
	done := time.Now().UTC()
	terminal.CompletedAt = &done

	if err != nil {
		logger.Error("task execution failed", "error", err)
		terminal.Status = StatusFailed
		terminal.Error = err.Error()
	} else {
		payload, marshalErr := json.Marshal(result)
		if marshalErr != nil {
			logger.Error("failed to encode task payload", "error", marshalErr)
			terminal.Status = StatusFailed
			terminal.Error = fmt.Sprintf("failed to encode result: %v", marshalErr)
		} else {
			terminal.Status = StatusCompleted
			terminal.Payload = payload
		}
	}

	if err := r.store.Put(ctx, terminal); err != nil {
		logger.Error("failed to write terminal task record", "error", err)
		return
	}

	logger.Info("task finished", "status", terminal.Status)

	if r.onCompletion != nil {
		r.onCompletion(ctx, t, terminal)
	}
}
