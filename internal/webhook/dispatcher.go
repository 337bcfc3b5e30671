// Package webhook delivers finished task records to caller-supplied
// callback URLs. Delivery is fire-and-forget: a failed POST is logged
// and never retried, and it never affects the stored record.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/smd-system/ai-service/internal/events"
	"github.com/smd-system/ai-service/internal/redact"
	"github.com/smd-system/ai-service/internal/task"
)

// callbackPayload is the JSON body posted to the callback URL.
type callbackPayload struct {
	TaskID string      `json:"task_id"`
	Result task.Record `json:"result"`
}

// Dispatcher posts completed task records to callback URLs. It
// implements events.EventHandler so it can be registered with the
// completion emitter.
type Dispatcher struct {
	client *http.Client
	logger *slog.Logger
}

// NewDispatcher creates a Dispatcher with a bounded request timeout so
// a slow callback receiver cannot pin a worker.
func NewDispatcher(timeout time.Duration, logger *slog.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{
		client: &http.Client{Timeout: timeout},
		logger: logger.With("component", "webhook_dispatcher"),
	}
}

// HandleEvent delivers the terminal record for events that carry a
// callback URL. Events without one are ignored.
func (d *Dispatcher) HandleEvent(ctx context.Context, event *events.TaskCompletedEvent) error {
	if event.CallbackURL == "" {
		return nil
	}
	d.Deliver(ctx, event.CallbackURL, event.TaskID, event.Record)
	return nil
}

// Deliver posts {task_id, result} to the callback URL. Failures are
// logged only.
func (d *Dispatcher) Deliver(ctx context.Context, callbackURL, taskID string, record task.Record) {
	logger := d.logger.With("task_id", taskID)

	body, err := json.Marshal(callbackPayload{TaskID: taskID, Result: record})
	if err != nil {
		logger.Error("failed to encode callback payload", "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, callbackURL, bytes.NewReader(body))
	if err != nil {
		logger.Error("failed to build callback request", "error", redact.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		logger.Warn("failed to send callback", "error", redact.Error(err))
		return
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Debug("failed to close callback response body", "error", err)
		}
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		logger.Warn("callback receiver rejected result",
			"status", fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode)))
		return
	}

	logger.Debug("callback delivered", "status_code", resp.StatusCode)
}
