package webhook

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smd-system/ai-service/internal/events"
	"github.com/smd-system/ai-service/internal/task"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func completedRecord(taskID string) task.Record {
	now := time.Now().UTC()
	return task.Record{
		TaskID:      taskID,
		Type:        task.TypeSummary,
		Status:      task.StatusCompleted,
		Payload:     []byte(`{"summary":"done"}`),
		CreatedAt:   now,
		CompletedAt: &now,
	}
}

func TestDispatcher_Deliver(t *testing.T) {
	t.Parallel()

	t.Run("posts the record to the callback URL", func(t *testing.T) {
		t.Parallel()

		type received struct {
			contentType string
			body        []byte
		}
		got := make(chan received, 1)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			got <- received{contentType: r.Header.Get("Content-Type"), body: body}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		d := NewDispatcher(time.Second, testLogger())
		d.Deliver(context.Background(), server.URL, "summary_cb", completedRecord("summary_cb"))

		select {
		case r := <-got:
			assert.Equal(t, "application/json", r.contentType)

			var payload struct {
				TaskID string      `json:"task_id"`
				Result task.Record `json:"result"`
			}
			require.NoError(t, json.Unmarshal(r.body, &payload))
			assert.Equal(t, "summary_cb", payload.TaskID)
			assert.Equal(t, task.StatusCompleted, payload.Result.Status)
		case <-time.After(2 * time.Second):
			t.Fatal("callback never received")
		}
	})

	t.Run("receiver errors are swallowed", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		d := NewDispatcher(time.Second, testLogger())
		// Must not panic or return anything; failures are log-only.
		d.Deliver(context.Background(), server.URL, "summary_cb", completedRecord("summary_cb"))
	})

	t.Run("unreachable receiver is swallowed", func(t *testing.T) {
		t.Parallel()

		d := NewDispatcher(100*time.Millisecond, testLogger())
		d.Deliver(context.Background(), "http://127.0.0.1:1/unreachable", "summary_cb", completedRecord("summary_cb"))
	})
}

func TestDispatcher_HandleEvent(t *testing.T) {
	t.Parallel()

	t.Run("skips events without a callback URL", func(t *testing.T) {
		t.Parallel()

		delivered := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			delivered = true
		}))
		defer server.Close()

		d := NewDispatcher(time.Second, testLogger())
		event := events.NewTaskCompletedEvent("diff_1", "", completedRecord("diff_1"))
		require.NoError(t, d.HandleEvent(context.Background(), event))
		assert.False(t, delivered)
	})

	t.Run("delivers events with a callback URL", func(t *testing.T) {
		t.Parallel()

		hits := make(chan struct{}, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits <- struct{}{}
		}))
		defer server.Close()

		d := NewDispatcher(time.Second, testLogger())
		event := events.NewTaskCompletedEvent("diff_2", server.URL, completedRecord("diff_2"))
		require.NoError(t, d.HandleEvent(context.Background(), event))

		select {
		case <-hits:
		case <-time.After(2 * time.Second):
			t.Fatal("callback never received")
		}
	})
}
