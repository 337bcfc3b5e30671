package store

import (
	"context"
	"sync"

	"github.com/smd-system/ai-service/internal/task"
)

// Memory is an in-memory task record store. Writes are unconditional
// overwrites; last write wins for a contested id.
type Memory struct {
	mu      sync.RWMutex
	records map[string]task.Record
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{records: make(map[string]task.Record)}
}

// Put writes a record, overwriting any previous record for the id.
func (m *Memory) Put(_ context.Context, record task.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.TaskID] = record
	return nil
}

// Get returns the record for the id, or task.ErrTaskNotFound.
func (m *Memory) Get(_ context.Context, taskID string) (task.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.records[taskID]
	if !ok {
		return task.Record{}, task.ErrTaskNotFound
	}
	return record, nil
}

// Len reports the number of stored records.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
