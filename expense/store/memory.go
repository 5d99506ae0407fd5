// Package store provides an in-memory Store implementation for tests and
// the dev backend.
package store

import (
	"context"
	"sync"

	"github.com/warp/expense-engine/expense"
)

// =============================================================================
// MEMORY STORE
// =============================================================================

type Memory struct {
	mu      sync.RWMutex
	records []expense.Record

	failWith error
}

func NewMemory() *Memory {
	return &Memory{}
}

// LoadAll returns the stored records in insertion order.
func (m *Memory) LoadAll(_ context.Context) ([]expense.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := make([]expense.Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

// ReplaceAll swaps the stored collection. All-or-nothing by construction.
func (m *Memory) ReplaceAll(_ context.Context, records []expense.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	next := make([]expense.Record, len(records))
	copy(next, records)
	m.records = next
	return nil
}

// FailWith makes subsequent loads and flushes fail with err, simulating an
// unavailable backing medium. Pass nil to heal.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}
