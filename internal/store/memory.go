package store

import (
	"context"
	"sync"
)

// MemoryStore is an in-process TabularStore. It backs the service tests and
// doubles as a throwaway local backend.
type MemoryStore struct {
	mu     sync.Mutex
	tables map[string][][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: make(map[string][][]string)}
}

func (m *MemoryStore) Append(ctx context.Context, table string, row []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]string, len(row))
	copy(stored, row)
	m.tables[table] = append(m.tables[table], stored)
	return nil
}

func (m *MemoryStore) Scan(ctx context.Context, table string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	rows := m.tables[table]
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		copy(out[i], row)
	}
	return out, nil
}
