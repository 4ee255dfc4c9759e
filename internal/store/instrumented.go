package store

import (
	"context"

	"github.com/AgentPisite999/agentpi-backend/internal/common/metrics"
)

// instrumented wraps any TabularStore with operation counters.
type instrumented struct {
	inner TabularStore
}

// WithMetrics decorates a store so every append and scan is counted, per
// table and result.
func WithMetrics(inner TabularStore) TabularStore {
	return &instrumented{inner: inner}
}

func (i *instrumented) Append(ctx context.Context, table string, row []string) error {
	err := i.inner.Append(ctx, table, row)
	metrics.StoreOperations.WithLabelValues("append", table, statusLabel(err)).Inc()
	return err
}

func (i *instrumented) Scan(ctx context.Context, table string) ([][]string, error) {
	rows, err := i.inner.Scan(ctx, table)
	metrics.StoreOperations.WithLabelValues("scan", table, statusLabel(err)).Inc()
	return rows, err
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
