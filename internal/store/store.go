// Package store abstracts the append/scan tabular backend the candidate
// records live in. Rows are positional; the records package owns the layout.
package store

import "context"

// TabularStore is the contract every backend implements.
//
// Append adds one row at the end of a table. Scan returns every row
// currently visible in insertion order. Neither operation offers snapshot
// isolation: two scans in the same request may observe different data when
// other writers are concurrent, and scan-then-append sequences are racy by
// contract.
type TabularStore interface {
	Append(ctx context.Context, table string, row []string) error
	Scan(ctx context.Context, table string) ([][]string, error)
}
