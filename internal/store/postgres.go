package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PostgresStore implements TabularStore on a single append-only table.
// Cells are kept as a JSON array so the positional layout survives as-is;
// seq preserves insertion order, which the dedup logic depends on.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Init creates the backing table when it does not exist yet.
func (p *PostgresStore) Init(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS sheet_rows (
			seq   BIGSERIAL PRIMARY KEY,
			tab   TEXT NOT NULL,
			cells JSONB NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("create sheet_rows: %w", err)
	}
	return nil
}

func (p *PostgresStore) Append(ctx context.Context, table string, row []string) error {
	cells, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("marshal row: %w", err)
	}

	_, err = p.db.ExecContext(ctx,
		`INSERT INTO sheet_rows (tab, cells) VALUES ($1, $2)`, table, cells)
	if err != nil {
		return fmt.Errorf("postgres append to %s: %w", table, err)
	}
	return nil
}

func (p *PostgresStore) Scan(ctx context.Context, table string) ([][]string, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT cells FROM sheet_rows WHERE tab = $1 ORDER BY seq`, table)
	if err != nil {
		return nil, fmt.Errorf("postgres scan of %s: %w", table, err)
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		var cells []byte
		if err := rows.Scan(&cells); err != nil {
			return nil, fmt.Errorf("postgres scan of %s: %w", table, err)
		}
		var row []string
		if err := json.Unmarshal(cells, &row); err != nil {
			return nil, fmt.Errorf("decode row in %s: %w", table, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres scan of %s: %w", table, err)
	}
	return out, nil
}
