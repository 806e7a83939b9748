package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/kirillkom/compliance-assistant/internal/core/domain"
)

// ComplaintRepository persists filed complaint records. The chat
// pipeline itself never reads them back; the listing and report
// endpoints do.
type ComplaintRepository struct {
	db *sql.DB
}

func NewComplaintRepository(db *sql.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func (r *ComplaintRepository) EnsureSchema(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize bootstrap DDL across api/worker startups.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026083001)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	const query = `
CREATE TABLE IF NOT EXISTS complaints (
	id TEXT PRIMARY KEY,
	filed_at TIMESTAMPTZ NOT NULL,
	category TEXT NOT NULL,
	priority TEXT NOT NULL,
	status TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_complaints_filed_at ON complaints(filed_at);
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("ensure complaints schema: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

func (r *ComplaintRepository) Create(ctx context.Context, record *domain.ComplaintRecord) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO complaints (id, filed_at, category, priority, status)
VALUES ($1,$2,$3,$4,$5)
`, record.ID, record.FiledAt, record.Category, record.Priority, record.Status)
	if err != nil {
		return fmt.Errorf("create complaint: %w", err)
	}
	return nil
}

func (r *ComplaintRepository) List(ctx context.Context) ([]domain.ComplaintRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, filed_at, category, priority, status
FROM complaints
ORDER BY filed_at DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ComplaintRecord, 0)
	for rows.Next() {
		var record domain.ComplaintRecord
		if err := rows.Scan(
			&record.ID,
			&record.FiledAt,
			&record.Category,
			&record.Priority,
			&record.Status,
		); err != nil {
			return nil, fmt.Errorf("scan complaint: %w", err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate complaints: %w", err)
	}
	return out, nil
}
