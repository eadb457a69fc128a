package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boonewh/pathsix-crm/internal/domain"
)

// PostgresImportRunRepository implements ImportRunRepository using
// PostgreSQL.
type PostgresImportRunRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresImportRunRepository creates a new PostgresImportRunRepository.
func NewPostgresImportRunRepository(pool *pgxpool.Pool) *PostgresImportRunRepository {
	return &PostgresImportRunRepository{pool: pool}
}

// Create records one finished import batch. Runs are history, written
// after the batch transaction has committed or aborted.
func (r *PostgresImportRunRepository) Create(ctx context.Context, run *domain.ImportRun) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO import_runs (
			id, tenant_id, user_id, filename, status,
			success_count, failure_count, warning_count, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())`,
		run.ID, run.TenantID, run.UserID, run.Filename, run.Status,
		run.SuccessCount, run.FailureCount, run.WarningCount,
	)
	if err != nil {
		return fmt.Errorf("create import run: %w", err)
	}
	return nil
}

// ListRecent returns the latest import runs for a tenant, newest first.
func (r *PostgresImportRunRepository) ListRecent(ctx context.Context, tenantID string, limit int) ([]domain.ImportRun, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, tenant_id, user_id, filename, status,
		       success_count, failure_count, warning_count, created_at
		FROM import_runs
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		tenantID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query import runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.ImportRun
	for rows.Next() {
		var run domain.ImportRun
		if err := rows.Scan(
			&run.ID, &run.TenantID, &run.UserID, &run.Filename, &run.Status,
			&run.SuccessCount, &run.FailureCount, &run.WarningCount, &run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan import run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
