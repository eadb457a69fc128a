package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boonewh/pathsix-crm/internal/domain"
)

// PostgresUserRepository implements UserRepository using PostgreSQL.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUserRepository creates a new PostgresUserRepository.
func NewPostgresUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// FindActiveByEmail resolves an import owner. Inactive and cross-tenant
// users resolve to nil, not an error.
func (r *PostgresUserRepository) FindActiveByEmail(ctx context.Context, tenantID, email string) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, tenant_id, email, is_active, created_at
		FROM users
		WHERE tenant_id = $1 AND email = $2 AND is_active`,
		tenantID, email,
	).Scan(&u.ID, &u.TenantID, &u.Email, &u.Active, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}
