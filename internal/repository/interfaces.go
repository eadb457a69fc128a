package repository

import (
	"context"

	"github.com/boonewh/pathsix-crm/internal/domain"
)

// LeadTx is the staged transaction an import batch accumulates into.
// Creates are staged, not durably committed, until CommitAll; a failed
// stage is discarded with DiscardLastStaged without touching rows staged
// earlier in the same batch. Exactly one import request owns a LeadTx.
type LeadTx interface {
	// StageCreate inserts a lead inside the transaction and returns its
	// generated id. The insert is wrapped in a savepoint so a failure can
	// be discarded in isolation.
	StageCreate(ctx context.Context, lead *domain.Lead) (string, error)
	// DiscardLastStaged rolls back the most recent StageCreate attempt,
	// leaving earlier staged rows intact.
	DiscardLastStaged(ctx context.Context) error
	// CommitAll durably commits every staged row.
	CommitAll(ctx context.Context) error
	// Abort discards the whole batch.
	Abort(ctx context.Context) error
}

// LeadRepository defines lead data access: the staged import path plus the
// tenant-scoped CRUD surface.
type LeadRepository interface {
	Begin(ctx context.Context) (LeadTx, error)

	List(ctx context.Context, identity domain.Identity) ([]domain.Lead, error)
	ListAll(ctx context.Context, tenantID string) ([]domain.Lead, error)
	Get(ctx context.Context, identity domain.Identity, id string) (*domain.Lead, error)
	Create(ctx context.Context, lead *domain.Lead) error
	Update(ctx context.Context, lead *domain.Lead) error
	SoftDelete(ctx context.Context, identity domain.Identity, id string) error
	Assign(ctx context.Context, identity domain.Identity, id string, assignedTo *string) error
}

// UserRepository resolves users for lead ownership.
type UserRepository interface {
	// FindActiveByEmail returns the active user with the given email in
	// the tenant, or nil when no such user exists.
	FindActiveByEmail(ctx context.Context, tenantID, email string) (*domain.User, error)
}

// ImportRunRepository records the history of import batches.
type ImportRunRepository interface {
	Create(ctx context.Context, run *domain.ImportRun) error
	ListRecent(ctx context.Context, tenantID string, limit int) ([]domain.ImportRun, error)
}
