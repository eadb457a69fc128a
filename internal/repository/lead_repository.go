package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boonewh/pathsix-crm/internal/domain"
)

// ErrLeadNotFound is returned when a lead does not exist, is deleted, or
// is outside the caller's visibility.
var ErrLeadNotFound = errors.New("lead not found")

const leadColumns = `id, tenant_id, name, contact_person, contact_title, email,
	phone, phone_label, secondary_phone, secondary_phone_label,
	address, city, state, zip, notes, type, lead_status, converted_on,
	created_by, assigned_to, updated_by, created_at, updated_at`

// PostgresLeadRepository implements LeadRepository using PostgreSQL.
type PostgresLeadRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresLeadRepository creates a new PostgresLeadRepository.
func NewPostgresLeadRepository(pool *pgxpool.Pool) *PostgresLeadRepository {
	return &PostgresLeadRepository{pool: pool}
}

// Begin opens the staged transaction for one import batch.
func (r *PostgresLeadRepository) Begin(ctx context.Context) (LeadTx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin import transaction: %w", err)
	}
	return &pgLeadTx{tx: tx}, nil
}

// pgLeadTx stages lead creates inside one pgx transaction, one savepoint
// per row so a failed insert can be rolled back without losing earlier
// staged rows.
type pgLeadTx struct {
	tx        pgx.Tx
	seq       int
	savepoint string
}

func (t *pgLeadTx) StageCreate(ctx context.Context, lead *domain.Lead) (string, error) {
	t.seq++
	t.savepoint = fmt.Sprintf("stage_%d", t.seq)
	if _, err := t.tx.Exec(ctx, "SAVEPOINT "+t.savepoint); err != nil {
		return "", fmt.Errorf("savepoint: %w", err)
	}

	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	_, err := t.tx.Exec(ctx, `
		INSERT INTO leads (
			id, tenant_id, name, contact_person, contact_title, email,
			phone, phone_label, secondary_phone, secondary_phone_label,
			address, city, state, zip, notes, type, lead_status,
			created_by, assigned_to, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, NOW(), NOW())`,
		lead.ID, lead.TenantID, lead.Name, lead.ContactPerson, lead.ContactTitle, lead.Email,
		lead.Phone, lead.PhoneLabel, lead.SecondaryPhone, lead.SecondaryPhoneLabel,
		lead.Address, lead.City, lead.State, lead.Zip, lead.Notes, lead.Type, lead.LeadStatus,
		lead.CreatedBy, lead.AssignedTo,
	)
	if err != nil {
		return "", fmt.Errorf("stage lead: %w", err)
	}
	return lead.ID, nil
}

func (t *pgLeadTx) DiscardLastStaged(ctx context.Context) error {
	if t.savepoint == "" {
		return nil
	}
	if _, err := t.tx.Exec(ctx, "ROLLBACK TO SAVEPOINT "+t.savepoint); err != nil {
		return fmt.Errorf("discard staged lead: %w", err)
	}
	return nil
}

func (t *pgLeadTx) CommitAll(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit import batch: %w", err)
	}
	return nil
}

func (t *pgLeadTx) Abort(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("abort import batch: %w", err)
	}
	return nil
}

// List returns the leads visible to the identity: assigned to them, or
// unassigned and created by them. Admins see the same scoped view; the
// admin-wide listing is ListAll.
func (r *PostgresLeadRepository) List(ctx context.Context, identity domain.Identity) ([]domain.Lead, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+leadColumns+`
		FROM leads
		WHERE tenant_id = $1
		  AND deleted_at IS NULL
		  AND (assigned_to = $2 OR (assigned_to IS NULL AND created_by = $2))
		ORDER BY created_at DESC`,
		identity.TenantID, identity.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("query leads: %w", err)
	}
	defer rows.Close()
	return scanLeads(rows)
}

// ListAll returns every live lead in the tenant.
func (r *PostgresLeadRepository) ListAll(ctx context.Context, tenantID string) ([]domain.Lead, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+leadColumns+`
		FROM leads
		WHERE tenant_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC`,
		tenantID,
	)
	if err != nil {
		return nil, fmt.Errorf("query leads: %w", err)
	}
	defer rows.Close()
	return scanLeads(rows)
}

// Get fetches one lead. Non-admin callers only see leads they created or
// are assigned to.
func (r *PostgresLeadRepository) Get(ctx context.Context, identity domain.Identity, id string) (*domain.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL`
	args := []interface{}{id, identity.TenantID}
	if !identity.IsAdmin() {
		query += ` AND (created_by = $3 OR assigned_to = $3)`
		args = append(args, identity.UserID)
	}

	row := r.pool.QueryRow(ctx, query, args...)
	lead, err := scanLead(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrLeadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return lead, nil
}

// Create inserts a single lead outside any import batch.
func (r *PostgresLeadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO leads (
			id, tenant_id, name, contact_person, contact_title, email,
			phone, phone_label, secondary_phone, secondary_phone_label,
			address, city, state, zip, notes, type, lead_status,
			created_by, assigned_to, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, NOW(), NOW())`,
		lead.ID, lead.TenantID, lead.Name, lead.ContactPerson, lead.ContactTitle, lead.Email,
		lead.Phone, lead.PhoneLabel, lead.SecondaryPhone, lead.SecondaryPhoneLabel,
		lead.Address, lead.City, lead.State, lead.Zip, lead.Notes, lead.Type, lead.LeadStatus,
		lead.CreatedBy, lead.AssignedTo,
	)
	if err != nil {
		return fmt.Errorf("create lead: %w", err)
	}
	return nil
}

// Update writes the mutable lead fields. The caller owns visibility
// checks via Get.
func (r *PostgresLeadRepository) Update(ctx context.Context, lead *domain.Lead) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE leads SET
			name = $3, contact_person = $4, contact_title = $5, email = $6,
			phone = $7, phone_label = $8, secondary_phone = $9, secondary_phone_label = $10,
			address = $11, city = $12, state = $13, zip = $14, notes = $15,
			type = $16, lead_status = $17, converted_on = $18,
			updated_by = $19, updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL`,
		lead.ID, lead.TenantID,
		lead.Name, lead.ContactPerson, lead.ContactTitle, lead.Email,
		lead.Phone, lead.PhoneLabel, lead.SecondaryPhone, lead.SecondaryPhoneLabel,
		lead.Address, lead.City, lead.State, lead.Zip, lead.Notes,
		lead.Type, lead.LeadStatus, lead.ConvertedOn,
		lead.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLeadNotFound
	}
	return nil
}

// SoftDelete marks a lead deleted without removing the row.
func (r *PostgresLeadRepository) SoftDelete(ctx context.Context, identity domain.Identity, id string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE leads SET deleted_at = NOW(), updated_by = $3, updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
		  AND (created_by = $3 OR assigned_to = $3)`,
		id, identity.TenantID, identity.UserID,
	)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLeadNotFound
	}
	return nil
}

// Assign sets or clears the lead owner.
func (r *PostgresLeadRepository) Assign(ctx context.Context, identity domain.Identity, id string, assignedTo *string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE leads SET assigned_to = $3, updated_by = $4, updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL`,
		id, identity.TenantID, assignedTo, identity.UserID,
	)
	if err != nil {
		return fmt.Errorf("assign lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLeadNotFound
	}
	return nil
}

func scanLeads(rows pgx.Rows) ([]domain.Lead, error) {
	var leads []domain.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, *lead)
	}
	return leads, rows.Err()
}

func scanLead(row pgx.Row) (*domain.Lead, error) {
	var l domain.Lead
	err := row.Scan(
		&l.ID, &l.TenantID, &l.Name, &l.ContactPerson, &l.ContactTitle, &l.Email,
		&l.Phone, &l.PhoneLabel, &l.SecondaryPhone, &l.SecondaryPhoneLabel,
		&l.Address, &l.City, &l.State, &l.Zip, &l.Notes, &l.Type, &l.LeadStatus, &l.ConvertedOn,
		&l.CreatedBy, &l.AssignedTo, &l.UpdatedBy, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
