package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ExploitInject/Income-Management-TH/internal/apperrors"
	"github.com/ExploitInject/Income-Management-TH/internal/core/domain"
	"github.com/ExploitInject/Income-Management-TH/internal/core/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxEntryRepository is the hosted entry store. Every query is scoped by the
// owner's user id; a mismatched owner behaves exactly like a missing row.
type PgxEntryRepository struct {
	pool *pgxpool.Pool
}

// NewPgxEntryRepository creates a new repository for work entries.
func NewPgxEntryRepository(pool *pgxpool.Pool) ports.EntryRepository {
	return &PgxEntryRepository{pool: pool}
}

// SaveEntry inserts a new work entry.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, ownerID string, entry domain.WorkEntry) error {
	query := `
		INSERT INTO work_entries (id, user_id, date, category, description, amount, currency, payment_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		ownerID,
		entry.Date,
		entry.Category,
		entry.Description,
		entry.Amount,
		entry.Currency,
		string(entry.PaymentStatus),
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save entry %s: %w", entry.ID, err)
	}
	return nil
}

// FindEntryByID retrieves one entry owned by ownerID.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, ownerID string, entryID string) (*domain.WorkEntry, error) {
	query := `
		SELECT id, date, category, description, amount, currency, payment_status, created_at, updated_at
		FROM work_entries
		WHERE id = $1 AND user_id = $2;
	`
	var entry domain.WorkEntry
	var status string
	err := r.pool.QueryRow(ctx, query, entryID, ownerID).Scan(
		&entry.ID,
		&entry.Date,
		&entry.Category,
		&entry.Description,
		&entry.Amount,
		&entry.Currency,
		&status,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry by id %s: %w", entryID, err)
	}
	entry.PaymentStatus = domain.PaymentStatus(status)
	return &entry, nil
}

// ListEntries retrieves all entries owned by ownerID, newest date first.
func (r *PgxEntryRepository) ListEntries(ctx context.Context, ownerID string) ([]domain.WorkEntry, error) {
	query := `
		SELECT id, date, category, description, amount, currency, payment_status, created_at, updated_at
		FROM work_entries
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.WorkEntry
	for rows.Next() {
		var entry domain.WorkEntry
		var status string
		if err := rows.Scan(
			&entry.ID,
			&entry.Date,
			&entry.Category,
			&entry.Description,
			&entry.Amount,
			&entry.Currency,
			&status,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entry.PaymentStatus = domain.PaymentStatus(status)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", err)
	}
	return entries, nil
}

// UpdateEntry replaces the mutable fields of an entry owned by ownerID.
func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, ownerID string, entry domain.WorkEntry) error {
	query := `
		UPDATE work_entries
		SET date = $1, category = $2, description = $3, amount = $4, currency = $5, payment_status = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9;
	`
	tag, err := r.pool.Exec(ctx, query,
		entry.Date,
		entry.Category,
		entry.Description,
		entry.Amount,
		entry.Currency,
		string(entry.PaymentStatus),
		entry.UpdatedAt,
		entry.ID,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry %s: %w", entry.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEntry removes an entry owned by ownerID.
func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, ownerID string, entryID string) error {
	query := `DELETE FROM work_entries WHERE id = $1 AND user_id = $2;`
	tag, err := r.pool.Exec(ctx, query, entryID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
