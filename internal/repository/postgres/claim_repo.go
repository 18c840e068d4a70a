package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Fahad-1515/fnol-agent/internal/domain"
	"github.com/Fahad-1515/fnol-agent/internal/port"
)

type claimRepo struct {
	db *sqlx.DB
}

// NewClaimRepo creates a new PostgreSQL-backed ClaimRepository.
func NewClaimRepo(db *sqlx.DB) port.ClaimRepository {
	return &claimRepo{db: db}
}

func (r *claimRepo) Create(ctx context.Context, c *domain.Claim) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now().UTC()

	query := `INSERT INTO claims
		(id, document_name, format, extracted_fields, missing_fields, validation,
		 route, reasoning, raw_text_key, processed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.DocumentName, c.Format, c.ExtractedFields, c.MissingFields,
		c.Validation, c.Route, c.Reasoning, c.RawTextKey, c.ProcessedAt, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("claimRepo.Create: %w", err)
	}
	return nil
}

func (r *claimRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	var c domain.Claim
	err := r.db.GetContext(ctx, &c, "SELECT * FROM claims WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClaimNotFound
		}
		return nil, fmt.Errorf("claimRepo.GetByID: %w", err)
	}
	return &c, nil
}

func (r *claimRepo) List(ctx context.Context, route domain.Route, offset, limit int) ([]domain.Claim, int, error) {
	where := ""
	args := []any{}
	if route != "" {
		where = "WHERE route = $1"
		args = append(args, route)
	}

	var total int
	err := r.db.GetContext(ctx, &total,
		fmt.Sprintf("SELECT COUNT(*) FROM claims %s", where), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("claimRepo.List count: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT * FROM claims %s ORDER BY created_at DESC OFFSET $%d LIMIT $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, offset, limit)

	var claims []domain.Claim
	err = r.db.SelectContext(ctx, &claims, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("claimRepo.List: %w", err)
	}
	return claims, total, nil
}

func (r *claimRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM claims WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("claimRepo.Delete: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("claimRepo.Delete rows: %w", err)
	}
	if rows == 0 {
		return domain.ErrClaimNotFound
	}
	return nil
}
