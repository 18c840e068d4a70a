package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Fahad-1515/fnol-agent/internal/domain"
	"github.com/Fahad-1515/fnol-agent/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

func (r *statsRepo) RouteCounts(ctx context.Context) (*domain.Stats, error) {
	var s domain.Stats
	query := `SELECT
		COUNT(*) AS total_claims,
		COUNT(*) FILTER (WHERE route = 'Fast-track') AS fast_track,
		COUNT(*) FILTER (WHERE route = 'Standard Processing') AS standard_processing,
		COUNT(*) FILTER (WHERE route = 'Specialist Queue') AS specialist_queue,
		COUNT(*) FILTER (WHERE route = 'Investigation Flag') AS investigation_flag,
		COUNT(*) FILTER (WHERE route = 'Manual Review') AS manual_review
		FROM claims`
	if err := r.db.GetContext(ctx, &s, query); err != nil {
		return nil, fmt.Errorf("statsRepo.RouteCounts: %w", err)
	}
	return &s, nil
}
