package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/Fahad-1515/fnol-agent/internal/domain"
)

// ClaimRepository defines the contract for claim persistence.
type ClaimRepository interface {
	Create(ctx context.Context, claim *domain.Claim) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Claim, error)
	List(ctx context.Context, route domain.Route, offset, limit int) ([]domain.Claim, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// StatsRepository defines the contract for claim statistics aggregation.
type StatsRepository interface {
	RouteCounts(ctx context.Context) (*domain.Stats, error)
}
