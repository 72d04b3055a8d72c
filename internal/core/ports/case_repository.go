package ports

import (
	"context"

	"github.com/legalapp/case-management/internal/core/domain"
)

// CaseRepository defines read access to cases plus Create for seeding.
type CaseRepository interface {
	Create(ctx context.Context, c *domain.Case) error
	List(ctx context.Context) ([]*domain.Case, error)
	ListByClient(ctx context.Context, clientID int64) ([]*domain.Case, error)
}
