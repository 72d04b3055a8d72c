package ports

import (
	"context"

	"github.com/legalapp/case-management/internal/core/domain"
)

// CreateClientInput carries the fields of a new client.
type CreateClientInput struct {
	Name        string
	Email       string
	CompanyName string
	// IdempotencyKey is optional. Repeating a key with the same fields returns
	// the client the first request created while it is still active. Reusing
	// it with different fields is a conflict.
	IdempotencyKey string
}

// UpdateClientInput carries the full replacement of a client's mutable fields.
type UpdateClientInput struct {
	ID          int64
	Name        string
	Email       string
	CompanyName string
}

// ClientService defines the client lifecycle use cases shared by the REST
// and GraphQL surfaces.
type ClientService interface {
	ListActive(ctx context.Context) ([]*domain.Client, error)
	GetActive(ctx context.Context, id int64) (*domain.Client, error)
	Search(ctx context.Context, term string) ([]*domain.Client, error)
	Create(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	Update(ctx context.Context, input UpdateClientInput) (*domain.Client, error)
	Deactivate(ctx context.Context, id int64) error
	Reactivate(ctx context.Context, id int64) (*domain.Client, error)
}

// CaseService is the read-only projection of cases.
type CaseService interface {
	CasesForClient(ctx context.Context, clientID int64) ([]*domain.Case, error)
	ListAll(ctx context.Context) ([]*domain.Case, error)
}
