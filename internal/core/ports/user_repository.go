package ports

import (
	"context"

	"github.com/legalapp/case-management/internal/core/domain"
)

// UserRepository defines persistence for credential principals.
type UserRepository interface {
	// FindByUsername returns the user with exactly this username regardless
	// of IsActive, or domain.ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create assigns user.ID and persists it. A duplicate username yields
	// domain.ErrUsernameTaken.
	Create(ctx context.Context, user *domain.User) error
	Count(ctx context.Context) (int64, error)
}
