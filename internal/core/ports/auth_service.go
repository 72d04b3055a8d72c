package ports

import (
	"context"
	"time"

	"github.com/legalapp/case-management/internal/core/domain"
)

// RegisterInput carries a self-registration request.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// AuthResult is returned by a successful login or registration.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// TokenVerifier decodes bearer tokens. The HTTP middleware and the GraphQL
// endpoint depend only on this half of AuthService.
type TokenVerifier interface {
	VerifyToken(token string) (*domain.Claims, error)
}

type AuthService interface {
	TokenVerifier
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
}
