package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/legalapp/case-management/pkg/metrics"
	"github.com/legalapp/case-management/internal/core/domain"
	"github.com/legalapp/case-management/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

// TokenConfig holds the JWT signing parameters.
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// tokenClaims is the JWT payload. Subject carries the user id.
type tokenClaims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService implements login, registration and token verification.
type AuthService struct {
	repo   ports.UserRepository
	cfg    TokenConfig
	logger zerolog.Logger
	now    func() time.Time
}

func NewAuthService(repo ports.UserRepository, cfg TokenConfig, logger zerolog.Logger) *AuthService {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTokenTTL
	}
	return &AuthService{repo: repo, cfg: cfg, logger: logger, now: time.Now}
}

// Login checks the password of an active user and issues a token. Unknown,
// inactive and wrong-password cases all fail with domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (res *ports.AuthResult, err error) {
	defer func() { metrics.AuthAttemptsTotal.WithLabelValues("login", resultLabel(err)).Inc() }()

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Debug().Str("username", username).Msg("password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	return s.issue(user)
}

// Register creates a user with the User role and logs it in.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (res *ports.AuthResult, err error) {
	defer func() { metrics.AuthAttemptsTotal.WithLabelValues("register", resultLabel(err)).Inc() }()

	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrUserFieldsRequired
	}

	_, err = s.repo.FindByUsername(ctx, in.Username)
	switch {
	case err == nil:
		return nil, domain.ErrUsernameTaken
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("register: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		IsActive:     true,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return s.issue(user)
}

// VerifyToken validates signature, algorithm, issuer, audience and expiry.
func (s *AuthService) VerifyToken(token string) (claims *domain.Claims, err error) {
	defer func() {
		result := "ok"
		if err != nil {
			result = "invalid"
		}
		metrics.TokenVerificationsTotal.WithLabelValues(result).Inc()
	}()

	var tc tokenClaims
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.cfg.Issuer))
	}
	if s.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(s.cfg.Audience))
	}

	parsed, err := jwt.ParseWithClaims(token, &tc, func(*jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Secret), nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	id, err := strconv.ParseInt(tc.Subject, 10, 64)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Claims{
		UserID:    id,
		Username:  tc.Username,
		Email:     tc.Email,
		Role:      tc.Role,
		ExpiresAt: tc.ExpiresAt.Time,
	}, nil
}

func (s *AuthService) issue(user *domain.User) (*ports.AuthResult, error) {
	now := s.now()
	expiresAt := now.Add(s.cfg.TTL)

	claims := tokenClaims{
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	if s.cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{s.cfg.Audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &ports.AuthResult{Token: signed, ExpiresAt: expiresAt, User: user}, nil
}
