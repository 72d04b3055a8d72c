package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/legalapp/case-management/pkg/metrics"
	"github.com/legalapp/case-management/internal/core/domain"
	"github.com/legalapp/case-management/internal/core/ports"
)

// ClientService implements the client lifecycle: validation, email
// uniqueness among active clients, soft delete and restore.
//
// Uniqueness is a check-then-write over the active subset and is not atomic:
// two concurrent creates with the same email can both succeed.
type ClientService struct {
	repo        ports.ClientRepository
	idempotency ports.IdempotencyStore // optional
	logger      zerolog.Logger
	now         func() time.Time
}

// NewClientService returns a ClientService. idempotency may be nil.
func NewClientService(repo ports.ClientRepository, idempotency ports.IdempotencyStore, logger zerolog.Logger) *ClientService {
	return &ClientService{
		repo:        repo,
		idempotency: idempotency,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *ClientService) ListActive(ctx context.Context) ([]*domain.Client, error) {
	clients, err := s.repo.List(ctx, ports.ClientFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (s *ClientService) GetActive(ctx context.Context, id int64) (*domain.Client, error) {
	return s.findActive(ctx, id)
}

// Search returns active clients whose name, email or company name contains
// term. An empty term matches every active client.
func (s *ClientService) Search(ctx context.Context, term string) ([]*domain.Client, error) {
	clients, err := s.repo.List(ctx, ports.ClientFilter{ActiveOnly: true, Search: term})
	if err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}
	return clients, nil
}

func (s *ClientService) Create(ctx context.Context, in ports.CreateClientInput) (client *domain.Client, err error) {
	defer func() { observe("create", err) }()

	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrClientFieldsRequired
	}

	if replay, err := s.replay(ctx, in); replay != nil || err != nil {
		return replay, err
	}

	if err := s.ensureEmailFree(ctx, in.Email, 0); err != nil {
		return nil, err
	}

	client = &domain.Client{
		Name:        in.Name,
		Email:       in.Email,
		CompanyName: in.CompanyName,
		CreatedAt:   s.now(),
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, client); err != nil {
		s.logger.Error().Err(err).Msg("failed to create client")
		return nil, fmt.Errorf("create client: %w", err)
	}

	if in.IdempotencyKey != "" && s.idempotency != nil {
		if err := s.idempotency.Remember(ctx, in.IdempotencyKey, client.ID); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", in.IdempotencyKey).Msg("failed to record idempotency key")
		}
	}

	s.logger.Info().Int64("client_id", client.ID).Msg("client created")
	return client, nil
}

// Update replaces name, email and company name of an active client. ID and
// CreatedAt never change. A rejected update leaves the record untouched.
func (s *ClientService) Update(ctx context.Context, in ports.UpdateClientInput) (client *domain.Client, err error) {
	defer func() { observe("update", err) }()

	client, err = s.findActive(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrClientFieldsRequired
	}
	if err := s.ensureEmailFree(ctx, in.Email, in.ID); err != nil {
		return nil, err
	}

	client.Name = in.Name
	client.Email = in.Email
	client.CompanyName = in.CompanyName
	if err := s.repo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("update client %d: %w", in.ID, err)
	}

	s.logger.Info().Int64("client_id", client.ID).Msg("client updated")
	return client, nil
}

// Deactivate soft-deletes an active client.
func (s *ClientService) Deactivate(ctx context.Context, id int64) (err error) {
	defer func() { observe("deactivate", err) }()

	client, err := s.findActive(ctx, id)
	if err != nil {
		return err
	}
	client.IsActive = false
	if err := s.repo.Update(ctx, client); err != nil {
		return fmt.Errorf("deactivate client %d: %w", id, err)
	}

	s.logger.Info().Int64("client_id", id).Msg("client deactivated")
	return nil
}

// Reactivate marks any existing client active. Restoring a client that is
// already active succeeds without changes.
func (s *ClientService) Reactivate(ctx context.Context, id int64) (client *domain.Client, err error) {
	defer func() { observe("reactivate", err) }()

	client, err = s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client.IsActive {
		return client, nil
	}
	client.IsActive = true
	if err := s.repo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("reactivate client %d: %w", id, err)
	}

	s.logger.Info().Int64("client_id", id).Msg("client reactivated")
	return client, nil
}

func (s *ClientService) findActive(ctx context.Context, id int64) (*domain.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !client.IsActive {
		return nil, domain.ErrClientNotFound
	}
	return client, nil
}

// ensureEmailFree fails with domain.ErrEmailInUse when an active client other
// than excludeID already uses email.
func (s *ClientService) ensureEmailFree(ctx context.Context, email string, excludeID int64) error {
	taken, err := s.repo.List(ctx, ports.ClientFilter{ActiveOnly: true, Email: email, ExcludeID: excludeID})
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if len(taken) > 0 {
		return domain.ErrEmailInUse
	}
	return nil
}

// replay returns the client an earlier request with the same idempotency key
// created, or nil when the key is unknown. A key whose client has since been
// deactivated or removed counts as unknown. A key reused with different
// fields fails with domain.ErrIdempotencyKeyReused. Store failures are logged
// and treated as a miss.
func (s *ClientService) replay(ctx context.Context, in ports.CreateClientInput) (*domain.Client, error) {
	key := in.IdempotencyKey
	if key == "" || s.idempotency == nil {
		return nil, nil
	}
	id, ok, err := s.idempotency.Lookup(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed, creating anyway")
		return nil, nil
	}
	if !ok {
		return nil, nil
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil || !existing.IsActive {
		return nil, nil
	}
	if existing.Name != in.Name || existing.Email != in.Email || existing.CompanyName != in.CompanyName {
		return nil, domain.ErrIdempotencyKeyReused
	}
	s.logger.Info().Str("idempotency_key", key).Int64("client_id", id).Msg("idempotent replay")
	return existing, nil
}

func observe(operation string, err error) {
	metrics.ClientOperationsTotal.WithLabelValues(operation, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	default:
		return "error"
	}
}
