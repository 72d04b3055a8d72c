// Package seed loads the sample practice data used in development.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/legalapp/case-management/internal/core/domain"
	"github.com/legalapp/case-management/internal/core/ports"
)

type Repositories struct {
	Clients ports.ClientRepository
	Cases   ports.CaseRepository
	Users   ports.UserRepository
}

type sampleUser struct {
	username, password, email, role string
}

var sampleUsers = []sampleUser{
	{"admin", "password123", "admin@legal.com", domain.RoleAdmin},
	{"lawyer", "lawyer123", "lawyer@legal.com", domain.RoleLawyer},
}

var sampleClients = []domain.Client{
	{Name: "Jean Dupont", Email: "jean@example.com", CompanyName: "Dupont SARL"},
	{Name: "Marie Martin", Email: "marie@example.com", CompanyName: "Martin & Co"},
}

// sampleCases reference sampleClients by position.
var sampleCases = []struct {
	title, description, status string
	client                     int
}{
	{"Contrat commercial", "Révision contrat", "In Progress", 0},
	{"Litige employé", "Rupture conventionnelle", "Open", 1},
}

// Run inserts the sample users, clients and cases. It does nothing when
// any user already exists, so restarts against a persistent store are safe.
// It reports whether data was written.
func Run(ctx context.Context, repos Repositories, logger zerolog.Logger) (bool, error) {
	n, err := repos.Users.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: count users: %w", err)
	}
	if n > 0 {
		logger.Debug().Int64("users", n).Msg("store already populated, skipping seed")
		return false, nil
	}

	now := time.Now().UTC()

	for _, su := range sampleUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return false, fmt.Errorf("seed: hash password: %w", err)
		}
		u := &domain.User{
			Username:     su.username,
			Email:        su.email,
			PasswordHash: string(hash),
			Role:         su.role,
			IsActive:     true,
			CreatedAt:    now,
		}
		if err := repos.Users.Create(ctx, u); err != nil {
			return false, fmt.Errorf("seed: user %s: %w", su.username, err)
		}
	}

	ids := make([]int64, len(sampleClients))
	for i, sc := range sampleClients {
		c := sc.Clone()
		c.CreatedAt = now
		c.IsActive = true
		if err := repos.Clients.Create(ctx, c); err != nil {
			return false, fmt.Errorf("seed: client %s: %w", sc.Email, err)
		}
		ids[i] = c.ID
	}

	for _, sc := range sampleCases {
		c := &domain.Case{
			Title:       sc.title,
			Description: sc.description,
			ClientID:    ids[sc.client],
			Status:      sc.status,
			CreatedAt:   now,
		}
		if err := repos.Cases.Create(ctx, c); err != nil {
			return false, fmt.Errorf("seed: case %s: %w", sc.title, err)
		}
	}

	logger.Info().
		Int("users", len(sampleUsers)).
		Int("clients", len(sampleClients)).
		Int("cases", len(sampleCases)).
		Msg("sample data loaded")
	return true, nil
}
