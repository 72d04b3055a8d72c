package ports

import (
	"context"
	"strings"

	"github.com/legalapp/case-management/internal/core/domain"
)

// ClientFilter is the predicate for ClientRepository.List. Zero values mean
// "no constraint".
type ClientFilter struct {
	ActiveOnly bool
	Email      string // exact match
	ExcludeID  int64  // skip this id (self-match exclusion on update)
	Search     string // substring of name, email or company name
}

// Matches reports whether c satisfies the filter. Adapters that scan in
// memory use it directly; query-building adapters must agree with it.
func (f ClientFilter) Matches(c *domain.Client) bool {
	if f.ActiveOnly && !c.IsActive {
		return false
	}
	if f.Email != "" && c.Email != f.Email {
		return false
	}
	if f.ExcludeID != 0 && c.ID == f.ExcludeID {
		return false
	}
	if f.Search != "" && !containsAny(f.Search, c.Name, c.Email, c.CompanyName) {
		return false
	}
	return true
}

func containsAny(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(f, term) {
			return true
		}
	}
	return false
}

// ClientRepository is the Persistence Port for clients: create, point
// lookup, predicate scan and update-in-place. Results are in id order.
type ClientRepository interface {
	// Create assigns c.ID and persists c.
	Create(ctx context.Context, c *domain.Client) error
	// FindByID returns the client regardless of IsActive, or
	// domain.ErrClientNotFound.
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context, filter ClientFilter) ([]*domain.Client, error)
	// Update overwrites the stored record with c. Returns
	// domain.ErrClientNotFound when c.ID does not exist.
	Update(ctx context.Context, c *domain.Client) error
}
