// Package memory is the process-local Persistence Port used by default and
// in tests. A Store is constructed explicitly and shared by reference; there
// is no package-level state.
package memory

import (
	"context"
	"sync"

	"github.com/legalapp/case-management/internal/core/domain"
	"github.com/legalapp/case-management/internal/core/ports"
)

// Store holds clients, cases and users in id order. Each method locks for
// its own duration only; sequences of calls are not atomic.
type Store struct {
	mu sync.RWMutex

	clients []*domain.Client
	cases   []*domain.Case
	users   []*domain.User

	nextClientID int64
	nextCaseID   int64
	nextUserID   int64
}

func NewStore() *Store {
	return &Store{nextClientID: 1, nextCaseID: 1, nextUserID: 1}
}

// Close drops every record. The store stays usable and starts empty.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients, s.cases, s.users = nil, nil, nil
	s.nextClientID, s.nextCaseID, s.nextUserID = 1, 1, 1
}

func (s *Store) Clients() *ClientRepository { return &ClientRepository{s: s} }
func (s *Store) Cases() *CaseRepository     { return &CaseRepository{s: s} }
func (s *Store) Users() *UserRepository     { return &UserRepository{s: s} }

// ClientRepository implements ports.ClientRepository.
type ClientRepository struct{ s *Store }

var _ ports.ClientRepository = (*ClientRepository)(nil)

func (r *ClientRepository) Create(_ context.Context, c *domain.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c.ID = r.s.nextClientID
	r.s.nextClientID++
	r.s.clients = append(r.s.clients, c.Clone())
	return nil
}

func (r *ClientRepository) FindByID(_ context.Context, id int64) (*domain.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if i := r.index(id); i >= 0 {
		return r.s.clients[i].Clone(), nil
	}
	return nil, domain.ErrClientNotFound
}

func (r *ClientRepository) List(_ context.Context, f ports.ClientFilter) ([]*domain.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.Client, 0, len(r.s.clients))
	for _, c := range r.s.clients {
		if f.Matches(c) {
			out = append(out, c.Clone())
		}
	}
	return out, nil
}

func (r *ClientRepository) Update(_ context.Context, c *domain.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i := r.index(c.ID)
	if i < 0 {
		return domain.ErrClientNotFound
	}
	r.s.clients[i] = c.Clone()
	return nil
}

// index returns the slice position of id; ids are dense and ascending.
func (r *ClientRepository) index(id int64) int {
	i := int(id - 1)
	if i < 0 || i >= len(r.s.clients) || r.s.clients[i].ID != id {
		return -1
	}
	return i
}

// CaseRepository implements ports.CaseRepository.
type CaseRepository struct{ s *Store }

var _ ports.CaseRepository = (*CaseRepository)(nil)

func (r *CaseRepository) Create(_ context.Context, c *domain.Case) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c.ID = r.s.nextCaseID
	r.s.nextCaseID++
	r.s.cases = append(r.s.cases, c.Clone())
	return nil
}

func (r *CaseRepository) List(_ context.Context) ([]*domain.Case, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.Case, 0, len(r.s.cases))
	for _, c := range r.s.cases {
		out = append(out, c.Clone())
	}
	return out, nil
}

func (r *CaseRepository) ListByClient(_ context.Context, clientID int64) ([]*domain.Case, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []*domain.Case{}
	for _, c := range r.s.cases {
		if c.ClientID == clientID {
			out = append(out, c.Clone())
		}
	}
	return out, nil
}

// UserRepository implements ports.UserRepository.
type UserRepository struct{ s *Store }

var _ ports.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			return u.Clone(), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	user.ID = r.s.nextUserID
	r.s.nextUserID++
	r.s.users = append(r.s.users, user.Clone())
	return nil
}

func (r *UserRepository) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.users)), nil
}
