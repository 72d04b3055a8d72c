package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/legalapp/case-management/internal/core/domain"
	"github.com/legalapp/case-management/internal/core/ports"
)

func TestClientRepository_AssignsSequentialIDs(t *testing.T) {
	repo := NewStore().Clients()
	ctx := context.Background()

	for i, name := range []string{"a", "b", "c"} {
		c := &domain.Client{Name: name, Email: name + "@x.com", IsActive: true}
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("create: %v", err)
		}
		if c.ID != int64(i+1) {
			t.Fatalf("expected id %d, got %d", i+1, c.ID)
		}
	}

	all, _ := repo.List(ctx, ports.ClientFilter{})
	if len(all) != 3 || all[0].Name != "a" || all[2].Name != "c" {
		t.Fatalf("unexpected order: %+v", all)
	}
}

func TestClientRepository_ReturnsCopies(t *testing.T) {
	repo := NewStore().Clients()
	ctx := context.Background()

	c := &domain.Client{Name: "a", Email: "a@x.com", IsActive: true}
	_ = repo.Create(ctx, c)
	c.Name = "mutated"

	got, _ := repo.FindByID(ctx, c.ID)
	if got.Name != "a" {
		t.Fatalf("caller mutation leaked into store: %q", got.Name)
	}
	got.Name = "again"
	again, _ := repo.FindByID(ctx, c.ID)
	if again.Name != "a" {
		t.Fatalf("returned value aliases stored record")
	}
}

func TestClientRepository_FilterAndUpdate(t *testing.T) {
	repo := NewStore().Clients()
	ctx := context.Background()

	a := &domain.Client{Name: "Jean", Email: "jean@example.com", IsActive: true}
	b := &domain.Client{Name: "Marie", Email: "marie@example.com", IsActive: true}
	_ = repo.Create(ctx, a)
	_ = repo.Create(ctx, b)

	b.IsActive = false
	if err := repo.Update(ctx, b); err != nil {
		t.Fatalf("update: %v", err)
	}

	active, _ := repo.List(ctx, ports.ClientFilter{ActiveOnly: true})
	if len(active) != 1 || active[0].ID != a.ID {
		t.Fatalf("expected only first client active, got %+v", active)
	}

	found, _ := repo.List(ctx, ports.ClientFilter{Search: "Mar"})
	if len(found) != 1 || found[0].ID != b.ID {
		t.Fatalf("expected search to include inactive when not filtered, got %+v", found)
	}

	if err := repo.Update(ctx, &domain.Client{ID: 99}); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := repo.FindByID(ctx, 0); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found for id 0, got %v", err)
	}
}

func TestCaseRepository_ListByClient(t *testing.T) {
	repo := NewStore().Cases()
	ctx := context.Background()

	_ = repo.Create(ctx, &domain.Case{Title: "one", ClientID: 1})
	_ = repo.Create(ctx, &domain.Case{Title: "two", ClientID: 2})
	_ = repo.Create(ctx, &domain.Case{Title: "three", ClientID: 1})

	got, _ := repo.ListByClient(ctx, 1)
	if len(got) != 2 || got[0].Title != "one" || got[1].Title != "three" {
		t.Fatalf("unexpected cases: %+v", got)
	}

	none, _ := repo.ListByClient(ctx, 5)
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", none)
	}
}

func TestUserRepository(t *testing.T) {
	store := NewStore()
	repo := store.Users()
	ctx := context.Background()

	u := &domain.User{Username: "admin", Role: domain.RoleAdmin, IsActive: true}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID != 1 {
		t.Fatalf("expected id 1, got %d", u.ID)
	}
	if err := repo.Create(ctx, &domain.User{Username: "admin"}); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected username taken, got %v", err)
	}
	if _, err := repo.FindByUsername(ctx, "Admin"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("username lookup must be exact, got %v", err)
	}
	if n, _ := repo.Count(ctx); n != 1 {
		t.Fatalf("expected count 1, got %d", n)
	}

	store.Close()
	if n, _ := repo.Count(ctx); n != 0 {
		t.Fatalf("expected empty store after close, got %d", n)
	}
}
