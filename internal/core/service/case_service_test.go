package service

import (
	"context"
	"errors"
	"testing"

	"github.com/legalapp/case-management/internal/core/domain"
)

type stubCaseRepo struct {
	cases []*domain.Case
	err   error
}

func (r *stubCaseRepo) Create(_ context.Context, c *domain.Case) error {
	c.ID = int64(len(r.cases) + 1)
	r.cases = append(r.cases, c.Clone())
	return nil
}

func (r *stubCaseRepo) List(_ context.Context) ([]*domain.Case, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.cases, nil
}

func (r *stubCaseRepo) ListByClient(_ context.Context, clientID int64) ([]*domain.Case, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.Case
	for _, c := range r.cases {
		if c.ClientID == clientID {
			out = append(out, c.Clone())
		}
	}
	return out, nil
}

func TestCaseService_CasesForClient(t *testing.T) {
	clients := &stubClientRepo{}
	clientSvc := newClientService(clients)
	a := mustCreate(t, clientSvc, "A", "a@x.com", "")
	b := mustCreate(t, clientSvc, "B", "b@x.com", "")

	cases := &stubCaseRepo{}
	_ = cases.Create(context.Background(), &domain.Case{Title: "one", ClientID: a.ID})
	_ = cases.Create(context.Background(), &domain.Case{Title: "two", ClientID: b.ID})
	_ = cases.Create(context.Background(), &domain.Case{Title: "three", ClientID: a.ID})

	svc := NewCaseService(clients, cases)
	got, err := svc.CasesForClient(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("CasesForClient: %v", err)
	}
	if len(got) != 2 || got[0].Title != "one" || got[1].Title != "three" {
		t.Fatalf("unexpected cases: %+v", got)
	}
}

func TestCaseService_CasesForClient_NoCasesIsEmptyNotError(t *testing.T) {
	clients := &stubClientRepo{}
	c := mustCreate(t, newClientService(clients), "A", "a@x.com", "")

	got, err := NewCaseService(clients, &stubCaseRepo{}).CasesForClient(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestCaseService_CasesForClient_MissingOrInactiveClient(t *testing.T) {
	clients := &stubClientRepo{}
	clientSvc := newClientService(clients)
	c := mustCreate(t, clientSvc, "A", "a@x.com", "")
	_ = clientSvc.Deactivate(context.Background(), c.ID)

	svc := NewCaseService(clients, &stubCaseRepo{})
	if _, err := svc.CasesForClient(context.Background(), c.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for inactive client, got %v", err)
	}
	if _, err := svc.CasesForClient(context.Background(), 404); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing client, got %v", err)
	}
}

func TestCaseService_ListAll(t *testing.T) {
	cases := &stubCaseRepo{}
	_ = cases.Create(context.Background(), &domain.Case{Title: "one", ClientID: 1})

	got, err := NewCaseService(&stubClientRepo{}, cases).ListAll(context.Background())
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected result: %v %+v", err, got)
	}

	boom := errors.New("boom")
	if _, err := NewCaseService(&stubClientRepo{}, &stubCaseRepo{err: boom}).ListAll(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
