package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/legalapp/case-management/internal/core/domain"
	"github.com/legalapp/case-management/internal/core/ports"
)

type stubClientService struct {
	listFn       func(ctx context.Context) ([]*domain.Client, error)
	getFn        func(ctx context.Context, id int64) (*domain.Client, error)
	searchFn     func(ctx context.Context, term string) ([]*domain.Client, error)
	createFn     func(ctx context.Context, in ports.CreateClientInput) (*domain.Client, error)
	updateFn     func(ctx context.Context, in ports.UpdateClientInput) (*domain.Client, error)
	deactivateFn func(ctx context.Context, id int64) error
}

func (s *stubClientService) ListActive(ctx context.Context) ([]*domain.Client, error) {
	return s.listFn(ctx)
}
func (s *stubClientService) GetActive(ctx context.Context, id int64) (*domain.Client, error) {
	return s.getFn(ctx, id)
}
func (s *stubClientService) Search(ctx context.Context, term string) ([]*domain.Client, error) {
	return s.searchFn(ctx, term)
}
func (s *stubClientService) Create(ctx context.Context, in ports.CreateClientInput) (*domain.Client, error) {
	return s.createFn(ctx, in)
}
func (s *stubClientService) Update(ctx context.Context, in ports.UpdateClientInput) (*domain.Client, error) {
	return s.updateFn(ctx, in)
}
func (s *stubClientService) Deactivate(ctx context.Context, id int64) error {
	return s.deactivateFn(ctx, id)
}
func (s *stubClientService) Reactivate(context.Context, int64) (*domain.Client, error) {
	return nil, errors.New("not used over REST")
}

type stubCaseService struct {
	forClientFn func(ctx context.Context, clientID int64) ([]*domain.Case, error)
}

func (s *stubCaseService) CasesForClient(ctx context.Context, clientID int64) ([]*domain.Case, error) {
	return s.forClientFn(ctx, clientID)
}
func (s *stubCaseService) ListAll(context.Context) ([]*domain.Case, error) { return nil, nil }

var created = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func jean() *domain.Client {
	return &domain.Client{ID: 1, Name: "Jean Dupont", Email: "jean@example.com", CompanyName: "Dupont SARL", CreatedAt: created, IsActive: true}
}

func withID(e *echo.Echo, method, target, id string, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func TestClientHandler_List(t *testing.T) {
	e := echo.New()
	svc := &stubClientService{
		listFn: func(ctx context.Context) ([]*domain.Client, error) {
			return []*domain.Client{jean()}, nil
		},
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/clients", nil), rec)
	if err := NewClientHandler(svc, nil).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []clientResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0].CompanyName != "Dupont SARL" || resp[0].CreatedAt != "2024-03-01T09:00:00Z" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestClientHandler_List_Search(t *testing.T) {
	e := echo.New()
	svc := &stubClientService{
		searchFn: func(ctx context.Context, term string) ([]*domain.Client, error) {
			if term != "Dup" {
				t.Fatalf("unexpected term %q", term)
			}
			return []*domain.Client{}, nil
		},
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/clients?search=Dup", nil), rec)
	if err := NewClientHandler(svc, nil).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}

func TestClientHandler_Get(t *testing.T) {
	svc := &stubClientService{
		getFn: func(ctx context.Context, id int64) (*domain.Client, error) {
			if id != 1 {
				return nil, domain.ErrClientNotFound
			}
			return jean(), nil
		},
	}
	h := NewClientHandler(svc, nil)

	c, rec := withID(echo.New(), http.MethodGet, "/api/clients/1", "1", "")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = withID(echo.New(), http.MethodGet, "/api/clients/2", "2", "")
	if err := h.Get(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	c, _ = withID(echo.New(), http.MethodGet, "/api/clients/abc", "abc", "")
	if code := httpCode(t, h.Get(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", code)
	}
}

func TestClientHandler_Create(t *testing.T) {
	svc := &stubClientService{
		createFn: func(ctx context.Context, in ports.CreateClientInput) (*domain.Client, error) {
			if in.Name != "Jean Dupont" || in.CompanyName != "Dupont SARL" || in.IdempotencyKey != "k-1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return jean(), nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/clients",
		strings.NewReader(`{"name":"Jean Dupont","email":"jean@example.com","companyName":"Dupont SARL"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Idempotency-Key", "k-1")
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	if err := NewClientHandler(svc, nil).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/api/clients/1" {
		t.Fatalf("unexpected location %q", loc)
	}
}

func TestClientHandler_Create_ServiceErrorsPassThrough(t *testing.T) {
	for _, want := range []error{domain.ErrClientFieldsRequired, domain.ErrEmailInUse} {
		svc := &stubClientService{
			createFn: func(ctx context.Context, in ports.CreateClientInput) (*domain.Client, error) {
				return nil, want
			},
		}
		c, _ := postJSON(echo.New(), "/api/clients", `{"name":"","email":""}`)
		if err := NewClientHandler(svc, nil).Create(c); !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
	}
}

func TestClientHandler_Update(t *testing.T) {
	svc := &stubClientService{
		updateFn: func(ctx context.Context, in ports.UpdateClientInput) (*domain.Client, error) {
			if in.ID != 1 || in.Email != "new@example.com" {
				t.Fatalf("unexpected input: %+v", in)
			}
			c := jean()
			c.Email = in.Email
			return c, nil
		},
	}

	c, rec := withID(echo.New(), http.MethodPut, "/api/clients/1", "1", `{"name":"Jean Dupont","email":"new@example.com"}`)
	if err := NewClientHandler(svc, nil).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp clientResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Email != "new@example.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestClientHandler_Delete(t *testing.T) {
	var got int64
	svc := &stubClientService{
		deactivateFn: func(ctx context.Context, id int64) error {
			got = id
			return nil
		},
	}

	c, rec := withID(echo.New(), http.MethodDelete, "/api/clients/7", "7", "")
	if err := NewClientHandler(svc, nil).Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent || got != 7 {
		t.Fatalf("expected 204 for id 7, got %d for id %d", rec.Code, got)
	}
}

func TestClientHandler_Cases(t *testing.T) {
	cases := &stubCaseService{
		forClientFn: func(ctx context.Context, clientID int64) ([]*domain.Case, error) {
			if clientID == 9 {
				return nil, domain.ErrClientNotFound
			}
			return []*domain.Case{{ID: 1, Title: "Contrat commercial", ClientID: clientID, Status: "In Progress", CreatedAt: created}}, nil
		},
	}
	h := NewClientHandler(&stubClientService{}, cases)

	c, rec := withID(echo.New(), http.MethodGet, "/api/clients/1/cases", "1", "")
	if err := h.Cases(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp []caseResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if len(resp) != 1 || resp[0].ClientID != 1 || resp[0].Status != "In Progress" {
		t.Fatalf("unexpected payload: %+v", resp)
	}

	c, _ = withID(echo.New(), http.MethodGet, "/api/clients/9/cases", "9", "")
	if err := h.Cases(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
