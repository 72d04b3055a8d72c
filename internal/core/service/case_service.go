package service

import (
	"context"
	"fmt"

	"github.com/legalapp/case-management/internal/core/domain"
	"github.com/legalapp/case-management/internal/core/ports"
)

// CaseService projects cases onto their clients. It never mutates.
type CaseService struct {
	clients ports.ClientRepository
	cases   ports.CaseRepository
}

func NewCaseService(clients ports.ClientRepository, cases ports.CaseRepository) *CaseService {
	return &CaseService{clients: clients, cases: cases}
}

// CasesForClient returns every case of an active client in store order.
func (s *CaseService) CasesForClient(ctx context.Context, clientID int64) ([]*domain.Case, error) {
	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !client.IsActive {
		return nil, domain.ErrClientNotFound
	}

	cases, err := s.cases.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list cases for client %d: %w", clientID, err)
	}
	if cases == nil {
		cases = []*domain.Case{}
	}
	return cases, nil
}

func (s *CaseService) ListAll(ctx context.Context) ([]*domain.Case, error) {
	cases, err := s.cases.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	if cases == nil {
		cases = []*domain.Case{}
	}
	return cases, nil
}
