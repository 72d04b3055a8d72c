package handler

import (
	"time"

	"github.com/legalapp/case-management/internal/core/domain"
	"github.com/legalapp/case-management/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req clientRequest, idempotencyKey string) ports.CreateClientInput {
	return ports.CreateClientInput{
		Name:           req.Name,
		Email:          req.Email,
		CompanyName:    req.CompanyName,
		IdempotencyKey: idempotencyKey,
	}
}

func toUpdateInput(id int64, req clientRequest) ports.UpdateClientInput {
	return ports.UpdateClientInput{
		ID:          id,
		Name:        req.Name,
		Email:       req.Email,
		CompanyName: req.CompanyName,
	}
}

// --- Domain → Response ---

func toClientResponse(c *domain.Client) clientResponse {
	return clientResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		CompanyName: c.CompanyName,
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339),
		IsActive:    c.IsActive,
	}
}

func toClientResponses(clients []*domain.Client) []clientResponse {
	out := make([]clientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientResponse(c))
	}
	return out
}

func toCaseResponses(cases []*domain.Case) []caseResponse {
	out := make([]caseResponse, 0, len(cases))
	for _, c := range cases {
		out = append(out, caseResponse{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			ClientID:    c.ClientID,
			Status:      c.Status,
			CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}
