// Package graphql exposes the client and case services as a GraphQL schema
// served over echo.
package graphql

import (
	"errors"
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog"

	"github.com/legalapp/case-management/internal/api/middleware"
	"github.com/legalapp/case-management/internal/core/domain"
	"github.com/legalapp/case-management/internal/core/ports"
)

type resolver struct {
	clients ports.ClientService
	cases   ports.CaseService
	log     zerolog.Logger
}

// NewSchema builds the executable schema. Queries are public; every mutation
// requires an authenticated caller in the request context.
func NewSchema(clients ports.ClientService, cases ports.CaseService, log zerolog.Logger) (graphql.Schema, error) {
	r := &resolver{clients: clients, cases: cases, log: log}

	var clientType, caseType *graphql.Object

	clientType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Client",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
				"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
				"email":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
				"companyName": &graphql.Field{Type: graphql.String},
				"createdAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
				"isActive":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
				"cases": &graphql.Field{
					Type:    graphql.NewList(caseType),
					Resolve: r.clientCasesField,
				},
			}
		}),
	})

	caseType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Case",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
				"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
				"description": &graphql.Field{Type: graphql.String},
				"clientId":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
				"status":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
				"createdAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
				"client": &graphql.Field{
					Type:    clientType,
					Resolve: r.caseClientField,
				},
			}
		}),
	})

	createInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateClientInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"companyName": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	updateInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateClientInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"name":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"companyName": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
	}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"clients": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(clientType))),
				Resolve: r.listClients,
			},
			"client": &graphql.Field{
				Type:    clientType,
				Args:    idArg,
				Resolve: r.getClient,
			},
			"searchClients": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(clientType))),
				Args: graphql.FieldConfigArgument{
					"term": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.searchClients,
			},
			"cases": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(caseType))),
				Resolve: r.listCases,
			},
			"clientCases": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(caseType))),
				Args: graphql.FieldConfigArgument{
					"clientId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.clientCases,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createClient": &graphql.Field{
				Type: clientType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createInput)},
				},
				Resolve: r.authenticated(r.createClient),
			},
			"updateClient": &graphql.Field{
				Type: clientType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateInput)},
				},
				Resolve: r.authenticated(r.updateClient),
			},
			"deleteClient": &graphql.Field{
				Type:    graphql.Boolean,
				Args:    idArg,
				Resolve: r.authenticated(r.deleteClient),
			},
			"restoreClient": &graphql.Field{
				Type:    clientType,
				Args:    idArg,
				Resolve: r.authenticated(r.restoreClient),
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("build graphql schema: %w", err)
	}
	return schema, nil
}

// authenticated rejects the call unless the request carries valid claims.
func (r *resolver) authenticated(next graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		if _, ok := middleware.ClaimsFromContext(p.Context); !ok {
			return nil, errAuthRequired
		}
		return next(p)
	}
}

// --- Queries ---

func (r *resolver) listClients(p graphql.ResolveParams) (interface{}, error) {
	clients, err := r.clients.ListActive(p.Context)
	if err != nil {
		return nil, toResolverError(err, r.log)
	}
	return clients, nil
}

func (r *resolver) getClient(p graphql.ResolveParams) (interface{}, error) {
	client, err := r.clients.GetActive(p.Context, int64Arg(p.Args, "id"))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, toResolverError(err, r.log)
	}
	return client, nil
}

func (r *resolver) searchClients(p graphql.ResolveParams) (interface{}, error) {
	term, _ := p.Args["term"].(string)
	clients, err := r.clients.Search(p.Context, term)
	if err != nil {
		return nil, toResolverError(err, r.log)
	}
	return clients, nil
}

func (r *resolver) listCases(p graphql.ResolveParams) (interface{}, error) {
	cases, err := r.cases.ListAll(p.Context)
	if err != nil {
		return nil, toResolverError(err, r.log)
	}
	return cases, nil
}

func (r *resolver) clientCases(p graphql.ResolveParams) (interface{}, error) {
	cases, err := r.cases.CasesForClient(p.Context, int64Arg(p.Args, "clientId"))
	if err != nil {
		return nil, toResolverError(err, r.log)
	}
	return cases, nil
}

// --- Nested fields ---

// clientCasesField resolves Client.cases. A client deactivated mid-query
// yields an empty list.
func (r *resolver) clientCasesField(p graphql.ResolveParams) (interface{}, error) {
	client, ok := p.Source.(*domain.Client)
	if !ok {
		return nil, nil
	}
	cases, err := r.cases.CasesForClient(p.Context, client.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return []*domain.Case{}, nil
	}
	if err != nil {
		return nil, toResolverError(err, r.log)
	}
	return cases, nil
}

// caseClientField resolves Case.client; inactive clients resolve to null.
func (r *resolver) caseClientField(p graphql.ResolveParams) (interface{}, error) {
	c, ok := p.Source.(*domain.Case)
	if !ok {
		return nil, nil
	}
	client, err := r.clients.GetActive(p.Context, c.ClientID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, toResolverError(err, r.log)
	}
	return client, nil
}

// --- Mutations ---

func (r *resolver) createClient(p graphql.ResolveParams) (interface{}, error) {
	in, _ := p.Args["input"].(map[string]interface{})
	client, err := r.clients.Create(p.Context, ports.CreateClientInput{
		Name:        stringField(in, "name"),
		Email:       stringField(in, "email"),
		CompanyName: stringField(in, "companyName"),
	})
	if err != nil {
		return nil, toResolverError(err, r.log)
	}
	return client, nil
}

func (r *resolver) updateClient(p graphql.ResolveParams) (interface{}, error) {
	in, _ := p.Args["input"].(map[string]interface{})
	client, err := r.clients.Update(p.Context, ports.UpdateClientInput{
		ID:          int64Arg(in, "id"),
		Name:        stringField(in, "name"),
		Email:       stringField(in, "email"),
		CompanyName: stringField(in, "companyName"),
	})
	if err != nil {
		return nil, toResolverError(err, r.log)
	}
	return client, nil
}

func (r *resolver) deleteClient(p graphql.ResolveParams) (interface{}, error) {
	if err := r.clients.Deactivate(p.Context, int64Arg(p.Args, "id")); err != nil {
		return nil, toResolverError(err, r.log)
	}
	return true, nil
}

func (r *resolver) restoreClient(p graphql.ResolveParams) (interface{}, error) {
	client, err := r.clients.Reactivate(p.Context, int64Arg(p.Args, "id"))
	if err != nil {
		return nil, toResolverError(err, r.log)
	}
	return client, nil
}

func int64Arg(args map[string]interface{}, name string) int64 {
	switch v := args[name].(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return 0
}

func stringField(m map[string]interface{}, name string) string {
	s, _ := m[name].(string)
	return s
}
