package api

import (
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/legalapp/case-management/docs"
	"github.com/legalapp/case-management/internal/api/graphql"
	"github.com/legalapp/case-management/internal/api/handler"
	"github.com/legalapp/case-management/internal/api/middleware"
	"github.com/legalapp/case-management/internal/core/domain"
	"github.com/legalapp/case-management/internal/core/ports"
	"github.com/legalapp/case-management/internal/infrastructure/http/handlers"
	"github.com/legalapp/case-management/pkg/metrics"
)

// Dependencies is everything the HTTP surface needs.
type Dependencies struct {
	Clients ports.ClientService
	Cases   ports.CaseService
	Auth    ports.AuthService
	Logger  zerolog.Logger

	// Registry receives request and domain metrics. A fresh registry is
	// created when nil. Request metrics belong to one router, so a registry
	// already used by another router is rejected.
	Registry *prometheus.Registry
	// Pingers are checked by GET /health/ready, keyed by dependency name.
	Pingers     map[string]handlers.Pinger
	CORSOrigins []string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	if err := metrics.Register(reg); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}
	requestMetrics, err := echoprometheus.MiddlewareConfig{
		Namespace:  "legalapp",
		Subsystem:  "http",
		Registerer: reg,
	}.ToMiddleware()
	if err != nil {
		return nil, fmt.Errorf("router: request metrics: %w", err)
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: deps.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Idempotency-Key"},
	}))
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(requestMetrics)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Pingers)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register)

	// --- Client routes (token and known role required) ---
	clientHandler := handler.NewClientHandler(deps.Clients, deps.Cases)
	clients := e.Group("/api/clients", middleware.Auth(deps.Auth), middleware.RequireRole(domain.Roles...))
	clients.GET("", clientHandler.List)
	clients.POST("", clientHandler.Create)
	clients.GET("/:id", clientHandler.Get)
	clients.PUT("/:id", clientHandler.Update)
	clients.DELETE("/:id", clientHandler.Delete)
	clients.GET("/:id/cases", clientHandler.Cases)

	// --- GraphQL (mutations check the caller themselves) ---
	schema, err := graphql.NewSchema(deps.Clients, deps.Cases, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}
	gql := graphql.NewHandler(schema)
	optionalAuth := middleware.OptionalAuth(deps.Auth)
	e.POST("/graphql", gql.Serve, optionalAuth)
	e.GET("/graphql", gql.Serve, optionalAuth)

	return e, nil
}
