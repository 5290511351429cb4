package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/talegen/bastille/docs" // registers the OpenAPI document served at /swagger
	"github.com/talegen/bastille/internal/api/handler"
	"github.com/talegen/bastille/internal/api/middleware"
	"github.com/talegen/bastille/internal/core/ports"
	"github.com/talegen/bastille/internal/infrastructure/http/handlers"
)

// Dependencies are the services and probes the router wires into handlers.
type Dependencies struct {
	Security ports.SecurityService
	Tenants  ports.TenantService
	Admin    ports.AdminService
	Checks   map[string]handlers.Check

	JWTSecret        string
	TenantHeader     string
	TenantDefaultKey string
	Logger           zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Health probes, metrics and docs (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Handlers ---
	tenantHandler := handler.NewTenantHandler(deps.Tenants)
	accessHandler := handler.NewAccessHandler(deps.Admin, deps.Security)
	adminHandler := handler.NewAdminHandler(deps.Admin)

	// --- v1: every request is bound to a tenant ---
	v1 := e.Group("/v1", middleware.Tenant(deps.Tenants, deps.TenantHeader, deps.TenantDefaultKey))
	v1.GET("/tenant", tenantHandler.Current)

	authed := v1.Group("", middleware.Auth(deps.JWTSecret))
	authed.GET("/me/admin", accessHandler.MyAdminStatus)
	authed.GET("/users/:user_id/access", accessHandler.UserAccess)
	authed.GET("/groups/:group_id/access", accessHandler.GroupAccess)
	authed.PUT("/users/:user_id/admin", adminHandler.SetAdmin)
	authed.DELETE("/tenants/:tenant_key/cache", tenantHandler.InvalidateCache, middleware.RequireAdmin(deps.Security, deps.Logger))

	return e
}
