package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talegen/bastille/internal/api/middleware"
	"github.com/talegen/bastille/internal/core/ports"
)

// TenantHandler exposes the tenant bound to the current request and the
// operator hook that evicts a cached tenant.
type TenantHandler struct {
	tenants ports.TenantService
}

func NewTenantHandler(tenants ports.TenantService) *TenantHandler {
	return &TenantHandler{tenants: tenants}
}

// Current handles GET /v1/tenant.
//
// @Summary      Tenant bound to the request
// @Tags         tenant
// @Produce      json
// @Param        X-Tenant-Key  header    string  false  "Tenant key or tenant ID"
// @Success      200           {object}  tenantResponse
// @Failure      400           {object}  map[string]string
// @Failure      404           {object}  map[string]string
// @Router       /v1/tenant [get]
func (h *TenantHandler) Current(c echo.Context) error {
	tenant, ok := middleware.CurrentTenant(c)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "no tenant bound to request")
	}

	resp := tenantResponse{
		TenantID:          tenant.TenantID.String(),
		TenantKey:         tenant.TenantKey,
		Name:              tenant.Name,
		LogoURL:           tenant.LogoURL,
		StylesheetURL:     tenant.StylesheetURL,
		AllowRegistration: tenant.AllowRegistration,
	}
	if org := tenant.Organization; org != nil {
		resp.Organization = &organizationResponse{
			ID:   org.ID.String(),
			Name: org.Name,
			Slug: org.Slug,
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// InvalidateCache handles DELETE /v1/tenants/:tenant_key/cache.
//
// @Summary      Evict a tenant from the cache
// @Description  Drops every cached copy of the tenant so the next lookup reads the store. Administrators only.
// @Tags         tenant
// @Security     BearerAuth
// @Param        tenant_key  path  string  true  "Tenant key or tenant ID"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /v1/tenants/{tenant_key}/cache [delete]
func (h *TenantHandler) InvalidateCache(c echo.Context) error {
	key := c.Param("tenant_key")
	if key == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "tenant_key is required")
	}
	if err := h.tenants.InvalidateTenant(c.Request().Context(), key); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
