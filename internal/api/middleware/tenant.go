package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/talegen/bastille/internal/api/metrics"
	"github.com/talegen/bastille/internal/core/domain"
	"github.com/talegen/bastille/internal/core/ports"
)

// ContextKeyTenant holds the *domain.TenantConfig bound to the request.
const ContextKeyTenant = "tenant"

// Tenant resolves the tenant named by header (or defaultKey when the header
// is absent) and binds it to the request.
func Tenant(tenants ports.TenantService, header, defaultKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := strings.TrimSpace(c.Request().Header.Get(header))
			if key == "" {
				key = defaultKey
			}
			if key == "" {
				metrics.TenantResolutionsTotal.WithLabelValues("none").Inc()
				return echo.NewHTTPError(http.StatusBadRequest, "missing tenant key")
			}

			tenant, err := tenants.FindTenantByKey(c.Request().Context(), key)
			switch {
			case errors.Is(err, domain.ErrTenantNotFound):
				metrics.TenantResolutionsTotal.WithLabelValues("not_found").Inc()
				return err
			case err != nil:
				metrics.TenantResolutionsTotal.WithLabelValues("error").Inc()
				return err
			}

			metrics.TenantResolutionsTotal.WithLabelValues("found").Inc()
			c.Set(ContextKeyTenant, tenant)
			return next(c)
		}
	}
}

// CurrentTenant returns the tenant set by Tenant.
func CurrentTenant(c echo.Context) (*domain.TenantConfig, bool) {
	t, ok := c.Get(ContextKeyTenant).(*domain.TenantConfig)
	return t, ok && t != nil
}
