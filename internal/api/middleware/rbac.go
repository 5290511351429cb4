package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/talegen/bastille/internal/core/domain"
	"github.com/talegen/bastille/internal/core/ports"
)

// RequireAdmin lets the request through only when the caller is a system
// administrator. It must run after Auth.
func RequireAdmin(security ports.SecurityService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := UserID(c)
			if !ok {
				return domain.ErrForbidden
			}

			isAdmin, err := security.IsUserAdmin(c.Request().Context(), userID)
			if err != nil {
				log.Warn().Err(err).Str("user_id", userID.String()).Msg("admin check failed")
				return err
			}
			if !isAdmin {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
