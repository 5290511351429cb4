package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/talegen/bastille/internal/api/middleware"
)

// ctxUserID returns the caller injected by the Auth middleware. Its absence
// means the route was wired without Auth; reject with 401.
func ctxUserID(c echo.Context) (uuid.UUID, error) {
	id, ok := middleware.UserID(c)
	if !ok || id == uuid.Nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// pathUUID parses the named path parameter as a UUID.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, name+" must be a valid UUID")
	}
	return id, nil
}
