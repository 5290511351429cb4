package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talegen/bastille/internal/api/metrics"
	"github.com/talegen/bastille/internal/core/domain"
	"github.com/talegen/bastille/internal/core/ports"
)

// AdminHandler handles administrator role management.
type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// SetAdmin handles PUT /v1/users/:user_id/admin.
//
// @Summary      Grant or revoke the Administrators role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path      string           true  "Target user ID"
// @Param        body     body      setAdminRequest  true  "Grant (true) or revoke (false)"
// @Success      200      {object}  setAdminResponse
// @Failure      400      {object}  map[string]string
// @Failure      403      {object}  map[string]string
// @Failure      422      {object}  setAdminResponse
// @Failure      503      {object}  map[string]string
// @Router       /v1/users/{user_id}/admin [put]
func (h *AdminHandler) SetAdmin(c echo.Context) error {
	actorID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	targetID, err := pathUUID(c, "user_id")
	if err != nil {
		return err
	}

	var req setAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	grant := *req.Grant

	action := "revoke"
	if grant {
		action = "grant"
	}

	result, err := h.admin.SetAdministrator(c.Request().Context(), actorID, targetID, grant)
	switch {
	case errors.Is(err, domain.ErrForbidden):
		metrics.AdminRoleChangesTotal.WithLabelValues(action, string(domain.AuditOutcomeDenied)).Inc()
		return err
	case err != nil:
		metrics.AdminRoleChangesTotal.WithLabelValues(action, string(domain.AuditOutcomeError)).Inc()
		return err
	}

	resp := setAdminResponse{
		UserID:    targetID.String(),
		Succeeded: result.Succeeded,
		Errors:    result.Errors,
	}
	if !result.Succeeded {
		metrics.AdminRoleChangesTotal.WithLabelValues(action, string(domain.AuditOutcomeFailed)).Inc()
		return c.JSON(http.StatusUnprocessableEntity, resp)
	}

	metrics.AdminRoleChangesTotal.WithLabelValues(action, string(domain.AuditOutcomeSucceeded)).Inc()
	resp.IsAdmin = grant
	return c.JSON(http.StatusOK, resp)
}
