package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talegen/bastille/internal/api/metrics"
	"github.com/talegen/bastille/internal/core/ports"
)

// AccessHandler answers "what may the caller do" questions.
type AccessHandler struct {
	admin    ports.AdminService
	security ports.SecurityService
}

func NewAccessHandler(admin ports.AdminService, security ports.SecurityService) *AccessHandler {
	return &AccessHandler{admin: admin, security: security}
}

// UserAccess handles GET /v1/users/:user_id/access.
//
// @Summary      Caller's access over a user
// @Tags         access
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path      string  true  "Target user ID"
// @Success      200      {object}  userAccessResponse
// @Failure      400      {object}  map[string]string
// @Failure      401      {object}  map[string]string
// @Failure      503      {object}  map[string]string
// @Router       /v1/users/{user_id}/access [get]
func (h *AccessHandler) UserAccess(c echo.Context) error {
	actorID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	targetID, err := pathUUID(c, "user_id")
	if err != nil {
		return err
	}

	access, err := h.admin.CheckUserAccess(c.Request().Context(), actorID, targetID)
	if err != nil {
		metrics.AuthorizationDecisionsTotal.WithLabelValues("read_user", "error").Inc()
		return err
	}
	countDecision("read_user", access.CanRead)
	countDecision("manage_user", access.CanManage)
	countDecision("remove_user", access.CanRemove)

	return c.JSON(http.StatusOK, userAccessResponse{
		UserID:     targetID.String(),
		UserAccess: *access,
	})
}

// GroupAccess handles GET /v1/groups/:group_id/access.
//
// @Summary      Caller's access over a group
// @Tags         access
// @Produce      json
// @Security     BearerAuth
// @Param        group_id  path      string  true  "Group ID"
// @Success      200       {object}  groupAccessResponse
// @Failure      400       {object}  map[string]string
// @Failure      401       {object}  map[string]string
// @Failure      503       {object}  map[string]string
// @Router       /v1/groups/{group_id}/access [get]
func (h *AccessHandler) GroupAccess(c echo.Context) error {
	actorID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	groupID, err := pathUUID(c, "group_id")
	if err != nil {
		return err
	}

	access, err := h.admin.CheckGroupAccess(c.Request().Context(), actorID, groupID)
	if err != nil {
		metrics.AuthorizationDecisionsTotal.WithLabelValues("access_group", "error").Inc()
		return err
	}
	countDecision("access_group", access.CanAccess)
	countDecision("manage_group", access.CanManage)

	return c.JSON(http.StatusOK, groupAccessResponse{
		GroupID:     groupID.String(),
		GroupAccess: *access,
	})
}

// MyAdminStatus handles GET /v1/me/admin.
//
// @Summary      Whether the caller is a system administrator
// @Tags         access
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  adminStatusResponse
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /v1/me/admin [get]
func (h *AccessHandler) MyAdminStatus(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	isAdmin, err := h.security.IsUserAdmin(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, adminStatusResponse{
		UserID:  userID.String(),
		IsAdmin: isAdmin,
	})
}

func countDecision(check string, allowed bool) {
	result := "denied"
	if allowed {
		result = "allowed"
	}
	metrics.AuthorizationDecisionsTotal.WithLabelValues(check, result).Inc()
}
