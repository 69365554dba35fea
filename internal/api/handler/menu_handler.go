package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/peoplehub/hr-platform/internal/api/metrics"
	"github.com/peoplehub/hr-platform/internal/core/ports"
)

// MenuHandler serves the role-filtered navigation tree.
type MenuHandler struct {
	service ports.MenuService
}

func NewMenuHandler(service ports.MenuService) *MenuHandler {
	return &MenuHandler{service: service}
}

// Menu handles GET /v1/menu and returns the menu tree for the caller's role.
//
// @Summary      Get the menu tree for the authenticated role
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.MenuEntry
// @Failure      401  {object}  errorResponse
// @Router       /v1/menu [get]
func (h *MenuHandler) Menu(c echo.Context) error {
	roleID, err := ctxRoleID(c)
	if err != nil {
		return err
	}

	timer := prometheus.NewTimer(metrics.MenuBuildDuration)
	entries, err := h.service.BuildMenu(c.Request().Context(), roleID)
	timer.ObserveDuration()
	if err != nil {
		return err
	}

	if entries == nil {
		entries = []ports.MenuEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}
