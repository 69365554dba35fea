package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/hr-platform/internal/core/domain"
	"github.com/peoplehub/hr-platform/internal/core/ports"
)

// AdminHandler exposes operator actions over the credential store.
type AdminHandler struct {
	authService ports.AuthService
}

func NewAdminHandler(authService ports.AuthService) *AdminHandler {
	return &AdminHandler{authService: authService}
}

// Unlock handles POST /v1/admin/identities/:username/unlock. It resets the
// failed-attempt counter and clears any lock window. Safe to repeat.
//
// @Summary      Clear an identity's lockout state
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        username  path  string  true  "Username to unlock"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/identities/{username}/unlock [post]
func (h *AdminHandler) Unlock(c echo.Context) error {
	username := c.Param("username")
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username is required")
	}

	if err := h.authService.Unlock(c.Request().Context(), username); err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "identity not found"})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
