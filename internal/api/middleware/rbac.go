package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/hr-platform/internal/core/domain"
	"github.com/peoplehub/hr-platform/internal/core/ports"
)

// RequireLevel enforces a minimum privilege rank on a route. Levels rank
// privilege numerically with lower values more privileged, so a route guarded
// with RequireLevel(roles, 1) admits only level-1 (administrator) roles.
//
// The role is resolved through the repository on every request rather than
// trusted from the token: level changes take effect immediately even for
// tokens issued before the change.
func RequireLevel(roles ports.RoleRepository, level int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roleID, _ := c.Get("role_id").(string)
			if roleID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			role, err := roles.FindByID(c.Request().Context(), roleID)
			if err != nil {
				if errors.Is(err, domain.ErrForbidden) {
					return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
				}
				// Store failure, not a permission decision. The central
				// error handler turns it into a generic 5xx.
				return err
			}
			if role.Level > level {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
