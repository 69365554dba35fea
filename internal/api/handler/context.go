package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxRoleID extracts the role claim injected by the Auth middleware and
// performs a fast-fail check before any service call: a missing role id means
// the middleware did not run or the token carried no role, and the request is
// rejected before touching the store.
func ctxRoleID(c echo.Context) (string, error) {
	roleID, _ := c.Get("role_id").(string)
	if roleID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return roleID, nil
}
