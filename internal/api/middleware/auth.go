package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/hr-platform/internal/api/metrics"
	"github.com/peoplehub/hr-platform/internal/core/domain"
	"github.com/peoplehub/hr-platform/internal/core/service"
)

// TokenAuthenticator validates a bearer token and recovers its claims.
type TokenAuthenticator interface {
	Authenticate(token string) (*service.TokenClaims, error)
}

// Auth validates the session token and injects the recovered identity and
// role into the request context. Validation is stateless: the credential
// store is never consulted here.
func Auth(tokens TokenAuthenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Authenticate(parts[1])
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("identity_id", claims.Subject)
			c.Set("username", claims.Username)
			c.Set("role_id", claims.RoleID)

			return next(c)
		}
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenMalformed):
		return "malformed"
	default:
		return "invalid"
	}
}
