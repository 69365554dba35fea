package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/peoplehub/hr-platform/internal/api/metrics"
)

// RateLimiter abstracts the per-IP attempt counter (Redis).
type RateLimiter interface {
	Allow(ctx context.Context, remoteIP string) (bool, error)
}

// Throttle bounds login submissions per source address. The limiter failing
// is not a reason to refuse logins: on error the request proceeds and the
// failure is logged, mirroring how the account lockout remains the
// authoritative brute-force defence.
func Throttle(limiter RateLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("remote_ip", c.RealIP()).Msg("throttle check failed, allowing request")
				return next(c)
			}
			if !allowed {
				metrics.ThrottledLoginsTotal.Inc()
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many requests"})
			}
			return next(c)
		}
	}
}
