package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopgrid/admin-api/internal/api/metrics"
	"github.com/shopgrid/admin-api/internal/core/authz"
	"github.com/shopgrid/admin-api/internal/core/domain"
)

// Gate enforces the section cross-check for the route group it wraps. The
// decision itself lives in authz.Decide; this middleware only resolves the
// role from the request identity and turns a denial into the right response.
//
// The gate is a navigation convenience: the Auth middleware runs before it
// and remains the authoritative boundary for protected groups.
func Gate(section string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, _ := c.Get(IdentityKey).(domain.SessionIdentity)

			decision := authz.Decide(identity.Role, c.Request().URL.Path)
			if decision.Allowed {
				metrics.GateDecisionsTotal.WithLabelValues("allow", section).Inc()
				return next(c)
			}

			if decision.Target == authz.LoginTarget {
				metrics.GateDecisionsTotal.WithLabelValues("redirect_login", section).Inc()
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":    "login required",
					"redirect": decision.Target,
				})
			}

			metrics.GateDecisionsTotal.WithLabelValues("redirect_not_found", section).Inc()
			return c.JSON(http.StatusNotFound, map[string]string{
				"error":    "not found",
				"redirect": decision.Target,
			})
		}
	}
}
