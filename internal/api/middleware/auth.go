package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/shopgrid/admin-api/internal/core/authz"
	"github.com/shopgrid/admin-api/internal/core/ports"
)

// IdentityKey is the echo context key the resolved identity is stored under.
const IdentityKey = "identity"

// Auth validates the Bearer JWT, syncs the claim identity into the session
// store, and injects the store-derived identity into the request context.
// Handlers downstream read that identity only; raw claims never escape this
// middleware. Any resolution failure is the unresolved state: a 401 carrying
// the login redirect target, never a partially authenticated request.
func Auth(jwtSecret string, sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unresolved(c, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unresolved(c, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return unresolved(c, "invalid token")
			}

			userID, _ := claims["sub"].(string)
			name, _ := claims["name"].(string)
			email, _ := claims["email"].(string)
			shopID, _ := claims["shop_id"].(string)

			identity, err := sessions.Sync(c.Request().Context(), ports.IdentityClaims{
				UserID: userID,
				Name:   name,
				Email:  email,
				Role:   claims["role"],
				ShopID: shopID,
			})
			if err != nil {
				return unresolved(c, "identity unresolved")
			}

			c.Set(IdentityKey, *identity)
			return next(c)
		}
	}
}

func unresolved(c echo.Context, msg string) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{
		"error":    msg,
		"redirect": authz.LoginTarget,
	})
}
