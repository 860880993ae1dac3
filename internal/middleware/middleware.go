package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"esporteagenda/internal/model"
	"esporteagenda/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	tokenString := parts[1]
	claims, err := service.VerifyAccessToken(tokenString)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

// Claims returns the verified claims RequireAuth stored on the context.
func Claims(c echo.Context) *service.CustomClaims {
	return c.Get(ContextUserKey).(*service.CustomClaims)
}

func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := extractClaims(c)
		if err != nil {
			return err
		}
		c.Set(ContextUserKey, claims)
		return next(c)
	}
}

func requireRole(role, message string, next echo.HandlerFunc) echo.HandlerFunc {
	return RequireAuth(func(c echo.Context) error {
		if Claims(c).Role != role {
			return echo.NewHTTPError(http.StatusForbidden, message)
		}
		return next(c)
	})
}

// RequireClient gates booking routes to client accounts.
func RequireClient(next echo.HandlerFunc) echo.HandlerFunc {
	return requireRole(model.RoleClient, "client account required", next)
}

// RequireOwner gates court management routes to owner accounts.
func RequireOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return requireRole(model.RoleOwner, "owner account required", next)
}
