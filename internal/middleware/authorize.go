package middleware

import (
	"net/http"

	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// Permission decides whether an authenticated user may proceed.
type Permission func(*models.User) bool

func Authenticated(*models.User) bool { return true }

func IsAdmin(u *models.User) bool { return u.IsAdmin() }

// Require rejects anonymous requests with 401 and users failing perm with 403.
func Require(perm Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication credentials were not provided.")
			}
			if !perm(user) {
				return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to perform this action.")
			}
			return next(c)
		}
	}
}
