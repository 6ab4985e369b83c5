package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequire(perm Permission, user *models.User) error {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if user != nil {
		c.Set(userKey, user)
	}
	return Require(perm)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %v", err)
	return he.Code
}

func TestRequire(t *testing.T) {
	admin := &models.User{ID: 1, UserType: models.RoleAdmin}
	member := &models.User{ID: 2, UserType: models.RoleRegistered}

	assert.Equal(t, http.StatusUnauthorized, statusOf(t, runRequire(Authenticated, nil)))
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, runRequire(IsAdmin, nil)))
	assert.Equal(t, http.StatusForbidden, statusOf(t, runRequire(IsAdmin, member)))
	assert.NoError(t, runRequire(Authenticated, member))
	assert.NoError(t, runRequire(IsAdmin, admin))
}
