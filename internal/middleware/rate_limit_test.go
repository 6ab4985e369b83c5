package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitsFor(t *testing.T) {
	limits := Limits{Anon: 2, User: 5, Window: time.Minute}
	assert.Equal(t, 5, limits.For("user:7"))
	assert.Equal(t, 2, limits.For("anon:10.0.0.1"))
}

func TestMemoryRateStoreFixedWindow(t *testing.T) {
	store := NewMemoryRateStore(Limits{Anon: 2, User: 3, Window: time.Minute})

	for i := 0; i < 2; i++ {
		ok, err := store.Allow("anon:1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := store.Allow("anon:1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.Allow("anon:5.6.7.8")
	require.NoError(t, err)
	assert.True(t, ok, "other callers have their own window")

	for i := 0; i < 3; i++ {
		ok, _ = store.Allow("user:1")
		assert.True(t, ok)
	}
	ok, _ = store.Allow("user:1")
	assert.False(t, ok)
}

func TestMemoryRateStoreWindowExpires(t *testing.T) {
	store := NewMemoryRateStore(Limits{Anon: 1, User: 1, Window: 50 * time.Millisecond})

	ok, _ := store.Allow("anon:a")
	assert.True(t, ok)
	ok, _ = store.Allow("anon:a")
	assert.False(t, ok)

	time.Sleep(80 * time.Millisecond)
	ok, _ = store.Allow("anon:a")
	assert.True(t, ok)
}

func TestRateLimitMiddleware(t *testing.T) {
	e := echo.New()
	store := NewMemoryRateStore(Limits{Anon: 1, User: 2, Window: time.Minute})
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("X-User") != "" {
				c.Set(userKey, &models.User{ID: 4})
			}
			return next(c)
		}
	}, RateLimit(store))

	call := func(asUser bool) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		if asUser {
			req.Header.Set("X-User", "4")
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call(false))
	assert.Equal(t, http.StatusTooManyRequests, call(false))

	assert.Equal(t, http.StatusOK, call(true))
	assert.Equal(t, http.StatusOK, call(true))
	assert.Equal(t, http.StatusTooManyRequests, call(true))
}
