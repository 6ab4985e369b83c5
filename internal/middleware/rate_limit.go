package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/patrickmn/go-cache"
)

const (
	anonPrefix = "anon:"
	userPrefix = "user:"
)

// Limits are the request allowances per window for anonymous callers,
// keyed by IP, and for authenticated users, keyed by id.
type Limits struct {
	Anon   int
	User   int
	Window time.Duration
}

// For returns the allowance of an identifier produced by rateIdentifier.
func (l Limits) For(identifier string) int {
	if strings.HasPrefix(identifier, userPrefix) {
		return l.User
	}
	return l.Anon
}

// MemoryRateStore counts requests in fixed windows held in a go-cache.
type MemoryRateStore struct {
	limits Limits
	counts *cache.Cache
}

func NewMemoryRateStore(limits Limits) *MemoryRateStore {
	return &MemoryRateStore{
		limits: limits,
		counts: cache.New(limits.Window, 2*limits.Window),
	}
}

// Allow implements echo's RateLimiterStore.
func (s *MemoryRateStore) Allow(identifier string) (bool, error) {
	if err := s.counts.Add(identifier, 1, s.limits.Window); err == nil {
		return s.limits.For(identifier) >= 1, nil
	}
	n, err := s.counts.IncrementInt(identifier, 1)
	if err != nil {
		// The window expired between Add and IncrementInt.
		s.counts.Set(identifier, 1, s.limits.Window)
		n = 1
	}
	return n <= s.limits.For(identifier), nil
}

// RedisRateStore shares fixed-window counters between instances.
type RedisRateStore struct {
	limits Limits
	client *redis.Client
}

func NewRedisRateStore(limits Limits, addr, password string) *RedisRateStore {
	return &RedisRateStore{
		limits: limits,
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       0,
		}),
	}
}

func (s *RedisRateStore) Allow(identifier string) (bool, error) {
	ctx := context.Background()
	key := "ratelimit:" + identifier
	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := s.client.Expire(ctx, key, s.limits.Window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(s.limits.For(identifier)), nil
}

func (s *RedisRateStore) Close() error {
	return s.client.Close()
}

func rateIdentifier(c echo.Context) (string, error) {
	if user := CurrentUser(c); user != nil {
		return fmt.Sprintf("%s%d", userPrefix, user.ID), nil
	}
	return anonPrefix + c.RealIP(), nil
}

// RateLimit throttles requests with 429 once the caller's allowance is spent.
// It must run after Authenticator.Middleware to tell users from anonymous callers.
func RateLimit(store echomw.RateLimiterStore) echo.MiddlewareFunc {
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store:               store,
		IdentifierExtractor: rateIdentifier,
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "Unable to identify the client.")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			if err != nil {
				return err
			}
			return echo.NewHTTPError(http.StatusTooManyRequests, "Request was throttled.")
		},
	})
}
