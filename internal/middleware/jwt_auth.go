package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/anonto42/portfolio/backend/internal/repositories"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Context keys set by Authenticator.Middleware.
const (
	userKey   = "user"
	claimsKey = "claims"
)

// Authenticator issues and checks the bearer tokens of the API.
type Authenticator struct {
	secret []byte
	ttl    time.Duration
	users  repositories.UserRepository
	tokens repositories.TokenRepository
	now    func() time.Time
}

func NewAuthenticator(secret string, ttl time.Duration, users repositories.UserRepository, tokens repositories.TokenRepository) *Authenticator {
	return &Authenticator{
		secret: []byte(secret),
		ttl:    ttl,
		users:  users,
		tokens: tokens,
		now:    time.Now,
	}
}

// IssueToken signs a new HS256 token for the user with a fresh token id.
func (a *Authenticator) IssueToken(user *models.User) (string, error) {
	now := a.now()
	claims := &models.JwtCustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.UserType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// ParseToken validates signature and expiry.
func (a *Authenticator) ParseToken(tokenString string) (*models.JwtCustomClaims, error) {
	claims := &models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.ID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Middleware authenticates the request when it carries a bearer token.
// Requests without one pass through anonymously; a token that is malformed,
// expired or revoked, or whose account is gone or inactive, gets 401.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return next(c)
			}

			// Expecting "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format.")
			}

			claims, err := a.ParseToken(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token.")
			}

			revoked, err := a.tokens.IsRevoked(claims.ID)
			if err != nil {
				return err
			}
			if revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token has been revoked.")
			}

			user, err := a.users.GetUserByID(claims.UserID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not found.")
			}
			if err != nil {
				return err
			}
			if !user.IsActive {
				return echo.NewHTTPError(http.StatusUnauthorized, "User account is disabled.")
			}

			c.Set(userKey, user)
			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user, or nil for anonymous requests.
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(userKey).(*models.User)
	return user
}

func CurrentClaims(c echo.Context) *models.JwtCustomClaims {
	claims, _ := c.Get(claimsKey).(*models.JwtCustomClaims)
	return claims
}
