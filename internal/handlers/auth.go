package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/anonto42/portfolio/backend/internal/middleware"
	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/anonto42/portfolio/backend/internal/repositories"
	"github.com/jinzhu/copier"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SocialVerifier resolves a social sign-in request to a trusted identity.
type SocialVerifier interface {
	VerifySocial(ctx context.Context, req *models.SocialAuthRequest) (*models.SocialIdentity, error)
}

// ClientAssertedVerifier trusts the identity fields sent by the client. It is
// used when no identity provider is configured.
type ClientAssertedVerifier struct{}

func (ClientAssertedVerifier) VerifySocial(ctx context.Context, req *models.SocialAuthRequest) (*models.SocialIdentity, error) {
	missing := map[string][]string{}
	if req.Email == "" {
		missing["email"] = []string{"This field is required."}
	}
	if req.Provider == "" {
		missing["provider"] = []string{"This field is required."}
	}
	if req.ProviderID == "" {
		missing["provider_id"] = []string{"This field is required."}
	}
	if len(missing) > 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, missing)
	}
	return &models.SocialIdentity{
		Email:        req.Email,
		Provider:     req.Provider,
		ProviderID:   req.ProviderID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		ProfileImage: req.ProfileImage,
	}, nil
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	userRepository  repositories.UserRepository
	tokenRepository repositories.TokenRepository
	auth            *middleware.Authenticator
	social          SocialVerifier
	log             *logrus.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, tokenRepo repositories.TokenRepository, auth *middleware.Authenticator, social SocialVerifier, log *logrus.Logger) *AuthHandler {
	if social == nil {
		social = ClientAssertedVerifier{}
	}
	return &AuthHandler{
		userRepository:  userRepo,
		tokenRepository: tokenRepo,
		auth:            auth,
		social:          social,
		log:             log,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/social", h.SocialAuth)

	authed := middleware.Require(middleware.Authenticated)
	g.POST("/logout", h.Logout, authed)
	g.GET("/profile", h.GetProfile, authed)
	g.PATCH("/profile", h.UpdateProfile, authed)
	g.PUT("/profile", h.UpdateProfile, authed)
	g.PATCH("/profile/update", h.UpdateProfile, authed)
	g.PUT("/profile/update", h.UpdateProfile, authed)
	g.POST("/password/change", h.ChangePassword, authed)
}

func (h *AuthHandler) authResponse(user *models.User) (echo.Map, error) {
	token, err := h.auth.IssueToken(user)
	if err != nil {
		return nil, err
	}
	return echo.Map{"user": user, "token": token}, nil
}

// Register handles local user registration with email and password
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Password != req.PasswordConfirm {
		return echo.NewHTTPError(http.StatusBadRequest, map[string][]string{
			"password": {"Passwords do not match."},
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.NewUser(req.Email, models.RoleRegistered)
	user.Password = string(hashedPassword)
	user.FirstName = req.FirstName
	user.LastName = req.LastName

	if err := h.userRepository.CreateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusConflict, map[string][]string{
				"email": {"A user with this email already exists."},
			})
		}
		return err
	}
	h.log.WithField("user_id", user.ID).Info("User registered")

	resp, err := h.authResponse(user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

// Login handles local user authentication with email and password
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required.")
	}

	invalid := echo.NewHTTPError(http.StatusBadRequest, "Invalid email or password.")
	user, err := h.userRepository.GetUserByEmail(req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invalid
	}
	if err != nil {
		return err
	}
	if user.Password == "" || !user.IsActive {
		return invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return invalid
	}

	now := time.Now()
	user.LastLogin = &now
	if err := h.userRepository.UpdateUser(user); err != nil {
		return err
	}

	resp, err := h.authResponse(user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// SocialAuth signs a user in with a Google or Facebook identity, linking it
// to an existing account with the same email or creating a new one.
func (h *AuthHandler) SocialAuth(c echo.Context) error {
	var req models.SocialAuthRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	identity, err := h.social.VerifySocial(c.Request().Context(), &req)
	if err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		h.log.WithError(err).Warn("Social token rejected")
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid social credentials.")
	}

	isNew := false
	user, err := h.userRepository.GetUserByEmail(identity.Email)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		isNew = true
		user = models.NewUser(identity.Email, models.RoleRegistered)
		user.AuthProvider = identity.Provider
		user.FirstName = identity.FirstName
		user.LastName = identity.LastName
		if identity.ProfileImage != "" {
			image := identity.ProfileImage
			user.ProfileImage = &image
		}
	case err != nil:
		return err
	case !user.IsActive:
		return echo.NewHTTPError(http.StatusBadRequest, "User account is disabled.")
	}

	providerID := identity.ProviderID
	switch identity.Provider {
	case models.ProviderGoogle:
		user.GoogleID = &providerID
	case models.ProviderFacebook:
		user.FacebookID = &providerID
	}
	now := time.Now()
	user.LastLogin = &now

	if isNew {
		err = h.userRepository.CreateUser(user)
	} else {
		err = h.userRepository.UpdateUser(user)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusConflict, "This social account is linked to another user.")
		}
		return err
	}

	resp, err := h.authResponse(user)
	if err != nil {
		return err
	}
	resp["is_new_user"] = isNew
	return c.JSON(http.StatusOK, resp)
}

// Logout revokes the presented token
func (h *AuthHandler) Logout(c echo.Context) error {
	claims := middleware.CurrentClaims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication credentials were not provided.")
	}

	expiresAt := time.Now()
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := h.tokenRepository.RevokeToken(claims.ID, claims.UserID, expiresAt); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, message("Successfully logged out."))
}

// GetProfile retrieves the authenticated user's profile
func (h *AuthHandler) GetProfile(c echo.Context) error {
	return c.JSON(http.StatusOK, currentUser(c))
}

// UpdateProfile applies the fields present in the body to the caller
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req models.UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user := currentUser(c)
	if err := copier.CopyWithOption(user, &req, copier.Option{IgnoreEmpty: true}); err != nil {
		return err
	}
	user.Email = models.NormalizeEmail(user.Email)
	if err := h.userRepository.UpdateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusConflict, map[string][]string{
				"email": {"A user with this email already exists."},
			})
		}
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ChangePassword replaces the caller's password after checking the current one
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req models.PasswordChangeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user := currentUser(c)
	if user.Password == "" || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)) != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string][]string{
			"current_password": {"Current password is incorrect."},
		})
	}
	if req.NewPassword != req.ConfirmPassword {
		return echo.NewHTTPError(http.StatusBadRequest, map[string][]string{
			"confirm_password": {"Passwords do not match."},
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	if err := h.userRepository.UpdateUser(user); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, message("Password changed successfully."))
}
