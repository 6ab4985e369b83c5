package handlers

import (
	"net/http"

	"github.com/anonto42/portfolio/backend/internal/middleware"
	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/anonto42/portfolio/backend/internal/repositories"
	"github.com/jinzhu/copier"
	"github.com/labstack/echo/v4"
)

// UserHandler handles the admin user-management endpoints
type UserHandler struct {
	userRepository repositories.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepository: userRepo}
}

// RegisterAdminRoutes registers the admin user routes
func (h *UserHandler) RegisterAdminRoutes(g *echo.Group) {
	admin := g.Group("/admin/users", middleware.Require(middleware.IsAdmin))
	admin.GET("", h.ListUsers)
	admin.GET("/:id", h.GetUser)
	admin.PATCH("/:id", h.UpdateUser)
	admin.DELETE("/:id", h.DeleteUser)
}

// ListUsers pages through users, filtered by ?q on email and names
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, limit := pageParams(c)
	users, total, err := h.userRepository.GetUsers(c.QueryParam("q"), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, paginated(users, page, limit, total))
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.userRepository.GetUserByID(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser changes a user's role, active flag or names
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req models.AdminUserUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByID(id)
	if err != nil {
		return err
	}
	if err := copier.CopyWithOption(user, &req, copier.Option{IgnoreEmpty: true}); err != nil {
		return err
	}
	if err := h.userRepository.UpdateUser(user); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if id == currentUserID(c) {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot delete your own account")
	}
	if err := h.userRepository.DeleteUser(id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
