package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/portfolio/backend/internal/middleware"
	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/anonto42/portfolio/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// LikeHandler handles like-related HTTP requests
type LikeHandler struct {
	likeRepository    repositories.LikeRepository
	projectRepository repositories.ProjectRepository
	mediaRepository   repositories.MediaRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, projectRepo repositories.ProjectRepository, mediaRepo repositories.MediaRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository:    likeRepo,
		projectRepository: projectRepo,
		mediaRepository:   mediaRepo,
	}
}

// RegisterLikeRoutes registers like routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	authed := middleware.Require(middleware.Authenticated)
	g.POST("/like/:content_type/:content_id", h.ToggleLike, authed)
	g.GET("/my-likes", h.MyLikes, authed)
}

// ToggleLike likes the target, or removes the caller's existing like
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	contentID, err := paramID(c, "content_id")
	if err != nil {
		return err
	}
	target, err := models.ParseLikeTarget(c.Param("content_type"), contentID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid content type")
	}
	if err := h.resolveTarget(currentUser(c), target); err != nil {
		return err
	}

	liked, err := h.toggle(currentUserID(c), target)
	if err != nil {
		return err
	}
	count, err := h.likeRepository.CountLikes(target)
	if err != nil {
		return err
	}

	msg := "Like removed"
	if liked {
		msg = "Liked successfully"
	}
	return c.JSON(http.StatusOK, echo.Map{
		"liked":       liked,
		"message":     msg,
		"likes_count": count,
	})
}

// resolveTarget reports not found for targets the user cannot see: missing
// rows, inactive projects and the media of inactive projects, unless the user
// is an admin or owns the project.
func (h *LikeHandler) resolveTarget(user *models.User, target models.LikeTarget) error {
	var projectID uint
	switch t := target.(type) {
	case models.ProjectTarget:
		projectID = t.ProjectID
	case models.MediaTarget:
		media, err := h.mediaRepository.GetMediaByID(t.MediaID)
		if err != nil {
			return err
		}
		projectID = media.ProjectID
	}

	project, err := h.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return err
	}
	if !project.IsActive && !user.IsAdmin() && !project.OwnedBy(user) {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// toggle reports whether the user likes the target afterwards. Losing a race
// to a concurrent toggle of the same kind is not an error: the other request
// already produced the state this one was heading for.
func (h *LikeHandler) toggle(userID uint, target models.LikeTarget) (bool, error) {
	existing, err := h.likeRepository.GetLike(userID, target)
	switch {
	case err == nil:
		err = h.likeRepository.DeleteLike(existing.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, err
		}
		return false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		err = h.likeRepository.CreateLike(models.NewLike(userID, target))
		if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, err
		}
		return true, nil
	default:
		return false, err
	}
}

// MyLikes lists the caller's likes, newest first
func (h *LikeHandler) MyLikes(c echo.Context) error {
	likes, err := h.likeRepository.GetLikesByUser(currentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, likes)
}
