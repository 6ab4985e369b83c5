package handlers

import (
	"net/http"
	"strconv"

	"github.com/anonto42/portfolio/backend/internal/middleware"
	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/anonto42/portfolio/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
	userRepository         repositories.UserRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifRepo repositories.NotificationRepository, userRepo repositories.UserRepository) *NotificationHandler {
	return &NotificationHandler{
		notificationRepository: notifRepo,
		userRepository:         userRepo,
	}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	n := g.Group("/notifications", middleware.Require(middleware.Authenticated))
	n.GET("", h.GetNotifications)
	n.POST("", h.CreateNotification, middleware.Require(middleware.IsAdmin))
	n.GET("/unread-count", h.GetUnreadCount)
	n.POST("/read-all", h.MarkAllAsRead)
	n.POST("/:id/read", h.MarkAsRead)
}

// GetNotifications returns the caller's notifications, ?unread=true for unread only
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	userID := currentUserID(c)
	unreadOnly, _ := strconv.ParseBool(c.QueryParam("unread"))
	page, limit := pageParams(c)

	notifications, total, err := h.notificationRepository.GetByRecipientID(userID, unreadOnly, page, limit)
	if err != nil {
		return err
	}
	unread, err := h.notificationRepository.GetUnreadCount(userID)
	if err != nil {
		return err
	}

	resp := paginated(notifications, page, limit, total)
	resp["unread_count"] = unread
	return c.JSON(http.StatusOK, resp)
}

// CreateNotification sends a notification to the listed users, or to every
// active user when none are listed
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	var req models.CreateNotificationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	recipients := req.RecipientIDs
	if len(recipients) == 0 {
		ids, err := h.userRepository.GetRecipientIDs(repositories.RecipientQuery{})
		if err != nil {
			return err
		}
		recipients = ids
	}

	notification := &models.Notification{
		Title:            req.Title,
		Message:          req.Message,
		NotificationType: req.NotificationType,
		Link:             req.Link,
	}
	if err := h.notificationRepository.CreateNotification(notification, recipients); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, notification)
}

// GetUnreadCount returns the unread notification count
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	count, err := h.notificationRepository.GetUnreadCount(currentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"unread_count": count})
}

// MarkAsRead marks a notification as read for the caller. Notifications the
// caller did not receive are reported as not found.
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.notificationRepository.MarkAsRead(id, currentUserID(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, message("Notification marked as read"))
}

// MarkAllAsRead marks all notifications as read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	if err := h.notificationRepository.MarkAllAsRead(currentUserID(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, message("All notifications marked as read"))
}
