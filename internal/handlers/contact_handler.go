package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/anonto42/portfolio/backend/internal/middleware"
	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/anonto42/portfolio/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// ContactHandler handles contact messages
type ContactHandler struct {
	contactRepository repositories.ContactRepository
	notifier          *Notifier
}

func NewContactHandler(contactRepo repositories.ContactRepository, notifier *Notifier) *ContactHandler {
	return &ContactHandler{contactRepository: contactRepo, notifier: notifier}
}

// RegisterContactRoutes registers contact routes
func (h *ContactHandler) RegisterContactRoutes(g *echo.Group) {
	admin := middleware.Require(middleware.IsAdmin)
	g.POST("/contact", h.CreateMessage)
	g.GET("/contact/messages", h.ListMessages, middleware.Require(middleware.Authenticated))
	g.POST("/contact/:id/reply", h.Reply, admin)
	g.PATCH("/contact/:id/status", h.UpdateStatus, admin)
}

// CreateMessage stores a message from anyone and notifies the admins
func (h *ContactHandler) CreateMessage(c echo.Context) error {
	var req models.ContactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if user := currentUser(c); user != nil {
		msg.UserID = &user.ID
	}
	if err := h.contactRepository.CreateMessage(msg); err != nil {
		return err
	}

	h.notifier.Broadcast(&models.Notification{
		Title:            "New message from " + msg.Name,
		Message:          msg.Subject,
		NotificationType: models.NotificationMessage,
	}, repositories.RecipientQuery{AdminsOnly: true})

	return c.JSON(http.StatusCreated, msg)
}

// ListMessages shows admins every message and other users their own
func (h *ContactHandler) ListMessages(c echo.Context) error {
	user := currentUser(c)
	filter := repositories.ContactFilter{Status: models.ContactStatus(c.QueryParam("status"))}
	if !user.IsAdmin() {
		filter.UserID = &user.ID
	}

	page, limit := pageParams(c)
	messages, total, err := h.contactRepository.GetMessages(filter, page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, paginated(messages, page, limit, total))
}

// Reply records the admin's answer and tells the sender when they have an account
func (h *ContactHandler) Reply(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req models.ContactReplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if strings.TrimSpace(req.Reply) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Reply is required")
	}

	msg, err := h.contactRepository.GetMessageByID(id)
	if err != nil {
		return err
	}
	now := time.Now()
	msg.AdminReply = req.Reply
	msg.Status = models.ContactReplied
	msg.RepliedAt = &now
	if err := h.contactRepository.UpdateMessage(msg); err != nil {
		return err
	}

	if msg.UserID != nil {
		h.notifier.Send(&models.Notification{
			Title:            "Reply to: " + msg.Subject,
			Message:          msg.AdminReply,
			NotificationType: models.NotificationMessage,
		}, []uint{*msg.UserID})
	}
	return c.JSON(http.StatusOK, message("Reply sent successfully"))
}

func (h *ContactHandler) UpdateStatus(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req models.ContactStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	msg, err := h.contactRepository.GetMessageByID(id)
	if err != nil {
		return err
	}
	msg.Status = req.Status
	if err := h.contactRepository.UpdateMessage(msg); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msg)
}
