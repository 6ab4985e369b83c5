package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/anonto42/portfolio/backend/internal/middleware"
	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/anonto42/portfolio/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// SubscriptionHandler handles newsletter subscriptions
type SubscriptionHandler struct {
	subscriptionRepository repositories.SubscriptionRepository
}

func NewSubscriptionHandler(subRepo repositories.SubscriptionRepository) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionRepository: subRepo}
}

// RegisterSubscriptionRoutes registers subscription routes
func (h *SubscriptionHandler) RegisterSubscriptionRoutes(g *echo.Group) {
	g.POST("/subscribe", h.Subscribe)
	g.POST("/unsubscribe", h.Unsubscribe)
	g.GET("/subscriptions", h.ListSubscriptions, middleware.Require(middleware.IsAdmin))
}

// Subscribe creates or reactivates a subscription
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	var req models.SubscriptionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	email := models.NormalizeEmail(req.Email)

	sub, err := h.subscriptionRepository.GetSubscriptionByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sub = &models.EmailSubscription{Email: email, IsActive: true, SubscribedAt: time.Now()}
		if err := h.subscriptionRepository.CreateSubscription(sub); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return c.JSON(http.StatusOK, message("Already subscribed"))
			}
			return err
		}
		return c.JSON(http.StatusCreated, message("Subscribed successfully"))
	}
	if err != nil {
		return err
	}

	if sub.IsActive {
		return c.JSON(http.StatusOK, message("Already subscribed"))
	}
	sub.IsActive = true
	sub.SubscribedAt = time.Now()
	sub.UnsubscribedAt = nil
	if err := h.subscriptionRepository.UpdateSubscription(sub); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, message("Re-subscribed successfully"))
}

func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
	var req models.SubscriptionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	sub, err := h.subscriptionRepository.GetSubscriptionByEmail(models.NormalizeEmail(req.Email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Email not found")
	}
	if err != nil {
		return err
	}

	if sub.IsActive {
		now := time.Now()
		sub.IsActive = false
		sub.UnsubscribedAt = &now
		if err := h.subscriptionRepository.UpdateSubscription(sub); err != nil {
			return err
		}
	}
	return c.JSON(http.StatusOK, message("Unsubscribed successfully"))
}

// ListSubscriptions pages through subscriptions, ?active=true for active only
func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	activeOnly, _ := strconv.ParseBool(c.QueryParam("active"))
	page, limit := pageParams(c)
	subs, total, err := h.subscriptionRepository.GetSubscriptions(activeOnly, page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, paginated(subs, page, limit, total))
}
