package handlers

import (
	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/anonto42/portfolio/backend/internal/repositories"
	"github.com/sirupsen/logrus"
)

// Notifier fans notifications out to users selected from the user table.
type Notifier struct {
	notificationRepository repositories.NotificationRepository
	userRepository         repositories.UserRepository
	log                    *logrus.Logger
}

func NewNotifier(notifRepo repositories.NotificationRepository, userRepo repositories.UserRepository, log *logrus.Logger) *Notifier {
	return &Notifier{
		notificationRepository: notifRepo,
		userRepository:         userRepo,
		log:                    log,
	}
}

// Broadcast creates the notification for every user matching q. It is used
// for side effects of other writes, so failures are only logged.
func (n *Notifier) Broadcast(notification *models.Notification, q repositories.RecipientQuery) {
	ids, err := n.userRepository.GetRecipientIDs(q)
	if err != nil {
		n.log.WithError(err).WithField("title", notification.Title).Error("Failed to resolve notification recipients")
		return
	}
	n.Send(notification, ids)
}

// Send notifies the given users, logging instead of failing.
func (n *Notifier) Send(notification *models.Notification, recipientIDs []uint) {
	if len(recipientIDs) == 0 {
		return
	}
	if err := n.notificationRepository.CreateNotification(notification, recipientIDs); err != nil {
		n.log.WithError(err).WithFields(logrus.Fields{
			"title":      notification.Title,
			"recipients": len(recipientIDs),
		}).Error("Failed to create notification")
		return
	}
	n.log.WithFields(logrus.Fields{
		"notification_id": notification.ID,
		"recipients":      len(recipientIDs),
	}).Debug("Notification sent")
}
