package repositories

import (
	"github.com/anonto42/portfolio/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	CreateNotification(notification *models.Notification, recipientIDs []uint) error
	GetByRecipientID(recipientID uint, unreadOnly bool, page, limit int) ([]models.Notification, int64, error)
	GetForRecipient(id, recipientID uint) (*models.Notification, error)
	GetUnreadCount(recipientID uint) (int64, error)
	MarkAsRead(id, recipientID uint) error
	MarkAllAsRead(recipientID uint) error
	CountReads(id uint) (int64, error)
}

const unreadClause = "NOT EXISTS (SELECT 1 FROM notification_reads WHERE notification_reads.notification_id = notifications.id AND notification_reads.user_id = ?)"

type SQLNotificationRepository struct {
	db *gorm.DB
}

func NewSQLNotificationRepository(db *gorm.DB) *SQLNotificationRepository {
	return &SQLNotificationRepository{db: db}
}

// CreateNotification stores the notification and its recipient set in one
// transaction. Duplicate ids collapse to a single membership.
func (r *SQLNotificationRepository) CreateNotification(notification *models.Notification, recipientIDs []uint) error {
	if notification.NotificationType == "" {
		notification.NotificationType = models.NotificationSystem
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(notification).Error; err != nil {
			return err
		}

		seen := make(map[uint]bool, len(recipientIDs))
		rows := make([]models.NotificationRecipient, 0, len(recipientIDs))
		for _, id := range recipientIDs {
			if id == 0 || seen[id] {
				continue
			}
			seen[id] = true
			rows = append(rows, models.NotificationRecipient{NotificationID: notification.ID, UserID: id})
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
	})
}

func (r *SQLNotificationRepository) recipientScope(recipientID uint) *gorm.DB {
	return r.db.Model(&models.Notification{}).
		Joins("JOIN notification_recipients ON notification_recipients.notification_id = notifications.id AND notification_recipients.user_id = ?", recipientID)
}

// GetByRecipientID pages through a recipient's notifications, newest first,
// with IsRead filled from the read-by set
func (r *SQLNotificationRepository) GetByRecipientID(recipientID uint, unreadOnly bool, page, limit int) ([]models.Notification, int64, error) {
	scope := func() *gorm.DB {
		q := r.recipientScope(recipientID)
		if unreadOnly {
			q = q.Where(unreadClause, recipientID)
		}
		return q
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []models.Notification
	err := scope().
		Order("notifications.created_at DESC").Order("notifications.id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}

	if err := r.fillReadState(recipientID, notifications); err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

// GetForRecipient behaves as not found when the user is not a recipient
func (r *SQLNotificationRepository) GetForRecipient(id, recipientID uint) (*models.Notification, error) {
	var notification models.Notification
	if err := r.recipientScope(recipientID).Where("notifications.id = ?", id).First(&notification).Error; err != nil {
		return nil, err
	}
	list := []models.Notification{notification}
	if err := r.fillReadState(recipientID, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

func (r *SQLNotificationRepository) fillReadState(userID uint, notifications []models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	ids := make([]uint, len(notifications))
	for i, n := range notifications {
		ids[i] = n.ID
	}

	var readIDs []uint
	err := r.db.Model(&models.NotificationRead{}).
		Where("user_id = ? AND notification_id IN ?", userID, ids).
		Pluck("notification_id", &readIDs).Error
	if err != nil {
		return err
	}

	read := make(map[uint]bool, len(readIDs))
	for _, id := range readIDs {
		read[id] = true
	}
	for i := range notifications {
		notifications[i].IsRead = read[notifications[i].ID]
	}
	return nil
}

func (r *SQLNotificationRepository) GetUnreadCount(recipientID uint) (int64, error) {
	var count int64
	err := r.recipientScope(recipientID).Where(unreadClause, recipientID).Count(&count).Error
	return count, err
}

// MarkAsRead adds the recipient to the read-by set. Repeating it is a no-op.
func (r *SQLNotificationRepository) MarkAsRead(id, recipientID uint) error {
	if _, err := r.GetForRecipient(id, recipientID); err != nil {
		return err
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.NotificationRead{NotificationID: id, UserID: recipientID}).Error
}

func (r *SQLNotificationRepository) MarkAllAsRead(recipientID uint) error {
	var unread []uint
	err := r.recipientScope(recipientID).
		Where(unreadClause, recipientID).
		Pluck("notifications.id", &unread).Error
	if err != nil || len(unread) == 0 {
		return err
	}

	rows := make([]models.NotificationRead, len(unread))
	for i, id := range unread {
		rows[i] = models.NotificationRead{NotificationID: id, UserID: recipientID}
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

// CountReads is the size of a notification's read-by set
func (r *SQLNotificationRepository) CountReads(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.NotificationRead{}).Where("notification_id = ?", id).Count(&count).Error
	return count, err
}
