package models

import "time"

type NotificationType string

const (
	NotificationNewProject NotificationType = "new_project"
	NotificationUpdate     NotificationType = "update"
	NotificationMessage    NotificationType = "message"
	NotificationLike       NotificationType = "like"
	NotificationSystem     NotificationType = "system"
)

// Notification is addressed to a fixed recipient set. Whether a recipient
// has read it is membership in ReadBy, never a column on this row.
type Notification struct {
	ID               uint             `json:"id" gorm:"primaryKey"`
	Title            string           `json:"title" gorm:"size:200;not null"`
	Message          string           `json:"message" gorm:"type:text"`
	NotificationType NotificationType `json:"notification_type" gorm:"size:20"`
	Link             *string          `json:"link"`
	CreatedAt        time.Time        `json:"created_at" gorm:"index"`

	Recipients []User `json:"-" gorm:"many2many:notification_recipients;constraint:OnDelete:CASCADE"`
	ReadBy     []User `json:"-" gorm:"many2many:notification_reads;constraint:OnDelete:CASCADE"`

	IsRead bool `json:"is_read" gorm:"-"`
}

// NotificationRecipient is the join row of Notification.Recipients.
type NotificationRecipient struct {
	NotificationID uint      `gorm:"primaryKey"`
	UserID         uint      `gorm:"primaryKey;index"`
	CreatedAt      time.Time
}

// NotificationRead is the join row of Notification.ReadBy.
type NotificationRead struct {
	NotificationID uint      `gorm:"primaryKey"`
	UserID         uint      `gorm:"primaryKey;index"`
	ReadAt         time.Time `gorm:"autoCreateTime"`
}

type CreateNotificationRequest struct {
	Title            string           `json:"title" validate:"required,max=200"`
	Message          string           `json:"message" validate:"required"`
	NotificationType NotificationType `json:"notification_type" validate:"omitempty,oneof=new_project update message like system"`
	Link             *string          `json:"link" validate:"omitempty,max=500"`
	RecipientIDs     []uint           `json:"recipient_ids"`
}
