package models

import (
	"time"

	"gorm.io/gorm"
)

type ContactStatus string

const (
	ContactNew      ContactStatus = "new"
	ContactRead     ContactStatus = "read"
	ContactReplied  ContactStatus = "replied"
	ContactArchived ContactStatus = "archived"
)

type ContactMessage struct {
	ID         uint          `json:"id" gorm:"primaryKey"`
	Name       string        `json:"name" gorm:"size:100;not null"`
	Email      string        `json:"email" gorm:"size:254;not null"`
	Subject    string        `json:"subject" gorm:"size:200;not null"`
	Message    string        `json:"message" gorm:"type:text;not null"`
	UserID     *uint         `json:"user" gorm:"index"`
	User       *User         `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	Status     ContactStatus `json:"status" gorm:"size:20;index"`
	AdminReply string        `json:"admin_reply" gorm:"type:text"`
	RepliedAt  *time.Time    `json:"replied_at"`
	CreatedAt  time.Time     `json:"created_at" gorm:"index"`
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.Status == "" {
		m.Status = ContactNew
	}
	return nil
}

type EmailSubscription struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Email          string     `json:"email" gorm:"size:254;uniqueIndex;not null"`
	IsActive       bool       `json:"is_active"`
	SubscribedAt   time.Time  `json:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

type ContactReplyRequest struct {
	Reply string `json:"reply"`
}

type ContactStatusRequest struct {
	Status ContactStatus `json:"status" validate:"required,oneof=new read replied archived"`
}

type SubscriptionRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
}
