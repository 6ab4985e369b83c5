package models

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Role is the user_type of an account.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleRegistered Role = "registered"
	RoleVisitor    Role = "visitor"
)

// Auth providers
const (
	ProviderEmail    = "email"
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
)

type User struct {
	ID                 uint       `json:"id" gorm:"primaryKey"`
	Email              string     `json:"email" gorm:"size:254;uniqueIndex;not null"`
	Password           string     `json:"-"`
	FirstName          string     `json:"first_name" gorm:"size:150"`
	LastName           string     `json:"last_name" gorm:"size:150"`
	UserType           Role       `json:"user_type" gorm:"size:20;index"`
	ProfileImage       *string    `json:"profile_image"`
	Bio                string     `json:"bio" gorm:"size:500"`
	Phone              string     `json:"phone" gorm:"size:20"`
	GoogleID           *string    `json:"google_id,omitempty" gorm:"size:255;uniqueIndex"`
	FacebookID         *string    `json:"facebook_id,omitempty" gorm:"size:255;uniqueIndex"`
	AuthProvider       string     `json:"auth_provider" gorm:"size:20"`
	IsActive           bool       `json:"is_active"`
	EmailNotifications bool       `json:"email_notifications"`
	NotifyNewProjects  bool       `json:"notify_new_projects"`
	NotifyUpdates      bool       `json:"notify_updates"`
	LastLogin          *time.Time `json:"last_login"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// NewUser returns an active account with the default notification
// preferences switched on.
func NewUser(email string, role Role) *User {
	return &User{
		Email:              NormalizeEmail(email),
		UserType:           role,
		AuthProvider:       ProviderEmail,
		IsActive:           true,
		EmailNotifications: true,
		NotifyNewProjects:  true,
		NotifyUpdates:      true,
	}
}

func (u *User) IsAdmin() bool {
	return u != nil && u.UserType == RoleAdmin
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// NormalizeEmail trims and lower-cases an address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email,max=254"`
	Password        string `json:"password" validate:"required,min=8,max=128"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
	FirstName       string `json:"first_name" validate:"max=150"`
	LastName        string `json:"last_name" validate:"max=150"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SocialAuthRequest struct {
	Email        string `json:"email" validate:"omitempty,email"`
	Provider     string `json:"provider" validate:"omitempty,oneof=google facebook"`
	ProviderID   string `json:"provider_id" validate:"max=255"`
	FirstName    string `json:"first_name" validate:"max=150"`
	LastName     string `json:"last_name" validate:"max=150"`
	ProfileImage string `json:"profile_image" validate:"omitempty,url"`
	IDToken      string `json:"id_token"`
}

// SocialIdentity is a verified identity from an external provider.
type SocialIdentity struct {
	Email        string
	Provider     string
	ProviderID   string
	FirstName    string
	LastName     string
	ProfileImage string
}

type UpdateProfileRequest struct {
	Email              *string `json:"email" validate:"omitempty,email,max=254"`
	FirstName          *string `json:"first_name" validate:"omitempty,max=150"`
	LastName           *string `json:"last_name" validate:"omitempty,max=150"`
	ProfileImage       *string `json:"profile_image" validate:"omitempty,max=500"`
	Bio                *string `json:"bio" validate:"omitempty,max=500"`
	Phone              *string `json:"phone" validate:"omitempty,max=20"`
	EmailNotifications *bool   `json:"email_notifications"`
	NotifyNewProjects  *bool   `json:"notify_new_projects"`
	NotifyUpdates      *bool   `json:"notify_updates"`
}

type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=128"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type AdminUserUpdateRequest struct {
	UserType  *Role   `json:"user_type" validate:"omitempty,oneof=admin registered visitor"`
	IsActive  *bool   `json:"is_active"`
	FirstName *string `json:"first_name" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name" validate:"omitempty,max=150"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims.
// RegisteredClaims.ID carries the token id checked against revocations.
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}

// RevokedToken records a logged-out token until it would have expired.
type RevokedToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	JTI       string    `json:"jti" gorm:"size:64;uniqueIndex;not null"`
	UserID    uint      `json:"user_id" gorm:"index"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
}
