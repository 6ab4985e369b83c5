package repositories

import (
	"fmt"

	"github.com/anonto42/portfolio/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUsers(query string, page, limit int) ([]models.User, int64, error)
	UpdateUser(user *models.User) error
	DeleteUser(id uint) error
	GetRecipientIDs(q RecipientQuery) ([]uint, error)
}

// RecipientQuery selects the users a notification fans out to.
type RecipientQuery struct {
	AdminsOnly       bool
	NewProjectsOptIn bool
	ExcludeUserID    uint
}

// SQLUserRepository implements UserRepository over GORM
type SQLUserRepository struct {
	db *gorm.DB
}

// NewSQLUserRepository creates a new SQLUserRepository
func NewSQLUserRepository(db *gorm.DB) *SQLUserRepository {
	return &SQLUserRepository{db: db}
}

// CreateUser creates a new user
func (r *SQLUserRepository) CreateUser(user *models.User) error {
	user.Email = models.NormalizeEmail(user.Email)
	return r.db.Create(user).Error
}

// GetUserByID retrieves a user by ID
func (r *SQLUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by normalized email
func (r *SQLUserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", models.NormalizeEmail(email)).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUsers pages through users, optionally filtered by name or email
func (r *SQLUserRepository) GetUsers(query string, page, limit int) ([]models.User, int64, error) {
	scope := func() *gorm.DB {
		q := r.db.Model(&models.User{})
		if query != "" {
			like := "%" + query + "%"
			q = q.Where("LOWER(email) LIKE LOWER(?) OR LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?)", like, like, like)
		}
		return q
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := scope().Order("created_at DESC").Order("id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&users).Error
	return users, total, err
}

// UpdateUser updates an existing user
func (r *SQLUserRepository) UpdateUser(user *models.User) error {
	user.Email = models.NormalizeEmail(user.Email)
	return r.db.Save(user).Error
}

// DeleteUser hard-deletes a user. Owned projects and contact messages are
// kept with their owner cleared; likes and notification memberships go.
func (r *SQLUserRepository) DeleteUser(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Project{}).Where("created_by_id = ?", id).Update("created_by_id", nil).Error; err != nil {
			return fmt.Errorf("release projects: %w", err)
		}
		if err := tx.Model(&models.ContactMessage{}).Where("user_id = ?", id).Update("user_id", nil).Error; err != nil {
			return fmt.Errorf("release contact messages: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return fmt.Errorf("delete likes: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.NotificationRecipient{}).Error; err != nil {
			return fmt.Errorf("delete notification recipients: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.NotificationRead{}).Error; err != nil {
			return fmt.Errorf("delete notification reads: %w", err)
		}

		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// GetRecipientIDs lists active users matching the query
func (r *SQLUserRepository) GetRecipientIDs(q RecipientQuery) ([]uint, error) {
	tx := r.db.Model(&models.User{}).Where("is_active = ?", true)
	if q.AdminsOnly {
		tx = tx.Where("user_type = ?", models.RoleAdmin)
	}
	if q.NewProjectsOptIn {
		tx = tx.Where("notify_new_projects = ?", true)
	}
	if q.ExcludeUserID != 0 {
		tx = tx.Where("id <> ?", q.ExcludeUserID)
	}

	var ids []uint
	if err := tx.Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
