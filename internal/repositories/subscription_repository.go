package repositories

import (
	"github.com/anonto42/portfolio/backend/internal/models"
	"gorm.io/gorm"
)

// SubscriptionRepository defines the interface for email subscriptions
type SubscriptionRepository interface {
	CreateSubscription(subscription *models.EmailSubscription) error
	GetSubscriptionByEmail(email string) (*models.EmailSubscription, error)
	GetSubscriptions(activeOnly bool, page, limit int) ([]models.EmailSubscription, int64, error)
	UpdateSubscription(subscription *models.EmailSubscription) error
}

type SQLSubscriptionRepository struct {
	db *gorm.DB
}

func NewSQLSubscriptionRepository(db *gorm.DB) *SQLSubscriptionRepository {
	return &SQLSubscriptionRepository{db: db}
}

func (r *SQLSubscriptionRepository) CreateSubscription(subscription *models.EmailSubscription) error {
	return r.db.Create(subscription).Error
}

func (r *SQLSubscriptionRepository) GetSubscriptionByEmail(email string) (*models.EmailSubscription, error) {
	var subscription models.EmailSubscription
	if err := r.db.Where("email = ?", email).Take(&subscription).Error; err != nil {
		return nil, err
	}
	return &subscription, nil
}

func (r *SQLSubscriptionRepository) GetSubscriptions(activeOnly bool, page, limit int) ([]models.EmailSubscription, int64, error) {
	scope := func() *gorm.DB {
		q := r.db.Model(&models.EmailSubscription{})
		if activeOnly {
			q = q.Where("is_active = ?", true)
		}
		return q
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subscriptions []models.EmailSubscription
	err := scope().
		Order("subscribed_at DESC").Order("id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&subscriptions).Error
	return subscriptions, total, err
}

// UpdateSubscription writes every column so IsActive=false is persisted
func (r *SQLSubscriptionRepository) UpdateSubscription(subscription *models.EmailSubscription) error {
	return r.db.Save(subscription).Error
}
