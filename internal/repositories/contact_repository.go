package repositories

import (
	"github.com/anonto42/portfolio/backend/internal/models"
	"gorm.io/gorm"
)

// ContactRepository defines the interface for contact message operations
type ContactRepository interface {
	CreateMessage(message *models.ContactMessage) error
	GetMessageByID(id uint) (*models.ContactMessage, error)
	GetMessages(filter ContactFilter, page, limit int) ([]models.ContactMessage, int64, error)
	UpdateMessage(message *models.ContactMessage) error
}

// ContactFilter narrows a message listing. A nil UserID lists every sender.
type ContactFilter struct {
	UserID *uint
	Status models.ContactStatus
}

type SQLContactRepository struct {
	db *gorm.DB
}

func NewSQLContactRepository(db *gorm.DB) *SQLContactRepository {
	return &SQLContactRepository{db: db}
}

func (r *SQLContactRepository) CreateMessage(message *models.ContactMessage) error {
	return r.db.Omit("User").Create(message).Error
}

func (r *SQLContactRepository) GetMessageByID(id uint) (*models.ContactMessage, error) {
	var message models.ContactMessage
	if err := r.db.First(&message, id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *SQLContactRepository) GetMessages(filter ContactFilter, page, limit int) ([]models.ContactMessage, int64, error) {
	scope := func() *gorm.DB {
		q := r.db.Model(&models.ContactMessage{})
		if filter.UserID != nil {
			q = q.Where("user_id = ?", *filter.UserID)
		}
		if filter.Status != "" {
			q = q.Where("status = ?", filter.Status)
		}
		return q
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []models.ContactMessage
	err := scope().
		Order("created_at DESC").Order("id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&messages).Error
	return messages, total, err
}

func (r *SQLContactRepository) UpdateMessage(message *models.ContactMessage) error {
	return r.db.Omit("User").Save(message).Error
}
