package repositories

import (
	"github.com/anonto42/portfolio/backend/internal/models"
	"gorm.io/gorm"
)

// MediaRepository defines the interface for project media operations
type MediaRepository interface {
	CreateMedia(media *models.MediaItem) error
	GetMediaByID(id uint) (*models.MediaItem, error)
	GetProjectMedia(projectID, id uint) (*models.MediaItem, error)
	GetMediaByProject(projectID uint) ([]models.MediaItem, error)
	UpdateMedia(media *models.MediaItem) error
	DeleteMedia(id uint) error
}

type SQLMediaRepository struct {
	db *gorm.DB
}

func NewSQLMediaRepository(db *gorm.DB) *SQLMediaRepository {
	return &SQLMediaRepository{db: db}
}

func (r *SQLMediaRepository) CreateMedia(media *models.MediaItem) error {
	return r.db.Create(media).Error
}

func (r *SQLMediaRepository) GetMediaByID(id uint) (*models.MediaItem, error) {
	var media models.MediaItem
	if err := r.db.First(&media, id).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

// GetProjectMedia only finds the item when it belongs to the project
func (r *SQLMediaRepository) GetProjectMedia(projectID, id uint) (*models.MediaItem, error) {
	var media models.MediaItem
	if err := r.db.Where("project_id = ?", projectID).First(&media, id).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *SQLMediaRepository) GetMediaByProject(projectID uint) ([]models.MediaItem, error) {
	var media []models.MediaItem
	err := r.db.Where("project_id = ?", projectID).
		Order("sort_order ASC").Order("created_at ASC").Order("id ASC").
		Find(&media).Error
	return media, err
}

func (r *SQLMediaRepository) UpdateMedia(media *models.MediaItem) error {
	return r.db.Save(media).Error
}

// DeleteMedia removes a media item and the likes on it
func (r *SQLMediaRepository) DeleteMedia(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("content_type = ? AND content_id = ?", models.ContentMedia, id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.MediaItem{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
