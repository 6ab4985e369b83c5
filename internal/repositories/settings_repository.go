package repositories

import (
	"errors"
	"fmt"

	"github.com/anonto42/portfolio/backend/internal/models"
	"gorm.io/gorm"
)

// ErrSettingsExist is returned when a second SiteSettings row is attempted.
var ErrSettingsExist = fmt.Errorf("site settings already exist: %w", gorm.ErrDuplicatedKey)

// SettingsRepository reads and writes the SiteSettings singleton
type SettingsRepository interface {
	GetSettings() (*models.SiteSettings, error)
	CreateSettings(settings *models.SiteSettings) error
	UpdateSettings(settings *models.SiteSettings) error
}

type SQLSettingsRepository struct {
	db *gorm.DB
}

func NewSQLSettingsRepository(db *gorm.DB) *SQLSettingsRepository {
	return &SQLSettingsRepository{db: db}
}

// GetSettings returns the singleton, creating it with defaults on first use.
// A concurrent first read that loses the insert race re-reads the winner.
func (r *SQLSettingsRepository) GetSettings() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.db.First(&settings, models.SettingsID).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	defaults := models.DefaultSiteSettings()
	if err := r.db.Create(defaults).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		if err := r.db.First(&settings, models.SettingsID).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	return defaults, nil
}

// CreateSettings fails with ErrSettingsExist once any row is present
func (r *SQLSettingsRepository) CreateSettings(settings *models.SiteSettings) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.SiteSettings{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrSettingsExist
		}
		if err := tx.Create(settings).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSettingsExist
			}
			return err
		}
		return nil
	})
}

func (r *SQLSettingsRepository) UpdateSettings(settings *models.SiteSettings) error {
	settings.ID = models.SettingsID
	return r.db.Save(settings).Error
}
