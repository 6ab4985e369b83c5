package repositories

import (
	"errors"
	"time"

	"github.com/anonto42/portfolio/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TokenRepository tracks bearer tokens invalidated by logout
type TokenRepository interface {
	RevokeToken(jti string, userID uint, expiresAt time.Time) error
	IsRevoked(jti string) (bool, error)
	PurgeExpired(now time.Time) (int64, error)
}

type SQLTokenRepository struct {
	db *gorm.DB
}

func NewSQLTokenRepository(db *gorm.DB) *SQLTokenRepository {
	return &SQLTokenRepository{db: db}
}

// RevokeToken is idempotent: revoking the same jti twice keeps one row.
func (r *SQLTokenRepository) RevokeToken(jti string, userID uint, expiresAt time.Time) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.RevokedToken{
		JTI:       jti,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}).Error
}

func (r *SQLTokenRepository) IsRevoked(jti string) (bool, error) {
	var token models.RevokedToken
	err := r.db.Where("jti = ?", jti).Take(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// PurgeExpired drops revocations of tokens that can no longer validate.
func (r *SQLTokenRepository) PurgeExpired(now time.Time) (int64, error) {
	res := r.db.Where("expires_at < ?", now).Delete(&models.RevokedToken{})
	return res.RowsAffected, res.Error
}
