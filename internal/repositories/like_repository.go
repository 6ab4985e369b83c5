package repositories

import (
	"github.com/anonto42/portfolio/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(like *models.Like) error
	DeleteLike(id uint) error
	GetLike(userID uint, target models.LikeTarget) (*models.Like, error)
	GetLikesByUser(userID uint) ([]models.Like, error)
	CountLikes(target models.LikeTarget) (int64, error)
	CountLikesFor(contentType models.ContentType, ids []uint) (map[uint]int64, error)
	LikedBy(userID uint, contentType models.ContentType, ids []uint) (map[uint]bool, error)
}

// SQLLikeRepository implements LikeRepository over GORM
type SQLLikeRepository struct {
	db *gorm.DB
}

// NewSQLLikeRepository creates a new SQLLikeRepository
func NewSQLLikeRepository(db *gorm.DB) *SQLLikeRepository {
	return &SQLLikeRepository{db: db}
}

// CreateLike inserts a like. A duplicate for the same user and target fails
// with gorm.ErrDuplicatedKey.
func (r *SQLLikeRepository) CreateLike(like *models.Like) error {
	return r.db.Create(like).Error
}

// DeleteLike deletes a like by id, reporting gorm.ErrRecordNotFound when
// nothing was removed
func (r *SQLLikeRepository) DeleteLike(id uint) error {
	res := r.db.Delete(&models.Like{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetLike retrieves the user's like on a target
func (r *SQLLikeRepository) GetLike(userID uint, target models.LikeTarget) (*models.Like, error) {
	var like models.Like
	err := r.db.Where("user_id = ? AND content_type = ? AND content_id = ?", userID, target.Type(), target.ID()).
		Take(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

// GetLikesByUser lists a user's likes, newest first
func (r *SQLLikeRepository) GetLikesByUser(userID uint) ([]models.Like, error) {
	var likes []models.Like
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Order("id DESC").Find(&likes).Error
	return likes, err
}

func (r *SQLLikeRepository) CountLikes(target models.LikeTarget) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("content_type = ? AND content_id = ?", target.Type(), target.ID()).
		Count(&count).Error
	return count, err
}

type likeCount struct {
	ContentID uint
	Total     int64
}

// CountLikesFor returns like totals per content id; ids without likes are absent
func (r *SQLLikeRepository) CountLikesFor(contentType models.ContentType, ids []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []likeCount
	err := r.db.Model(&models.Like{}).
		Select("content_id, COUNT(*) AS total").
		Where("content_type = ? AND content_id IN ?", contentType, ids).
		Group("content_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.ContentID] = row.Total
	}
	return counts, nil
}

// LikedBy reports which of the ids the user has liked
func (r *SQLLikeRepository) LikedBy(userID uint, contentType models.ContentType, ids []uint) (map[uint]bool, error) {
	liked := make(map[uint]bool, len(ids))
	if userID == 0 || len(ids) == 0 {
		return liked, nil
	}

	var contentIDs []uint
	err := r.db.Model(&models.Like{}).
		Where("user_id = ? AND content_type = ? AND content_id IN ?", userID, contentType, ids).
		Pluck("content_id", &contentIDs).Error
	if err != nil {
		return nil, err
	}
	for _, id := range contentIDs {
		liked[id] = true
	}
	return liked, nil
}
