package handlers

import (
	"testing"

	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// racingLikes behaves as if another request toggled between our read and write.
type racingLikes struct {
	existing  *models.Like
	createErr error
	deleteErr error
}

func (r *racingLikes) CreateLike(like *models.Like) error { return r.createErr }
func (r *racingLikes) DeleteLike(id uint) error           { return r.deleteErr }
func (r *racingLikes) GetLike(userID uint, target models.LikeTarget) (*models.Like, error) {
	if r.existing == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return r.existing, nil
}
func (r *racingLikes) GetLikesByUser(userID uint) ([]models.Like, error)  { return nil, nil }
func (r *racingLikes) CountLikes(target models.LikeTarget) (int64, error) { return 1, nil }
func (r *racingLikes) CountLikesFor(contentType models.ContentType, ids []uint) (map[uint]int64, error) {
	return map[uint]int64{}, nil
}
func (r *racingLikes) LikedBy(userID uint, contentType models.ContentType, ids []uint) (map[uint]bool, error) {
	return map[uint]bool{}, nil
}

func TestToggleLostInsertRaceReportsLiked(t *testing.T) {
	h := NewLikeHandler(&racingLikes{createErr: gorm.ErrDuplicatedKey}, nil, nil)

	liked, err := h.toggle(1, models.ProjectTarget{ProjectID: 5})
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestToggleLostDeleteRaceReportsUnliked(t *testing.T) {
	h := NewLikeHandler(&racingLikes{existing: &models.Like{ID: 9}, deleteErr: gorm.ErrRecordNotFound}, nil, nil)

	liked, err := h.toggle(1, models.MediaTarget{MediaID: 3})
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestToggleSurfacesOtherErrors(t *testing.T) {
	h := NewLikeHandler(&racingLikes{createErr: gorm.ErrInvalidDB}, nil, nil)

	_, err := h.toggle(1, models.ProjectTarget{ProjectID: 5})
	assert.ErrorIs(t, err, gorm.ErrInvalidDB)
}
