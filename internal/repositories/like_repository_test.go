package repositories

import (
	"testing"

	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/anonto42/portfolio/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLikeUniquePerUserAndTarget(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLLikeRepository(db)
	user := testutil.CreateUser(t, db, "u@x.com", models.RoleRegistered, "")
	project := &models.Project{Title: "P", Slug: "p", IsActive: true}
	require.NoError(t, db.Create(project).Error)

	target := models.ProjectTarget{ProjectID: project.ID}
	require.NoError(t, repo.CreateLike(models.NewLike(user.ID, target)))
	assert.ErrorIs(t, repo.CreateLike(models.NewLike(user.ID, target)), gorm.ErrDuplicatedKey)

	count, err := repo.CountLikes(target)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	like, err := repo.GetLike(user.ID, target)
	require.NoError(t, err)
	require.NotNil(t, like.ProjectID)
	assert.Equal(t, project.ID, *like.ProjectID)
	assert.Nil(t, like.MediaID)

	require.NoError(t, repo.DeleteLike(like.ID))
	assert.ErrorIs(t, repo.DeleteLike(like.ID), gorm.ErrRecordNotFound)
}

func TestCountLikesForAndLikedBy(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLLikeRepository(db)
	alice := testutil.CreateUser(t, db, "alice@x.com", models.RoleRegistered, "")
	bob := testutil.CreateUser(t, db, "bob@x.com", models.RoleRegistered, "")

	p1 := &models.Project{Title: "One", Slug: "one"}
	p2 := &models.Project{Title: "Two", Slug: "two"}
	require.NoError(t, db.Create(p1).Error)
	require.NoError(t, db.Create(p2).Error)

	require.NoError(t, repo.CreateLike(models.NewLike(alice.ID, models.ProjectTarget{ProjectID: p1.ID})))
	require.NoError(t, repo.CreateLike(models.NewLike(bob.ID, models.ProjectTarget{ProjectID: p1.ID})))
	require.NoError(t, repo.CreateLike(models.NewLike(bob.ID, models.ProjectTarget{ProjectID: p2.ID})))

	counts, err := repo.CountLikesFor(models.ContentProject, []uint{p1.ID, p2.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, counts[p1.ID])
	assert.EqualValues(t, 1, counts[p2.ID])

	liked, err := repo.LikedBy(alice.ID, models.ContentProject, []uint{p1.ID, p2.ID})
	require.NoError(t, err)
	assert.True(t, liked[p1.ID])
	assert.False(t, liked[p2.ID])

	anon, err := repo.LikedBy(0, models.ContentProject, []uint{p1.ID})
	require.NoError(t, err)
	assert.Empty(t, anon)

	likes, err := repo.GetLikesByUser(bob.ID)
	require.NoError(t, err)
	assert.Len(t, likes, 2)
}
