package repositories

import (
	"testing"

	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/anonto42/portfolio/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-world", Slugify("Hello World"))
	assert.Equal(t, "drone-shots-2024", Slugify("  Drone Shots: 2024! "))
	assert.Equal(t, "project", Slugify("!!!"))
}

func TestCreateProjectSuffixesDuplicateSlugs(t *testing.T) {
	repo := NewSQLProjectRepository(testutil.NewTestDB(t))

	first := &models.Project{Title: "My Project", IsActive: true}
	second := &models.Project{Title: "My Project", IsActive: true}
	third := &models.Project{Title: "my project", IsActive: true}
	require.NoError(t, repo.CreateProject(first))
	require.NoError(t, repo.CreateProject(second))
	require.NoError(t, repo.CreateProject(third))

	assert.Equal(t, "my-project", first.Slug)
	assert.Equal(t, "my-project-1", second.Slug)
	assert.Equal(t, "my-project-2", third.Slug)
}

func TestCreateProjectExplicitSlugConflict(t *testing.T) {
	repo := NewSQLProjectRepository(testutil.NewTestDB(t))

	require.NoError(t, repo.CreateProject(&models.Project{Title: "A", Slug: "taken"}))
	err := repo.CreateProject(&models.Project{Title: "B", Slug: "taken"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestSlugSurvivesTitleChange(t *testing.T) {
	repo := NewSQLProjectRepository(testutil.NewTestDB(t))

	project := &models.Project{Title: "Original", IsActive: true}
	require.NoError(t, repo.CreateProject(project))

	project.Title = "Renamed"
	require.NoError(t, repo.UpdateProject(project))

	got, err := repo.GetProjectBySlug("original")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
}

func TestGetProjectsFilters(t *testing.T) {
	repo := NewSQLProjectRepository(testutil.NewTestDB(t))

	require.NoError(t, repo.CreateProject(&models.Project{Title: "Dev", Category: models.CategoryDevelopment, IsActive: true, IsFeatured: true}))
	require.NoError(t, repo.CreateProject(&models.Project{Title: "Drone", Category: models.CategoryDrone, IsActive: true}))
	require.NoError(t, repo.CreateProject(&models.Project{Title: "Hidden", Category: models.CategoryDrone, IsActive: false}))

	projects, total, err := repo.GetProjects(ProjectFilter{}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, projects, 2)
	assert.Equal(t, "Drone", projects[0].Title, "newest first")

	_, total, err = repo.GetProjects(ProjectFilter{IncludeInactive: true}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	featured := true
	projects, _, err = repo.GetProjects(ProjectFilter{Featured: &featured}, 1, 10)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Dev", projects[0].Title)

	projects, _, err = repo.GetProjects(ProjectFilter{Category: models.CategoryDrone, IncludeInactive: true}, 1, 1)
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}

func TestDeleteProjectRemovesMediaAndLikes(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLProjectRepository(db)
	user := testutil.CreateUser(t, db, "u@x.com", models.RoleRegistered, "")

	project := &models.Project{Title: "P", IsActive: true}
	require.NoError(t, repo.CreateProject(project))
	media := &models.MediaItem{ProjectID: project.ID, MediaType: models.MediaImage, URL: "/a.png"}
	require.NoError(t, db.Create(media).Error)
	require.NoError(t, db.Create(models.NewLike(user.ID, models.ProjectTarget{ProjectID: project.ID})).Error)
	require.NoError(t, db.Create(models.NewLike(user.ID, models.MediaTarget{MediaID: media.ID})).Error)

	require.NoError(t, repo.DeleteProject(project.ID))

	var likes, items int64
	db.Model(&models.Like{}).Count(&likes)
	db.Model(&models.MediaItem{}).Count(&items)
	assert.Zero(t, likes)
	assert.Zero(t, items)
	assert.ErrorIs(t, repo.DeleteProject(project.ID), gorm.ErrRecordNotFound)
}
