package repositories

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// defaultSlug is used when a title slugifies to nothing.
const defaultSlug = "project"

// ProjectRepository defines the interface for project data operations
type ProjectRepository interface {
	CreateProject(project *models.Project) error
	GetProjectByID(id uint) (*models.Project, error)
	GetProjectBySlug(slug string) (*models.Project, error)
	GetProjects(filter ProjectFilter, page, limit int) ([]models.Project, int64, error)
	UpdateProject(project *models.Project) error
	DeleteProject(id uint) error
	SlugExists(slug string) (bool, error)
}

type ProjectFilter struct {
	Category        models.Category
	Featured        *bool
	IncludeInactive bool
}

type SQLProjectRepository struct {
	db *gorm.DB
}

func NewSQLProjectRepository(db *gorm.DB) *SQLProjectRepository {
	return &SQLProjectRepository{db: db}
}

// Slugify lowercases and hyphenates a title.
func Slugify(title string) string {
	s := slug.Make(title)
	if s == "" {
		return defaultSlug
	}
	return s
}

func candidateSlug(base string, n int) string {
	if n == 0 {
		return base
	}
	return base + "-" + strconv.Itoa(n)
}

// CreateProject inserts a project. Without an explicit slug one is derived
// from the title and suffixed -1, -2, ... until it is free. A racing insert
// that takes the same candidate is rejected by the unique index and the
// search continues from the next suffix.
func (r *SQLProjectRepository) CreateProject(project *models.Project) error {
	if project.Slug != "" {
		return r.db.Create(project).Error
	}

	base := Slugify(project.Title)
	for n := 0; ; n++ {
		candidate := candidateSlug(base, n)
		taken, err := r.SlugExists(candidate)
		if err != nil {
			return err
		}
		if taken {
			continue
		}

		project.Slug = candidate
		err = r.db.Create(project).Error
		if err == nil {
			return nil
		}
		project.Slug = ""
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
}

func (r *SQLProjectRepository) GetProjectByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// GetProjectBySlug loads a project together with its ordered media
func (r *SQLProjectRepository) GetProjectBySlug(projectSlug string) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Media", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC").Order("created_at ASC").Order("id ASC")
	}).Where("slug = ?", projectSlug).First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *SQLProjectRepository) GetProjects(filter ProjectFilter, page, limit int) ([]models.Project, int64, error) {
	scope := func() *gorm.DB {
		q := r.db.Model(&models.Project{})
		if !filter.IncludeInactive {
			q = q.Where("is_active = ?", true)
		}
		if filter.Category != "" {
			q = q.Where("category = ?", filter.Category)
		}
		if filter.Featured != nil {
			q = q.Where("is_featured = ?", *filter.Featured)
		}
		return q
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []models.Project
	err := scope().
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC").Order("created_at ASC").Order("id ASC")
		}).
		Order("created_at DESC").Order("id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&projects).Error
	return projects, total, err
}

// UpdateProject saves the project columns; media rows are managed separately
func (r *SQLProjectRepository) UpdateProject(project *models.Project) error {
	return r.db.Omit("Media", "CreatedBy").Save(project).Error
}

// DeleteProject removes a project with its media and every like on either
func (r *SQLProjectRepository) DeleteProject(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var mediaIDs []uint
		if err := tx.Model(&models.MediaItem{}).Where("project_id = ?", id).Pluck("id", &mediaIDs).Error; err != nil {
			return err
		}
		if len(mediaIDs) > 0 {
			if err := tx.Where("content_type = ? AND content_id IN ?", models.ContentMedia, mediaIDs).Delete(&models.Like{}).Error; err != nil {
				return fmt.Errorf("delete media likes: %w", err)
			}
		}
		if err := tx.Where("content_type = ? AND content_id = ?", models.ContentProject, id).Delete(&models.Like{}).Error; err != nil {
			return fmt.Errorf("delete project likes: %w", err)
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.MediaItem{}).Error; err != nil {
			return fmt.Errorf("delete media: %w", err)
		}

		res := tx.Delete(&models.Project{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *SQLProjectRepository) SlugExists(candidate string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Project{}).Where("slug = ?", candidate).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
