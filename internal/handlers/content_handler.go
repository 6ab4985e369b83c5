package handlers

import (
	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/anonto42/portfolio/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// RegisterContentRoutes registers the skills and about resources
func RegisterContentRoutes(g *echo.Group, db *gorm.DB) {
	skills := repositories.NewStore[models.Skill](db, "sort_order ASC", "name ASC", "id ASC")
	NewResourceHandler[models.Skill, models.SkillRequest, models.SkillPatch](skills, models.NewSkill).
		RegisterRoutes(g, "/skills")

	about := repositories.NewStore[models.About](db, "sort_order ASC", "id ASC")
	NewResourceHandler[models.About, models.AboutRequest, models.AboutPatch](about, models.NewAbout).
		WithPublicScopes(repositories.ActiveOnly).
		RegisterRoutes(g, "/about")
}
