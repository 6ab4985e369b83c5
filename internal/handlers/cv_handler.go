package handlers

import (
	"net/http"

	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/anonto42/portfolio/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CVStores holds the repositories of every CV section.
type CVStores struct {
	Experiences    repositories.ResourceRepository[models.CVExperience]
	Education      repositories.ResourceRepository[models.CVEducation]
	Skills         repositories.ResourceRepository[models.CVSkill]
	Languages      repositories.ResourceRepository[models.CVLanguage]
	Certifications repositories.ResourceRepository[models.CVCertification]
	Projects       repositories.ResourceRepository[models.CVProject]
	Interests      repositories.ResourceRepository[models.CVInterest]
}

// NewCVStores orders each section the way the CV renders it.
func NewCVStores(db *gorm.DB) CVStores {
	return CVStores{
		Experiences:    repositories.NewStore[models.CVExperience](db, "sort_order DESC", "start_date DESC", "id ASC"),
		Education:      repositories.NewStore[models.CVEducation](db, "sort_order DESC", "start_date DESC", "id ASC"),
		Skills:         repositories.NewStore[models.CVSkill](db, "category ASC", "percentage DESC", "sort_order ASC", "id ASC"),
		Languages:      repositories.NewStore[models.CVLanguage](db, "sort_order ASC", "created_at ASC", "id ASC"),
		Certifications: repositories.NewStore[models.CVCertification](db, "sort_order DESC", "issue_date DESC", "id ASC"),
		Projects:       repositories.NewStore[models.CVProject](db, "sort_order DESC", "start_date DESC", "id ASC"),
		Interests:      repositories.NewStore[models.CVInterest](db, "sort_order ASC", "created_at ASC", "id ASC"),
	}
}

// CVResponse is the whole CV in one document.
type CVResponse struct {
	PersonalInfo   models.CVPersonalInfo    `json:"personal_info"`
	Experiences    []models.CVExperience    `json:"experiences"`
	Education      []models.CVEducation     `json:"education"`
	Skills         []models.CVSkill         `json:"skills"`
	Languages      []models.CVLanguage      `json:"languages"`
	Certifications []models.CVCertification `json:"certifications"`
	Projects       []models.CVProject       `json:"projects"`
	Interests      []models.CVInterest      `json:"interests"`
}

// CVHandler serves the CV and its sections
type CVHandler struct {
	stores             CVStores
	settingsRepository repositories.SettingsRepository
}

func NewCVHandler(stores CVStores, settingsRepo repositories.SettingsRepository) *CVHandler {
	return &CVHandler{stores: stores, settingsRepository: settingsRepo}
}

// RegisterCVRoutes registers /cv and the CRUD routes of each section
func (h *CVHandler) RegisterCVRoutes(g *echo.Group) {
	g.GET("/cv", h.GetCV)

	cv := g.Group("/cv")
	NewResourceHandler[models.CVExperience, models.ExperienceRequest, models.ExperiencePatch](h.stores.Experiences, nil).
		RegisterRoutes(cv, "/experiences")
	NewResourceHandler[models.CVEducation, models.EducationRequest, models.EducationPatch](h.stores.Education, nil).
		RegisterRoutes(cv, "/education")
	NewResourceHandler[models.CVSkill, models.CVSkillRequest, models.CVSkillPatch](h.stores.Skills, models.NewCVSkill).
		RegisterRoutes(cv, "/skills")
	NewResourceHandler[models.CVLanguage, models.LanguageRequest, models.LanguagePatch](h.stores.Languages, models.NewCVLanguage).
		RegisterRoutes(cv, "/languages")
	NewResourceHandler[models.CVCertification, models.CertificationRequest, models.CertificationPatch](h.stores.Certifications, nil).
		RegisterRoutes(cv, "/certifications")
	NewResourceHandler[models.CVProject, models.CVProjectRequest, models.CVProjectPatch](h.stores.Projects, nil).
		RegisterRoutes(cv, "/projects")
	NewResourceHandler[models.CVInterest, models.InterestRequest, models.InterestPatch](h.stores.Interests, nil).
		RegisterRoutes(cv, "/interests")
}

// GetCV assembles personal info from the settings with every section
func (h *CVHandler) GetCV(c echo.Context) error {
	settings, err := h.settingsRepository.GetSettings()
	if err != nil {
		return err
	}
	resp := CVResponse{PersonalInfo: settings.PersonalInfo()}

	if resp.Experiences, err = h.stores.Experiences.List(); err != nil {
		return err
	}
	if resp.Education, err = h.stores.Education.List(); err != nil {
		return err
	}
	if resp.Skills, err = h.stores.Skills.List(); err != nil {
		return err
	}
	if resp.Languages, err = h.stores.Languages.List(); err != nil {
		return err
	}
	if resp.Certifications, err = h.stores.Certifications.List(); err != nil {
		return err
	}
	if resp.Projects, err = h.stores.Projects.List(); err != nil {
		return err
	}
	if resp.Interests, err = h.stores.Interests.List(); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
