package handlers

import (
	"net/http"
	"strconv"

	"github.com/anonto42/portfolio/backend/internal/middleware"
	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/anonto42/portfolio/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ProjectHandler handles project and project media HTTP requests
type ProjectHandler struct {
	projectRepository repositories.ProjectRepository
	mediaRepository   repositories.MediaRepository
	likeRepository    repositories.LikeRepository
	notifier          *Notifier
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectRepo repositories.ProjectRepository, mediaRepo repositories.MediaRepository, likeRepo repositories.LikeRepository, notifier *Notifier) *ProjectHandler {
	return &ProjectHandler{
		projectRepository: projectRepo,
		mediaRepository:   mediaRepo,
		likeRepository:    likeRepo,
		notifier:          notifier,
	}
}

// RegisterProjectRoutes registers project routes, media nested under each project
func (h *ProjectHandler) RegisterProjectRoutes(g *echo.Group) {
	authed := middleware.Require(middleware.Authenticated)

	g.GET("/projects", h.ListProjects)
	g.POST("/projects", h.CreateProject, authed)
	g.GET("/projects/:slug", h.GetProject)
	g.PUT("/projects/:slug", h.ReplaceProject, authed)
	g.PATCH("/projects/:slug", h.UpdateProject, authed)
	g.DELETE("/projects/:slug", h.DeleteProject, authed)

	g.GET("/projects/:slug/media", h.ListMedia)
	g.POST("/projects/:slug/media", h.CreateMedia, authed)
	g.PATCH("/projects/:slug/media/:id", h.UpdateMedia, authed)
	g.DELETE("/projects/:slug/media/:id", h.DeleteMedia, authed)
}

// ListProjects lists visible projects, newest first, filtered by ?category and ?featured
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	filter := repositories.ProjectFilter{
		Category:        models.Category(c.QueryParam("category")),
		IncludeInactive: currentUser(c).IsAdmin(),
	}
	if raw := c.QueryParam("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid featured filter")
		}
		filter.Featured = &featured
	}

	page, limit := pageParams(c)
	projects, total, err := h.projectRepository.GetProjects(filter, page, limit)
	if err != nil {
		return err
	}
	if err := h.enrich(c, projects); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, paginated(projects, page, limit, total))
}

// CreateProject creates a project owned by the caller
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var req models.CreateProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user := currentUser(c)
	project := &models.Project{IsActive: true, CreatedByID: &user.ID}
	applyProjectRequest(project, &req)

	if err := h.projectRepository.CreateProject(project); err != nil {
		return err
	}

	if project.IsActive {
		link := "/projects/" + project.Slug
		h.notifier.Broadcast(&models.Notification{
			Title:            "New project: " + project.Title,
			Message:          project.Description,
			NotificationType: models.NotificationNewProject,
			Link:             &link,
		}, repositories.RecipientQuery{NewProjectsOptIn: true, ExcludeUserID: user.ID})
	}

	project.Media = []models.MediaItem{}
	return c.JSON(http.StatusCreated, project)
}

// GetProject retrieves a project with its media by slug
func (h *ProjectHandler) GetProject(c echo.Context) error {
	project, err := h.visibleProject(c)
	if err != nil {
		return err
	}
	projects := []models.Project{*project}
	if err := h.enrich(c, projects); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects[0])
}

// ReplaceProject overwrites every writable field of a project
func (h *ProjectHandler) ReplaceProject(c echo.Context) error {
	project, err := h.ownedProject(c)
	if err != nil {
		return err
	}
	var req models.CreateProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	project.Thumbnail, project.VideoURL, project.ProjectURL, project.GithubURL = nil, nil, nil, nil
	project.Description, project.Category = "", ""
	applyProjectRequest(project, &req)
	return h.saveProject(c, project)
}

// UpdateProject applies the fields present in the body
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	project, err := h.ownedProject(c)
	if err != nil {
		return err
	}
	var req models.UpdateProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Slug != nil && *req.Slug != "" {
		project.Slug = *req.Slug
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Category != nil {
		project.Category = *req.Category
	}
	if req.Thumbnail != nil {
		project.Thumbnail = req.Thumbnail
	}
	if req.VideoURL != nil {
		project.VideoURL = req.VideoURL
	}
	if req.ProjectURL != nil {
		project.ProjectURL = req.ProjectURL
	}
	if req.GithubURL != nil {
		project.GithubURL = req.GithubURL
	}
	if req.IsFeatured != nil {
		project.IsFeatured = *req.IsFeatured
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}
	return h.saveProject(c, project)
}

func (h *ProjectHandler) saveProject(c echo.Context, project *models.Project) error {
	if err := h.projectRepository.UpdateProject(project); err != nil {
		return err
	}
	projects := []models.Project{*project}
	if err := h.enrich(c, projects); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects[0])
}

// DeleteProject removes a project with its media and likes
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	project, err := h.ownedProject(c)
	if err != nil {
		return err
	}
	if err := h.projectRepository.DeleteProject(project.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// applyProjectRequest copies a create/replace body onto project. The slug is
// only touched when one is given.
func applyProjectRequest(project *models.Project, req *models.CreateProjectRequest) {
	project.Title = req.Title
	if req.Slug != "" {
		project.Slug = req.Slug
	}
	if req.Description != "" {
		project.Description = req.Description
	}
	if req.Category != "" {
		project.Category = req.Category
	} else if project.Category == "" {
		project.Category = models.CategoryDevelopment
	}
	if req.Thumbnail != nil {
		project.Thumbnail = req.Thumbnail
	}
	if req.VideoURL != nil {
		project.VideoURL = req.VideoURL
	}
	if req.ProjectURL != nil {
		project.ProjectURL = req.ProjectURL
	}
	if req.GithubURL != nil {
		project.GithubURL = req.GithubURL
	}
	project.IsFeatured = req.IsFeatured
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}
}

// visibleProject loads the :slug project, hiding inactive ones from
// everyone but admins and the owner.
func (h *ProjectHandler) visibleProject(c echo.Context) (*models.Project, error) {
	project, err := h.projectRepository.GetProjectBySlug(c.Param("slug"))
	if err != nil {
		return nil, err
	}
	user := currentUser(c)
	if !project.IsActive && !user.IsAdmin() && !project.OwnedBy(user) {
		return nil, gorm.ErrRecordNotFound
	}
	return project, nil
}

// ownedProject loads the :slug project for a write by its owner or an admin.
func (h *ProjectHandler) ownedProject(c echo.Context) (*models.Project, error) {
	project, err := h.visibleProject(c)
	if err != nil {
		return nil, err
	}
	user := currentUser(c)
	if !user.IsAdmin() && !project.OwnedBy(user) {
		return nil, echo.NewHTTPError(http.StatusForbidden, "You do not have permission to perform this action.")
	}
	return project, nil
}

// enrich fills like counts and the caller's like state on projects and their media.
func (h *ProjectHandler) enrich(c echo.Context, projects []models.Project) error {
	if len(projects) == 0 {
		return nil
	}
	userID := currentUserID(c)

	projectIDs := make([]uint, len(projects))
	var mediaIDs []uint
	for i, p := range projects {
		projectIDs[i] = p.ID
		for _, m := range p.Media {
			mediaIDs = append(mediaIDs, m.ID)
		}
	}

	projectCounts, err := h.likeRepository.CountLikesFor(models.ContentProject, projectIDs)
	if err != nil {
		return err
	}
	projectLiked, err := h.likeRepository.LikedBy(userID, models.ContentProject, projectIDs)
	if err != nil {
		return err
	}
	mediaCounts, err := h.likeRepository.CountLikesFor(models.ContentMedia, mediaIDs)
	if err != nil {
		return err
	}
	mediaLiked, err := h.likeRepository.LikedBy(userID, models.ContentMedia, mediaIDs)
	if err != nil {
		return err
	}

	for i := range projects {
		p := &projects[i]
		p.LikesCount = projectCounts[p.ID]
		p.IsLiked = projectLiked[p.ID]
		if p.Media == nil {
			p.Media = []models.MediaItem{}
		}
		for j := range p.Media {
			m := &p.Media[j]
			m.LikesCount = mediaCounts[m.ID]
			m.IsLiked = mediaLiked[m.ID]
		}
	}
	return nil
}
