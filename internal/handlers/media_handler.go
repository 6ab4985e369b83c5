package handlers

import (
	"net/http"

	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// ListMedia lists a project's media in display order
func (h *ProjectHandler) ListMedia(c echo.Context) error {
	project, err := h.visibleProject(c)
	if err != nil {
		return err
	}
	media, err := h.mediaRepository.GetMediaByProject(project.ID)
	if err != nil {
		return err
	}
	project.Media = media
	projects := []models.Project{*project}
	if err := h.enrich(c, projects); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects[0].Media)
}

// CreateMedia attaches a media item to the project
func (h *ProjectHandler) CreateMedia(c echo.Context) error {
	project, err := h.ownedProject(c)
	if err != nil {
		return err
	}
	var req models.CreateMediaRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	media := &models.MediaItem{
		ProjectID: project.ID,
		MediaType: req.MediaType,
		URL:       req.URL,
		Thumbnail: req.Thumbnail,
		Caption:   req.Caption,
		Order:     req.Order,
	}
	if err := h.mediaRepository.CreateMedia(media); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, media)
}

// UpdateMedia applies the fields present in the body
func (h *ProjectHandler) UpdateMedia(c echo.Context) error {
	media, err := h.ownedMedia(c)
	if err != nil {
		return err
	}
	var req models.UpdateMediaRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if req.MediaType != nil {
		media.MediaType = *req.MediaType
	}
	if req.URL != nil {
		media.URL = *req.URL
	}
	if req.Thumbnail != nil {
		media.Thumbnail = req.Thumbnail
	}
	if req.Caption != nil {
		media.Caption = *req.Caption
	}
	if req.Order != nil {
		media.Order = *req.Order
	}
	if err := h.mediaRepository.UpdateMedia(media); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, media)
}

func (h *ProjectHandler) DeleteMedia(c echo.Context) error {
	media, err := h.ownedMedia(c)
	if err != nil {
		return err
	}
	if err := h.mediaRepository.DeleteMedia(media.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ProjectHandler) ownedMedia(c echo.Context) (*models.MediaItem, error) {
	project, err := h.ownedProject(c)
	if err != nil {
		return nil, err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return nil, err
	}
	return h.mediaRepository.GetProjectMedia(project.ID, id)
}
