package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/anonto42/portfolio/backend/internal/middleware"
	"github.com/anonto42/portfolio/backend/pkg/storage"
	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

const invalidImageType = "Invalid image type. Allowed: JPEG, PNG, GIF, WebP"

// multipartOverhead is the room left for boundaries and part headers on top
// of the image itself.
const multipartOverhead = 64 << 10

// UploadHandler accepts image uploads
type UploadHandler struct {
	files    storage.FileStore
	maxBytes int64
	log      *logrus.Logger
}

func NewUploadHandler(files storage.FileStore, maxBytes int64, log *logrus.Logger) *UploadHandler {
	return &UploadHandler{files: files, maxBytes: maxBytes, log: log}
}

// RegisterUploadRoutes registers the upload route
func (h *UploadHandler) RegisterUploadRoutes(g *echo.Group) {
	g.POST("/upload", h.UploadImage,
		middleware.Require(middleware.Authenticated),
		eMiddleware.BodyLimit(fmt.Sprintf("%dB", h.maxBytes+multipartOverhead)),
	)
}

// UploadImage stores the multipart "image" field once both its declared and
// its sniffed content type are allowed image types
func (h *UploadHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
		return tooLarge(h.maxBytes)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No image provided")
	}
	if file.Size > h.maxBytes {
		return tooLarge(h.maxBytes)
	}

	declared, _, _ := mime.ParseMediaType(file.Header.Get(echo.HeaderContentType))
	if !allowedImageTypes[strings.ToLower(declared)] {
		return echo.NewHTTPError(http.StatusBadRequest, invalidImageType)
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	detected, err := mimetype.DetectReader(src)
	if err != nil {
		return err
	}
	if !allowedImageTypes[detected.String()] {
		return echo.NewHTTPError(http.StatusBadRequest, invalidImageType)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return err
	}

	key := storage.NewKey(detected.Extension())
	url, err := h.files.Save(c.Request().Context(), key, detected.String(), io.LimitReader(src, h.maxBytes))
	if err != nil {
		return err
	}
	h.log.WithFields(logrus.Fields{"key": key, "size": file.Size}).Info("Image uploaded")

	return c.JSON(http.StatusCreated, echo.Map{
		"url":      url,
		"filename": key,
	})
}

func tooLarge(maxBytes int64) error {
	return echo.NewHTTPError(http.StatusRequestEntityTooLarge,
		fmt.Sprintf("Image exceeds the maximum size of %d bytes", maxBytes))
}
