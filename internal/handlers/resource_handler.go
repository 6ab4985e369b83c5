package handlers

import (
	"net/http"

	"github.com/anonto42/portfolio/backend/internal/middleware"
	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/anonto42/portfolio/backend/internal/repositories"
	"github.com/jinzhu/copier"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// dateConverters copy optional request dates onto model dates.
var dateConverters = []copier.TypeConverter{
	{
		SrcType: (*models.Date)(nil),
		DstType: models.Date{},
		Fn: func(src interface{}) (interface{}, error) {
			d, _ := src.(*models.Date)
			if d == nil {
				return models.Date{}, nil
			}
			return *d, nil
		},
	},
	{
		SrcType: (*models.Date)(nil),
		DstType: (*models.Date)(nil),
		Fn: func(src interface{}) (interface{}, error) {
			d, _ := src.(*models.Date)
			if d == nil {
				return (*models.Date)(nil), nil
			}
			out := *d
			return &out, nil
		},
	},
}

// copyFields copies the non-nil fields of a request body onto dst.
func copyFields(dst, src interface{}) error {
	return copier.CopyWithOption(dst, src, copier.Option{IgnoreEmpty: true, Converters: dateConverters})
}

// ResourceHandler serves list/retrieve/create/replace/update/delete for a
// model T, created and replaced from body C and patched from body P. Reads
// are open; writes need an admin.
type ResourceHandler[T any, C any, P any] struct {
	repo         repositories.ResourceRepository[T]
	newItem      func() *T
	publicScopes []func(*gorm.DB) *gorm.DB
}

// NewResourceHandler creates a ResourceHandler. newItem returns a T holding
// the model defaults and may be nil.
func NewResourceHandler[T any, C any, P any](repo repositories.ResourceRepository[T], newItem func() *T) *ResourceHandler[T, C, P] {
	if newItem == nil {
		newItem = func() *T { return new(T) }
	}
	return &ResourceHandler[T, C, P]{repo: repo, newItem: newItem}
}

// WithPublicScopes narrows listings for callers who are not admins.
func (h *ResourceHandler[T, C, P]) WithPublicScopes(scopes ...func(*gorm.DB) *gorm.DB) *ResourceHandler[T, C, P] {
	h.publicScopes = scopes
	return h
}

// RegisterRoutes mounts the resource at path.
func (h *ResourceHandler[T, C, P]) RegisterRoutes(g *echo.Group, path string) {
	admin := middleware.Require(middleware.IsAdmin)
	g.GET(path, h.List)
	g.POST(path, h.Create, admin)
	g.GET(path+"/:id", h.Get)
	g.PUT(path+"/:id", h.Replace, admin)
	g.PATCH(path+"/:id", h.Update, admin)
	g.DELETE(path+"/:id", h.Delete, admin)
}

func (h *ResourceHandler[T, C, P]) List(c echo.Context) error {
	var scopes []func(*gorm.DB) *gorm.DB
	if !currentUser(c).IsAdmin() {
		scopes = h.publicScopes
	}
	items, err := h.repo.List(scopes...)
	if err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ResourceHandler[T, C, P]) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.repo.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ResourceHandler[T, C, P]) Create(c echo.Context) error {
	req := new(C)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}
	item := h.newItem()
	if err := copyFields(item, req); err != nil {
		return err
	}
	if err := h.repo.Create(item); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Replace rebuilds the row from defaults and the full body
func (h *ResourceHandler[T, C, P]) Replace(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.repo.Get(id); err != nil {
		return err
	}
	req := new(C)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	item := h.newItem()
	if err := copyFields(item, req); err != nil {
		return err
	}
	if err := h.repo.Replace(id, item); err != nil {
		return err
	}
	return h.Get(c)
}

// Update applies the fields present in the body
func (h *ResourceHandler[T, C, P]) Update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.repo.Get(id)
	if err != nil {
		return err
	}
	req := new(P)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}
	if err := copyFields(item, req); err != nil {
		return err
	}
	if err := h.repo.Save(item); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ResourceHandler[T, C, P]) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.repo.Delete(id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
