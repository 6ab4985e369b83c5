package handlers

import (
	"net/http"
	"strconv"

	"github.com/anonto42/portfolio/backend/internal/middleware"
	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// currentUser returns the authenticated user or nil.
func currentUser(c echo.Context) *models.User {
	return middleware.CurrentUser(c)
}

func currentUserID(c echo.Context) uint {
	if user := currentUser(c); user != nil {
		return user.ID
	}
	return 0
}

func paramID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}

// bindAndValidate decodes the request body into req and runs the validator.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	return c.Validate(req)
}

func message(text string) echo.Map {
	return echo.Map{"message": text}
}
