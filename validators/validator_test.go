package validators

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Level    *int   `json:"level" validate:"omitempty,max=100"`
	Slug     string `json:"slug" validate:"omitempty,slug"`
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	cv := NewValidator()
	level := 120

	err := cv.Validate(&sample{Email: "nope", Password: "short", Level: &level, Slug: "Bad Slug"})
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)

	fields, ok := he.Message.(map[string][]string)
	require.True(t, ok)
	assert.Equal(t, []string{"Enter a valid email address."}, fields["email"])
	assert.Equal(t, []string{"Ensure this field has at least 8 characters."}, fields["password"])
	assert.Equal(t, []string{"Ensure this value is less than or equal to 100."}, fields["level"])
	assert.Contains(t, fields, "slug")
}

func TestValidateAcceptsValidInput(t *testing.T) {
	cv := NewValidator()
	assert.NoError(t, cv.Validate(&sample{Email: "a@x.com", Password: "Secret123!", Slug: "my-project-1"}))
}

func TestRequiredMessage(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sample{})
	require.Error(t, err)

	fields := err.(*echo.HTTPError).Message.(map[string][]string)
	assert.Equal(t, []string{"This field is required."}, fields["email"])
	assert.Equal(t, []string{"This field is required."}, fields["password"])
	assert.NotContains(t, fields, "level")
}

func TestSlugRule(t *testing.T) {
	var cv *CustomValidator
	require.NotPanics(t, func() { cv = NewValidator() })

	for _, slug := range []string{"drone-reel", "v2_launch", "a1"} {
		assert.NoError(t, cv.Validate(&sample{Email: "a@x.com", Password: "Secret123!", Slug: slug}), slug)
	}
	for _, slug := range []string{"Drone-Reel", "-lead", "trail-", "two--dashes", "spa ce"} {
		err := cv.Validate(&sample{Email: "a@x.com", Password: "Secret123!", Slug: slug})
		require.Error(t, err, slug)
		fields := err.(*echo.HTTPError).Message.(map[string][]string)
		assert.Equal(t, []string{"Enter a valid slug consisting of lowercase letters, numbers, underscores or hyphens."}, fields["slug"], slug)
	}
}
