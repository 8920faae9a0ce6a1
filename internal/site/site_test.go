package site

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kamar-Folarin/portfolio-analytics/internal/db"
	apperrors "github.com/Kamar-Folarin/portfolio-analytics/internal/errors"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/models"
)

func TestNav(t *testing.T) {
	pages := Pages("https://github.com/octocat")

	t.Run("root base path", func(t *testing.T) {
		links := Nav(pages, "/", "/projects/")
		require.Len(t, links, 5)
		assert.Equal(t, "/", links[0].Href)
		assert.False(t, links[0].Current)
		assert.Equal(t, "/projects/", links[1].Href)
		assert.True(t, links[1].Current)
		assert.Equal(t, "https://github.com/octocat", links[4].Href)
		assert.Equal(t, "_blank", links[4].Target)
		assert.False(t, links[4].Current)
	})

	t.Run("nested base path and index page", func(t *testing.T) {
		links := Nav(pages, "/Portfolio", "/Portfolio/cv/index.html")
		assert.Equal(t, "/Portfolio/cv/", links[2].Href)
		assert.True(t, links[2].Current)
		assert.Empty(t, links[2].Target)
	})

	t.Run("without github", func(t *testing.T) {
		assert.Len(t, Nav(Pages(""), "/", "/"), 4)
	})
}

func TestThemes(t *testing.T) {
	ctx := context.Background()
	themes := NewThemes(db.NewMemoryStore())

	scheme, err := themes.ColorScheme(ctx, "client")
	require.NoError(t, err)
	assert.Equal(t, models.ColorSchemeAutomatic, scheme)

	pref, err := themes.SetColorScheme(ctx, "client", models.ColorSchemeDark)
	require.NoError(t, err)
	assert.Equal(t, models.ColorSchemeDark, pref.ColorScheme)

	scheme, err = themes.ColorScheme(ctx, "client")
	require.NoError(t, err)
	assert.Equal(t, models.ColorSchemeDark, scheme)

	_, err = themes.SetColorScheme(ctx, "client", "sepia")
	assert.True(t, apperrors.IsInvalidInput(err))

	_, err = themes.ColorScheme(ctx, "")
	assert.True(t, apperrors.IsInvalidInput(err))
}
