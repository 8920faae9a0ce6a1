package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kamar-Folarin/portfolio-analytics/internal/chart"
	apperrors "github.com/Kamar-Folarin/portfolio-analytics/internal/errors"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/models"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/site"
)

//go:embed templates/*.html
var templates embed.FS

var metaTemplate = template.Must(template.ParseFS(templates, "templates/meta.html"))

type metaPage struct {
	ColorScheme models.ColorScheme
	Nav         []site.NavLink
	Items       []models.SummaryItem
	SessionsURL string
	Scatterplot template.HTML

	TooltipID   string
	LinkID      string
	DateID      string
	AuthorID    string
	LinesID     string
	SelectionID string
}

// MetaPage renders the analytics page in its initial state. No session is
// created; the page opens one with POST SessionsURL on its first interaction.
// ?client= picks the stored color scheme.
func (h *Handler) MetaPage(c *gin.Context) {
	scheme := models.ColorSchemeAutomatic
	if client := c.Query("client"); client != "" {
		s, err := h.themes.ColorScheme(c.Request.Context(), client)
		if err != nil {
			h.handleError(c, err)
			return
		}
		scheme = s
	}

	d := h.sessions.Preview()
	var svg bytes.Buffer
	if err := d.WriteSVG(&svg); err != nil {
		h.handleError(c, apperrors.NewInternalError("failed to render scatterplot", err))
		return
	}

	page := metaPage{
		ColorScheme: scheme,
		Nav:         site.Nav(h.pages, h.basePath, h.basePath+"meta/"),
		Items:       h.sessions.Data().Summary(),
		SessionsURL: sessionsPath,
		Scatterplot: template.HTML(svg.String()),
		TooltipID:   chart.TooltipID,
		LinkID:      chart.TooltipLinkID,
		DateID:      chart.TooltipDateID,
		AuthorID:    chart.TooltipAuthorID,
		LinesID:     chart.TooltipLinesID,
		SelectionID: chart.SelectionID,
	}

	var out bytes.Buffer
	if err := metaTemplate.Execute(&out, page); err != nil {
		h.handleError(c, apperrors.NewInternalError("failed to render page", err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", out.Bytes())
}
