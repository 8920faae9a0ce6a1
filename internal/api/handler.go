package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/portfolio-analytics/internal/analytics"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/dashboard"
	apperrors "github.com/Kamar-Folarin/portfolio-analytics/internal/errors"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/github"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/models"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/projects"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/site"
)

// SessionStore hands out dashboards over the loaded dataset
type SessionStore interface {
	Data() *analytics.Dataset
	Create() *dashboard.Dashboard
	Get(id string) (*dashboard.Dashboard, error)
	Preview() *dashboard.Dashboard
	Len() int
}

// ProjectLister returns every project card
type ProjectLister interface {
	List(ctx context.Context) []*models.Project
}

// ProfileFetcher looks up a public GitHub profile
type ProfileFetcher interface {
	GetUser(ctx context.Context, login string) (*models.Profile, error)
}

// quotaReporter is implemented by profile fetchers that track rate limits
type quotaReporter interface {
	RateLimit() github.RateLimitInfo
}

// ThemeStore reads and writes color-scheme preferences
type ThemeStore interface {
	ColorScheme(ctx context.Context, clientID string) (models.ColorScheme, error)
	SetColorScheme(ctx context.Context, clientID string, scheme models.ColorScheme) (*models.Preference, error)
}

// Handler serves the analytics, projects and site endpoints
type Handler struct {
	sessions   SessionStore
	projects   ProjectLister
	profiles   ProfileFetcher
	themes     ThemeStore
	pages      []site.Page
	basePath   string
	githubUser string
	logger     *logrus.Logger
}

// HandlerOption configures optional collaborators
type HandlerOption func(*Handler)

// WithProfiles enables the GitHub profile endpoint for login
func WithProfiles(profiles ProfileFetcher, login string) HandlerOption {
	return func(h *Handler) {
		h.profiles = profiles
		h.githubUser = login
	}
}

// WithSite sets the navigation pages and the base path they resolve against
func WithSite(pages []site.Page, basePath string) HandlerOption {
	return func(h *Handler) {
		h.pages = pages
		h.basePath = basePath
	}
}

func NewHandler(sessions SessionStore, projectLister ProjectLister, themes ThemeStore, logger *logrus.Logger, opts ...HandlerOption) *Handler {
	h := &Handler{
		sessions: sessions,
		projects: projectLister,
		themes:   themes,
		pages:    site.Pages(""),
		basePath: "/",
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Health reports liveness and the size of the loaded data
func (h *Handler) Health(c *gin.Context) {
	data := h.sessions.Data()
	resp := HealthResponse{
		Status:   "ok",
		Rows:     len(data.Rows),
		Commits:  len(data.Commits),
		Sessions: h.sessions.Len(),
	}
	if q, ok := h.profiles.(quotaReporter); ok {
		if info := q.RateLimit(); info.Limit > 0 {
			resp.GitHub = &QuotaResponse{
				Limit:     info.Limit,
				Remaining: info.Remaining,
				ResetTime: info.ResetTime,
			}
		}
	}
	c.JSON(http.StatusOK, resp)
}

// GetStats returns the summary list and the raw corpus statistics
func (h *Handler) GetStats(c *gin.Context) {
	data := h.sessions.Data()
	c.JSON(http.StatusOK, StatsResponse{
		Items: data.Summary(),
		Stats: data.Stats,
	})
}

// ListCommits returns commit summaries in first-seen order
func (h *Handler) ListCommits(c *gin.Context) {
	commits := h.sessions.Data().Commits

	limit, err := getIntQueryParam(c, "limit", len(commits))
	if err != nil || limit < 0 {
		h.handleError(c, apperrors.NewValidationError("invalid limit parameter", err))
		return
	}
	offset, err := getIntQueryParam(c, "offset", 0)
	if err != nil || offset < 0 {
		h.handleError(c, apperrors.NewValidationError("invalid offset parameter", err))
		return
	}

	page := paginate(commits, limit, offset)
	resp := CommitListResponse{Data: page}
	resp.Pagination.Total = len(commits)
	resp.Pagination.Limit = limit
	resp.Pagination.Offset = offset
	c.JSON(http.StatusOK, resp)
}

// GetCommit returns one commit summary
func (h *Handler) GetCommit(c *gin.Context) {
	id := c.Param("id")
	commit, ok := h.sessions.Data().Commit(id)
	if !ok {
		h.handleError(c, apperrors.NewResourceNotFoundError("commit", id))
		return
	}
	c.JSON(http.StatusOK, commit)
}

// GetScatterplotSVG renders the scatterplot in its initial state
func (h *Handler) GetScatterplotSVG(c *gin.Context) {
	h.writeSVG(c, h.sessions.Preview())
}

// CreateSession starts a dashboard session
func (h *Handler) CreateSession(c *gin.Context) {
	d := h.sessions.Create()
	h.logger.WithField("session", d.ID).Info("Dashboard session created")
	c.JSON(http.StatusCreated, SessionResponse{ID: d.ID, Frame: d.Frame()})
}

// GetSession returns the current frame of a session
func (h *Handler) GetSession(c *gin.Context) {
	d, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, SessionResponse{ID: d.ID, Frame: d.Frame()})
}

// DispatchEvent applies one pointer or brush event to a session
func (h *Handler) DispatchEvent(c *gin.Context) {
	d, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	var ev dashboard.Event
	if err := c.ShouldBindJSON(&ev); err != nil {
		h.handleError(c, apperrors.NewValidationError("invalid request body", err))
		return
	}

	frame, err := d.Dispatch(ev)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, frame)
}

// GetSessionSVG renders the scatterplot of a session with its brush and styles
func (h *Handler) GetSessionSVG(c *gin.Context) {
	d, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.writeSVG(c, d)
}

func (h *Handler) writeSVG(c *gin.Context, d *dashboard.Dashboard) {
	var buf bytes.Buffer
	if err := d.WriteSVG(&buf); err != nil {
		h.handleError(c, apperrors.NewInternalError("failed to render scatterplot", err))
		return
	}
	c.Data(http.StatusOK, "image/svg+xml", buf.Bytes())
}

// ListProjects returns the project cards matching q
func (h *Handler) ListProjects(c *gin.Context) {
	all := h.projects.List(c.Request.Context())
	filtered := projects.Filter(all, c.Query("q"))

	if c.Query("latest") != "" {
		n, err := strconv.Atoi(c.Query("latest"))
		if err != nil {
			h.handleError(c, apperrors.NewValidationError("invalid latest parameter", err))
			return
		}
		filtered = projects.Latest(filtered, n)
	}

	c.JSON(http.StatusOK, ProjectListResponse{Count: len(filtered), Projects: filtered})
}

// GetProjectsPie returns the year pie of every project
func (h *Handler) GetProjectsPie(c *gin.Context) {
	pie := projects.Pie(h.projects.List(c.Request.Context()))
	c.JSON(http.StatusOK, PieResponse{Slices: pie.Slices, Legend: pie.Legend()})
}

// GetProjectsPieSVG renders the year pie
func (h *Handler) GetProjectsPieSVG(c *gin.Context) {
	pie := projects.Pie(h.projects.List(c.Request.Context()))
	if label := c.Query("selected"); label != "" {
		if _, err := pie.SelectLabel(label); err != nil {
			h.handleError(c, apperrors.NewNotFoundError(err.Error(), nil))
			return
		}
	}
	var buf bytes.Buffer
	if err := pie.WriteSVG(&buf); err != nil {
		h.handleError(c, apperrors.NewInternalError("failed to render pie", err))
		return
	}
	c.Data(http.StatusOK, "image/svg+xml", buf.Bytes())
}

// SelectPieSlice selects a slice by label or index and returns the pie
func (h *Handler) SelectPieSlice(c *gin.Context) {
	var req PieSelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, apperrors.NewValidationError("invalid request body", err))
		return
	}
	if req.Label == "" && req.Index == nil {
		h.handleError(c, apperrors.NewValidationError("label or index is required", nil))
		return
	}

	pie := projects.Pie(h.projects.List(c.Request.Context()))
	var err error
	if req.Index != nil {
		_, err = pie.Select(*req.Index)
	} else {
		_, err = pie.SelectLabel(req.Label)
	}
	if err != nil {
		h.handleError(c, apperrors.NewNotFoundError(err.Error(), nil))
		return
	}
	c.JSON(http.StatusOK, PieResponse{Slices: pie.Slices, Legend: pie.Legend(), Selected: pie.Selected()})
}

// GetProfile returns the configured user's GitHub profile
func (h *Handler) GetProfile(c *gin.Context) {
	if h.profiles == nil || h.githubUser == "" {
		h.handleError(c, apperrors.NewNotFoundError("github profile is not configured", nil))
		return
	}
	profile, err := h.profiles.GetUser(c.Request.Context(), h.githubUser)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetNav returns the navigation links for the page at ?path=
func (h *Handler) GetNav(c *gin.Context) {
	current := c.DefaultQuery("path", h.basePath)
	c.JSON(http.StatusOK, site.Nav(h.pages, h.basePath, current))
}

// GetColorScheme returns a client's color scheme
func (h *Handler) GetColorScheme(c *gin.Context) {
	client := c.Param("client")
	scheme, err := h.themes.ColorScheme(c.Request.Context(), client)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ColorSchemeResponse{ClientID: client, ColorScheme: scheme})
}

// SetColorScheme stores a client's color scheme
func (h *Handler) SetColorScheme(c *gin.Context) {
	var req ColorSchemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, apperrors.NewValidationError("invalid request body", err))
		return
	}
	pref, err := h.themes.SetColorScheme(c.Request.Context(), c.Param("client"), req.ColorScheme)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ColorSchemeResponse{ClientID: pref.ClientID, ColorScheme: pref.ColorScheme})
}

// handleError maps an error onto a status code and an ErrorResponse
func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsNotFound(err), github.IsNotFoundError(err):
		status = http.StatusNotFound
	case apperrors.IsInvalidInput(err):
		status = http.StatusBadRequest
	case github.IsRateLimitError(err):
		status = http.StatusServiceUnavailable
	case apperrors.IsUpstream(err), apperrors.IsLoad(err), isGitHubError(err):
		status = http.StatusBadGateway
	}

	entry := h.logger.WithFields(logrus.Fields{
		"path":   c.Request.URL.Path,
		"status": status,
	}).WithError(err)
	if status >= http.StatusInternalServerError {
		entry.Error("Request failed")
	} else {
		entry.Warn("Request rejected")
	}

	message := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	c.JSON(status, ErrorResponse{Error: message})
}

func isGitHubError(err error) bool {
	var ghErr *github.GitHubError
	return errors.As(err, &ghErr)
}

func getIntQueryParam(c *gin.Context, param string, defaultValue int) (int, error) {
	value := c.Query(param)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}

func paginate(commits []*models.CommitSummary, limit, offset int) []*models.CommitSummary {
	if offset > len(commits) {
		offset = len(commits)
	}
	end := offset + limit
	if end > len(commits) {
		end = len(commits)
	}
	return commits[offset:end]
}
