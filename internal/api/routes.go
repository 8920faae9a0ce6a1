package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Portfolio Analytics API
// @version 1.0
// @description Commit analytics, project listing and site preferences for a personal portfolio
// @contact.name API Support
// @contact.url http://github.com/Kamar-Folarin
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

const sessionsPath = "/api/v1/sessions"

// SetupRouter configures the API routes
func SetupRouter(h *Handler, middleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware...)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// @Summary Meta page
	// @Description HTML page with the stats list, the scatterplot and the tooltip panel
	// @Tags pages
	// @Produce html
	// @Param client query string false "Client id whose color scheme to apply"
	// @Success 200 {string} string "HTML page"
	// @Router /meta [get]
	r.GET("/meta", h.MetaPage)

	v1 := r.Group("/api/v1")
	{
		// @Summary Health check
		// @Tags health
		// @Produce json
		// @Success 200 {object} HealthResponse
		// @Router /health [get]
		v1.GET("/health", h.Health)

		// @Summary Corpus statistics
		// @Description Summary list items and raw statistics of the loc log
		// @Tags analytics
		// @Produce json
		// @Success 200 {object} StatsResponse
		// @Router /stats [get]
		v1.GET("/stats", h.GetStats)

		commits := v1.Group("/commits")
		{
			// @Summary List commits
			// @Description Commit summaries in first-seen order
			// @Tags analytics
			// @Produce json
			// @Param limit query int false "Number of commits to return"
			// @Param offset query int false "Number of commits to skip" default(0)
			// @Success 200 {object} CommitListResponse
			// @Failure 400 {object} ErrorResponse
			// @Router /commits [get]
			commits.GET("", h.ListCommits)

			// @Summary Get commit
			// @Tags analytics
			// @Produce json
			// @Param id path string true "Commit id"
			// @Success 200 {object} models.CommitSummary
			// @Failure 404 {object} ErrorResponse
			// @Router /commits/{id} [get]
			commits.GET("/:id", h.GetCommit)
		}

		// @Summary Scatterplot
		// @Description Commit time by day of week in its initial state
		// @Tags analytics
		// @Produce image/svg+xml
		// @Success 200 {string} string "SVG document"
		// @Router /scatterplot.svg [get]
		v1.GET("/scatterplot.svg", h.GetScatterplotSVG)

		sessions := v1.Group("/sessions")
		{
			// @Summary Create session
			// @Description Start an interactive scatterplot session
			// @Tags sessions
			// @Produce json
			// @Success 201 {object} SessionResponse
			// @Router /sessions [post]
			sessions.POST("", h.CreateSession)

			// @Summary Get session
			// @Tags sessions
			// @Produce json
			// @Param id path string true "Session id"
			// @Success 200 {object} SessionResponse
			// @Failure 404 {object} ErrorResponse
			// @Router /sessions/{id} [get]
			sessions.GET("/:id", h.GetSession)

			// @Summary Dispatch event
			// @Description Apply a pointer or brush event and return the frame to redraw
			// @Tags sessions
			// @Accept json
			// @Produce json
			// @Param id path string true "Session id"
			// @Param event body dashboard.Event true "Event"
			// @Success 200 {object} dashboard.Frame
			// @Failure 400 {object} ErrorResponse
			// @Failure 404 {object} ErrorResponse
			// @Router /sessions/{id}/events [post]
			sessions.POST("/:id/events", h.DispatchEvent)

			// @Summary Session scatterplot
			// @Tags sessions
			// @Produce image/svg+xml
			// @Param id path string true "Session id"
			// @Success 200 {string} string "SVG document"
			// @Failure 404 {object} ErrorResponse
			// @Router /sessions/{id}/scatterplot.svg [get]
			sessions.GET("/:id/scatterplot.svg", h.GetSessionSVG)
		}

		projectRoutes := v1.Group("/projects")
		{
			// @Summary List projects
			// @Description Project cards from projects.json and GitHub, filtered by q
			// @Tags projects
			// @Produce json
			// @Param q query string false "Case-insensitive search"
			// @Param latest query int false "Keep only the first N projects"
			// @Success 200 {object} ProjectListResponse
			// @Failure 400 {object} ErrorResponse
			// @Router /projects [get]
			projectRoutes.GET("", h.ListProjects)

			// @Summary Year pie
			// @Tags projects
			// @Produce json
			// @Success 200 {object} PieResponse
			// @Router /projects/pie [get]
			projectRoutes.GET("/pie", h.GetProjectsPie)

			// @Summary Year pie SVG
			// @Tags projects
			// @Produce image/svg+xml
			// @Param selected query string false "Label of the slice to highlight"
			// @Success 200 {string} string "SVG document"
			// @Failure 404 {object} ErrorResponse
			// @Router /projects/pie.svg [get]
			projectRoutes.GET("/pie.svg", h.GetProjectsPieSVG)

			// @Summary Select pie slice
			// @Tags projects
			// @Accept json
			// @Produce json
			// @Param request body PieSelectRequest true "Slice to select"
			// @Success 200 {object} PieResponse
			// @Failure 400 {object} ErrorResponse
			// @Failure 404 {object} ErrorResponse
			// @Router /projects/pie/select [post]
			projectRoutes.POST("/pie/select", h.SelectPieSlice)
		}

		// @Summary GitHub profile
		// @Tags site
		// @Produce json
		// @Success 200 {object} models.Profile
		// @Failure 404 {object} ErrorResponse
		// @Failure 502 {object} ErrorResponse
		// @Router /profile [get]
		v1.GET("/profile", h.GetProfile)

		// @Summary Navigation links
		// @Tags site
		// @Produce json
		// @Param path query string false "Path of the page being viewed"
		// @Success 200 {array} site.NavLink
		// @Router /nav [get]
		v1.GET("/nav", h.GetNav)

		prefs := v1.Group("/preferences/:client")
		{
			// @Summary Get color scheme
			// @Tags site
			// @Produce json
			// @Param client path string true "Client id"
			// @Success 200 {object} ColorSchemeResponse
			// @Router /preferences/{client}/color-scheme [get]
			prefs.GET("/color-scheme", h.GetColorScheme)

			// @Summary Set color scheme
			// @Tags site
			// @Accept json
			// @Produce json
			// @Param client path string true "Client id"
			// @Param request body ColorSchemeRequest true "Color scheme"
			// @Success 200 {object} ColorSchemeResponse
			// @Failure 400 {object} ErrorResponse
			// @Router /preferences/{client}/color-scheme [put]
			prefs.PUT("/color-scheme", h.SetColorScheme)
		}
	}

	return r
}

// RequestLogger logs each request through the handler's logger
func (h *Handler) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		h.logger.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		}).Debug("Handled request")
	}
}
