package api

import (
	"time"

	"github.com/Kamar-Folarin/portfolio-analytics/internal/chart"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/dashboard"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/models"

	_ "github.com/Kamar-Folarin/portfolio-analytics/docs"
)

// ErrorResponse represents an API error
// @Description Error response from the API
// @swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	Error string `json:"error" example:"commit not found: 1a2b3c"`
}

// HealthResponse reports liveness
// @swagger:model HealthResponse
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Rows     int    `json:"rows" example:"5120"`
	Commits  int    `json:"commits" example:"42"`
	Sessions int    `json:"sessions" example:"3"`
	// Present once the GitHub client has seen a response
	GitHub *QuotaResponse `json:"github,omitempty"`
}

// QuotaResponse is the GitHub rate limit seen on the last response
// @swagger:model QuotaResponse
type QuotaResponse struct {
	Limit     int       `json:"limit" example:"60"`
	Remaining int       `json:"remaining" example:"57"`
	ResetTime time.Time `json:"reset_time"`
}

// StatsResponse is the summary list plus the raw statistics it was built from
// @Description Corpus statistics of the loc log
// @swagger:model StatsResponse
type StatsResponse struct {
	Items []models.SummaryItem `json:"items"`
	Stats models.CorpusStats   `json:"stats"`
}

// CommitListResponse represents a paginated list of commit summaries
// @Description A paginated list of commits
// @swagger:model CommitListResponse
type CommitListResponse struct {
	Data       []*models.CommitSummary `json:"data"`
	Pagination struct {
		// Total number of commits
		Total int `json:"total" example:"42"`
		// Number of commits per page
		Limit int `json:"limit" example:"42"`
		// Offset for pagination
		Offset int `json:"offset" example:"0"`
	} `json:"pagination"`
}

// SessionResponse is a dashboard session and its current frame
// @swagger:model SessionResponse
type SessionResponse struct {
	ID    string          `json:"id" example:"0b6f2c1e-8d0a-4a55-9a57-3f0c5d7c2e11"`
	Frame dashboard.Frame `json:"frame"`
}

// ProjectListResponse is the filtered project cards
// @swagger:model ProjectListResponse
type ProjectListResponse struct {
	// Count feeds the "Projects (N)" heading
	Count    int               `json:"count" example:"12"`
	Projects []*models.Project `json:"projects"`
}

// PieResponse is the laid-out year pie
// @swagger:model PieResponse
type PieResponse struct {
	Slices   []chart.Slice      `json:"slices"`
	Legend   []chart.LegendItem `json:"legend"`
	Selected string             `json:"selected,omitempty" example:"2024"`
}

// PieSelectRequest picks a slice by label or, when set, by index
type PieSelectRequest struct {
	Label string `json:"label" example:"2024"`
	Index *int   `json:"index,omitempty" example:"0"`
}

// ColorSchemeRequest sets a color scheme
type ColorSchemeRequest struct {
	ColorScheme models.ColorScheme `json:"color_scheme" binding:"required" enums:"light dark,light,dark"`
}

// ColorSchemeResponse is a client's color scheme
// @swagger:model ColorSchemeResponse
type ColorSchemeResponse struct {
	ClientID    string             `json:"client_id" example:"browser-1"`
	ColorScheme models.ColorScheme `json:"color_scheme" example:"light dark"`
}
