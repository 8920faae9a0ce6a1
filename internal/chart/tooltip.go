package chart

import (
	"github.com/Kamar-Folarin/portfolio-analytics/internal/analytics"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/models"
)

// Element ids of the tooltip panel in the page markup.
const (
	TooltipID       = "commit-tooltip"
	TooltipLinkID   = "commit-link"
	TooltipDateID   = "commit-date"
	TooltipAuthorID = "commit-author"
	TooltipLinesID  = "commit-lines"
	SelectionID     = "selected-summary"
)

// Tooltip pointer offsets in pixels.
const (
	DefaultTooltipOffsetX = 15
	DefaultTooltipOffsetY = 15
)

// TooltipContent is what the detail panel shows for one commit.
type TooltipContent struct {
	Href   string `json:"href"`
	Text   string `json:"text"`
	Date   string `json:"date"`
	Author string `json:"author"`
	Lines  int    `json:"lines"`
}

// Position is the panel's page position in pixels.
type Position struct {
	Left float64 `json:"left"`
	Top  float64 `json:"top"`
}

// TooltipState is a snapshot of the panel.
type TooltipState struct {
	Visible  bool           `json:"visible"`
	Content  TooltipContent `json:"content"`
	Position Position       `json:"position"`
}

// Tooltip is the commit detail panel. Content and visibility are set
// independently.
type Tooltip struct {
	calendar analytics.Calendar
	offsetX  float64
	offsetY  float64
	state    TooltipState
}

// NewTooltip creates a hidden tooltip.
func NewTooltip(cal analytics.Calendar, offsetX, offsetY float64) *Tooltip {
	return &Tooltip{calendar: cal, offsetX: offsetX, offsetY: offsetY}
}

// Render fills the panel from commit. A nil commit leaves it unchanged.
func (t *Tooltip) Render(commit *models.CommitSummary) {
	if commit == nil {
		return
	}
	author := commit.Author
	if author == "" {
		author = "Unknown"
	}
	t.state.Content = TooltipContent{
		Href:   commit.URL,
		Text:   commit.ID,
		Date:   t.calendar.FormatFull(commit.DateTime),
		Author: author,
		Lines:  len(commit.Lines),
	}
}

// SetVisible shows or hides the panel.
func (t *Tooltip) SetVisible(visible bool) {
	t.state.Visible = visible
}

// MoveTo places the panel next to the pointer without covering it.
func (t *Tooltip) MoveTo(pageX, pageY float64) {
	t.state.Position = Position{Left: pageX + t.offsetX, Top: pageY - t.offsetY}
}

// State returns a snapshot of the panel.
func (t *Tooltip) State() TooltipState {
	return t.state
}
