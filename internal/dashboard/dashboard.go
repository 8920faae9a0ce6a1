// Package dashboard holds the per-viewer interactive state of the analytics
// page and applies input events to it one at a time.
package dashboard

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Kamar-Folarin/portfolio-analytics/internal/analytics"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/chart"
	apperrors "github.com/Kamar-Folarin/portfolio-analytics/internal/errors"
)

// EventType names an input interaction.
type EventType string

const (
	PointerEnter EventType = "pointerenter"
	PointerMove  EventType = "pointermove"
	PointerLeave EventType = "pointerleave"
	BrushStart   EventType = "brushstart"
	BrushMove    EventType = "brush"
	BrushEnd     EventType = "brushend"
)

// Event is one user interaction. Pointer events carry the commit under the
// pointer and the page position; brush events carry the current selection,
// nil when the brush was cleared.
type Event struct {
	Type      EventType   `json:"type" binding:"required"`
	CommitID  string      `json:"commit,omitempty"`
	PageX     float64     `json:"page_x,omitempty"`
	PageY     float64     `json:"page_y,omitempty"`
	Selection *chart.Rect `json:"selection,omitempty"`
}

// Frame is the state to redraw after an event.
type Frame struct {
	Points      map[string]chart.PointStyle `json:"points"`
	Tooltip     chart.TooltipState          `json:"tooltip"`
	Selection   chart.SelectionSummary      `json:"selection"`
	SummaryHTML string                      `json:"summary_html"`
}

// Options configures new dashboards.
type Options struct {
	Layout         chart.Layout
	TooltipOffsetX float64
	TooltipOffsetY float64
}

// DefaultOptions returns the standard layout and tooltip offsets.
func DefaultOptions() Options {
	return Options{
		Layout:         chart.DefaultLayout(),
		TooltipOffsetX: chart.DefaultTooltipOffsetX,
		TooltipOffsetY: chart.DefaultTooltipOffsetY,
	}
}

// Dashboard is one viewer's scatterplot, brush and tooltip over a shared
// read-only dataset. Events are handled strictly one after another.
type Dashboard struct {
	ID string

	mu       sync.Mutex
	data     *analytics.Dataset
	plot     *chart.Scatterplot
	brush    *chart.Brush
	tooltip  *chart.Tooltip
	lastSeen time.Time
}

// New builds a dashboard in its initial state.
func New(id string, data *analytics.Dataset, opts Options) *Dashboard {
	plot := chart.NewScatterplot(data.Commits, data.Calendar, opts.Layout)
	return &Dashboard{
		ID:       id,
		data:     data,
		plot:     plot,
		brush:    chart.NewBrush(plot),
		tooltip:  chart.NewTooltip(data.Calendar, opts.TooltipOffsetX, opts.TooltipOffsetY),
		lastSeen: time.Now(),
	}
}

// Dispatch applies ev and returns the resulting frame.
func (d *Dashboard) Dispatch(ev Event) (Frame, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lastSeen = time.Now()

	switch ev.Type {
	case PointerEnter:
		p, ok := d.plot.Enter(ev.CommitID)
		if !ok {
			return Frame{}, apperrors.NewResourceNotFoundError("commit", ev.CommitID)
		}
		d.tooltip.Render(p.Commit())
		d.tooltip.SetVisible(true)
		d.tooltip.MoveTo(ev.PageX, ev.PageY)
	case PointerMove:
		d.tooltip.MoveTo(ev.PageX, ev.PageY)
	case PointerLeave:
		if _, ok := d.plot.Leave(ev.CommitID); !ok {
			return Frame{}, apperrors.NewResourceNotFoundError("commit", ev.CommitID)
		}
		d.tooltip.SetVisible(false)
	case BrushStart, BrushMove, BrushEnd:
		d.brush.Update(ev.Selection)
	default:
		return Frame{}, apperrors.NewValidationError(fmt.Sprintf("unknown event type %q", ev.Type), nil)
	}

	return d.frame(), nil
}

// Frame returns the current state without changing it.
func (d *Dashboard) Frame() Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frame()
}

func (d *Dashboard) frame() Frame {
	summary := d.brush.Summary()
	return Frame{
		Points:      d.plot.Styles(),
		Tooltip:     d.tooltip.State(),
		Selection:   summary,
		SummaryHTML: summary.HTML(),
	}
}

// WriteSVG renders the scatterplot in its current state.
func (d *Dashboard) WriteSVG(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.plot.WriteSVG(w, d.brush.Rect())
}

// LastSeen returns when the dashboard last handled an event.
func (d *Dashboard) LastSeen() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastSeen
}
