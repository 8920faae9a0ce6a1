package chart

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/Kamar-Folarin/portfolio-analytics/internal/models"
)

// Rect is a brush region in plot-area coordinates.
type Rect struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Normalize orders the corners so that X0 <= X1 and Y0 <= Y1.
func (r Rect) Normalize() Rect {
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// Contains reports whether (x, y) lies inside the closed rectangle.
func (r Rect) Contains(x, y float64) bool {
	n := r.Normalize()
	return n.X0 <= x && x <= n.X1 && n.Y0 <= y && y <= n.Y1
}

// SelectionSummary describes the commits inside the brush.
type SelectionSummary struct {
	Active    bool                   `json:"active"`
	Count     int                    `json:"count"`
	// Hours of day covered by the brush, earliest first
	FromHour  float64                `json:"from_hour"`
	ToHour    float64                `json:"to_hour"`
	Languages []models.LanguageShare `json:"languages,omitempty"`
}

// HTML renders the contents of the selected-summary panel. An inactive
// selection renders as empty.
func (s SelectionSummary) HTML() string {
	if !s.Active {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "<p>%d commits selected</p>", s.Count)
	if len(s.Languages) > 0 {
		b.WriteString("<h4>Language Breakdown</h4><ul>")
		for _, l := range s.Languages {
			fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(l.Label))
		}
		b.WriteString("</ul>")
	}
	return b.String()
}

// Brush tracks the rectangular selection over a scatterplot.
type Brush struct {
	plot     *Scatterplot
	rect     *Rect
	selected []*models.CommitSummary
	summary  SelectionSummary
}

// NewBrush attaches a brush to plot.
func NewBrush(plot *Scatterplot) *Brush {
	return &Brush{plot: plot}
}

// Update recomputes the whole selection for rect; nil clears it. It is
// called on brush start, move and end alike.
func (b *Brush) Update(rect *Rect) SelectionSummary {
	if rect == nil {
		for _, p := range b.plot.Points {
			p.Style.Stroke = ""
			p.Style.Opacity = DefaultOpacity
		}
		b.rect = nil
		b.selected = nil
		b.summary = SelectionSummary{}
		return b.summary
	}

	r := rect.Normalize()
	selected := make([]*models.CommitSummary, 0)
	for _, p := range b.plot.Points {
		if r.Contains(p.CX, p.CY) {
			p.Style.Stroke = SelectedStroke
			p.Style.Opacity = 1
			selected = append(selected, p.commit)
		} else {
			p.Style.Stroke = ""
			p.Style.Opacity = DimmedOpacity
		}
	}

	b.rect = &r
	b.selected = selected
	b.summary = SelectionSummary{
		Active:   true,
		Count:    len(selected),
		FromHour: b.hourAt(r.Y1),
		ToHour:   b.hourAt(r.Y0),
	}
	if len(selected) > 0 {
		b.summary.Languages = LanguageBreakdown(selected)
	}
	return b.summary
}

// hourAt maps a plot y back to an hour of day, clamped to [0, 24].
func (b *Brush) hourAt(y float64) float64 {
	return math.Min(24, math.Max(0, b.plot.Y.Invert(y)))
}

// Rect returns the active region, or nil.
func (b *Brush) Rect() *Rect {
	return b.rect
}

// Selected returns the commits inside the active region.
func (b *Brush) Selected() []*models.CommitSummary {
	return b.selected
}

// Summary returns the last computed selection summary.
func (b *Brush) Summary() SelectionSummary {
	return b.summary
}

// LanguageBreakdown groups the rows of commits by language, in the order
// languages are first seen, with each language's share of all rows.
func LanguageBreakdown(commits []*models.CommitSummary) []models.LanguageShare {
	counts := make(map[string]int)
	order := make([]string, 0)
	total := 0
	for _, c := range commits {
		for _, row := range c.Lines {
			if _, ok := counts[row.Language]; !ok {
				order = append(order, row.Language)
			}
			counts[row.Language]++
			total++
		}
	}
	if total == 0 {
		return nil
	}

	shares := make([]models.LanguageShare, 0, len(order))
	for _, lang := range order {
		pct := float64(counts[lang]) / float64(total) * 100
		shares = append(shares, models.LanguageShare{
			Language: lang,
			Rows:     counts[lang],
			Percent:  pct,
			Label:    fmt.Sprintf("%s: %.1f%%", lang, pct),
		})
	}
	return shares
}
