package chart

import (
	"math"
	"sort"

	"github.com/Kamar-Folarin/portfolio-analytics/internal/analytics"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/models"
)

// Point styling defaults.
const (
	DefaultFill        = "steelblue"
	DefaultFillOpacity = 0.7
	DefaultOpacity     = 1.0
	SelectedStroke     = "black"
	DimmedOpacity      = 0.3
	HoverFillOpacity   = 1.0
)

// Title is drawn above the plot area.
const Title = "Commit Time by Day of Week"

// Weekdays is the fixed x-axis order.
var Weekdays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Margin is the space between the svg edge and the plot area.
type Margin struct {
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
	Left   float64 `toml:"left"`
}

// Layout holds the fixed geometry of the scatterplot.
type Layout struct {
	Width       float64
	Height      float64
	Margin      Margin
	BandPadding float64
	MaxRadius   float64
	// MinRadius floors every radius; zero keeps area proportional to lines
	MinRadius   float64
	HourTicks   int
}

// DefaultLayout returns a 1000x600 plot.
func DefaultLayout() Layout {
	return Layout{
		Width:       1000,
		Height:      600,
		Margin:      Margin{Top: 30, Right: 30, Bottom: 40, Left: 50},
		BandPadding: 0.1,
		MaxRadius:   30,
		HourTicks:   10,
	}
}

// InnerWidth is the plot area width.
func (l Layout) InnerWidth() float64 {
	return l.Width - l.Margin.Left - l.Margin.Right
}

// InnerHeight is the plot area height.
func (l Layout) InnerHeight() float64 {
	return l.Height - l.Margin.Top - l.Margin.Bottom
}

// PointStyle is the visual state of one circle.
type PointStyle struct {
	Fill        string  `json:"fill"`
	FillOpacity float64 `json:"fill_opacity"`
	Opacity     float64 `json:"opacity"`
	Stroke      string  `json:"stroke,omitempty"`
}

func defaultStyle() PointStyle {
	return PointStyle{Fill: DefaultFill, FillOpacity: DefaultFillOpacity, Opacity: DefaultOpacity}
}

// Point is one plotted commit. CX and CY are in plot-area coordinates.
type Point struct {
	CommitID string     `json:"commit"`
	Day      string     `json:"day"`
	Hour     float64    `json:"hour"`
	CX       float64    `json:"cx"`
	CY       float64    `json:"cy"`
	R        float64    `json:"r"`
	Style    PointStyle `json:"style"`

	commit *models.CommitSummary
}

// Commit returns the summary the point was built from.
func (p *Point) Commit() *models.CommitSummary {
	return p.commit
}

// Scatterplot places commits on a weekday by hour-of-day grid. Each viewer
// owns one, since point styles change with hover and brush state.
type Scatterplot struct {
	Layout Layout
	X      *BandScale
	Y      LinearScale
	R      SqrtScale
	Points []*Point

	byID       map[string]*Point
	hoverPrior map[string]float64
}

// NewScatterplot lays out commits. Commits without a timestamp cannot be
// placed and are left out. Points are ordered by descending line count so
// that small circles are drawn last and stay reachable.
func NewScatterplot(commits []*models.CommitSummary, cal analytics.Calendar, layout Layout) *Scatterplot {
	s := &Scatterplot{
		Layout:     layout,
		X:          NewBandScale(Weekdays, 0, layout.InnerWidth(), layout.BandPadding),
		Y:          LinearScale{D0: 0, D1: 24, R0: layout.InnerHeight(), R1: 0},
		byID:       make(map[string]*Point),
		hoverPrior: make(map[string]float64),
	}

	maxLines := 0
	for _, c := range commits {
		if c.TotalLines > maxLines {
			maxLines = c.TotalLines
		}
	}
	s.R = NewSqrtScale(0, float64(maxLines), 0, layout.MaxRadius)

	sorted := make([]*models.CommitSummary, 0, len(commits))
	for _, c := range commits {
		if c.DateTime.IsZero() {
			continue
		}
		sorted = append(sorted, c)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalLines > sorted[j].TotalLines
	})

	for _, c := range sorted {
		day := Weekdays[cal.Weekday(c.DateTime)]
		cx, _ := s.X.Center(day)
		p := &Point{
			CommitID: c.ID,
			Day:      day,
			Hour:     c.HourFrac,
			CX:       cx,
			CY:       s.Y.Scale(c.HourFrac),
			R:        math.Max(layout.MinRadius, s.R.Scale(float64(c.TotalLines))),
			Style:    defaultStyle(),
			commit:   c,
		}
		s.Points = append(s.Points, p)
		s.byID[c.ID] = p
	}
	return s
}

// Point looks up a plotted commit.
func (s *Scatterplot) Point(id string) (*Point, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Enter highlights the point under the pointer, remembering its previous
// fill opacity.
func (s *Scatterplot) Enter(id string) (*Point, bool) {
	p, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	if _, hovering := s.hoverPrior[id]; !hovering {
		s.hoverPrior[id] = p.Style.FillOpacity
	}
	p.Style.FillOpacity = HoverFillOpacity
	return p, true
}

// Leave restores the fill opacity the point had before Enter.
func (s *Scatterplot) Leave(id string) (*Point, bool) {
	p, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	prior, hovering := s.hoverPrior[id]
	if !hovering {
		prior = DefaultFillOpacity
	}
	delete(s.hoverPrior, id)
	p.Style.FillOpacity = prior
	return p, true
}

// Styles returns the current style of every point keyed by commit id.
func (s *Scatterplot) Styles() map[string]PointStyle {
	out := make(map[string]PointStyle, len(s.Points))
	for _, p := range s.Points {
		out[p.CommitID] = p.Style
	}
	return out
}
