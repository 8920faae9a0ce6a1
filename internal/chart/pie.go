package chart

import (
	"fmt"
	"html"
	"io"
	"math"
	"strings"
)

// Tableau10 is the categorical palette used for pie slices.
var Tableau10 = []string{
	"#4e79a7", "#f28e2c", "#e15759", "#76b7b2", "#59a14f",
	"#edc949", "#af7aa1", "#ff9da7", "#9c755f", "#bab0ab",
}

// PieDatum is one labelled value.
type PieDatum struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Slice is one arc of the pie. Angles are radians clockwise from 12 o'clock.
type Slice struct {
	Label      string  `json:"label"`
	Value      int     `json:"value"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	Color      string  `json:"color"`
	Path       string  `json:"path"`
	Selected   bool    `json:"selected"`
}

// LegendItem is one entry of the pie legend.
type LegendItem struct {
	Label    string `json:"label"`
	Value    int    `json:"value"`
	Color    string `json:"color"`
	Text     string `json:"text"`
	Selected bool   `json:"selected"`
}

// PieChart keeps the slices in data order, unsorted.
type PieChart struct {
	Radius float64
	Slices []Slice
}

// NewPieChart lays out data as a full circle.
func NewPieChart(data []PieDatum, radius float64) *PieChart {
	total := 0
	for _, d := range data {
		if d.Value > 0 {
			total += d.Value
		}
	}

	p := &PieChart{Radius: radius, Slices: make([]Slice, 0, len(data))}
	angle := 0.0
	for i, d := range data {
		span := 0.0
		if total > 0 && d.Value > 0 {
			span = float64(d.Value) / float64(total) * 2 * math.Pi
		}
		s := Slice{
			Label:      d.Label,
			Value:      d.Value,
			StartAngle: angle,
			EndAngle:   angle + span,
			Color:      Tableau10[i%len(Tableau10)],
		}
		s.Path = arcPath(radius, s.StartAngle, s.EndAngle)
		p.Slices = append(p.Slices, s)
		angle += span
	}
	return p
}

// Select marks the slice at index as the only selected one and returns its
// label. Selecting the current selection again keeps it selected.
func (p *PieChart) Select(index int) (string, error) {
	if index < 0 || index >= len(p.Slices) {
		return "", fmt.Errorf("slice index %d out of range", index)
	}
	for i := range p.Slices {
		p.Slices[i].Selected = i == index
	}
	return p.Slices[index].Label, nil
}

// SelectLabel selects the first slice with label.
func (p *PieChart) SelectLabel(label string) (int, error) {
	for i, s := range p.Slices {
		if s.Label == label {
			_, err := p.Select(i)
			return i, err
		}
	}
	return -1, fmt.Errorf("no slice labelled %q", label)
}

// Selected returns the label of the selected slice, or "".
func (p *PieChart) Selected() string {
	for _, s := range p.Slices {
		if s.Selected {
			return s.Label
		}
	}
	return ""
}

// Legend mirrors the slices; an entry is selected when its label matches
// the selected slice.
func (p *PieChart) Legend() []LegendItem {
	selected := p.Selected()
	items := make([]LegendItem, 0, len(p.Slices))
	for _, s := range p.Slices {
		items = append(items, LegendItem{
			Label:    s.Label,
			Value:    s.Value,
			Color:    s.Color,
			Text:     fmt.Sprintf("%s (%d)", s.Label, s.Value),
			Selected: selected != "" && s.Label == selected,
		})
	}
	return items
}

// WriteSVG renders the pie centered on the origin.
func (p *PieChart) WriteSVG(w io.Writer) error {
	r := num(p.Radius)
	var b strings.Builder
	fmt.Fprintf(&b, `<svg id="projects-pie-plot" xmlns="http://www.w3.org/2000/svg" width="250" height="250" viewBox="-%s -%s %s %s" preserveAspectRatio="xMidYMid meet">`,
		r, r, num(p.Radius*2), num(p.Radius*2))
	for i, s := range p.Slices {
		class := ""
		if s.Selected {
			class = ` class="selected"`
		}
		fmt.Fprintf(&b, `<path%s data-index="%d" data-label="%s" d="%s" fill="%s" stroke="white" stroke-width="1.5" stroke-linejoin="round"/>`,
			class, i, html.EscapeString(s.Label), s.Path, s.Color)
	}
	b.WriteString(`</svg>`)
	_, err := io.WriteString(w, b.String())
	return err
}

// arcPath draws a solid wedge from the origin between two angles.
func arcPath(radius, a0, a1 float64) string {
	span := a1 - a0
	if span <= 0 || radius <= 0 {
		return "M0,0Z"
	}
	r := num(radius)
	if span >= 2*math.Pi-1e-6 {
		return fmt.Sprintf("M0,-%sA%s,%s,0,1,1,0,%sA%s,%s,0,1,1,0,-%sZ", r, r, r, r, r, r, r)
	}
	x0, y0 := radius*math.Sin(a0), -radius*math.Cos(a0)
	x1, y1 := radius*math.Sin(a1), -radius*math.Cos(a1)
	large := 0
	if span > math.Pi {
		large = 1
	}
	return fmt.Sprintf("M%s,%sA%s,%s,0,%d,1,%s,%sL0,0Z", num(x0), num(y0), r, r, large, num(x1), num(y1))
}
