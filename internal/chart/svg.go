package chart

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"
)

const gridStroke = "#ccc"

// num formats a coordinate with at most three decimals.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func hourLabel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + ":00"
}

// WriteSVG renders the scatterplot with axes, gridlines, points and title.
// When brush is non-nil the selection rectangle is drawn over the points.
func (s *Scatterplot) WriteSVG(w io.Writer, brush *Rect) error {
	l := s.Layout
	innerW := l.InnerWidth()
	innerH := l.InnerHeight()

	var b strings.Builder
	fmt.Fprintf(&b, `<svg id="scatterplot" xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		num(l.Width), num(l.Height), num(l.Width), num(l.Height))
	fmt.Fprintf(&b, `<g transform="translate(%s,%s)">`, num(l.Margin.Left), num(l.Margin.Top))

	// x axis
	fmt.Fprintf(&b, `<g class="x-axis" transform="translate(0,%s)" fill="none" font-size="10" text-anchor="middle">`, num(innerH))
	fmt.Fprintf(&b, `<path class="domain" stroke="currentColor" d="M0,6V0H%sV6"/>`, num(innerW))
	for _, day := range s.X.Domain() {
		cx, _ := s.X.Center(day)
		fmt.Fprintf(&b, `<g class="tick" transform="translate(%s,0)"><line stroke="currentColor" y2="6"/><text fill="currentColor" y="9" dy="0.71em">%s</text></g>`,
			num(cx), html.EscapeString(day))
	}
	b.WriteString(`</g>`)

	hourTicks := s.Y.Ticks(l.HourTicks)

	// gridlines share the y scale but carry no labels
	b.WriteString(`<g class="grid">`)
	for _, t := range hourTicks {
		y := num(s.Y.Scale(t))
		fmt.Fprintf(&b, `<line x1="0" x2="%s" y1="%s" y2="%s" stroke="%s" stroke-opacity="0.5"/>`, num(innerW), y, y, gridStroke)
	}
	b.WriteString(`</g>`)

	// y axis
	b.WriteString(`<g class="y-axis" fill="none" font-size="10" text-anchor="end">`)
	fmt.Fprintf(&b, `<path class="domain" stroke="currentColor" d="M-6,%sH0V0H-6"/>`, num(innerH))
	for _, t := range hourTicks {
		fmt.Fprintf(&b, `<g class="tick" transform="translate(0,%s)"><line stroke="currentColor" x2="-6"/><text fill="currentColor" x="-9" dy="0.32em">%s</text></g>`,
			num(s.Y.Scale(t)), hourLabel(t))
	}
	b.WriteString(`</g>`)

	b.WriteString(`<g class="dots">`)
	for _, p := range s.Points {
		fmt.Fprintf(&b, `<circle data-commit="%s" cx="%s" cy="%s" r="%s" fill="%s" style="fill-opacity: %s; opacity: %s"`,
			html.EscapeString(p.CommitID), num(p.CX), num(p.CY), num(p.R), p.Style.Fill,
			num(p.Style.FillOpacity), num(p.Style.Opacity))
		if p.Style.Stroke != "" {
			fmt.Fprintf(&b, ` stroke="%s"`, p.Style.Stroke)
		}
		b.WriteString(`/>`)
	}
	b.WriteString(`</g>`)

	if brush != nil {
		r := brush.Normalize()
		fmt.Fprintf(&b, `<rect class="selection" x="%s" y="%s" width="%s" height="%s" fill="#777" fill-opacity="0.3" stroke="#fff"/>`,
			num(r.X0), num(r.Y0), num(r.X1-r.X0), num(r.Y1-r.Y0))
	}

	fmt.Fprintf(&b, `<text class="title" x="%s" y="-10" text-anchor="middle" style="font-weight: bold">%s</text>`,
		num(innerW/2), Title)
	b.WriteString(`</g></svg>`)

	_, err := io.WriteString(w, b.String())
	return err
}
