package models

import "time"

// CommitSummary aggregates every row that shares a commit id.
// Lines is deliberately left out of JSON output.
type CommitSummary struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Author     string    `json:"author"`
	Date       time.Time `json:"date"`
	Time       string    `json:"time"`
	Timezone   string    `json:"timezone"`
	DateTime   time.Time `json:"datetime"`
	HourFrac   float64   `json:"hour_frac"`
	TotalLines int       `json:"total_lines"`
	Lines      []*Row    `json:"-"`
}

// LanguageShare is one entry of a language breakdown.
type LanguageShare struct {
	Language string  `json:"language"`
	Rows     int     `json:"rows"`
	Percent  float64 `json:"percent"`
	Label    string  `json:"label"`
}
