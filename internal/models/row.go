package models

import "time"

// UnknownLanguage is used when a row carries no language label.
const UnknownLanguage = "Unknown"

// Row is one line-of-code record of the loc log. Rows are never mutated
// after loading.
type Row struct {
	Commit   string    `json:"commit"`
	Author   string    `json:"author"`
	File     string    `json:"file"`
	Line     Measure   `json:"line"`
	Depth    Measure   `json:"depth"`
	Length   Measure   `json:"length"`
	Language string    `json:"language"`
	DateText string    `json:"date_text"`
	Time     string    `json:"time"`
	Timezone string    `json:"timezone"`
	Date     time.Time `json:"date"`
	DateTime time.Time `json:"datetime"`
}
