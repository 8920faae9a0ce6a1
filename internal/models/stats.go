package models

// CorpusStats holds the corpus-wide summary derived from all rows.
type CorpusStats struct {
	TotalLOC          int     `json:"total_loc"`
	TotalCommits      int     `json:"total_commits"`
	FileCount         int     `json:"file_count"`
	AverageDepth      float64 `json:"average_depth"`
	AverageFileLength float64 `json:"average_file_length"`
	DeepestFile       *Row    `json:"deepest_file,omitempty"`
	LongestLine       *Row    `json:"longest_line,omitempty"`
	BusiestPeriod     string  `json:"busiest_period"`
	BusiestPeriodRows int     `json:"busiest_period_rows"`
}

// SummaryItem is one term/definition pair of the stats list.
type SummaryItem struct {
	Label string `json:"label"`
	Abbr  string `json:"abbr,omitempty"`
	Title string `json:"title,omitempty"`
	Value string `json:"value"`
}
