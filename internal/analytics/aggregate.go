package analytics

import (
	"github.com/Kamar-Folarin/portfolio-analytics/internal/models"
)

// AggregateCommits groups rows by commit id. Commits appear in the order
// their id is first seen, and the first row encountered for a commit supplies
// its author and timestamps even if a later row is chronologically earlier.
func AggregateCommits(rows []*models.Row, urlPrefix string, cal Calendar) []*models.CommitSummary {
	index := make(map[string]*models.CommitSummary)
	commits := make([]*models.CommitSummary, 0)

	for _, row := range rows {
		summary, ok := index[row.Commit]
		if !ok {
			summary = &models.CommitSummary{
				ID:       row.Commit,
				URL:      urlPrefix + row.Commit,
				Author:   row.Author,
				Date:     row.Date,
				Time:     row.Time,
				Timezone: row.Timezone,
				DateTime: row.DateTime,
				HourFrac: cal.HourFrac(row.DateTime),
			}
			index[row.Commit] = summary
			commits = append(commits, summary)
		}
		summary.Lines = append(summary.Lines, row)
		summary.TotalLines = len(summary.Lines)
	}

	return commits
}
