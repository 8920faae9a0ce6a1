package analytics

import (
	"github.com/Kamar-Folarin/portfolio-analytics/internal/models"
)

// Dataset is the loaded, read-only state of the analytics page.
type Dataset struct {
	Rows     []*models.Row
	Commits  []*models.CommitSummary
	Stats    models.CorpusStats
	Calendar Calendar

	byID map[string]*models.CommitSummary
}

// NewDataset aggregates rows and computes statistics once.
func NewDataset(rows []*models.Row, urlPrefix string, cal Calendar) *Dataset {
	commits := AggregateCommits(rows, urlPrefix, cal)
	byID := make(map[string]*models.CommitSummary, len(commits))
	for _, c := range commits {
		byID[c.ID] = c
	}
	return &Dataset{
		Rows:     rows,
		Commits:  commits,
		Stats:    ComputeStats(rows, cal),
		Calendar: cal,
		byID:     byID,
	}
}

// Commit looks up a commit summary by id.
func (d *Dataset) Commit(id string) (*models.CommitSummary, bool) {
	c, ok := d.byID[id]
	return c, ok
}

// Summary returns the rendered statistics list.
func (d *Dataset) Summary() []models.SummaryItem {
	return SummaryItems(d.Stats)
}
