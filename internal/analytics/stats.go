package analytics

import (
	"fmt"
	"strconv"

	"github.com/Kamar-Folarin/portfolio-analytics/internal/models"
)

const notAvailable = "N/A"

// ComputeStats derives the corpus statistics from rows. It never mutates
// its input and returns a zero-valued summary for an empty row set.
// NaN measures are ignored by every reduction.
func ComputeStats(rows []*models.Row, cal Calendar) models.CorpusStats {
	var stats models.CorpusStats
	stats.TotalLOC = len(rows)
	if len(rows) == 0 {
		return stats
	}

	commitSeen := make(map[string]bool)
	fileMaxLine := make(map[string]float64)
	fileOrder := make([]string, 0)
	fileHasLine := make(map[string]bool)

	var depthSum float64
	var depthCount int

	periodCounts := make(map[string]int)
	periodOrder := make([]string, 0)

	for _, row := range rows {
		commitSeen[row.Commit] = true

		if _, ok := fileMaxLine[row.File]; !ok {
			fileMaxLine[row.File] = 0
			fileOrder = append(fileOrder, row.File)
		}
		if row.Line.Valid() {
			if !fileHasLine[row.File] || row.Line.Float() > fileMaxLine[row.File] {
				fileMaxLine[row.File] = row.Line.Float()
			}
			fileHasLine[row.File] = true
		}

		if row.Depth.Valid() {
			depthSum += row.Depth.Float()
			depthCount++
			if stats.DeepestFile == nil || row.Depth.Float() > stats.DeepestFile.Depth.Float() {
				stats.DeepestFile = row
			}
		}

		if row.Length.Valid() {
			if stats.LongestLine == nil || row.Length.Float() > stats.LongestLine.Length.Float() {
				stats.LongestLine = row
			}
		}

		if !row.DateTime.IsZero() {
			period := cal.Period(row.DateTime)
			if _, ok := periodCounts[period]; !ok {
				periodOrder = append(periodOrder, period)
			}
			periodCounts[period]++
		}
	}

	stats.TotalCommits = len(commitSeen)
	stats.FileCount = len(fileOrder)
	if depthCount > 0 {
		stats.AverageDepth = depthSum / float64(depthCount)
	}

	var lengthSum float64
	var lengthCount int
	for _, file := range fileOrder {
		if !fileHasLine[file] {
			continue
		}
		lengthSum += fileMaxLine[file]
		lengthCount++
	}
	if lengthCount > 0 {
		stats.AverageFileLength = lengthSum / float64(lengthCount)
	}

	for _, period := range periodOrder {
		if periodCounts[period] > stats.BusiestPeriodRows {
			stats.BusiestPeriod = period
			stats.BusiestPeriodRows = periodCounts[period]
		}
	}

	return stats
}

// SummaryItems renders the statistics list shown above the scatterplot.
func SummaryItems(stats models.CorpusStats) []models.SummaryItem {
	deepest := notAvailable
	if stats.DeepestFile != nil {
		deepest = stats.DeepestFile.File
	}
	longest := notAvailable
	if stats.LongestLine != nil {
		longest = strconv.FormatFloat(stats.LongestLine.Length.Float(), 'f', -1, 64)
	}
	busiest := notAvailable
	if stats.BusiestPeriod != "" {
		busiest = stats.BusiestPeriod
	}

	return []models.SummaryItem{
		{Label: "Total", Abbr: "LOC", Title: "Lines of code", Value: strconv.Itoa(stats.TotalLOC)},
		{Label: "Total commits", Value: strconv.Itoa(stats.TotalCommits)},
		{Label: "Number of files", Value: strconv.Itoa(stats.FileCount)},
		{Label: "Average file depth", Value: fmt.Sprintf("%.2f", stats.AverageDepth)},
		{Label: "Average file length", Value: fmt.Sprintf("%.2f", stats.AverageFileLength)},
		{Label: "Deepest file", Value: deepest},
		{Label: "Longest line (chars)", Value: longest},
		{Label: "Busiest time of day", Value: busiest},
	}
}
