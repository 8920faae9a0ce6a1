package analytics

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kamar-Folarin/portfolio-analytics/internal/models"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, time.October, 1, hour, minute, 0, 0, time.UTC)
}

func row(commit, file string, when time.Time) *models.Row {
	return &models.Row{
		Commit:   commit,
		Author:   "author-" + commit,
		File:     file,
		Line:     1,
		Depth:    1,
		Length:   10,
		Language: "go",
		DateTime: when,
		Date:     time.Date(when.Year(), when.Month(), when.Day(), 0, 0, 0, 0, time.UTC),
	}
}

func TestAggregateCommits(t *testing.T) {
	cal := DefaultCalendar()

	t.Run("first seen order and line counts", func(t *testing.T) {
		rows := []*models.Row{
			row("b", "x.go", at(10, 0)),
			row("a", "y.go", at(9, 0)),
			row("b", "z.go", at(11, 0)),
			row("c", "x.go", at(12, 30)),
			row("a", "x.go", at(8, 0)),
		}

		commits := AggregateCommits(rows, "https://github.com/o/r/commit/", cal)
		require.Len(t, commits, 3)
		assert.Equal(t, []string{"b", "a", "c"}, []string{commits[0].ID, commits[1].ID, commits[2].ID})

		total := 0
		for _, c := range commits {
			assert.Equal(t, len(c.Lines), c.TotalLines)
			total += c.TotalLines
		}
		assert.Equal(t, len(rows), total)

		assert.Equal(t, "https://github.com/o/r/commit/b", commits[0].URL)
		assert.Equal(t, 12.5, commits[2].HourFrac)
	})

	t.Run("first row supplies timestamps", func(t *testing.T) {
		rows := []*models.Row{
			row("a", "x.go", at(15, 0)),
			row("a", "y.go", at(9, 0)),
		}
		commits := AggregateCommits(rows, "", cal)
		require.Len(t, commits, 1)
		assert.Equal(t, at(15, 0), commits[0].DateTime)
		assert.Equal(t, "author-a", commits[0].Author)
	})

	t.Run("empty input", func(t *testing.T) {
		commits := AggregateCommits(nil, "", cal)
		assert.NotNil(t, commits)
		assert.Empty(t, commits)
	})
}

func TestComputeStats(t *testing.T) {
	cal := DefaultCalendar()

	t.Run("empty input", func(t *testing.T) {
		stats := ComputeStats(nil, cal)
		assert.Equal(t, models.CorpusStats{}, stats)

		items := SummaryItems(stats)
		require.Len(t, items, 8)
		assert.Equal(t, "0", items[0].Value)
		assert.Equal(t, "N/A", items[5].Value)
		assert.Equal(t, "N/A", items[6].Value)
		assert.Equal(t, "N/A", items[7].Value)
	})

	t.Run("aggregates", func(t *testing.T) {
		r1 := row("a", "a.go", at(9, 0))
		r1.Line, r1.Depth, r1.Length = 3, 1, 20
		r2 := row("a", "a.go", at(9, 0))
		r2.Line, r2.Depth, r2.Length = 7, 1, 80
		r3 := row("b", "pkg/deep/b.go", at(14, 0))
		r3.Line, r3.Depth, r3.Length = 5, 3, 40
		r4 := row("b", "pkg/deep/b.go", at(14, 0))
		r4.Line, r4.Depth, r4.Length = models.NaN(), models.NaN(), models.NaN()

		stats := ComputeStats([]*models.Row{r1, r2, r3, r4}, cal)
		assert.Equal(t, 4, stats.TotalLOC)
		assert.Equal(t, 2, stats.TotalCommits)
		assert.Equal(t, 2, stats.FileCount)
		assert.InDelta(t, 5.0/3.0, stats.AverageDepth, 1e-9)
		assert.InDelta(t, 6.0, stats.AverageFileLength, 1e-9)
		require.NotNil(t, stats.DeepestFile)
		assert.Equal(t, "pkg/deep/b.go", stats.DeepestFile.File)
		require.NotNil(t, stats.LongestLine)
		assert.Equal(t, models.Measure(80), stats.LongestLine.Length)
	})

	t.Run("busiest period", func(t *testing.T) {
		var rows []*models.Row
		add := func(n, hour int) {
			for i := 0; i < n; i++ {
				rows = append(rows, row(fmt.Sprintf("c%d-%d", hour, i), "f.go", at(hour, 0)))
			}
		}
		add(10, 8)
		add(50, 14)
		add(200, 22)

		stats := ComputeStats(rows, cal)
		assert.Equal(t, PeriodNight, stats.BusiestPeriod)
		assert.Equal(t, 200, stats.BusiestPeriodRows)
	})

	t.Run("ties keep the earlier period", func(t *testing.T) {
		rows := []*models.Row{
			row("a", "f.go", at(19, 0)),
			row("b", "f.go", at(7, 0)),
		}
		stats := ComputeStats(rows, cal)
		assert.Equal(t, PeriodEvening, stats.BusiestPeriod)
	})

	t.Run("order invariant", func(t *testing.T) {
		var rows []*models.Row
		for i := 0; i < 30; i++ {
			r := row(fmt.Sprintf("c%d", i%7), fmt.Sprintf("f%d.go", i%5), at(i%24, i))
			r.Line = models.Measure(i)
			r.Depth = models.Measure(i % 4)
			r.Length = models.Measure(i * 3)
			rows = append(rows, r)
		}
		want := ComputeStats(rows, cal)

		shuffled := make([]*models.Row, len(rows))
		copy(shuffled, rows)
		rand.New(rand.NewSource(1)).Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		got := ComputeStats(shuffled, cal)

		assert.Equal(t, want.TotalLOC, got.TotalLOC)
		assert.Equal(t, want.TotalCommits, got.TotalCommits)
		assert.Equal(t, want.FileCount, got.FileCount)
		assert.InDelta(t, want.AverageDepth, got.AverageDepth, 1e-9)
		assert.InDelta(t, want.AverageFileLength, got.AverageFileLength, 1e-9)
		assert.Equal(t, want.DeepestFile.Depth, got.DeepestFile.Depth)
		assert.Equal(t, want.LongestLine.Length, got.LongestLine.Length)
	})

	t.Run("summary formatting", func(t *testing.T) {
		r := row("a", "a.go", at(9, 0))
		r.Line, r.Depth, r.Length = 3, 2, 42
		items := SummaryItems(ComputeStats([]*models.Row{r}, cal))
		assert.Equal(t, "LOC", items[0].Abbr)
		assert.Equal(t, "2.00", items[3].Value)
		assert.Equal(t, "3.00", items[4].Value)
		assert.Equal(t, "a.go", items[5].Value)
		assert.Equal(t, "42", items[6].Value)
		assert.Equal(t, PeriodMorning, items[7].Value)
	})
}

func TestCalendar(t *testing.T) {
	cal := DefaultCalendar()

	tests := []struct {
		hour int
		want string
	}{
		{0, PeriodNight},
		{5, PeriodNight},
		{6, PeriodMorning},
		{11, PeriodMorning},
		{12, PeriodAfternoon},
		{18, PeriodEvening},
		{21, PeriodNight},
		{23, PeriodNight},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("hour %d", tt.hour), func(t *testing.T) {
			assert.Equal(t, tt.want, cal.Period(at(tt.hour, 0)))
		})
	}

	t.Run("zone conversion", func(t *testing.T) {
		loc := time.FixedZone("UTC+2", 2*60*60)
		c, err := NewCalendar(loc, nil)
		require.NoError(t, err)
		assert.Equal(t, 11.5, c.HourFrac(at(9, 30)))
		assert.Equal(t, "Tuesday, October 1, 2024 at 11:30 AM", c.FormatFull(at(9, 30)))
		assert.Equal(t, time.Tuesday, c.Weekday(at(23, 0).Add(-2*time.Hour)))
	})

	t.Run("zero time", func(t *testing.T) {
		assert.Equal(t, "Invalid Date", cal.FormatFull(time.Time{}))
	})

	t.Run("invalid periods", func(t *testing.T) {
		_, err := NewCalendar(time.UTC, []DayPeriod{{Name: "a", Start: 3}, {Name: "b", Start: 3}})
		assert.Error(t, err)
		_, err = NewCalendar(time.UTC, []DayPeriod{{Name: "a", Start: 24}})
		assert.Error(t, err)
		_, err = NewCalendar(time.UTC, []DayPeriod{{Start: 4}})
		assert.Error(t, err)
	})

	t.Run("periods are sorted", func(t *testing.T) {
		c, err := NewCalendar(time.UTC, []DayPeriod{{Name: "late", Start: 20}, {Name: "early", Start: 4}})
		require.NoError(t, err)
		assert.Equal(t, "early", c.Periods[0].Name)
		assert.Equal(t, "late", c.Period(at(2, 0)))
	})
}

func TestDataset(t *testing.T) {
	rows := []*models.Row{row("a", "x.go", at(9, 0)), row("b", "y.go", at(10, 0))}
	data := NewDataset(rows, "p/", DefaultCalendar())

	c, ok := data.Commit("b")
	require.True(t, ok)
	assert.Equal(t, "p/b", c.URL)

	_, ok = data.Commit("missing")
	assert.False(t, ok)

	assert.Len(t, data.Summary(), 8)
	assert.Equal(t, 2, data.Stats.TotalCommits)
}
