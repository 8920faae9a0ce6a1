package loader

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kamar-Folarin/portfolio-analytics/internal/analytics"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/chart"
	apperrors "github.com/Kamar-Folarin/portfolio-analytics/internal/errors"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/models"
)

const sampleCSV = `file,line,type,commit,author,date,time,timezone,depth,length,language
src/main.go,1,code,abc123,ada,2024-10-01,14:35:00,+02:00,1,12,go
src/main.go,2,code,abc123,ada,2024-10-01,14:35:00,+02:00,1,40,go
lib/util.js,1,code,def456,bob,2024-10-02,09:05:00,Z,1,oops,
`

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestParse(t *testing.T) {
	l := New(testLogger())

	rows, err := l.Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	first := rows[0]
	assert.Equal(t, "abc123", first.Commit)
	assert.Equal(t, "ada", first.Author)
	assert.Equal(t, models.Measure(1), first.Line)
	assert.Equal(t, models.Measure(12), first.Length)
	assert.Equal(t, "go", first.Language)
	assert.Equal(t, "2024-10-01", first.DateText)
	assert.True(t, first.DateTime.Equal(time.Date(2024, 10, 1, 12, 35, 0, 0, time.UTC)))
	assert.True(t, first.Date.Equal(time.Date(2024, 9, 30, 22, 0, 0, 0, time.UTC)))

	third := rows[2]
	assert.False(t, third.Length.Valid())
	assert.Equal(t, models.UnknownLanguage, third.Language)
	assert.True(t, third.DateTime.Equal(time.Date(2024, 10, 2, 9, 5, 0, 0, time.UTC)))
}

func TestParse_EdgeCases(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		rows, err := New(testLogger()).Parse(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("header only", func(t *testing.T) {
		rows, err := New(testLogger()).Parse(strings.NewReader("commit,author\n"))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("missing commit column", func(t *testing.T) {
		_, err := New(testLogger()).Parse(strings.NewReader("author,file\nada,x.go\n"))
		assert.Error(t, err)
	})

	t.Run("byte order mark", func(t *testing.T) {
		rows, err := New(testLogger()).Parse(strings.NewReader("\ufeffcommit,line\nabc,3\n"))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "abc", rows[0].Commit)
	})

	t.Run("blank numbers are zero", func(t *testing.T) {
		rows, err := New(testLogger()).Parse(strings.NewReader("commit,line,depth,length\nabc,,,\n"))
		require.NoError(t, err)
		assert.Equal(t, models.Measure(0), rows[0].Line)
		assert.True(t, rows[0].Depth.Valid())
	})

	t.Run("infinite numbers are invalid", func(t *testing.T) {
		input := "commit,line,depth,length\nabc,Inf,-infinity,1e400\nabc,2,3,4\n"
		rows, err := New(testLogger()).Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.False(t, rows[0].Line.Valid())
		assert.False(t, rows[0].Depth.Valid())
		assert.False(t, rows[0].Length.Valid())

		stats := analytics.ComputeStats(rows, analytics.DefaultCalendar())
		assert.Equal(t, 3.0, stats.AverageDepth)
		assert.Equal(t, 2.0, stats.AverageFileLength)
		require.NotNil(t, stats.LongestLine)
		assert.Equal(t, models.Measure(4), stats.LongestLine.Length)
	})

	t.Run("bad timestamps are zero", func(t *testing.T) {
		rows, err := New(testLogger()).Parse(strings.NewReader("commit,date,time,timezone\nabc,yesterday,noon,Z\n"))
		require.NoError(t, err)
		assert.True(t, rows[0].DateTime.IsZero())
	})

	t.Run("local time uses calendar zone", func(t *testing.T) {
		loc := time.FixedZone("UTC-5", -5*60*60)
		cal, err := analytics.NewCalendar(loc, nil)
		require.NoError(t, err)

		rows, err := New(testLogger(), WithCalendar(cal)).Parse(strings.NewReader("commit,date,time\nabc,2024-10-01,08:00\n"))
		require.NoError(t, err)
		assert.True(t, rows[0].DateTime.Equal(time.Date(2024, 10, 1, 13, 0, 0, 0, time.UTC)))
	})

	t.Run("language inference", func(t *testing.T) {
		input := "commit,file,language\nabc,main.go,\nabc,README,\n"
		rows, err := New(testLogger(), WithLanguageInference(true)).Parse(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, "Go", rows[0].Language)
		assert.Equal(t, models.UnknownLanguage, rows[1].Language)
	})
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "loc.csv")
		require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

		rows, err := New(testLogger()).Load(ctx, path)
		require.NoError(t, err)
		assert.Len(t, rows, 3)
	})

	t.Run("from url", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/meta/loc.csv", r.URL.Path)
			w.Write([]byte(sampleCSV))
		}))
		defer server.Close()

		rows, err := New(testLogger(), WithHTTPClient(server.Client())).Load(ctx, server.URL+"/meta/loc.csv")
		require.NoError(t, err)
		assert.Len(t, rows, 3)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := New(testLogger()).Load(ctx, filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
		assert.True(t, apperrors.IsLoad(err))
	})

	t.Run("http error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := New(testLogger()).Load(ctx, server.URL+"/loc.csv")
		require.Error(t, err)
		assert.True(t, apperrors.IsLoad(err))
	})
}

func TestParse_MissingLanguageKeepsLineCounts(t *testing.T) {
	input := `commit,file,language,date,time,timezone
abc,main.go,go,2024-10-01,10:00,Z
abc,notes.txt,,2024-10-01,10:00,Z
def,Makefile,,2024-10-02,11:00,Z
`
	rows, err := New(testLogger()).Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, models.UnknownLanguage, rows[1].Language)
	assert.Equal(t, models.UnknownLanguage, rows[2].Language)

	commits := analytics.AggregateCommits(rows, "", analytics.DefaultCalendar())
	require.Len(t, commits, 2)
	assert.Equal(t, 2, commits[0].TotalLines)
	assert.Equal(t, 1, commits[1].TotalLines)
	assert.Equal(t, len(rows), commits[0].TotalLines+commits[1].TotalLines)

	shares := chart.LanguageBreakdown(commits)
	require.Len(t, shares, 2)
	assert.Equal(t, "go", shares[0].Language)
	assert.Equal(t, 1, shares[0].Rows)
	assert.Equal(t, models.UnknownLanguage, shares[1].Language)
	assert.Equal(t, 2, shares[1].Rows)
	assert.Equal(t, "Unknown: 66.7%", shares[1].Label)
}
