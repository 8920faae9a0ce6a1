package dashboard

import (
	"bytes"
	"context"
	"io"
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

func testDataset() *analytics.Dataset {
	when := time.Date(2024, time.October, 1, 14, 30, 0, 0, time.UTC)
	rows := []*models.Row{
		{Commit: "abc", Author: "ada", File: "a.go", Language: "go", DateTime: when},
		{Commit: "abc", Author: "ada", File: "b.go", Language: "go", DateTime: when},
		{Commit: "def", Author: "bob", File: "c.js", Language: "js", DateTime: when.AddDate(0, 0, 1)},
	}
	return analytics.NewDataset(rows, "https://github.com/o/r/commit/", analytics.DefaultCalendar())
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestDashboard_PointerFlow(t *testing.T) {
	d := New("s1", testDataset(), DefaultOptions())

	initial := d.Frame()
	assert.False(t, initial.Tooltip.Visible)
	assert.False(t, initial.Selection.Active)
	assert.Empty(t, initial.SummaryHTML)
	require.Len(t, initial.Points, 2)

	frame, err := d.Dispatch(Event{Type: PointerEnter, CommitID: "abc", PageX: 10, PageY: 50})
	require.NoError(t, err)
	assert.True(t, frame.Tooltip.Visible)
	assert.Equal(t, "abc", frame.Tooltip.Content.Text)
	assert.Equal(t, "https://github.com/o/r/commit/abc", frame.Tooltip.Content.Href)
	assert.Equal(t, 2, frame.Tooltip.Content.Lines)
	assert.Equal(t, chart.Position{Left: 25, Top: 35}, frame.Tooltip.Position)
	assert.Equal(t, chart.HoverFillOpacity, frame.Points["abc"].FillOpacity)

	frame, err = d.Dispatch(Event{Type: PointerMove, PageX: 20, PageY: 60})
	require.NoError(t, err)
	assert.Equal(t, chart.Position{Left: 35, Top: 45}, frame.Tooltip.Position)

	frame, err = d.Dispatch(Event{Type: PointerLeave, CommitID: "abc"})
	require.NoError(t, err)
	assert.False(t, frame.Tooltip.Visible)
	assert.Equal(t, "abc", frame.Tooltip.Content.Text)
	assert.Equal(t, chart.DefaultFillOpacity, frame.Points["abc"].FillOpacity)
}

func TestDashboard_BrushFlow(t *testing.T) {
	d := New("s1", testDataset(), DefaultOptions())
	layout := DefaultOptions().Layout
	everything := &chart.Rect{X0: 0, Y0: 0, X1: layout.InnerWidth(), Y1: layout.InnerHeight()}

	for _, typ := range []EventType{BrushStart, BrushMove, BrushEnd} {
		frame, err := d.Dispatch(Event{Type: typ, Selection: everything})
		require.NoError(t, err)
		assert.True(t, frame.Selection.Active)
		assert.Equal(t, 2, frame.Selection.Count)
		assert.Contains(t, frame.SummaryHTML, "2 commits selected")
	}

	var buf bytes.Buffer
	require.NoError(t, d.WriteSVG(&buf))
	assert.Contains(t, buf.String(), `class="selection"`)

	frame, err := d.Dispatch(Event{Type: BrushEnd})
	require.NoError(t, err)
	assert.False(t, frame.Selection.Active)
	assert.Empty(t, frame.SummaryHTML)
	for _, style := range frame.Points {
		assert.Equal(t, chart.DefaultOpacity, style.Opacity)
	}

	buf.Reset()
	require.NoError(t, d.WriteSVG(&buf))
	assert.False(t, strings.Contains(buf.String(), `class="selection"`))
}

func TestDashboard_Errors(t *testing.T) {
	d := New("s1", testDataset(), DefaultOptions())

	_, err := d.Dispatch(Event{Type: PointerEnter, CommitID: "missing"})
	assert.True(t, apperrors.IsNotFound(err))

	_, err = d.Dispatch(Event{Type: PointerLeave, CommitID: "missing"})
	assert.True(t, apperrors.IsNotFound(err))

	_, err = d.Dispatch(Event{Type: "scroll"})
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(testDataset(), DefaultOptions(), testLogger())

	a := r.Create()
	b := r.Create()
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, r.Len())

	got, err := r.Get(a.ID)
	require.NoError(t, err)
	assert.Same(t, a, got)

	_, err = r.Get("nope")
	assert.True(t, apperrors.IsNotFound(err))

	preview := r.Preview()
	assert.Empty(t, preview.ID)
	assert.Equal(t, 2, r.Len())

	// sessions are independent
	_, err = a.Dispatch(Event{Type: PointerEnter, CommitID: "abc"})
	require.NoError(t, err)
	assert.False(t, b.Frame().Tooltip.Visible)

	assert.Equal(t, 0, r.Prune(time.Now().Add(-time.Hour)))
	assert.Equal(t, 2, r.Prune(time.Now().Add(time.Second)))
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_Janitor(t *testing.T) {
	r := NewRegistry(testDataset(), DefaultOptions(), testLogger())
	r.Create()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.StartJanitor(ctx, 10*time.Millisecond, time.Nanosecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return r.Len() == 0 }, time.Second, 10*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
