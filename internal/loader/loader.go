// Package loader reads the loc log into typed rows.
package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/src-d/enry/v2"

	"github.com/Kamar-Folarin/portfolio-analytics/internal/analytics"
	apperrors "github.com/Kamar-Folarin/portfolio-analytics/internal/errors"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/models"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/utils"
)

// Column names of the loc log.
const (
	ColumnCommit   = "commit"
	ColumnAuthor   = "author"
	ColumnFile     = "file"
	ColumnLine     = "line"
	ColumnDepth    = "depth"
	ColumnLength   = "length"
	ColumnLanguage = "language"
	ColumnDate     = "date"
	ColumnTime     = "time"
	ColumnTimezone = "timezone"
)

var zonedLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04Z0700",
}

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// Loader parses loc logs from files or URLs.
type Loader struct {
	calendar      analytics.Calendar
	inferLanguage bool
	httpClient    *http.Client
	logger        *logrus.Logger
}

// Option configures a Loader
type Option func(*Loader)

// WithCalendar sets the calendar used for timestamps without a zone.
func WithCalendar(cal analytics.Calendar) Option {
	return func(l *Loader) {
		l.calendar = cal
	}
}

// WithLanguageInference fills empty language labels from the file extension.
func WithLanguageInference(enabled bool) Option {
	return func(l *Loader) {
		l.inferLanguage = enabled
	}
}

// WithHTTPClient sets the client used for http(s) locations.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		l.httpClient = client
	}
}

// New creates a loader.
func New(logger *logrus.Logger, opts ...Option) *Loader {
	l := &Loader{
		calendar:   analytics.DefaultCalendar(),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads and parses the log at location, a file path or http(s) URL.
// Read failures are returned as load errors; field values are not validated.
func (l *Loader) Load(ctx context.Context, location string) ([]*models.Row, error) {
	log := l.logger.WithField("location", location)
	log.Info("Loading loc log")

	rc, err := utils.OpenLocation(ctx, l.httpClient, location)
	if err != nil {
		log.WithError(err).Error("Failed to open loc log")
		return nil, apperrors.NewLoadError(location, err)
	}
	defer rc.Close()

	rows, err := l.Parse(rc)
	if err != nil {
		log.WithError(err).Error("Failed to parse loc log")
		return nil, apperrors.NewLoadError(location, err)
	}

	log.WithField("rows", len(rows)).Info("Loaded loc log")
	return rows, nil
}

// Parse reads CSV records with a header line into rows, in source order.
func (l *Loader) Parse(r io.Reader) ([]*models.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []*models.Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	if _, ok := columns[ColumnCommit]; !ok {
		return nil, fmt.Errorf("missing required column %q", ColumnCommit)
	}

	rows := make([]*models.Row, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record %d: %w", len(rows)+1, err)
		}
		rows = append(rows, l.parseRecord(columns, record))
	}
	return rows, nil
}

func (l *Loader) parseRecord(columns map[string]int, record []string) *models.Row {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	row := &models.Row{
		Commit:   field(ColumnCommit),
		Author:   field(ColumnAuthor),
		File:     field(ColumnFile),
		Line:     parseMeasure(field(ColumnLine)),
		Depth:    parseMeasure(field(ColumnDepth)),
		Length:   parseMeasure(field(ColumnLength)),
		Language: field(ColumnLanguage),
		DateText: field(ColumnDate),
		Time:     field(ColumnTime),
		Timezone: field(ColumnTimezone),
	}
	if row.Language == "" {
		row.Language = l.languageFor(row.File)
	}
	row.Date = l.parseTimestamp(row.DateText+"T00:00", row.Timezone)
	row.DateTime = l.parseTimestamp(row.DateText+"T"+row.Time, row.Timezone)
	return row
}

func (l *Loader) languageFor(file string) string {
	if !l.inferLanguage || file == "" {
		return models.UnknownLanguage
	}
	if lang, _ := enry.GetLanguageByExtension(file); lang != "" {
		return lang
	}
	return models.UnknownLanguage
}

// parseMeasure follows the permissive numeric coercion of the log: blank is
// zero and anything unparseable or infinite is NaN.
func parseMeasure(s string) models.Measure {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return models.NaN()
	}
	return models.Measure(v)
}

// parseTimestamp returns the zero time when the text is not a timestamp.
func (l *Loader) parseTimestamp(value, zone string) time.Time {
	if zone != "" {
		for _, layout := range zonedLayouts {
			if t, err := time.Parse(layout, value+zone); err == nil {
				return t
			}
		}
		return time.Time{}
	}
	loc := l.calendar.Location
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t
		}
	}
	return time.Time{}
}
