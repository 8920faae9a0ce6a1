package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Kamar-Folarin/portfolio-analytics/internal/analytics"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/chart"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/dashboard"
)

// ChartFile represents the optional TOML file tuning the scatterplot and
// the calendar it is drawn in. Unset keys keep their defaults.
type ChartFile struct {
	Scatter          ScatterConfig  `toml:"scatter"`
	Tooltip          TooltipConfig  `toml:"tooltip"`
	CalendarSettings CalendarConfig `toml:"calendar"`
}

// ScatterConfig maps plot geometry settings.
type ScatterConfig struct {
	Width       *float64      `toml:"width"`
	Height      *float64      `toml:"height"`
	Margin      *chart.Margin `toml:"margin"`
	BandPadding *float64      `toml:"band-padding"`
	MaxRadius   *float64      `toml:"max-radius"`
	MinRadius   *float64      `toml:"min-radius"`
	HourTicks   *int          `toml:"hour-ticks"`
}

// TooltipConfig maps tooltip placement.
type TooltipConfig struct {
	OffsetX *float64 `toml:"offset-x"`
	OffsetY *float64 `toml:"offset-y"`
}

// CalendarConfig maps the timezone and day-period boundaries.
type CalendarConfig struct {
	Timezone *string               `toml:"timezone"`
	Periods  []analytics.DayPeriod `toml:"periods"`
}

// LoadChartFile reads a TOML chart config from the given path. An empty path
// or a missing file yields the zero config.
func LoadChartFile(path string) (ChartFile, error) {
	if path == "" {
		return ChartFile{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return ChartFile{}, nil
		}
		return ChartFile{}, fmt.Errorf("failed to stat chart config: %w", err)
	}
	var cfg ChartFile
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return ChartFile{}, fmt.Errorf("failed to decode chart config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return ChartFile{}, fmt.Errorf("unknown chart config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Options overlays the file onto the default dashboard options.
func (f ChartFile) Options() dashboard.Options {
	opts := dashboard.DefaultOptions()
	s := f.Scatter
	if s.Width != nil {
		opts.Layout.Width = *s.Width
	}
	if s.Height != nil {
		opts.Layout.Height = *s.Height
	}
	if s.Margin != nil {
		opts.Layout.Margin = *s.Margin
	}
	if s.BandPadding != nil {
		opts.Layout.BandPadding = *s.BandPadding
	}
	if s.MaxRadius != nil {
		opts.Layout.MaxRadius = *s.MaxRadius
	}
	if s.MinRadius != nil {
		opts.Layout.MinRadius = *s.MinRadius
	}
	if s.HourTicks != nil {
		opts.Layout.HourTicks = *s.HourTicks
	}
	if f.Tooltip.OffsetX != nil {
		opts.TooltipOffsetX = *f.Tooltip.OffsetX
	}
	if f.Tooltip.OffsetY != nil {
		opts.TooltipOffsetY = *f.Tooltip.OffsetY
	}
	return opts
}

// Calendar builds the calendar, preferring the file's timezone over fallback.
func (f ChartFile) Calendar(fallback *time.Location) (analytics.Calendar, error) {
	loc := fallback
	if f.CalendarSettings.Timezone != nil {
		l, err := time.LoadLocation(*f.CalendarSettings.Timezone)
		if err != nil {
			return analytics.Calendar{}, fmt.Errorf("invalid calendar timezone: %w", err)
		}
		loc = l
	}
	periods := f.CalendarSettings.Periods
	if len(periods) == 0 {
		periods = analytics.DefaultPeriods()
	}
	return analytics.NewCalendar(loc, periods)
}
