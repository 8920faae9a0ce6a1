// Package analytics turns loc rows into commit summaries and corpus statistics.
package analytics

import (
	"fmt"
	"sort"
	"time"
)

// Period names used by the default calendar.
const (
	PeriodMorning   = "morning"
	PeriodAfternoon = "afternoon"
	PeriodEvening   = "evening"
	PeriodNight     = "night"
)

// FullDateTimeLayout renders a timestamp as e.g. "Tuesday, October 1, 2024 at 2:35 PM".
const FullDateTimeLayout = "Monday, January 2, 2006 at 3:04 PM"

// DayPeriod is a named part of the day starting at Start (hour, 0-23) and
// lasting until the next period starts.
type DayPeriod struct {
	Name  string `toml:"name"`
	Start int    `toml:"start"`
}

// Calendar fixes the time zone and the day-period boundaries used for
// bucketing and formatting, so results never depend on the host's locale.
type Calendar struct {
	Location *time.Location
	Periods  []DayPeriod
}

// DefaultPeriods mirrors the English short day periods.
func DefaultPeriods() []DayPeriod {
	return []DayPeriod{
		{Name: PeriodMorning, Start: 6},
		{Name: PeriodAfternoon, Start: 12},
		{Name: PeriodEvening, Start: 18},
		{Name: PeriodNight, Start: 21},
	}
}

// DefaultCalendar uses UTC and the default periods.
func DefaultCalendar() Calendar {
	return Calendar{Location: time.UTC, Periods: DefaultPeriods()}
}

// NewCalendar validates the periods and returns a calendar with periods
// ordered by start hour.
func NewCalendar(loc *time.Location, periods []DayPeriod) (Calendar, error) {
	if loc == nil {
		loc = time.UTC
	}
	if len(periods) == 0 {
		periods = DefaultPeriods()
	}
	sorted := make([]DayPeriod, len(periods))
	copy(sorted, periods)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	seen := make(map[int]bool, len(sorted))
	for _, p := range sorted {
		if p.Name == "" {
			return Calendar{}, fmt.Errorf("day period starting at %d has no name", p.Start)
		}
		if p.Start < 0 || p.Start > 23 {
			return Calendar{}, fmt.Errorf("day period %q starts at invalid hour %d", p.Name, p.Start)
		}
		if seen[p.Start] {
			return Calendar{}, fmt.Errorf("two day periods start at hour %d", p.Start)
		}
		seen[p.Start] = true
	}
	return Calendar{Location: loc, Periods: sorted}, nil
}

func (c Calendar) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// In converts t into the calendar's zone.
func (c Calendar) In(t time.Time) time.Time {
	return t.In(c.location())
}

// HourFrac returns hours + minutes/60 in the calendar's zone.
func (c Calendar) HourFrac(t time.Time) float64 {
	local := c.In(t)
	return float64(local.Hour()) + float64(local.Minute())/60
}

// Weekday returns the day of week in the calendar's zone.
func (c Calendar) Weekday(t time.Time) time.Weekday {
	return c.In(t).Weekday()
}

// Period returns the name of the day period containing t. Hours before the
// first period belong to the last one, which wraps past midnight.
func (c Calendar) Period(t time.Time) string {
	periods := c.Periods
	if len(periods) == 0 {
		periods = DefaultPeriods()
	}
	hour := c.In(t).Hour()
	name := periods[len(periods)-1].Name
	for _, p := range periods {
		if p.Start > hour {
			break
		}
		name = p.Name
	}
	return name
}

// FormatFull renders t with FullDateTimeLayout in the calendar's zone.
func (c Calendar) FormatFull(t time.Time) string {
	if t.IsZero() {
		return "Invalid Date"
	}
	return c.In(t).Format(FullDateTimeLayout)
}
