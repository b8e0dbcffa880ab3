// Package schedule resolves which occurrence of the weekly game is
// currently open for voting.
package schedule

import (
	"time"
)

const (
	// DateLayout is the ISO calendar-date form used for target dates
	DateLayout = "2006-01-02"

	// DefaultCutoffHour and DefaultCutoffMinute define the close-of-day
	// cutoff: once a match day passes 23:30 local, voting moves to the
	// following week's occurrence.
	DefaultCutoffHour   = 23
	DefaultCutoffMinute = 30
)

// Config holds configuration for the resolver
type Config struct {
	// Weekday the game recurs on
	Weekday time.Weekday

	// Location is the club's local timezone
	Location *time.Location

	// CutoffHour and CutoffMinute override the 23:30 default when non-zero
	CutoffHour   int
	CutoffMinute int
}

// Resolver maps wall-clock time to the target date of the currently
// relevant occurrence. It is pure: no caching, no side effects.
type Resolver struct {
	weekday      time.Weekday
	location     *time.Location
	cutoffHour   int
	cutoffMinute int
}

// New creates a resolver for the given weekday and timezone
func New(cfg *Config) *Resolver {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	hour, minute := cfg.CutoffHour, cfg.CutoffMinute
	if hour == 0 && minute == 0 {
		hour, minute = DefaultCutoffHour, DefaultCutoffMinute
	}

	return &Resolver{
		weekday:      cfg.Weekday,
		location:     loc,
		cutoffHour:   hour,
		cutoffMinute: minute,
	}
}

// Location returns the resolver's timezone
func (r *Resolver) Location() *time.Location {
	return r.location
}

// TargetDate returns the calendar date of the next occurrence of the game
// weekday, inclusive of today. If today is the game day and local time has
// reached the cutoff, the occurrence is already past its close and the
// following week's date is returned instead.
func (r *Resolver) TargetDate(now time.Time) string {
	local := now.In(r.location)

	daysAhead := (int(r.weekday) - int(local.Weekday()) + 7) % 7
	if local.Weekday() == r.weekday && r.pastCutoff(local) {
		daysAhead = 7
	}

	target := local.AddDate(0, 0, daysAhead)
	return target.Format(DateLayout)
}

// CloseTime returns the hard close timestamp for an occurrence date
func (r *Resolver) CloseTime(targetDate string) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, targetDate, r.location)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(day.Year(), day.Month(), day.Day(), r.cutoffHour, r.cutoffMinute, 0, 0, r.location), nil
}

func (r *Resolver) pastCutoff(local time.Time) bool {
	if local.Hour() != r.cutoffHour {
		return local.Hour() > r.cutoffHour
	}
	return local.Minute() >= r.cutoffMinute
}
