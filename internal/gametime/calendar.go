package gametime

import (
	"fmt"
	"time"

	// Europe/Paris must resolve on hosts without a zoneinfo database
	_ "time/tzdata"
)

// DateLayout is the persisted calendar date format
const DateLayout = "2006-01-02"

// Calendar turns instants into the game's calendar dates. Dates are plain
// YYYY-MM-DD strings in the configured location.
type Calendar struct {
	Location  *time.Location
	ResetHour int
}

// NewCalendar returns a calendar for loc with the daily task anchor at resetHour
func NewCalendar(loc *time.Location, resetHour int) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{Location: loc, ResetHour: resetHour}
}

// LoadCalendar resolves an IANA time zone name
func LoadCalendar(zone string, resetHour int) (Calendar, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Calendar{}, fmt.Errorf("failed to load time zone %q: %w", zone, err)
	}
	return NewCalendar(loc, resetHour), nil
}

// Date is the local calendar date of t (midnight anchor)
func (c Calendar) Date(t time.Time) string {
	return t.In(c.Location).Format(DateLayout)
}

// CycleKey is the date of the task cycle containing t. A cycle starts at
// ResetHour local time, so instants before the anchor belong to the
// previous date.
func (c Calendar) CycleKey(t time.Time) string {
	local := t.In(c.Location)
	if local.Hour() < c.ResetHour {
		local = local.AddDate(0, 0, -1)
	}
	return local.Format(DateLayout)
}

// NextReset is the first anchor strictly after t
func (c Calendar) NextReset(t time.Time) time.Time {
	local := t.In(c.Location)
	anchor := time.Date(local.Year(), local.Month(), local.Day(), c.ResetHour, 0, 0, 0, c.Location)
	if !anchor.After(local) {
		anchor = anchor.AddDate(0, 0, 1)
	}
	return anchor
}

// DaysBetween returns to - from in calendar days for two DateLayout dates
func DaysBetween(from, to string) (int, error) {
	a, err := time.Parse(DateLayout, from)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", from, err)
	}
	b, err := time.Parse(DateLayout, to)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", to, err)
	}
	// Both parse as UTC midnight so the difference is a whole number of days
	return int(b.Sub(a).Hours() / 24), nil
}
