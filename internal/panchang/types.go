// Package panchang derives lunisolar calendrical state for civil days:
// angular index functions (tithi, nakshatra, yoga, karana, rasi), the
// transition tables that track their changes, new-year epoch resolution,
// month/day numbering, time-of-day partitions and the festival and
// vratam rule engine.
//
// Everything here is pure given its inputs; all astronomy is consumed
// through the Ephemeris, Almanac and TransitionFinder interfaces, which
// internal/astro implements.
package panchang

import (
	"fmt"
	"time"

	"github.com/svaidyanathan/panchangam/internal/astro"
)

// Date is a civil calendar date with no timezone attached.
// It is comparable and usable as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate constructs a Date. Out-of-range values are normalized the same
// way time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{t.Year(), t.Month(), t.Day()}
}

// DateOf returns the civil date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{y, m, d}
}

// In returns local midnight of the date in tz.
func (d Date) In(tz *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, tz)
}

// AddDays returns the date n days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.In(time.UTC).AddDate(0, 0, n))
}

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// After reports whether d is later than o.
func (d Date) After(o Date) bool { return o.Before(d) }

// Weekday returns the day of week of the date.
func (d Date) Weekday() time.Weekday {
	return d.In(time.UTC).Weekday()
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// Style selects the regional calendar convention. The two styles differ
// in month reckoning (solar vs lunisolar) and in which new-year epoch
// anchors the samvatsara cycle; they are mutually exclusive per location.
type Style int

const (
	// StyleTamil numbers months by solar-sign ingress.
	StyleTamil Style = iota
	// StyleTelugu numbers months by lunation, anchored to Ugadi.
	StyleTelugu
)

// Lang is the naming-table language tag.
type Lang string

const (
	LangTamil  Lang = "TA"
	LangTelugu Lang = "TE"
)

// Location is a generation target: coordinates, timezone and the
// regional naming convention to apply.
type Location struct {
	Key       string // stable identifier used in dedup keys and storage
	Name      string // display name
	Latitude  float64
	Longitude float64 // east-positive
	TZ        *time.Location
	Style     Style
	Lang      Lang
}

// NewLocation resolves the timezone name and returns a ready Location.
func NewLocation(key, name string, lat, lon float64, tzName string, style Style, lang Lang) (Location, error) {
	tz, err := time.LoadLocation(tzName)
	if err != nil {
		return Location{}, fmt.Errorf("location %s: load timezone %q: %w", key, tzName, err)
	}
	return Location{
		Key:       key,
		Name:      name,
		Latitude:  lat,
		Longitude: lon,
		TZ:        tz,
		Style:     style,
		Lang:      lang,
	}, nil
}

// Ephemeris provides apparent geocentric ecliptic longitudes in degrees
// [0, 360). Implementations must be referentially transparent: the whole
// derivation is deterministic only if the ephemeris is.
type Ephemeris interface {
	SunLongitude(t time.Time) float64
	MoonLongitude(t time.Time) float64
}

// Almanac provides location-dependent rise/set events and lunation
// instants.
type Almanac interface {
	// SunriseSunset returns the pair for the civil date in tz,
	// ok=false when no such pair exists (polar or DST edge cases).
	SunriseSunset(lat, lon float64, tz *time.Location, year int, month time.Month, day int) (astro.SunTimes, bool)

	// Moonrise returns the first moonrise on the civil date, ok=false
	// when the Moon does not rise that day.
	Moonrise(lat, lon float64, tz *time.Location, year int, month time.Month, day int) (time.Time, bool)

	// NewMoons returns conjunction instants within [t0, t1], ascending.
	NewMoons(t0, t1 time.Time) []time.Time
}

// TransitionFinder is the discrete root-finding capability used to build
// transition tables. Isolated as an interface so the bracket-scan
// implementation can be swapped without touching calendrical logic.
type TransitionFinder interface {
	FindTransitions(fn func(time.Time) int, t0, t1 time.Time, stepDays float64) []astro.Transition
}

// SunriseFor is a convenience wrapper resolving the sun times of a date
// at a location.
func SunriseFor(alm Almanac, loc Location, d Date) (astro.SunTimes, bool) {
	return alm.SunriseSunset(loc.Latitude, loc.Longitude, loc.TZ, d.Year, d.Month, d.Day)
}
