package astro

import (
	"math"
	"time"
)

// moonRiseAltitude is the geometric altitude of the Moon's center at
// visual rise: atmospheric refraction (-0.566) offset by the mean lunar
// horizontal parallax contribution (+0.7275 * 0.9507).
const moonRiseAltitude = 0.125

// Moonrise returns the first moonrise instant whose local time falls on
// the given civil date, searching the local 00:00-24:00 window with a
// bracket-then-bisect altitude crossing.
//
// ok is false when the Moon does not rise on that date (happens roughly
// once per lunation, and for extreme latitudes).
func (p Provider) Moonrise(lat, lon float64, tz *time.Location, year int, month time.Month, day int) (time.Time, bool) {
	dayStart := time.Date(year, month, day, 0, 0, 0, 0, tz)
	dayEnd := dayStart.AddDate(0, 0, 1)

	alt := func(t time.Time) float64 {
		return p.moonAltitude(t, lat, lon) - moonRiseAltitude
	}

	// ~10 minute sampling; the Moon moves slowly enough in altitude
	// that a rise cannot fit inside one step.
	const step = 10 * time.Minute

	prevT := dayStart
	prevA := alt(prevT)
	for cur := dayStart.Add(step); !cur.After(dayEnd); cur = cur.Add(step) {
		a := alt(cur)
		if prevA < 0 && a >= 0 {
			return bisectRise(alt, prevT, cur), true
		}
		prevT, prevA = cur, a
	}
	return time.Time{}, false
}

func bisectRise(alt func(time.Time) float64, lo, hi time.Time) time.Time {
	for hi.Sub(lo) > time.Second {
		mid := lo.Add(hi.Sub(lo) / 2)
		if alt(mid) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}

// moonAltitude returns the Moon's topocentric-ish altitude in degrees at
// t for an observer at lat/lon (east-positive longitude). Parallax is
// folded into the rise threshold rather than applied per-instant.
func (p Provider) moonAltitude(t time.Time, lat, lon float64) float64 {
	lambda := p.MoonLongitude(t)
	beta := p.MoonLatitude(t)
	eps := Obliquity(t)

	// Ecliptic to equatorial.
	sinDec := sinDeg(beta)*cosDeg(eps) + cosDeg(beta)*sinDeg(eps)*sinDeg(lambda)
	dec := math.Asin(sinDec) * 180 / math.Pi
	ra := math.Atan2(
		sinDeg(lambda)*cosDeg(eps)-math.Tan(beta*math.Pi/180)*sinDeg(eps),
		cosDeg(lambda),
	) * 180 / math.Pi

	// Local hour angle from sidereal time.
	h := NormalizeDeg(localSiderealTime(t, lon) - ra)

	sinAlt := sinDeg(lat)*sinDeg(dec) + cosDeg(lat)*cosDeg(dec)*cosDeg(h)
	return math.Asin(sinAlt) * 180 / math.Pi
}

// localSiderealTime returns the local apparent sidereal time at t in
// degrees for an east-positive longitude.
func localSiderealTime(t time.Time, lon float64) float64 {
	jd := JulianDay(t)
	gmst := 280.46061837 + 360.98564736629*(jd-J2000)
	return NormalizeDeg(gmst + lon)
}
