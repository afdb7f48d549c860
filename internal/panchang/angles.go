package panchang

import (
	"time"

	"github.com/svaidyanathan/panchangam/internal/astro"
)

// Angular steps of the index functions, in degrees.
const (
	tithiStep     = 12.0        // 30 tithis per 360 of lunisolar separation
	nakshatraStep = 360.0 / 27  // 13 deg 20 min per lunar mansion
	padaStep      = 360.0 / 108 // quarter of a nakshatra
	karanaStep    = 6.0         // half-tithi
	rasiStep      = 30.0        // zodiacal sign
)

// Ayanamsa is the linear sidereal-correction model: a fixed offset at
// J2000 plus a secular rate. It is an approximation, not a star-anchored
// model; callers accept the corresponding error.
type Ayanamsa struct {
	DegAtJ2000    float64
	ArcsecPerYear float64
}

// Degrees returns the ayanamsa offset at t.
func (a Ayanamsa) Degrees(t time.Time) float64 {
	years := (astro.JulianDayTT(t) - astro.J2000) / 365.2425
	return a.DegAtJ2000 + (a.ArcsecPerYear/3600.0)*years
}

// Sidereal converts a tropical longitude to sidereal at t.
func (a Ayanamsa) Sidereal(tropicalDeg float64, t time.Time) float64 {
	return astro.NormalizeDeg(tropicalDeg - a.Degrees(t))
}

// Sky bundles an ephemeris with an ayanamsa model and exposes the
// angular index functions. All methods are pure.
type Sky struct {
	Eph      Ephemeris
	Ayanamsa Ayanamsa
}

// Tithi returns the lunar day index in [1, 30]: the floor of the
// Moon-Sun separation divided by 12 degrees, one-based.
func (s *Sky) Tithi(t time.Time) int {
	sep := astro.NormalizeDeg(s.Eph.MoonLongitude(t) - s.Eph.SunLongitude(t))
	return int(sep/tithiStep) + 1
}

// Nakshatra returns the lunar mansion index in [1, 27] from the sidereal
// lunar longitude.
func (s *Sky) Nakshatra(t time.Time) int {
	lon := s.Ayanamsa.Sidereal(s.Eph.MoonLongitude(t), t)
	return int(lon/nakshatraStep) + 1
}

// Pada returns the quarter [1, 4] of the current nakshatra.
func (s *Sky) Pada(t time.Time) int {
	lon := s.Ayanamsa.Sidereal(s.Eph.MoonLongitude(t), t)
	inNak := lon - float64(int(lon/nakshatraStep))*nakshatraStep
	pada := int(inNak/padaStep) + 1
	if pada > 4 {
		// Guards the exact upper edge against rounding.
		pada = 4
	}
	return pada
}

// Yoga returns the index [1, 27] of the combined sidereal Sun+Moon
// longitude.
func (s *Sky) Yoga(t time.Time) int {
	sum := astro.NormalizeDeg(
		s.Ayanamsa.Sidereal(s.Eph.SunLongitude(t), t) +
			s.Ayanamsa.Sidereal(s.Eph.MoonLongitude(t), t))
	return int(sum/nakshatraStep) + 1
}

// Karana returns the half-tithi index in [1, 60].
func (s *Sky) Karana(t time.Time) int {
	sep := astro.NormalizeDeg(s.Eph.MoonLongitude(t) - s.Eph.SunLongitude(t))
	return int(sep/karanaStep) + 1
}

// SolarRasi returns the sidereal zodiacal sign [0, 11] of the Sun.
func (s *Sky) SolarRasi(t time.Time) int {
	return int(s.Ayanamsa.Sidereal(s.Eph.SunLongitude(t), t) / rasiStep)
}

// MoonRasi returns the sidereal zodiacal sign [0, 11] of the Moon.
func (s *Sky) MoonRasi(t time.Time) int {
	return int(s.Ayanamsa.Sidereal(s.Eph.MoonLongitude(t), t) / rasiStep)
}

// SiderealSunLongitude returns the sidereal solar longitude at t.
func (s *Sky) SiderealSunLongitude(t time.Time) float64 {
	return s.Ayanamsa.Sidereal(s.Eph.SunLongitude(t), t)
}

// Ayanam is the solar half-year.
type Ayanam int

const (
	// Uttarayanam is the northward half (tropical solar longitude
	// outside [90, 270)).
	Uttarayanam Ayanam = iota
	// Dakshinayanam is the southward half.
	Dakshinayanam
)

// Ayanam returns the solar half-year at t, judged on the tropical
// longitude: the solstices, not the sidereal sign boundaries, divide the
// halves.
func (s *Sky) Ayanam(t time.Time) Ayanam {
	lon := astro.NormalizeDeg(s.Eph.SunLongitude(t))
	if lon >= 90 && lon < 270 {
		return Dakshinayanam
	}
	return Uttarayanam
}

// String returns the conventional Sanskrit name of the half-year.
func (a Ayanam) String() string {
	if a == Dakshinayanam {
		return "Dakshinayanam"
	}
	return "Uttarayanam"
}

// Ritu returns the season index [0, 5] for a month index [0, 11].
// Seasons pair consecutive months.
func Ritu(monthIdx int) int {
	return (monthIdx / 2) % 6
}

// KaranaName resolves the irregular karana naming: four fixed positions
// at the ends of the cycle, and a seven-name repetition for 2..57.
func KaranaName(n int) string {
	switch n {
	case 1:
		return "Kimstughna"
	case 58:
		return "Shakuni"
	case 59:
		return "Chatushpada"
	case 60:
		return "Nagava"
	}
	names := [7]string{"Bavai", "Balavai", "Kaulavai", "Thaitilai", "Garajai", "Vanijai", "Vishti"}
	return names[(n-2)%7]
}

// Paksha returns 0 (Shukla, waxing) for tithi 1..15 and 1 (Krishna,
// waning) for 16..30.
func Paksha(tithi int) int {
	if tithi <= 15 {
		return 0
	}
	return 1
}

// TithiInPaksha normalizes a tithi index [1,30] to its position [1,15]
// within its paksha.
func TithiInPaksha(tithi int) int {
	if tithi <= 15 {
		return tithi
	}
	return tithi - 15
}
