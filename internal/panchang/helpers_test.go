package panchang

import (
	"time"

	"github.com/svaidyanathan/panchangam/internal/astro"
)

// fixedEph returns constant longitudes; handy for exercising the index
// arithmetic in isolation.
type fixedEph struct {
	sun, moon float64
}

func (f fixedEph) SunLongitude(time.Time) float64  { return f.sun }
func (f fixedEph) MoonLongitude(time.Time) float64 { return f.moon }

// linearEph models uniformly moving bodies: the Sun advances sunRate
// degrees per day from zero at sunEpoch, and the Moon leads the Sun by
// elongRate degrees per day counted from elongEpoch.
type linearEph struct {
	sunEpoch   time.Time
	sunRate    float64
	elongEpoch time.Time
	elongRate  float64
}

func daysSince(epoch, t time.Time) float64 {
	return t.Sub(epoch).Hours() / 24
}

func (f linearEph) SunLongitude(t time.Time) float64 {
	return astro.NormalizeDeg(daysSince(f.sunEpoch, t) * f.sunRate)
}

func (f linearEph) MoonLongitude(t time.Time) float64 {
	return astro.NormalizeDeg(f.SunLongitude(t) + daysSince(f.elongEpoch, t)*f.elongRate)
}

// fakeAlmanac gives every day a fixed-clock sunrise and sunset, with
// selected dates optionally sunless.
type fakeAlmanac struct {
	riseHour, setHour int
	noSun             map[Date]bool
	newMoons          []time.Time
	moonriseHour      int // 0 means no moonrise
}

func (f fakeAlmanac) SunriseSunset(lat, lon float64, tz *time.Location, year int, month time.Month, day int) (astro.SunTimes, bool) {
	if f.noSun[Date{year, month, day}] {
		return astro.SunTimes{}, false
	}
	return astro.SunTimes{
		Rise: time.Date(year, month, day, f.riseHour, 0, 0, 0, tz),
		Set:  time.Date(year, month, day, f.setHour, 0, 0, 0, tz),
	}, true
}

func (f fakeAlmanac) Moonrise(lat, lon float64, tz *time.Location, year int, month time.Month, day int) (time.Time, bool) {
	if f.moonriseHour == 0 {
		return time.Time{}, false
	}
	return time.Date(year, month, day, f.moonriseHour, 0, 0, 0, tz), true
}

func (f fakeAlmanac) NewMoons(t0, t1 time.Time) []time.Time {
	var out []time.Time
	for _, nm := range f.newMoons {
		if !nm.Before(t0) && nm.Before(t1) {
			out = append(out, nm)
		}
	}
	return out
}

func testLocation(style Style) Location {
	lang := LangTamil
	if style == StyleTelugu {
		lang = LangTelugu
	}
	return Location{
		Key:       "test",
		Name:      "Test",
		Latitude:  13.08,
		Longitude: 80.27,
		TZ:        time.UTC,
		Style:     style,
		Lang:      lang,
	}
}

func utc(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}
