package panchang

import (
	"time"

	"github.com/svaidyanathan/panchangam/internal/astro"
)

// DailyAttributes is the derived calendrical state of one civil day at
// one location. Index values are taken at sunrise; the transition slices
// list the intraday changes up to the next sunrise.
type DailyAttributes struct {
	Date        Date
	Weekday     time.Weekday
	Sunrise     time.Time
	Sunset      time.Time
	NextSunrise time.Time
	Moonrise    time.Time // zero when the Moon does not rise that day

	Tithi                int
	TithiTransitions     []astro.Transition
	Nakshatra            int
	Pada                 int
	NakshatraTransitions []astro.Transition
	Yoga                 int
	Karana               int
	SolarRasi            int
	MoonRasi             int
	Ayanam               Ayanam
}

// ComputeDailyAttributes derives the day's state from the shared
// transition tables and direct evaluation at sunrise. The caller has
// already resolved the day's sun events; days without them never reach
// this point.
func ComputeDailyAttributes(s *Sky, d Date, sun astro.SunTimes, nextSunrise time.Time, tithi, nakshatra *SteppedSeries) DailyAttributes {
	rise := sun.Rise
	return DailyAttributes{
		Date:        d,
		Weekday:     d.Weekday(),
		Sunrise:     rise,
		Sunset:      sun.Set,
		NextSunrise: nextSunrise,

		Tithi:                tithi.ValueAt(rise),
		TithiTransitions:     tithi.Between(rise, nextSunrise),
		Nakshatra:            nakshatra.ValueAt(rise),
		Pada:                 s.Pada(rise),
		NakshatraTransitions: nakshatra.Between(rise, nextSunrise),
		Yoga:                 s.Yoga(rise),
		Karana:               s.Karana(rise),
		SolarRasi:            s.SolarRasi(rise),
		MoonRasi:             s.MoonRasi(rise),
		Ayanam:               s.Ayanam(rise),
	}
}

// SraddhaTithi returns the tithi governing the aparahna (the fourth of
// five daylight parts), chosen as the tithi holding the longest
// sub-span when a transition splits the window. ok is false for a
// degenerate daylight interval.
func SraddhaTithi(sunrise, sunset time.Time, tithi *SteppedSeries) (int, bool) {
	l := sunset.Sub(sunrise)
	if l <= 0 {
		return 0, false
	}
	part := l / 5
	start := sunrise.Add(3 * part)
	end := sunrise.Add(4 * part)

	cur := tithi.ValueAt(start)
	best, bestLen := cur, time.Duration(-1)
	prev := start
	for _, tr := range tithi.Between(start, end) {
		if d := tr.At.Sub(prev); d > bestLen {
			best, bestLen = cur, d
		}
		prev, cur = tr.At, tr.Value
	}
	if d := end.Sub(prev); d > bestLen {
		best = cur
	}
	return best, true
}

// ChandrashtamamRasi returns the rasi [0, 11] whose natives have their
// chandrashtamam while the Moon occupies moonRasi: seven signs behind.
func ChandrashtamamRasi(moonRasi int) int {
	return ((moonRasi-7)%12 + 12) % 12
}
