package astro

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// SunTimes holds the sunrise and sunset instants for one civil date.
type SunTimes struct {
	Rise time.Time
	Set  time.Time
}

// SunriseSunset returns the sunrise/sunset pair whose local calendar date
// in tz equals the requested date. Events are gathered over the
// surrounding days so that timezone offsets and DST shifts cannot move an
// event out of the search window.
//
// ok is false if either event is missing for that date (polar day or
// night, or a DST anomaly); such days are skipped by callers, they do
// not fail a run.
func (Provider) SunriseSunset(lat, lon float64, tz *time.Location, year int, month time.Month, day int) (SunTimes, bool) {
	var st SunTimes

	want := time.Date(year, month, day, 0, 0, 0, 0, tz)
	// The UTC calendar date of a local event can differ from the local
	// date by one day in either direction.
	for off := -1; off <= 1; off++ {
		d := want.AddDate(0, 0, off)
		rise, set := sunrise.SunriseSunset(lat, lon, d.Year(), d.Month(), d.Day())
		if !rise.IsZero() {
			if lr := rise.In(tz); sameCivilDate(lr, want) {
				st.Rise = lr
			}
		}
		if !set.IsZero() {
			if ls := set.In(tz); sameCivilDate(ls, want) {
				st.Set = ls
			}
		}
	}

	if st.Rise.IsZero() || st.Set.IsZero() {
		return SunTimes{}, false
	}
	return st, true
}

func sameCivilDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
