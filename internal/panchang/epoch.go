package panchang

import (
	"errors"
	"fmt"
	"time"

	"github.com/svaidyanathan/panchangam/internal/astro"
)

// ErrEpochNotFound reports that a new-year epoch search window contained
// no qualifying instant. A year with an unresolvable epoch aborts
// generation for that year: a silently defaulted epoch would mislabel
// the samvatsara and misplace festivals, which is worse than no output.
var ErrEpochNotFound = errors.New("new year epoch not found in search window")

// Sankranti search bracket: Mesha ingress falls mid-April in the current
// era; the bracket is generous on both sides.
const (
	sankrantiBracketStartDay = 10
	sankrantiBracketEndDay   = 18
	sankrantiCoarseStep      = 2 * time.Hour
	sankrantiBisections      = 50
)

// MeshaSankranti locates the instant the sidereal solar longitude
// crosses zero (ingress into Mesha) for the given year: a coarse scan of
// the wrapped longitude for a negative-to-positive sign change, then
// bisection to sub-second precision.
func (s *Sky) MeshaSankranti(year int) (time.Time, error) {
	f := func(t time.Time) float64 {
		return astro.Wrap180(s.SiderealSunLongitude(t))
	}

	t0 := time.Date(year, time.April, sankrantiBracketStartDay, 0, 0, 0, 0, time.UTC)
	t1 := time.Date(year, time.April, sankrantiBracketEndDay, 0, 0, 0, 0, time.UTC)

	var lo, hi time.Time
	prevT := t0
	prevF := f(prevT)
	for cur := t0.Add(sankrantiCoarseStep); !cur.After(t1); cur = cur.Add(sankrantiCoarseStep) {
		curF := f(cur)
		if prevF < 0 && curF > 0 {
			lo, hi = prevT, cur
			break
		}
		prevT, prevF = cur, curF
	}
	if lo.IsZero() {
		return time.Time{}, fmt.Errorf("mesha sankranti %d: %w", year, ErrEpochNotFound)
	}

	for i := 0; i < sankrantiBisections; i++ {
		mid := lo.Add(hi.Sub(lo) / 2)
		if f(mid) > 0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo, nil
}

// SolarNewYearDate resolves the civil date of the solar new year
// (Puthandu) at a location under the sunset rule: an ingress at or
// before that day's local sunset belongs to the same civil date, a later
// ingress to the next.
func SolarNewYearDate(s *Sky, alm Almanac, loc Location, year int) (Date, error) {
	ingress, err := s.MeshaSankranti(year)
	if err != nil {
		return Date{}, err
	}
	return sunsetRuleDate(alm, loc, ingress), nil
}

// sunsetRuleDate maps an event instant to its civil date at loc: same
// date if the local event time is at or before sunset, next date
// otherwise. With no resolvable sunset the local calendar date is kept.
func sunsetRuleDate(alm Almanac, loc Location, event time.Time) Date {
	local := event.In(loc.TZ)
	d := DateOf(local)
	st, ok := SunriseFor(alm, loc, d)
	if ok && local.After(st.Set) {
		return d.AddDays(1)
	}
	return d
}

// Lunisolar new-year search window: the qualifying conjunction falls
// within a few weeks around the Mesha ingress.
const (
	ugadiWindowStartMonth = time.March
	ugadiWindowStartDay   = 10
	ugadiWindowEndMonth   = time.April
	ugadiWindowEndDay     = 20
)

// LunisolarNewYearDate resolves the civil date of Ugadi for the given
// year: scan the conjunctions in the window, take the one with sidereal
// solar longitude in [320, 360) (the Meena conjunction preceding Mesha),
// then walk up to three civil days forward for the first sunrise
// carrying tithi 1. No qualifying day is a hard failure.
func LunisolarNewYearDate(s *Sky, alm Almanac, loc Location, year int) (Date, error) {
	t0 := time.Date(year, ugadiWindowStartMonth, ugadiWindowStartDay, 0, 0, 0, 0, time.UTC)
	t1 := time.Date(year, ugadiWindowEndMonth, ugadiWindowEndDay, 0, 0, 0, 0, time.UTC)

	for _, nm := range alm.NewMoons(t0, t1) {
		lon := s.SiderealSunLongitude(nm)
		if lon < 320 || lon >= 360 {
			continue
		}
		start := DateOf(nm.In(loc.TZ))
		for off := 0; off < 3; off++ {
			d := start.AddDays(off)
			st, ok := SunriseFor(alm, loc, d)
			if !ok {
				continue
			}
			if s.Tithi(st.Rise) == 1 {
				return d, nil
			}
		}
	}
	return Date{}, fmt.Errorf("ugadi %d: %w", year, ErrEpochNotFound)
}

// NewYearEpochs resolves the style-appropriate new-year civil date for
// each Gregorian year in [fromYear, toYear]. The samvatsara resolver
// needs the map populated past both horizon edges before any date in
// range is looked up.
func NewYearEpochs(s *Sky, alm Almanac, loc Location, fromYear, toYear int) (map[int]Date, error) {
	epochs := make(map[int]Date, toYear-fromYear+1)
	for y := fromYear; y <= toYear; y++ {
		var (
			d   Date
			err error
		)
		if loc.Style == StyleTamil {
			d, err = SolarNewYearDate(s, alm, loc, y)
		} else {
			d, err = LunisolarNewYearDate(s, alm, loc, y)
		}
		if err != nil {
			return nil, err
		}
		epochs[y] = d
	}
	return epochs, nil
}
