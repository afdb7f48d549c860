package astro

import "time"

// NewMoons returns the instants of lunisolar conjunction (elongation
// crossing zero) within [t0, t1], in ascending order.
//
// The elongation grows monotonically at ~12.19 degrees/day, so a half-day
// scan cannot skip a conjunction; each sign change of the wrapped
// elongation is refined by bisection to sub-second precision.
func (p Provider) NewMoons(t0, t1 time.Time) []time.Time {
	f := func(t time.Time) float64 {
		return Wrap180(p.Elongation(t))
	}

	const step = 12 * time.Hour
	var out []time.Time

	prevT := t0
	prevF := f(prevT)
	for cur := t0.Add(step); ; cur = cur.Add(step) {
		if cur.After(t1) {
			cur = t1
		}
		cf := f(cur)
		// Conjunction: wrapped elongation passes from negative to
		// positive. The opposite crossing is full moon (+-180 wrap).
		if prevF < 0 && cf >= 0 && cf-prevF < 180 {
			out = append(out, bisectZero(f, prevT, cur))
		}
		prevT, prevF = cur, cf
		if !cur.Before(t1) {
			break
		}
	}
	return out
}

func bisectZero(f func(time.Time) float64, lo, hi time.Time) time.Time {
	for hi.Sub(lo) > 500*time.Millisecond {
		mid := lo.Add(hi.Sub(lo) / 2)
		if f(mid) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}
