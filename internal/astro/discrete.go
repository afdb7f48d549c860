package astro

import "time"

// Transition marks an instant where a stepwise integer function changes
// value; Value is the function's value from At onward.
type Transition struct {
	At    time.Time
	Value int
}

// transitionTolerance is the bisection stopping width for transition
// instants. Sub-second is well past calendrical needs.
const transitionTolerance = 500 * time.Millisecond

// FindTransitions locates every value change of fn over [t0, t1].
//
// fn is sampled at stepDays granularity; each detected change is refined
// by bisection down to transitionTolerance. The returned transitions are
// strictly time-ordered. A change is attributed to the earliest instant
// at which the new value is observed.
//
// stepDays must be small enough that fn changes at most once per step;
// for panchangam index functions the fastest mover is the karana at
// roughly 0.4 days per step of its cycle.
func (Provider) FindTransitions(fn func(time.Time) int, t0, t1 time.Time, stepDays float64) []Transition {
	if !t0.Before(t1) || stepDays <= 0 {
		return nil
	}

	step := time.Duration(stepDays * float64(24*time.Hour))
	var out []Transition

	prevT := t0
	prevV := fn(t0)
	for cur := t0.Add(step); ; cur = cur.Add(step) {
		if cur.After(t1) {
			cur = t1
		}
		v := fn(cur)
		if v != prevV {
			at, val := refineTransition(fn, prevT, cur, prevV)
			out = append(out, Transition{At: at, Value: val})
		}
		prevT, prevV = cur, v
		if !cur.Before(t1) {
			break
		}
	}

	return out
}

// refineTransition bisects [lo, hi] where fn(lo) == loVal and
// fn(hi) != loVal, returning the earliest instant of the new value.
func refineTransition(fn func(time.Time) int, lo, hi time.Time, loVal int) (time.Time, int) {
	for hi.Sub(lo) > transitionTolerance {
		mid := lo.Add(hi.Sub(lo) / 2)
		if fn(mid) == loVal {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi, fn(hi)
}
