package panchang

import (
	"fmt"
	"sort"
	"time"

	"github.com/svaidyanathan/panchangam/internal/astro"
)

// SteppedSeries is the precomputed transition table of one angular index
// function over a horizon: the ordered (instant, value) pairs at which
// the function changes. Built once per horizon and shared read-only
// across locations; lookups are O(log n).
type SteppedSeries struct {
	entries []astro.Transition
}

// NewSteppedSeries validates the strictly-increasing instant invariant
// and wraps the entries.
func NewSteppedSeries(entries []astro.Transition) (*SteppedSeries, error) {
	for i := 1; i < len(entries); i++ {
		if !entries[i-1].At.Before(entries[i].At) {
			return nil, fmt.Errorf("transition %d at %s does not follow %s",
				i, entries[i].At, entries[i-1].At)
		}
	}
	return &SteppedSeries{entries: entries}, nil
}

// PrecomputeSeries runs the transition finder for fn over [t0, t1] and
// returns the resulting series.
func PrecomputeSeries(tf TransitionFinder, fn func(time.Time) int, t0, t1 time.Time, stepDays float64) (*SteppedSeries, error) {
	return NewSteppedSeries(tf.FindTransitions(fn, t0, t1, stepDays))
}

// Len returns the number of transitions in the series.
func (s *SteppedSeries) Len() int { return len(s.entries) }

// ValueAt returns the value of the last transition at or before t, or
// the first transition's value if t precedes every entry. The series
// must be non-empty.
func (s *SteppedSeries) ValueAt(t time.Time) int {
	// First index whose instant is after t.
	i := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].At.After(t)
	})
	if i == 0 {
		return s.entries[0].Value
	}
	return s.entries[i-1].Value
}

// Between returns the transitions with a <= instant < b, half-open.
func (s *SteppedSeries) Between(a, b time.Time) []astro.Transition {
	lo := sort.Search(len(s.entries), func(i int) bool {
		return !s.entries[i].At.Before(a)
	})
	hi := sort.Search(len(s.entries), func(i int) bool {
		return !s.entries[i].At.Before(b)
	})
	return s.entries[lo:hi]
}

// Span returns the [start, end) interval over which the transition at
// index i holds its value. The end of the final transition is unknown;
// ok is false there and at out-of-range indexes.
func (s *SteppedSeries) Span(i int) (start, end time.Time, ok bool) {
	if i < 0 || i+1 >= len(s.entries) {
		return time.Time{}, time.Time{}, false
	}
	return s.entries[i].At, s.entries[i+1].At, true
}

// indexAt returns the index of the transition governing t, or -1 if t
// precedes the series.
func (s *SteppedSeries) indexAt(t time.Time) int {
	i := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].At.After(t)
	})
	return i - 1
}

// SpanOf locates the [start, end) span of the target value active around
// ref. If the value exactly at ref differs from target because ref sits
// on a boundary, the immediately adjacent transitions are tried before
// giving up.
func (s *SteppedSeries) SpanOf(target int, ref time.Time) (start, end time.Time, ok bool) {
	i := s.indexAt(ref)
	if i < 0 || i >= len(s.entries) {
		return time.Time{}, time.Time{}, false
	}
	if s.entries[i].Value != target {
		switch {
		case i+1 < len(s.entries) && s.entries[i+1].Value == target:
			i++
		case i-1 >= 0 && s.entries[i-1].Value == target:
			i--
		default:
			return time.Time{}, time.Time{}, false
		}
	}
	start = s.entries[i].At
	if i+1 < len(s.entries) {
		end = s.entries[i+1].At
	} else {
		// Open-ended at the horizon edge; a tithi never outlives a day.
		end = ref.Add(24 * time.Hour)
	}
	return start, end, true
}
